package splitter_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/shared/split/downgrade"
	"github.com/veedubyou/track-splitter/src/shared/split/engine"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
	"github.com/veedubyou/track-splitter/src/shared/split/splitter"
	. "github.com/veedubyou/track-splitter/src/shared/testing"
	"github.com/veedubyou/track-splitter/src/shared/testing/dummy"
)

var _ = Describe("Splitter", func() {
	var (
		dummyExecutor *dummy.Executor
		scratchRoot   string
		outputRoot    string
		inputPath     string
		fixedTime     time.Time

		trackSplitter splitter.Splitter

		engineName  string
		qualityName string
		result      splitentity.Result
		err         error
	)

	expectNoScratchLeft := func() {
		ExpectWithOffset(1, ListDir(scratchRoot)).To(BeEmpty())
	}

	expectNoArtifacts := func() {
		for _, roleDir := range []string{"vocals", "karaoke"} {
			dir := filepath.Join(outputRoot, roleDir)
			if _, statErr := os.Stat(dir); statErr == nil {
				ExpectWithOffset(1, ListDir(dir)).To(BeEmpty())
			}
		}
	}

	BeforeEach(func() {
		By("Setting up the file trees", func() {
			scratchRoot = MakeTempDir()
			outputRoot = MakeTempDir()
			inputPath = WriteFile(filepath.Join(MakeTempDir(), "song.mp3"), "original audio")
			fixedTime = time.Date(2024, time.March, 5, 9, 7, 42, 0, time.Local)
		})

		By("Instantiating the splitter", func() {
			dummyExecutor = dummy.NewExecutor()

			runner := engine.NewRunner(engine.Config{
				DemucsBinPath:   dummy.DemucsBinPath,
				SpleeterBinPath: dummy.SpleeterBinPath,
			}, dummyExecutor)
			downgrader := downgrade.NewDowngrader(dummy.FFmpegBinPath, dummyExecutor)

			trackSplitter = ExpectSuccess(splitter.NewSplitter(scratchRoot, outputRoot, runner, downgrader,
				splitter.WithClock(func() time.Time { return fixedTime })))
		})

		engineName = string(splitentity.DemucsType)
		qualityName = string(splitentity.HighQuality)
	})

	JustBeforeEach(func() {
		result, err = trackSplitter.Separate(context.Background(), inputPath, engineName, qualityName)
	})

	Describe("Happy path", func() {
		It("returns both artifacts named after the input with a shared timestamp", func() {
			Expect(err).NotTo(HaveOccurred())

			vocalsPath, instrumentalPath := result.Paths()
			Expect(vocalsPath).To(Equal(filepath.Join(outputRoot, "vocals", "song_vocals_2024_03_05_09_07.wav")))
			Expect(instrumentalPath).To(Equal(filepath.Join(outputRoot, "karaoke", "song_karaoke_2024_03_05_09_07.wav")))
			Expect(result.Vocals.Timestamp).To(Equal(result.Instrumental.Timestamp))
			Expect(result.BaseName).To(Equal("song"))
			Expect(result.JobID).NotTo(BeEmpty())
		})

		It("moves the engine's stems into place", func() {
			Expect(ReadFile(result.Vocals.Path)).To(Equal("stem:vocals"))
			Expect(ReadFile(result.Instrumental.Path)).To(Equal("stem:no_vocals"))
		})

		It("removes the scratch dir", func() {
			expectNoScratchLeft()
		})

		It("runs the engine in a job scratch dir", func() {
			calls := dummyExecutor.CallsTo(dummy.DemucsBinPath)
			Expect(calls).To(HaveLen(1))
			Expect(filepath.Dir(calls[0].Dir)).To(Equal(scratchRoot))
			Expect(filepath.Base(calls[0].Dir)).To(Equal(result.JobID))
		})

		It("never downgrades high quality output", func() {
			Expect(dummyExecutor.CallsTo(dummy.FFmpegBinPath)).To(BeEmpty())
			Expect(result.Vocals.Format).To(Equal(splitentity.WAVFormat))
			Expect(result.Instrumental.Format).To(Equal(splitentity.WAVFormat))
		})

		Describe("With spleeter", func() {
			BeforeEach(func() {
				engineName = string(splitentity.SpleeterType)
			})

			It("finds spleeter's stems too", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ReadFile(result.Vocals.Path)).To(Equal("stem:vocals"))
				Expect(ReadFile(result.Instrumental.Path)).To(Equal("stem:accompaniment"))
				expectNoScratchLeft()
			})
		})

		Describe("With low quality", func() {
			BeforeEach(func() {
				qualityName = string(splitentity.LowQuality)
			})

			It("downgrades both artifacts to mono 22.05kHz mp3", func() {
				Expect(err).NotTo(HaveOccurred())

				for _, artifact := range []splitentity.Artifact{result.Vocals, result.Instrumental} {
					Expect(artifact.Format).To(Equal(splitentity.MP3Format))
					Expect(filepath.Ext(artifact.Path)).To(Equal(".mp3"))
					Expect(ReadFile(artifact.Path)).To(HavePrefix("mp3 ar=22050 ac=1 b=128k"))
				}

				Expect(ListDir(filepath.Join(outputRoot, "vocals"))).To(ConsistOf("song_vocals_2024_03_05_09_07.mp3"))
				Expect(ListDir(filepath.Join(outputRoot, "karaoke"))).To(ConsistOf("song_karaoke_2024_03_05_09_07.mp3"))
			})

			Describe("When ffmpeg is missing", func() {
				BeforeEach(func() {
					dummyExecutor.FFmpegMissing = true
				})

				It("still succeeds with wav artifacts", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(result.Vocals.Format).To(Equal(splitentity.WAVFormat))
					Expect(ReadFile(result.Vocals.Path)).To(Equal("stem:vocals"))
					expectNoScratchLeft()
				})
			})

			Describe("When ffmpeg fails", func() {
				BeforeEach(func() {
					dummyExecutor.FFmpegFails = true
				})

				It("still succeeds with wav artifacts", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(result.Instrumental.Format).To(Equal(splitentity.WAVFormat))
					Expect(ListDir(filepath.Join(outputRoot, "karaoke"))).To(ConsistOf("song_karaoke_2024_03_05_09_07.wav"))
				})
			})
		})
	})

	Describe("Failures", func() {
		failureCases := []struct {
			name         string
			breakIt      func()
			expectedMark error
		}{
			{"Engine failure", func() { dummyExecutor.EngineFails = true }, spliterrors.EngineFailureMark},
			{"Missing vocals", func() { dummyExecutor.StemFiles = []string{"no_vocals.wav"} }, spliterrors.MissingStemMark},
			{"Missing instrumental", func() { dummyExecutor.StemFiles = []string{"vocals.wav"} }, spliterrors.MissingStemMark},
			{"No engine output", func() { dummyExecutor.NoOutput = true }, spliterrors.NoEngineOutputMark},
			{"No track folder", func() { dummyExecutor.NoTrackFolder = true }, spliterrors.NoTrackFolderMark},
		}

		for _, failureCase := range failureCases {
			failureCase := failureCase

			Describe(failureCase.name, func() {
				BeforeEach(func() {
					failureCase.breakIt()
				})

				It("cleans up and reports what went wrong", func() {
					Expect(markers.Is(err, failureCase.expectedMark)).To(BeTrue())
					Expect(result).To(BeZero())
					expectNoScratchLeft()
					expectNoArtifacts()
				})
			})
		}

		Describe("Instrumental can't be placed", func() {
			BeforeEach(func() {
				blockedPath := filepath.Join(outputRoot, "karaoke", "song_karaoke_2024_03_05_09_07.wav")
				WriteFile(filepath.Join(blockedPath, "occupied"), "in the way")
			})

			It("takes the vocals back out and cleans up", func() {
				Expect(markers.Is(err, spliterrors.PlacementMark)).To(BeTrue())
				Expect(result).To(BeZero())
				Expect(ListDir(filepath.Join(outputRoot, "vocals"))).To(BeEmpty())
				expectNoScratchLeft()
			})
		})

		Describe("Unsupported engine", func() {
			BeforeEach(func() {
				engineName = "unknown-engine"
			})

			It("fails before creating a scratch dir", func() {
				Expect(markers.Is(err, spliterrors.UnsupportedEngineMark)).To(BeTrue())
				Expect(dummyExecutor.Invocations).To(BeEmpty())
				expectNoScratchLeft()
				Expect(ListDir(outputRoot)).To(BeEmpty())
			})
		})

		Describe("Unsupported quality", func() {
			BeforeEach(func() {
				qualityName = "medium"
			})

			It("fails before running anything", func() {
				Expect(markers.Is(err, spliterrors.UnsupportedQualityMark)).To(BeTrue())
				Expect(dummyExecutor.Invocations).To(BeEmpty())
				expectNoScratchLeft()
			})
		})

		Describe("Unreadable input", func() {
			BeforeEach(func() {
				inputPath = filepath.Join(filepath.Dir(inputPath), "not-there.mp3")
			})

			It("fails before running anything", func() {
				Expect(markers.Is(err, spliterrors.InputUnreadableMark)).To(BeTrue())
				Expect(dummyExecutor.Invocations).To(BeEmpty())
				expectNoScratchLeft()
			})
		})

		Describe("Input is a directory", func() {
			BeforeEach(func() {
				inputPath = filepath.Dir(inputPath)
			})

			It("fails as unreadable input", func() {
				Expect(markers.Is(err, spliterrors.InputUnreadableMark)).To(BeTrue())
			})
		})
	})

	Describe("Concurrent jobs", func() {
		It("keep to their own scratch dirs", func() {
			inputDir := filepath.Dir(inputPath)
			names := []string{"first", "second", "third"}

			results := make([]splitentity.Result, len(names))
			errs := make([]error, len(names))

			wg := sync.WaitGroup{}
			for i, name := range names {
				path := WriteFile(filepath.Join(inputDir, name+".wav"), name)

				wg.Add(1)
				go func(i int, path string) {
					defer GinkgoRecover()
					defer wg.Done()
					results[i], errs[i] = trackSplitter.Separate(context.Background(), path, engineName, qualityName)
				}(i, path)
			}
			wg.Wait()

			jobIDs := map[string]bool{}
			for i, name := range names {
				Expect(errs[i]).NotTo(HaveOccurred())
				Expect(strings.HasPrefix(filepath.Base(results[i].Vocals.Path), name+"_vocals_")).To(BeTrue())
				jobIDs[results[i].JobID] = true
			}

			Expect(jobIDs).To(HaveLen(len(names)))
			expectNoScratchLeft()
		})
	})
})
