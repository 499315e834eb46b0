package downgrade_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/shared/split/downgrade"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	. "github.com/veedubyou/track-splitter/src/shared/testing"
	"github.com/veedubyou/track-splitter/src/shared/testing/dummy"
)

var _ = Describe("Downgrade", func() {
	var (
		dummyExecutor *dummy.Executor
		ffmpegBinPath string
		wavPath       string
		original      splitentity.Artifact
		result        splitentity.Artifact
	)

	expectOriginalKept := func() {
		Expect(result).To(Equal(original))
		Expect(ReadFile(wavPath)).To(Equal("full quality"))
		_, err := os.Stat(downgrade.MP3Path(wavPath))
		Expect(os.IsNotExist(err)).To(BeTrue())
	}

	BeforeEach(func() {
		dummyExecutor = dummy.NewExecutor()
		ffmpegBinPath = dummy.FFmpegBinPath

		wavPath = WriteFile(filepath.Join(MakeTempDir(), "song_vocals_2024_03_05_09_07.wav"), "full quality")
		original = splitentity.Artifact{
			Role:      splitentity.VocalsRole,
			BaseName:  "song",
			Timestamp: "2024_03_05_09_07",
			Format:    splitentity.WAVFormat,
			Path:      wavPath,
		}
	})

	JustBeforeEach(func() {
		downgrader := downgrade.NewDowngrader(ffmpegBinPath, dummyExecutor)
		result = downgrader.Downgrade(context.Background(), original)
	})

	Describe("Happy path", func() {
		It("replaces the wav with a sibling mp3", func() {
			Expect(result.Path).To(Equal(filepath.Join(filepath.Dir(wavPath), "song_vocals_2024_03_05_09_07.mp3")))
			Expect(result.Format).To(Equal(splitentity.MP3Format))
			Expect(result.Role).To(Equal(original.Role))
			Expect(result.Timestamp).To(Equal(original.Timestamp))

			_, err := os.Stat(wavPath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("encodes mono at 22.05kHz and 128kbps", func() {
			calls := dummyExecutor.CallsTo(ffmpegBinPath)
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Args).To(Equal(downgrade.Args(wavPath, result.Path)))

			Expect(ReadFile(result.Path)).To(Equal("mp3 ar=22050 ac=1 b=128k from full quality"))
		})
	})

	Describe("No ffmpeg configured", func() {
		BeforeEach(func() {
			ffmpegBinPath = ""
		})

		It("keeps the original", func() {
			expectOriginalKept()
			Expect(dummyExecutor.Invocations).To(BeEmpty())
		})
	})

	Describe("ffmpeg isn't installed", func() {
		BeforeEach(func() {
			dummyExecutor.FFmpegMissing = true
		})

		It("keeps the original", func() {
			expectOriginalKept()
			Expect(dummyExecutor.Invocations).To(BeEmpty())
		})
	})

	Describe("ffmpeg fails", func() {
		BeforeEach(func() {
			dummyExecutor.FFmpegFails = true
		})

		It("keeps the original and removes the partial mp3", func() {
			Expect(dummyExecutor.CallsTo(ffmpegBinPath)).To(HaveLen(1))
			expectOriginalKept()
		})
	})

	It("swaps only the extension for the mp3 path", func() {
		Expect(downgrade.MP3Path("/out/vocals/my.song_vocals_x.WAV")).To(Equal("/out/vocals/my.song_vocals_x.mp3"))
	})
})
