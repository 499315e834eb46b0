package inputs_test

import (
	"path/filepath"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/cli/internal/inputs"
	. "github.com/veedubyou/track-splitter/src/shared/testing"
)

var _ = Describe("Inputs", func() {
	var dir string

	BeforeEach(func() {
		dir = MakeTempDir()
		WriteFile(filepath.Join(dir, "b_song.wav"), "wav audio")
		WriteFile(filepath.Join(dir, "a_song.mp3"), "mp3 audio, a bit longer")
		WriteFile(filepath.Join(dir, "a_song.flac"), "flac audio")
		WriteFile(filepath.Join(dir, "notes.txt"), "not audio")
		WriteFile(filepath.Join(dir, "nested", "c_song.mp3"), "nested audio")
	})

	Describe("List", func() {
		It("lists only top level audio files by name", func() {
			files := ExpectSuccess(inputs.List(dir))

			Expect(files).To(Equal([]inputs.AudioFile{
				{Name: "a_song.flac", Path: filepath.Join(dir, "a_song.flac"), Size: 10},
				{Name: "a_song.mp3", Path: filepath.Join(dir, "a_song.mp3"), Size: 23},
				{Name: "b_song.wav", Path: filepath.Join(dir, "b_song.wav"), Size: 9},
			}))
		})

		It("fails on a missing dir", func() {
			_, err := inputs.List(filepath.Join(dir, "nope"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Find", func() {
		It("tries extensions in order for a bare name", func() {
			Expect(inputs.Find(dir, "a_song")).To(Equal(filepath.Join(dir, "a_song.mp3")))
			Expect(inputs.Find(dir, "b_song")).To(Equal(filepath.Join(dir, "b_song.wav")))
		})

		It("accepts a full file name", func() {
			Expect(inputs.Find(dir, "a_song.flac")).To(Equal(filepath.Join(dir, "a_song.flac")))
		})

		It("accepts a path", func() {
			path := filepath.Join(dir, "nested", "c_song.mp3")
			Expect(inputs.Find(dir, path)).To(Equal(path))
		})

		It("accepts a list number", func() {
			Expect(inputs.Find(dir, "3")).To(Equal(filepath.Join(dir, "b_song.wav")))
		})

		It("prefers a track named like a number over the list number", func() {
			WriteFile(filepath.Join(dir, "1.mp3"), "numbered track")

			Expect(inputs.Find(dir, "1")).To(Equal(filepath.Join(dir, "1.mp3")))
			Expect(inputs.Find(dir, "2")).To(Equal(filepath.Join(dir, "a_song.flac")))
		})

		DescribeTable("reports unknown inputs as not found",
			func(query string) {
				_, err := inputs.Find(dir, query)
				Expect(err).To(HaveOccurred())
				Expect(markers.Is(err, inputs.NotFoundMark)).To(BeTrue())
			},
			Entry("unknown name", "missing"),
			Entry("no audio extension matches", "notes"),
			Entry("index too large", "4"),
			Entry("index zero", "0"),
			Entry("blank", "  "),
		)
	})
})
