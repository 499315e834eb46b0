package splitentity_test

import (
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
	. "github.com/veedubyou/track-splitter/src/shared/testing"
)

var _ = Describe("Entity", func() {
	Describe("Engines", func() {
		It("parses exact engine names only", func() {
			Expect(ExpectSuccess(splitentity.ParseEngineType("demucs"))).To(Equal(splitentity.DemucsType))
			Expect(ExpectSuccess(splitentity.ParseEngineType("spleeter"))).To(Equal(splitentity.SpleeterType))

			_, err := splitentity.ParseEngineType("Demucs")
			Expect(markers.Is(err, spliterrors.UnsupportedEngineMark)).To(BeTrue())
		})

		DescribeTable("matches unique prefixes",
			func(prefix string, expected splitentity.EngineType) {
				Expect(ExpectSuccess(splitentity.MatchEngineType(prefix))).To(Equal(expected))
			},
			Entry("single letter", "d", splitentity.DemucsType),
			Entry("upper case", "SPL", splitentity.SpleeterType),
			Entry("full name", "demucs", splitentity.DemucsType),
			Entry("surrounding space", " spleeter ", splitentity.SpleeterType),
		)

		DescribeTable("rejects unknown prefixes",
			func(prefix string) {
				_, err := splitentity.MatchEngineType(prefix)
				Expect(markers.Is(err, spliterrors.UnsupportedEngineMark)).To(BeTrue())
			},
			Entry("empty", ""),
			Entry("no match", "x"),
			Entry("longer than the name", "demucsx"),
		)
	})

	Describe("Quality", func() {
		It("accepts high and low", func() {
			Expect(ExpectSuccess(splitentity.ParseQualityTier("high"))).To(Equal(splitentity.HighQuality))
			Expect(ExpectSuccess(splitentity.ParseQualityTier("low"))).To(Equal(splitentity.LowQuality))
		})

		It("rejects anything else", func() {
			_, err := splitentity.ParseQualityTier("lossless")
			Expect(markers.Is(err, spliterrors.UnsupportedQualityMark)).To(BeTrue())
			Expect(spliterrors.Kind(err)).To(Equal("unsupported_quality"))
		})
	})

	Describe("Stem classification", func() {
		DescribeTable("by base name",
			func(baseName string, expectedRole splitentity.StemRole, expectedOK bool) {
				role, ok := splitentity.ClassifyStem(baseName)
				Expect(ok).To(Equal(expectedOK))
				Expect(role).To(Equal(expectedRole))
			},
			Entry("demucs vocals", "vocals", splitentity.VocalsRole, true),
			Entry("demucs instrumental", "no_vocals", splitentity.InstrumentalRole, true),
			Entry("spleeter instrumental", "accompaniment", splitentity.InstrumentalRole, true),
			Entry("prefixed vocals", "track_vocals", splitentity.VocalsRole, true),
			Entry("upper case", "Track_Accompaniment", splitentity.InstrumentalRole, true),
			Entry("other stems", "drums", splitentity.StemRole(""), false),
		)

		It("parses role tokens", func() {
			role, ok := splitentity.ParseStemRole("karaoke")
			Expect(ok).To(BeTrue())
			Expect(role).To(Equal(splitentity.InstrumentalRole))

			_, ok = splitentity.ParseStemRole("drums")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Input files", func() {
		It("accepts the supported audio extensions in any case", func() {
			for _, name := range []string{"a.mp3", "a.wav", "a.flac", "a.ogg", "a.M4A"} {
				Expect(splitentity.IsAudioFile(name)).To(BeTrue(), name)
			}

			Expect(splitentity.IsAudioFile("a.txt")).To(BeFalse())
			Expect(splitentity.IsAudioFile("mp3")).To(BeFalse())
		})

		It("derives the base name from the file name", func() {
			Expect(splitentity.BaseName("/music/input/My Song.live.flac")).To(Equal("My Song.live"))
		})
	})
})
