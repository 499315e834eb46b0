package spliterrors_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

var _ = Describe("Kind", func() {
	DescribeTable("names each job failure",
		func(marker error, expectedKind string) {
			err := cerr.Field("job_id", "job-ID").
				Wrap(mark.Message(marker, "it broke")).
				Error("Failed to separate")

			Expect(spliterrors.Kind(err)).To(Equal(expectedKind))
		},
		Entry("unsupported engine", spliterrors.UnsupportedEngineMark, "unsupported_engine"),
		Entry("unsupported quality", spliterrors.UnsupportedQualityMark, "unsupported_quality"),
		Entry("unreadable input", spliterrors.InputUnreadableMark, "input_unreadable"),
		Entry("engine failure", spliterrors.EngineFailureMark, "engine_failure"),
		Entry("no engine output", spliterrors.NoEngineOutputMark, "no_engine_output"),
		Entry("no track folder", spliterrors.NoTrackFolderMark, "no_track_folder"),
		Entry("missing stem", spliterrors.MissingStemMark, "missing_stem"),
		Entry("placement", spliterrors.PlacementMark, "placement_failure"),
		Entry("scratch", spliterrors.ScratchMark, "scratch_failure"),
		Entry("downgrade, which never fails a job", spliterrors.DowngradeUnavailableMark, spliterrors.UnknownKind),
	)

	It("is unknown for unmarked errors", func() {
		Expect(spliterrors.Kind(errors.New("boom"))).To(Equal(spliterrors.UnknownKind))
	})
})
