package spliterrors

import (
	"github.com/cockroachdb/errors/domains"
	"github.com/cockroachdb/errors/markers"
)

var (
	UnsupportedEngineMark    = domains.New("unsupported_engine")
	UnsupportedQualityMark   = domains.New("unsupported_quality")
	InputUnreadableMark      = domains.New("input_unreadable")
	EngineFailureMark        = domains.New("engine_failure")
	NoEngineOutputMark       = domains.New("no_engine_output")
	NoTrackFolderMark        = domains.New("no_track_folder")
	MissingStemMark          = domains.New("missing_stem")
	PlacementMark            = domains.New("placement_failure")
	DowngradeUnavailableMark = domains.New("downgrade_unavailable")
	ScratchMark              = domains.New("scratch_failure")
)

// DowngradeUnavailableMark has no kind: a failed downgrade keeps the wav and never fails the job
var kinds = []struct {
	mark error
	kind string
}{
	{UnsupportedEngineMark, "unsupported_engine"},
	{UnsupportedQualityMark, "unsupported_quality"},
	{InputUnreadableMark, "input_unreadable"},
	{EngineFailureMark, "engine_failure"},
	{NoEngineOutputMark, "no_engine_output"},
	{NoTrackFolderMark, "no_track_folder"},
	{MissingStemMark, "missing_stem"},
	{PlacementMark, "placement_failure"},
	{ScratchMark, "scratch_failure"},
}

const UnknownKind = "unknown"

// Kind names the failure for records and messages, UnknownKind when the error carries none of the marks
func Kind(err error) string {
	for _, k := range kinds {
		if markers.Is(err, k.mark) {
			return k.kind
		}
	}

	return UnknownKind
}
