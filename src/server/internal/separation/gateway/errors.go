package separationgateway

import (
	"github.com/cockroachdb/errors/markers"
	"github.com/veedubyou/track-splitter/src/server/internal/errors/api"
	separationerrors "github.com/veedubyou/track-splitter/src/server/internal/separation/errors"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
)

func NewSplitError(err error) *api.Error {
	switch {
	case markers.Is(err, spliterrors.UnsupportedEngineMark):
		return api.CommitError(err, separationerrors.UnsupportedEngineCode,
			"That separation engine isn't supported, choose demucs or spleeter")

	case markers.Is(err, spliterrors.UnsupportedQualityMark):
		return api.CommitError(err, separationerrors.UnsupportedQualityCode,
			"That quality isn't supported, choose high or low")

	case markers.Is(err, spliterrors.InputUnreadableMark):
		return api.CommitError(err, separationerrors.BadUploadCode,
			"The uploaded track couldn't be read, please upload it again")

	case markers.Is(err, spliterrors.EngineFailureMark):
		return api.CommitError(err, separationerrors.EngineFailureCode,
			"The separation engine couldn't process this track")

	case markers.Is(err, spliterrors.NoEngineOutputMark):
		return api.CommitError(err, separationerrors.SeparationOutputCode,
			"The separation engine finished without producing any output")

	case markers.Is(err, spliterrors.NoTrackFolderMark):
		return api.CommitError(err, separationerrors.SeparationOutputCode,
			"The separation engine produced output for no track")

	case markers.Is(err, spliterrors.MissingStemMark):
		return api.CommitError(err, separationerrors.SeparationOutputCode,
			"The separation engine didn't produce both a vocal and an instrumental track")

	case markers.Is(err, spliterrors.PlacementMark), markers.Is(err, spliterrors.ScratchMark):
		return api.CommitError(err, separationerrors.StorageFailureCode,
			"The separated tracks couldn't be saved")

	default:
		return api.NewInternalError(err)
	}
}

func NewRecordError(err error) *api.Error {
	if markers.Is(err, splitstorage.RecordNotFoundMark) {
		return api.CommitError(err, separationerrors.RecordNotFoundCode,
			"No separation was found for this ID")
	}

	return api.CommitError(err, api.DefaultErrorCode, "The separation couldn't be looked up")
}

func NewBadUploadError(err error, userMessage string) *api.Error {
	return api.CommitError(err, separationerrors.BadUploadCode, userMessage)
}

func NewArtifactNotFoundError(err error) *api.Error {
	return api.CommitError(err, separationerrors.ArtifactNotFoundCode, "That track doesn't exist")
}

func NewInvalidRoleError(err error) *api.Error {
	return api.CommitError(err, separationerrors.InvalidRoleCode, "Tracks are either vocals or karaoke")
}
