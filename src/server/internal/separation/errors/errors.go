package separationerrors

import "github.com/veedubyou/track-splitter/src/server/internal/errors/api"

const (
	UnsupportedEngineCode  = api.ErrorCode("unsupported_engine")
	UnsupportedQualityCode = api.ErrorCode("unsupported_quality")
	BadUploadCode          = api.ErrorCode("bad_upload")
	EngineFailureCode      = api.ErrorCode("engine_failure")
	SeparationOutputCode   = api.ErrorCode("separation_output_invalid")
	StorageFailureCode     = api.ErrorCode("storage_failure")
	RecordNotFoundCode     = api.ErrorCode("record_not_found")
	ArtifactNotFoundCode   = api.ErrorCode("artifact_not_found")
	InvalidRoleCode        = api.ErrorCode("invalid_role")
)
