package gateway

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/veedubyou/track-splitter/src/server/api_error"
	"github.com/veedubyou/track-splitter/src/server/internal/errors/api"
	separationerrors "github.com/veedubyou/track-splitter/src/server/internal/separation/errors"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

var httpStatusCodeMap = map[api.ErrorCode]int{
	api.DefaultErrorCode:                    http.StatusInternalServerError,
	separationerrors.UnsupportedEngineCode:  http.StatusBadRequest,
	separationerrors.UnsupportedQualityCode: http.StatusBadRequest,
	separationerrors.BadUploadCode:          http.StatusBadRequest,
	separationerrors.EngineFailureCode:      http.StatusBadGateway,
	separationerrors.SeparationOutputCode:   http.StatusInternalServerError,
	separationerrors.StorageFailureCode:     http.StatusInternalServerError,
	separationerrors.RecordNotFoundCode:     http.StatusNotFound,
	separationerrors.ArtifactNotFoundCode:   http.StatusNotFound,
	separationerrors.InvalidRoleCode:        http.StatusBadRequest,
}

func StatusCode(code api.ErrorCode) (int, bool) {
	statusCode, ok := httpStatusCodeMap[code]
	return statusCode, ok
}

func ErrorResponse(c echo.Context, err *api.Error) error {
	statusCode, ok := StatusCode(err.ErrorCode)
	if !ok {
		msg := fmt.Sprintf("Error code %s has no HTTP status code mapping", err.ErrorCode)
		panic(msg)
	}

	cerr.Log(cerr.Fields(cerr.F{
		"error_code":  err.ErrorCode,
		"status_code": statusCode,
		"path":        c.Request().URL.Path,
	}).Wrap(err.InternalError).Error(err.UserMessage))

	return c.JSON(statusCode, api_error.JSONAPIError{
		Code: string(err.ErrorCode),
		Msg:  err.UserMessage,
	})
}
