package separationgateway

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/veedubyou/track-splitter/src/server/internal/errors/gateway"
	"github.com/veedubyou/track-splitter/src/shared/lib/working_dir"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
	splitusecase "github.com/veedubyou/track-splitter/src/shared/split/usecase"
)

const (
	AudioField   = "audio"
	EngineField  = "engine"
	QualityField = "quality"

	defaultEngine  = splitentity.DemucsType
	defaultQuality = splitentity.HighQuality
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Usecase
type Usecase interface {
	Split(ctx context.Context, request splitusecase.SplitRequest) (splitusecase.SplitOutcome, error)
	GetRecord(ctx context.Context, id string) (splitstorage.SeparationRecord, error)
}

type SeparationResponse struct {
	ID               string `json:"id"`
	Engine           string `json:"engine"`
	Quality          string `json:"quality"`
	Vocals           string `json:"vocals"`
	Karaoke          string `json:"karaoke"`
	VocalsURL        string `json:"vocals_url"`
	KaraokeURL       string `json:"karaoke_url"`
	VocalsRemoteURL  string `json:"vocals_remote_url,omitempty"`
	KaraokeRemoteURL string `json:"karaoke_remote_url,omitempty"`
}

func DownloadPath(role splitentity.StemRole, fileName string) string {
	return fmt.Sprintf("/downloads/%s/%s", role.Token(), fileName)
}

type Gateway struct {
	usecase   Usecase
	inputDir  string
	outputDir string
}

func NewGateway(usecase Usecase, inputDir string, outputDir string) Gateway {
	return Gateway{
		usecase:   usecase,
		inputDir:  inputDir,
		outputDir: outputDir,
	}
}

func (g Gateway) CreateSeparation(c echo.Context) error {
	fileHeader, err := c.FormFile(AudioField)
	if err != nil {
		err = errors.Wrap(err, "Failed to get uploaded file")
		return gateway.ErrorResponse(c, NewBadUploadError(err, "No audio file was uploaded"))
	}

	fileName := filepath.Base(fileHeader.Filename)
	if fileName == "." || fileName == string(filepath.Separator) || !splitentity.IsAudioFile(fileName) {
		err = errors.Errorf("Uploaded file %q is not a supported audio file", fileHeader.Filename)
		return gateway.ErrorResponse(c, NewBadUploadError(err,
			fmt.Sprintf("Audio files must be one of: %s", strings.Join(splitentity.AudioExtensions, ", "))))
	}

	inputPath, cleanUp, err := g.saveUpload(fileHeader, fileName)
	if err != nil {
		err = errors.Wrap(err, "Failed to save uploaded file")
		return gateway.ErrorResponse(c, NewBadUploadError(err, "The uploaded file couldn't be saved"))
	}
	defer cleanUp()

	outcome, err := g.usecase.Split(c.Request().Context(), splitusecase.SplitRequest{
		InputPath: inputPath,
		Engine:    formValue(c, EngineField, string(defaultEngine)),
		Quality:   formValue(c, QualityField, string(defaultQuality)),
	})
	if err != nil {
		return gateway.ErrorResponse(c, NewSplitError(err))
	}

	result := outcome.Result
	return c.JSON(http.StatusCreated, SeparationResponse{
		ID:               result.JobID,
		Engine:           string(result.Engine),
		Quality:          string(result.Quality),
		Vocals:           result.Vocals.FileName(),
		Karaoke:          result.Instrumental.FileName(),
		VocalsURL:        DownloadPath(splitentity.VocalsRole, result.Vocals.FileName()),
		KaraokeURL:       DownloadPath(splitentity.InstrumentalRole, result.Instrumental.FileName()),
		VocalsRemoteURL:  outcome.VocalsRemoteURL,
		KaraokeRemoteURL: outcome.KaraokeRemoteURL,
	})
}

func (g Gateway) GetSeparation(c echo.Context, id string) error {
	record, err := g.usecase.GetRecord(c.Request().Context(), id)
	if err != nil {
		return gateway.ErrorResponse(c, NewRecordError(err))
	}

	return c.JSON(http.StatusOK, record)
}

func (g Gateway) Download(c echo.Context, roleToken string, fileName string) error {
	role, ok := splitentity.ParseStemRole(roleToken)
	if !ok {
		err := errors.Errorf("Role %q is not a stem role", roleToken)
		return gateway.ErrorResponse(c, NewInvalidRoleError(err))
	}

	// only plain file names, nothing that climbs out of the role directory
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		err := errors.Errorf("File name %q is not a plain file name", fileName)
		return gateway.ErrorResponse(c, NewArtifactNotFoundError(err))
	}

	path := filepath.Join(g.outputDir, role.Token(), fileName)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if err == nil {
			err = errors.Errorf("%s is not a regular file", path)
		}
		return gateway.ErrorResponse(c, NewArtifactNotFoundError(errors.Wrap(err, "Failed to find artifact")))
	}

	return c.Attachment(path, fileName)
}

func formValue(c echo.Context, key string, fallback string) string {
	value := strings.TrimSpace(c.FormValue(key))
	if value == "" {
		return fallback
	}

	return strings.ToLower(value)
}

// saveUpload keeps every upload in its own directory, so uploads sharing a file name
// never overwrite each other. The file name still decides the artifact names.
func (g Gateway) saveUpload(fileHeader *multipart.FileHeader, fileName string) (string, working_dir.CleanUpFunc, error) {
	uploadDir, err := working_dir.NewWorkingDir(g.inputDir)
	if err != nil {
		return "", nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", nil, errors.Wrap(err, "Failed to generate upload ID")
	}

	dir, cleanUp, err := uploadDir.NamedTempDir(id.String())
	if err != nil {
		return "", nil, errors.Wrap(err, "Failed to create upload dir")
	}

	destPath := filepath.Join(dir, fileName)
	if err := writeUpload(fileHeader, destPath); err != nil {
		cleanUp()
		return "", nil, err
	}

	return destPath, cleanUp, nil
}

func writeUpload(fileHeader *multipart.FileHeader, destPath string) error {
	source, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "Failed to open uploaded file")
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, "Failed to create input file")
	}

	if _, err := io.Copy(dest, source); err != nil {
		_ = dest.Close()
		return errors.Wrap(err, "Failed to write input file")
	}

	return dest.Close()
}
