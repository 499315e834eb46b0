package splitusecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/veedubyou/track-splitter/src/shared/cloud_storage/storagepath"
	"github.com/veedubyou/track-splitter/src/shared/cloud_storage/store"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
	splitevents "github.com/veedubyou/track-splitter/src/shared/split/events"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Separator
type Separator interface {
	Separate(ctx context.Context, inputPath string, engineName string, qualityName string) (splitentity.Result, error)
}

type SplitRequest struct {
	InputPath string
	Engine    string
	Quality   string
}

type SplitOutcome struct {
	Result           splitentity.Result
	VocalsRemoteURL  string
	KaraokeRemoteURL string
}

type Option func(u *Usecase)

func WithLedger(ledger splitstorage.Store) Option {
	return func(u *Usecase) {
		u.ledger = ledger
	}
}

func WithMirror(fileStore store.FileStore, pathGenerator storagepath.Generator) Option {
	return func(u *Usecase) {
		u.fileStore = fileStore
		u.pathGenerator = pathGenerator
	}
}

func WithEvents(publisher splitevents.Publisher) Option {
	return func(u *Usecase) {
		u.publisher = publisher
	}
}

func NewUsecase(separator Separator, options ...Option) Usecase {
	usecase := Usecase{
		separator: separator,
		publisher: splitevents.NoPublisher{},
		clock:     time.Now,
	}

	for _, option := range options {
		option(&usecase)
	}

	return usecase
}

// Usecase runs a separation and does the bookkeeping around it.
// The local artifacts are the source of truth: the ledger, mirror and events are best effort
// and never turn a successful separation into a failure.
type Usecase struct {
	separator     Separator
	ledger        splitstorage.Store
	fileStore     store.FileStore
	pathGenerator storagepath.Generator
	publisher     splitevents.Publisher
	clock         func() time.Time
}

func (u Usecase) Split(ctx context.Context, request SplitRequest) (SplitOutcome, error) {
	logger := log.WithFields(log.Fields{
		"input":   request.InputPath,
		"engine":  request.Engine,
		"quality": request.Quality,
	})

	result, err := u.separator.Separate(ctx, request.InputPath, request.Engine, request.Quality)
	if err != nil {
		u.recordFailure(ctx, request, err)
		return SplitOutcome{}, err
	}

	outcome := SplitOutcome{Result: result}
	if u.fileStore != nil {
		outcome.VocalsRemoteURL = u.mirror(ctx, result.Vocals)
		outcome.KaraokeRemoteURL = u.mirror(ctx, result.Instrumental)
	}

	u.recordSuccess(ctx, request, outcome)

	err = u.publisher.PublishStemsSeparated(ctx, splitevents.StemsSeparated{
		JobID:            result.JobID,
		BaseName:         result.BaseName,
		Engine:           result.Engine,
		Quality:          result.Quality,
		VocalsFile:       result.Vocals.FileName(),
		KaraokeFile:      result.Instrumental.FileName(),
		VocalsRemoteURL:  outcome.VocalsRemoteURL,
		KaraokeRemoteURL: outcome.KaraokeRemoteURL,
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to publish stems separated event")
	}

	return outcome, nil
}

func (u Usecase) GetRecord(ctx context.Context, id string) (splitstorage.SeparationRecord, error) {
	if u.ledger == nil {
		return splitstorage.SeparationRecord{}, mark.Message(splitstorage.RecordNotFoundMark,
			"No separation ledger is configured")
	}

	record, err := u.ledger.GetRecord(ctx, id)
	if err != nil {
		return splitstorage.SeparationRecord{}, cerr.Field("id", id).
			Wrap(err).Error("Failed to get separation record")
	}

	return record, nil
}

func (u Usecase) mirror(ctx context.Context, artifact splitentity.Artifact) string {
	remoteURL := u.pathGenerator.GeneratePath(artifact.Role.Token(), artifact.FileName())
	logger := log.WithFields(log.Fields{
		"path":       artifact.Path,
		"remote_url": remoteURL,
	})

	content, err := os.ReadFile(artifact.Path)
	if err != nil {
		logger.WithError(err).Warn("Failed to read artifact for mirroring")
		return ""
	}

	if err := u.fileStore.WriteFile(ctx, remoteURL, content); err != nil {
		logger.WithFields(log.Fields(cerr.CollectFields(err))).WithError(err).Warn("Failed to mirror artifact")
		return ""
	}

	logger.Info("Mirrored artifact")
	return remoteURL
}

func (u Usecase) recordSuccess(ctx context.Context, request SplitRequest, outcome SplitOutcome) {
	result := outcome.Result
	u.putRecord(ctx, splitstorage.SeparationRecord{
		ID:           result.JobID,
		InputName:    filepath.Base(request.InputPath),
		BaseName:     result.BaseName,
		Engine:       result.Engine,
		Quality:      result.Quality,
		Status:       splitstorage.CompletedStatus,
		Vocals:       artifactRecord(result.Vocals, outcome.VocalsRemoteURL),
		Instrumental: artifactRecord(result.Instrumental, outcome.KaraokeRemoteURL),
		CreatedAt:    u.clock(),
	})
}

func (u Usecase) recordFailure(ctx context.Context, request SplitRequest, splitErr error) {
	if u.ledger == nil {
		return
	}

	id, err := uuid.NewRandom()
	if err != nil {
		log.WithError(err).Warn("Failed to generate ID for failure record")
		return
	}

	u.putRecord(ctx, splitstorage.SeparationRecord{
		ID:        id.String(),
		InputName: filepath.Base(request.InputPath),
		BaseName:  splitentity.BaseName(request.InputPath),
		Engine:    splitentity.EngineType(request.Engine),
		Quality:   splitentity.QualityTier(request.Quality),
		Status:    splitstorage.FailedStatus,
		ErrorCode: spliterrors.Kind(splitErr),
		CreatedAt: u.clock(),
	})
}

func (u Usecase) putRecord(ctx context.Context, record splitstorage.SeparationRecord) {
	if u.ledger == nil {
		return
	}

	if err := u.ledger.PutRecord(ctx, record); err != nil {
		log.WithFields(log.Fields{
			"id":     record.ID,
			"status": record.Status,
		}).WithError(err).Warn("Failed to save separation record")
	}
}

func artifactRecord(artifact splitentity.Artifact, remoteURL string) *splitstorage.ArtifactRecord {
	return &splitstorage.ArtifactRecord{
		FileName:  artifact.FileName(),
		Format:    artifact.Format,
		RemoteURL: remoteURL,
	}
}
