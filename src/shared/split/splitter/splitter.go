package splitter

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	"github.com/veedubyou/track-splitter/src/shared/lib/working_dir"
	"github.com/veedubyou/track-splitter/src/shared/split/engine"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
	"github.com/veedubyou/track-splitter/src/shared/split/placement"
	"github.com/veedubyou/track-splitter/src/shared/split/resolver"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Downgrader
type Downgrader interface {
	Downgrade(ctx context.Context, artifact splitentity.Artifact) splitentity.Artifact
}

type Clock func() time.Time

type Option func(s *Splitter)

func WithClock(clock Clock) Option {
	return func(s *Splitter) {
		s.clock = clock
	}
}

func NewSplitter(scratchDirPath string, outputDirPath string, engine engine.Engine, downgrader Downgrader, options ...Option) (Splitter, error) {
	scratchDir, err := working_dir.NewWorkingDir(scratchDirPath)
	if err != nil {
		return Splitter{}, cerr.Wrap(err).Error("Failed to set up scratch dir")
	}

	outputDir, err := working_dir.NewWorkingDir(outputDirPath)
	if err != nil {
		return Splitter{}, cerr.Wrap(err).Error("Failed to set up output dir")
	}

	splitter := Splitter{
		scratchDir: scratchDir,
		placer:     placement.NewPlacer(outputDir.Root()),
		engine:     engine,
		downgrader: downgrader,
		clock:      time.Now,
	}

	for _, option := range options {
		option(&splitter)
	}

	return splitter, nil
}

type Splitter struct {
	scratchDir working_dir.WorkingDir
	placer     placement.Placer
	engine     engine.Engine
	downgrader Downgrader
	clock      Clock
}

// Separate runs one job to completion: the engine splits the input in a private scratch dir,
// the vocals and instrumental stems are moved to the output tree, and low quality jobs are downgraded to mp3.
// The scratch dir is removed on every exit path.
func (s Splitter) Separate(ctx context.Context, inputPath string, engineName string, qualityName string) (splitentity.Result, error) {
	errctx := cerr.Fields(cerr.F{
		"input_path": inputPath,
		"engine":     engineName,
		"quality":    qualityName,
	})

	job, err := s.newJob(inputPath, engineName, qualityName)
	if err != nil {
		return splitentity.Result{}, errctx.Wrap(err).Error("Failed to start separation job")
	}

	errctx = errctx.Field("job_id", job.ID)
	logger := log.WithFields(log.Fields{
		"job_id":    job.ID,
		"input":     job.InputPath,
		"engine":    job.Engine,
		"quality":   job.Quality,
		"base_name": job.BaseName,
	})

	if err := s.placer.EnsureDirs(); err != nil {
		return splitentity.Result{}, errctx.Wrap(err).Error("Failed to prepare output directories")
	}

	scratchDir, cleanUp, err := s.scratchDir.NamedTempDir(job.ID)
	if err != nil {
		markedErr := mark.Wrap(err, spliterrors.ScratchMark, "Failed to create scratch dir")
		return splitentity.Result{}, errctx.Wrap(markedErr).Error("Failed to prepare separation job")
	}
	defer func() {
		cleanUp()
		logger.Debug("Cleaned up scratch dir")
	}()

	job.ScratchDir = scratchDir
	logger.Info("Starting separation job")

	if err := s.engine.Run(ctx, job.Engine, job.InputPath, job.ScratchDir); err != nil {
		return splitentity.Result{}, errctx.Wrap(err).Error("Engine failed to separate the input")
	}

	stems, err := resolver.Resolve(job.ScratchDir)
	if err != nil {
		return splitentity.Result{}, errctx.Wrap(err).Error("Failed to find the stems in engine output")
	}

	artifacts, err := s.place(job, stems)
	if err != nil {
		return splitentity.Result{}, errctx.Wrap(err).Error("Failed to place the stems")
	}

	if job.Quality == splitentity.LowQuality {
		for role, artifact := range artifacts {
			artifacts[role] = s.downgrader.Downgrade(ctx, artifact)
		}
	}

	result := splitentity.Result{
		JobID:        job.ID,
		BaseName:     job.BaseName,
		Engine:       job.Engine,
		Quality:      job.Quality,
		Vocals:       artifacts[splitentity.VocalsRole],
		Instrumental: artifacts[splitentity.InstrumentalRole],
	}

	logger.WithFields(log.Fields{
		"vocals":       result.Vocals.Path,
		"instrumental": result.Instrumental.Path,
	}).Info("Finished separation job")

	return result, nil
}

// newJob validates every argument before anything touches the filesystem
func (s Splitter) newJob(inputPath string, engineName string, qualityName string) (splitentity.SplitJob, error) {
	engineType, err := splitentity.ParseEngineType(engineName)
	if err != nil {
		return splitentity.SplitJob{}, err
	}

	quality, err := splitentity.ParseQualityTier(qualityName)
	if err != nil {
		return splitentity.SplitJob{}, err
	}

	if err := checkInput(inputPath); err != nil {
		return splitentity.SplitJob{}, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return splitentity.SplitJob{}, cerr.Wrap(err).Error("Failed to generate job ID")
	}

	return splitentity.SplitJob{
		ID:        id.String(),
		InputPath: inputPath,
		BaseName:  splitentity.BaseName(inputPath),
		Engine:    engineType,
		Quality:   quality,
		Timestamp: s.clock(),
	}, nil
}

func checkInput(inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return cerr.Field("input_path", inputPath).
			Wrap(mark.Wrap(err, spliterrors.InputUnreadableMark, "Input file can't be read")).
			Error("Failed to check input file")
	}

	if !info.Mode().IsRegular() {
		return cerr.Field("input_path", inputPath).
			Wrap(mark.Message(spliterrors.InputUnreadableMark, fmt.Sprintf("Input %s is not a regular file", inputPath))).
			Error("Failed to check input file")
	}

	return nil
}

// vocals go first. If the instrumental can't be placed, the vocals artifact is taken back out
// so a failed job leaves nothing behind in the output tree.
func (s Splitter) place(job splitentity.SplitJob, stems splitentity.ResolvedStems) (map[splitentity.StemRole]splitentity.Artifact, error) {
	timestamp := placement.Timestamp(job.Timestamp)
	artifacts := map[splitentity.StemRole]splitentity.Artifact{}

	for _, role := range splitentity.StemRoles {
		artifact, err := s.placer.Place(stems.Path(role), role, job.BaseName, timestamp)
		if err != nil {
			removeArtifacts(artifacts)
			return nil, err
		}

		artifacts[role] = artifact
	}

	return artifacts, nil
}

func removeArtifacts(artifacts map[splitentity.StemRole]splitentity.Artifact) {
	for _, artifact := range artifacts {
		if err := os.Remove(artifact.Path); err != nil && !os.IsNotExist(err) {
			log.WithField("path", artifact.Path).WithError(err).Warn("Failed to remove artifact of failed job")
		}
	}
}
