package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	"github.com/veedubyou/track-splitter/src/shared/lib/executor"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

const (
	spleeterModel = "spleeter:2stems"
	// spleeter writes <track>/<stem>.wav straight into its output dir,
	// this extra level gives it the same shape as demucs' <model>/<track>/<stem>.wav
	spleeterModelDir = "spleeter"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Engine
type Engine interface {
	Run(ctx context.Context, engineType splitentity.EngineType, inputPath string, scratchRoot string) error
}

var _ Engine = Runner{}

type Config struct {
	DemucsBinPath   string
	SpleeterBinPath string
}

func NewRunner(config Config, executor executor.Executor) Runner {
	return Runner{
		demucsBinPath:   config.DemucsBinPath,
		spleeterBinPath: config.SpleeterBinPath,
		executor:        executor,
	}
}

type Runner struct {
	demucsBinPath   string
	spleeterBinPath string
	executor        executor.Executor
}

// Run blocks until the engine exits. Everything the engine writes lands under scratchRoot.
func (r Runner) Run(ctx context.Context, engineType splitentity.EngineType, inputPath string, scratchRoot string) error {
	absInputPath, err := filepath.Abs(inputPath)
	if err != nil {
		return cerr.Field("input_path", inputPath).
			Wrap(err).Error("Cannot convert input path to absolute format")
	}

	absScratchRoot, err := filepath.Abs(scratchRoot)
	if err != nil {
		return cerr.Field("scratch_root", scratchRoot).
			Wrap(err).Error("Cannot convert scratch root to absolute format")
	}

	// separation is a lengthy process, if we want to halt now is the time
	if ctx.Err() != nil {
		return cerr.Wrap(ctx.Err()).Error("Context cancelled before separation could happen")
	}

	switch engineType {
	case splitentity.DemucsType:
		return r.run(ctx, engineType, r.demucsBinPath, DemucsArgs(absInputPath, absScratchRoot), absScratchRoot)

	case splitentity.SpleeterType:
		return r.run(ctx, engineType, r.spleeterBinPath, SpleeterArgs(absInputPath, absScratchRoot), absScratchRoot)

	default:
		err := mark.Message(spliterrors.UnsupportedEngineMark,
			fmt.Sprintf("Engine %q is not supported", engineType))
		return cerr.Field("engine", engineType).Wrap(err).Error("Failed to run engine")
	}
}

func DemucsArgs(inputPath string, scratchRoot string) []string {
	return []string{"--two-stems", "vocals", "-o", scratchRoot, inputPath}
}

func SpleeterArgs(inputPath string, scratchRoot string) []string {
	return []string{"separate", "-p", spleeterModel, "-o", filepath.Join(scratchRoot, spleeterModelDir), inputPath}
}

func (r Runner) run(ctx context.Context, engineType splitentity.EngineType, binPath string, args []string, workingDir string) error {
	errctx := cerr.Fields(cerr.F{
		"engine":   engineType,
		"bin_path": binPath,
		"args":     args,
	})

	if binPath == "" {
		err := mark.Message(spliterrors.EngineFailureMark,
			fmt.Sprintf("No binary is configured for %s", engineType))
		return errctx.Wrap(err).Error("Failed to run engine")
	}

	logger := log.WithFields(log.Fields{
		"engine":     engineType,
		"args":       args,
		"workingDir": workingDir,
	})

	logger.Info(fmt.Sprintf("Running %s command", engineType))

	cmd := r.executor.Command(ctx, binPath, args...)
	cmd.SetDir(workingDir)

	output, err := cmd.CombinedOutput()
	if err != nil {
		markedErr := mark.Wrap(err, spliterrors.EngineFailureMark,
			fmt.Sprintf("Error occurred while running %s: %s", engineType, string(output)))
		return errctx.Field("engine_output", string(output)).
			Wrap(markedErr).Error(fmt.Sprintf("Failed to execute %s", engineType))
	}

	logger.Debug(string(output))
	logger.Info(fmt.Sprintf("Finished %s command", engineType))

	return nil
}
