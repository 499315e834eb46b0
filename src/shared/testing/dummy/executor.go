package dummy

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/track-splitter/src/shared/lib/executor"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
)

const (
	DemucsBinPath   = "/somewhere/demucs"
	SpleeterBinPath = "/somewhere/spleeter"
	FFmpegBinPath   = "/somewhere/ffmpeg"

	DemucsModelDir = "htdemucs"
	EngineOutput   = "separating... done"
	FFmpegOutput   = "Conversion failed!"
)

var (
	DemucsStemFiles   = []string{"no_vocals.wav", "vocals.wav"}
	SpleeterStemFiles = []string{"accompaniment.wav", "vocals.wav"}
)

type Invocation struct {
	Name string
	Args []string
	Dir  string
}

var _ executor.Executor = &Executor{}

// Executor fakes the engine and ffmpeg binaries by writing the files the real ones would
func NewExecutor() *Executor {
	return &Executor{}
}

type Executor struct {
	// engines exit non-zero without writing anything
	EngineFails bool
	// engines write these files instead of their usual two stems
	StemFiles []string
	// engines write nothing
	NoOutput bool
	// engines write only the model level directory
	NoTrackFolder bool

	FFmpegMissing bool
	FFmpegFails   bool

	mutex       sync.Mutex
	Invocations []Invocation
}

func (e *Executor) LookPath(file string) (string, error) {
	if filepath.Base(file) == "ffmpeg" && e.FFmpegMissing {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}

	return file, nil
}

func (e *Executor) Command(_ context.Context, name string, args ...string) executor.Command {
	return &Command{
		executor: e,
		name:     name,
		args:     args,
	}
}

func (e *Executor) CallsTo(binPath string) []Invocation {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	var calls []Invocation
	for _, invocation := range e.Invocations {
		if invocation.Name == binPath {
			calls = append(calls, invocation)
		}
	}

	return calls
}

func (e *Executor) record(invocation Invocation) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.Invocations = append(e.Invocations, invocation)
}

var _ executor.Command = &Command{}

type Command struct {
	executor *Executor
	name     string
	args     []string
	dir      string
}

func (c *Command) SetDir(dir string) {
	c.dir = dir
}

func (c *Command) CombinedOutput() ([]byte, error) {
	c.executor.record(Invocation{Name: c.name, Args: c.args, Dir: c.dir})

	switch filepath.Base(c.name) {
	case "demucs":
		return c.runEngine(flagValue(c.args, "-o"), DemucsModelDir, DemucsStemFiles)
	case "spleeter":
		return c.runEngine(flagValue(c.args, "-o"), "", SpleeterStemFiles)
	case "ffmpeg":
		return c.runFFmpeg()
	default:
		return nil, errors.Newf("dummy executor doesn't know %s", c.name)
	}
}

// modelDir is empty when the engine writes tracks straight into its output dir
func (c *Command) runEngine(outputDir string, modelDir string, stemFiles []string) ([]byte, error) {
	if c.executor.EngineFails {
		return []byte("engine exploded"), errors.New("exit status 1")
	}

	if c.executor.NoOutput {
		return []byte(EngineOutput), nil
	}

	if c.executor.StemFiles != nil {
		stemFiles = c.executor.StemFiles
	}

	inputPath := c.args[len(c.args)-1]
	trackDir := filepath.Join(outputDir, modelDir)

	if c.executor.NoTrackFolder {
		return []byte(EngineOutput), os.MkdirAll(trackDir, os.ModePerm)
	}

	trackDir = filepath.Join(trackDir, splitentity.BaseName(inputPath))
	if err := os.MkdirAll(trackDir, os.ModePerm); err != nil {
		return nil, err
	}

	for _, stemFile := range stemFiles {
		content := "stem:" + strings.TrimSuffix(stemFile, filepath.Ext(stemFile))
		if err := os.WriteFile(filepath.Join(trackDir, stemFile), []byte(content), 0o644); err != nil {
			return nil, err
		}
	}

	return []byte(EngineOutput), nil
}

func (c *Command) runFFmpeg() ([]byte, error) {
	destPath := c.args[len(c.args)-1]

	if c.executor.FFmpegFails {
		// ffmpeg leaves a partial file behind when it dies mid encode
		_ = os.WriteFile(destPath, []byte("partial"), 0o644)
		return []byte(FFmpegOutput), errors.New("exit status 1")
	}

	sourcePath := flagValue(c.args, "-i")
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}

	content := "mp3 ar=" + flagValue(c.args, "-ar") +
		" ac=" + flagValue(c.args, "-ac") +
		" b=" + flagValue(c.args, "-b:a") +
		" from " + string(source)

	return nil, os.WriteFile(destPath, []byte(content), 0o644)
}

func flagValue(args []string, flag string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}
