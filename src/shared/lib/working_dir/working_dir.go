package working_dir

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

type CleanUpFunc func()

func NewWorkingDir(workingDirStr string) (WorkingDir, error) {
	absPath, err := filepath.Abs(workingDirStr)
	if err != nil {
		return WorkingDir{}, cerr.Field("working_dir", workingDirStr).
			Wrap(err).Error("Failed to convert working dir to absolute format")
	}

	return WorkingDir{root: absPath}, nil
}

type WorkingDir struct {
	root string
}

func (w WorkingDir) Root() string {
	return w.root
}

// NamedTempDir creates <root>/<name>. The returned clean up func removes it with everything inside.
func (w WorkingDir) NamedTempDir(name string) (string, CleanUpFunc, error) {
	errctx := cerr.Field("working_dir", w.root).Field("temp_dir_name", name)

	if err := os.MkdirAll(w.root, os.ModePerm); err != nil {
		return "", nil, errctx.Wrap(err).Error("Failed to create working dir")
	}

	tempDir := filepath.Join(w.root, name)
	if err := os.Mkdir(tempDir, os.ModePerm); err != nil {
		return "", nil, errctx.Wrap(err).Error("Failed to create temp dir")
	}

	cleanUp := func() {
		if err := os.RemoveAll(tempDir); err != nil {
			log.WithFields(log.Fields{
				"temp_dir": tempDir,
			}).WithError(err).Warn("Failed to clean up temp dir")
		}
	}

	return tempDir, cleanUp, nil
}
