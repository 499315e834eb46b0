package placement

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

const timestampLayout = "2006_01_02_15_04"

// Timestamp is minute resolution, two jobs on the same input within a minute share it
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func FileName(baseName string, role splitentity.StemRole, timestamp string) string {
	return fmt.Sprintf("%s_%s_%s.%s", baseName, role.Token(), timestamp, splitentity.WAVFormat)
}

func NewPlacer(outputRoot string) Placer {
	return Placer{outputRoot: outputRoot}
}

type Placer struct {
	outputRoot string
}

func (p Placer) RoleDir(role splitentity.StemRole) string {
	return filepath.Join(p.outputRoot, role.Token())
}

func (p Placer) EnsureDirs() error {
	for _, role := range splitentity.StemRoles {
		dir := p.RoleDir(role)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			markedErr := mark.Wrap(err, spliterrors.PlacementMark, "Failed to create destination directory")
			return cerr.Field("dir", dir).Wrap(markedErr).Error("Failed to prepare output directories")
		}
	}

	return nil
}

// Place moves the stem into its role's directory under the final artifact name.
// An existing file with that name is replaced.
func (p Placer) Place(stemPath string, role splitentity.StemRole, baseName string, timestamp string) (splitentity.Artifact, error) {
	destPath := filepath.Join(p.RoleDir(role), FileName(baseName, role, timestamp))

	errctx := cerr.Fields(cerr.F{
		"stem_path": stemPath,
		"dest_path": destPath,
		"role":      role,
	})

	if err := move(stemPath, destPath); err != nil {
		markedErr := mark.Wrap(err, spliterrors.PlacementMark, "Failed to move stem into place")
		return splitentity.Artifact{}, errctx.Wrap(markedErr).Error("Failed to place artifact")
	}

	log.WithFields(log.Fields{
		"role": role,
		"path": destPath,
	}).Info("Placed artifact")

	return splitentity.Artifact{
		Role:      role,
		BaseName:  baseName,
		Timestamp: timestamp,
		Format:    splitentity.WAVFormat,
		Path:      destPath,
	}, nil
}

func move(sourcePath string, destPath string) error {
	err := os.Rename(sourcePath, destPath)
	if err == nil {
		return nil
	}

	if _, statErr := os.Stat(sourcePath); statErr != nil {
		return err
	}

	// rename can't cross devices, scratch and output may be on different mounts
	if err := copyFile(sourcePath, destPath); err != nil {
		return err
	}

	return os.Remove(sourcePath)
}

func copyFile(sourcePath string, destPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		_ = dest.Close()
		_ = os.Remove(destPath)
		return err
	}

	return dest.Close()
}
