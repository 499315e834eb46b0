package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

const stemExt = ".wav"

// Resolve finds the vocals and instrumental files in the tree an engine wrote:
// <scratchRoot>/<model>/<track>/<stem>.wav
// Where a level holds several directories, or a role matches several files,
// the lexically first one is taken.
func Resolve(scratchRoot string) (splitentity.ResolvedStems, error) {
	errctx := cerr.Field("scratch_root", scratchRoot)

	modelDir, found, err := firstSubdir(scratchRoot)
	if err != nil {
		return splitentity.ResolvedStems{}, errctx.Wrap(err).Error("Failed to read scratch root")
	}
	if !found {
		err := mark.Message(spliterrors.NoEngineOutputMark, "Engine produced no output directory")
		return splitentity.ResolvedStems{}, errctx.Wrap(err).Error("Failed to resolve engine output")
	}

	errctx = errctx.Field("model_dir", modelDir)

	trackDir, found, err := firstSubdir(modelDir)
	if err != nil {
		return splitentity.ResolvedStems{}, errctx.Wrap(err).Error("Failed to read model directory")
	}
	if !found {
		err := mark.Message(spliterrors.NoTrackFolderMark, "Engine output has no track directory")
		return splitentity.ResolvedStems{}, errctx.Wrap(err).Error("Failed to resolve engine output")
	}

	errctx = errctx.Field("track_dir", trackDir)

	stems, err := classifyStems(trackDir)
	if err != nil {
		return splitentity.ResolvedStems{}, errctx.Wrap(err).Error("Failed to read track directory")
	}

	for _, role := range splitentity.StemRoles {
		if _, ok := stems[role]; !ok {
			err := mark.Message(spliterrors.MissingStemMark,
				fmt.Sprintf("No %s stem was found in the engine output", role.Name()))
			return splitentity.ResolvedStems{}, errctx.Field("role", role).
				Wrap(err).Error("Failed to resolve engine output")
		}
	}

	log.WithFields(log.Fields{
		"vocals":       stems[splitentity.VocalsRole],
		"instrumental": stems[splitentity.InstrumentalRole],
	}).Debug("Resolved engine output")

	return splitentity.ResolvedStems{
		VocalsPath:       stems[splitentity.VocalsRole],
		InstrumentalPath: stems[splitentity.InstrumentalRole],
	}, nil
}

// os.ReadDir returns entries sorted by file name
func firstSubdir(dir string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			return filepath.Join(dir, entry.Name()), true, nil
		}
	}

	return "", false, nil
}

func classifyStems(trackDir string) (map[splitentity.StemRole]string, error) {
	entries, err := os.ReadDir(trackDir)
	if err != nil {
		return nil, err
	}

	stems := map[splitentity.StemRole]string{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.EqualFold(filepath.Ext(fileName), stemExt) {
			continue
		}

		role, ok := splitentity.ClassifyStem(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
		if !ok {
			continue
		}

		if _, taken := stems[role]; taken {
			continue
		}

		stems[role] = filepath.Join(trackDir, fileName)
	}

	return stems, nil
}
