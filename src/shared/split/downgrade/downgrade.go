package downgrade

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	"github.com/veedubyou/track-splitter/src/shared/lib/executor"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

const (
	SampleRate = "22050"
	Channels   = "1"
	Bitrate    = "128k"
)

func NewDowngrader(ffmpegBinPath string, executor executor.Executor) Downgrader {
	return Downgrader{
		ffmpegBinPath: ffmpegBinPath,
		executor:      executor,
	}
}

type Downgrader struct {
	ffmpegBinPath string
	executor      executor.Executor
}

func Args(sourcePath string, destPath string) []string {
	return []string{"-y", "-hide_banner", "-loglevel", "error",
		"-i", sourcePath,
		"-ar", SampleRate,
		"-ac", Channels,
		"-b:a", Bitrate,
		destPath}
}

func MP3Path(wavPath string) string {
	ext := "." + splitentity.WAVFormat
	if strings.HasSuffix(strings.ToLower(wavPath), ext) {
		wavPath = wavPath[:len(wavPath)-len(ext)]
	}

	return wavPath + "." + splitentity.MP3Format
}

// Downgrade re-encodes the artifact to mono 22.05kHz 128kbps mp3 and removes the wav.
// It never fails the job: when ffmpeg is missing or the encode fails, the wav artifact is returned untouched.
func (d Downgrader) Downgrade(ctx context.Context, artifact splitentity.Artifact) splitentity.Artifact {
	logger := log.WithFields(log.Fields{
		"role": artifact.Role,
		"path": artifact.Path,
	})

	downgraded, err := d.transcode(ctx, artifact)
	if err != nil {
		logger.WithFields(log.Fields(cerr.CollectFields(err))).
			WithError(err).
			Warn("Keeping full quality artifact, downgrade failed")
		return artifact
	}

	logger.WithField("downgraded_path", downgraded.Path).Info("Downgraded artifact")
	return downgraded
}

func (d Downgrader) Available() error {
	if d.ffmpegBinPath == "" {
		return mark.Message(spliterrors.DowngradeUnavailableMark, "No ffmpeg binary is configured")
	}

	if _, err := d.executor.LookPath(d.ffmpegBinPath); err != nil {
		return cerr.Field("ffmpeg_bin_path", d.ffmpegBinPath).
			Wrap(mark.Wrap(err, spliterrors.DowngradeUnavailableMark, "ffmpeg binary can't be run")).
			Error("Downgrade is unavailable")
	}

	return nil
}

func (d Downgrader) transcode(ctx context.Context, artifact splitentity.Artifact) (splitentity.Artifact, error) {
	if err := d.Available(); err != nil {
		return splitentity.Artifact{}, err
	}

	destPath := MP3Path(artifact.Path)
	args := Args(artifact.Path, destPath)

	errctx := cerr.Fields(cerr.F{
		"ffmpeg_bin_path": d.ffmpegBinPath,
		"ffmpeg_args":     args,
	})

	cmd := d.executor.Command(ctx, d.ffmpegBinPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		removePartial(destPath)
		return splitentity.Artifact{}, errctx.Field("ffmpeg_output", string(output)).
			Wrap(err).Error(fmt.Sprintf("Error occurred while running ffmpeg: %s", string(output)))
	}

	if _, err := os.Stat(destPath); err != nil {
		return splitentity.Artifact{}, errctx.Wrap(err).Error("ffmpeg exited cleanly but wrote no mp3")
	}

	if err := os.Remove(artifact.Path); err != nil {
		removePartial(destPath)
		return splitentity.Artifact{}, errctx.Wrap(err).Error("Failed to remove the full quality artifact")
	}

	downgraded := artifact
	downgraded.Path = destPath
	downgraded.Format = splitentity.MP3Format
	return downgraded, nil
}

func removePartial(path string) {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		log.WithField("path", path).WithError(err).Warn("Failed to remove partial mp3")
	}
}
