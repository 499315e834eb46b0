package config

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/veedubyou/track-splitter/src/shared/config/envvar"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

func LookupBin(bin string) (string, error) {
	cmd := exec.Command("which", bin)
	output, err := cmd.CombinedOutput()

	stringOutput := string(output)
	if err != nil {
		return "", cerr.Field("bin", bin).Wrap(err).Error(fmt.Sprintf("Failed to find %s: %s", bin, stringOutput))
	}

	trimmedOutput := strings.TrimSpace(stringOutput)
	if trimmedOutput == "" {
		return "", cerr.Field("bin", bin).Error(fmt.Sprintf("No bin found for %s", bin))
	}

	return trimmedOutput, nil
}

// BinPath prefers the env var, then whatever is on PATH. Empty when neither has it.
func BinPath(envKey string, bin string) string {
	if envvar.IsSet(envKey) {
		return envvar.MustGet(envKey)
	}

	path, err := LookupBin(bin)
	if err != nil {
		return ""
	}

	return path
}

func DemucsPath() string {
	return BinPath(envvar.DEMUCS_BIN_PATH, "demucs")
}

func SpleeterPath() string {
	return BinPath(envvar.SPLEETER_BIN_PATH, "spleeter")
}

// FFmpegPath is empty when ffmpeg isn't installed, low quality output then falls back to wav
func FFmpegPath() string {
	return BinPath(envvar.FFMPEG_BIN_PATH, "ffmpeg")
}
