package splitentity

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	WAVFormat = "wav"
	MP3Format = "mp3"
)

// AudioExtensions are the input formats accepted for separation, in lookup order
var AudioExtensions = []string{"mp3", "wav", "flac", "ogg", "m4a"}

func IsAudioFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, audioExt := range AudioExtensions {
		if ext == audioExt {
			return true
		}
	}

	return false
}

// BaseName is the file name without its directory or extension
func BaseName(path string) string {
	fileName := filepath.Base(path)
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

type SplitJob struct {
	ID         string
	InputPath  string
	BaseName   string
	Engine     EngineType
	Quality    QualityTier
	ScratchDir string
	Timestamp  time.Time
}

type ResolvedStems struct {
	VocalsPath       string
	InstrumentalPath string
}

func (r ResolvedStems) Path(role StemRole) string {
	if role == VocalsRole {
		return r.VocalsPath
	}

	return r.InstrumentalPath
}

type Artifact struct {
	Role      StemRole
	BaseName  string
	Timestamp string
	Format    string
	Path      string
}

func (a Artifact) FileName() string {
	return filepath.Base(a.Path)
}

type Result struct {
	JobID        string
	BaseName     string
	Engine       EngineType
	Quality      QualityTier
	Vocals       Artifact
	Instrumental Artifact
}

func (r Result) Paths() (string, string) {
	return r.Vocals.Path, r.Instrumental.Path
}
