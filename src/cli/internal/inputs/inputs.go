package inputs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors/domains"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
)

var NotFoundMark = domains.New("input_not_found")

type AudioFile struct {
	Name string
	Path string
	Size int64
}

// List returns the audio files directly inside dir, sorted by name
func List(dir string) ([]AudioFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, cerr.Field("dir", dir).Wrap(err).Error("Failed to read input dir")
	}

	var files []AudioFile
	for _, entry := range entries {
		if entry.IsDir() || !splitentity.IsAudioFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, cerr.Field("file", entry.Name()).Wrap(err).Error("Failed to stat input file")
		}

		files = append(files, AudioFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// Find resolves what the user typed to an input file. In order:
// an existing path, a file name in dir, a bare name tried with every
// audio extension, and last a 1-based index into List.
func Find(dir string, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", mark.Message(NotFoundMark, "No input was given")
	}

	if isFile(query) {
		return query, nil
	}

	candidate := filepath.Join(dir, query)
	if isFile(candidate) {
		return candidate, nil
	}

	if !splitentity.IsAudioFile(query) {
		for _, ext := range splitentity.AudioExtensions {
			candidate := filepath.Join(dir, query+"."+ext)
			if isFile(candidate) {
				return candidate, nil
			}
		}
	}

	if index, err := strconv.Atoi(query); err == nil {
		return findByIndex(dir, index)
	}

	return "", cerr.Fields(cerr.F{
		"dir":   dir,
		"query": query,
	}).Wrap(mark.Message(NotFoundMark, fmt.Sprintf("No audio file matches %q", query))).
		Error("Failed to find input")
}

func findByIndex(dir string, index int) (string, error) {
	files, err := List(dir)
	if err != nil {
		return "", err
	}

	if index < 1 || index > len(files) {
		return "", mark.Message(NotFoundMark,
			fmt.Sprintf("There is no input number %d, %d files are available", index, len(files)))
	}

	return files[index-1].Path, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
