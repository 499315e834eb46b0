package testing

import (
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"
)

// MakeTempDir is removed again once the current spec is done
func MakeTempDir() string {
	dir, err := os.MkdirTemp("", "track-splitter-test-")
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	DeferCleanupDir(dir)
	return dir
}

func WriteFile(path string, content string) string {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	err = os.WriteFile(path, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return path
}

func ReadFile(path string) string {
	content, err := os.ReadFile(path)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(content)
}

func ListDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}

	return names
}
