package store

import (
	"context"
	"strings"

	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . FileStore
type FileStore interface {
	GetFile(ctx context.Context, fileURL string) ([]byte, error)
	WriteFile(ctx context.Context, fileURL string, fileContent []byte) error
}

// splitURL breaks {host}/{bucket}/{object path} into bucket and object
func splitURL(host string, fileURL string) (string, string, error) {
	errctx := cerr.Field("file_url", fileURL).Field("host", host)

	if !strings.HasPrefix(fileURL, host+"/") {
		return "", "", errctx.Error("File URL is not on this storage host")
	}

	path := strings.TrimPrefix(fileURL, host+"/")
	bucket, object, found := strings.Cut(path, "/")
	if !found || bucket == "" || object == "" {
		return "", "", errctx.Error("File URL has no bucket or object path")
	}

	return bucket, object, nil
}
