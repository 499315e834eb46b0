package store

import (
	"bytes"
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"google.golang.org/api/option"
)

var _ FileStore = GoogleFileStore{}

func NewGoogleFileStore(storageHost string, options ...option.ClientOption) (GoogleFileStore, error) {
	client, err := storage.NewClient(context.Background(), options...)
	if err != nil {
		return GoogleFileStore{}, cerr.Wrap(err).Error("Failed to create cloud storage client")
	}

	return GoogleFileStore{
		storageHost: storageHost,
		client:      client,
	}, nil
}

type GoogleFileStore struct {
	storageHost string
	client      *storage.Client
}

func (g GoogleFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, object, err := splitURL(g.storageHost, fileURL)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to parse file URL")
	}

	errctx := cerr.Field("bucket", bucket).Field("object", object)

	reader, err := g.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to open cloud storage object")
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to read cloud storage object")
	}

	return content, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) error {
	bucket, object, err := splitURL(g.storageHost, fileURL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to parse file URL")
	}

	errctx := cerr.Field("bucket", bucket).Field("object", object)

	writer := g.client.Bucket(bucket).Object(object).NewWriter(ctx)
	if _, err := io.Copy(writer, bytes.NewReader(fileContent)); err != nil {
		_ = writer.Close()
		return errctx.Wrap(err).Error("Failed to write to cloud storage object")
	}

	if err := writer.Close(); err != nil {
		return errctx.Wrap(err).Error("Failed to finish writing cloud storage object")
	}

	return nil
}
