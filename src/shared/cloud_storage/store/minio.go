package store

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
)

var _ FileStore = MinioFileStore{}

type MinioConfig struct {
	StorageHost string
	Endpoint    string
	AccessKey   string
	SecretKey   string
	UseSSL      bool
}

func NewMinioFileStore(config MinioConfig) (MinioFileStore, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return MinioFileStore{}, cerr.Field("endpoint", config.Endpoint).
			Wrap(err).Error("Failed to create minio client")
	}

	return MinioFileStore{
		storageHost: config.StorageHost,
		client:      client,
	}, nil
}

type MinioFileStore struct {
	storageHost string
	client      *minio.Client
}

func (m MinioFileStore) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, object, err := splitURL(m.storageHost, fileURL)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to parse file URL")
	}

	errctx := cerr.Field("bucket", bucket).Field("object", object)

	reader, err := m.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to open minio object")
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to read minio object")
	}

	return content, nil
}

func (m MinioFileStore) WriteFile(ctx context.Context, fileURL string, fileContent []byte) error {
	bucket, object, err := splitURL(m.storageHost, fileURL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to parse file URL")
	}

	errctx := cerr.Field("bucket", bucket).Field("object", object)

	_, err = m.client.PutObject(ctx, bucket, object,
		bytes.NewReader(fileContent), int64(len(fileContent)),
		minio.PutObjectOptions{ContentType: http.DetectContentType(fileContent)})
	if err != nil {
		return errctx.Wrap(err).Error("Failed to write minio object")
	}

	return nil
}
