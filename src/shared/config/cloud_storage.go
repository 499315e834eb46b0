package config

type CloudStorage interface {
	GetStorageHost() string
	GetBucket() string
}

var _ CloudStorage = GoogleCloudStorage{}

type GoogleCloudStorage struct {
	StorageHost string
	SecretKey   string
	BucketName  string
}

func (g GoogleCloudStorage) GetStorageHost() string {
	return g.StorageHost
}

func (g GoogleCloudStorage) GetBucket() string {
	return g.BucketName
}

var _ CloudStorage = MinioStorage{}

type MinioStorage struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

func (m MinioStorage) GetStorageHost() string {
	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}

	return scheme + "://" + m.Endpoint
}

func (m MinioStorage) GetBucket() string {
	return m.BucketName
}

// NoCloudStorage keeps artifacts on local disk only
var _ CloudStorage = NoCloudStorage{}

type NoCloudStorage struct{}

func (n NoCloudStorage) GetStorageHost() string {
	return ""
}

func (n NoCloudStorage) GetBucket() string {
	return ""
}
