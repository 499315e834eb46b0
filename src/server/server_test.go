package main

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/track-splitter/src/shared/config"
	"github.com/veedubyou/track-splitter/src/shared/config/envvar"
	"github.com/veedubyou/track-splitter/src/shared/config/prod"
)

func setEnv(key string, value string) {
	previous, wasSet := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if wasSet {
			Expect(os.Setenv(key, previous)).To(Succeed())
		} else {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})
}

var _ = Describe("Production cloud storage", func() {
	BeforeEach(func() {
		setEnv(envvar.GOOGLE_CLOUD_KEY, "{}")
		setEnv(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME, "gcs-bucket")
		setEnv(envvar.MINIO_ENDPOINT, "")
	})

	It("uses Google Cloud Storage by default", func() {
		Expect(prodCloudStorage()).To(Equal(config.GoogleCloudStorage{
			StorageHost: prod.GOOGLE_STORAGE_HOST,
			SecretKey:   "{}",
			BucketName:  "gcs-bucket",
		}))
	})

	Describe("With a MinIO endpoint", func() {
		BeforeEach(func() {
			setEnv(envvar.MINIO_ENDPOINT, "minio.internal:9000")
			setEnv(envvar.MINIO_ACCESS_KEY, "access")
			setEnv(envvar.MINIO_SECRET_KEY, "secret")
			setEnv(envvar.MINIO_BUCKET_NAME, "stems")
			setEnv(envvar.MINIO_USE_SSL, "false")
		})

		It("uses MinIO", func() {
			storage := prodCloudStorage()
			Expect(storage).To(Equal(config.MinioStorage{
				Endpoint:   "minio.internal:9000",
				AccessKey:  "access",
				SecretKey:  "secret",
				BucketName: "stems",
				UseSSL:     false,
			}))
			Expect(storage.GetStorageHost()).To(Equal("http://minio.internal:9000"))
		})
	})
})
