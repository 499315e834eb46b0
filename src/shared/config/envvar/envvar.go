package envvar

import (
	"fmt"
	"os"
)

const (
	AWS_ACCESS_KEY_ID                = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY            = "AWS_SECRET_ACCESS_KEY"
	RABBITMQ_URL                     = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME              = "RABBITMQ_QUEUE_NAME"
	GOOGLE_CLOUD_KEY                 = "GOOGLE_CLOUD_KEY"
	GOOGLE_CLOUD_STORAGE_BUCKET_NAME = "GOOGLE_CLOUD_STORAGE_BUCKET_NAME"
	MINIO_ENDPOINT                   = "MINIO_ENDPOINT"
	MINIO_ACCESS_KEY                 = "MINIO_ACCESS_KEY"
	MINIO_SECRET_KEY                 = "MINIO_SECRET_KEY"
	MINIO_BUCKET_NAME                = "MINIO_BUCKET_NAME"
	MINIO_USE_SSL                    = "MINIO_USE_SSL"
	DEMUCS_BIN_PATH                  = "DEMUCS_BIN_PATH"
	SPLEETER_BIN_PATH                = "SPLEETER_BIN_PATH"
	FFMPEG_BIN_PATH                  = "FFMPEG_BIN_PATH"
	SCRATCH_DIR_PATH                 = "SCRATCH_DIR_PATH"
	INPUT_DIR_PATH                   = "INPUT_DIR_PATH"
	OUTPUT_DIR_PATH                  = "OUTPUT_DIR_PATH"
	ALLOWED_FE_ORIGINS               = "ALLOWED_FE_ORIGINS"
	PORT                             = "PORT"
	LOG_LEVEL                        = "LOG_LEVEL"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// Get returns the fallback when the key is unset or empty
func Get(key string, fallback string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return fallback
	}

	return val
}

func IsSet(key string) bool {
	val, isSet := os.LookupEnv(key)
	return isSet && val != ""
}
