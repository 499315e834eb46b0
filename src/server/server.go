package main

import (
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/veedubyou/track-splitter/src/server/application"
	"github.com/veedubyou/track-splitter/src/shared/config"
	"github.com/veedubyou/track-splitter/src/shared/config/dev"
	"github.com/veedubyou/track-splitter/src/shared/config/envvar"
	"github.com/veedubyou/track-splitter/src/shared/config/prod"
	"github.com/veedubyou/track-splitter/src/shared/lib/env"
	"github.com/veedubyou/track-splitter/src/shared/split/pipeline"
)

func main() {
	var appConfig application.Config

	switch env.Get() {
	case env.Production:
		log.SetHandler(json.New(os.Stderr))

		commaSeparatedOrigins := envvar.MustGet(envvar.ALLOWED_FE_ORIGINS)
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		appConfig = application.Config{
			Pipeline: pipeline.Config{
				DynamoConfig: config.ProdDynamo{
					AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
					SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
					Region:          prod.DynamoDBRegion,
				},
				CloudStorageConfig: prodCloudStorage(),
				EventsConfig: config.RabbitMQEvents{
					URL:       envvar.MustGet(envvar.RABBITMQ_URL),
					QueueName: envvar.MustGet(envvar.RABBITMQ_QUEUE_NAME),
				},
				DemucsBinPath:   envvar.MustGet(envvar.DEMUCS_BIN_PATH),
				SpleeterBinPath: envvar.MustGet(envvar.SPLEETER_BIN_PATH),
				FFmpegBinPath:   envvar.Get(envvar.FFMPEG_BIN_PATH, ""),
				InputDirPath:    envvar.MustGet(envvar.INPUT_DIR_PATH),
				OutputDirPath:   envvar.MustGet(envvar.OUTPUT_DIR_PATH),
				ScratchDirPath:  envvar.MustGet(envvar.SCRATCH_DIR_PATH),
			},
			CORSAllowedOrigins: allowedOrigins,
			Port:               ":" + envvar.Get(envvar.PORT, "5000"),
			Log:                true,
		}

	case env.Development:
		log.SetHandler(text.New(os.Stderr))

		appConfig = application.Config{
			Pipeline: pipeline.Config{
				DynamoConfig:       dev.DynamoConfig,
				CloudStorageConfig: dev.CloudStorageConfig,
				EventsConfig:       dev.EventsConfig,
				DemucsBinPath:      config.DemucsPath(),
				SpleeterBinPath:    config.SpleeterPath(),
				FFmpegBinPath:      config.FFmpegPath(),
				InputDirPath:       dev.InputDirPath,
				OutputDirPath:      dev.OutputDirPath,
				ScratchDirPath:     dev.ScratchDirPath,
			},
			CORSAllowedOrigins: []string{"*"},
			Port:               ":" + envvar.Get(envvar.PORT, "5000"),
			Log:                true,
		}

	default:
		panic("Unexpected environment")
	}

	if level := envvar.Get(envvar.LOG_LEVEL, ""); level != "" {
		log.SetLevelFromString(level)
	}

	app := application.NewApp(appConfig)
	if err := app.Start(); err != nil {
		panic(err)
	}
}

// MinIO when its endpoint is set, Google Cloud Storage otherwise
func prodCloudStorage() config.CloudStorage {
	if envvar.IsSet(envvar.MINIO_ENDPOINT) {
		return config.MinioStorage{
			Endpoint:   envvar.MustGet(envvar.MINIO_ENDPOINT),
			AccessKey:  envvar.MustGet(envvar.MINIO_ACCESS_KEY),
			SecretKey:  envvar.MustGet(envvar.MINIO_SECRET_KEY),
			BucketName: envvar.MustGet(envvar.MINIO_BUCKET_NAME),
			UseSSL:     envvar.Get(envvar.MINIO_USE_SSL, "true") == "true",
		}
	}

	return config.GoogleCloudStorage{
		StorageHost: prod.GOOGLE_STORAGE_HOST,
		SecretKey:   envvar.MustGet(envvar.GOOGLE_CLOUD_KEY),
		BucketName:  envvar.MustGet(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME),
	}
}
