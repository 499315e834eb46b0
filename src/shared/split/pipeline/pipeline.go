package pipeline

import (
	"os"

	"github.com/apex/log"
	"github.com/veedubyou/track-splitter/src/shared/cloud_storage/storagepath"
	filestore "github.com/veedubyou/track-splitter/src/shared/cloud_storage/store"
	"github.com/veedubyou/track-splitter/src/shared/config"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	dynamolib "github.com/veedubyou/track-splitter/src/shared/lib/dynamo"
	"github.com/veedubyou/track-splitter/src/shared/lib/executor"
	"github.com/veedubyou/track-splitter/src/shared/lib/rabbitmq"
	"github.com/veedubyou/track-splitter/src/shared/split/downgrade"
	"github.com/veedubyou/track-splitter/src/shared/split/engine"
	splitevents "github.com/veedubyou/track-splitter/src/shared/split/events"
	"github.com/veedubyou/track-splitter/src/shared/split/splitter"
	splitstorage "github.com/veedubyou/track-splitter/src/shared/split/storage"
	splitusecase "github.com/veedubyou/track-splitter/src/shared/split/usecase"
	"google.golang.org/api/option"
)

type Config struct {
	DynamoConfig       config.Dynamo
	CloudStorageConfig config.CloudStorage
	EventsConfig       config.Events

	DemucsBinPath   string
	SpleeterBinPath string
	FFmpegBinPath   string

	InputDirPath   string
	OutputDirPath  string
	ScratchDirPath string
}

// Pipeline owns every connection the split usecase holds open
type Pipeline struct {
	Usecase splitusecase.Usecase

	publisher *rabbitmq.QueuePublisher
}

type Option func(o *pipelineOptions)

type pipelineOptions struct {
	executor executor.Executor
}

// WithExecutor replaces the binary executor the engines and ffmpeg are run through
func WithExecutor(executor executor.Executor) Option {
	return func(o *pipelineOptions) {
		o.executor = executor
	}
}

// New wires the splitter and its optional ledger, mirror and events.
// Anything that can't be set up here is a misconfiguration, so it panics.
func New(config Config, opts ...Option) Pipeline {
	o := pipelineOptions{executor: executor.BinaryFileExecutor{}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, dir := range []string{config.InputDirPath, config.OutputDirPath, config.ScratchDirPath} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			panic(cerr.Field("dir", dir).Wrap(err).Error("Failed to create working dir"))
		}
	}

	if config.FFmpegBinPath == "" {
		log.Warn("ffmpeg not configured, low quality jobs will keep wav output")
	}

	runner := engine.NewRunner(engine.Config{
		DemucsBinPath:   config.DemucsBinPath,
		SpleeterBinPath: config.SpleeterBinPath,
	}, o.executor)
	downgrader := downgrade.NewDowngrader(config.FFmpegBinPath, o.executor)

	separator := must(splitter.NewSplitter(
		config.ScratchDirPath,
		config.OutputDirPath,
		runner,
		downgrader,
	))

	var options []splitusecase.Option
	if ledger, ok := newLedger(config.DynamoConfig); ok {
		options = append(options, splitusecase.WithLedger(ledger))
	}

	if fileStore, ok := newFileStore(config.CloudStorageConfig); ok {
		options = append(options, splitusecase.WithMirror(fileStore, storagepath.Generator{
			Host:   config.CloudStorageConfig.GetStorageHost(),
			Bucket: config.CloudStorageConfig.GetBucket(),
		}))
	}

	p := Pipeline{}
	if publisher, ok := newPublisher(config.EventsConfig); ok {
		p.publisher = publisher
		options = append(options, splitusecase.WithEvents(splitevents.NewQueuePublisher(publisher)))
	}

	p.Usecase = splitusecase.NewUsecase(separator, options...)
	return p
}

func (p Pipeline) Close() {
	if p.publisher != nil {
		p.publisher.Close()
	}
}

func newLedger(dynamoConfig config.Dynamo) (splitstorage.DB, bool) {
	if dynamoConfig == nil {
		return splitstorage.DB{}, false
	}

	if _, ok := dynamoConfig.(config.NoDynamo); ok {
		return splitstorage.DB{}, false
	}

	db := splitstorage.NewDB(dynamolib.NewDynamoDB(dynamoConfig))
	if err := db.EnsureTable(); err != nil {
		panic(err)
	}

	return db, true
}

func newFileStore(cloudStorageConfig config.CloudStorage) (filestore.FileStore, bool) {
	switch t := cloudStorageConfig.(type) {
	case config.GoogleCloudStorage:
		return must(filestore.NewGoogleFileStore(
			t.StorageHost,
			option.WithCredentialsJSON([]byte(t.SecretKey)),
		)), true

	case config.MinioStorage:
		return must(filestore.NewMinioFileStore(filestore.MinioConfig{
			StorageHost: t.GetStorageHost(),
			Endpoint:    t.Endpoint,
			AccessKey:   t.AccessKey,
			SecretKey:   t.SecretKey,
			UseSSL:      t.UseSSL,
		})), true

	case config.NoCloudStorage, nil:
		return nil, false

	default:
		panic("Unrecognized cloud storage config")
	}
}

func newPublisher(eventsConfig config.Events) (*rabbitmq.QueuePublisher, bool) {
	switch t := eventsConfig.(type) {
	case config.RabbitMQEvents:
		return must(rabbitmq.NewQueuePublisher(t.URL, t.QueueName)), true

	case config.NoEvents, nil:
		return nil, false

	default:
		panic("Unrecognized events config")
	}
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}
