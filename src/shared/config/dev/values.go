package dev

import (
	"github.com/veedubyou/track-splitter/src/shared/config"
	"github.com/veedubyou/track-splitter/src/shared/config/local"
)

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
)

var DynamoConfig = config.LocalDynamo{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
}

// RabbitMQ
const (
	RabbitMQHost      = "amqp://localhost:5672"
	RabbitMQQueueName = "track-splitter-events-dev"
)

var EventsConfig = config.RabbitMQEvents{
	URL:       RabbitMQHost,
	QueueName: RabbitMQQueueName,
}

// Minio
const (
	MinioEndpoint   = "localhost:9000"
	MinioAccessKey  = "minioadmin"
	MinioSecretKey  = "minioadmin"
	MinioBucketName = "track-splitter-dev"
)

var CloudStorageConfig = config.MinioStorage{
	Endpoint:   MinioEndpoint,
	AccessKey:  MinioAccessKey,
	SecretKey:  MinioSecretKey,
	BucketName: MinioBucketName,
	UseSSL:     false,
}

// Local file trees
var (
	InputDirPath   = local.WorkDir("input")
	OutputDirPath  = local.WorkDir("output")
	ScratchDirPath = local.WorkDir("temp")
)
