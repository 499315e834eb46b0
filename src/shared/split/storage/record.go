package splitstorage

import (
	"time"

	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
)

type Status string

const (
	CompletedStatus Status = "completed"
	FailedStatus    Status = "failed"
)

// SeparationRecord is the ledger entry kept for every job, whether it succeeded or not
type SeparationRecord struct {
	ID           string                  `dynamo:"id,hash" json:"id"`
	InputName    string                  `dynamo:"input_name" json:"input_name"`
	BaseName     string                  `dynamo:"base_name" json:"base_name"`
	Engine       splitentity.EngineType  `dynamo:"engine" json:"engine"`
	Quality      splitentity.QualityTier `dynamo:"quality" json:"quality"`
	Status       Status                  `dynamo:"status" json:"status"`
	ErrorCode    string                  `dynamo:"error_code,omitempty" json:"error_code,omitempty"`
	Vocals       *ArtifactRecord         `dynamo:"vocals,omitempty" json:"vocals,omitempty"`
	Instrumental *ArtifactRecord         `dynamo:"karaoke,omitempty" json:"karaoke,omitempty"`
	CreatedAt    time.Time               `dynamo:"created_at" json:"created_at"`
}

type ArtifactRecord struct {
	FileName  string `dynamo:"file_name" json:"file_name"`
	Format    string `dynamo:"format" json:"format"`
	RemoteURL string `dynamo:"remote_url,omitempty" json:"remote_url,omitempty"`
}
