package splitevents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/rabbitmq"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
)

const StemsSeparatedType = "stems_separated"

type StemsSeparated struct {
	JobID            string                  `json:"job_id"`
	BaseName         string                  `json:"base_name"`
	Engine           splitentity.EngineType  `json:"engine"`
	Quality          splitentity.QualityTier `json:"quality"`
	VocalsFile       string                  `json:"vocals_file"`
	KaraokeFile      string                  `json:"karaoke_file"`
	VocalsRemoteURL  string                  `json:"vocals_remote_url,omitempty"`
	KaraokeRemoteURL string                  `json:"karaoke_remote_url,omitempty"`
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Publisher
type Publisher interface {
	PublishStemsSeparated(ctx context.Context, event StemsSeparated) error
}

var _ Publisher = QueuePublisher{}

func NewQueuePublisher(publisher rabbitmq.Publisher) QueuePublisher {
	return QueuePublisher{publisher: publisher}
}

// QueuePublisher announces finished jobs to whoever listens on the queue.
// Nothing in this repo consumes these messages, separation itself never goes through a queue.
type QueuePublisher struct {
	publisher rabbitmq.Publisher
}

func (q QueuePublisher) PublishStemsSeparated(ctx context.Context, event StemsSeparated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return cerr.Field("event", event).Wrap(err).Error("Failed to marshal stems separated event")
	}

	err = q.publisher.Publish(ctx, amqp091.Publishing{
		Type:      StemsSeparatedType,
		MessageId: event.JobID,
		Timestamp: time.Now(),
		Body:      body,
	})
	if err != nil {
		return cerr.Field("job_id", event.JobID).Wrap(err).Error("Failed to publish stems separated event")
	}

	return nil
}

var _ Publisher = NoPublisher{}

type NoPublisher struct{}

func (NoPublisher) PublishStemsSeparated(_ context.Context, _ StemsSeparated) error {
	return nil
}
