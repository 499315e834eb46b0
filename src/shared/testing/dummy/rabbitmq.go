package dummy

import (
	"context"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/track-splitter/src/shared/lib/rabbitmq"
)

var _ rabbitmq.Publisher = &RabbitMQ{}

func NewRabbitMQ() *RabbitMQ {
	return &RabbitMQ{}
}

type RabbitMQ struct {
	Unavailable bool
	Published   []amqp091.Publishing
	mutex       sync.Mutex
}

func (r *RabbitMQ) Publish(_ context.Context, msg amqp091.Publishing) error {
	if r.Unavailable {
		return NetworkFailure
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.Published = append(r.Published, msg)
	return nil
}
