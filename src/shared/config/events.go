package config

type Events interface {
	EventsConfig()
}

var _ Events = RabbitMQEvents{}

type RabbitMQEvents struct {
	URL       string
	QueueName string
}

func (r RabbitMQEvents) EventsConfig() {}

var _ Events = NoEvents{}

type NoEvents struct{}

func (n NoEvents) EventsConfig() {}
