package events

import (
	"context"

	"streetcast/internal/core/port"
)

// NoopPublisher drops every event. It is used when NATS is not configured.
type NoopPublisher struct{}

var _ port.EventPublisher = (*NoopPublisher)(nil)

func (n *NoopPublisher) Publish(context.Context, string, any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}

// New returns a NATS publisher for url, or a NoopPublisher when url is empty.
func New(url string) (port.EventPublisher, error) {
	if url == "" {
		return &NoopPublisher{}, nil
	}
	return NewNATSPublisher(url)
}
