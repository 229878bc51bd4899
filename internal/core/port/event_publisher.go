package port

import (
	"context"
	"time"
)

// Event subjects, relative to the configured prefix.
const (
	SubjectImpressionRecorded = "impression.recorded"
	SubjectDeviceHeartbeat    = "device.heartbeat"
)

// EventPublisher emits domain events. Delivery is best effort; callers log
// and drop publish errors.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, event any) error
	Close() error
}

type ImpressionRecorded struct {
	ImpressionID string    `json:"impressionId"`
	DeviceID     string    `json:"deviceId"`
	CreativeID   string    `json:"creativeId"`
	ShownAt      time.Time `json:"shownAt"`
}

type DeviceHeartbeat struct {
	DeviceID string    `json:"deviceId"`
	LastSeen time.Time `json:"lastSeen"`
}
