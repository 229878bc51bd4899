package domain

import "time"

// Impression is an append-only record of a creative being shown on a device.
type Impression struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"deviceId"`
	CreativeID string    `json:"creativeId"`
	ShownAt    time.Time `json:"shownAt"`
}
