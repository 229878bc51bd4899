package domain

import "time"

// DeviceStatus is the liveness classification derived from LastSeen.
type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "online"
	DeviceWarning DeviceStatus = "warning"
	DeviceOffline DeviceStatus = "offline"
)

// Device is a physical screen polling for manifests. Its ID doubles as the
// polling credential. LastSeen is only written by manifest building.
type Device struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  *string    `json:"location"`
	LastSeen  *time.Time `json:"lastSeen"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Liveness classifies the device at now: online while the last poll is
// younger than online, warning while younger than warning, offline otherwise
// or when the device never polled.
func (d Device) Liveness(now time.Time, online, warning time.Duration) DeviceStatus {
	if d.LastSeen == nil {
		return DeviceOffline
	}
	age := now.Sub(*d.LastSeen)
	switch {
	case age < online:
		return DeviceOnline
	case age < warning:
		return DeviceWarning
	default:
		return DeviceOffline
	}
}
