package configs

import "time"

// Device liveness thresholds shown in the admin device list.
type Device struct {
	OnlineWindow  time.Duration `env:"ONLINE_WINDOW" envDefault:"5m"`
	WarningWindow time.Duration `env:"WARNING_WINDOW" envDefault:"30m"`
}

// Analytics configures the dashboard snapshot.
type Analytics struct {
	RecentLimit int `env:"RECENT_LIMIT" envDefault:"50"`
}
