package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port         uint16        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	// RateLimit is the number of requests per minute allowed per client IP on
	// the device endpoints. Zero disables limiting.
	// The limit is keyed on the TCP peer address unless TrustProxy is set.
	RateLimit int `env:"RATE_LIMIT" envDefault:"600"`
	// TrustProxy honours X-Forwarded-For and friends for the client address.
	// Only enable it when every request passes through a proxy that
	// overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}
