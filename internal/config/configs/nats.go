package configs

// NATS configures domain event publishing. An empty URL disables events.
type NATS struct {
	URL           string `env:"URL"`
	SubjectPrefix string `env:"SUBJECT_PREFIX" envDefault:"streetcast"`
}
