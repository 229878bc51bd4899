package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"streetcast/internal/core/domain"
	"streetcast/internal/core/port"
)

const (
	defaultRecentLimit   = 50
	defaultOnlineWindow  = 5 * time.Minute
	defaultWarningWindow = 30 * time.Minute
)

// SignageUseCase provides the scheduling, manifest, impression and analytics
// logic. It holds no per-request state; every call reads the store afresh,
// so one instance serves any number of concurrently polling devices.
type SignageUseCase struct {
	repo   port.SignageRepository
	events port.EventPublisher
	logger *slog.Logger

	now           func() time.Time
	subjectPrefix string
	recentLimit   int
	onlineWindow  time.Duration
	warningWindow time.Duration

	validate *validator.Validate

	// lastVersion keeps manifest versions strictly increasing even when two
	// builds land in the same millisecond.
	lastVersion atomic.Int64
}

// Option configures a SignageUseCase.
type Option func(*SignageUseCase)

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(u *SignageUseCase) { u.now = now }
}

// WithLogger sets the logger used for dropped events.
func WithLogger(logger *slog.Logger) Option {
	return func(u *SignageUseCase) { u.logger = logger }
}

// WithPublisher enables domain events. Subjects are prefixed with
// subjectPrefix and a dot when the prefix is non-empty.
func WithPublisher(p port.EventPublisher, subjectPrefix string) Option {
	return func(u *SignageUseCase) {
		u.events = p
		u.subjectPrefix = subjectPrefix
	}
}

// WithRecentLimit sets the size of the analytics recent feed.
func WithRecentLimit(n int) Option {
	return func(u *SignageUseCase) {
		if n > 0 {
			u.recentLimit = n
		}
	}
}

// WithDeviceWindows sets the liveness thresholds used when listing devices.
func WithDeviceWindows(online, warning time.Duration) Option {
	return func(u *SignageUseCase) {
		u.onlineWindow = online
		u.warningWindow = warning
	}
}

// NewSignageUseCase creates a new usecase with the provided repository.
func NewSignageUseCase(repo port.SignageRepository, opts ...Option) *SignageUseCase {
	u := &SignageUseCase{
		repo:          repo,
		logger:        slog.Default(),
		now:           time.Now,
		recentLimit:   defaultRecentLimit,
		onlineWindow:  defaultOnlineWindow,
		warningWindow: defaultWarningWindow,
		validate:      newValidator(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.SignageUseCase = (*SignageUseCase)(nil)

// publish emits an event and only logs failures.
func (u *SignageUseCase) publish(ctx context.Context, subject string, event any) {
	if u.events == nil {
		return
	}
	if u.subjectPrefix != "" {
		subject = u.subjectPrefix + "." + subject
	}
	if err := u.events.Publish(ctx, subject, event); err != nil {
		u.logger.Warn("publish event failed", slog.String("subject", subject), slog.Any("error", err))
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates req and reports the first failing field as a
// domain.ValidationError.
func (u *SignageUseCase) check(req any) error {
	err := u.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fe.Field(), "is required")
	case "gt":
		return domain.NewValidationError(fe.Field(), "must be a positive integer")
	default:
		return domain.NewValidationError(fe.Field(), "is invalid")
	}
}
