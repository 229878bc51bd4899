package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeviceLiveness(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	seen := func(ago time.Duration) *time.Time {
		ts := now.Add(-ago)
		return &ts
	}

	cases := []struct {
		name     string
		lastSeen *time.Time
		want     DeviceStatus
	}{
		{"never polled", nil, DeviceOffline},
		{"just now", seen(0), DeviceOnline},
		{"four minutes", seen(4 * time.Minute), DeviceOnline},
		{"five minutes", seen(5 * time.Minute), DeviceWarning},
		{"twenty nine minutes", seen(29 * time.Minute), DeviceWarning},
		{"thirty minutes", seen(30 * time.Minute), DeviceOffline},
		{"a day", seen(24 * time.Hour), DeviceOffline},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Device{ID: "d1", LastSeen: tc.lastSeen}
			assert.Equal(t, tc.want, d.Liveness(now, 5*time.Minute, 30*time.Minute))
		})
	}
}

func TestNotFoundErrorsWrapSentinel(t *testing.T) {
	for _, err := range []error{ErrDeviceNotFound, ErrCreativeNotFound, ErrCampaignNotFound, ErrAdvertiserNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), err.Error())
		assert.False(t, errors.Is(err, ErrValidation))
	}
	assert.Equal(t, "device not found", ErrDeviceNotFound.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("duration", "must be a positive integer")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "duration must be a positive integer", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "duration", ve.Field)
}
