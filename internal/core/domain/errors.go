package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrDeviceNotFound     = fmt.Errorf("device %w", ErrNotFound)
	ErrCreativeNotFound   = fmt.Errorf("creative %w", ErrNotFound)
	ErrCampaignNotFound   = fmt.Errorf("campaign %w", ErrNotFound)
	ErrAdvertiserNotFound = fmt.Errorf("advertiser %w", ErrNotFound)
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
