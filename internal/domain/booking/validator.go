package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("start_at must be before end_at")
	ErrPastStart    = errors.New("start_at must not be in the past")
)

// Validate checks a proposed range against now. It performs no I/O; callers pass
// now from an injected clock.
func Validate(startAt, endAt, now time.Time) error {
	if !startAt.Before(endAt) {
		return ErrInvalidRange
	}
	if startAt.Before(now) {
		return ErrPastStart
	}
	return nil
}

// NewValidatedRange runs Validate and returns the normalized range.
func NewValidatedRange(startAt, endAt, now time.Time) (TimeRange, error) {
	if err := Validate(startAt, endAt, now); err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(startAt, endAt)
}
