package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString is returned when a value does not match the "HH:MM" format
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeFormat layout for 24-hour times of day
const TimeFormat = "15:04"

// LabelFormat layout for 12-hour slot labels shown to patients (e.g. "09:30 AM")
const LabelFormat = "03:04 PM"

const minutesPerDay = 24 * 60

// TimeString represents a time of day in 24-hour "HH:MM" format.
// It is stored and transferred as a plain string, which keeps schedule
// documents human-readable and comparison logic trivial.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" value
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the raw "HH:MM" value
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value matches the "HH:MM" format
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the value shifted forward by m minutes.
// Crossing midnight in either direction is an error - clinic days do not wrap.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + m)
}

// IsBefore returns true if t is strictly earlier than other.
// Unparseable values compare as not-before, callers validate beforehand.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// Label returns the 12-hour patient-facing form of the value (e.g. "14:30" -> "02:30 PM")
func (t TimeString) Label() (string, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return LabelFromMinutes(m), nil
}

// LabelFromMinutes formats minutes since midnight as a 12-hour slot label
func LabelFromMinutes(m int) string {
	return time.Date(2000, time.January, 1, m/60, m%60, 0, 0, time.UTC).Format(LabelFormat)
}
