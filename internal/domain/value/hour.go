package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24

	// MaxMinutes is the last minute of the day, 23:59.
	MaxMinutes = hoursPerDay*minutesPerHour - 1
)

var (
	ErrInvalidHourFormat = errors.New("hour must look like HH:MM")
	ErrHourOutOfRange    = errors.New("hour is out of range")
)

// Minutes is a wall-clock time of day counted in minutes since midnight.
// Valid values are 0..MaxMinutes.
type Minutes int

func NewMinutes(v int) (Minutes, error) {
	if v < 0 || v > MaxMinutes {
		return 0, fmt.Errorf("%d minutes: %w", v, ErrHourOutOfRange)
	}

	return Minutes(v), nil
}

// ParseHour converts "HH:MM" into minutes since midnight.
func ParseHour(s string) (Minutes, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || mm == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidHourFormat)
	}

	hour, err := parseDigits(hh)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidHourFormat)
	}

	minute, err := parseDigits(mm)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidHourFormat)
	}

	if hour >= hoursPerDay || minute >= minutesPerHour {
		return 0, fmt.Errorf("%q: %w", s, ErrHourOutOfRange)
	}

	return Minutes(hour*minutesPerHour + minute), nil
}

func (m Minutes) Int() int {
	return int(m)
}

// String formats the value as zero-padded "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/minutesPerHour, int(m)%minutesPerHour)
}

// parseDigits accepts only ASCII digits, so signs and spaces that
// strconv.Atoi would let through are rejected.
func parseDigits(s string) (int, error) {
	if len(s) > 2 { //nolint:mnd
		return 0, ErrInvalidHourFormat
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidHourFormat
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi: %w", err)
	}

	return v, nil
}
