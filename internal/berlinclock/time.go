package berlinclock

import (
	"errors"
	"strconv"
	"strings"

	"github.com/wheelibin/berlinuhr/internal/constants"
)

var (
	ErrEmptyInput          = errors.New("Empty time")
	ErrMalformedFormat     = errors.New("The time format is incorrect. Expected: HH:mm:ss (23:00:51)")
	ErrInvalidHoursField   = errors.New("(Hours) parameter is not a number")
	ErrInvalidMinutesField = errors.New("(Minutes) parameter is not a number")
	ErrInvalidSecondsField = errors.New("(Seconds) parameter is not a number")
	ErrHoursOutOfRange     = errors.New("Hours must be between 0-24")
	ErrMinutesOutOfRange   = errors.New("Minutes must be between 0-59")
	ErrSecondsOutOfRange   = errors.New("Seconds must be between 0-59")
)

// Time is a validated wall clock time. Hours may be 24 to show midnight at the end of a day.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// ParseTime reads a "HH:mm:ss" string. The first rule the input breaks decides the error.
func ParseTime(text string) (Time, error) {
	if strings.TrimSpace(text) == "" {
		return Time{}, ErrEmptyInput
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return Time{}, ErrMalformedFormat
	}

	hours, err := parseField(parts[0])
	if err != nil {
		return Time{}, ErrInvalidHoursField
	}
	minutes, err := parseField(parts[1])
	if err != nil {
		return Time{}, ErrInvalidMinutesField
	}
	seconds, err := parseField(parts[2])
	if err != nil {
		return Time{}, ErrInvalidSecondsField
	}

	if hours < 0 || hours > constants.MaxHours {
		return Time{}, ErrHoursOutOfRange
	}
	if minutes < 0 || minutes > constants.MaxMinutes {
		return Time{}, ErrMinutesOutOfRange
	}
	if seconds < 0 || seconds > constants.MaxSeconds {
		return Time{}, ErrSecondsOutOfRange
	}

	return Time{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// surrounding whitespace and a leading sign are allowed, the digit count is not checked
func parseField(field string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(field))
}
