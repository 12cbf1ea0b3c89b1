package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// AddMinutes advances an (hour, minute) pair by delta minutes, wrapping
// around midnight. Delta is expected to be non-negative (slot offsets).
func AddMinutes(hour, minute, delta int) (int, int) {
	total := hour*60 + minute + delta
	return (total / 60) % 24, total % 60
}

// RoundUpToNearest5 rounds a minute value up to the next multiple of 5,
// wrapping 60 back to 0. Display only; slot boundaries stay unrounded.
func RoundUpToNearest5(minute int) int {
	return ((minute + 4) / 5 * 5) % 60
}

// ParseClock parses a "HH:MM" string into an hour and minute.
func ParseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour, minute, nil
}

// FormatClock renders an hour and minute as "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
