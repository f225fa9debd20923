package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseTargetRange parses a gamble range of the form "min-max".
func ParseTargetRange(s string) (int64, int64, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range format: %q", s)
	}

	minVal, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range format: %q", s)
	}
	maxVal, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range format: %q", s)
	}

	if minVal <= 0 || minVal >= maxVal {
		return 0, 0, fmt.Errorf("invalid range: min must be positive and below max")
	}

	return minVal, maxVal, nil
}

func GenerateSessionID() string {
	return fmt.Sprintf("session_%s_%d",
		time.Now().Format("20060102"),
		uuid.New().ID())
}

// DayString formats a time as the calendar-day key used by the daily ledger.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDay parses a daily ledger day key. The bool reports whether the key
// was present and well-formed.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
