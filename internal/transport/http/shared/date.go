package shared

import (
	"strings"
	"time"
)

// dateOnly is the form date pickers submit; full RFC3339 timestamps are
// accepted as well.
const dateOnly = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(dateOnly, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
