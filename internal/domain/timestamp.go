package domain

import (
	"strings"
	"time"

	"hourlog/internal/errors"
)

// DisplayTimeFormat is the format used for timestamps in reports and
// error messages.
const DisplayTimeFormat = "2006-01-02 15:04:05"

// StorageTimeFormat is the format written to the backing store.
const StorageTimeFormat = time.RFC3339Nano

// timestampLayouts are the accepted ISO-8601 shapes, tried in order.
// Go's parser accepts a fractional second after the seconds field even
// when the layout omits it.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string. Timestamps without
// an offset are interpreted in local time.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewParseError(value)
}

// FormatTimestamp formats a timestamp for display.
func FormatTimestamp(t time.Time) string {
	return t.Format(DisplayTimeFormat)
}
