package decode

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Exact layouts tried in order before falling back to a general parse. The
// day-first form wins over the month-first form for ambiguous values.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"20060102",
}

var generalLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// millisThreshold separates Unix second timestamps from millisecond ones.
const millisThreshold = 10_000_000_000

// Date normalizes an arbitrary value to a calendar date at UTC midnight.
// Integers are treated as Unix time (seconds, or milliseconds above the
// threshold); strings are tried against the exact layouts and then a general
// UTC-assumed parse; anything else is stringified and retried once. All
// failure paths return the zero time, never an error.
func Date(v any) time.Time {
	return date(v, true)
}

// DateAt reads key from rec and normalizes it with Date. Absent keys yield
// the zero time.
func DateAt(rec Record, key string) time.Time {
	v, ok := rec[key]
	if !ok {
		return time.Time{}
	}
	return Date(v)
}

func date(v any, retry bool) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return truncate(t.UTC())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		n, err := cast.ToInt64E(t)
		if err != nil {
			return time.Time{}
		}
		return unixDate(n)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return time.Time{}
		}
		return unixDate(n)
	case string:
		return parseDateString(t)
	default:
		if !retry {
			return time.Time{}
		}
		s, err := cast.ToStringE(v)
		if err != nil || strings.TrimSpace(s) == "" {
			return time.Time{}
		}
		return date(s, false)
	}
}

func unixDate(n int64) time.Time {
	secs := n
	if n > millisThreshold {
		secs = n / 1000
	}
	return truncate(time.Unix(secs, 0).UTC())
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncate(t.UTC())
		}
	}
	for _, layout := range generalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncate(t.UTC())
		}
	}
	return time.Time{}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
