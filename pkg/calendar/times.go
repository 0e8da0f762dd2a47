package calendar

import (
	"time"
)

// instantLayouts are the shapes upstream date fields arrive in, most specific
// first.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseInstant parses an upstream date or date-time string. The boolean is
// false for empty or malformed values; callers drop the record instead of
// letting an invalid instant reach rendering.
func parseInstant(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateAt parses a plain date and pins it to the given wall-clock time.
func dateAt(date string, hour, minute int, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), true
}
