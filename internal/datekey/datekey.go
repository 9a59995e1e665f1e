// Package datekey produces the canonical string keys that index every
// per-period store: day records, weekly/monthly/yearly checklists and
// notes, and per-occurrence completion sets. Keys always reflect the local
// calendar date.
package datekey

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day returns the YYYY-MM-DD key for the local calendar date of t.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

// Week returns the day key of the Sunday starting the week containing t.
// Two dates in the same Sunday-start week always share a week key.
func Week(t time.Time) string {
	return Day(StartOfWeek(t))
}

// Month returns the YYYY-MM key for t.
func Month(t time.Time) string {
	return t.Format("2006-01")
}

// Year returns the YYYY key for t.
func Year(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// ParseDay parses a YYYY-MM-DD day key into a local midnight time.
func ParseDay(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ValidDay reports whether key is a well-formed day key.
func ValidDay(key string) bool {
	_, err := ParseDay(key)
	return err == nil
}
