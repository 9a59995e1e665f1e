// Package holiday builds the per-year holiday calendar: a remote public
// feed merged with a locally computed set of US observances, deduplicated
// by name per date.
package holiday

import (
	"fmt"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
)

// Easter returns Easter Sunday for year using the Anonymous Gregorian
// algorithm — pure modular arithmetic on the year, including the century
// and leap corrections, no lookup table.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// nthWeekday returns the nth given weekday of the month (n is 1-based).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for t.Weekday() != weekday {
		t = t.AddDate(0, 0, 1)
	}
	return t.AddDate(0, 0, (n-1)*7)
}

// lastWeekday returns the last given weekday of the month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	t := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	for t.Weekday() != weekday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// Local computes the fixed and floating US observances for a year. The
// remote feed covers federal holidays; this set fills in the civil
// calendar (and doubles as the complete fallback when the feed is
// unreachable).
func Local(year int) []models.Holiday {
	fixed := func(name string, month, day int) models.Holiday {
		return models.Holiday{Name: name, Date: fmt.Sprintf("%04d-%02d-%02d", year, month, day)}
	}
	on := func(name string, t time.Time) models.Holiday {
		return models.Holiday{Name: name, Date: datekey.Day(t)}
	}

	easter := Easter(year)
	goodFriday := easter.AddDate(0, 0, -2)
	thanksgiving := nthWeekday(year, time.November, time.Thursday, 4)
	blackFriday := thanksgiving.AddDate(0, 0, 1)

	return []models.Holiday{
		on("Martin Luther King, Jr. Day", nthWeekday(year, time.January, time.Monday, 3)),
		fixed("Groundhog Day", 2, 2),
		fixed("Valentine's Day", 2, 14),
		on("Presidents Day", nthWeekday(year, time.February, time.Monday, 3)),
		fixed("St. Patrick's Day", 3, 17),
		fixed("April Fools' Day", 4, 1),
		on("Good Friday", goodFriday),
		on("Easter Sunday", easter),
		fixed("Earth Day", 4, 22),
		fixed("Cinco de Mayo", 5, 5),
		on("Mother's Day", nthWeekday(year, time.May, time.Sunday, 2)),
		on("Memorial Day", lastWeekday(year, time.May, time.Monday)),
		fixed("Flag Day", 6, 14),
		on("Father's Day", nthWeekday(year, time.June, time.Sunday, 3)),
		on("Labor Day", nthWeekday(year, time.September, time.Monday, 1)),
		fixed("Patriot Day", 9, 11),
		on("Indigenous Peoples' Day", nthWeekday(year, time.October, time.Monday, 2)),
		fixed("Halloween", 10, 31),
		on("Thanksgiving Day", thanksgiving),
		on("Black Friday", blackFriday),
		fixed("Christmas Eve", 12, 24),
		fixed("New Year's Eve", 12, 31),
	}
}
