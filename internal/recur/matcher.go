// Package recur decides whether a recurrence rule places an occurrence on
// a given calendar date. It is the algorithmic core under the
// materializer: pure functions over rule, anchor and candidate dates.
package recur

import (
	"time"

	"daykeeper/internal/models"
)

// Matches reports whether candidate is an occurrence of rule anchored at
// anchor. Ordering policy: a candidate strictly before the anchor never
// matches, and the anchor date itself never matches for a recurring rule —
// the anchor day's original entity already represents that occurrence, and
// materializing it again would double-count.
func Matches(rule models.RecurrenceRule, anchor, candidate time.Time) bool {
	a := dateOnly(anchor)
	c := dateOnly(candidate)
	if !rule.Recurs() {
		return c.Equal(a)
	}
	if !c.After(a) {
		return false
	}
	return MatchesOn(rule, c)
}

// MatchesOn evaluates the rule structurally against a date, with no anchor
// involved. Recurring checklist items use this directly: they apply from
// creation onward and carry no anchor date.
//
// A monthly rule on day 29-31 simply never matches months too short to
// contain that day; there is no clamping or rollover.
func MatchesOn(rule models.RecurrenceRule, date time.Time) bool {
	switch rule.Type {
	case models.RecurDaily:
		return true
	case models.RecurWeekly:
		return rule.HasWeekday(int(date.Weekday()))
	case models.RecurMonthly:
		return date.Day() == rule.DayOfMonth
	case models.RecurYearly:
		return int(date.Month())-1 == rule.MonthOfYear && date.Day() == rule.DayOfMonth
	default:
		return false
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
