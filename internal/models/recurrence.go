package models

import "fmt"

// RecurrenceType enumerates the supported recurrence variants.
type RecurrenceType string

const (
	RecurNone    RecurrenceType = "none"
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
)

// RecurrenceRule describes how an entity repeats. Only the fields relevant
// to the active Type are meaningful; Normalize scrubs the rest so a rule
// edited from one variant to another never leaks stale parameters.
type RecurrenceRule struct {
	Type        RecurrenceType `json:"type"`
	DaysOfWeek  []int          `json:"daysOfWeek,omitempty"`  // weekly: 0 (Sun) - 6 (Sat)
	DayOfMonth  int            `json:"dayOfMonth,omitempty"`  // monthly, yearly: 1-31
	MonthOfYear int            `json:"monthOfYear,omitempty"` // yearly: 0 (Jan) - 11 (Dec)
}

// NoRecurrence returns the non-repeating rule.
func NoRecurrence() RecurrenceRule {
	return RecurrenceRule{Type: RecurNone}
}

// Recurs reports whether the rule repeats at all.
func (r RecurrenceRule) Recurs() bool {
	return r.Type != RecurNone && r.Type != ""
}

// Normalize drops parameters that do not belong to the active variant.
func (r RecurrenceRule) Normalize() RecurrenceRule {
	out := RecurrenceRule{Type: r.Type}
	if out.Type == "" {
		out.Type = RecurNone
	}
	switch out.Type {
	case RecurWeekly:
		out.DaysOfWeek = append([]int(nil), r.DaysOfWeek...)
	case RecurMonthly:
		out.DayOfMonth = r.DayOfMonth
	case RecurYearly:
		out.DayOfMonth = r.DayOfMonth
		out.MonthOfYear = r.MonthOfYear
	}
	return out
}

// Validate checks the variant-specific parameters. A weekly rule with no
// selected days is the classic entry error and is rejected here so no
// partial entity is ever created.
func (r RecurrenceRule) Validate() error {
	switch r.Type {
	case RecurNone, RecurDaily, "":
		return nil
	case RecurWeekly:
		if len(r.DaysOfWeek) == 0 {
			return fmt.Errorf("weekly recurrence requires at least one day")
		}
		for _, d := range r.DaysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("weekly recurrence day %d out of range 0-6", d)
			}
		}
		return nil
	case RecurMonthly:
		if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
			return fmt.Errorf("monthly recurrence day %d out of range 1-31", r.DayOfMonth)
		}
		return nil
	case RecurYearly:
		if r.MonthOfYear < 0 || r.MonthOfYear > 11 {
			return fmt.Errorf("yearly recurrence month %d out of range 0-11", r.MonthOfYear)
		}
		if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
			return fmt.Errorf("yearly recurrence day %d out of range 1-31", r.DayOfMonth)
		}
		return nil
	default:
		return fmt.Errorf("unknown recurrence type %q", r.Type)
	}
}

// HasWeekday reports whether the weekly rule includes the given weekday
// (0 = Sunday).
func (r RecurrenceRule) HasWeekday(day int) bool {
	for _, d := range r.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}
