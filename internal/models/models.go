// Package models defines the persistent data model for the calendar,
// alarm, timer and notebook surfaces. Everything here is plain data;
// projection and mutation live in the schedule and state packages.
package models

import "time"

// Reminder is a user-authored, time-of-day reminder anchored to the day it
// was created on. When the rule recurs, the anchor day shows the original
// and later matching days show materialized projections.
type Reminder struct {
	ID         string
	Text       string
	Time       string // HH:MM, 24-hour, zero-padded
	Completed  bool   // only meaningful when Recurrence does not recur
	Recurrence RecurrenceRule
	// CompletedDates holds one day key per completed occurrence of a
	// recurring reminder.
	CompletedDates []string
}

// CompletedOn reports the effective completion state of the reminder for
// the given day key.
func (r Reminder) CompletedOn(dayKey string) bool {
	if !r.Recurrence.Recurs() {
		return r.Completed
	}
	for _, d := range r.CompletedDates {
		if d == dayKey {
			return true
		}
	}
	return false
}

// ChecklistItem is a single checkable entry owned by one day or period.
type ChecklistItem struct {
	ID        string
	Text      string
	Completed bool
}

// RecurringChecklistItem repeats indefinitely from its creation onward.
// It has no anchor date; its rule is evaluated structurally against each
// queried day. Completion is tracked per day on the DayRecord, never here.
type RecurringChecklistItem struct {
	ID         string
	Text       string
	Recurrence RecurrenceRule // never RecurNone
}

// Note is free-form text attached to a day or period.
type Note struct {
	ID      string
	Content string
}

// DayRecord holds everything owned by a single calendar date. A day-owned
// reminder lives in exactly one DayRecord; projections of it onto later
// dates are computed on read and never stored.
type DayRecord struct {
	Reminders []Reminder
	Checklist []ChecklistItem
	Note      *Note
	// CompletedRecurringItemIDs lists recurring checklist items checked
	// off on this particular day.
	CompletedRecurringItemIDs []string
}

// RecurringItemCompleted reports whether the recurring checklist item was
// completed on this day.
func (d DayRecord) RecurringItemCompleted(itemID string) bool {
	for _, id := range d.CompletedRecurringItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// Alarm rings at a wall-clock time, either weekly on selected days or once
// on a target date.
type Alarm struct {
	ID         string
	Time       string // HH:MM
	Label      string
	Days       []int // 0 (Sun) - 6 (Sat); empty for one-time alarms
	Enabled    bool
	OneTime    bool
	TargetDate string // day key, only for one-time alarms
}

// RingsOn reports whether the enabled alarm applies to the given date.
func (a Alarm) RingsOn(weekday int, dayKey string) bool {
	if !a.Enabled {
		return false
	}
	for _, d := range a.Days {
		if d == weekday {
			return true
		}
	}
	return a.TargetDate == dayKey
}

// TimerStatus enumerates the states of a countdown timer.
type TimerStatus string

const (
	TimerRunning TimerStatus = "running"
	TimerPaused  TimerStatus = "paused"
	TimerStopped TimerStatus = "stopped"
)

// Timer is a countdown; Remaining is decremented by the 1s tick while
// running.
type Timer struct {
	ID        string
	Label     string
	Initial   int // seconds
	Remaining int // seconds
	Status    TimerStatus
}

// Stopwatch tracks elapsed time across start/stop cycles. Accumulated is
// the total from finished runs; StartedAt is set while running.
type Stopwatch struct {
	Running     bool
	StartedAt   time.Time
	Accumulated time.Duration
	Laps        []time.Duration // most recent first
}

// Elapsed returns total elapsed time as of now.
func (s Stopwatch) Elapsed(now time.Time) time.Duration {
	if s.Running {
		return s.Accumulated + now.Sub(s.StartedAt)
	}
	return s.Accumulated
}

// NotebookPage is a free-form notebook entry.
type NotebookPage struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holiday is a named observance on a specific date. Several holidays may
// share a date; the name is the dedup key within it.
type Holiday struct {
	Name string
	Date string // day key
}
