// Package schedule materializes the effective set of instances visible on
// a calendar date and applies per-occurrence completion policy. Instances
// are produced fresh on every query and never persisted.
package schedule

import (
	"sort"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
	"daykeeper/internal/recur"
)

// ReminderInstance is the view-level projection of a reminder onto one
// calendar date. For recurring projections the ID is derived and the Ref
// carries the decomposed identity; OriginalDateKey always points back at
// the anchor DayRecord.
type ReminderInstance struct {
	ID              string
	Ref             models.InstanceRef
	Text            string
	Time            string // HH:MM
	Recurrence      models.RecurrenceRule
	OriginalDateKey string
	IsRecurring     bool
	Completed       bool // effective completion for the queried day
}

// ChecklistInstance is the unified view of day-owned and recurring
// checklist items for one date.
type ChecklistInstance struct {
	ID          string
	Text        string
	Completed   bool
	IsRecurring bool
}

// RemindersOn returns every reminder instance visible on date: the anchor
// day's own reminders verbatim, plus projections of every recurring
// reminder stored on an earlier anchor whose rule matches. The result is
// sorted ascending by time of day; HH:MM is zero-padded 24-hour, so plain
// string comparison orders correctly. Ties keep insertion order.
func RemindersOn(date time.Time, calendar map[string]models.DayRecord) []ReminderInstance {
	dayKey := datekey.Day(date)

	var out []ReminderInstance
	if rec, ok := calendar[dayKey]; ok {
		for _, r := range rec.Reminders {
			out = append(out, ReminderInstance{
				ID:              r.ID,
				Ref:             models.OriginalRef(r.ID),
				Text:            r.Text,
				Time:            r.Time,
				Recurrence:      r.Recurrence,
				OriginalDateKey: dayKey,
				Completed:       r.CompletedOn(dayKey),
			})
		}
	}

	// Scan other anchors in key order so repeated queries materialize in a
	// deterministic order.
	anchors := make([]string, 0, len(calendar))
	for k := range calendar {
		if k != dayKey {
			anchors = append(anchors, k)
		}
	}
	sort.Strings(anchors)

	for _, anchorKey := range anchors {
		anchorDate, err := datekey.ParseDay(anchorKey)
		if err != nil {
			continue
		}
		for _, r := range calendar[anchorKey].Reminders {
			if !r.Recurrence.Recurs() {
				continue
			}
			if !recur.Matches(r.Recurrence, anchorDate, date) {
				continue
			}
			ref := models.RecurringRef(r.ID, dayKey)
			out = append(out, ReminderInstance{
				ID:              ref.InstanceID(),
				Ref:             ref,
				Text:            r.Text,
				Time:            r.Time,
				Recurrence:      r.Recurrence,
				OriginalDateKey: anchorKey,
				IsRecurring:     true,
				Completed:       r.CompletedOn(dayKey),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// ChecklistOn returns the unified checklist for date: recurring items whose
// rule structurally matches the date (completion looked up in the day's
// completed-id set), followed by the day's own items.
func ChecklistOn(date time.Time, rec models.DayRecord, recurring []models.RecurringChecklistItem) []ChecklistInstance {
	var out []ChecklistInstance
	for _, item := range recurring {
		if !recur.MatchesOn(item.Recurrence, date) {
			continue
		}
		out = append(out, ChecklistInstance{
			ID:          item.ID,
			Text:        item.Text,
			Completed:   rec.RecurringItemCompleted(item.ID),
			IsRecurring: true,
		})
	}
	for _, item := range rec.Checklist {
		out = append(out, ChecklistInstance{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	return out
}

// AlarmsOn returns enabled alarms applying to date, sorted by time.
func AlarmsOn(date time.Time, alarms []models.Alarm) []models.Alarm {
	weekday := int(date.Weekday())
	dayKey := datekey.Day(date)
	var out []models.Alarm
	for _, a := range alarms {
		if a.RingsOn(weekday, dayKey) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
