package schedule

import (
	"daykeeper/internal/models"
)

// ToggleReminder applies the completion-toggle policy for the reminder
// identified by ref, as queried from queryKey's view, and returns the
// updated calendar. Non-recurring originals flip their boolean at the
// owning DayRecord; recurring projections toggle the query day's
// membership in the source reminder's completed-dates set.
//
// A ref that resolves to no known source is a silent no-op: the source may
// have been deleted between materialization and the toggle, which is a
// benign race, not an error.
func ToggleReminder(calendar map[string]models.DayRecord, ref models.InstanceRef, originKey, queryKey string) map[string]models.DayRecord {
	sourceKey := queryKey
	if ref.Recurring() {
		sourceKey = originKey
	}
	rec, ok := calendar[sourceKey]
	if !ok {
		return calendar
	}
	idx := -1
	for i, r := range rec.Reminders {
		if r.ID == ref.SourceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return calendar
	}

	reminders := append([]models.Reminder(nil), rec.Reminders...)
	r := reminders[idx]
	if r.Recurrence.Recurs() {
		r.CompletedDates = toggleMembership(r.CompletedDates, queryKey)
	} else {
		r.Completed = !r.Completed
	}
	reminders[idx] = r
	rec.Reminders = reminders
	return withRecord(calendar, sourceKey, rec)
}

// ToggleChecklistItem flips a day-owned checklist item, or toggles a
// recurring item's id in the day's completed set — the recurring source
// itself is never mutated. Unknown ids are a silent no-op.
func ToggleChecklistItem(calendar map[string]models.DayRecord, recurring []models.RecurringChecklistItem, dayKey, itemID string) map[string]models.DayRecord {
	rec := calendar[dayKey]

	for _, item := range recurring {
		if item.ID != itemID {
			continue
		}
		rec.CompletedRecurringItemIDs = toggleMembership(rec.CompletedRecurringItemIDs, itemID)
		return withRecord(calendar, dayKey, rec)
	}

	for i, item := range rec.Checklist {
		if item.ID != itemID {
			continue
		}
		checklist := append([]models.ChecklistItem(nil), rec.Checklist...)
		checklist[i].Completed = !checklist[i].Completed
		rec.Checklist = checklist
		return withRecord(calendar, dayKey, rec)
	}

	return calendar
}

// toggleMembership adds key if absent and removes it if present,
// preserving the order of the remaining entries.
func toggleMembership(set []string, key string) []string {
	for i, k := range set {
		if k == key {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	return append(out, key)
}

// withRecord returns a copy of calendar with key replaced. Mutations are
// total replacements of an immutable snapshot; callers never see a
// partially updated map.
func withRecord(calendar map[string]models.DayRecord, key string, rec models.DayRecord) map[string]models.DayRecord {
	out := make(map[string]models.DayRecord, len(calendar)+1)
	for k, v := range calendar {
		out[k] = v
	}
	out[key] = rec
	return out
}
