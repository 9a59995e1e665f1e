package state

import (
	"fmt"
	"strings"

	"daykeeper/internal/models"
	"daykeeper/internal/schedule"
)

// AddReminder validates and stores a reminder on its anchor day. The rule
// is normalized first so a variant switched during editing cannot leak
// stale parameters into the stored entity.
func (s Snapshot) AddReminder(dayKey string, r models.Reminder) (Snapshot, error) {
	if strings.TrimSpace(r.Text) == "" {
		return s, fmt.Errorf("reminder text is empty")
	}
	r.Recurrence = r.Recurrence.Normalize()
	if err := r.Recurrence.Validate(); err != nil {
		return s, err
	}
	rec := s.Day(dayKey)
	rec.Reminders = append(append([]models.Reminder(nil), rec.Reminders...), r)
	return s.withDay(dayKey, rec), nil
}

// DeleteReminder removes a day-owned reminder. Only originals can be
// deleted; a materialized projection has no stored row of its own.
func (s Snapshot) DeleteReminder(dayKey, id string) Snapshot {
	rec, ok := s.Calendar[dayKey]
	if !ok {
		return s
	}
	reminders := make([]models.Reminder, 0, len(rec.Reminders))
	for _, r := range rec.Reminders {
		if r.ID != id {
			reminders = append(reminders, r)
		}
	}
	if len(reminders) == len(rec.Reminders) {
		return s
	}
	rec.Reminders = reminders
	return s.withDay(dayKey, rec)
}

// ToggleReminder applies the per-occurrence completion policy for the
// instance viewed on queryKey. Unresolvable refs are silent no-ops.
func (s Snapshot) ToggleReminder(ref models.InstanceRef, originKey, queryKey string) Snapshot {
	out := s
	out.Calendar = schedule.ToggleReminder(s.Calendar, ref, originKey, queryKey)
	return out
}

// AddDayChecklistItem appends a day-specific checklist item.
func (s Snapshot) AddDayChecklistItem(dayKey string, item models.ChecklistItem) (Snapshot, error) {
	if strings.TrimSpace(item.Text) == "" {
		return s, fmt.Errorf("checklist item text is empty")
	}
	rec := s.Day(dayKey)
	rec.Checklist = append(cloneItems(rec.Checklist), item)
	return s.withDay(dayKey, rec), nil
}

// DeleteDayChecklistItem removes a day-owned item. Recurring items cannot
// be deleted from a day view; they are removed at the source.
func (s Snapshot) DeleteDayChecklistItem(dayKey, id string) Snapshot {
	rec, ok := s.Calendar[dayKey]
	if !ok {
		return s
	}
	items := make([]models.ChecklistItem, 0, len(rec.Checklist))
	for _, item := range rec.Checklist {
		if item.ID != id {
			items = append(items, item)
		}
	}
	if len(items) == len(rec.Checklist) {
		return s
	}
	rec.Checklist = items
	return s.withDay(dayKey, rec)
}

// ToggleChecklistItem toggles either a day-owned item or a recurring
// item's per-day completion, whichever the id resolves to.
func (s Snapshot) ToggleChecklistItem(dayKey, itemID string) Snapshot {
	out := s
	out.Calendar = schedule.ToggleChecklistItem(s.Calendar, s.RecurringItems, dayKey, itemID)
	return out
}

// SetDayNote creates or replaces the day's note, keeping a stable note id
// once assigned.
func (s Snapshot) SetDayNote(dayKey, content string) Snapshot {
	rec := s.Day(dayKey)
	id := "note-" + dayKey
	if rec.Note != nil {
		id = rec.Note.ID
	}
	rec.Note = &models.Note{ID: id, Content: content}
	return s.withDay(dayKey, rec)
}

// AddRecurringItem stores a recurring checklist item. The rule must
// actually recur; there is no "none" variant for these.
func (s Snapshot) AddRecurringItem(item models.RecurringChecklistItem) (Snapshot, error) {
	if strings.TrimSpace(item.Text) == "" {
		return s, fmt.Errorf("recurring item text is empty")
	}
	item.Recurrence = item.Recurrence.Normalize()
	if !item.Recurrence.Recurs() {
		return s, fmt.Errorf("recurring item requires a recurrence rule")
	}
	if err := item.Recurrence.Validate(); err != nil {
		return s, err
	}
	out := s
	out.RecurringItems = append(append([]models.RecurringChecklistItem(nil), s.RecurringItems...), item)
	return out, nil
}

// DeleteRecurringItem removes the source item. Per-day completion marks
// for it become inert but are left in place.
func (s Snapshot) DeleteRecurringItem(id string) Snapshot {
	items := make([]models.RecurringChecklistItem, 0, len(s.RecurringItems))
	for _, item := range s.RecurringItems {
		if item.ID != id {
			items = append(items, item)
		}
	}
	out := s
	out.RecurringItems = items
	return out
}
