package state

import (
	"fmt"
	"strings"

	"daykeeper/internal/models"
)

// PeriodChecklist returns the checklist for a period key, empty when
// absent.
func (s Snapshot) PeriodChecklist(scope Scope, key string) []models.ChecklistItem {
	return s.periodLists(scope)[key]
}

// PeriodNote returns the note for a period key.
func (s Snapshot) PeriodNote(scope Scope, key string) (models.Note, bool) {
	n, ok := s.periodNotes(scope)[key]
	return n, ok
}

// AddPeriodItem appends a checklist item under the period key, creating
// the list lazily.
func (s Snapshot) AddPeriodItem(scope Scope, key string, item models.ChecklistItem) (Snapshot, error) {
	if strings.TrimSpace(item.Text) == "" {
		return s, fmt.Errorf("checklist item text is empty")
	}
	lists := s.periodLists(scope)
	updated := cloneItemMap(lists)
	updated[key] = append(cloneItems(lists[key]), item)
	return s.withPeriodLists(scope, updated), nil
}

// TogglePeriodItem flips the completion flag of an item in a period list.
// Unknown ids are a no-op.
func (s Snapshot) TogglePeriodItem(scope Scope, key, id string) Snapshot {
	lists := s.periodLists(scope)
	items := lists[key]
	idx := -1
	for i, item := range items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	updated := cloneItemMap(lists)
	list := cloneItems(items)
	list[idx].Completed = !list[idx].Completed
	updated[key] = list
	return s.withPeriodLists(scope, updated)
}

// DeletePeriodItem removes an item from a period list.
func (s Snapshot) DeletePeriodItem(scope Scope, key, id string) Snapshot {
	lists := s.periodLists(scope)
	items := lists[key]
	kept := make([]models.ChecklistItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return s
	}
	updated := cloneItemMap(lists)
	updated[key] = kept
	return s.withPeriodLists(scope, updated)
}

// SetPeriodNote creates or replaces a period note, keeping the note id
// stable once assigned.
func (s Snapshot) SetPeriodNote(scope Scope, key, content string) Snapshot {
	notes := s.periodNotes(scope)
	id := "note-" + key
	if existing, ok := notes[key]; ok {
		id = existing.ID
	}
	updated := cloneNoteMap(notes)
	updated[key] = models.Note{ID: id, Content: content}
	return s.withPeriodNotes(scope, updated)
}

func (s Snapshot) periodLists(scope Scope) map[string][]models.ChecklistItem {
	switch scope {
	case ScopeWeek:
		return s.WeeklyChecklists
	case ScopeMonth:
		return s.MonthlyChecklists
	default:
		return s.YearlyChecklists
	}
}

func (s Snapshot) withPeriodLists(scope Scope, lists map[string][]models.ChecklistItem) Snapshot {
	out := s
	switch scope {
	case ScopeWeek:
		out.WeeklyChecklists = lists
	case ScopeMonth:
		out.MonthlyChecklists = lists
	default:
		out.YearlyChecklists = lists
	}
	return out
}

func (s Snapshot) periodNotes(scope Scope) map[string]models.Note {
	switch scope {
	case ScopeWeek:
		return s.WeeklyNotes
	case ScopeMonth:
		return s.MonthlyNotes
	default:
		return s.YearlyNotes
	}
}

func (s Snapshot) withPeriodNotes(scope Scope, notes map[string]models.Note) Snapshot {
	out := s
	switch scope {
	case ScopeWeek:
		out.WeeklyNotes = notes
	case ScopeMonth:
		out.MonthlyNotes = notes
	default:
		out.YearlyNotes = notes
	}
	return out
}
