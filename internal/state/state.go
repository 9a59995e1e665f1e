// Package state holds the explicit application-state aggregate. Every
// mutation is a pure method that returns a new Snapshot; nothing here is
// an ambient static, so operations compose deterministically in tests and
// a reader always observes a fully consistent snapshot.
package state

import (
	"daykeeper/internal/models"
)

// Scope selects one of the period-keyed stores.
type Scope string

const (
	ScopeWeek  Scope = "week"
	ScopeMonth Scope = "month"
	ScopeYear  Scope = "year"
)

// Snapshot is the complete in-memory application state. Maps are keyed by
// the canonical datekey strings; reads of absent keys yield empty
// defaults, records are created lazily on first write.
type Snapshot struct {
	Calendar map[string]models.DayRecord

	WeeklyChecklists  map[string][]models.ChecklistItem
	MonthlyChecklists map[string][]models.ChecklistItem
	YearlyChecklists  map[string][]models.ChecklistItem

	WeeklyNotes  map[string]models.Note
	MonthlyNotes map[string]models.Note
	YearlyNotes  map[string]models.Note

	RecurringItems []models.RecurringChecklistItem

	Alarms []models.Alarm
	Timers []models.Timer

	Stopwatch models.Stopwatch

	NotebookPages []models.NotebookPage
	ActivePageID  string
}

// NewSnapshot returns an empty, usable snapshot.
func NewSnapshot() Snapshot {
	return Snapshot{
		Calendar:          map[string]models.DayRecord{},
		WeeklyChecklists:  map[string][]models.ChecklistItem{},
		MonthlyChecklists: map[string][]models.ChecklistItem{},
		YearlyChecklists:  map[string][]models.ChecklistItem{},
		WeeklyNotes:       map[string]models.Note{},
		MonthlyNotes:      map[string]models.Note{},
		YearlyNotes:       map[string]models.Note{},
	}
}

// Day returns the record for a day key, or an empty record when none
// exists yet. Absent keys are never an error.
func (s Snapshot) Day(key string) models.DayRecord {
	return s.Calendar[key]
}

// withDay returns a snapshot whose calendar has key replaced.
func (s Snapshot) withDay(key string, rec models.DayRecord) Snapshot {
	out := s
	out.Calendar = cloneDayMap(s.Calendar)
	out.Calendar[key] = rec
	return out
}

func cloneDayMap(in map[string]models.DayRecord) map[string]models.DayRecord {
	out := make(map[string]models.DayRecord, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneItems(in []models.ChecklistItem) []models.ChecklistItem {
	return append([]models.ChecklistItem(nil), in...)
}

func cloneItemMap(in map[string][]models.ChecklistItem) map[string][]models.ChecklistItem {
	out := make(map[string][]models.ChecklistItem, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneNoteMap(in map[string]models.Note) map[string]models.Note {
	out := make(map[string]models.Note, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
