package schedule

import (
	"testing"

	"daykeeper/internal/models"
	"daykeeper/internal/testutil"
)

func TestToggleReminderOriginal(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{testutil.NewReminder("r1").Build()}},
	}

	got := ToggleReminder(calendar, models.OriginalRef("r1"), "2024-01-10", "2024-01-10")
	if !got["2024-01-10"].Reminders[0].Completed {
		t.Fatalf("toggle did not flip the completion flag")
	}
	if calendar["2024-01-10"].Reminders[0].Completed {
		t.Fatalf("input calendar was mutated")
	}

	again := ToggleReminder(got, models.OriginalRef("r1"), "2024-01-10", "2024-01-10")
	if again["2024-01-10"].Reminders[0].Completed {
		t.Fatalf("second toggle did not restore the flag")
	}
}

func TestToggleReminderRecurringOccurrence(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{testutil.NewReminder("r1").Daily().Build()}},
	}
	ref := models.RecurringRef("r1", "2024-01-12")

	got := ToggleReminder(calendar, ref, "2024-01-10", "2024-01-12")
	dates := got["2024-01-10"].Reminders[0].CompletedDates
	if len(dates) != 1 || dates[0] != "2024-01-12" {
		t.Fatalf("CompletedDates = %v, want the toggled occurrence only", dates)
	}

	// The toggle lands on the anchor record, never creates a query-day row.
	if _, ok := got["2024-01-12"]; ok {
		t.Fatalf("toggle created a record on the queried day")
	}

	again := ToggleReminder(got, ref, "2024-01-10", "2024-01-12")
	if len(again["2024-01-10"].Reminders[0].CompletedDates) != 0 {
		t.Fatalf("second toggle did not remove the occurrence")
	}
}

func TestToggleReminderUnknownIsNoOp(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{testutil.NewReminder("r1").Build()}},
	}

	got := ToggleReminder(calendar, models.OriginalRef("ghost"), "2024-01-10", "2024-01-10")
	if got["2024-01-10"].Reminders[0].Completed {
		t.Fatalf("unknown id toggled something")
	}

	got = ToggleReminder(calendar, models.RecurringRef("r9", "2024-01-12"), "2024-01-09", "2024-01-12")
	if len(got) != len(calendar) {
		t.Fatalf("no-op toggle changed the calendar")
	}
}

func TestToggleChecklistItemDayOwned(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Checklist: []models.ChecklistItem{{ID: "c1", Text: "x"}}},
	}

	got := ToggleChecklistItem(calendar, nil, "2024-01-10", "c1")
	if !got["2024-01-10"].Checklist[0].Completed {
		t.Fatalf("day item not toggled")
	}
}

func TestToggleChecklistItemRecurringUsesDaySet(t *testing.T) {
	recurring := []models.RecurringChecklistItem{
		{ID: "g1", Text: "stretch", Recurrence: models.RecurrenceRule{Type: models.RecurDaily}},
	}
	calendar := map[string]models.DayRecord{}

	got := ToggleChecklistItem(calendar, recurring, "2024-01-10", "g1")
	ids := got["2024-01-10"].CompletedRecurringItemIDs
	if len(ids) != 1 || ids[0] != "g1" {
		t.Fatalf("CompletedRecurringItemIDs = %v, want [g1]", ids)
	}

	// The same item on a different day is independent.
	other := ToggleChecklistItem(got, recurring, "2024-01-11", "g1")
	if len(other["2024-01-10"].CompletedRecurringItemIDs) != 1 {
		t.Fatalf("toggling another day affected the first day")
	}
}
