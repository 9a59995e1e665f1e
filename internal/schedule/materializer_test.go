package schedule

import (
	"testing"
	"time"

	"daykeeper/internal/models"
	"daykeeper/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRemindersOnProjectsRecurring(t *testing.T) {
	// Weekly reminder anchored Wednesday 2024-01-10, repeating Wednesdays.
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{
			testutil.NewReminder("r1").WithText("standup").WithTime("09:30").Weekly(3).Build(),
		}},
	}

	got := RemindersOn(date(2024, time.January, 17), calendar)
	if len(got) != 1 {
		t.Fatalf("got %d instances, want 1", len(got))
	}
	inst := got[0]
	if inst.ID != "r1::recurring::2024-01-17" {
		t.Errorf("derived id = %q", inst.ID)
	}
	if !inst.IsRecurring {
		t.Errorf("instance not marked recurring")
	}
	if inst.OriginalDateKey != "2024-01-10" {
		t.Errorf("OriginalDateKey = %q, want anchor key", inst.OriginalDateKey)
	}
	if inst.Completed {
		t.Errorf("fresh occurrence reported completed")
	}
}

func TestRemindersOnAnchorDayShowsOriginalOnly(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{
			testutil.NewReminder("r1").Daily().Build(),
		}},
	}

	got := RemindersOn(date(2024, time.January, 10), calendar)
	if len(got) != 1 {
		t.Fatalf("anchor day yielded %d instances, want exactly the original", len(got))
	}
	if got[0].ID != "r1" {
		t.Errorf("anchor day id = %q, want the original id", got[0].ID)
	}
	if got[0].IsRecurring {
		t.Errorf("anchor-day original marked as a projection")
	}
}

func TestRemindersOnSortedByTime(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-15": {Reminders: []models.Reminder{
			testutil.NewReminder("late").WithTime("21:00").Build(),
			testutil.NewReminder("early").WithTime("07:00").Build(),
		}},
		"2024-01-08": {Reminders: []models.Reminder{
			testutil.NewReminder("mid").WithTime("12:00").Daily().Build(),
		}},
	}

	got := RemindersOn(date(2024, time.January, 15), calendar)
	if len(got) != 3 {
		t.Fatalf("got %d instances, want 3", len(got))
	}
	wantOrder := []string{"early", "mid::recurring::2024-01-15", "late"}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestRemindersOnCompletionPerOccurrence(t *testing.T) {
	calendar := map[string]models.DayRecord{
		"2024-01-10": {Reminders: []models.Reminder{
			testutil.NewReminder("r1").Daily().WithCompletedDates("2024-01-11").Build(),
		}},
	}

	done := RemindersOn(date(2024, time.January, 11), calendar)
	if !done[0].Completed {
		t.Errorf("occurrence on a completed date not marked completed")
	}
	fresh := RemindersOn(date(2024, time.January, 12), calendar)
	if fresh[0].Completed {
		t.Errorf("occurrence on an uncompleted date marked completed")
	}
}

func TestChecklistOnMergesRecurringFirst(t *testing.T) {
	rec := models.DayRecord{
		Checklist:                 []models.ChecklistItem{{ID: "d1", Text: "day item"}},
		CompletedRecurringItemIDs: []string{"g1"},
	}
	recurring := []models.RecurringChecklistItem{
		{ID: "g1", Text: "stretch", Recurrence: models.RecurrenceRule{Type: models.RecurDaily}},
		{ID: "g2", Text: "weekly review", Recurrence: models.RecurrenceRule{Type: models.RecurWeekly, DaysOfWeek: []int{0}}},
	}

	// A Monday: the weekly Sunday item must not appear.
	got := ChecklistOn(date(2024, time.January, 8), rec, recurring)
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].ID != "g1" || !got[0].IsRecurring {
		t.Errorf("first item = %+v, want the recurring one", got[0])
	}
	if !got[0].Completed {
		t.Errorf("recurring item not completed despite day's completed set")
	}
	if got[1].ID != "d1" || got[1].IsRecurring {
		t.Errorf("second item = %+v, want the day-owned one", got[1])
	}
}

func TestAlarmsOnFiltersAndSorts(t *testing.T) {
	alarms := []models.Alarm{
		testutil.NewAlarm("a-late").WithTime("22:00").WithDays(1).Build(),
		testutil.NewAlarm("a-off").WithTime("06:00").WithDays(1).Disabled().Build(),
		testutil.NewAlarm("a-once").WithTime("08:00").OneTime("2024-01-08").Build(),
	}

	got := AlarmsOn(date(2024, time.January, 8), alarms) // a Monday
	if len(got) != 2 {
		t.Fatalf("got %d alarms, want 2", len(got))
	}
	if got[0].ID != "a-once" || got[1].ID != "a-late" {
		t.Errorf("order = %q, %q; want a-once, a-late", got[0].ID, got[1].ID)
	}
}
