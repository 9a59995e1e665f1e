package state

import (
	"testing"
	"time"

	"daykeeper/internal/models"
	"daykeeper/internal/testutil"
)

func TestAddReminderValidation(t *testing.T) {
	s := NewSnapshot()

	if _, err := s.AddReminder("2024-01-10", models.Reminder{ID: "r1", Text: "   "}); err == nil {
		t.Fatalf("empty text accepted")
	}
	bad := testutil.NewReminder("r1").Weekly().Build()
	if _, err := s.AddReminder("2024-01-10", bad); err == nil {
		t.Fatalf("weekly rule with no days accepted")
	}

	got, err := s.AddReminder("2024-01-10", testutil.NewReminder("r1").Build())
	if err != nil {
		t.Fatalf("AddReminder: %v", err)
	}
	if len(got.Day("2024-01-10").Reminders) != 1 {
		t.Fatalf("reminder not stored")
	}
	if len(s.Calendar) != 0 {
		t.Fatalf("original snapshot mutated")
	}
}

func TestDeleteReminder(t *testing.T) {
	s := NewSnapshot()
	s, _ = s.AddReminder("2024-01-10", testutil.NewReminder("r1").Build())

	got := s.DeleteReminder("2024-01-10", "r1")
	if len(got.Day("2024-01-10").Reminders) != 0 {
		t.Fatalf("reminder not deleted")
	}
	if same := s.DeleteReminder("2024-01-10", "ghost"); len(same.Day("2024-01-10").Reminders) != 1 {
		t.Fatalf("deleting an unknown id changed the record")
	}
}

func TestAddRecurringItemRequiresRule(t *testing.T) {
	s := NewSnapshot()
	if _, err := s.AddRecurringItem(models.RecurringChecklistItem{ID: "g1", Text: "x"}); err == nil {
		t.Fatalf("recurring item without a rule accepted")
	}
	got, err := s.AddRecurringItem(models.RecurringChecklistItem{
		ID: "g1", Text: "x",
		Recurrence: models.RecurrenceRule{Type: models.RecurDaily},
	})
	if err != nil {
		t.Fatalf("AddRecurringItem: %v", err)
	}
	if len(got.RecurringItems) != 1 {
		t.Fatalf("item not stored")
	}
}

func TestSetDayNoteKeepsID(t *testing.T) {
	s := NewSnapshot()
	s = s.SetDayNote("2024-01-10", "first")
	id := s.Day("2024-01-10").Note.ID
	s = s.SetDayNote("2024-01-10", "second")
	if s.Day("2024-01-10").Note.ID != id {
		t.Fatalf("note id changed on rewrite")
	}
	if s.Day("2024-01-10").Note.Content != "second" {
		t.Fatalf("note content not replaced")
	}
}

func TestPeriodChecklistLifecycle(t *testing.T) {
	s := NewSnapshot()
	s, err := s.AddPeriodItem(ScopeWeek, "2024-01-07", models.ChecklistItem{ID: "w1", Text: "plan week"})
	if err != nil {
		t.Fatalf("AddPeriodItem: %v", err)
	}

	s = s.TogglePeriodItem(ScopeWeek, "2024-01-07", "w1")
	if !s.PeriodChecklist(ScopeWeek, "2024-01-07")[0].Completed {
		t.Fatalf("period item not toggled")
	}

	// Scopes are independent stores.
	if len(s.PeriodChecklist(ScopeMonth, "2024-01")) != 0 {
		t.Fatalf("week item leaked into month scope")
	}

	s = s.DeletePeriodItem(ScopeWeek, "2024-01-07", "w1")
	if len(s.PeriodChecklist(ScopeWeek, "2024-01-07")) != 0 {
		t.Fatalf("period item not deleted")
	}
}

func TestAlarmLifecycle(t *testing.T) {
	s := NewSnapshot()

	if _, err := s.AddAlarm(models.Alarm{ID: "a1", Time: "07:00"}); err == nil {
		t.Fatalf("repeating alarm with no days accepted")
	}
	if _, err := s.AddAlarm(models.Alarm{ID: "a1", Time: "07:00", OneTime: true, TargetDate: "bogus"}); err == nil {
		t.Fatalf("one-time alarm with a bad target date accepted")
	}

	s, err := s.AddAlarm(testutil.NewAlarm("a1").WithDays(1, 3).Build())
	if err != nil {
		t.Fatalf("AddAlarm: %v", err)
	}

	s = s.ToggleAlarm("a1")
	if s.Alarms[0].Enabled {
		t.Fatalf("alarm not disabled")
	}
	s = s.ToggleAlarm("a1")

	s = s.DisableAlarms([]string{"a1"})
	if s.Alarms[0].Enabled {
		t.Fatalf("DisableAlarms left the alarm enabled")
	}

	s = s.DeleteAlarm("a1")
	if len(s.Alarms) != 0 {
		t.Fatalf("alarm not deleted")
	}
}

func TestTimerDefaults(t *testing.T) {
	s := NewSnapshot()
	if _, err := s.AddTimer(models.Timer{ID: "t1"}); err == nil {
		t.Fatalf("zero-duration timer accepted")
	}

	s, err := s.AddTimer(models.Timer{ID: "t1", Initial: 90})
	if err != nil {
		t.Fatalf("AddTimer: %v", err)
	}
	timer := s.Timers[0]
	if timer.Remaining != 90 || timer.Status != models.TimerRunning || timer.Label != "Timer" {
		t.Fatalf("defaults not applied: %+v", timer)
	}

	s = s.TimerAction("t1", "pause")
	if s.Timers[0].Status != models.TimerPaused {
		t.Fatalf("timer not paused")
	}
	s = s.TimerAction("t1", "reset")
	if s.Timers[0].Remaining != 90 || s.Timers[0].Status != models.TimerStopped {
		t.Fatalf("reset did not restore the initial duration: %+v", s.Timers[0])
	}
}

func TestStopwatch(t *testing.T) {
	s := NewSnapshot()
	t0 := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

	s = s.StartStopStopwatch(t0)
	if !s.Stopwatch.Running {
		t.Fatalf("stopwatch not running after start")
	}

	// Laps record elapsed time, newest first.
	s = s.LapStopwatch(t0.Add(10 * time.Second))
	s = s.LapStopwatch(t0.Add(25 * time.Second))
	if len(s.Stopwatch.Laps) != 2 || s.Stopwatch.Laps[0] != 25*time.Second {
		t.Fatalf("laps = %v, want newest first", s.Stopwatch.Laps)
	}

	s = s.StartStopStopwatch(t0.Add(30 * time.Second))
	if s.Stopwatch.Running || s.Stopwatch.Accumulated != 30*time.Second {
		t.Fatalf("stop did not fold elapsed time: %+v", s.Stopwatch)
	}

	// Lap while stopped is a no-op.
	if got := s.LapStopwatch(t0.Add(40 * time.Second)); len(got.Stopwatch.Laps) != 2 {
		t.Fatalf("lap recorded while stopped")
	}

	s = s.ResetStopwatch()
	if s.Stopwatch.Accumulated != 0 || len(s.Stopwatch.Laps) != 0 {
		t.Fatalf("reset left state behind: %+v", s.Stopwatch)
	}
}

func TestNotebook(t *testing.T) {
	s := NewSnapshot()
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

	s = s.AddNotebookPage(models.NotebookPage{ID: "p1", Title: "first", CreatedAt: now})
	s = s.AddNotebookPage(models.NotebookPage{ID: "p2", Title: "second", CreatedAt: now})
	if s.NotebookPages[0].ID != "p2" {
		t.Fatalf("new pages should be prepended")
	}
	if s.ActivePageID != "p2" {
		t.Fatalf("new page not activated")
	}

	s = s.UpdateNotebookPage("p2", "renamed", "body", now.Add(time.Hour))
	if page, _ := s.ActivePage(); page.Title != "renamed" || page.UpdatedAt != now.Add(time.Hour) {
		t.Fatalf("update not applied: %+v", page)
	}

	s = s.DeleteNotebookPage("p2")
	if s.ActivePageID != "p1" {
		t.Fatalf("active page did not fall back, got %q", s.ActivePageID)
	}
	s = s.DeleteNotebookPage("p1")
	if s.ActivePageID != "" {
		t.Fatalf("empty notebook kept an active page")
	}
}
