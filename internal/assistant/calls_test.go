package assistant

import (
	"fmt"
	"testing"
	"time"

	"daykeeper/internal/state"
)

func newIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func noon(day int) time.Time {
	return time.Date(2024, time.January, day, 12, 0, 0, 0, time.Local)
}

func TestApplyAddReminder(t *testing.T) {
	s := state.NewSnapshot()
	call := AddReminderCall{Date: "2024-01-15", Time: "09:00", Description: "dentist"}

	got, effect, err := Apply(s, call, noon(10), newIDs())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if effect.View != "calendar" || effect.DateKey != "2024-01-15" {
		t.Errorf("effect = %+v", effect)
	}
	reminders := got.Day("2024-01-15").Reminders
	if len(reminders) != 1 || reminders[0].Text != "dentist" {
		t.Fatalf("reminder not stored: %+v", reminders)
	}
	if reminders[0].Recurrence.Recurs() {
		t.Errorf("assistant reminders must not recur")
	}
}

func TestApplyAddReminderInvalid(t *testing.T) {
	s := state.NewSnapshot()
	_, _, err := Apply(s, AddReminderCall{Date: "bogus", Time: "09:00", Description: "x"}, noon(10), newIDs())
	if err == nil {
		t.Fatalf("bad date accepted")
	}
	if len(s.Calendar) != 0 {
		t.Fatalf("failed call mutated the snapshot")
	}
}

func TestApplyAddAlarmRepeat(t *testing.T) {
	s := state.NewSnapshot()
	got, effect, err := Apply(s, AddAlarmCall{Time: "07:30", Label: "gym", Repeat: true, Days: []int{1, 3, 5}}, noon(10), newIDs())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if effect.View != "alarms" {
		t.Errorf("effect view = %q", effect.View)
	}
	a := got.Alarms[0]
	if a.OneTime || len(a.Days) != 3 || !a.Enabled {
		t.Fatalf("alarm = %+v", a)
	}
}

func TestApplyAddAlarmOneTime(t *testing.T) {
	s := state.NewSnapshot()
	// Requested time is before now: the alarm lands on tomorrow.
	got, _, err := Apply(s, AddAlarmCall{Time: "08:00"}, noon(10), newIDs())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	a := got.Alarms[0]
	if !a.OneTime || a.TargetDate != "2024-01-11" {
		t.Fatalf("alarm = %+v, want one-time tomorrow", a)
	}
}

func TestApplyAddTimer(t *testing.T) {
	s := state.NewSnapshot()
	got, effect, err := Apply(s, AddTimerCall{Minutes: 5, Seconds: 30, Label: "tea"}, noon(10), newIDs())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if effect.View != "timers" {
		t.Errorf("effect view = %q", effect.View)
	}
	timer := got.Timers[0]
	if timer.Initial != 330 || timer.Remaining != 330 {
		t.Fatalf("timer = %+v, want 330 seconds", timer)
	}
}

func TestApplyControlStopwatch(t *testing.T) {
	s := state.NewSnapshot()

	s2, _, err := Apply(s, ControlStopwatchCall{Action: "start"}, noon(10), newIDs())
	if err != nil || !s2.Stopwatch.Running {
		t.Fatalf("start failed: %v", err)
	}
	// A second start while running stays a no-op rather than restarting.
	s3, _, _ := Apply(s2, ControlStopwatchCall{Action: "start"}, noon(10).Add(time.Minute), newIDs())
	if s3.Stopwatch.StartedAt != s2.Stopwatch.StartedAt {
		t.Fatalf("start while running reset the stopwatch")
	}

	s4, _, _ := Apply(s3, ControlStopwatchCall{Action: "lap"}, noon(10).Add(2*time.Minute), newIDs())
	if len(s4.Stopwatch.Laps) != 1 {
		t.Fatalf("lap not recorded")
	}

	s5, _, _ := Apply(s4, ControlStopwatchCall{Action: "stop"}, noon(10).Add(3*time.Minute), newIDs())
	if s5.Stopwatch.Running {
		t.Fatalf("stop left the stopwatch running")
	}

	if _, _, err := Apply(s5, ControlStopwatchCall{Action: "rewind"}, noon(10), newIDs()); err == nil {
		t.Fatalf("unknown action accepted")
	}
}

func TestOneTimeTargetDate(t *testing.T) {
	tests := []struct {
		name string
		hhmm string
		now  time.Time
		want string
	}{
		{"later today", "18:00", noon(10), "2024-01-10"},
		{"already passed", "08:00", noon(10), "2024-01-11"},
		{"exactly now", "12:00", noon(10), "2024-01-11"},
		{"unparseable defaults to today", "soon", noon(10), "2024-01-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OneTimeTargetDate(tt.hhmm, tt.now); got != tt.want {
				t.Errorf("OneTimeTargetDate(%q) = %q, want %q", tt.hhmm, got, tt.want)
			}
		})
	}
}
