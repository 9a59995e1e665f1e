// Package assistant is the natural-language command boundary. The
// interpreter is a black box behind Client; what comes back is either
// plain text or a list of structured calls naming one of exactly four
// operations — the entire mutation surface the assistant is allowed.
package assistant

import (
	"fmt"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
	"daykeeper/internal/state"
)

// Call is one structured operation requested by the assistant.
type Call interface {
	callName() string
}

// AddReminderCall adds a non-recurring reminder on a date.
type AddReminderCall struct {
	Date        string // day key
	Time        string // HH:MM
	Description string
}

// AddAlarmCall adds a one-time or weekly-repeating alarm.
type AddAlarmCall struct {
	Time   string // HH:MM
	Label  string
	Repeat bool
	Days   []int // 0 (Sun) - 6 (Sat), required when Repeat
}

// AddTimerCall adds and immediately starts a countdown timer.
type AddTimerCall struct {
	Hours   int
	Minutes int
	Seconds int
	Label   string
}

// ControlStopwatchCall drives the stopwatch.
type ControlStopwatchCall struct {
	Action string // start, stop, lap, reset
}

func (AddReminderCall) callName() string      { return "addReminder" }
func (AddAlarmCall) callName() string         { return "addAlarm" }
func (AddTimerCall) callName() string         { return "addTimer" }
func (ControlStopwatchCall) callName() string { return "controlStopwatch" }

// Effect tells the UI what to show after a call is applied.
type Effect struct {
	View    string // calendar, alarms, timers, stopwatch
	DateKey string // for calendar, the day to focus
}

// Apply executes one call against the snapshot. Validation failures leave
// the snapshot untouched.
func Apply(s state.Snapshot, call Call, now time.Time, newID func() string) (state.Snapshot, Effect, error) {
	switch c := call.(type) {
	case AddReminderCall:
		if c.Description == "" || c.Time == "" || !datekey.ValidDay(c.Date) {
			return s, Effect{}, fmt.Errorf("addReminder needs a date, time and description")
		}
		updated, err := s.AddReminder(c.Date, models.Reminder{
			ID:         newID(),
			Text:       c.Description,
			Time:       c.Time,
			Recurrence: models.NoRecurrence(),
		})
		if err != nil {
			return s, Effect{}, err
		}
		return updated, Effect{View: "calendar", DateKey: c.Date}, nil

	case AddAlarmCall:
		if c.Time == "" {
			return s, Effect{}, fmt.Errorf("addAlarm needs a time")
		}
		alarm := models.Alarm{
			ID:      newID(),
			Time:    c.Time,
			Label:   c.Label,
			Enabled: true,
		}
		if c.Repeat {
			alarm.Days = append([]int(nil), c.Days...)
		} else {
			alarm.OneTime = true
			alarm.TargetDate = OneTimeTargetDate(c.Time, now)
		}
		updated, err := s.AddAlarm(alarm)
		if err != nil {
			return s, Effect{}, err
		}
		return updated, Effect{View: "alarms"}, nil

	case AddTimerCall:
		duration := c.Hours*3600 + c.Minutes*60 + c.Seconds
		updated, err := s.AddTimer(models.Timer{
			ID:      newID(),
			Label:   c.Label,
			Initial: duration,
			Status:  models.TimerRunning,
		})
		if err != nil {
			return s, Effect{}, err
		}
		return updated, Effect{View: "timers"}, nil

	case ControlStopwatchCall:
		switch c.Action {
		case "start":
			if !s.Stopwatch.Running {
				s = s.StartStopStopwatch(now)
			}
		case "stop":
			if s.Stopwatch.Running {
				s = s.StartStopStopwatch(now)
			}
		case "lap":
			s = s.LapStopwatch(now)
		case "reset":
			s = s.ResetStopwatch()
		default:
			return s, Effect{}, fmt.Errorf("unknown stopwatch action %q", c.Action)
		}
		return s, Effect{View: "stopwatch"}, nil

	default:
		return s, Effect{}, fmt.Errorf("unknown assistant call")
	}
}

// OneTimeTargetDate picks the day a one-time alarm should fire: today,
// unless the requested wall-clock time has already passed, in which case
// tomorrow.
func OneTimeTargetDate(hhmm string, now time.Time) string {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return datekey.Day(now)
	}
	atTime := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	if !atTime.After(now) {
		return datekey.Day(now.AddDate(0, 0, 1))
	}
	return datekey.Day(now)
}
