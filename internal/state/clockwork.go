package state

import (
	"fmt"
	"strings"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
)

// AddAlarm validates and stores an alarm. Repeating alarms need at least
// one weekday; one-time alarms need a well-formed target date.
func (s Snapshot) AddAlarm(a models.Alarm) (Snapshot, error) {
	if a.OneTime {
		if !datekey.ValidDay(a.TargetDate) {
			return s, fmt.Errorf("one-time alarm requires a target date")
		}
	} else if len(a.Days) == 0 {
		return s, fmt.Errorf("repeating alarm requires at least one day")
	}
	if a.Label == "" {
		a.Label = "New Alarm"
	}
	out := s
	out.Alarms = append(append([]models.Alarm(nil), s.Alarms...), a)
	return out, nil
}

// UpdateAlarm replaces the alarm with the same id.
func (s Snapshot) UpdateAlarm(a models.Alarm) Snapshot {
	alarms := append([]models.Alarm(nil), s.Alarms...)
	for i := range alarms {
		if alarms[i].ID == a.ID {
			alarms[i] = a
			out := s
			out.Alarms = alarms
			return out
		}
	}
	return s
}

// ToggleAlarm flips the enabled flag.
func (s Snapshot) ToggleAlarm(id string) Snapshot {
	alarms := append([]models.Alarm(nil), s.Alarms...)
	for i := range alarms {
		if alarms[i].ID == id {
			alarms[i].Enabled = !alarms[i].Enabled
			out := s
			out.Alarms = alarms
			return out
		}
	}
	return s
}

// DisableAlarms turns off the given alarms; one-time alarms are disabled
// this way after they fire.
func (s Snapshot) DisableAlarms(ids []string) Snapshot {
	if len(ids) == 0 {
		return s
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	alarms := append([]models.Alarm(nil), s.Alarms...)
	for i := range alarms {
		if set[alarms[i].ID] {
			alarms[i].Enabled = false
		}
	}
	out := s
	out.Alarms = alarms
	return out
}

// DeleteAlarm removes an alarm.
func (s Snapshot) DeleteAlarm(id string) Snapshot {
	alarms := make([]models.Alarm, 0, len(s.Alarms))
	for _, a := range s.Alarms {
		if a.ID != id {
			alarms = append(alarms, a)
		}
	}
	out := s
	out.Alarms = alarms
	return out
}

// AddTimer validates and stores a countdown timer. Zero-duration timers
// are rejected at the point of entry.
func (s Snapshot) AddTimer(t models.Timer) (Snapshot, error) {
	if t.Initial <= 0 {
		return s, fmt.Errorf("timer duration must be greater than zero")
	}
	if strings.TrimSpace(t.Label) == "" {
		t.Label = "Timer"
	}
	if t.Remaining == 0 {
		t.Remaining = t.Initial
	}
	if t.Status == "" {
		t.Status = models.TimerRunning
	}
	out := s
	out.Timers = append(append([]models.Timer(nil), s.Timers...), t)
	return out, nil
}

// TimerAction applies start/pause/reset to one timer.
func (s Snapshot) TimerAction(id, action string) Snapshot {
	timers := append([]models.Timer(nil), s.Timers...)
	for i := range timers {
		if timers[i].ID != id {
			continue
		}
		switch action {
		case "start":
			timers[i].Status = models.TimerRunning
		case "pause":
			timers[i].Status = models.TimerPaused
		case "reset":
			timers[i].Status = models.TimerStopped
			timers[i].Remaining = timers[i].Initial
		}
		out := s
		out.Timers = timers
		return out
	}
	return s
}

// DeleteTimer removes a timer; dismissing a finished one is the same
// operation.
func (s Snapshot) DeleteTimer(id string) Snapshot {
	timers := make([]models.Timer, 0, len(s.Timers))
	for _, t := range s.Timers {
		if t.ID != id {
			timers = append(timers, t)
		}
	}
	out := s
	out.Timers = timers
	return out
}

// StartStopStopwatch toggles the stopwatch at now, folding the elapsed run
// into the accumulated total on stop.
func (s Snapshot) StartStopStopwatch(now time.Time) Snapshot {
	out := s
	sw := s.Stopwatch
	if sw.Running {
		sw.Accumulated += now.Sub(sw.StartedAt)
		sw.Running = false
		sw.StartedAt = time.Time{}
	} else {
		sw.StartedAt = now
		sw.Running = true
	}
	out.Stopwatch = sw
	return out
}

// LapStopwatch records the current elapsed time, newest first. Laps are
// only recorded while running.
func (s Snapshot) LapStopwatch(now time.Time) Snapshot {
	if !s.Stopwatch.Running {
		return s
	}
	out := s
	sw := s.Stopwatch
	laps := make([]time.Duration, 0, len(sw.Laps)+1)
	laps = append(laps, sw.Elapsed(now))
	laps = append(laps, sw.Laps...)
	sw.Laps = laps
	out.Stopwatch = sw
	return out
}

// ResetStopwatch stops and zeroes the stopwatch.
func (s Snapshot) ResetStopwatch() Snapshot {
	out := s
	out.Stopwatch = models.Stopwatch{}
	return out
}
