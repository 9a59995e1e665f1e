// Package clock is the pure comparison engine behind the polling ticks:
// which reminders are due at this minute, which alarms fire, which timers
// finished. It does no timekeeping of its own; the UI layer schedules the
// ticks and feeds in the current time.
package clock

import (
	"fmt"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
	"daykeeper/internal/notify"
	"daykeeper/internal/schedule"
	"daykeeper/internal/state"
)

// ClockTime renders now as the zero-padded HH:MM the schedule stores.
func ClockTime(now time.Time) string {
	return fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
}

// DueReminders returns notifications for reminders whose time matches the
// current minute and whose occurrence is not completed for today.
func DueReminders(now time.Time, s state.Snapshot) []notify.Notification {
	current := ClockTime(now)
	var out []notify.Notification
	for _, inst := range schedule.RemindersOn(now, s.Calendar) {
		if inst.Time != current || inst.Completed {
			continue
		}
		out = append(out, notify.Notification{
			Kind:  notify.KindReminder,
			Title: "Reminder",
			Body:  inst.Text,
		})
	}
	return out
}

// FireAlarms reports which alarms start ringing at now. Alarms already
// ringing are skipped; one-time alarms that fire are also returned for
// disabling so they never fire twice.
func FireAlarms(now time.Time, s state.Snapshot, ringing *RingSet) (fired, disable []string) {
	current := ClockTime(now)
	weekday := int(now.Weekday())
	todayKey := datekey.Day(now)

	for _, a := range s.Alarms {
		if !a.Enabled || ringing.Has(a.ID) || a.Time != current {
			continue
		}
		repeating := len(a.Days) > 0 && containsDay(a.Days, weekday)
		oneTime := a.OneTime && a.TargetDate == todayKey
		if !repeating && !oneTime {
			continue
		}
		fired = append(fired, a.ID)
		if oneTime {
			disable = append(disable, a.ID)
		}
	}
	return fired, disable
}

// TickTimers advances all running countdowns by one second and returns the
// ids of timers that just finished; finished timers stop at zero.
func TickTimers(s state.Snapshot) (state.Snapshot, []string) {
	var finished []string
	timers := append([]models.Timer(nil), s.Timers...)
	changed := false
	for i := range timers {
		if timers[i].Status != models.TimerRunning {
			continue
		}
		changed = true
		if timers[i].Remaining > 1 {
			timers[i].Remaining--
			continue
		}
		timers[i].Remaining = 0
		timers[i].Status = models.TimerStopped
		finished = append(finished, timers[i].ID)
	}
	if !changed {
		return s, nil
	}
	out := s
	out.Timers = timers
	return out, finished
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
