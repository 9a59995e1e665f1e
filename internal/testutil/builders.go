// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"daykeeper/internal/models"
)

// ReminderBuilder provides fluent API for creating test reminders.
type ReminderBuilder struct {
	reminder models.Reminder
}

func NewReminder(id string) *ReminderBuilder {
	return &ReminderBuilder{
		reminder: models.Reminder{
			ID:         id,
			Text:       "Test Reminder",
			Time:       "09:00",
			Recurrence: models.NoRecurrence(),
		},
	}
}

func (b *ReminderBuilder) WithText(text string) *ReminderBuilder {
	b.reminder.Text = text
	return b
}

func (b *ReminderBuilder) WithTime(hhmm string) *ReminderBuilder {
	b.reminder.Time = hhmm
	return b
}

func (b *ReminderBuilder) Completed() *ReminderBuilder {
	b.reminder.Completed = true
	return b
}

func (b *ReminderBuilder) Daily() *ReminderBuilder {
	b.reminder.Recurrence = models.RecurrenceRule{Type: models.RecurDaily}
	return b
}

func (b *ReminderBuilder) Weekly(days ...int) *ReminderBuilder {
	b.reminder.Recurrence = models.RecurrenceRule{Type: models.RecurWeekly, DaysOfWeek: days}
	return b
}

func (b *ReminderBuilder) Monthly(day int) *ReminderBuilder {
	b.reminder.Recurrence = models.RecurrenceRule{Type: models.RecurMonthly, DayOfMonth: day}
	return b
}

func (b *ReminderBuilder) Yearly(month, day int) *ReminderBuilder {
	b.reminder.Recurrence = models.RecurrenceRule{Type: models.RecurYearly, MonthOfYear: month, DayOfMonth: day}
	return b
}

func (b *ReminderBuilder) WithCompletedDates(keys ...string) *ReminderBuilder {
	b.reminder.CompletedDates = keys
	return b
}

func (b *ReminderBuilder) Build() models.Reminder {
	return b.reminder
}

// AlarmBuilder provides fluent API for creating test alarms.
type AlarmBuilder struct {
	alarm models.Alarm
}

func NewAlarm(id string) *AlarmBuilder {
	return &AlarmBuilder{
		alarm: models.Alarm{
			ID:      id,
			Time:    "07:00",
			Label:   "Test Alarm",
			Enabled: true,
		},
	}
}

func (b *AlarmBuilder) WithTime(hhmm string) *AlarmBuilder {
	b.alarm.Time = hhmm
	return b
}

func (b *AlarmBuilder) WithDays(days ...int) *AlarmBuilder {
	b.alarm.Days = days
	return b
}

func (b *AlarmBuilder) OneTime(targetDate string) *AlarmBuilder {
	b.alarm.OneTime = true
	b.alarm.TargetDate = targetDate
	b.alarm.Days = nil
	return b
}

func (b *AlarmBuilder) Disabled() *AlarmBuilder {
	b.alarm.Enabled = false
	return b
}

func (b *AlarmBuilder) Build() models.Alarm {
	return b.alarm
}

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewTimer(id string) *TimerBuilder {
	return &TimerBuilder{
		timer: models.Timer{
			ID:        id,
			Label:     "Test Timer",
			Initial:   60,
			Remaining: 60,
			Status:    models.TimerRunning,
		},
	}
}

func (b *TimerBuilder) WithInitial(seconds int) *TimerBuilder {
	b.timer.Initial = seconds
	b.timer.Remaining = seconds
	return b
}

func (b *TimerBuilder) WithRemaining(seconds int) *TimerBuilder {
	b.timer.Remaining = seconds
	return b
}

func (b *TimerBuilder) WithStatus(s models.TimerStatus) *TimerBuilder {
	b.timer.Status = s
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer
}
