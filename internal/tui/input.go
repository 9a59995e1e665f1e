package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daykeeper/internal/assistant"
	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
)

// openInput arms the shared text input for one collection mode.
func (m Model) openInput(mode inputMode, placeholder string) Model {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m
}

// openNoteInput pre-fills the input with the existing note for the focused
// day or period.
func (m Model) openNoteInput() Model {
	mm := m.openInput(inputNote, "Note...")
	if m.scope == ScopeDay {
		if rec := m.snapshot.Day(datekey.Day(m.focused)); rec.Note != nil {
			mm.input.SetValue(rec.Note.Content)
		}
	} else if note, ok := m.snapshot.PeriodNote(m.periodScope(), m.periodKey()); ok {
		mm.input.SetValue(note.Content)
	}
	return mm
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.commitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) commitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	mode := m.mode
	m.mode = inputNone
	m.input.Blur()
	if value == "" {
		return m, nil
	}

	var err error
	var cmd tea.Cmd
	switch mode {
	case inputReminder:
		err = m.addReminderFromInput(value)
	case inputChecklist:
		err = m.addChecklistFromInput(value)
	case inputRecurring:
		err = m.addRecurringFromInput(value)
	case inputNote:
		m.setNoteFromInput(value)
	case inputAlarm:
		err = m.addAlarmFromInput(value)
	case inputTimer:
		err = m.addTimerFromInput(value)
	case inputPage:
		m.snapshot = m.snapshot.AddNotebookPage(models.NotebookPage{
			ID:        m.newID(),
			Title:     value,
			CreatedAt: m.now(),
			UpdatedAt: m.now(),
		})
		m.persist()
		m.cursor = 0
	case inputPageEdit:
		if page, ok := m.snapshot.ActivePage(); ok {
			title, content := splitPageEdit(value)
			m.snapshot = m.snapshot.UpdateNotebookPage(page.ID, title, content, m.now())
			m.persist()
		}
	case inputAssistant:
		m.status = "thinking..."
		cmd = interpretCmd(m.client, value)
	}

	if err != nil {
		m.status = err.Error()
	}
	return m, cmd
}

func (m *Model) addReminderFromInput(value string) error {
	hhmm, rest, ok := strings.Cut(value, " ")
	if !ok || !validClockTime(hhmm) {
		return fmt.Errorf("expected: HH:MM [recurrence] text")
	}
	rule, text := parseRecurrenceSpec(rest)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("reminder text is empty")
	}
	updated, err := m.snapshot.AddReminder(datekey.Day(m.focused), models.Reminder{
		ID:         m.newID(),
		Text:       strings.TrimSpace(text),
		Time:       hhmm,
		Recurrence: rule,
	})
	if err != nil {
		return err
	}
	m.snapshot = updated
	m.persist()
	return nil
}

func (m *Model) addChecklistFromInput(value string) error {
	item := models.ChecklistItem{ID: m.newID(), Text: value}
	var err error
	var updated = m.snapshot
	if m.scope == ScopeDay {
		updated, err = m.snapshot.AddDayChecklistItem(datekey.Day(m.focused), item)
	} else {
		updated, err = m.snapshot.AddPeriodItem(m.periodScope(), m.periodKey(), item)
	}
	if err != nil {
		return err
	}
	m.snapshot = updated
	m.persist()
	return nil
}

func (m *Model) addRecurringFromInput(value string) error {
	rule, text := parseRecurrenceSpec(value)
	if !rule.Recurs() {
		return fmt.Errorf("expected a leading daily/weekly/monthly/yearly spec")
	}
	updated, err := m.snapshot.AddRecurringItem(models.RecurringChecklistItem{
		ID:         m.newID(),
		Text:       strings.TrimSpace(text),
		Recurrence: rule,
	})
	if err != nil {
		return err
	}
	m.snapshot = updated
	m.persist()
	return nil
}

func (m *Model) setNoteFromInput(value string) {
	if m.scope == ScopeDay {
		m.snapshot = m.snapshot.SetDayNote(datekey.Day(m.focused), value)
	} else {
		m.snapshot = m.snapshot.SetPeriodNote(m.periodScope(), m.periodKey(), value)
	}
	m.persist()
}

// addAlarmFromInput parses "HH:MM [label words] [days:0,1,5]". Without a
// days clause the alarm is one-time for today, or tomorrow if the time has
// already passed.
func (m *Model) addAlarmFromInput(value string) error {
	fields := strings.Fields(value)
	if len(fields) == 0 || !validClockTime(fields[0]) {
		return fmt.Errorf("expected: HH:MM [label] [days:0,1,5]")
	}
	alarm := models.Alarm{
		ID:      m.newID(),
		Time:    fields[0],
		Enabled: true,
	}
	var labelParts []string
	for _, f := range fields[1:] {
		if spec, ok := strings.CutPrefix(f, "days:"); ok {
			days, err := parseDayList(spec)
			if err != nil {
				return err
			}
			alarm.Days = days
			continue
		}
		labelParts = append(labelParts, f)
	}
	alarm.Label = strings.Join(labelParts, " ")
	if len(alarm.Days) == 0 {
		alarm.OneTime = true
		alarm.TargetDate = assistant.OneTimeTargetDate(alarm.Time, m.now())
	}
	updated, err := m.snapshot.AddAlarm(alarm)
	if err != nil {
		return err
	}
	m.snapshot = updated
	m.persist()
	return nil
}

func (m *Model) addTimerFromInput(value string) error {
	spec, label, _ := strings.Cut(value, " ")
	seconds, err := parseTimerSpec(spec)
	if err != nil {
		return err
	}
	updated, err := m.snapshot.AddTimer(models.Timer{
		ID:      m.newID(),
		Label:   strings.TrimSpace(label),
		Initial: seconds,
		Status:  models.TimerRunning,
	})
	if err != nil {
		return err
	}
	m.snapshot = updated
	m.persist()
	return nil
}

// parseRecurrenceSpec reads an optional leading recurrence token — daily,
// weekly:0,3, monthly:15, yearly:12-25 — and returns the rule plus the
// remaining text. Absent or unrecognized tokens yield a non-recurring rule
// with the input untouched.
func parseRecurrenceSpec(value string) (models.RecurrenceRule, string) {
	token, rest, _ := strings.Cut(value, " ")
	switch {
	case token == "daily":
		return models.RecurrenceRule{Type: models.RecurDaily}, rest
	case strings.HasPrefix(token, "weekly:"):
		days, err := parseDayList(strings.TrimPrefix(token, "weekly:"))
		if err != nil {
			break
		}
		return models.RecurrenceRule{Type: models.RecurWeekly, DaysOfWeek: days}, rest
	case strings.HasPrefix(token, "monthly:"):
		day, err := strconv.Atoi(strings.TrimPrefix(token, "monthly:"))
		if err != nil {
			break
		}
		return models.RecurrenceRule{Type: models.RecurMonthly, DayOfMonth: day}, rest
	case strings.HasPrefix(token, "yearly:"):
		spec := strings.TrimPrefix(token, "yearly:")
		monthStr, dayStr, ok := strings.Cut(spec, "-")
		if !ok {
			break
		}
		month, merr := strconv.Atoi(monthStr)
		day, derr := strconv.Atoi(dayStr)
		if merr != nil || derr != nil {
			break
		}
		// Months are entered 1-12 but stored zero-based.
		return models.RecurrenceRule{Type: models.RecurYearly, MonthOfYear: month - 1, DayOfMonth: day}, rest
	}
	return models.NoRecurrence(), value
}

func parseDayList(spec string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(spec, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("weekdays are 0 (Sun) through 6 (Sat)")
		}
		days = append(days, d)
	}
	return days, nil
}

// parseTimerSpec accepts "SS", "MM:SS" or "H:MM:SS" and returns seconds.
func parseTimerSpec(spec string) (int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("expected [H:]MM[:SS]")
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("expected [H:]MM[:SS]")
		}
		total = total*60 + n
	}
	// A bare number is minutes, not seconds.
	if len(parts) == 1 {
		total *= 60
	}
	if total <= 0 {
		return 0, fmt.Errorf("timer duration must be greater than zero")
	}
	return total, nil
}

func validClockTime(hhmm string) bool {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return false
	}
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

func splitPageEdit(value string) (title, content string) {
	title, content, ok := strings.Cut(value, "|")
	if !ok {
		return strings.TrimSpace(value), ""
	}
	return strings.TrimSpace(title), strings.TrimSpace(content)
}
