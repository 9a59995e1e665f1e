package tui

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daykeeper/internal/config"
	"daykeeper/internal/datekey"
	"daykeeper/internal/export"
	"daykeeper/internal/models"
	"daykeeper/internal/schedule"
	"daykeeper/internal/state"
	"daykeeper/internal/util"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persist()
		return m, tea.Quit

	case "1":
		return m.switchView(ViewCalendar)
	case "2":
		return m.switchView(ViewAlarms)
	case "3":
		return m.switchView(ViewTimers)
	case "4":
		return m.switchView(ViewStopwatch)
	case "5":
		return m.switchView(ViewNotebook)
	case "tab":
		return m.switchView((m.view + 1) % 5)

	case "d":
		if m.ringing.Any() {
			return m.dismissRinging()
		}

	case ":":
		if m.client == nil {
			m.status = "assistant is not configured; set an API key"
			return m, nil
		}
		return m.openInput(inputAssistant, "Ask for a reminder, alarm, timer or stopwatch action..."), textinput.Blink
	}

	switch m.view {
	case ViewCalendar:
		return m.handleCalendarKey(msg)
	case ViewAlarms:
		return m.handleAlarmsKey(msg)
	case ViewTimers:
		return m.handleTimersKey(msg)
	case ViewStopwatch:
		return m.handleStopwatchKey(msg)
	case ViewNotebook:
		return m.handleNotebookKey(msg)
	}
	return m, nil
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	m.view = v
	m.cursor = 0
	return m, nil
}

func (m Model) dismissRinging() (tea.Model, tea.Cmd) {
	for _, a := range m.snapshot.Alarms {
		if m.ringing.Has(a.ID) {
			m.ringing.DismissAlarm(a.ID)
		}
	}
	for _, t := range m.snapshot.Timers {
		if m.ringing.HasTimer(t.ID) {
			m.ringing.DismissTimer(t.ID)
		}
	}
	m.status = ""
	return m, nil
}

// --- Calendar ---

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		m.scope = (m.scope + 1) % 4
		m.cursor = 0
		return m, nil
	case "t":
		mm, cmd := m.focusDate(m.now())
		return mm, cmd
	case "left", "h":
		mm, cmd := m.focusDate(m.stepFocus(-1))
		return mm, cmd
	case "right", "l":
		mm, cmd := m.focusDate(m.stepFocus(1))
		return mm, cmd
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.toggleAtCursor()
	case "x":
		return m.deleteAtCursor()
	case "r":
		if m.scope == ScopeDay {
			return m.openInput(inputReminder, "HH:MM [daily|weekly:0,3|monthly:15|yearly:12-25] text"), textinput.Blink
		}
	case "c":
		return m.openInput(inputChecklist, "Checklist item..."), textinput.Blink
	case "g":
		if m.scope == ScopeDay {
			return m.openInput(inputRecurring, "daily|weekly:0,3|monthly:15|yearly:12-25 text"), textinput.Blink
		}
	case "n":
		return m.openNoteInput(), textinput.Blink
	case "e":
		return m, m.exportPDFCmd()
	case "i":
		return m, m.exportICSCmd()
	}
	return m, nil
}

// stepFocus moves the focused date by one unit of the current scope.
func (m Model) stepFocus(dir int) time.Time {
	switch m.scope {
	case ScopeDay:
		return m.focused.AddDate(0, 0, dir)
	case ScopeWeek:
		return m.focused.AddDate(0, 0, 7*dir)
	case ScopeMonth:
		return m.focused.AddDate(0, dir, 0)
	default:
		return m.focused.AddDate(dir, 0, 0)
	}
}

// focusDate moves focus, rebuilding the holiday calendar when the year
// changes. The builder caches, so revisiting a year is free.
func (m Model) focusDate(date time.Time) (Model, tea.Cmd) {
	yearChanged := date.Year() != m.focused.Year()
	m.focused = date
	m.cursor = 0
	if yearChanged || m.calendar.Year != date.Year() {
		return m, buildHolidaysCmd(m.holidays, date.Year())
	}
	return m, nil
}

func (m Model) focusDayKey(dayKey string) (Model, tea.Cmd) {
	date, err := datekey.ParseDay(dayKey)
	if err != nil {
		return m, nil
	}
	return m.focusDate(date)
}

// listLen is the number of toggleable rows in the current calendar scope.
func (m Model) listLen() int {
	if m.scope == ScopeDay {
		reminders := schedule.RemindersOn(m.focused, m.snapshot.Calendar)
		checklist := schedule.ChecklistOn(m.focused, m.snapshot.Day(datekey.Day(m.focused)), m.snapshot.RecurringItems)
		return len(reminders) + len(checklist)
	}
	return len(m.snapshot.PeriodChecklist(m.periodScope(), m.periodKey()))
}

func (m Model) periodScope() state.Scope {
	switch m.scope {
	case ScopeWeek:
		return state.ScopeWeek
	case ScopeMonth:
		return state.ScopeMonth
	default:
		return state.ScopeYear
	}
}

func (m Model) periodKey() string {
	switch m.scope {
	case ScopeWeek:
		return datekey.Week(m.focused)
	case ScopeMonth:
		return datekey.Month(m.focused)
	default:
		return datekey.Year(m.focused)
	}
}

func (m Model) toggleAtCursor() (tea.Model, tea.Cmd) {
	if m.scope != ScopeDay {
		items := m.snapshot.PeriodChecklist(m.periodScope(), m.periodKey())
		if m.cursor < len(items) {
			m.snapshot = m.snapshot.TogglePeriodItem(m.periodScope(), m.periodKey(), items[m.cursor].ID)
			m.persist()
		}
		return m, nil
	}

	dayKey := datekey.Day(m.focused)
	reminders := schedule.RemindersOn(m.focused, m.snapshot.Calendar)
	if m.cursor < len(reminders) {
		inst := reminders[m.cursor]
		m.snapshot = m.snapshot.ToggleReminder(inst.Ref, inst.OriginalDateKey, dayKey)
		m.persist()
		return m, nil
	}
	checklist := schedule.ChecklistOn(m.focused, m.snapshot.Day(dayKey), m.snapshot.RecurringItems)
	idx := m.cursor - len(reminders)
	if idx < len(checklist) {
		m.snapshot = m.snapshot.ToggleChecklistItem(dayKey, checklist[idx].ID)
		m.persist()
	}
	return m, nil
}

func (m Model) deleteAtCursor() (tea.Model, tea.Cmd) {
	if m.scope != ScopeDay {
		items := m.snapshot.PeriodChecklist(m.periodScope(), m.periodKey())
		if m.cursor < len(items) {
			m.snapshot = m.snapshot.DeletePeriodItem(m.periodScope(), m.periodKey(), items[m.cursor].ID)
			m.persist()
		}
		return m, nil
	}

	dayKey := datekey.Day(m.focused)
	reminders := schedule.RemindersOn(m.focused, m.snapshot.Calendar)
	if m.cursor < len(reminders) {
		inst := reminders[m.cursor]
		// Projections have no stored row; deletion always targets the
		// anchor-day original.
		m.snapshot = m.snapshot.DeleteReminder(inst.OriginalDateKey, inst.Ref.SourceID)
		m.persist()
		return m, nil
	}
	checklist := schedule.ChecklistOn(m.focused, m.snapshot.Day(dayKey), m.snapshot.RecurringItems)
	idx := m.cursor - len(reminders)
	if idx < len(checklist) {
		item := checklist[idx]
		if item.IsRecurring {
			m.snapshot = m.snapshot.DeleteRecurringItem(item.ID)
		} else {
			m.snapshot = m.snapshot.DeleteDayChecklistItem(dayKey, item.ID)
		}
		m.persist()
	}
	if m.cursor >= m.listLen() && m.cursor > 0 {
		m.cursor--
	}
	return m, nil
}

func (m Model) exportPDFCmd() tea.Cmd {
	date := m.focused
	snapshot := m.snapshot
	holidays := m.calendar.ByDate[datekey.Day(date)]
	return func() tea.Msg {
		dir := util.ReportsDir(config.AppName)
		_ = os.MkdirAll(dir, 0o755)
		path := filepath.Join(dir, "agenda_"+datekey.Day(date)+".pdf")
		err := export.WriteAgendaPDF(path, date, snapshot, holidays)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

func (m Model) exportICSCmd() tea.Cmd {
	from := m.focused
	snapshot := m.snapshot
	return func() tea.Msg {
		dir := util.ReportsDir(config.AppName)
		_ = os.MkdirAll(dir, 0o755)
		path := filepath.Join(dir, "reminders_"+datekey.Day(from)+".ics")
		f, err := os.Create(path)
		if err != nil {
			return ExportDoneMsg{Path: path, Err: err}
		}
		defer f.Close()
		if err := export.WriteICS(f, from, 90, snapshot); err != nil {
			return ExportDoneMsg{Path: path, Err: err}
		}
		return ExportDoneMsg{Path: path}
	}
}

// --- Alarms ---

func (m Model) handleAlarmsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snapshot.Alarms)-1 {
			m.cursor++
		}
	case "a":
		return m.openInput(inputAlarm, "HH:MM [label] [days:0,1,5]"), textinput.Blink
	case "enter", " ":
		if m.cursor < len(m.snapshot.Alarms) {
			m.snapshot = m.snapshot.ToggleAlarm(m.snapshot.Alarms[m.cursor].ID)
			m.persist()
		}
	case "x":
		if m.cursor < len(m.snapshot.Alarms) {
			m.snapshot = m.snapshot.DeleteAlarm(m.snapshot.Alarms[m.cursor].ID)
			m.persist()
			if m.cursor >= len(m.snapshot.Alarms) && m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// --- Timers ---

func (m Model) handleTimersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snapshot.Timers)-1 {
			m.cursor++
		}
	case "a":
		return m.openInput(inputTimer, "[H:]MM[:SS] label"), textinput.Blink
	case "enter", " ":
		if m.cursor < len(m.snapshot.Timers) {
			t := m.snapshot.Timers[m.cursor]
			action := "pause"
			if t.Status != models.TimerRunning {
				action = "start"
			}
			m.snapshot = m.snapshot.TimerAction(t.ID, action)
			m.persist()
		}
	case "r":
		if m.cursor < len(m.snapshot.Timers) {
			m.snapshot = m.snapshot.TimerAction(m.snapshot.Timers[m.cursor].ID, "reset")
			m.persist()
		}
	case "x":
		if m.cursor < len(m.snapshot.Timers) {
			id := m.snapshot.Timers[m.cursor].ID
			m.ringing.DismissTimer(id)
			m.snapshot = m.snapshot.DeleteTimer(id)
			m.persist()
			if m.cursor >= len(m.snapshot.Timers) && m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// --- Stopwatch ---

func (m Model) handleStopwatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter", " ":
		m.snapshot = m.snapshot.StartStopStopwatch(m.now())
		m.persist()
	case "l":
		m.snapshot = m.snapshot.LapStopwatch(m.now())
		m.persist()
	case "r":
		m.snapshot = m.snapshot.ResetStopwatch()
		m.persist()
	}
	return m, nil
}

// --- Notebook ---

func (m Model) handleNotebookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.snapshot = m.snapshot.SetActivePage(m.snapshot.NotebookPages[m.cursor].ID)
		}
	case "down", "j":
		if m.cursor < len(m.snapshot.NotebookPages)-1 {
			m.cursor++
			m.snapshot = m.snapshot.SetActivePage(m.snapshot.NotebookPages[m.cursor].ID)
		}
	case "a":
		return m.openInput(inputPage, "Page title..."), textinput.Blink
	case "e":
		if page, ok := m.snapshot.ActivePage(); ok {
			mm := m.openInput(inputPageEdit, "title | content")
			mm.input.SetValue(page.Title + " | " + page.Content)
			return mm, textinput.Blink
		}
	case "x":
		if page, ok := m.snapshot.ActivePage(); ok {
			m.snapshot = m.snapshot.DeleteNotebookPage(page.ID)
			m.persist()
			if m.cursor >= len(m.snapshot.NotebookPages) && m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}
