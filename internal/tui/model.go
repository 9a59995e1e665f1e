// Package tui is the terminal front end: a bubbletea model over the state
// snapshot, with the clock engine driven by tick messages and every
// mutation persisted through the store.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daykeeper/internal/assistant"
	"daykeeper/internal/clock"
	"daykeeper/internal/holiday"
	"daykeeper/internal/notify"
	"daykeeper/internal/state"
	"daykeeper/internal/store"
	"daykeeper/internal/util"
)

// View is the active top-level surface.
type View int

const (
	ViewCalendar View = iota
	ViewAlarms
	ViewTimers
	ViewStopwatch
	ViewNotebook
)

// CalendarScope selects the calendar zoom level.
type CalendarScope int

const (
	ScopeDay CalendarScope = iota
	ScopeWeek
	ScopeMonth
	ScopeYear
)

// inputMode says what the text input is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputReminder
	inputChecklist
	inputRecurring
	inputNote
	inputAlarm
	inputTimer
	inputPage
	inputPageEdit
	inputAssistant
)

// Model is the root bubbletea model.
type Model struct {
	store    store.Store
	snapshot state.Snapshot

	holidays *holiday.Builder
	calendar holiday.Result

	client assistant.Client
	sink   notify.Sink

	view    View
	scope   CalendarScope
	focused time.Time
	cursor  int

	input textinput.Model
	mode  inputMode

	ringing *clock.RingSet

	status string
	err    error

	width  int
	height int

	now   func() time.Time
	newID func() string
}

// NewModel assembles the root model. client may be nil when no API key is
// configured; the assistant prompt then reports that instead of calling out.
func NewModel(st store.Store, snapshot state.Snapshot, holidays *holiday.Builder, client assistant.Client) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 48

	now := time.Now
	return Model{
		store:    st,
		snapshot: snapshot,
		holidays: holidays,
		client:   client,
		sink:     notify.LogSink{},
		focused:  now(),
		input:    ti,
		ringing:  clock.NewRingSet(nil, nil),
		now:      now,
		newID:    sequentialID(now),
	}
}

// sequentialID yields unique ids even for back-to-back calls in one tick.
func sequentialID(now func() time.Time) func() string {
	var last int64
	return func() string {
		n := now().UnixNano()
		if n <= last {
			n = last + 1
		}
		last = n
		return fmt.Sprintf("%x", n)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		pollTickCmd(),
		timerTickCmd(),
		buildHolidaysCmd(m.holidays, m.focused.Year()),
	)
}

// persist saves the snapshot, surfacing failures on the status line without
// interrupting the session.
func (m *Model) persist() {
	if err := m.store.Save(m.snapshot); err != nil {
		util.LogError("save snapshot", err)
		m.status = "save failed: " + err.Error()
	}
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}

	var body string
	switch m.view {
	case ViewCalendar:
		body = m.viewCalendar()
	case ViewAlarms:
		body = m.viewAlarms()
	case ViewTimers:
		body = m.viewTimers()
	case ViewStopwatch:
		body = m.viewStopwatch()
	case ViewNotebook:
		body = m.viewNotebook()
	}

	t := CurrentTheme
	out := t.Base.Render(m.viewTabs() + "\n\n" + body + "\n" + m.viewFooter())
	return out
}

func (m Model) viewTabs() string {
	t := CurrentTheme
	labels := []string{"1 Calendar", "2 Alarms", "3 Timers", "4 Stopwatch", "5 Notebook"}
	out := ""
	for i, label := range labels {
		if i > 0 {
			out += t.Dim.Render("  |  ")
		}
		if View(i) == m.view {
			out += t.Focused.Render(label)
		} else {
			out += t.Dim.Render(label)
		}
	}
	return out
}

func (m Model) viewFooter() string {
	t := CurrentTheme
	if m.mode != inputNone {
		return t.Input.Render(m.input.View())
	}
	line := ""
	if m.ringing.Any() {
		line += t.Ringing.Render("RINGING — press d to dismiss") + "  "
	}
	if m.status != "" {
		line += t.Dim.Render(truncate(m.status, 76))
	}
	return line
}
