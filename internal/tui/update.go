package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daykeeper/internal/assistant"
	"daykeeper/internal/clock"
	"daykeeper/internal/notify"
	"daykeeper/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PollTickMsg:
		return m.handlePollTick(time.Time(msg))

	case TimerTickMsg:
		return m.handleTimerTick()

	case HolidaysMsg:
		m.calendar = msg.Result
		if msg.Result.FallbackUsed {
			util.LogError("holiday feed", msg.Result.Err)
			m.status = "holiday feed unavailable; showing built-in holidays"
		}
		return m, nil

	case AssistantMsg:
		return m.handleAssistant(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = "exported " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.persist()
			return m, tea.Quit
		}
		if m.mode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handlePollTick runs the per-minute reminder and alarm checks. The 30s
// cadence means every wall-clock minute is observed at least once; ringing
// alarms are deduplicated by the ring set.
func (m Model) handlePollTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, n := range clock.DueReminders(now, m.snapshot) {
		m.sink.Notify(n)
		m.status = n.Body
	}

	fired, disable := clock.FireAlarms(now, m.snapshot, m.ringing)
	for _, id := range fired {
		m.ringing.AddAlarm(id)
		for _, a := range m.snapshot.Alarms {
			if a.ID == id {
				m.sink.Notify(notify.Notification{Kind: notify.KindAlarm, Title: "Alarm", Body: a.Label})
			}
		}
	}
	if len(disable) > 0 {
		m.snapshot = m.snapshot.DisableAlarms(disable)
		m.persist()
	}

	return m, pollTickCmd()
}

// handleTimerTick advances the countdowns once per second.
func (m Model) handleTimerTick() (tea.Model, tea.Cmd) {
	updated, finished := clock.TickTimers(m.snapshot)
	m.snapshot = updated
	for _, id := range finished {
		m.ringing.AddTimer(id)
		for _, t := range m.snapshot.Timers {
			if t.ID == id {
				m.sink.Notify(notify.Notification{Kind: notify.KindTimer, Title: "Timer finished", Body: t.Label})
			}
		}
	}
	if len(finished) > 0 {
		m.persist()
	}
	return m, timerTickCmd()
}

func (m Model) handleAssistant(msg AssistantMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.status = "assistant: " + msg.Err.Error()
		return m, nil
	}
	if msg.Result.Text != "" {
		m.status = truncate(msg.Result.Text, 200)
		return m, nil
	}

	var lastEffect assistant.Effect
	for _, call := range msg.Result.Calls {
		updated, effect, err := assistant.Apply(m.snapshot, call, m.now(), m.newID)
		if err != nil {
			m.status = "assistant: " + err.Error()
			return m, nil
		}
		m.snapshot = updated
		lastEffect = effect
	}
	m.persist()

	var cmd tea.Cmd
	switch lastEffect.View {
	case "calendar":
		m.view = ViewCalendar
		m.scope = ScopeDay
		if lastEffect.DateKey != "" {
			if m, cmd = m.focusDayKey(lastEffect.DateKey); cmd != nil {
				return m, cmd
			}
		}
	case "alarms":
		m.view = ViewAlarms
	case "timers":
		m.view = ViewTimers
	case "stopwatch":
		m.view = ViewStopwatch
	}
	m.status = "done"
	return m, cmd
}
