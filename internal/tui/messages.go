package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daykeeper/internal/assistant"
	"daykeeper/internal/config"
	"daykeeper/internal/holiday"
)

// --- Messages ---

// PollTickMsg drives the reminder and alarm checks.
type PollTickMsg time.Time

// TimerTickMsg drives running countdowns and the stopwatch display.
type TimerTickMsg time.Time

// HolidaysMsg delivers a built holiday calendar for one year.
type HolidaysMsg struct {
	Result holiday.Result
}

// AssistantMsg delivers the outcome of one interpreted command.
type AssistantMsg struct {
	Result assistant.Result
	Err    error
}

// ExportDoneMsg reports the outcome of a PDF or ICS export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

func pollTickCmd() tea.Cmd {
	return tea.Tick(config.PollInterval, func(t time.Time) tea.Msg { return PollTickMsg(t) })
}

func timerTickCmd() tea.Cmd {
	return tea.Tick(config.TimerInterval, func(t time.Time) tea.Msg { return TimerTickMsg(t) })
}

func buildHolidaysCmd(builder *holiday.Builder, year int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return HolidaysMsg{Result: builder.Build(ctx, year)}
	}
}

func interpretCmd(client assistant.Client, command string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		result, err := client.Interpret(ctx, command)
		return AssistantMsg{Result: result, Err: err}
	}
}
