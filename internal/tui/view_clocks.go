package tui

import (
	"fmt"
	"strings"

	"daykeeper/internal/models"
)

func (m Model) viewAlarms() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Alarms") + "\n\n")

	if len(m.snapshot.Alarms) == 0 {
		b.WriteString(t.Dim.Render("  no alarms — press a to add one") + "\n")
	}
	for i, a := range m.snapshot.Alarms {
		state := "off"
		if a.Enabled {
			state = "on"
		}
		when := FormatWeekdays(a.Days)
		if a.OneTime {
			when = "once on " + a.TargetDate
		}
		line := fmt.Sprintf("%-8s %-20s %s  (%s)", Time12Hour(a.Time), truncate(a.Label, 20), when, state)
		style := t.Item
		if !a.Enabled {
			style = t.Dim
		}
		if m.ringing.Has(a.ID) {
			style = t.Ringing
		}
		prefix := "  "
		if i == m.cursor {
			prefix = t.Focused.Render("> ")
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("a add  enter toggle  x delete  d dismiss"))
	return b.String()
}

func (m Model) viewTimers() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Timers") + "\n\n")

	if len(m.snapshot.Timers) == 0 {
		b.WriteString(t.Dim.Render("  no timers — press a to add one") + "\n")
	}
	for i, timer := range m.snapshot.Timers {
		line := fmt.Sprintf("%-10s %-20s %s", FormatCountdown(timer.Remaining), truncate(timer.Label, 20), timer.Status)
		style := t.Item
		if timer.Status == models.TimerPaused {
			style = t.Dim
		}
		if m.ringing.HasTimer(timer.ID) {
			style = t.Ringing
		}
		prefix := "  "
		if i == m.cursor {
			prefix = t.Focused.Render("> ")
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("a add  enter start/pause  r reset  x delete  d dismiss"))
	return b.String()
}

func (m Model) viewStopwatch() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Stopwatch") + "\n\n")

	sw := m.snapshot.Stopwatch
	display := FormatElapsed(sw.Elapsed(m.now()))
	if sw.Running {
		b.WriteString("  " + t.Focused.Render(display) + "\n")
	} else {
		b.WriteString("  " + t.Item.Render(display) + "\n")
	}

	if len(sw.Laps) > 0 {
		b.WriteString("\n" + t.Highlight.Render("Laps") + "\n")
		for i, lap := range sw.Laps {
			b.WriteString(t.Dim.Render(fmt.Sprintf("  %2d  %s", len(sw.Laps)-i, FormatElapsed(lap))) + "\n")
		}
	}

	b.WriteString("\n" + t.Dim.Render("s start/stop  l lap  r reset"))
	return b.String()
}

func (m Model) viewNotebook() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render("Notebook") + "\n\n")

	if len(m.snapshot.NotebookPages) == 0 {
		b.WriteString(t.Dim.Render("  no pages — press a to add one") + "\n")
	}
	for i, page := range m.snapshot.NotebookPages {
		prefix := "  "
		style := t.Item
		if page.ID == m.snapshot.ActivePageID {
			style = t.Focused
		}
		if i == m.cursor {
			prefix = t.Focused.Render("> ")
		}
		b.WriteString(prefix + style.Render(truncate(page.Title, 40)) + t.Dim.Render("  "+page.UpdatedAt.Format("Jan 2 15:04")) + "\n")
	}

	if page, ok := m.snapshot.ActivePage(); ok && page.Content != "" {
		b.WriteString("\n" + t.Item.Render(truncate(page.Content, 400)) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("a add  e edit  x delete  ↑/↓ select"))
	return b.String()
}
