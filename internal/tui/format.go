package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// Time12Hour converts a 24-hour HH:MM string to a 12-hour display form
// (e.g. "14:05" -> "2:05 PM"). Unparseable input is returned as-is.
func Time12Hour(hhmm string) string {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil || h > 23 || m > 59 {
		return hhmm
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

// FormatCountdown renders remaining timer seconds as HH:MM:SS, or MM:SS
// when under an hour.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatElapsed renders stopwatch time with centiseconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	mins := total / 60000
	secs := (total % 60000) / 1000
	cents := (total % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", mins, secs, cents)
}

// FormatWeekdays renders a weekday set like "Mon, Wed, Fri".
func FormatWeekdays(days []int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var parts []string
	for _, d := range days {
		if d >= 0 && d < len(names) {
			parts = append(parts, names[d])
		}
	}
	return strings.Join(parts, ", ")
}

// truncate shortens a styled string to width cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width-1, "…")
}
