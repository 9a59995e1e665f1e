package tui

import (
	"fmt"
	"strings"
	"time"

	"daykeeper/internal/datekey"
	"daykeeper/internal/schedule"
)

func (m Model) viewCalendar() string {
	switch m.scope {
	case ScopeDay:
		return m.viewDay()
	case ScopeWeek:
		return m.viewWeek()
	case ScopeMonth:
		return m.viewMonth()
	default:
		return m.viewYear()
	}
}

func (m Model) viewDay() string {
	t := CurrentTheme
	dayKey := datekey.Day(m.focused)
	var b strings.Builder

	b.WriteString(t.Header.Render(m.focused.Format("Monday, January 2, 2006")) + "\n")
	for _, h := range m.calendar.ByDate[dayKey] {
		b.WriteString(t.Holiday.Render("★ "+h.Name) + "\n")
	}
	b.WriteString("\n")

	reminders := schedule.RemindersOn(m.focused, m.snapshot.Calendar)
	checklist := schedule.ChecklistOn(m.focused, m.snapshot.Day(dayKey), m.snapshot.RecurringItems)

	b.WriteString(t.Highlight.Render("Reminders") + "\n")
	if len(reminders) == 0 {
		b.WriteString(t.Dim.Render("  none") + "\n")
	}
	for i, r := range reminders {
		line := fmt.Sprintf("[%s] %s  %s", checkbox(r.Completed), Time12Hour(r.Time), r.Text)
		if r.IsRecurring {
			line += " " + t.Recurring.Render("(recurring)")
		}
		b.WriteString(m.renderRow(i, line, r.Completed) + "\n")
	}
	b.WriteString("\n" + t.Highlight.Render("Checklist") + "\n")
	if len(checklist) == 0 {
		b.WriteString(t.Dim.Render("  none") + "\n")
	}
	for i, item := range checklist {
		line := fmt.Sprintf("[%s] %s", checkbox(item.Completed), item.Text)
		if item.IsRecurring {
			line += " " + t.Recurring.Render("(recurring)")
		}
		b.WriteString(m.renderRow(len(reminders)+i, line, item.Completed) + "\n")
	}

	if rec := m.snapshot.Day(dayKey); rec.Note != nil && rec.Note.Content != "" {
		b.WriteString("\n" + t.Highlight.Render("Note") + "\n")
		b.WriteString(t.Item.Render("  "+rec.Note.Content) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("v scope  ←/→ day  t today  r reminder  c item  g recurring  n note  e pdf  i ics"))
	return b.String()
}

func (m Model) viewWeek() string {
	t := CurrentTheme
	start := datekey.StartOfWeek(m.focused)
	var b strings.Builder

	b.WriteString(t.Header.Render("Week of "+start.Format("January 2, 2006")) + "\n\n")
	for d := 0; d < 7; d++ {
		date := start.AddDate(0, 0, d)
		dayKey := datekey.Day(date)
		reminders := schedule.RemindersOn(date, m.snapshot.Calendar)
		label := date.Format("Mon 02")
		if dayKey == datekey.Day(m.now()) {
			label = t.Today.Render(label)
		} else {
			label = t.Item.Render(label)
		}
		summary := fmt.Sprintf("  %d reminder(s)", len(reminders))
		for _, h := range m.calendar.ByDate[dayKey] {
			summary += "  " + t.Holiday.Render("★"+h.Name)
		}
		b.WriteString(label + t.Dim.Render(summary) + "\n")
	}

	b.WriteString("\n" + m.viewPeriodPane("This week"))
	return b.String()
}

func (m Model) viewMonth() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render(m.focused.Format("January 2006")) + "\n\n")

	b.WriteString(t.Dim.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")
	first := time.Date(m.focused.Year(), m.focused.Month(), 1, 0, 0, 0, 0, m.focused.Location())
	todayKey := datekey.Day(m.now())

	var row []string
	for i := 0; i < int(first.Weekday()); i++ {
		row = append(row, "   ")
	}
	for date := first; date.Month() == first.Month(); date = date.AddDate(0, 0, 1) {
		dayKey := datekey.Day(date)
		cell := fmt.Sprintf("%3d", date.Day())
		switch {
		case dayKey == todayKey:
			cell = t.Today.Render(cell)
		case len(m.calendar.ByDate[dayKey]) > 0:
			cell = t.Holiday.Render(cell)
		case len(schedule.RemindersOn(date, m.snapshot.Calendar)) > 0:
			cell = t.Focused.Render(cell)
		default:
			cell = t.Item.Render(cell)
		}
		row = append(row, cell)
		if len(row) == 7 {
			b.WriteString(strings.Join(row, " ") + "\n")
			row = nil
		}
	}
	if len(row) > 0 {
		b.WriteString(strings.Join(row, " ") + "\n")
	}

	b.WriteString("\n" + m.viewPeriodPane("This month"))
	return b.String()
}

func (m Model) viewYear() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Header.Render(datekey.Year(m.focused)) + "\n\n")

	var cells []string
	for month := 1; month <= 12; month++ {
		date := time.Date(m.focused.Year(), time.Month(month), 1, 0, 0, 0, 0, m.focused.Location())
		label := date.Format("Jan")
		if date.Month() == m.now().Month() && date.Year() == m.now().Year() {
			label = t.Today.Render(label)
		} else {
			label = t.Item.Render(label)
		}
		cells = append(cells, label)
		if month%6 == 0 {
			b.WriteString(strings.Join(cells, "   ") + "\n")
			cells = nil
		}
	}

	b.WriteString("\n" + m.viewPeriodPane("This year"))
	return b.String()
}

// viewPeriodPane renders the checklist and note owned by the focused week,
// month or year.
func (m Model) viewPeriodPane(title string) string {
	t := CurrentTheme
	var b strings.Builder

	items := m.snapshot.PeriodChecklist(m.periodScope(), m.periodKey())
	b.WriteString(t.Highlight.Render(title+" checklist") + "\n")
	if len(items) == 0 {
		b.WriteString(t.Dim.Render("  none") + "\n")
	}
	for i, item := range items {
		line := fmt.Sprintf("[%s] %s", checkbox(item.Completed), item.Text)
		b.WriteString(m.renderRow(i, line, item.Completed) + "\n")
	}

	if note, ok := m.snapshot.PeriodNote(m.periodScope(), m.periodKey()); ok && note.Content != "" {
		b.WriteString("\n" + t.Highlight.Render(title+" note") + "\n")
		b.WriteString(t.Item.Render("  "+note.Content) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("v scope  ←/→ move  c item  n note  enter toggle  x delete"))
	return b.String()
}

// renderRow styles one toggleable list row, marking the cursor.
func (m Model) renderRow(idx int, line string, completed bool) string {
	t := CurrentTheme
	style := t.Item
	if completed {
		style = t.CompletedItem
	}
	prefix := "  "
	if idx == m.cursor {
		prefix = t.Focused.Render("> ")
		style = style.Bold(true)
	}
	return prefix + style.Render(truncate(line, 72))
}

func checkbox(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}
