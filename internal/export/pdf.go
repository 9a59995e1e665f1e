// Package export writes the day's agenda out as PDF or iCalendar.
package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"daykeeper/internal/datekey"
	"daykeeper/internal/models"
	"daykeeper/internal/schedule"
	"daykeeper/internal/state"
)

// WriteAgendaPDF renders one day's agenda — reminders, checklist, recurring
// items, note — to a PDF file at path.
func WriteAgendaPDF(path string, date time.Time, s state.Snapshot, holidays []models.Holiday) error {
	dayKey := datekey.Day(date)
	rec := s.Day(dayKey)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Agenda: %s", date.Format("Monday, January 2, 2006")))
	pdf.Ln(12)

	if len(holidays) > 0 {
		pdf.SetFont("Arial", "I", 12)
		for _, h := range holidays {
			pdf.Cell(0, 8, h.Name)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Reminders")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	reminders := schedule.RemindersOn(date, s.Calendar)
	if len(reminders) == 0 {
		pdf.Cell(0, 8, "  - None.")
		pdf.Ln(8)
	}
	for _, r := range reminders {
		status := "[ ]"
		if r.Completed {
			status = "[x]"
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s  %s", status, r.Time, r.Text))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	checklist := schedule.ChecklistOn(date, rec, s.RecurringItems)
	if len(checklist) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Checklist")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, item := range checklist {
			status := "[ ]"
			if item.Completed {
				status = "[x]"
			}
			pdf.Cell(0, 8, fmt.Sprintf("  %s %s", status, item.Text))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if rec.Note != nil && rec.Note.Content != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Note")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, rec.Note.Content, "", "", false)
	}

	return pdf.OutputFileAndClose(path)
}
