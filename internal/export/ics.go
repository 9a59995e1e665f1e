package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"daykeeper/internal/schedule"
	"daykeeper/internal/state"
)

// WriteICS serializes every reminder occurrence over the horizon, starting
// at from, as an iCalendar feed. Recurring reminders are written as the
// already materialized occurrences, one VEVENT each, so consumers need no
// RRULE support.
func WriteICS(w io.Writer, from time.Time, horizonDays int, s state.Snapshot) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//daykeeper//EN")

	for day := 0; day < horizonDays; day++ {
		date := from.AddDate(0, 0, day)
		for _, r := range schedule.RemindersOn(date, s.Calendar) {
			var h, m int
			if _, err := fmt.Sscanf(r.Time, "%d:%d", &h, &m); err != nil {
				continue
			}
			start := time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())

			event := cal.AddEvent(r.ID)
			event.SetDtStampTime(from)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(30 * time.Minute))
			event.SetSummary(r.Text)
		}
	}

	return cal.SerializeTo(w)
}
