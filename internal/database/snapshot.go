package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"daykeeper/internal/models"
	"daykeeper/internal/state"
	"daykeeper/internal/util"
)

const (
	settingStopwatch  = "stopwatch"
	settingActivePage = "active_page_id"
)

// stopwatchRow is the JSON shape the stopwatch is persisted as.
type stopwatchRow struct {
	Running     bool    `json:"running"`
	StartedAt   string  `json:"startedAt,omitempty"`
	Accumulated int64   `json:"accumulatedMs"`
	Laps        []int64 `json:"lapsMs,omitempty"`
}

// Save replaces the persisted state with the snapshot in one transaction.
func (d *Database) Save(s state.Snapshot) error {
	tx, err := d.DB.Begin()
	if err != nil {
		return wrapErr("save", "snapshot", "", err)
	}
	defer tx.Rollback()

	tables := []string{
		"reminders", "day_checklist", "day_notes", "day_recurring_done",
		"recurring_items", "period_checklist", "period_notes",
		"alarms", "timers", "notebook_pages",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return wrapErr("save", table, "", err)
		}
	}

	if err := saveCalendar(tx, s.Calendar); err != nil {
		return err
	}
	if err := saveRecurringItems(tx, s.RecurringItems); err != nil {
		return err
	}
	for scope, lists := range map[state.Scope]map[string][]models.ChecklistItem{
		state.ScopeWeek:  s.WeeklyChecklists,
		state.ScopeMonth: s.MonthlyChecklists,
		state.ScopeYear:  s.YearlyChecklists,
	} {
		if err := savePeriodChecklists(tx, scope, lists); err != nil {
			return err
		}
	}
	for scope, notes := range map[state.Scope]map[string]models.Note{
		state.ScopeWeek:  s.WeeklyNotes,
		state.ScopeMonth: s.MonthlyNotes,
		state.ScopeYear:  s.YearlyNotes,
	} {
		if err := savePeriodNotes(tx, scope, notes); err != nil {
			return err
		}
	}
	if err := saveAlarms(tx, s.Alarms); err != nil {
		return err
	}
	if err := saveTimers(tx, s.Timers); err != nil {
		return err
	}
	if err := saveNotebook(tx, s.NotebookPages); err != nil {
		return err
	}
	if err := saveSetting(tx, settingActivePage, s.ActivePageID); err != nil {
		return err
	}
	if err := saveStopwatch(tx, s.Stopwatch); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("save", "snapshot", "", err)
	}
	return nil
}

// Load rebuilds the snapshot from the database.
func (d *Database) Load() (state.Snapshot, error) {
	s := state.NewSnapshot()

	if err := d.loadCalendar(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadRecurringItems(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadPeriodChecklists(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadPeriodNotes(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadAlarms(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadTimers(&s); err != nil {
		return state.Snapshot{}, err
	}
	if err := d.loadNotebook(&s); err != nil {
		return state.Snapshot{}, err
	}

	if page, ok := d.GetSetting(settingActivePage); ok {
		s.ActivePageID = page
	}
	if raw, ok := d.GetSetting(settingStopwatch); ok {
		sw, err := decodeStopwatch(raw)
		if err != nil {
			return state.Snapshot{}, wrapErr("load", "stopwatch", "", err)
		}
		s.Stopwatch = sw
	}
	return s, nil
}

func saveCalendar(tx *sql.Tx, calendar map[string]models.DayRecord) error {
	for dayKey, rec := range calendar {
		for i, r := range rec.Reminders {
			rule, err := json.Marshal(r.Recurrence)
			if err != nil {
				return wrapErr("save", "reminder", r.ID, err)
			}
			dates, err := json.Marshal(r.CompletedDates)
			if err != nil {
				return wrapErr("save", "reminder", r.ID, err)
			}
			_, err = tx.Exec(
				"INSERT INTO reminders (id, day_key, text, time, completed, recurrence, completed_dates, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
				r.ID, dayKey, r.Text, r.Time, util.BoolToInt(r.Completed), string(rule), string(dates), i,
			)
			if err != nil {
				return wrapErr("save", "reminder", r.ID, err)
			}
		}
		for i, item := range rec.Checklist {
			_, err := tx.Exec(
				"INSERT INTO day_checklist (id, day_key, text, completed, position) VALUES (?, ?, ?, ?, ?)",
				item.ID, dayKey, item.Text, util.BoolToInt(item.Completed), i,
			)
			if err != nil {
				return wrapErr("save", "day checklist item", item.ID, err)
			}
		}
		if rec.Note != nil {
			_, err := tx.Exec(
				"INSERT INTO day_notes (day_key, note_id, content) VALUES (?, ?, ?)",
				dayKey, rec.Note.ID, rec.Note.Content,
			)
			if err != nil {
				return wrapErr("save", "day note", dayKey, err)
			}
		}
		for _, itemID := range rec.CompletedRecurringItemIDs {
			_, err := tx.Exec(
				"INSERT INTO day_recurring_done (day_key, item_id) VALUES (?, ?)",
				dayKey, itemID,
			)
			if err != nil {
				return wrapErr("save", "recurring completion", dayKey, err)
			}
		}
	}
	return nil
}

func saveRecurringItems(tx *sql.Tx, items []models.RecurringChecklistItem) error {
	for i, item := range items {
		rule, err := json.Marshal(item.Recurrence)
		if err != nil {
			return wrapErr("save", "recurring item", item.ID, err)
		}
		_, err = tx.Exec(
			"INSERT INTO recurring_items (id, text, recurrence, position) VALUES (?, ?, ?, ?)",
			item.ID, item.Text, string(rule), i,
		)
		if err != nil {
			return wrapErr("save", "recurring item", item.ID, err)
		}
	}
	return nil
}

func savePeriodChecklists(tx *sql.Tx, scope state.Scope, lists map[string][]models.ChecklistItem) error {
	for key, items := range lists {
		for i, item := range items {
			_, err := tx.Exec(
				"INSERT INTO period_checklist (id, scope, period_key, text, completed, position) VALUES (?, ?, ?, ?, ?, ?)",
				item.ID, string(scope), key, item.Text, util.BoolToInt(item.Completed), i,
			)
			if err != nil {
				return wrapErr("save", "period checklist item", item.ID, err)
			}
		}
	}
	return nil
}

func savePeriodNotes(tx *sql.Tx, scope state.Scope, notes map[string]models.Note) error {
	for key, note := range notes {
		_, err := tx.Exec(
			"INSERT INTO period_notes (scope, period_key, note_id, content) VALUES (?, ?, ?, ?)",
			string(scope), key, note.ID, note.Content,
		)
		if err != nil {
			return wrapErr("save", "period note", key, err)
		}
	}
	return nil
}

func saveAlarms(tx *sql.Tx, alarms []models.Alarm) error {
	for i, a := range alarms {
		days, err := json.Marshal(a.Days)
		if err != nil {
			return wrapErr("save", "alarm", a.ID, err)
		}
		_, err = tx.Exec(
			"INSERT INTO alarms (id, time, label, days, enabled, one_time, target_date, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			a.ID, a.Time, a.Label, string(days), util.BoolToInt(a.Enabled), util.BoolToInt(a.OneTime), a.TargetDate, i,
		)
		if err != nil {
			return wrapErr("save", "alarm", a.ID, err)
		}
	}
	return nil
}

func saveTimers(tx *sql.Tx, timers []models.Timer) error {
	for i, t := range timers {
		_, err := tx.Exec(
			"INSERT INTO timers (id, label, initial, remaining, status, position) VALUES (?, ?, ?, ?, ?, ?)",
			t.ID, t.Label, t.Initial, t.Remaining, string(t.Status), i,
		)
		if err != nil {
			return wrapErr("save", "timer", t.ID, err)
		}
	}
	return nil
}

func saveNotebook(tx *sql.Tx, pages []models.NotebookPage) error {
	for i, p := range pages {
		_, err := tx.Exec(
			"INSERT INTO notebook_pages (id, title, content, created_at, updated_at, position) VALUES (?, ?, ?, ?, ?, ?)",
			p.ID, p.Title, p.Content, p.CreatedAt.Format(time.RFC3339Nano), p.UpdatedAt.Format(time.RFC3339Nano), i,
		)
		if err != nil {
			return wrapErr("save", "notebook page", p.ID, err)
		}
	}
	return nil
}

func saveStopwatch(tx *sql.Tx, sw models.Stopwatch) error {
	row := stopwatchRow{
		Running:     sw.Running,
		Accumulated: sw.Accumulated.Milliseconds(),
	}
	if sw.Running {
		row.StartedAt = sw.StartedAt.Format(time.RFC3339Nano)
	}
	for _, lap := range sw.Laps {
		row.Laps = append(row.Laps, lap.Milliseconds())
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return wrapErr("save", "stopwatch", "", err)
	}
	return saveSetting(tx, settingStopwatch, string(raw))
}

func saveSetting(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return wrapErr("save", "setting", key, err)
}

func decodeStopwatch(raw string) (models.Stopwatch, error) {
	var row stopwatchRow
	if err := json.Unmarshal([]byte(raw), &row); err != nil {
		return models.Stopwatch{}, err
	}
	sw := models.Stopwatch{
		Running:     row.Running,
		Accumulated: time.Duration(row.Accumulated) * time.Millisecond,
	}
	if row.StartedAt != "" {
		at, err := time.Parse(time.RFC3339Nano, row.StartedAt)
		if err != nil {
			return models.Stopwatch{}, err
		}
		sw.StartedAt = at
	}
	for _, lap := range row.Laps {
		sw.Laps = append(sw.Laps, time.Duration(lap)*time.Millisecond)
	}
	return sw, nil
}

func (d *Database) loadCalendar(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, day_key, text, time, completed, recurrence, completed_dates FROM reminders ORDER BY day_key, position")
	if err != nil {
		return wrapErr("load", "reminders", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r models.Reminder
		var dayKey, rule, dates string
		var completed int
		if err := rows.Scan(&r.ID, &dayKey, &r.Text, &r.Time, &completed, &rule, &dates); err != nil {
			return wrapErr("load", "reminders", "", err)
		}
		r.Completed = util.IntToBool(completed)
		if rule != "" {
			if err := json.Unmarshal([]byte(rule), &r.Recurrence); err != nil {
				return wrapErr("load", "reminder", r.ID, err)
			}
		}
		if dates != "" {
			if err := json.Unmarshal([]byte(dates), &r.CompletedDates); err != nil {
				return wrapErr("load", "reminder", r.ID, err)
			}
		}
		rec := s.Calendar[dayKey]
		rec.Reminders = append(rec.Reminders, r)
		s.Calendar[dayKey] = rec
	}
	if err := rows.Err(); err != nil {
		return wrapErr("load", "reminders", "", err)
	}

	items, err := d.DB.Query("SELECT id, day_key, text, completed FROM day_checklist ORDER BY day_key, position")
	if err != nil {
		return wrapErr("load", "day checklist", "", err)
	}
	defer items.Close()
	for items.Next() {
		var item models.ChecklistItem
		var dayKey string
		var completed int
		if err := items.Scan(&item.ID, &dayKey, &item.Text, &completed); err != nil {
			return wrapErr("load", "day checklist", "", err)
		}
		item.Completed = util.IntToBool(completed)
		rec := s.Calendar[dayKey]
		rec.Checklist = append(rec.Checklist, item)
		s.Calendar[dayKey] = rec
	}
	if err := items.Err(); err != nil {
		return wrapErr("load", "day checklist", "", err)
	}

	notes, err := d.DB.Query("SELECT day_key, note_id, content FROM day_notes")
	if err != nil {
		return wrapErr("load", "day notes", "", err)
	}
	defer notes.Close()
	for notes.Next() {
		var dayKey string
		var note models.Note
		if err := notes.Scan(&dayKey, &note.ID, &note.Content); err != nil {
			return wrapErr("load", "day notes", "", err)
		}
		rec := s.Calendar[dayKey]
		rec.Note = util.Ptr(note)
		s.Calendar[dayKey] = rec
	}
	if err := notes.Err(); err != nil {
		return wrapErr("load", "day notes", "", err)
	}

	done, err := d.DB.Query("SELECT day_key, item_id FROM day_recurring_done ORDER BY day_key, item_id")
	if err != nil {
		return wrapErr("load", "recurring completions", "", err)
	}
	defer done.Close()
	for done.Next() {
		var dayKey, itemID string
		if err := done.Scan(&dayKey, &itemID); err != nil {
			return wrapErr("load", "recurring completions", "", err)
		}
		rec := s.Calendar[dayKey]
		rec.CompletedRecurringItemIDs = append(rec.CompletedRecurringItemIDs, itemID)
		s.Calendar[dayKey] = rec
	}
	return wrapErr("load", "recurring completions", "", done.Err())
}

func (d *Database) loadRecurringItems(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, text, recurrence FROM recurring_items ORDER BY position")
	if err != nil {
		return wrapErr("load", "recurring items", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.RecurringChecklistItem
		var rule string
		if err := rows.Scan(&item.ID, &item.Text, &rule); err != nil {
			return wrapErr("load", "recurring items", "", err)
		}
		if err := json.Unmarshal([]byte(rule), &item.Recurrence); err != nil {
			return wrapErr("load", "recurring item", item.ID, err)
		}
		s.RecurringItems = append(s.RecurringItems, item)
	}
	return wrapErr("load", "recurring items", "", rows.Err())
}

func (d *Database) loadPeriodChecklists(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, scope, period_key, text, completed FROM period_checklist ORDER BY period_key, position")
	if err != nil {
		return wrapErr("load", "period checklist", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.ChecklistItem
		var scope, key string
		var completed int
		if err := rows.Scan(&item.ID, &scope, &key, &item.Text, &completed); err != nil {
			return wrapErr("load", "period checklist", "", err)
		}
		item.Completed = util.IntToBool(completed)
		switch state.Scope(scope) {
		case state.ScopeWeek:
			s.WeeklyChecklists[key] = append(s.WeeklyChecklists[key], item)
		case state.ScopeMonth:
			s.MonthlyChecklists[key] = append(s.MonthlyChecklists[key], item)
		case state.ScopeYear:
			s.YearlyChecklists[key] = append(s.YearlyChecklists[key], item)
		}
	}
	return wrapErr("load", "period checklist", "", rows.Err())
}

func (d *Database) loadPeriodNotes(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT scope, period_key, note_id, content FROM period_notes")
	if err != nil {
		return wrapErr("load", "period notes", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var scope, key string
		var note models.Note
		if err := rows.Scan(&scope, &key, &note.ID, &note.Content); err != nil {
			return wrapErr("load", "period notes", "", err)
		}
		switch state.Scope(scope) {
		case state.ScopeWeek:
			s.WeeklyNotes[key] = note
		case state.ScopeMonth:
			s.MonthlyNotes[key] = note
		case state.ScopeYear:
			s.YearlyNotes[key] = note
		}
	}
	return wrapErr("load", "period notes", "", rows.Err())
}

func (d *Database) loadAlarms(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, time, label, days, enabled, one_time, target_date FROM alarms ORDER BY position")
	if err != nil {
		return wrapErr("load", "alarms", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a models.Alarm
		var days string
		var enabled, oneTime int
		if err := rows.Scan(&a.ID, &a.Time, &a.Label, &days, &enabled, &oneTime, &a.TargetDate); err != nil {
			return wrapErr("load", "alarms", "", err)
		}
		a.Enabled = util.IntToBool(enabled)
		a.OneTime = util.IntToBool(oneTime)
		if days != "" {
			if err := json.Unmarshal([]byte(days), &a.Days); err != nil {
				return wrapErr("load", "alarm", a.ID, err)
			}
		}
		s.Alarms = append(s.Alarms, a)
	}
	return wrapErr("load", "alarms", "", rows.Err())
}

func (d *Database) loadTimers(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, label, initial, remaining, status FROM timers ORDER BY position")
	if err != nil {
		return wrapErr("load", "timers", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t models.Timer
		var status string
		if err := rows.Scan(&t.ID, &t.Label, &t.Initial, &t.Remaining, &status); err != nil {
			return wrapErr("load", "timers", "", err)
		}
		t.Status = models.TimerStatus(status)
		s.Timers = append(s.Timers, t)
	}
	return wrapErr("load", "timers", "", rows.Err())
}

func (d *Database) loadNotebook(s *state.Snapshot) error {
	rows, err := d.DB.Query("SELECT id, title, content, created_at, updated_at FROM notebook_pages ORDER BY position")
	if err != nil {
		return wrapErr("load", "notebook pages", "", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p models.NotebookPage
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &createdAt, &updatedAt); err != nil {
			return wrapErr("load", "notebook pages", "", err)
		}
		if createdAt != "" {
			if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
				return wrapErr("load", "notebook page", p.ID, err)
			}
		}
		if updatedAt != "" {
			if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
				return wrapErr("load", "notebook page", p.ID, err)
			}
		}
		s.NotebookPages = append(s.NotebookPages, p)
	}
	return wrapErr("load", "notebook pages", "", rows.Err())
}
