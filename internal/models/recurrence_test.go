package models

import "testing"

func TestNormalizeScrubsStaleFields(t *testing.T) {
	// A rule edited from yearly to weekly must not keep yearly parameters.
	rule := RecurrenceRule{
		Type:        RecurWeekly,
		DaysOfWeek:  []int{1, 3},
		DayOfMonth:  25,
		MonthOfYear: 11,
	}
	got := rule.Normalize()
	if got.DayOfMonth != 0 || got.MonthOfYear != 0 {
		t.Fatalf("Normalize kept stale fields: %+v", got)
	}
	if len(got.DaysOfWeek) != 2 {
		t.Fatalf("Normalize dropped the active variant's days: %+v", got)
	}
}

func TestNormalizeEmptyType(t *testing.T) {
	got := RecurrenceRule{}.Normalize()
	if got.Type != RecurNone {
		t.Fatalf("Normalize empty type = %q, want %q", got.Type, RecurNone)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    RecurrenceRule
		wantErr bool
	}{
		{"none", NoRecurrence(), false},
		{"daily", RecurrenceRule{Type: RecurDaily}, false},
		{"weekly ok", RecurrenceRule{Type: RecurWeekly, DaysOfWeek: []int{0, 6}}, false},
		{"weekly no days", RecurrenceRule{Type: RecurWeekly}, true},
		{"weekly bad day", RecurrenceRule{Type: RecurWeekly, DaysOfWeek: []int{7}}, true},
		{"monthly ok", RecurrenceRule{Type: RecurMonthly, DayOfMonth: 31}, false},
		{"monthly zero day", RecurrenceRule{Type: RecurMonthly}, true},
		{"yearly ok", RecurrenceRule{Type: RecurYearly, MonthOfYear: 0, DayOfMonth: 1}, false},
		{"yearly bad month", RecurrenceRule{Type: RecurYearly, MonthOfYear: 12, DayOfMonth: 1}, true},
		{"unknown type", RecurrenceRule{Type: "fortnightly"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompletedOn(t *testing.T) {
	recurring := Reminder{
		Recurrence:     RecurrenceRule{Type: RecurDaily},
		Completed:      true, // must be ignored for recurring rules
		CompletedDates: []string{"2024-01-11"},
	}
	if !recurring.CompletedOn("2024-01-11") {
		t.Errorf("recurring reminder not completed on a listed date")
	}
	if recurring.CompletedOn("2024-01-12") {
		t.Errorf("recurring reminder completed on an unlisted date; bool flag leaked through")
	}

	oneOff := Reminder{Recurrence: NoRecurrence(), Completed: true}
	if !oneOff.CompletedOn("2024-01-11") {
		t.Errorf("non-recurring reminder should use the bool flag")
	}
}
