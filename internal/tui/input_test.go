package tui

import (
	"reflect"
	"testing"

	"daykeeper/internal/models"
)

func TestParseRecurrenceSpec(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantRule models.RecurrenceRule
		wantText string
	}{
		{
			"no spec", "call mom",
			models.NoRecurrence(), "call mom",
		},
		{
			"daily", "daily take meds",
			models.RecurrenceRule{Type: models.RecurDaily}, "take meds",
		},
		{
			"weekly", "weekly:1,3,5 standup",
			models.RecurrenceRule{Type: models.RecurWeekly, DaysOfWeek: []int{1, 3, 5}}, "standup",
		},
		{
			"monthly", "monthly:15 pay rent",
			models.RecurrenceRule{Type: models.RecurMonthly, DayOfMonth: 15}, "pay rent",
		},
		{
			// Months are entered 1-12 but stored zero-based.
			"yearly", "yearly:12-25 presents",
			models.RecurrenceRule{Type: models.RecurYearly, MonthOfYear: 11, DayOfMonth: 25}, "presents",
		},
		{
			"bad weekly falls through", "weekly:8 oops",
			models.NoRecurrence(), "weekly:8 oops",
		},
		{
			"bad yearly falls through", "yearly:december presents",
			models.NoRecurrence(), "yearly:december presents",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, text := parseRecurrenceSpec(tt.in)
			if !reflect.DeepEqual(rule, tt.wantRule) {
				t.Errorf("rule = %+v, want %+v", rule, tt.wantRule)
			}
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestParseDayList(t *testing.T) {
	got, err := parseDayList("0, 3,6")
	if err != nil {
		t.Fatalf("parseDayList: %v", err)
	}
	if !reflect.DeepEqual(got, []int{0, 3, 6}) {
		t.Errorf("got %v", got)
	}

	for _, bad := range []string{"7", "-1", "mon", ""} {
		if _, err := parseDayList(bad); err == nil {
			t.Errorf("parseDayList(%q) accepted", bad)
		}
	}
}

func TestParseTimerSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"5", 300, false}, // bare number is minutes
		{"1:30", 90, false},
		{"1:00:00", 3600, false},
		{"0:45", 45, false},
		{"0", 0, true},
		{"1:2:3:4", 0, true},
		{"abc", 0, true},
		{"-1:00", 0, true},
	}
	for _, tt := range tests {
		got, err := parseTimerSpec(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTimerSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseTimerSpec(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidClockTime(t *testing.T) {
	for _, ok := range []string{"00:00", "9:05", "23:59"} {
		if !validClockTime(ok) {
			t.Errorf("validClockTime(%q) = false", ok)
		}
	}
	for _, bad := range []string{"24:00", "12:60", "noon", ""} {
		if validClockTime(bad) {
			t.Errorf("validClockTime(%q) = true", bad)
		}
	}
}

func TestSplitPageEdit(t *testing.T) {
	title, content := splitPageEdit("Ideas | first line")
	if title != "Ideas" || content != "first line" {
		t.Errorf("got %q / %q", title, content)
	}
	title, content = splitPageEdit("just a title")
	if title != "just a title" || content != "" {
		t.Errorf("got %q / %q", title, content)
	}
}
