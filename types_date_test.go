package portfolio

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// test also checks that the property remains true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO format
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative duration format
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(currentYear, currentMonth+1, today.Day()), false},
		{"+1y", NewDate(currentYear+1, currentMonth, today.Day()), false},
		{"-1y", NewDate(currentYear-1, currentMonth, today.Day()), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.January, 5)
	b := NewDate(2024, time.January, 10)

	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare is not a total order over %s and %s", a, b)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		date Date
		json string
	}{
		{"zero date", Date{}, `""`},
		{"regular date", NewDate(2024, 5, 21), `"2024-05-21"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.json {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.json)
			}

			var d Date
			if err := json.Unmarshal(got, &d); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if d != tt.date {
				t.Errorf("round trip = %v, want %v", d, tt.date)
			}
		})
	}

	var d Date
	err := json.Unmarshal([]byte(`"not-a-date"`), &d)
	if err == nil {
		t.Fatalf("json.Unmarshal accepted an invalid date")
	}
	// the error must name the format actually used for parsing
	if !strings.Contains(err.Error(), readDateFormat) {
		t.Errorf("unmarshal error = %q, want it to name format %q", err, readDateFormat)
	}
}
