package prayercal

import (
	"errors"
	"testing"
	"time"
)

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // "2006-01-02 15:04:05" in the parsed wall clock, empty means error
		wantErr bool
	}{
		{
			name:  "offset with timezone annotation",
			input: "2024-01-01T05:21:00-08:00 (PST)",
			want:  "2024-01-01 05:21:00",
		},
		{
			name:  "offset without annotation",
			input: "2024-06-15T13:05:30+03:00",
			want:  "2024-06-15 13:05:30",
		},
		{
			name:  "no offset at all",
			input: "2024-01-01T17:30:00",
			want:  "2024-01-01 17:30:00",
		},
		{
			name:  "leading whitespace",
			input: "  2024-01-01T05:00:00 (GMT)",
			want:  "2024-01-01 05:00:00",
		},
		{
			name:    "empty value",
			input:   "",
			wantErr: true,
		},
		{
			name:    "annotation only",
			input:   "(PST)",
			wantErr: true,
		},
		{
			name:    "not a timestamp",
			input:   "soon",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ts, err := parseEventTime(test.input)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %s", ts.String())
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %s", err.Error())
				return
			}

			got := ts.Format("2006-01-02 15:04:05")
			if got != test.want {
				t.Errorf("wall clock mismatch: expected %s, got %s", test.want, got)
			}
		})
	}
}

func TestParseDayOrder(t *testing.T) {
	// Map iteration order is irrelevant: the parsed list must follow the
	// canonical event order.
	day := DayTimings{
		Date: "01 Jan 2024",
		Timings: map[string]string{
			"Isha":    "2024-01-01T18:54:00-08:00 (PST)",
			"Fajr":    "2024-01-01T05:48:00-08:00 (PST)",
			"Maghrib": "2024-01-01T17:03:00-08:00 (PST)",
			"Sunrise": "2024-01-01T07:22:00-08:00 (PST)",
			"Asr":     "2024-01-01T14:32:00-08:00 (PST)",
			"Dhuhr":   "2024-01-01T12:13:00-08:00 (PST)",
			"Sunset":  "2024-01-01T17:03:00-08:00 (PST)", // extra keys are ignored
		},
	}

	events, err := parseDay(day)
	if err != nil {
		t.Fatalf("parseDay: %s", err.Error())
	}

	if len(events) != len(EventNames) {
		t.Fatalf("expected %d events, got %d", len(EventNames), len(events))
	}

	for i, name := range EventNames {
		if events[i].name != name {
			t.Errorf("event %d: expected %s, got %s", i, name, events[i].name)
		}
	}

	for i := 1; i < len(events); i++ {
		if events[i].instant.Before(events[i-1].instant) {
			t.Errorf("event %s precedes %s", events[i].name, events[i-1].name)
		}
	}
}

func TestParseDayMalformed(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m map[string]string)
		wantField string
	}{
		{
			name:      "missing key",
			mutate:    func(m map[string]string) { delete(m, "Asr") },
			wantField: "Asr",
		},
		{
			name:      "empty value",
			mutate:    func(m map[string]string) { m["Dhuhr"] = "" },
			wantField: "Dhuhr",
		},
		{
			name:      "garbage value",
			mutate:    func(m map[string]string) { m["Isha"] = "late (PST)" },
			wantField: "Isha",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			day := validTestDay("2024-01-01")
			test.mutate(day.Timings)

			_, err := parseDay(day)
			if err == nil {
				t.Fatal("expected an error, got none")
			}

			var malformed *MalformedTimingError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected a *MalformedTimingError, got %T", err)
			}

			if malformed.Field != test.wantField {
				t.Errorf("field mismatch: expected %s, got %s", test.wantField, malformed.Field)
			}
		})
	}
}

// validTestDay builds a plausible day record with all six events, spaced out
// over the given date (format 2006-01-02).
func validTestDay(date string) DayTimings {
	times := map[string]string{
		"Fajr":    "05:48:00",
		"Sunrise": "07:22:00",
		"Dhuhr":   "12:13:00",
		"Asr":     "14:32:00",
		"Maghrib": "17:03:00",
		"Isha":    "18:54:00",
	}

	timings := map[string]string{}
	for name, clock := range times {
		timings[name] = date + "T" + clock + "-08:00 (PST)"
	}

	return DayTimings{Date: date, Timings: timings}
}

// mustParseLocal parses a bare local timestamp for use in expectations.
func mustParseLocal(t *testing.T, stamp string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04:05", stamp)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %s", stamp, err.Error())
	}
	return ts
}
