package prayercal

import (
	"fmt"
	"strings"
	"time"
)

// EventNames lists the six daily events in their canonical order. Incoming
// timing maps are always read in this order, regardless of how the source
// happens to arrange its keys.
var EventNames = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// MidnightEvent is the derived event inserted between consecutive days. It is
// never present in source data.
const MidnightEvent = "Midnight"

const maghribIndex = 4 // position of Maghrib in EventNames

// DayTimings is one day's raw timings as handed over by the fetcher: event
// name to timestamp string. Date is a human-readable label used only in
// error messages.
type DayTimings struct {
	Date    string
	Timings map[string]string
}

// MalformedTimingError reports a day record whose timing field is missing or
// does not parse as a date-time. It aborts the whole generation pass.
type MalformedTimingError struct {
	Date  string
	Field string
	Value string
	Err   error
}

func (e *MalformedTimingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("day %s: missing timing field %q", e.Date, e.Field)
	}
	return fmt.Sprintf("day %s: bad timing field %q (value %q): %s", e.Date, e.Field, e.Value, e.Err.Error())
}

func (e *MalformedTimingError) Unwrap() error {
	return e.Err
}

type eventInstant struct {
	name    string
	instant time.Time
}

// parseDay resolves the six canonical events of one day into an ordered list
// of instants.
func parseDay(day DayTimings) ([]eventInstant, error) {
	events := make([]eventInstant, 0, len(EventNames)+1)

	for _, name := range EventNames {
		raw, ok := day.Timings[name]
		if !ok {
			return nil, &MalformedTimingError{Date: day.Date, Field: name}
		}

		instant, err := parseEventTime(raw)
		if err != nil {
			return nil, &MalformedTimingError{Date: day.Date, Field: name, Value: raw, Err: err}
		}

		events = append(events, eventInstant{name: name, instant: instant})
	}

	return events, nil
}

// parseEventTime parses one timing value. The source may append a timezone
// annotation after the timestamp (e.g. "2024-01-01T05:21:00-08:00 (PST)");
// everything after the first whitespace is discarded, and the remainder is
// read as a local date-time.
func parseEventTime(raw string) (time.Time, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return time.Time{}, fmt.Errorf("empty timing value")
	}
	stamp := fields[0]

	ts, err := time.Parse("2006-01-02T15:04:05Z07:00", stamp)
	if err == nil {
		return ts, nil
	}

	// Some sources omit the UTC offset entirely.
	ts, err = time.Parse("2006-01-02T15:04:05", stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", stamp, err)
	}

	return ts, nil
}
