package prayercal

import (
	"time"
)

const (
	dateLayout = "01/02/2006"
	timeLayout = "03:04:05 PM"

	// description tag applied to every generated row, so imported events can
	// be told apart (and bulk-deleted) later.
	description = "Auto-generated"
)

// Row is one calendar event ready for CSV output.
type Row struct {
	Subject     string
	Start       time.Time
	End         time.Time
	Description string
}

// Fields returns the row as the six CSV columns, in header order. Timestamps
// are truncated to whole seconds by the layouts.
func (r Row) Fields() []string {
	return []string{
		r.Subject,
		r.Start.Format(dateLayout),
		r.Start.Format(timeLayout),
		r.End.Format(dateLayout),
		r.End.Format(timeLayout),
		r.Description,
	}
}

// GenerateRows turns a year's worth of day records, in day order, into
// calendar rows. Each event becomes one row spanning leadMinutes before the
// event to lagMinutes after it.
//
// Between consecutive days a synthetic Midnight event is derived at the
// midpoint of the previous day's Maghrib and the current day's Fajr, and
// emitted before the current day's Fajr. The first day has no previous
// Maghrib to anchor on, so it never gets one.
//
// Any missing or unparsable timing aborts the whole pass: the output is
// complete for the input range or not produced at all.
func GenerateRows(days []DayTimings, leadMinutes, lagMinutes int) ([]Row, error) {
	lead := time.Duration(leadMinutes) * time.Minute
	lag := time.Duration(lagMinutes) * time.Minute

	rows := make([]Row, 0, len(days)*(len(EventNames)+1))
	var prevMaghrib time.Time

	for _, day := range days {
		events, err := parseDay(day)
		if err != nil {
			return nil, err
		}

		maghrib := events[maghribIndex].instant

		if !prevMaghrib.IsZero() {
			fajr := events[0].instant
			midnight := prevMaghrib.Add(fajr.Sub(prevMaghrib) / 2)
			events = append([]eventInstant{{name: MidnightEvent, instant: midnight}}, events...)
		}

		prevMaghrib = maghrib

		for _, e := range events {
			rows = append(rows, Row{
				Subject:     e.name,
				Start:       e.instant.Add(-lead),
				End:         e.instant.Add(lag),
				Description: description,
			})
		}
	}

	return rows, nil
}
