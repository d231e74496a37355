package calendar

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sporadisk/prayercal"
	"github.com/sporadisk/prayercal/client/aladhan"
	"github.com/sporadisk/prayercal/config"
	"github.com/sporadisk/prayercal/exporter"
)

// Fetcher retrieves one month of daily records for the configured year and
// location.
type Fetcher interface {
	CalendarByAddress(month int) ([]aladhan.Day, error)
}

// Exporter writes the finished row sequence somewhere.
type Exporter interface {
	Export(rows []prayercal.Row) error
}

// Builder ties config, fetcher and exporter together: fetch the configured
// months in order, run the rows through the generator, export the result.
type Builder struct {
	Conf *config.Config

	// Fetcher and Exporter may be left nil, in which case Build constructs
	// them from the config on each run (so a config reload takes effect).
	Fetcher  Fetcher
	Exporter Exporter

	// OutputOverride wins over the configured output path. Set from the
	// --output flag; survives config reloads in watch mode.
	OutputOverride string

	// MonthPause is how long to wait between month requests, to stay
	// friendly with the API. Zero means no pause.
	MonthPause time.Duration
}

// Build runs one full fetch-generate-export pass. On any failure no output
// file is written: the calendar is complete for the whole range or absent.
func (b *Builder) Build() error {
	fetcher, err := b.loadFetcher()
	if err != nil {
		return fmt.Errorf("loadFetcher: %w", err)
	}

	days := []prayercal.DayTimings{}
	for month := 1; month <= b.Conf.Months; month++ {
		logrus.WithField("month", month).Info("requesting calendar month")

		monthDays, err := fetcher.CalendarByAddress(month)
		if err != nil {
			return fmt.Errorf("fetching month %d: %w", month, err)
		}

		for _, d := range monthDays {
			days = append(days, prayercal.DayTimings{
				Date:    d.Date.Readable,
				Timings: d.Timings,
			})
		}

		if month < b.Conf.Months && b.MonthPause > 0 {
			time.Sleep(b.MonthPause)
		}
	}

	rows, err := prayercal.GenerateRows(days, b.Conf.MinutesBefore, b.Conf.LagMinutes())
	if err != nil {
		return fmt.Errorf("prayercal.GenerateRows: %w", err)
	}

	err = b.loadExporter().Export(rows)
	if err != nil {
		return fmt.Errorf("exporting rows: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"days": len(days),
		"rows": len(rows),
		"path": b.outputPath(),
	}).Info("calendar written")

	return nil
}

func (b *Builder) loadFetcher() (Fetcher, error) {
	if b.Fetcher != nil {
		return b.Fetcher, nil
	}

	api := &aladhan.Client{
		Address:   b.Conf.Address,
		Year:      b.Conf.Year,
		FajrAngle: b.Conf.FajrAngle,
		IshaAngle: b.Conf.IshaAngle,
		HanafiAsr: b.Conf.AsrMethod == config.AsrHanafi,
	}

	err := api.Init()
	if err != nil {
		return nil, fmt.Errorf("aladhan.Client.Init: %w", err)
	}

	return api, nil
}

func (b *Builder) loadExporter() Exporter {
	if b.Exporter != nil {
		return b.Exporter
	}

	return &exporter.CSV{Path: b.outputPath()}
}

func (b *Builder) outputPath() string {
	if b.OutputOverride != "" {
		return b.OutputOverride
	}
	return b.Conf.Output
}
