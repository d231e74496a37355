package exporter

import (
	"fmt"
	"os"
	"strings"

	"github.com/sporadisk/prayercal"
)

// Header is the column row expected by the Google Calendar and Outlook CSV
// importers.
const Header = "Subject,Start Date,Start Time,End Date,End Time,Description"

// CSV writes calendar rows to a file in calendar-import format. Fields are
// joined with plain commas, no quoting: none of the generated values can
// contain one.
type CSV struct {
	Path string
}

func (c *CSV) Export(rows []prayercal.Row) error {
	if c.Path == "" {
		return fmt.Errorf("no output path configured")
	}

	var sb strings.Builder
	sb.WriteString(Header + "\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row.Fields(), ",") + "\n")
	}

	err := os.WriteFile(c.Path, []byte(sb.String()), 0o644)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}
