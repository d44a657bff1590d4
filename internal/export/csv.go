package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
)

// ToCSV writes sessions as delimited text: one header row, one row per
// session. Active sessions are included with empty end and duration cells.
func ToCSV(sessions []models.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Date", "Start Time", "End Time", "Duration", "Notes"}); err != nil {
		return err
	}

	for i := range sessions {
		s := &sessions[i]

		endStr := ""
		durStr := ""
		if s.FinishedAt != nil {
			endStr = s.FinishedAt.Format("15:04")
			durStr = report.FormatDurationColons(report.SessionMinutes(s))
		}

		row := []string{
			s.StartedAt.Format("02-01-2006"),
			s.StartedAt.Format("15:04"),
			endStr,
			durStr,
			s.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
