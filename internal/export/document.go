package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
)

// pageLines is the content height of one printable page. A new page starts
// once the line cursor would pass it mid-block.
const pageLines = 48

// RenderDocument produces the printable hours report: a header with the
// owner and generation timestamp, then one block per session. Pages are
// separated by form feeds. Sessions without an end time render "Active"
// in place of end and duration.
func RenderDocument(sessions []models.Session, ownerName string, generatedAt time.Time) string {
	var b strings.Builder

	title := "ShiftShift Hours Report"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	b.WriteString(fmt.Sprintf("Driver:    %s\n", ownerName))
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.Format("02-01-2006 15:04")))

	cursor := 6 // header lines written so far

	for i := range sessions {
		s := &sessions[i]
		block := sessionBlock(s)
		blockLines := strings.Count(block, "\n")

		if cursor+blockLines > pageLines {
			b.WriteString("\f")
			cursor = 0
		}

		b.WriteString(block)
		cursor += blockLines
	}

	return b.String()
}

// WriteDocument renders the report and writes it to path
func WriteDocument(sessions []models.Session, ownerName string, generatedAt time.Time, path string) error {
	doc := RenderDocument(sessions, ownerName, generatedAt)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}

// sessionBlock renders one session entry, trailing blank line included
func sessionBlock(s *models.Session) string {
	var b strings.Builder

	endStr := "Active"
	durStr := "-"
	if s.FinishedAt != nil {
		endStr = s.FinishedAt.Format("15:04")
		minutes := report.SessionMinutes(s)
		durStr = report.FormatMinutes(minutes)
	}

	b.WriteString(fmt.Sprintf("Date:     %s\n", s.StartedAt.Format("02-01-2006")))
	b.WriteString(fmt.Sprintf("Time:     %s - %s\n", s.StartedAt.Format("15:04"), endStr))
	b.WriteString(fmt.Sprintf("Duration: %s\n", durStr))
	if s.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes:    %s\n", s.Notes))
	}
	b.WriteString("\n")

	return b.String()
}
