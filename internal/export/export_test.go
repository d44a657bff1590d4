package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

func finishedSession(start time.Time, d time.Duration, breakSeconds int, notes string) models.Session {
	end := start.Add(d)
	return models.Session{
		StartedAt:    start,
		FinishedAt:   &end,
		BreakSeconds: breakSeconds,
		Notes:        notes,
	}
}

func TestToCSV(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC)
	sessions := []models.Session{
		finishedSession(start, 8*time.Hour+35*time.Minute, 300, "ring road closed"),
		{StartedAt: start.AddDate(0, 0, 1)}, // still active
	}

	path := filepath.Join(t.TempDir(), "hours.csv")
	if err := ToCSV(sessions, path); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	header := []string{"Date", "Start Time", "End Time", "Duration", "Notes"}
	for i, want := range header {
		if records[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], want)
		}
	}

	// 8h35m minus 5m break = 8:30
	row := records[1]
	want := []string{"10-03-2025", "08:15", "16:50", "8:30", "ring road closed"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, row[i], want[i])
		}
	}

	// Active session leaves end and duration empty
	active := records[2]
	if active[0] != "11-03-2025" || active[2] != "" || active[3] != "" {
		t.Errorf("active row = %v", active)
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "Date,Start Time,End Time,Duration,Notes" {
		t.Fatalf("empty export should be header only, got %q", string(data))
	}
}

func TestRenderDocument(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sessions := []models.Session{
		finishedSession(start, 8*time.Hour, 1800, "double run"),
		{StartedAt: start.AddDate(0, 0, 1)},
	}
	generated := time.Date(2025, 3, 17, 9, 30, 0, 0, time.UTC)

	doc := RenderDocument(sessions, "R. de Vries", generated)

	for _, want := range []string{
		"ShiftShift Hours Report",
		"Driver:    R. de Vries",
		"Generated: 17-03-2025 09:30",
		"Date:     10-03-2025",
		"Time:     08:00 - 16:00",
		"Duration: 7h 30m",
		"Notes:    double run",
		"Time:     08:00 - Active",
		"Duration: -",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// A session without notes gets no notes line
	if strings.Count(doc, "Notes:") != 1 {
		t.Errorf("got %d notes lines, want 1", strings.Count(doc, "Notes:"))
	}
}

func TestRenderDocumentPagination(t *testing.T) {
	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

	var sessions []models.Session
	for i := 0; i < 30; i++ {
		sessions = append(sessions, finishedSession(start.AddDate(0, 0, i), 6*time.Hour, 0, ""))
	}

	doc := RenderDocument(sessions, "R. de Vries", start)

	pages := strings.Split(doc, "\f")
	if len(pages) < 2 {
		t.Fatal("expected multiple pages for 30 sessions")
	}

	// No session block straddles a page break
	for _, page := range pages {
		starts := strings.Count(page, "Date:     ")
		durations := strings.Count(page, "Duration: ")
		if starts != durations {
			t.Errorf("page splits a session block: %d starts, %d durations", starts, durations)
		}
	}

	// Every session made it to some page
	if total := strings.Count(doc, "Date:     "); total != 30 {
		t.Errorf("got %d session blocks, want 30", total)
	}
}

func TestWriteDocument(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	sessions := []models.Session{finishedSession(start, 4*time.Hour, 0, "")}

	path := filepath.Join(t.TempDir(), "report.txt")
	if err := WriteDocument(sessions, "R. de Vries", start, path); err != nil {
		t.Fatalf("write document: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "ShiftShift Hours Report") {
		t.Fatal("written file missing report header")
	}
}
