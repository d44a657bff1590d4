package report

import (
	"fmt"
	"time"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// DefaultNetWageFactor is the flat gross-to-net conversion used when the
// settings row carries no factor. It is an approximation, not a tax model.
const DefaultNetWageFactor = 0.69

// Totals holds the aggregate worked time and earnings for a set of sessions
type Totals struct {
	TotalMinutes  int
	Hours         int
	Minutes       int
	GrossEarnings float64
	NetEarnings   float64
}

// WeekRange returns the Monday-start week containing t, from Monday 00:00:00
// through the last nanosecond of Sunday
func WeekRange(t time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return monday, monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// MonthRange returns the calendar month containing t
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// FilterByRange returns the sessions whose start falls within [from, to]
// inclusive
func FilterByRange(sessions []models.Session, from, to time.Time) []models.Session {
	var filtered []models.Session
	for _, s := range sessions {
		if !s.StartedAt.Before(from) && !s.StartedAt.After(to) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SessionMinutes returns the effective worked minutes of one session:
// wall-clock duration minus accumulated break time. Unfinished sessions
// contribute zero. Clamped at zero so an over-adjusted break accumulator
// cannot drive a session negative.
func SessionMinutes(s *models.Session) int {
	if s.FinishedAt == nil {
		return 0
	}
	minutes := int(s.FinishedAt.Sub(s.StartedAt).Minutes()) - s.BreakSeconds/60
	if minutes < 0 {
		return 0
	}
	return minutes
}

// ComputeTotals sums effective worked time over sessions and derives gross
// and net earnings from the hourly wage. Pure: same input, same output.
func ComputeTotals(sessions []models.Session, hourlyWage, netWageFactor float64) Totals {
	totalMinutes := 0
	for i := range sessions {
		totalMinutes += SessionMinutes(&sessions[i])
	}

	gross := float64(totalMinutes) / 60 * hourlyWage

	return Totals{
		TotalMinutes:  totalMinutes,
		Hours:         totalMinutes / 60,
		Minutes:       totalMinutes % 60,
		GrossEarnings: gross,
		NetEarnings:   gross * netWageFactor,
	}
}

// LiveElapsed returns the running effective work time of an active session:
// time since start minus closed breaks minus the open break so far. Display
// timers call this once per second; it never mutates the session.
func LiveElapsed(s *models.Session, at time.Time) time.Duration {
	elapsed := at.Sub(s.StartedAt) - time.Duration(s.BreakSeconds)*time.Second
	for i := range s.Breaks {
		if s.Breaks[i].Open() {
			elapsed -= at.Sub(s.Breaks[i].StartedAt)
		}
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// FormatMinutes renders a minute total as "3h 45m"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatDurationColons renders a minute total as "H:MM", the format used by
// the delimited export
func FormatDurationColons(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
