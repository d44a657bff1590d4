package db

import (
	"errors"
	"testing"
	"time"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// newTestDB opens an in-memory database and restores the real clock afterwards
func newTestDB(t *testing.T) {
	t.Helper()
	if err := Open(":memory:"); err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		Close()
		now = time.Now
	})
}

// setClock pins the store's clock to a fixed instant
func setClock(ts time.Time) {
	now = func() time.Time { return ts }
}

var baseTime = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.Local) // a Monday

// ============================================================
// Session lifecycle
// ============================================================

func TestStartSession(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	session, err := StartSession("driver-1")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if !session.StartedAt.Equal(baseTime) {
		t.Fatalf("StartedAt = %v, want %v", session.StartedAt, baseTime)
	}
	if session.FinishedAt != nil {
		t.Fatal("new session should be active")
	}
	if session.BreakSeconds != 0 {
		t.Fatalf("BreakSeconds = %d, want 0", session.BreakSeconds)
	}
}

func TestStartSessionRejectsSecondActive(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}
	_, err := StartSession("driver-1")
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
}

func TestEndSession(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	started, err := StartSession("driver-1")
	if err != nil {
		t.Fatal(err)
	}

	setClock(baseTime.Add(8 * time.Hour))
	ended, err := EndSession()
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if ended.ID != started.ID {
		t.Fatalf("ended session #%d, want #%d", ended.ID, started.ID)
	}
	if ended.FinishedAt == nil {
		t.Fatal("FinishedAt not stamped")
	}
	if !ended.FinishedAt.Equal(baseTime.Add(8 * time.Hour)) {
		t.Fatalf("FinishedAt = %v", ended.FinishedAt)
	}

	// Current-session slot is empty again
	active, err := GetActiveSession()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Fatal("expected no active session after end")
	}
}

func TestEndSessionWithoutActive(t *testing.T) {
	newTestDB(t)

	_, err := EndSession()
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestEndSessionClosesOpenBreak(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	setClock(baseTime.Add(1 * time.Hour))
	if _, err := StartBreak(); err != nil {
		t.Fatal(err)
	}

	setClock(baseTime.Add(1*time.Hour + 10*time.Minute))
	session, err := EndSession()
	if err != nil {
		t.Fatal(err)
	}

	// Open break was folded into the accumulator before the end stamp
	if session.BreakSeconds != 600 {
		t.Fatalf("BreakSeconds = %d, want 600", session.BreakSeconds)
	}
	for _, b := range session.Breaks {
		if b.Open() {
			t.Fatal("ended session still has an open break")
		}
	}
}

// ============================================================
// Break accumulator
// ============================================================

func TestBreakAccumulation(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	// 90 second break
	setClock(baseTime.Add(1 * time.Hour))
	if _, err := StartBreak(); err != nil {
		t.Fatal(err)
	}
	setClock(baseTime.Add(1*time.Hour + 90*time.Second))
	session, err := EndBreak()
	if err != nil {
		t.Fatal(err)
	}
	if session.BreakSeconds != 90 {
		t.Fatalf("BreakSeconds = %d, want 90", session.BreakSeconds)
	}

	// Second break of 30 seconds accumulates
	setClock(baseTime.Add(2 * time.Hour))
	if _, err := StartBreak(); err != nil {
		t.Fatal(err)
	}
	setClock(baseTime.Add(2*time.Hour + 30*time.Second))
	session, err = EndBreak()
	if err != nil {
		t.Fatal(err)
	}
	if session.BreakSeconds != 120 {
		t.Fatalf("BreakSeconds = %d, want 120", session.BreakSeconds)
	}
}

func TestStartBreakRequiresActiveSession(t *testing.T) {
	newTestDB(t)

	_, err := StartBreak()
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestStartBreakRejectsSecondOpenBreak(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := StartBreak(); err != nil {
		t.Fatal(err)
	}

	_, err := StartBreak()
	if !errors.Is(err, ErrBreakActive) {
		t.Fatalf("expected ErrBreakActive, got %v", err)
	}
}

func TestEndBreakWithoutOpenBreak(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	_, err := EndBreak()
	if !errors.Is(err, ErrNoOpenBreak) {
		t.Fatalf("expected ErrNoOpenBreak, got %v", err)
	}
}

func TestAdjustBreakTime(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	session, err := AdjustBreakTime(15)
	if err != nil {
		t.Fatal(err)
	}
	if session.BreakSeconds != 900 {
		t.Fatalf("BreakSeconds = %d, want 900", session.BreakSeconds)
	}

	session, err = AdjustBreakTime(-10)
	if err != nil {
		t.Fatal(err)
	}
	if session.BreakSeconds != 300 {
		t.Fatalf("BreakSeconds = %d, want 300", session.BreakSeconds)
	}
}

func TestAdjustBreakTimeClampsAtZero(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	// Over-subtract repeatedly; the accumulator never goes negative
	adjustments := []int{5, -30, -60, 10, -999}
	for _, m := range adjustments {
		session, err := AdjustBreakTime(m)
		if err != nil {
			t.Fatal(err)
		}
		if session.BreakSeconds < 0 {
			t.Fatalf("BreakSeconds went negative after %+d: %d", m, session.BreakSeconds)
		}
	}

	session, err := GetActiveSession()
	if err != nil {
		t.Fatal(err)
	}
	if session.BreakSeconds != 0 {
		t.Fatalf("BreakSeconds = %d, want 0", session.BreakSeconds)
	}
}

func TestAdjustBreakTimeRejectedDuringBreak(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := StartBreak(); err != nil {
		t.Fatal(err)
	}

	_, err := AdjustBreakTime(5)
	if !errors.Is(err, ErrBreakActive) {
		t.Fatalf("expected ErrBreakActive, got %v", err)
	}
}

// ============================================================
// Time adjustment
// ============================================================

// endedSession is a test helper that records one completed session
func endedSession(t *testing.T, start time.Time, d time.Duration) *models.Session {
	t.Helper()
	setClock(start)
	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}
	setClock(start.Add(d))
	session, err := EndSession()
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func TestAdjustTime(t *testing.T) {
	newTestDB(t)
	session := endedSession(t, baseTime, 8*time.Hour)

	newStart := baseTime.Add(30 * time.Minute)
	newEnd := baseTime.Add(9 * time.Hour)
	adjusted, err := AdjustTime(session.ID, newStart, &newEnd)
	if err != nil {
		t.Fatalf("adjust time: %v", err)
	}
	if !adjusted.StartedAt.Equal(newStart) {
		t.Fatalf("StartedAt = %v, want %v", adjusted.StartedAt, newStart)
	}
	if !adjusted.FinishedAt.Equal(newEnd) {
		t.Fatalf("FinishedAt = %v, want %v", adjusted.FinishedAt, newEnd)
	}
}

func TestAdjustTimeRejectsEndBeforeStart(t *testing.T) {
	newTestDB(t)
	session := endedSession(t, baseTime, 8*time.Hour)

	newStart := baseTime.Add(2 * time.Hour)
	for _, end := range []time.Time{newStart, newStart.Add(-time.Minute)} {
		end := end
		_, err := AdjustTime(session.ID, newStart, &end)
		if !errors.Is(err, ErrEndBeforeStart) {
			t.Fatalf("expected ErrEndBeforeStart, got %v", err)
		}
	}

	// Nothing was written
	unchanged, err := GetSessionByID(session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !unchanged.StartedAt.Equal(session.StartedAt) {
		t.Fatalf("StartedAt mutated to %v", unchanged.StartedAt)
	}
	if !unchanged.FinishedAt.Equal(*session.FinishedAt) {
		t.Fatalf("FinishedAt mutated to %v", unchanged.FinishedAt)
	}
}

func TestAdjustTimeStartOnlyRespectsRecordedEnd(t *testing.T) {
	newTestDB(t)
	session := endedSession(t, baseTime, 8*time.Hour)

	// Pushing the start past the recorded end is rejected
	_, err := AdjustTime(session.ID, baseTime.Add(9*time.Hour), nil)
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("expected ErrEndBeforeStart, got %v", err)
	}

	// A start-only edit inside the window goes through
	adjusted, err := AdjustTime(session.ID, baseTime.Add(time.Hour), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !adjusted.StartedAt.Equal(baseTime.Add(time.Hour)) {
		t.Fatalf("StartedAt = %v", adjusted.StartedAt)
	}
	if !adjusted.FinishedAt.Equal(*session.FinishedAt) {
		t.Fatalf("FinishedAt mutated to %v", adjusted.FinishedAt)
	}
}

func TestAdjustTimeUnknownSession(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	end := baseTime.Add(time.Hour)
	_, err := AdjustTime(999, baseTime, &end)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAdjustTimeLeavesBreakSecondsAlone(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := AdjustBreakTime(20); err != nil {
		t.Fatal(err)
	}
	setClock(baseTime.Add(8 * time.Hour))
	session, err := EndSession()
	if err != nil {
		t.Fatal(err)
	}

	newStart := baseTime.Add(-time.Hour)
	adjusted, err := AdjustTime(session.ID, newStart, session.FinishedAt)
	if err != nil {
		t.Fatal(err)
	}
	if adjusted.BreakSeconds != 1200 {
		t.Fatalf("BreakSeconds = %d, want 1200", adjusted.BreakSeconds)
	}
}

// ============================================================
// Notes, deletion, ranges
// ============================================================

func TestUpdateSessionNotes(t *testing.T) {
	newTestDB(t)
	session := endedSession(t, baseTime, 8*time.Hour)

	updated, err := UpdateSessionNotes(session.ID, "heavy traffic on the A15")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Notes != "heavy traffic on the A15" {
		t.Fatalf("Notes = %q", updated.Notes)
	}

	// Overwrite is unconditional
	updated, err = UpdateSessionNotes(session.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Notes != "" {
		t.Fatalf("Notes = %q, want empty", updated.Notes)
	}
}

func TestDeleteSessionRefusesActive(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	session, err := StartSession("driver-1")
	if err != nil {
		t.Fatal(err)
	}

	if err := DeleteSession(session.ID); err == nil {
		t.Fatal("expected error deleting active session")
	}
}

func TestDeleteAllSessions(t *testing.T) {
	newTestDB(t)
	endedSession(t, baseTime, 4*time.Hour)
	endedSession(t, baseTime.AddDate(0, 0, 1), 6*time.Hour)

	// Active session survives the purge
	setClock(baseTime.AddDate(0, 0, 2))
	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	count, err := DeleteAllSessions()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("deleted %d sessions, want 2", count)
	}

	sessions, err := GetAllSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || !sessions[0].Active() {
		t.Fatalf("expected only the active session to remain, got %d", len(sessions))
	}
}

func TestGetSessionsInRangeInclusive(t *testing.T) {
	newTestDB(t)

	inside := endedSession(t, baseTime, 2*time.Hour)
	edge := endedSession(t, baseTime.AddDate(0, 0, 6), 2*time.Hour)
	endedSession(t, baseTime.AddDate(0, 0, -1), 2*time.Hour) // before range

	from := baseTime
	to := baseTime.AddDate(0, 0, 6)
	sessions, err := GetSessionsInRange(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].ID != inside.ID || sessions[1].ID != edge.ID {
		t.Fatalf("unexpected sessions %d, %d", sessions[0].ID, sessions[1].ID)
	}
}

func TestGetSessionsInRangeIncludingActive(t *testing.T) {
	newTestDB(t)

	ended := endedSession(t, baseTime, 2*time.Hour)

	// A shift still running mid-week
	setClock(baseTime.AddDate(0, 0, 2))
	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	from, to := baseTime, baseTime.AddDate(0, 0, 6)
	sessions, err := GetSessionsInRangeIncludingActive(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	if sessions[0].ID != ended.ID {
		t.Fatalf("sessions[0] = #%d, want #%d", sessions[0].ID, ended.ID)
	}
	if !sessions[1].Active() {
		t.Fatal("running session missing from the window")
	}
}

func TestGetSessionsInRangeExcludesActive(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	if _, err := StartSession("driver-1"); err != nil {
		t.Fatal(err)
	}

	sessions, err := GetSessionsInRange(baseTime.Add(-time.Hour), baseTime.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 0 {
		t.Fatalf("active session leaked into range query")
	}
}
