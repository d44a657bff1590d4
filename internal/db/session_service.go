package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// StartSession starts a new shift for the given user
func StartSession(userID string) (*models.Session, error) {
	// Check if there's already an active session
	var active models.Session
	err := DB.Where("finished_at IS NULL").First(&active).Error
	if err == nil {
		// There's already an active session
		return nil, fmt.Errorf("%w: started at %s, stop it first with 'shiftshift stop'",
			ErrSessionActive, active.StartedAt.Format("15:04"))
	}

	session := models.Session{
		UserID:    userID,
		StartedAt: now(),
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// EndSession stops the currently active shift. Any still-open break is closed
// first so its time lands in the break accumulator before the end stamp.
func EndSession() (*models.Session, error) {
	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	if _, err := EndBreak(); err != nil && !errors.Is(err, ErrNoOpenBreak) {
		return nil, fmt.Errorf("failed to close open break: %w", err)
	}

	// Re-read: EndBreak may have bumped BreakSeconds
	session, err = GetSessionByID(session.ID)
	if err != nil {
		return nil, err
	}

	finished := now()
	session.FinishedAt = &finished

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// GetActiveSession returns the currently active shift, if any
func GetActiveSession() (*models.Session, error) {
	var session models.Session

	err := DB.Where("finished_at IS NULL").
		Preload("Breaks").
		Preload("Tasks").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No active session is not an error
		}
		return nil, err
	}

	return &session, nil
}

// GetSessionByID retrieves a session, current or ended, by ID
func GetSessionByID(id uint) (*models.Session, error) {
	var session models.Session

	err := DB.Preload("Breaks").Preload("Tasks").First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrSessionNotFound, id)
		}
		return nil, err
	}

	return &session, nil
}

// GetSessionsInRange returns all completed sessions whose start falls
// within [startTime, endTime] inclusive
func GetSessionsInRange(startTime, endTime time.Time) ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Where("started_at >= ? AND started_at <= ? AND finished_at IS NOT NULL", startTime, endTime).
		Preload("Breaks").
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetSessionsInRangeIncludingActive returns all sessions whose start falls
// within [startTime, endTime] inclusive, the running one included. Exports
// use this so a file written mid-shift still carries the current day.
func GetSessionsInRangeIncludingActive(startTime, endTime time.Time) ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Where("started_at >= ? AND started_at <= ?", startTime, endTime).
		Preload("Breaks").
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetAllSessions returns every recorded session, newest first, including
// the active one
func GetAllSessions() ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Preload("Breaks").Order("started_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// AdjustTime overwrites a session's start (and optionally end) timestamps.
// When both are supplied the end must be strictly after the start, otherwise
// nothing is written. Break time is left untouched: editing the outer window
// does not rescale breaks.
func AdjustTime(id uint, startTime time.Time, endTime *time.Time) (*models.Session, error) {
	if endTime != nil && !endTime.After(startTime) {
		return nil, ErrEndBeforeStart
	}

	session, err := GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	// A start-only edit must still respect the recorded end
	if endTime == nil && session.FinishedAt != nil && !session.FinishedAt.After(startTime) {
		return nil, ErrEndBeforeStart
	}

	session.StartedAt = startTime
	if endTime != nil {
		session.FinishedAt = endTime
	}

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateSessionNotes overwrites the notes of a session, current or ended
func UpdateSessionNotes(id uint, notes string) (*models.Session, error) {
	session, err := GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	session.Notes = notes
	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes one ended session record. The active session is
// never deleted through this path.
func DeleteSession(id uint) error {
	session, err := GetSessionByID(id)
	if err != nil {
		return err
	}
	if session.Active() {
		return fmt.Errorf("session #%d is still active, stop it first", id)
	}

	return DB.Delete(session).Error
}

// DeleteAllSessions removes every ended session record. Irreversible;
// callers confirm destructive intent before invoking.
func DeleteAllSessions() (int64, error) {
	res := DB.Where("finished_at IS NOT NULL").Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
