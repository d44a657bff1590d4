package db

import (
	"fmt"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// StartBreak opens a new break on the active session. A second break cannot
// be started while one is still open.
func StartBreak() (*models.Break, error) {
	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	if open := openBreak(session); open != nil {
		return nil, fmt.Errorf("%w: started at %s", ErrBreakActive, open.StartedAt.Format("15:04"))
	}

	brk := models.Break{
		SessionID: session.ID,
		StartedAt: now(),
	}
	if err := DB.Create(&brk).Error; err != nil {
		return nil, err
	}

	return &brk, nil
}

// EndBreak closes the open break and adds its whole-second duration to the
// session's break accumulator.
func EndBreak() (*models.Session, error) {
	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	open := openBreak(session)
	if open == nil {
		return nil, ErrNoOpenBreak
	}

	ended := now()
	open.EndedAt = &ended
	if err := DB.Save(open).Error; err != nil {
		return nil, err
	}

	session.BreakSeconds += int(ended.Sub(open.StartedAt).Seconds())
	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// AdjustBreakTime adds (or with negative minutes, removes) break time on the
// active session. The accumulator is clamped at zero regardless of how far
// negative the adjustment runs, and cannot be edited while a break is open.
func AdjustBreakTime(minutes int) (*models.Session, error) {
	session, err := GetActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	if open := openBreak(session); open != nil {
		return nil, fmt.Errorf("%w: end it before adjusting break time", ErrBreakActive)
	}

	session.BreakSeconds += minutes * 60
	if session.BreakSeconds < 0 {
		session.BreakSeconds = 0
	}

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// openBreak returns the session's open break, or nil. Only the last break
// can be open: closed ones all carry an end stamp.
func openBreak(session *models.Session) *models.Break {
	for i := range session.Breaks {
		if session.Breaks[i].Open() {
			return &session.Breaks[i]
		}
	}
	return nil
}
