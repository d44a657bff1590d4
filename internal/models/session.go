package models

import (
	"time"

	"gorm.io/gorm"
)

// Session represents one shift/work period
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID       string     `gorm:"index" json:"user_id"`
	StartedAt    time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"` // nil while the shift is active
	BreakSeconds int        `json:"break_seconds"`
	Notes        string     `json:"notes"`

	// Relationships
	Breaks []Break       `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;" json:"breaks"`
	Tasks  []SessionTask `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;" json:"tasks"`
}

// Active reports whether the session is still running.
func (s *Session) Active() bool {
	return s.FinishedAt == nil
}

// Break represents one pause interval inside a session.
// At most one break per session has no EndedAt (the open break),
// and only while the session itself is active.
type Break struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID uint       `gorm:"not null;index" json:"session_id"`
	StartedAt time.Time  `gorm:"not null" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

// Open reports whether the break is still running.
func (b *Break) Open() bool {
	return b.EndedAt == nil
}

// SessionTask is one entry in a session's checklist. Not time-accounted.
type SessionTask struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID uint   `gorm:"not null;index" json:"session_id"`
	Text      string `gorm:"not null" json:"text"`
	Completed bool   `gorm:"default:false" json:"completed"`
}
