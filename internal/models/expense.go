package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense types
const (
	ExpenseToll  = "toll"
	ExpenseMeal  = "meal"
	ExpenseFuel  = "fuel"
	ExpenseOther = "other"
)

// Expense represents a work-related cost, independent of session lifecycle
type Expense struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SessionID   *uint     `gorm:"index" json:"session_id"` // optional link to a shift
	UserID      string    `gorm:"index" json:"user_id"`
	Type        string    `gorm:"not null;default:other" json:"type"` // toll, meal, fuel, other
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	SpentAt     time.Time `gorm:"not null" json:"spent_at"`
	Receipt     string    `json:"receipt"` // optional path to a receipt image
}

// ValidExpenseType reports whether t is one of the known expense types.
func ValidExpenseType(t string) bool {
	switch t {
	case ExpenseToll, ExpenseMeal, ExpenseFuel, ExpenseOther:
		return true
	}
	return false
}
