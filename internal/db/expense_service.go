package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

// CreateExpenseRequest holds the data needed to record a new expense
type CreateExpenseRequest struct {
	UserID      string
	SessionID   *uint
	Type        string
	Amount      float64
	Description string
	SpentAt     *time.Time // nil means now
	Receipt     string
}

// CreateExpense records a new expense
func CreateExpense(req CreateExpenseRequest) (*models.Expense, error) {
	if !models.ValidExpenseType(req.Type) {
		return nil, fmt.Errorf("%w: unknown type %q, use toll, meal, fuel or other", ErrInvalidExpense, req.Type)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidExpense)
	}

	spentAt := now()
	if req.SpentAt != nil {
		spentAt = *req.SpentAt
	}

	expense := models.Expense{
		UserID:      req.UserID,
		SessionID:   req.SessionID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		SpentAt:     spentAt,
		Receipt:     req.Receipt,
	}

	if err := DB.Create(&expense).Error; err != nil {
		return nil, err
	}

	return &expense, nil
}

// GetExpenseByID retrieves one expense
func GetExpenseByID(id uint) (*models.Expense, error) {
	var expense models.Expense

	err := DB.First(&expense, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrExpenseNotFound, id)
		}
		return nil, err
	}

	return &expense, nil
}

// UpdateExpense overwrites the editable fields of an expense
func UpdateExpense(id uint, expenseType string, amount float64, description string) (*models.Expense, error) {
	if !models.ValidExpenseType(expenseType) {
		return nil, fmt.Errorf("%w: unknown type %q, use toll, meal, fuel or other", ErrInvalidExpense, expenseType)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidExpense)
	}

	expense, err := GetExpenseByID(id)
	if err != nil {
		return nil, err
	}

	expense.Type = expenseType
	expense.Amount = amount
	expense.Description = description

	if err := DB.Save(expense).Error; err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense removes one expense record
func DeleteExpense(id uint) error {
	expense, err := GetExpenseByID(id)
	if err != nil {
		return err
	}
	return DB.Delete(expense).Error
}

// DeleteAllExpenses removes every expense record
func DeleteAllExpenses() (int64, error) {
	res := DB.Where("1 = 1").Delete(&models.Expense{})
	return res.RowsAffected, res.Error
}

// GetExpensesInRange returns expenses spent within [startTime, endTime]
// inclusive, optionally filtered by type
func GetExpensesInRange(startTime, endTime time.Time, expenseType string) ([]models.Expense, error) {
	query := DB.Where("spent_at >= ? AND spent_at <= ?", startTime, endTime)
	if expenseType != "" {
		query = query.Where("type = ?", expenseType)
	}

	var expenses []models.Expense
	if err := query.Order("spent_at ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetAllExpenses returns every expense, newest first
func GetAllExpenses() ([]models.Expense, error) {
	var expenses []models.Expense

	err := DB.Order("spent_at DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
