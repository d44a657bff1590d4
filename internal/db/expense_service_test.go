package db

import (
	"errors"
	"testing"
	"time"

	"github.com/parvenuprompting/shiftshift/internal/models"
)

func TestCreateExpense(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	expense, err := CreateExpense(CreateExpenseRequest{
		Type:        models.ExpenseMeal,
		Amount:      12.50,
		Description: "lunch at truckstop",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if expense.Amount != 12.50 {
		t.Fatalf("Amount = %v", expense.Amount)
	}
	// SpentAt defaults to the clock
	if !expense.SpentAt.Equal(baseTime) {
		t.Fatalf("SpentAt = %v, want %v", expense.SpentAt, baseTime)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	tests := []struct {
		name string
		req  CreateExpenseRequest
	}{
		{"unknown type", CreateExpenseRequest{Type: "bribe", Amount: 10}},
		{"negative amount", CreateExpenseRequest{Type: models.ExpenseToll, Amount: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateExpense(tt.req)
			if !errors.Is(err, ErrInvalidExpense) {
				t.Fatalf("expected ErrInvalidExpense, got %v", err)
			}
		})
	}
}

func TestUpdateExpense(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	expense, err := CreateExpense(CreateExpenseRequest{Type: models.ExpenseFuel, Amount: 80})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := UpdateExpense(expense.ID, models.ExpenseFuel, 85.40, "diesel, full tank")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Amount != 85.40 || updated.Description != "diesel, full tank" {
		t.Fatalf("update not applied: %+v", updated)
	}

	_, err = UpdateExpense(999, models.ExpenseFuel, 1, "")
	if !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestGetExpensesInRange(t *testing.T) {
	newTestDB(t)

	spend := func(ts time.Time, expenseType string, amount float64) {
		t.Helper()
		setClock(ts)
		if _, err := CreateExpense(CreateExpenseRequest{Type: expenseType, Amount: amount}); err != nil {
			t.Fatal(err)
		}
	}

	spend(baseTime, models.ExpenseToll, 4.20)
	spend(baseTime.AddDate(0, 0, 2), models.ExpenseMeal, 11)
	spend(baseTime.AddDate(0, 0, 10), models.ExpenseToll, 4.20) // outside range

	from, to := baseTime, baseTime.AddDate(0, 0, 6)

	all, err := GetExpensesInRange(from, to, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d expenses, want 2", len(all))
	}

	tolls, err := GetExpensesInRange(from, to, models.ExpenseToll)
	if err != nil {
		t.Fatal(err)
	}
	if len(tolls) != 1 || tolls[0].Type != models.ExpenseToll {
		t.Fatalf("type filter failed: %+v", tolls)
	}
}

func TestDeleteExpenses(t *testing.T) {
	newTestDB(t)
	setClock(baseTime)

	expense, err := CreateExpense(CreateExpenseRequest{Type: models.ExpenseOther, Amount: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CreateExpense(CreateExpenseRequest{Type: models.ExpenseOther, Amount: 3}); err != nil {
		t.Fatal(err)
	}

	if err := DeleteExpense(expense.ID); err != nil {
		t.Fatal(err)
	}
	if err := DeleteExpense(expense.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound on double delete, got %v", err)
	}

	count, err := DeleteAllExpenses()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("deleted %d expenses, want 1", count)
	}
}
