package db

import "errors"

// Sentinel errors surfaced by the session store. Commands match on these to
// pick a user-facing message; none of them leaves the store in a mutated state.
var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionActive   = errors.New("a session is already active")
	ErrSessionNotFound = errors.New("session not found")
	ErrEndBeforeStart  = errors.New("end time must be after start time")
	ErrBreakActive     = errors.New("a break is already active")
	ErrNoOpenBreak     = errors.New("no open break")
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrExpenseNotFound = errors.New("expense not found")
)
