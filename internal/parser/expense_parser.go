package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedExpense represents an expense parsed from quick-add syntax
type ParsedExpense struct {
	Type        string
	Amount      float64
	Description string
	Errors      []string
}

// ParseExpense extracts an expense from natural quick-add syntax
// Syntax: "[type] amount description", e.g. "meal 12.50 lunch at truckstop"
// or "8.20 parking" (type defaults to other)
func ParseExpense(input string) ParsedExpense {
	result := ParsedExpense{
		Type:   "other",
		Errors: []string{},
	}

	input = strings.TrimSpace(input)
	if input == "" {
		result.Errors = append(result.Errors, "Expense description cannot be empty")
		return result
	}

	fields := strings.Fields(input)

	// Leading type keyword is optional
	if isValidExpenseType(strings.ToLower(fields[0])) {
		result.Type = strings.ToLower(fields[0])
		fields = fields[1:]
	}

	if len(fields) == 0 {
		result.Errors = append(result.Errors, "Missing amount. Use: [type] amount description")
		return result
	}

	// Amount: first token, decimal point or comma accepted
	amountRegex := regexp.MustCompile(`^(\d+)(?:[.,](\d{1,2}))?$`)
	matches := amountRegex.FindStringSubmatch(fields[0])
	if len(matches) == 0 {
		result.Errors = append(result.Errors, "Invalid amount '"+fields[0]+"'. Use: 12.50 or 12,50")
		return result
	}

	normalized := matches[1]
	if matches[2] != "" {
		normalized += "." + matches[2]
	}
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		result.Errors = append(result.Errors, "Invalid amount '"+fields[0]+"'")
		return result
	}
	result.Amount = amount

	// Everything after the amount is the description
	result.Description = strings.Join(fields[1:], " ")

	return result
}

// isValidExpenseType checks if a type keyword is valid
func isValidExpenseType(t string) bool {
	validTypes := map[string]bool{
		"toll":  true,
		"meal":  true,
		"fuel":  true,
		"other": true,
	}
	return validTypes[t]
}
