package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/parser"
	"github.com/parvenuprompting/shiftshift/internal/report"
	"github.com/parvenuprompting/shiftshift/internal/tui"
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"exp"},
	Short:   "Track work expenses",
	Long: `Record, list, edit and delete work expenses (toll, meal, fuel, other).

Quick-add syntax: [type] amount description
  shiftshift expense add "meal 12.50 lunch at truckstop"
  shiftshift expense add "8.20 parking"        # type defaults to other

Or use the interactive wizard:
  shiftshift expense add`,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add [expense]",
	Short: "Record a new expense",
	Args:  cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		// No argument: interactive wizard
		if len(args) == 0 {
			if err := tui.RunExpenseTUI(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		parsed := parser.ParseExpense(args[0])
		if len(parsed.Errors) > 0 {
			for _, e := range parsed.Errors {
				fmt.Printf("Error: %s\n", e)
			}
			return
		}

		settings, err := db.GetSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		req := db.CreateExpenseRequest{
			UserID:      settings.Username,
			Type:        parsed.Type,
			Amount:      parsed.Amount,
			Description: parsed.Description,
		}

		// Link to the running shift when there is one
		if session, err := db.GetActiveSession(); err == nil && session != nil {
			req.SessionID = &session.ID
		}

		expense, err := db.CreateExpense(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💶 Expense #%d recorded: %s € %.2f", expense.ID, expense.Type, expense.Amount)
		if expense.Description != "" {
			fmt.Printf(" (%s)", expense.Description)
		}
		fmt.Println()
	}),
}

var expenseListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List expenses",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		expenses, err := listExpenses(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(expenses) == 0 {
			fmt.Println("No expenses found. Use 'shiftshift expense add' to record one.")
			return
		}

		fmt.Printf("%-4s %-6s %-12s %10s  %s\n", "ID", "TYPE", "DATE", "AMOUNT", "DESCRIPTION")
		total := 0.0
		for _, e := range expenses {
			fmt.Printf("%-4d %-6s %-12s %10.2f  %s\n",
				e.ID, e.Type, e.SpentAt.Format("02-01-2006"), e.Amount, e.Description)
			total += e.Amount
		}
		fmt.Printf("%35.2f  total\n", total)
	}),
}

var expenseEditCmd = &cobra.Command{
	Use:   "edit <expense-id> <expense>",
	Short: "Edit an expense",
	Long: `Overwrite an expense using the quick-add syntax.

Example:
  shiftshift expense edit 4 "fuel 95.00 diesel A12 services"`,
	Args: cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		expenseID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid expense ID '%s'\n", args[0])
			return
		}

		parsed := parser.ParseExpense(args[1])
		if len(parsed.Errors) > 0 {
			for _, e := range parsed.Errors {
				fmt.Printf("Error: %s\n", e)
			}
			return
		}

		expense, err := db.UpdateExpense(uint(expenseID), parsed.Type, parsed.Amount, parsed.Description)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Expense #%d updated: %s € %.2f\n", expense.ID, expense.Type, expense.Amount)
	}),
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "rm <expense-id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		expenseID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid expense ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteExpense(uint(expenseID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Expense #%d deleted\n", expenseID)
	}),
}

// listExpenses resolves the expense set selected by the range and type flags
func listExpenses(cmd *cobra.Command) ([]models.Expense, error) {
	weekly, _ := cmd.Flags().GetBool("week")
	monthly, _ := cmd.Flags().GetBool("month")
	expenseType, _ := cmd.Flags().GetString("type")

	now := time.Now()
	switch {
	case weekly:
		from, to := report.WeekRange(now)
		return db.GetExpensesInRange(from, to, expenseType)
	case monthly:
		from, to := report.MonthRange(now)
		return db.GetExpensesInRange(from, to, expenseType)
	case expenseType != "":
		from := time.Time{}
		return db.GetExpensesInRange(from, now, expenseType)
	default:
		return db.GetAllExpenses()
	}
}

func init() {
	expenseListCmd.Flags().Bool("week", false, "Only the current week")
	expenseListCmd.Flags().Bool("month", false, "Only the current month")
	expenseListCmd.Flags().String("type", "", "Filter by type: toll, meal, fuel, other")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseEditCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
}
