package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
)

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Manage breaks within the current shift",
	Long: `Start, end, or adjust breaks within the current shift.

Examples:
  shiftshift break start       # Go on break
  shiftshift break end         # Back to work
  shiftshift break adjust 15   # Add 15 minutes of break time
  shiftshift break adjust -10  # Remove 10 minutes of break time`,
}

var breakStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a break",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		brk, err := db.StartBreak()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("☕ Break started at %s\n", brk.StartedAt.Format("15:04:05"))
	}),
}

var breakEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the open break",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.EndBreak()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💪 Back to work\n")
		fmt.Printf("Total break time: %dm\n", session.BreakSeconds/60)
	}),
}

var breakAdjustCmd = &cobra.Command{
	Use:   "adjust <minutes>",
	Short: "Manually add or remove break time",
	Long: `Add (positive) or remove (negative) break minutes on the current shift.
Break time never goes below zero, no matter how much is removed.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid minutes '%s'\n", args[0])
			return
		}

		session, err := db.AdjustBreakTime(minutes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Break time is now %dm\n", session.BreakSeconds/60)
	}),
}

func init() {
	breakCmd.AddCommand(breakStartCmd)
	breakCmd.AddCommand(breakEndCmd)
	breakCmd.AddCommand(breakAdjustCmd)
}
