package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/report"
	"github.com/parvenuprompting/shiftshift/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a work shift",
	Long: `Start a new work shift. Opens the interactive timer by default, use --no-ui for simple start.

Examples:
  shiftshift start         # Start shift with interactive timer
  shiftshift start --no-ui # Start shift without UI`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		settings, err := db.GetSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.StartSession(settings.Username)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Check if --no-ui flag is set
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			// Simple non-interactive start
			fmt.Printf("⏱️  Shift started\n")
			fmt.Printf("Started at: %s\n", session.StartedAt.Format("15:04:05"))
		} else {
			// Interactive timer UI
			if err := tui.RunShiftTimerTUI(session); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the current work shift",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.EndSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		minutes := report.SessionMinutes(session)
		fmt.Printf("⏹️  Shift ended\n")
		fmt.Printf("Worked: %s", report.FormatMinutes(minutes))
		if session.BreakSeconds > 0 {
			fmt.Printf(" (plus %dm break)", session.BreakSeconds/60)
		}
		fmt.Println()
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current shift status",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.GetActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if session == nil {
			fmt.Println("No active shift")
			return
		}

		elapsed := report.LiveElapsed(session, time.Now())
		fmt.Printf("⏱️  Shift active since %s\n", session.StartedAt.Format("15:04:05"))
		fmt.Printf("Worked so far: %s\n", formatDuration(elapsed))
		if session.BreakSeconds > 0 {
			fmt.Printf("Break time: %dm\n", session.BreakSeconds/60)
		}
		for i := range session.Breaks {
			if session.Breaks[i].Open() {
				fmt.Printf("☕ On break since %s\n", session.Breaks[i].StartedAt.Format("15:04:05"))
			}
		}
	}),
}

func init() {
	// Add --no-ui flag to start command
	startCmd.Flags().Bool("no-ui", false, "Start shift without interactive timer")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
