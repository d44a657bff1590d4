package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
	"github.com/parvenuprompting/shiftshift/internal/tui"
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"ls"},
	Short:   "List and manage recorded shifts",
	Long: `Browse recorded shifts in an interactive list, or print them as a
plain table with --no-ui.

Quick actions in the browser:
  ↑/↓           Navigate shifts
  w/m/a         Week, month or all scope
  d             Delete selected shift
  esc/q         Quit`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunSessionsTUI(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		sessions, err := db.GetAllSessions()
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No shifts recorded. Use 'shiftshift start' to begin your first shift.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-14s %-7s %-7s %-9s %s\n", "ID", "DATE", "START", "END", "DURATION", "NOTES")
		fmt.Println(strings.Repeat("-", 70))

		for i := range sessions {
			printSessionRow(&sessions[i])
		}
	}),
}

// printSessionRow renders one row of the plain sessions table
func printSessionRow(s *models.Session) {
	endStr := "Active"
	durStr := "-"
	if s.FinishedAt != nil {
		endStr = s.FinishedAt.Format("15:04")
		durStr = report.FormatMinutes(report.SessionMinutes(s))
	}

	notes := truncateRunes(s.Notes, 28)

	fmt.Printf("%-4d %-14s %-7s %-7s %-9s %s\n",
		s.ID,
		s.StartedAt.Format("Mon 02-01-06"),
		s.StartedAt.Format("15:04"),
		endStr,
		durStr,
		notes)
}

// truncateRunes shortens s to at most max runes, ellipsis included.
// Cuts on rune boundaries so multi-byte characters stay intact.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func init() {
	sessionsCmd.Flags().Bool("no-ui", false, "Simple text output")
}
