package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show worked time and earnings for this week or month",
	Long: `Show total worked time (gross time minus breaks) and earnings for the
current week (Monday-start) or calendar month.

Examples:
  shiftshift report          # This week
  shiftshift report --month  # This month`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		monthly, _ := cmd.Flags().GetBool("month")

		now := time.Now()
		var from, to time.Time
		var label string
		if monthly {
			from, to = report.MonthRange(now)
			label = "This month"
		} else {
			from, to = report.WeekRange(now)
			label = "This week"
		}

		sessions, err := db.GetSessionsInRange(from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		settings, err := db.GetSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		totals := report.ComputeTotals(sessions, settings.HourlyWage, settings.NetWageFactor)

		fmt.Printf("%s (%s - %s)\n", label, from.Format("02-01-2006"), to.Format("02-01-2006"))
		fmt.Printf("⏱️  Worked: %s over %d shift(s)\n", report.FormatMinutes(totals.TotalMinutes), len(sessions))
		if settings.ShowEarnings && settings.HourlyWage > 0 {
			fmt.Printf("💶 Gross: € %.2f   Net: € %.2f\n", totals.GrossEarnings, totals.NetEarnings)
		}

		if len(sessions) == 0 {
			return
		}

		fmt.Println()
		for i := range sessions {
			printSessionLine(&sessions[i])
		}
	}),
}

// printSessionLine renders one session row in list views
func printSessionLine(s *models.Session) {
	endStr := "Active"
	durStr := "-"
	if s.FinishedAt != nil {
		endStr = s.FinishedAt.Format("15:04")
		durStr = report.FormatMinutes(report.SessionMinutes(s))
	}

	line := fmt.Sprintf("#%-4d %s  %s - %s  %s",
		s.ID,
		s.StartedAt.Format("Mon 02-01"),
		s.StartedAt.Format("15:04"),
		endStr,
		durStr,
	)
	if s.BreakSeconds > 0 {
		line += fmt.Sprintf("  (incl. %dm break)", s.BreakSeconds/60)
	}
	fmt.Println(line)

	if s.Notes != "" {
		fmt.Printf("      %s\n", s.Notes)
	}
}

func init() {
	reportCmd.Flags().Bool("month", false, "Report over the current calendar month")
}
