package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/export"
	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|report>",
	Short: "Export recorded shifts to a file",
	Long: `Export recorded shifts as delimited text (csv) or as a printable
hours report (report).

By default the whole history is exported, --week and --month narrow it down.

Examples:
  shiftshift export csv
  shiftshift export csv --week --out week.csv
  shiftshift export report --month --out hours.txt`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "report"},
	Run: withDB(func(cmd *cobra.Command, args []string) {
		sessions, err := exportSessions(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No shifts to export")
			return
		}

		out, _ := cmd.Flags().GetString("out")

		switch args[0] {
		case "csv":
			if out == "" {
				out = "shiftshift-export.csv"
			}
			if err := export.ToCSV(sessions, out); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		case "report":
			if out == "" {
				out = "shiftshift-hours-report.txt"
			}
			settings, err := db.GetSettings()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			owner := settings.Username
			if owner == "" {
				owner = "Driver"
			}
			if err := export.WriteDocument(sessions, owner, time.Now(), out); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		default:
			fmt.Printf("Error: unknown format '%s', use csv or report\n", args[0])
			return
		}

		fmt.Printf("📄 Exported %d shift(s) to %s\n", len(sessions), out)
	}),
}

// exportSessions resolves the session set selected by the range flags.
// Sessions come back oldest first so the export reads chronologically.
func exportSessions(cmd *cobra.Command) ([]models.Session, error) {
	weekly, _ := cmd.Flags().GetBool("week")
	monthly, _ := cmd.Flags().GetBool("month")

	now := time.Now()
	switch {
	case weekly:
		from, to := report.WeekRange(now)
		return db.GetSessionsInRangeIncludingActive(from, to)
	case monthly:
		from, to := report.MonthRange(now)
		return db.GetSessionsInRangeIncludingActive(from, to)
	default:
		sessions, err := db.GetAllSessions()
		if err != nil {
			return nil, err
		}
		// GetAllSessions is newest first; flip for export
		for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
			sessions[i], sessions[j] = sessions[j], sessions[i]
		}
		return sessions, nil
	}
}

func init() {
	exportCmd.Flags().String("out", "", "Output file path")
	exportCmd.Flags().Bool("week", false, "Export only the current week")
	exportCmd.Flags().Bool("month", false, "Export only the current month")
}
