package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/parser"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <session-id>",
	Short: "Adjust the start and end time of a shift",
	Long: `Overwrite the recorded start (and optionally end) time of a shift.
The end time must be strictly after the start time. Break time is not
rescaled by a window edit.

Time formats: dd/mm/yyyy hh:mm, or hh:mm for today.

Examples:
  shiftshift adjust 12 --start "08:30"
  shiftshift adjust 12 --start "15/12/2024 08:30" --end "15/12/2024 17:00"`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		sessionID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")

		if startStr == "" {
			fmt.Println("Error: --start is required")
			return
		}

		startTime, err := parser.ParseTimestamp(startStr, time.Now())
		if err != nil {
			fmt.Printf("Error: bad start time: %v\n", err)
			return
		}

		var endTime *time.Time
		if endStr != "" {
			endTime, err = parser.ParseTimestamp(endStr, *startTime)
			if err != nil {
				fmt.Printf("Error: bad end time: %v\n", err)
				return
			}
		}

		session, err := db.AdjustTime(uint(sessionID), *startTime, endTime)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Session #%d adjusted\n", session.ID)
		fmt.Printf("Start: %s\n", parser.FormatTimestamp(&session.StartedAt))
		if session.FinishedAt != nil {
			fmt.Printf("End:   %s\n", parser.FormatTimestamp(session.FinishedAt))
		}
	}),
}

func init() {
	adjustCmd.Flags().String("start", "", "New start time (dd/mm/yyyy hh:mm or hh:mm)")
	adjustCmd.Flags().String("end", "", "New end time (dd/mm/yyyy hh:mm or hh:mm)")
}
