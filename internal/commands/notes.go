package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
)

var notesCmd = &cobra.Command{
	Use:   "notes [session-id] <text>",
	Short: "Set the notes on a shift",
	Long: `Overwrite the free-text notes of a shift, current or ended.
With a single argument the notes go on the current shift.

Examples:
  shiftshift notes "delivered in Rotterdam, heavy traffic on A15"
  shiftshift notes 12 "corrected route notes"`,
	Args: cobra.RangeArgs(1, 2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		var sessionID uint
		var text string

		if len(args) == 2 {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid session ID '%s'\n", args[0])
				return
			}
			sessionID = uint(id)
			text = args[1]
		} else {
			session, err := db.GetActiveSession()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if session == nil {
				fmt.Println("Error: no active shift, pass a session ID")
				return
			}
			sessionID = session.ID
			text = args[0]
		}

		if _, err := db.UpdateSessionNotes(sessionID, text); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📝 Notes saved on session #%d\n", sessionID)
	}),
}
