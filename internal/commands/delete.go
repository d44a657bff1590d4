package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete recorded shifts",
	Long: `Delete one ended shift, or with --all the whole history.
Deletion is irreversible; --all asks for confirmation unless --yes is given.
The active shift is never deleted.

Examples:
  shiftshift delete 12
  shiftshift delete --all
  shiftshift delete --all --yes`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")

		if all {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm("Delete ALL recorded shifts? This cannot be undone") {
				fmt.Println("Cancelled")
				return
			}

			count, err := db.DeleteAllSessions()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("🗑️  Deleted %d shift(s)\n", count)
			return
		}

		if len(args) == 0 {
			fmt.Println("Error: pass a session ID or --all")
			return
		}

		sessionID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid session ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteSession(uint(sessionID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Session #%d deleted\n", sessionID)
	}),
}

// confirm asks a yes/no question on stdin
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	deleteCmd.Flags().Bool("all", false, "Delete all ended shifts")
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
