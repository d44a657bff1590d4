package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the current shift's checklist",
	Long: `Keep a small checklist on the current shift. Checklist entries are
not time-accounted, they just track what got done.

Examples:
  shiftshift task add "unload at DC Utrecht"
  shiftshift task done 3
  shiftshift task ls`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a checklist entry to the current shift",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		task, err := db.AddTask(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added task #%d: %s\n", task.ID, task.Text)
	}),
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a checklist entry",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := db.ToggleTask(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if task.Completed {
			fmt.Printf("✅ Done: %s\n", task.Text)
		} else {
			fmt.Printf("○ Reopened: %s\n", task.Text)
		}
	}),
}

var taskListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List the current shift's checklist",
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

		tasks, err := db.GetSessionTasks(session.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks on this shift. Use 'shiftshift task add \"...\"' to add one.")
			return
		}

		for _, task := range tasks {
			mark := "○"
			if task.Completed {
				mark = "✅"
			}
			fmt.Printf("%s #%d %s\n", mark, task.ID, task.Text)
		}
	}),
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskListCmd)
}
