package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for shiftshift",
	Long:  `Display detailed help for all shiftshift commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██╗  ██╗██╗███████╗████████╗██╗  ██╗██████╗
██╔════╝██║  ██║██║██╔════╝╚══██╔══╝╚██╗██╔╝╚════██╗
███████╗███████║██║█████╗     ██║    ╚███╔╝  █████╔╝
╚════██║██╔══██║██║██╔══╝     ██║    ██╔██╗ ██╔═══╝
███████║██║  ██║██║██║        ██║   ██╔╝ ██╗███████╗
╚══════╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝   ╚═╝  ╚═╝╚══════╝

shiftshift - CLI Driver Hours Tracker

COMMANDS:

  start                   Start a work shift
    --no-ui               Start without the interactive timer

    Timer keys:
      b             Start/end a break
      s             End shift & save
      esc/q         Detach (shift keeps running)

  stop                    End the current shift
  status                  Show current shift status

  break start             Go on break
  break end               Back to work
  break adjust <min>      Add/remove break minutes (never below zero)

  adjust <id>             Fix a shift's recorded times
    --start               New start (dd/mm/yyyy hh:mm, or hh:mm)
    --end                 New end, must be after start

  notes [id] <text>       Set notes on a shift (current one by default)

  task add <text>         Add a checklist entry to the current shift
  task done <id>          Toggle a checklist entry
  task ls                 List the current shift's checklist

  sessions                Browse recorded shifts
    --no-ui               Plain table output

  report                  Worked time + earnings, this week
    --month               This month instead

  export <csv|report>     Export shifts to a file
    --week, --month       Narrow the range
    --out                 Output path

  expense add [text]      Record an expense (wizard without argument)
    Quick syntax:  [toll|meal|fuel|other] amount description
    Example:       shiftshift expense add "meal 12.50 lunch"
  expense ls              List expenses (--week, --month, --type)
  expense edit <id> <text>
  expense rm <id>

  wage [amount]           Show or set hourly wage (0 hides earnings)
    --hide-earnings       Hide earnings on reports
    --show-earnings       Show earnings on reports
  user [name]             Show or set the driver name

  delete <id>             Delete one ended shift
    --all                 Delete the whole history (asks to confirm)
    --yes                 Skip the confirmation

  help                    Show this help
  version                 Show version information

`)
}
