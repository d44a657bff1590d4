package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/parvenuprompting/shiftshift/internal/db"
)

var wageCmd = &cobra.Command{
	Use:   "wage [amount]",
	Short: "Show or set the hourly wage",
	Long: `Show or set the hourly wage used for earnings on reports.
Setting it to 0 hides earnings entirely.

Examples:
  shiftshift wage          # Show current wage
  shiftshift wage 17.50    # Set hourly wage`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		hide, _ := cmd.Flags().GetBool("hide-earnings")
		show, _ := cmd.Flags().GetBool("show-earnings")
		if hide || show {
			if _, err := db.SetShowEarnings(show && !hide); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if hide {
				fmt.Println("Earnings hidden on reports")
			} else {
				fmt.Println("Earnings shown on reports")
			}
		}

		if len(args) == 0 {
			if hide || show {
				return
			}
			settings, err := db.GetSettings()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if settings.HourlyWage == 0 {
				fmt.Println("No hourly wage set, earnings are hidden")
				return
			}
			fmt.Printf("Hourly wage: € %.2f (net factor %.2f)\n", settings.HourlyWage, settings.NetWageFactor)
			return
		}

		wage, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount '%s'\n", args[0])
			return
		}

		settings, err := db.SetHourlyWage(wage)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💶 Hourly wage set to € %.2f\n", settings.HourlyWage)
	}),
}

var userCmd = &cobra.Command{
	Use:   "user [name]",
	Short: "Show or set the driver name used on reports",
	Args:  cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			settings, err := db.GetSettings()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if settings.Username == "" {
				fmt.Println("No driver name set")
				return
			}
			fmt.Printf("Driver: %s\n", settings.Username)
			return
		}

		settings, err := db.SetUsername(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("👤 Driver name set to %s\n", settings.Username)
	}),
}

func init() {
	wageCmd.Flags().Bool("hide-earnings", false, "Hide earnings on reports")
	wageCmd.Flags().Bool("show-earnings", false, "Show earnings on reports")
}
