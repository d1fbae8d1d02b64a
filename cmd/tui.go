package cmd

import (
	"github.com/spf13/cobra"

	"boardcal/internal/store"
	"boardcal/internal/ui"
)

// tuiCmd launches the Bubble Tea calendar.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the calendar TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()
		return ui.Run(dbh)
	},
}
