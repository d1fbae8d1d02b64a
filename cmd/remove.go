package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardcal/internal/store"
)

var removeCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove a meeting by id",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()
		if err := store.RemoveMeeting(dbh, args[0]); err != nil {
			return err
		}
		fmt.Println("Removed.")
		return nil
	},
}
