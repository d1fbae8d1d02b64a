package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"boardcal/internal/config"
	"boardcal/internal/dateview"
	"boardcal/internal/model"
	"boardcal/internal/notify"
	"boardcal/internal/schedule"
	"boardcal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "boardcal",
	Short: "Board meeting calendar",
}

func Execute() error { return rootCmd.Execute() }

// fetchUpcoming loads the next week of dated meetings for the reminder
// loop. The store is opened per poll so the loop sees new meetings.
func fetchUpcoming(loc *time.Location) []model.Meeting {
	dbh, err := store.Open()
	if err != nil {
		return nil
	}
	defer dbh.Close()
	today := dateview.Today(loc)
	meetings, err := store.MeetingsBetween(dbh, dateview.ISODate(today), dateview.ISODate(today.AddDate(0, 0, 7)))
	if err != nil {
		return nil
	}
	return meetings
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("BOARDCAL_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			loc := cfg.Location()
			go func() {
				schedule.Run(ctx, cfg.Reminder.LeadMinutes, loc,
					func() []model.Meeting { return fetchUpcoming(loc) },
					func(m model.Meeting) {
						title, msg := notify.FormatMeetingPrompt(m.Title, m.StartMinutes, cfg.Reminder.LeadMinutes)
						_ = notify.Info(title, msg)
					})
			}()
			// Process exit delivers the signal; no need to keep cancel around.
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(tuiCmd, addCmd, listCmd, importCmd, editCmd, removeCmd, searchCmd)
}
