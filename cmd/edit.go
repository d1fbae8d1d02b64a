package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardcal/internal/config"
	"boardcal/internal/model"
	"boardcal/internal/store"
	"boardcal/internal/utils"
)

var (
	editTitle   string
	editDate    string
	editStart   string
	editEnd     string
	editType    string
	editBoard   string
	editMembers string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing meeting",
	Long: `Examples:
	boardcal edit m4f2a1b3c5d6 --start 10:00AM --end 11:30AM
	boardcal edit m4f2a1b3c5d6 --date friday --title "Board 2 reviews"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if editTitle == "" && editDate == "" && editStart == "" && editEnd == "" &&
			editType == "" && editBoard == "" && editMembers == "" {
			return fmt.Errorf("nothing to update - specify at least one field to edit")
		}

		cfg, _ := config.Load()
		loc := cfg.Location()

		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		m, err := store.GetMeeting(dbh, args[0])
		if err != nil {
			return err
		}

		if editTitle != "" {
			m.Title = editTitle
		}
		if editDate != "" {
			day, err := utils.ParseFlexibleDate(editDate, loc)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", editDate, err)
			}
			m.Date = day.Format("2006-01-02")
			m.DayIndex = model.LegacyDayUnset
		}
		if editStart != "" {
			if m.StartMinutes, err = model.ParseClock(editStart); err != nil {
				return fmt.Errorf("invalid --start %q: %w", editStart, err)
			}
		}
		if editEnd != "" {
			if m.EndMinutes, err = model.ParseClock(editEnd); err != nil {
				return fmt.Errorf("invalid --end %q: %w", editEnd, err)
			}
		}
		if editType != "" {
			m.Type = model.ParseMeetingType(editType)
		}
		if editBoard != "" {
			m.BoardNumber = editBoard
		}
		if editMembers != "" {
			m.Members = model.SplitMembers(editMembers)
		}

		if err := store.UpdateMeeting(dbh, m); err != nil {
			return err
		}
		fmt.Printf("Meeting %s updated.\n", m.ID)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDate, "date", "", "New date (2006-01-02, tomorrow, friday, ...)")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time (9:00AM or 09:00)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time (10:30AM or 10:30)")
	editCmd.Flags().StringVar(&editType, "type", "", "New type: General|Suspensions|Reviews")
	editCmd.Flags().StringVar(&editBoard, "board", "", "New board number")
	editCmd.Flags().StringVar(&editMembers, "members", "", "New comma-separated member list")
}
