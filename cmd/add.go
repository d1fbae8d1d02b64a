package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardcal/internal/config"
	"boardcal/internal/dateview"
	"boardcal/internal/model"
	"boardcal/internal/store"
	"boardcal/internal/timegrid"
	"boardcal/internal/utils"
)

var (
	addDate    string
	addStart   string
	addEnd     string
	addType    string
	addBoard   string
	addMembers string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a meeting",
	Long: `Examples:
	boardcal add "General Parole Review" --date today --start 9:00AM --end 10:30AM
	boardcal add "Suspension Hearing" --date 2024-08-07 --start 11:00 --end 12:00 \
	    --type suspensions --board 1041 --members "Singh, Brown, King"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		day, err := utils.ParseFlexibleDate(addDate, loc)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", addDate, err)
		}
		start, err := model.ParseClock(addStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := model.ParseClock(addEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		if end <= start {
			return fmt.Errorf("end %s must be after start %s", timegrid.FormatClock(end), timegrid.FormatClock(start))
		}

		m := model.Meeting{
			Date:         dateview.ISODate(day),
			DayIndex:     model.LegacyDayUnset,
			StartMinutes: start,
			EndMinutes:   end,
			Title:        args[0],
			Type:         model.ParseMeetingType(addType),
			BoardNumber:  addBoard,
			Members:      model.SplitMembers(addMembers),
		}

		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		if err := store.AddMeeting(dbh, &m); err != nil {
			return err
		}
		fmt.Printf("Added %s: %s %s–%s %s\n", m.ID, m.Date,
			timegrid.FormatClock(m.StartMinutes), timegrid.FormatClock(m.EndMinutes), m.Title)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "today", "Meeting date (today, tomorrow, monday, 2024-08-07, ...)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start time (9:00AM or 09:00)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "End time (10:30AM or 10:30)")
	addCmd.Flags().StringVarP(&addType, "type", "t", "general", "Meeting type: general|suspensions|reviews")
	addCmd.Flags().StringVarP(&addBoard, "board", "b", "", "Board number reference")
	addCmd.Flags().StringVarP(&addMembers, "members", "m", "", "Comma separated member names")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
}
