package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardcal/internal/config"
	"boardcal/internal/dateview"
	"boardcal/internal/store"
	"boardcal/internal/utils"
)

var (
	listView    string
	listDate    string
	listFormat  string
	listNoColor bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings for a view range",
	Long: `Examples:
	boardcal list                              # this workweek
	boardcal list --view day --date tomorrow
	boardcal list --view month --date 2024-08-01 --format table
	boardcal list --view week --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		mode := dateview.ParseViewMode(listView)
		anchor := dateview.Today(loc)
		if listDate != "" {
			var err error
			anchor, err = utils.ParseFlexibleDate(listDate, loc)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", listDate, err)
			}
		}

		days := dateview.ResolveDays(mode, anchor)

		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		meetings, err := store.MeetingsBetween(dbh, days[0].ISO, days[len(days)-1].ISO)
		if err != nil {
			return err
		}

		renderConfig := utils.DefaultRenderConfig()
		if listNoColor {
			renderConfig.Color = false
		}
		if listFormat != "" {
			renderConfig.Format = utils.OutputFormat(listFormat)
		}

		out, err := utils.NewRenderer(renderConfig).RenderRange(days, meetings)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listView, "view", "v", "workweek", "View mode: day|workweek|week|month")
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Anchor date (defaults to today)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "default", "Output format: default|table|json|csv")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}
