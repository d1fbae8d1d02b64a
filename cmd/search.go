package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"boardcal/internal/model"
	"boardcal/internal/store"
	"boardcal/internal/timegrid"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search meetings by title, board or member",
	Long: `Examples:
	boardcal search suspensions
	boardcal search "Board 2" --limit 20
	boardcal search mckenzie`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		meetings, err := store.SearchMeetings(dbh, query, searchLimit)
		if err != nil {
			return err
		}

		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		meta := lipgloss.NewStyle().Faint(true)
		board := lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		members := lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7"))

		fmt.Println(title.Render("Search") + "  " + meta.Render("query: ") + query)

		for _, m := range meetings {
			when := m.Date
			if when == "" {
				when = fmt.Sprintf("weekday %d", m.DayIndex)
			}
			line := meta.Render(fmt.Sprintf("[%s] %s %s–%s", m.ID, when,
				timegrid.FormatClock(m.StartMinutes), timegrid.FormatClock(m.EndMinutes))) +
				"  " + m.Title
			if m.BoardNumber != "" {
				line += "  " + board.Render("["+m.BoardNumber+"]")
			}
			if len(m.Members) > 0 {
				line += "  " + members.Render(model.JoinMembers(m.Members))
			}
			fmt.Println(line)
		}
		if len(meetings) == 0 {
			fmt.Println(meta.Render("no results"))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 200, "Max results")
}
