package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"boardcal/internal/config"
	"boardcal/internal/ics"
	"boardcal/internal/model"
	"boardcal/internal/store"
	"boardcal/internal/utils"
)

// yamlMeeting is the bulk-import record shape. Times accept both the
// legacy 12-hour form ("9:00AM") and 24-hour "HH:MM".
type yamlMeeting struct {
	ID      string   `yaml:"id"`
	Date    string   `yaml:"date"`
	Start   string   `yaml:"start"`
	End     string   `yaml:"end"`
	Title   string   `yaml:"title"`
	Type    string   `yaml:"type"`
	Board   string   `yaml:"board"`
	Members []string `yaml:"members"`
}

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import meetings from .ics or .yaml files",
	Long: `Examples:
	boardcal import hearings.ics
	boardcal import seed.yaml august.ics`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		dbh, err := store.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		for _, path := range args {
			body, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var meetings []model.Meeting
			var skipped int
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ics":
				meetings, skipped, err = ics.Parse(body, loc)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			case ".yaml", ".yml":
				meetings, skipped, err = parseYAMLMeetings(body, loc)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			default:
				return fmt.Errorf("%s: unsupported format (want .ics, .yaml or .yml)", path)
			}

			imported := 0
			for i := range meetings {
				if err := store.AddMeeting(dbh, &meetings[i]); err != nil {
					skipped++
					continue
				}
				imported++
			}
			fmt.Printf("%s: imported %d, skipped %d\n", path, imported, skipped)
		}
		return nil
	},
}

func parseYAMLMeetings(body []byte, loc *time.Location) ([]model.Meeting, int, error) {
	var records []yamlMeeting
	if err := yaml.Unmarshal(body, &records); err != nil {
		return nil, 0, err
	}

	var meetings []model.Meeting
	skipped := 0
	for _, rec := range records {
		day, err := utils.ParseFlexibleDate(rec.Date, loc)
		if err != nil {
			skipped++
			continue
		}
		start, err := model.ParseClock(rec.Start)
		if err != nil {
			skipped++
			continue
		}
		end, err := model.ParseClock(rec.End)
		if err != nil {
			skipped++
			continue
		}
		m := model.Meeting{
			ID:           rec.ID,
			Date:         day.Format("2006-01-02"),
			DayIndex:     model.LegacyDayUnset,
			StartMinutes: start,
			EndMinutes:   end,
			Title:        rec.Title,
			Type:         model.ParseMeetingType(rec.Type),
			BoardNumber:  rec.Board,
			Members:      rec.Members,
		}
		if err := m.Validate(); err != nil {
			skipped++
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings, skipped, nil
}
