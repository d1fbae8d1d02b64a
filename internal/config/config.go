package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GridConfig bounds the rendered time window. Times are 24-hour "HH:MM"
// on a 30-minute boundary.
type GridConfig struct {
	Start      string `mapstructure:"start"`       // "08:00"
	End        string `mapstructure:"end"`         // "16:30"
	SlotHeight int    `mapstructure:"slot_height"` // rows per 30-minute slot
}

type ReminderConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	LeadMinutes int    `mapstructure:"lead_minutes"`
	Timezone    string `mapstructure:"timezone"` // e.g. "Australia/Brisbane" (optional)
}

type Config struct {
	DefaultView string         `mapstructure:"default_view"` // day|workweek|week|month
	Grid        GridConfig     `mapstructure:"grid"`
	Reminder    ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		DefaultView: "workweek",
		Grid: GridConfig{
			Start:      "08:00",
			End:        "16:30",
			SlotHeight: 2,
		},
		Reminder: ReminderConfig{
			Enabled:     false,
			LeadMinutes: 15,
			Timezone:    "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "boardcal")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("default_view", cfg.DefaultView)
	v.SetDefault("grid.start", cfg.Grid.Start)
	v.SetDefault("grid.end", cfg.Grid.End)
	v.SetDefault("grid.slot_height", cfg.Grid.SlotHeight)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.lead_minutes", cfg.Reminder.LeadMinutes)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	if cfg.Grid.SlotHeight < 1 {
		cfg.Grid.SlotHeight = 1
	}
	return cfg, nil
}

// parseHHMM returns minutes since midnight, or fallback on bad input.
func parseHHMM(s string, fallback int) int {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return t.Hour()*60 + t.Minute()
}

// StartMinutes returns the grid window start as minutes since midnight.
func (g GridConfig) StartMinutes() int { return parseHHMM(g.Start, 8*60) }

// EndMinutes returns the grid window end as minutes since midnight. A
// window that does not extend past the start falls back to the default.
func (g GridConfig) EndMinutes() int {
	end := parseHHMM(g.End, 16*60+30)
	if end <= g.StartMinutes() {
		return 16*60 + 30
	}
	return end
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
