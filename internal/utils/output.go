package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boardcal/internal/dateview"
	"boardcal/internal/model"
	"boardcal/internal/timegrid"
)

// OutputFormat selects how `boardcal list` renders a resolved range.
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// RenderConfig configures the list renderer.
type RenderConfig struct {
	Format OutputFormat
	Color  bool
}

func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{Format: FormatDefault, Color: true}
}

// Renderer renders resolved days and their meetings.
type Renderer struct {
	cfg       *RenderConfig
	dayStyle  lipgloss.Style
	timeStyle lipgloss.Style
	typeStyle map[model.MeetingType]lipgloss.Style
	dimStyle  lipgloss.Style
}

func NewRenderer(cfg *RenderConfig) *Renderer {
	r := &Renderer{
		cfg:       cfg,
		dayStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),
		timeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		dimStyle:  lipgloss.NewStyle().Faint(true),
		typeStyle: map[model.MeetingType]lipgloss.Style{
			model.TypeGeneral:     lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
			model.TypeSuspensions: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
			model.TypeReviews:     lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		},
	}
	if !cfg.Color {
		plain := lipgloss.NewStyle()
		r.dayStyle, r.timeStyle, r.dimStyle = plain, plain, plain
		for k := range r.typeStyle {
			r.typeStyle[k] = plain
		}
	}
	return r
}

type meetingRecord struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	StartMinutes int      `json:"start_minutes"`
	EndMinutes   int      `json:"end_minutes"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	BoardNumber  string   `json:"board_number,omitempty"`
	Members      []string `json:"members,omitempty"`
}

func record(day dateview.Day, m model.Meeting) meetingRecord {
	return meetingRecord{
		ID:           m.ID,
		Date:         day.ISO,
		StartMinutes: m.StartMinutes,
		EndMinutes:   m.EndMinutes,
		Start:        timegrid.FormatClock(m.StartMinutes),
		End:          timegrid.FormatClock(m.EndMinutes),
		Title:        m.Title,
		Type:         string(m.Type),
		BoardNumber:  m.BoardNumber,
		Members:      m.Members,
	}
}

// RenderRange renders every resolved day with its meetings. Legacy
// undated records land on the matching weekday of the displayed range.
func (r *Renderer) RenderRange(days []dateview.Day, meetings []model.Meeting) (string, error) {
	switch r.cfg.Format {
	case FormatJSON:
		return r.renderJSON(days, meetings)
	case FormatCSV:
		return r.renderCSV(days, meetings)
	case FormatTable:
		return r.renderTable(days, meetings), nil
	}
	return r.renderDefault(days, meetings), nil
}

func (r *Renderer) renderDefault(days []dateview.Day, meetings []model.Meeting) string {
	var b strings.Builder
	total := 0
	for _, day := range days {
		dayMeetings := dateview.FilterForDay(meetings, day)
		if len(dayMeetings) == 0 {
			continue
		}
		total += len(dayMeetings)
		b.WriteString(r.dayStyle.Render(fmt.Sprintf("%s (%s)", day.Label, day.ISO)))
		b.WriteString("\n")
		for _, m := range dayMeetings {
			span := fmt.Sprintf("%s–%s", timegrid.FormatClock(m.StartMinutes), timegrid.FormatClock(m.EndMinutes))
			line := fmt.Sprintf("  %s  %s  %s",
				r.timeStyle.Render(fmt.Sprintf("%-17s", span)),
				r.styleFor(m.Type).Render(fmt.Sprintf("%-11s", string(m.Type))),
				m.Title)
			if m.BoardNumber != "" {
				line += r.dimStyle.Render(fmt.Sprintf("  Board #%s", m.BoardNumber))
			}
			if len(m.Members) > 0 {
				line += r.dimStyle.Render("  " + model.JoinMembers(m.Members))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if total == 0 {
		return r.dimStyle.Render("No meetings in this range.") + "\n"
	}
	b.WriteString(r.dimStyle.Render(fmt.Sprintf("%d meeting(s)", total)))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderTable(days []dateview.Day, meetings []model.Meeting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-12s %-9s %-9s %-11s %-30s %-8s %s\n",
		"DATE", "ID", "START", "END", "TYPE", "TITLE", "BOARD", "MEMBERS")
	for _, day := range days {
		for _, m := range dateview.FilterForDay(meetings, day) {
			title := m.Title
			if len(title) > 30 {
				title = title[:27] + "..."
			}
			fmt.Fprintf(&b, "%-10s %-12s %-9s %-9s %-11s %-30s %-8s %s\n",
				day.ISO, m.ID,
				timegrid.FormatClock(m.StartMinutes), timegrid.FormatClock(m.EndMinutes),
				string(m.Type), title, m.BoardNumber, model.JoinMembers(m.Members))
		}
	}
	return b.String()
}

func (r *Renderer) renderJSON(days []dateview.Day, meetings []model.Meeting) (string, error) {
	records := make([]meetingRecord, 0)
	for _, day := range days {
		for _, m := range dateview.FilterForDay(meetings, day) {
			records = append(records, record(day, m))
		}
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

func (r *Renderer) renderCSV(days []dateview.Day, meetings []model.Meeting) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"date", "id", "start", "end", "type", "title", "board_number", "members"}); err != nil {
		return "", err
	}
	for _, day := range days {
		for _, m := range dateview.FilterForDay(meetings, day) {
			row := []string{
				day.ISO, m.ID,
				timegrid.FormatClock(m.StartMinutes), timegrid.FormatClock(m.EndMinutes),
				string(m.Type), m.Title, m.BoardNumber, model.JoinMembers(m.Members),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func (r *Renderer) styleFor(t model.MeetingType) lipgloss.Style {
	if s, ok := r.typeStyle[t]; ok {
		return s
	}
	return r.dimStyle
}
