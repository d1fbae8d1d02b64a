package ui

import (
	"github.com/charmbracelet/lipgloss"

	"boardcal/internal/model"
)

type theme struct {
	topBar    lipgloss.Style
	statusBar lipgloss.Style

	dayHeader lipgloss.Style
	dayToday  lipgloss.Style
	gutter    lipgloss.Style
	gridLine  lipgloss.Style
	nowMarker lipgloss.Style

	blocks       map[model.MeetingType]lipgloss.Style
	blockDefault lipgloss.Style

	overflowBar lipgloss.Style
	countBadge  lipgloss.Style

	monthCell    lipgloss.Style
	monthCellDim lipgloss.Style
	monthToday   lipgloss.Style
	monthDayNum  lipgloss.Style

	modalBox   lipgloss.Style
	modalTitle lipgloss.Style
	hint       lipgloss.Style
	errText    lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		topBar:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4")).Background(lipgloss.Color("#313244")).Padding(0, 1),
		statusBar: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#A6ADC8")),

		dayHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")).Align(lipgloss.Center),
		dayToday:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")).Align(lipgloss.Center),
		gutter:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#A6ADC8")).Align(lipgloss.Right),
		gridLine:  lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#45475A")),
		nowMarker: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),

		blocks: map[model.MeetingType]lipgloss.Style{
			model.TypeGeneral:     lipgloss.NewStyle().Foreground(lipgloss.Color("#11111B")).Background(lipgloss.Color("#89B4FA")),
			model.TypeSuspensions: lipgloss.NewStyle().Foreground(lipgloss.Color("#11111B")).Background(lipgloss.Color("#F38BA8")),
			model.TypeReviews:     lipgloss.NewStyle().Foreground(lipgloss.Color("#11111B")).Background(lipgloss.Color("#A6E3A1")),
		},
		blockDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("#11111B")).Background(lipgloss.Color("#9399B2")),

		overflowBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		countBadge:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),

		monthCell:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#45475A")),
		monthCellDim: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#313244")).Faint(true),
		monthToday:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#F38BA8")),
		monthDayNum:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4")),

		modalBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(1, 2),
		modalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		hint:       lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		errText:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}

func (t theme) blockStyle(mt model.MeetingType) lipgloss.Style {
	if s, ok := t.blocks[mt]; ok {
		return s
	}
	return t.blockDefault
}
