package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boardcal/internal/dateview"
	"boardcal/internal/timegrid"
)

// renderMonth draws the fixed 6x7 month grid. Each cell lists as many
// meetings as fit, collapsing the rest into a "+n more" line.
func (m Model) renderMonth(days []dateview.Day, bodyH int) string {
	cellW := m.width / 7
	if cellW < 6 {
		cellW = 6
	}
	cellH := bodyH / 6
	if cellH < 3 {
		cellH = 3
	}
	innerW := cellW - 2
	innerH := cellH - 2

	todayISO := dateview.ISODate(m.now)
	month := m.anchor.Month()

	weeks := make([]string, 0, 6)
	for w := 0; w < 6; w++ {
		cells := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			d := days[w*7+i]
			cells = append(cells, m.renderMonthCell(d, month == d.Date.Month(), d.ISO == todayISO, innerW, innerH))
		}
		weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, weeks...)
}

func (m Model) renderMonthCell(d dateview.Day, inMonth, isToday bool, w, h int) string {
	style := m.styles.monthCell
	if !inMonth {
		style = m.styles.monthCellDim
	}
	if isToday {
		style = m.styles.monthToday
	}

	lines := make([]string, 0, h)
	lines = append(lines, m.styles.monthDayNum.Render(fmt.Sprintf("%2d", d.Date.Day())))

	meetings := dateview.FilterForDay(m.meetings, d)
	slots := h - 1
	for i, mtg := range meetings {
		if i == slots-1 && len(meetings) > slots {
			lines = append(lines, m.styles.countBadge.Render(padTrunc(fmt.Sprintf("+%d more", len(meetings)-i), w)))
			break
		}
		if i >= slots {
			break
		}
		entry := fmt.Sprintf("%s %s", timegrid.FormatClock(mtg.StartMinutes), mtg.Title)
		lines = append(lines, m.styles.blockStyle(mtg.Type).Render(padTrunc(entry, w)))
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}

	return style.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}
