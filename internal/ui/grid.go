package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boardcal/internal/dateview"
	"boardcal/internal/layout"
	"boardcal/internal/model"
	"boardcal/internal/timegrid"
)

const gutterWidth = 9

// renderTimeGrid draws the day/workweek/week body: an hour gutter on the
// left and one column per day, with meeting blocks laid out side by side
// within their overlap clumps.
func (m Model) renderTimeGrid(days []dateview.Day, bodyH int) string {
	start := m.cfg.Grid.StartMinutes()
	end := m.cfg.Grid.EndMinutes()

	dayW := (m.width - gutterWidth) / len(days)
	if dayW < 8 {
		dayW = 8
	}

	rowsPerSlot := m.cfg.Grid.SlotHeight
	if rowsPerSlot < 1 {
		rowsPerSlot = 1
	}
	// Drop to one row per slot rather than scrolling off screen.
	if timegrid.SlotCount(start, end)*rowsPerSlot > bodyH-2 && rowsPerSlot > 1 {
		rowsPerSlot = 1
	}
	totalRows := timegrid.SlotCount(start, end) * rowsPerSlot

	rowOf := func(minutes int) int {
		return (minutes - start) * rowsPerSlot / timegrid.SlotMinutes
	}

	cap := m.columnCap()
	todayISO := dateview.ISODate(m.now)
	nowMin := timegrid.MinutesSinceMidnight(m.now)

	byID := make(map[string]model.Meeting, len(m.meetings))
	for _, mtg := range m.meetings {
		byID[mtg.ID] = mtg
	}

	// Header row with per-day meeting counts.
	header := strings.Repeat(" ", gutterWidth)
	for _, d := range days {
		style := m.styles.dayHeader
		if d.ISO == todayISO {
			style = m.styles.dayToday
		}
		label := d.Label
		if n := len(dateview.FilterForDay(m.meetings, d)); n > 0 {
			label = fmt.Sprintf("%s (%d)", d.Label, n)
		}
		header += style.Width(dayW).Render(label)
	}

	// One rendered column of rows per day.
	cols := make([][]string, len(days))
	for i, d := range days {
		res := layout.Day(dateview.FilterForDay(m.meetings, d), d.ISO, cap, m.expanded)
		cols[i] = m.renderDayColumn(res, byID, dayW, totalRows, rowOf)
		if d.ISO == todayISO && nowMin >= start && nowMin < end {
			r := rowOf(nowMin)
			if r >= 0 && r < totalRows {
				marker := strings.Repeat("━", dayW)
				if dayW > 6 {
					marker = "━ now " + strings.Repeat("━", dayW-6)
				}
				cols[i][r] = m.styles.nowMarker.Render(marker)
			}
		}
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for r := 0; r < totalRows; r++ {
		b.WriteString(m.gutterCell(r, rowsPerSlot, start))
		for i := range days {
			b.WriteString(cols[i][r])
		}
		if r < totalRows-1 {
			b.WriteString("\n")
		}
	}

	grid := b.String()
	if footer := m.renderOverflowFooter(); footer != "" {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, footer)
	}
	return grid
}

func (m Model) gutterCell(row, rowsPerSlot, startMinutes int) string {
	if row%rowsPerSlot != 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	minutes := startMinutes + row/rowsPerSlot*timegrid.SlotMinutes
	label := timegrid.FormatClock(minutes)
	return m.styles.gutter.Width(gutterWidth - 1).Render(label) + " "
}

// renderDayColumn rasterizes one day's placed meetings into fixed-width
// text rows. Clumps never overlap in time, so every row sees at most one
// ColumnCount.
func (m Model) renderDayColumn(res layout.Result, byID map[string]model.Meeting, dayW, totalRows int, rowOf func(int) int) []string {
	type span struct {
		meeting  model.Meeting
		placed   layout.Placed
		rowStart int
		rowEnd   int
	}

	spans := make([]span, 0, len(res.Events))
	for _, p := range res.Events {
		mtg, ok := byID[p.ID]
		if !ok {
			continue
		}
		rs, re := rowOf(mtg.StartMinutes), rowOf(mtg.EndMinutes)
		if re <= rs {
			re = rs + 1
		}
		if rs < 0 {
			rs = 0
		}
		if re > totalRows {
			re = totalRows
		}
		if rs >= totalRows || re <= 0 {
			continue
		}
		spans = append(spans, span{meeting: mtg, placed: p, rowStart: rs, rowEnd: re})
	}

	rows := make([]string, totalRows)
	for r := 0; r < totalRows; r++ {
		active := make([]*span, 0, 4)
		count := 1
		for i := range spans {
			if spans[i].rowStart <= r && r < spans[i].rowEnd {
				active = append(active, &spans[i])
				count = spans[i].placed.ColumnCount
			}
		}
		if len(active) == 0 {
			rows[r] = m.styles.gridLine.Render(strings.Repeat("┄", dayW))
			continue
		}

		laneW := dayW / count
		if laneW < 1 {
			laneW = 1
		}
		var row strings.Builder
		used := 0
		for lane := 0; lane < count && used+laneW <= dayW; lane++ {
			var cell string
			for _, sp := range active {
				if sp.placed.ColumnIndex == lane {
					text := m.blockLine(sp.meeting, r-sp.rowStart, laneW)
					cell = m.styles.blockStyle(sp.meeting.Type).Render(text)
					break
				}
			}
			if cell == "" {
				cell = strings.Repeat(" ", laneW)
			}
			row.WriteString(cell)
			used += laneW
		}
		if used < dayW {
			row.WriteString(strings.Repeat(" ", dayW-used))
		}
		rows[r] = row.String()
	}
	return rows
}

// blockLine picks the text for one row of a meeting block: time span,
// then title, then board and members, then blank fill.
func (m Model) blockLine(mtg model.Meeting, line, w int) string {
	var s string
	switch line {
	case 0:
		s = fmt.Sprintf("%s–%s", timegrid.FormatClock(mtg.StartMinutes), timegrid.FormatClock(mtg.EndMinutes))
	case 1:
		s = mtg.Title
	case 2:
		s = mtg.BoardNumber
	case 3:
		s = model.JoinMembers(mtg.Members)
	}
	return padTrunc(s, w)
}

func (m Model) renderOverflowFooter() string {
	if len(m.groups) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.groups))
	for i, g := range m.groups {
		label := fmt.Sprintf("[%d] %s %s–%s", i+1, g.day.Label,
			timegrid.FormatClock(g.group.StartMinutes), timegrid.FormatClock(g.group.EndMinutes))
		if g.group.Expanded {
			label += " expanded"
		} else {
			label += fmt.Sprintf(" %s", m.styles.countBadge.Render(fmt.Sprintf("+%d more", len(g.group.HiddenIDs))))
		}
		parts = append(parts, m.styles.overflowBar.Render(label))
	}
	return strings.Join(parts, "   ")
}

func padTrunc(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		if w <= 1 {
			return string(r[:w])
		}
		return string(r[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-len(r))
}
