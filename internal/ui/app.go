package ui

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boardcal/internal/config"
	"boardcal/internal/dateview"
	"boardcal/internal/layout"
	"boardcal/internal/model"
	"boardcal/internal/store"
	"boardcal/internal/timegrid"
	"boardcal/internal/version"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeOverflow
	modeHelp
)

// Approximate pixels per terminal cell, used to map the terminal width
// onto the pixel breakpoints the column cap is defined over.
const pxPerCell = 10

// The now marker refresh cadence; 30s is plenty for a 30-minute grid.
const tickInterval = 30 * time.Second

type Model struct {
	db  *sql.DB
	cfg config.Config
	loc *time.Location

	width, height int
	now           time.Time

	view   dateview.ViewMode
	anchor time.Time

	meetings []model.Meeting
	expanded layout.ExpandedSet
	// overflow groups of the last render, in display order; digit keys
	// toggle by position in this slice
	groups []dayGroup

	mode   mode
	form   addForm
	status string
	err    error

	styles theme
}

// dayGroup ties an overflow group to the day it was laid out for.
type dayGroup struct {
	day   dateview.Day
	group layout.OverflowGroup
}

func Run(dbh *sql.DB) error {
	cfg, _ := config.Load()
	loc := cfg.Location()

	m := Model{
		db:       dbh,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now().In(loc),
		view:     dateview.ParseViewMode(cfg.DefaultView),
		anchor:   dateview.Today(loc),
		expanded: layout.ExpandedSet{},
		form:     newAddForm(),
		styles:   defaultTheme(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickNow(), m.loadMeetingsCmd())
}

// ---------- messages & commands ----------

type tickMsg struct{ now time.Time }

func tickNow() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

type meetingsLoadedMsg struct {
	meetings []model.Meeting
	err      error
}

func (m Model) loadMeetingsCmd() tea.Cmd {
	days := dateview.ResolveDays(m.view, m.anchor)
	from, to := days[0].ISO, days[len(days)-1].ISO
	dbh := m.db
	return func() tea.Msg {
		meetings, err := store.MeetingsBetween(dbh, from, to)
		return meetingsLoadedMsg{meetings: meetings, err: err}
	}
}

// ---------- update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.groups = m.computeGroups()
		return m, nil

	case tickMsg:
		m.now = msg.now.In(m.loc)
		return m, tickNow()

	case meetingsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.meetings = msg.meetings
			m.groups = m.computeGroups()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeOverflow, modeHelp:
			if k := msg.String(); k == "esc" || k == "q" || k == "o" || k == "?" {
				m.mode = modeNormal
			}
			return m, nil
		}
		return m.updateNormal(msg.String())
	}
	return m, nil
}

func (m Model) updateNormal(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "v":
		for i, mode := range dateview.Modes {
			if mode == m.view {
				m.view = dateview.Modes[(i+1)%len(dateview.Modes)]
				break
			}
		}
		m.status = fmt.Sprintf("View: %s", m.view)
		m.groups = m.computeGroups()
		return m, m.loadMeetingsCmd()

	case "left", "h":
		m.anchor = dateview.Navigate(m.view, m.anchor, dateview.Previous)
		m.groups = m.computeGroups()
		return m, m.loadMeetingsCmd()

	case "right", "l":
		m.anchor = dateview.Navigate(m.view, m.anchor, dateview.Next)
		m.groups = m.computeGroups()
		return m, m.loadMeetingsCmd()

	case "t":
		m.anchor = dateview.Today(m.loc)
		m.groups = m.computeGroups()
		return m, m.loadMeetingsCmd()

	case "a":
		m.mode = modeAdd
		m.form = newAddForm()
		m.form.setDefaults(m.anchor)
		return m, m.form.focusCmd()

	case "o":
		if len(m.groups) > 0 {
			m.mode = modeOverflow
		}
		return m, nil

	case "r":
		return m, m.loadMeetingsCmd()

	case "?":
		m.mode = modeHelp
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(k)
		if idx >= 1 && idx <= len(m.groups) {
			g := m.groups[idx-1]
			m.expanded.Toggle(g.group.ClumpID)
			m.groups = m.computeGroups()
			if m.expanded.Has(g.group.ClumpID) {
				m.status = fmt.Sprintf("Expanded %s %s–%s", g.day.Label,
					timegrid.FormatClock(g.group.StartMinutes), timegrid.FormatClock(g.group.EndMinutes))
			} else {
				m.status = fmt.Sprintf("Collapsed %s %s–%s", g.day.Label,
					timegrid.FormatClock(g.group.StartMinutes), timegrid.FormatClock(g.group.EndMinutes))
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return m, nil
	case "tab", "down":
		cmd := m.form.next()
		return m, cmd
	case "shift+tab", "up":
		cmd := m.form.prev()
		return m, cmd
	case "enter":
		if !m.form.onLastField() {
			cmd := m.form.next()
			return m, cmd
		}
		meeting, err := m.form.meeting(m.loc)
		if err != nil {
			m.form.err = err
			return m, nil
		}
		if err := store.AddMeeting(m.db, &meeting); err != nil {
			m.form.err = err
			return m, nil
		}
		m.mode = modeNormal
		m.status = fmt.Sprintf("Added %s", meeting.Title)
		return m, m.loadMeetingsCmd()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// columnCap derives the visible column cap from the terminal width.
func (m Model) columnCap() int {
	return layout.MaxVisibleColumns(m.width * pxPerCell)
}

// computeGroups rebuilds the day-ordered overflow group list the digit
// keys index into. Month view collapses nothing, so it has no groups.
func (m Model) computeGroups() []dayGroup {
	if m.view == dateview.ViewMonth {
		return nil
	}
	days := dateview.ResolveDays(m.view, m.anchor)
	cap := m.columnCap()
	var groups []dayGroup
	for _, d := range days {
		res := layout.Day(dateview.FilterForDay(m.meetings, d), d.ISO, cap, m.expanded)
		for _, g := range res.Overflow {
			groups = append(groups, dayGroup{day: d, group: g})
		}
	}
	return groups
}

// ---------- view ----------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	top := m.renderTopBar()
	status := m.renderStatusBar()

	bodyH := m.height - lipgloss.Height(top) - lipgloss.Height(status)
	if bodyH < 8 {
		bodyH = 8
	}

	var body string
	days := dateview.ResolveDays(m.view, m.anchor)
	if m.view == dateview.ViewMonth {
		body = m.renderMonth(days, bodyH)
	} else {
		body = m.renderTimeGrid(days, bodyH)
	}

	ui := lipgloss.JoinVertical(lipgloss.Left, top, body, status)

	switch m.mode {
	case modeAdd:
		ui = m.overlayCenter(m.form.view(m.styles))
	case modeOverflow:
		ui = m.overlayCenter(m.renderOverflowModal())
	case modeHelp:
		ui = m.overlayCenter(m.helpView())
	}
	return ui
}

func (m Model) overlayCenter(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderTopBar() string {
	title := "Parole Board — Meeting Capture"
	label := dateview.RangeLabel(m.view, m.anchor)
	right := fmt.Sprintf("%s · %s", label, m.view)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	line := title + lipgloss.NewStyle().Width(gap).Render("") + right
	return m.styles.topBar.Width(m.width).Render(line)
}

func (m Model) renderStatusBar() string {
	hints := "h/l nav · t today · v view · a add · 1-9 expand · o overflow · ? help · q quit"
	line := hints
	if m.status != "" {
		line = m.status + "  ·  " + hints
	}
	if m.err != nil {
		line = m.styles.errText.Render(m.err.Error()) + "  " + hints
	}
	bar := m.styles.statusBar.Width(m.width).Render(truncate(line, m.width))
	return bar
}

func (m Model) renderOverflowModal() string {
	byID := make(map[string]model.Meeting, len(m.meetings))
	for _, mtg := range m.meetings {
		byID[mtg.ID] = mtg
	}

	content := m.styles.modalTitle.Render("Overlapping meetings") + "\n\n"
	for i, g := range m.groups {
		header := fmt.Sprintf("[%d] %s  %s–%s", i+1, g.day.Label,
			timegrid.FormatClock(g.group.StartMinutes), timegrid.FormatClock(g.group.EndMinutes))
		if g.group.Expanded {
			header += "  (expanded)"
		}
		content += m.styles.overflowBar.Render(header) + "\n"
		for _, id := range g.group.HiddenIDs {
			if mtg, ok := byID[id]; ok {
				content += fmt.Sprintf("    %s–%s  %s\n",
					timegrid.FormatClock(mtg.StartMinutes), timegrid.FormatClock(mtg.EndMinutes), mtg.Title)
			}
		}
		if len(g.group.HiddenIDs) == 0 {
			content += m.styles.hint.Render("    all visible") + "\n"
		}
	}
	content += "\n" + m.styles.hint.Render("Press the group number to expand/collapse · esc to close")
	return m.styles.modalBox.Render(content)
}

func (m Model) helpView() string {
	content := m.styles.modalTitle.Render(version.GetShortVersion()) + "\n\n" +
		"h / ←        previous day, week or month\n" +
		"l / →        next day, week or month\n" +
		"t            jump to today\n" +
		"v            cycle view (day, workweek, week, month)\n" +
		"a            add a meeting\n" +
		"1-9          expand/collapse an overlap group\n" +
		"o            list hidden overlapping meetings\n" +
		"r            reload meetings\n" +
		"q            quit\n"
	return m.styles.modalBox.Render(content)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
