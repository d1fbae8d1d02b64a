package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"boardcal/internal/model"
	"boardcal/internal/utils"
)

const (
	fieldTitle = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldType
	fieldBoard
	fieldMembers
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title", "Date", "Start", "End", "Type", "Board", "Members",
}

type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

func newAddForm() addForm {
	var f addForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Placeholder = "Board hearing"
	f.inputs[fieldDate].Placeholder = "2024-08-07, tomorrow, friday"
	f.inputs[fieldStart].Placeholder = "9:00AM or 09:00"
	f.inputs[fieldEnd].Placeholder = "10:30AM or 10:30"
	f.inputs[fieldType].Placeholder = "General, Suspensions or Reviews"
	f.inputs[fieldBoard].Placeholder = "Board 2"
	f.inputs[fieldMembers].Placeholder = "comma-separated names"
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *addForm) setDefaults(anchor time.Time) {
	f.inputs[fieldDate].SetValue(anchor.Format("2006-01-02"))
}

func (f *addForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *addForm) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *addForm) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *addForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f *addForm) onLastField() bool {
	return f.focus == fieldCount-1
}

func (f addForm) update(msg tea.KeyMsg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// meeting builds and validates a meeting from the current field values.
func (f addForm) meeting(loc *time.Location) (model.Meeting, error) {
	var m model.Meeting

	day, err := utils.ParseFlexibleDate(strings.TrimSpace(f.inputs[fieldDate].Value()), loc)
	if err != nil {
		return m, err
	}
	start, err := model.ParseClock(strings.TrimSpace(f.inputs[fieldStart].Value()))
	if err != nil {
		return m, err
	}
	end, err := model.ParseClock(strings.TrimSpace(f.inputs[fieldEnd].Value()))
	if err != nil {
		return m, err
	}
	if end <= start {
		return m, errors.New("end must be after start")
	}

	m = model.Meeting{
		Date:         day.Format("2006-01-02"),
		DayIndex:     model.LegacyDayUnset,
		StartMinutes: start,
		EndMinutes:   end,
		Title:        strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Type:         model.ParseMeetingType(strings.TrimSpace(f.inputs[fieldType].Value())),
		BoardNumber:  strings.TrimSpace(f.inputs[fieldBoard].Value()),
		Members:      model.SplitMembers(f.inputs[fieldMembers].Value()),
	}
	return m, m.Validate()
}

func (f addForm) view(t theme) string {
	var b strings.Builder
	b.WriteString(t.modalTitle.Render("New meeting"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			b.WriteString(t.countBadge.Render("▸ " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.err != nil {
		b.WriteString("\n" + t.errText.Render(f.err.Error()))
	}
	b.WriteString("\n" + t.hint.Render("tab/shift+tab move · enter on Members saves · esc cancels"))
	return t.modalBox.Render(b.String())
}
