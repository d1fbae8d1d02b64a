// Package dateview resolves a (view mode, anchor date) pair into the
// ordered list of calendar days to display, and computes the
// previous/next/today navigation targets per view mode.
package dateview

import (
	"fmt"
	"time"

	"boardcal/internal/model"
)

// ViewMode selects how many days the calendar shows around the anchor.
type ViewMode string

const (
	ViewDay      ViewMode = "day"
	ViewWorkweek ViewMode = "workweek"
	ViewWeek     ViewMode = "week"
	ViewMonth    ViewMode = "month"
)

// Modes lists the view modes in toggle order.
var Modes = []ViewMode{ViewDay, ViewWorkweek, ViewWeek, ViewMonth}

// ParseViewMode maps a string to a view mode. Unknown values fall back
// to the workweek view.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewDay, ViewWorkweek, ViewWeek, ViewMonth:
		return ViewMode(s)
	}
	return ViewWorkweek
}

// Direction is a navigation step.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Day is one resolved calendar day. ISO is the canonical key meetings
// are matched against; Label is the short column header.
type Day struct {
	Date  time.Time
	ISO   string
	Label string
}

// ISODate formats t as the canonical YYYY-MM-DD key.
func ISODate(t time.Time) string { return t.Format("2006-01-02") }

// ParseISODate parses a canonical date key in loc.
func ParseISODate(iso string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", iso, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", iso, err)
	}
	return t, nil
}

// mondayIndex converts Go's Sunday-first weekday to Monday-first 0..6.
func mondayIndex(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

// StartOfWeekMonday returns the Monday on or before t, at midnight.
func StartOfWeekMonday(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return d.AddDate(0, 0, -mondayIndex(d))
}

// StartOfMonth returns the first day of t's month, at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DayLabel renders the short day header, e.g. "Wed 07/08".
func DayLabel(t time.Time) string {
	dows := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	return fmt.Sprintf("%s %02d/%02d", dows[mondayIndex(t)], t.Day(), int(t.Month()))
}

func makeDay(t time.Time) Day {
	return Day{Date: t, ISO: ISODate(t), Label: DayLabel(t)}
}

// ResolveDays produces the ordered day list for the given view mode:
// 1 day, Mon-Fri, Mon-Sun, or the fixed 42-cell month grid starting
// from the Monday on or before the first of the anchor's month.
func ResolveDays(mode ViewMode, anchor time.Time) []Day {
	switch mode {
	case ViewDay:
		return []Day{makeDay(anchor)}
	case ViewWeek:
		return weekDays(anchor, 7)
	case ViewMonth:
		start := StartOfWeekMonday(StartOfMonth(anchor))
		days := make([]Day, 0, 42)
		for i := 0; i < 42; i++ {
			days = append(days, makeDay(start.AddDate(0, 0, i)))
		}
		return days
	}
	return weekDays(anchor, 5)
}

func weekDays(anchor time.Time, n int) []Day {
	start := StartOfWeekMonday(anchor)
	days := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, makeDay(start.AddDate(0, 0, i)))
	}
	return days
}

// Navigate computes the new anchor date one step before or after the
// current one. Month steps normalize to the first of the month so that
// e.g. Jan 31 minus one month lands in December, not March.
func Navigate(mode ViewMode, anchor time.Time, dir Direction) time.Time {
	step := 1
	if dir == Previous {
		step = -1
	}
	switch mode {
	case ViewDay:
		return anchor.AddDate(0, 0, step)
	case ViewMonth:
		return StartOfMonth(anchor).AddDate(0, step, 0)
	}
	return anchor.AddDate(0, 0, 7*step)
}

// Today returns the current date at midnight in loc.
func Today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// MatchesDay reports whether a meeting belongs on the given day. Dated
// meetings match by ISO key. Legacy records carrying only a Monday-first
// weekday index land on the matching Mon-Fri day of the displayed week;
// an index outside 0..4 never matches anywhere rather than being guessed
// onto a wrong day.
func MatchesDay(m model.Meeting, d Day) bool {
	if m.HasDate() {
		return m.Date == d.ISO
	}
	if m.DayIndex < 0 || m.DayIndex > 4 {
		return false
	}
	return m.DayIndex == mondayIndex(d.Date)
}

// FilterForDay returns the meetings that belong on d, preserving order.
func FilterForDay(meetings []model.Meeting, d Day) []model.Meeting {
	var out []model.Meeting
	for _, m := range meetings {
		if MatchesDay(m, d) {
			out = append(out, m)
		}
	}
	return out
}

// RangeLabel renders the navigation header for the current view, e.g.
// "Wed, 07 Aug 2024", "August 5–9, 2024" or "August 2024".
func RangeLabel(mode ViewMode, anchor time.Time) string {
	dows := [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	switch mode {
	case ViewDay:
		return fmt.Sprintf("%s, %02d %s %d", dows[int(anchor.Weekday())], anchor.Day(), anchor.Month().String()[:3], anchor.Year())
	case ViewMonth:
		return fmt.Sprintf("%s %d", anchor.Month(), anchor.Year())
	}
	length := 5
	if mode == ViewWeek {
		length = 7
	}
	start := StartOfWeekMonday(anchor)
	end := start.AddDate(0, 0, length-1)
	if start.Month() == end.Month() {
		return fmt.Sprintf("%s %d–%d, %d", start.Month(), start.Day(), end.Day(), end.Year())
	}
	return fmt.Sprintf("%s %d – %s %d, %d", start.Month(), start.Day(), end.Month(), end.Day(), end.Year())
}
