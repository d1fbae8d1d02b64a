package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MeetingType is the closed set of board meeting categories. Unknown
// values render with the default styling but are preserved as stored.
type MeetingType string

const (
	TypeGeneral     MeetingType = "General"
	TypeSuspensions MeetingType = "Suspensions"
	TypeReviews     MeetingType = "Reviews"
)

// KnownTypes lists the selectable meeting types in display order.
var KnownTypes = []MeetingType{TypeGeneral, TypeSuspensions, TypeReviews}

// ParseMeetingType normalizes a free-form type string. Anything outside
// the closed set falls back to General.
func ParseMeetingType(s string) MeetingType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general":
		return TypeGeneral
	case "suspensions", "suspension":
		return TypeSuspensions
	case "reviews", "review":
		return TypeReviews
	}
	return TypeGeneral
}

// LegacyDayUnset marks a meeting that carries no legacy weekday index.
const LegacyDayUnset = -1

// Meeting is one scheduled board meeting. Either Date (ISO YYYY-MM-DD)
// or the legacy Monday-first DayIndex (0=Mon..4=Fri) locates it on the
// calendar; new records always carry Date.
type Meeting struct {
	ID           string
	Date         string
	DayIndex     int
	StartMinutes int
	EndMinutes   int
	Title        string
	Type         MeetingType
	BoardNumber  string
	Members      []string
}

// Duration returns the meeting length in minutes.
func (m Meeting) Duration() int { return m.EndMinutes - m.StartMinutes }

// HasDate reports whether the meeting carries an explicit calendar date.
func (m Meeting) HasDate() bool { return m.Date != "" }

// Validate checks the invariants every meeting must satisfy before it
// reaches the layout engine. It rejects the single record, not a batch.
func (m Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("meeting title is required")
	}
	if m.StartMinutes < 0 || m.StartMinutes >= 24*60 {
		return fmt.Errorf("start minutes %d out of range", m.StartMinutes)
	}
	if m.EndMinutes <= m.StartMinutes || m.EndMinutes >= 24*60 {
		return fmt.Errorf("end minutes %d must be after start %d and within the day", m.EndMinutes, m.StartMinutes)
	}
	if m.Date != "" {
		if _, err := time.Parse("2006-01-02", m.Date); err != nil {
			return fmt.Errorf("invalid date %q: %w", m.Date, err)
		}
	} else if m.DayIndex != LegacyDayUnset && (m.DayIndex < 0 || m.DayIndex > 4) {
		return fmt.Errorf("legacy day index %d outside Mon-Fri range", m.DayIndex)
	}
	return nil
}

var clock12Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ParseClock parses a wall-clock time into minutes since midnight.
// Both the legacy 12-hour form ("9:00AM") and 24-hour "HH:MM" are
// accepted.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if m := clock12Re.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
		if m[3] == "PM" && hour != 12 {
			hour += 12
		}
		if m[3] == "AM" && hour == 12 {
			hour = 0
		}
		return hour*60 + minute, nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	return 0, fmt.Errorf("invalid clock time %q", s)
}

// SplitMembers splits a comma-separated member list preserving order
// and dropping empties.
func SplitMembers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	members := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			members = append(members, p)
		}
	}
	return members
}

// JoinMembers is the inverse of SplitMembers, used for storage.
func JoinMembers(members []string) string { return strings.Join(members, ", ") }
