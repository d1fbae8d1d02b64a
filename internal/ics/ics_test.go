package ics

import (
	"strings"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:hearing-1
SUMMARY:Suspension Hearing
CATEGORIES:Suspensions
X-BOARD-NUMBER:1041
ATTENDEE;CN=Singh:mailto:singh@example.org
ATTENDEE;CN=Brown:mailto:brown@example.org
DTSTART:20240807T110000
DTEND:20240807T120000
END:VEVENT
BEGIN:VEVENT
UID:allday-1
SUMMARY:Office closed
DTSTART;VALUE=DATE:20240808
DTEND;VALUE=DATE:20240809
END:VEVENT
BEGIN:VEVENT
UID:overnight-1
SUMMARY:Midnight span
DTSTART:20240807T230000
DTEND:20240808T010000
END:VEVENT
END:VCALENDAR
`

func TestParse(t *testing.T) {
	meetings, skipped, err := Parse([]byte(strings.ReplaceAll(sampleICS, "\n", "\r\n")), time.Local)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 importable meeting, got %d", len(meetings))
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped (all-day, overnight), got %d", skipped)
	}

	m := meetings[0]
	if m.ID != "hearing-1" || m.Title != "Suspension Hearing" {
		t.Errorf("identity mismatch: %+v", m)
	}
	if m.Date != "2024-08-07" || m.StartMinutes != 660 || m.EndMinutes != 720 {
		t.Errorf("time mapping = %s %d-%d", m.Date, m.StartMinutes, m.EndMinutes)
	}
	if string(m.Type) != "Suspensions" {
		t.Errorf("type = %s", m.Type)
	}
	if m.BoardNumber != "1041" {
		t.Errorf("board number = %q", m.BoardNumber)
	}
	if len(m.Members) != 2 || m.Members[0] != "Singh" {
		t.Errorf("members = %v", m.Members)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, _, err := Parse(nil, time.Local); err == nil {
		t.Fatal("empty body should error")
	}
}
