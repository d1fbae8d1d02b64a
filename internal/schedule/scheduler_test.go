package schedule

import (
	"testing"
	"time"

	"boardcal/internal/model"
)

func TestNextReminder(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 8, 7, 8, 0, 0, 0, loc)

	meetings := []model.Meeting{
		{ID: "past", Date: "2024-08-07", DayIndex: model.LegacyDayUnset, StartMinutes: 480, EndMinutes: 540, Title: "already started"},
		{ID: "soon", Date: "2024-08-07", DayIndex: model.LegacyDayUnset, StartMinutes: 540, EndMinutes: 630, Title: "nine o'clock"},
		{ID: "later", Date: "2024-08-07", DayIndex: model.LegacyDayUnset, StartMinutes: 780, EndMinutes: 840, Title: "afternoon"},
		{ID: "legacy", DayIndex: 2, StartMinutes: 510, EndMinutes: 570, Title: "undated"},
	}

	at, m, ok := NextReminder(now, meetings, 15, loc)
	if !ok {
		t.Fatal("expected a reminder")
	}
	if m.ID != "soon" {
		t.Errorf("next = %s, want soon", m.ID)
	}
	want := time.Date(2024, 8, 7, 8, 45, 0, 0, loc)
	if !at.Equal(want) {
		t.Errorf("reminder at %s, want %s", at, want)
	}
}

func TestNextReminderNoneScheduled(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 8, 7, 18, 0, 0, 0, loc)
	meetings := []model.Meeting{
		{ID: "gone", Date: "2024-08-07", DayIndex: model.LegacyDayUnset, StartMinutes: 540, EndMinutes: 630, Title: "over"},
	}
	if _, _, ok := NextReminder(now, meetings, 15, loc); ok {
		t.Fatal("no reminder should remain after the day's meetings")
	}
	if _, _, ok := NextReminder(now, nil, 15, loc); ok {
		t.Fatal("empty schedule yields no reminder")
	}
}
