package utils

import (
	"testing"
	"time"
)

func TestParseFlexibleDateCalendarFormats(t *testing.T) {
	loc := time.Local
	cases := map[string]string{
		"2024-08-07":  "2024-08-07",
		"2024/08/07":  "2024-08-07",
		"07/08/2024":  "2024-08-07",
		"aug 7, 2024": "2024-08-07",
		"7 aug 2024":  "2024-08-07",
	}
	for in, want := range cases {
		got, err := ParseFlexibleDate(in, loc)
		if err != nil {
			t.Errorf("ParseFlexibleDate(%q): %v", in, err)
			continue
		}
		if got.Format("2006-01-02") != want {
			t.Errorf("ParseFlexibleDate(%q) = %s, want %s", in, got.Format("2006-01-02"), want)
		}
	}
}

func TestParseFlexibleDateRelative(t *testing.T) {
	loc := time.Local
	today, err := ParseFlexibleDate("today", loc)
	if err != nil {
		t.Fatal(err)
	}
	if today.Hour() != 0 || today.Minute() != 0 {
		t.Errorf("today should be midnight, got %s", today)
	}
	tomorrow, _ := ParseFlexibleDate("tomorrow", loc)
	if !tomorrow.After(today) || tomorrow.Sub(today) > 25*time.Hour {
		t.Errorf("tomorrow = %s relative to %s", tomorrow, today)
	}

	monday, err := ParseFlexibleDate("monday", loc)
	if err != nil {
		t.Fatal(err)
	}
	if monday.Weekday() != time.Monday {
		t.Errorf("monday resolved to %s", monday.Weekday())
	}
	if monday.Before(today) {
		t.Error("weekday names resolve forward, never into the past")
	}
}

func TestParseFlexibleDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "someday", "13/13/2024"} {
		if _, err := ParseFlexibleDate(in, time.Local); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
