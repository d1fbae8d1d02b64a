package model

import (
	"reflect"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"9:00AM", 540, false},
		{"10:30AM", 630, false},
		{"12:00AM", 0, false},
		{"12:00PM", 720, false},
		{"11:59PM", 1439, false},
		{"1:00pm", 780, false},
		{"2:30 PM", 870, false},
		{"09:00", 540, false},
		{"16:30", 990, false},
		{"13:60", 0, true},
		{"25:00", 0, true},
		{"", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseMeetingType(t *testing.T) {
	if got := ParseMeetingType("suspensions"); got != TypeSuspensions {
		t.Errorf("expected Suspensions, got %s", got)
	}
	if got := ParseMeetingType("Review"); got != TypeReviews {
		t.Errorf("expected Reviews, got %s", got)
	}
	if got := ParseMeetingType("committee"); got != TypeGeneral {
		t.Errorf("unknown type should default to General, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	ok := Meeting{ID: "m1", Date: "2024-08-07", DayIndex: LegacyDayUnset, StartMinutes: 540, EndMinutes: 630, Title: "General Parole Review"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid meeting rejected: %v", err)
	}

	cases := []struct {
		name string
		m    Meeting
	}{
		{"missing title", Meeting{Date: "2024-08-07", DayIndex: LegacyDayUnset, StartMinutes: 540, EndMinutes: 600}},
		{"inverted interval", Meeting{Title: "x", Date: "2024-08-07", DayIndex: LegacyDayUnset, StartMinutes: 600, EndMinutes: 540}},
		{"zero duration", Meeting{Title: "x", Date: "2024-08-07", DayIndex: LegacyDayUnset, StartMinutes: 600, EndMinutes: 600}},
		{"bad date", Meeting{Title: "x", Date: "08/07/2024", DayIndex: LegacyDayUnset, StartMinutes: 540, EndMinutes: 600}},
		{"legacy index out of range", Meeting{Title: "x", DayIndex: 6, StartMinutes: 540, EndMinutes: 600}},
	}
	for _, tc := range cases {
		if err := tc.m.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}

	legacy := Meeting{Title: "x", DayIndex: 2, StartMinutes: 540, EndMinutes: 600}
	if err := legacy.Validate(); err != nil {
		t.Errorf("legacy Mon-Fri meeting should validate: %v", err)
	}
}

func TestSplitJoinMembers(t *testing.T) {
	got := SplitMembers(" Smith, Nguyen ,Taylor, ")
	want := []string{"Smith", "Nguyen", "Taylor"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitMembers = %v, want %v", got, want)
	}
	if SplitMembers("   ") != nil {
		t.Fatal("blank member list should be nil")
	}
	if JoinMembers(want) != "Smith, Nguyen, Taylor" {
		t.Fatalf("JoinMembers = %q", JoinMembers(want))
	}
}
