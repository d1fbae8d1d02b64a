package dateview

import (
	"testing"
	"time"

	"boardcal/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveDaysWorkweek(t *testing.T) {
	// 2024-08-07 is a Wednesday
	days := ResolveDays(ViewWorkweek, date(2024, 8, 7))
	want := []string{"2024-08-05", "2024-08-06", "2024-08-07", "2024-08-08", "2024-08-09"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, iso := range want {
		if days[i].ISO != iso {
			t.Errorf("day %d = %s, want %s", i, days[i].ISO, iso)
		}
	}
	if days[0].Label != "Mon 05/08" {
		t.Errorf("label = %q, want %q", days[0].Label, "Mon 05/08")
	}
}

func TestResolveDaysWeekAndDay(t *testing.T) {
	days := ResolveDays(ViewWeek, date(2024, 8, 7))
	if len(days) != 7 {
		t.Fatalf("week should have 7 days, got %d", len(days))
	}
	if days[6].ISO != "2024-08-11" {
		t.Errorf("week should end on Sunday 2024-08-11, got %s", days[6].ISO)
	}

	single := ResolveDays(ViewDay, date(2024, 8, 7))
	if len(single) != 1 || single[0].ISO != "2024-08-07" {
		t.Fatalf("day view = %v", single)
	}
}

func TestResolveDaysMonth(t *testing.T) {
	// August 2024 starts on a Thursday; the grid starts Monday July 29.
	days := ResolveDays(ViewMonth, date(2024, 8, 15))
	if len(days) != 42 {
		t.Fatalf("month grid should have 42 cells, got %d", len(days))
	}
	if days[0].ISO != "2024-07-29" {
		t.Errorf("grid starts %s, want 2024-07-29", days[0].ISO)
	}
	if days[41].ISO != "2024-09-08" {
		t.Errorf("grid ends %s, want 2024-09-08", days[41].ISO)
	}
	for i := 1; i < len(days); i++ {
		if !days[i].Date.After(days[i-1].Date) {
			t.Fatalf("grid days not consecutive at %d", i)
		}
	}
}

func TestParseViewModeFallback(t *testing.T) {
	if got := ParseViewMode("fortnight"); got != ViewWorkweek {
		t.Errorf("unknown mode should fall back to workweek, got %s", got)
	}
	if got := ParseViewMode("month"); got != ViewMonth {
		t.Errorf("ParseViewMode(month) = %s", got)
	}
}

func TestNavigate(t *testing.T) {
	wed := date(2024, 8, 7)
	if got := Navigate(ViewDay, wed, Next); ISODate(got) != "2024-08-08" {
		t.Errorf("day next = %s", ISODate(got))
	}
	if got := Navigate(ViewWeek, wed, Previous); ISODate(got) != "2024-07-31" {
		t.Errorf("week previous = %s", ISODate(got))
	}
	if got := Navigate(ViewWorkweek, wed, Next); ISODate(got) != "2024-08-14" {
		t.Errorf("workweek next = %s", ISODate(got))
	}

	// no month-skip artifact: Jan 31 back one month is Dec 1, not March
	got := Navigate(ViewMonth, date(2024, 1, 31), Previous)
	if got.Year() != 2023 || got.Month() != time.December || got.Day() != 1 {
		t.Errorf("month previous from Jan 31 = %s, want 2023-12-01", ISODate(got))
	}
	fwd := Navigate(ViewMonth, date(2024, 1, 31), Next)
	if ISODate(fwd) != "2024-02-01" {
		t.Errorf("month next from Jan 31 = %s, want 2024-02-01", ISODate(fwd))
	}
}

func TestMatchesDay(t *testing.T) {
	days := ResolveDays(ViewWorkweek, date(2024, 8, 7))

	dated := model.Meeting{ID: "m1", Date: "2024-08-06", DayIndex: model.LegacyDayUnset, StartMinutes: 540, EndMinutes: 600, Title: "x"}
	if !MatchesDay(dated, days[1]) || MatchesDay(dated, days[2]) {
		t.Fatal("dated meeting should match exactly its ISO day")
	}

	legacy := model.Meeting{ID: "m2", DayIndex: 0, StartMinutes: 540, EndMinutes: 600, Title: "x"}
	if !MatchesDay(legacy, days[0]) {
		t.Fatal("legacy Monday meeting should land on the displayed Monday")
	}
	if MatchesDay(legacy, days[1]) {
		t.Fatal("legacy Monday meeting must not match Tuesday")
	}

	stray := model.Meeting{ID: "m3", DayIndex: 6, StartMinutes: 540, EndMinutes: 600, Title: "x"}
	for _, d := range ResolveDays(ViewWeek, date(2024, 8, 7)) {
		if MatchesDay(stray, d) {
			t.Fatalf("out-of-range legacy index matched %s", d.ISO)
		}
	}
}

func TestRangeLabel(t *testing.T) {
	wed := date(2024, 8, 7)
	if got := RangeLabel(ViewDay, wed); got != "Wed, 07 Aug 2024" {
		t.Errorf("day label = %q", got)
	}
	if got := RangeLabel(ViewWorkweek, wed); got != "August 5–9, 2024" {
		t.Errorf("workweek label = %q", got)
	}
	if got := RangeLabel(ViewMonth, wed); got != "August 2024" {
		t.Errorf("month label = %q", got)
	}
	// week crossing a month boundary
	if got := RangeLabel(ViewWeek, date(2024, 8, 29)); got != "August 26 – September 1, 2024" {
		t.Errorf("cross-month label = %q", got)
	}
}
