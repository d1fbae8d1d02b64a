package utils

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"boardcal/internal/dateview"
	"boardcal/internal/model"
)

func fixtureRange() ([]dateview.Day, []model.Meeting) {
	anchor := time.Date(2024, 8, 7, 0, 0, 0, 0, time.Local)
	days := dateview.ResolveDays(dateview.ViewWorkweek, anchor)
	meetings := []model.Meeting{
		{ID: "m1", Date: "2024-08-07", DayIndex: model.LegacyDayUnset, StartMinutes: 540, EndMinutes: 630, Title: "General Parole Review", Type: model.TypeGeneral, BoardNumber: "1023", Members: []string{"Smith", "Nguyen"}},
		{ID: "m2", DayIndex: 0, StartMinutes: 660, EndMinutes: 720, Title: "Suspension Hearing", Type: model.TypeSuspensions},
	}
	return days, meetings
}

func TestRenderDefaultPlacesLegacyOnMonday(t *testing.T) {
	days, meetings := fixtureRange()
	r := NewRenderer(&RenderConfig{Format: FormatDefault, Color: false})
	out, err := r.RenderRange(days, meetings)
	if err != nil {
		t.Fatal(err)
	}
	monIdx := strings.Index(out, "Mon 05/08")
	wedIdx := strings.Index(out, "Wed 07/08")
	if monIdx == -1 || wedIdx == -1 {
		t.Fatalf("missing day headers:\n%s", out)
	}
	suspIdx := strings.Index(out, "Suspension Hearing")
	if suspIdx < monIdx || suspIdx > wedIdx {
		t.Errorf("legacy Monday meeting rendered in the wrong section:\n%s", out)
	}
	if !strings.Contains(out, "9:00AM–10:30AM") {
		t.Errorf("missing 12-hour span:\n%s", out)
	}
	if !strings.Contains(out, "Board #1023") {
		t.Errorf("missing board number:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	days, meetings := fixtureRange()
	r := NewRenderer(&RenderConfig{Format: FormatJSON, Color: false})
	out, err := r.RenderRange(days, meetings)
	if err != nil {
		t.Fatal(err)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["date"] != "2024-08-05" {
		t.Errorf("legacy record date = %v, want displayed Monday", records[0]["date"])
	}
}

func TestRenderCSV(t *testing.T) {
	days, meetings := fixtureRange()
	r := NewRenderer(&RenderConfig{Format: FormatCSV, Color: false})
	out, err := r.RenderRange(days, meetings)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "date,id,start,end") {
		t.Errorf("header = %q", lines[0])
	}
}

func TestRenderEmptyRange(t *testing.T) {
	days, _ := fixtureRange()
	r := NewRenderer(&RenderConfig{Format: FormatDefault, Color: false})
	out, err := r.RenderRange(days, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No meetings") {
		t.Errorf("empty range output = %q", out)
	}
}
