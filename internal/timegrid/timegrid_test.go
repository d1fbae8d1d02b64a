package timegrid

import (
	"testing"
	"time"
)

func TestSlots(t *testing.T) {
	var got []int
	for m := range Slots(DefaultStartMinutes, DefaultEndMinutes) {
		got = append(got, m)
	}
	if len(got) != 18 {
		t.Fatalf("expected 18 slots for 8:00-16:30, got %d", len(got))
	}
	if got[0] != 480 || got[len(got)-1] != 990 {
		t.Fatalf("slot bounds = %d..%d, want 480..990", got[0], got[len(got)-1])
	}
	if SlotCount(DefaultStartMinutes, DefaultEndMinutes) != len(got) {
		t.Fatalf("SlotCount disagrees with Slots")
	}

	// restartable: a second full pass yields the same sequence
	var again []int
	seq := Slots(480, 600)
	for m := range seq {
		again = append(again, m)
	}
	n := len(again)
	again = again[:0]
	for m := range seq {
		again = append(again, m)
	}
	if len(again) != n {
		t.Fatalf("sequence not restartable: %d vs %d", len(again), n)
	}

	// early break must not panic or leak
	for m := range Slots(480, 990) {
		if m >= 540 {
			break
		}
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(570, 480, 48); got != 144 {
		t.Errorf("Offset(570,480,48) = %v, want 144", got)
	}
	if got := Offset(480, 480, 48); got != 0 {
		t.Errorf("Offset at window start = %v, want 0", got)
	}
	// no clamping below the window
	if got := Offset(450, 480, 48); got != -48 {
		t.Errorf("Offset below window = %v, want -48", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "12:00AM",
		570:  "9:30AM",
		720:  "12:00PM",
		750:  "12:30PM",
		990:  "4:30PM",
		1439: "11:59PM",
	}
	for minutes, want := range cases {
		if got := FormatClock(minutes); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestNowOffset(t *testing.T) {
	now := time.Date(2024, 8, 7, 9, 30, 0, 0, time.Local)
	if got := NowOffset(now, 480, 2); got != 6 {
		t.Errorf("NowOffset 9:30 = %v, want 6", got)
	}
	height := GridHeight(DefaultStartMinutes, DefaultEndMinutes, 2)
	if height != 38 {
		t.Errorf("GridHeight = %v, want 38", height)
	}
	before := time.Date(2024, 8, 7, 6, 0, 0, 0, time.Local)
	if off := NowOffset(before, DefaultStartMinutes, 2); off >= 0 {
		t.Errorf("offset before window should be negative, got %v", off)
	}
}
