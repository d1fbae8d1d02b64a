// Package timegrid models the fixed time-of-day window the calendar
// grid renders: 30-minute slots, linear minute-to-offset mapping, and
// 12-hour slot labels.
package timegrid

import (
	"fmt"
	"iter"
	"time"
)

// SlotMinutes is the grid granularity.
const SlotMinutes = 30

// Default display window, 8:00 AM to 4:30 PM.
const (
	DefaultStartMinutes = 8 * 60
	DefaultEndMinutes   = 16*60 + 30
)

// Slots yields the minute-of-day value of every slot boundary from
// windowStart to windowEnd inclusive. The sequence is restartable.
func Slots(windowStart, windowEnd int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for m := windowStart; m <= windowEnd; m += SlotMinutes {
			if !yield(m) {
				return
			}
		}
	}
}

// SlotCount returns the number of slot boundaries Slots yields.
func SlotCount(windowStart, windowEnd int) int {
	if windowEnd < windowStart {
		return 0
	}
	return (windowEnd-windowStart)/SlotMinutes + 1
}

// Offset converts a minute-of-day to a vertical offset in slot-height
// units. No clamping: callers bound-check before rendering outside the
// window.
func Offset(minutes, windowStart int, slotHeight float64) float64 {
	return float64(minutes-windowStart) / SlotMinutes * slotHeight
}

// GridHeight is the full rendered height of the window, one extra slot
// row for the trailing boundary label.
func GridHeight(windowStart, windowEnd int, slotHeight float64) float64 {
	return (float64(windowEnd-windowStart)/SlotMinutes + 1) * slotHeight
}

// FormatClock renders a minute-of-day as a 12-hour label with AM/PM
// suffix and zero-padded minutes, e.g. 570 -> "9:30AM". Hour 0 and
// hour 12 both display as 12.
func FormatClock(totalMinutes int) string {
	hours24 := totalMinutes / 60
	minutes := totalMinutes % 60
	period := "AM"
	if hours24 >= 12 {
		period = "PM"
	}
	hour12 := hours24 % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour12, minutes, period)
}

// MinutesSinceMidnight returns t's wall-clock minute of day.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// NowOffset computes the live time marker position for t. The marker is
// drawn only when the offset falls within [0, GridHeight] and the day
// being rendered is t's calendar date; both checks belong to the caller.
func NowOffset(t time.Time, windowStart int, slotHeight float64) float64 {
	return Offset(MinutesSinceMidnight(t), windowStart, slotHeight)
}
