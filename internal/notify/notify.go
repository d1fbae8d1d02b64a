package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"boardcal/internal/timegrid"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// FormatMeetingPrompt builds the reminder notification for a meeting
// starting soon.
func FormatMeetingPrompt(title string, startMinutes, leadMinutes int) (string, string) {
	head := fmt.Sprintf("Meeting in %d minutes", leadMinutes)
	msg := fmt.Sprintf("%s at %s", title, timegrid.FormatClock(startMinutes))
	return head, msg
}
