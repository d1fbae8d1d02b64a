package schedule

import (
	"context"
	"time"

	"boardcal/internal/dateview"
	"boardcal/internal/model"
)

// NextReminder finds the earliest meeting whose reminder moment
// (start minus lead) is still ahead of now. Only dated meetings are
// considered; legacy weekday rows have no absolute position in time.
func NextReminder(now time.Time, meetings []model.Meeting, leadMinutes int, loc *time.Location) (time.Time, model.Meeting, bool) {
	var bestAt time.Time
	var best model.Meeting
	found := false
	for _, m := range meetings {
		if !m.HasDate() {
			continue
		}
		day, err := dateview.ParseISODate(m.Date, loc)
		if err != nil {
			continue
		}
		at := day.Add(time.Duration(m.StartMinutes-leadMinutes) * time.Minute)
		if !at.After(now) {
			continue
		}
		if !found || at.Before(bestAt) {
			bestAt, best, found = at, m, true
		}
	}
	return bestAt, best, found
}

// Run fires f for each upcoming meeting reminder until ctx is canceled.
// fetch supplies a fresh meeting list before each wait so newly added
// meetings are picked up; when nothing is scheduled it polls hourly.
func Run(ctx context.Context, leadMinutes int, loc *time.Location, fetch func() []model.Meeting, f func(model.Meeting)) {
	const idleRetry = time.Hour
	t := time.NewTimer(0)
	if !t.Stop() {
		<-t.C
	}
	for {
		next, m, ok := NextReminder(time.Now().In(loc), fetch(), leadMinutes, loc)
		wait := idleRetry
		if ok {
			wait = time.Until(next)
		}
		t.Reset(wait)
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			if ok {
				f(m)
			}
		}
	}
}
