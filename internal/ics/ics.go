// Package ics imports iCalendar files into meeting records. Only timed
// events contained within a single local day are eligible; all-day and
// midnight-spanning events are counted as skipped, never guessed.
package ics

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"boardcal/internal/dateview"
	"boardcal/internal/model"
)

// Parse reads an ICS payload and converts its VEVENTs to meetings in
// loc's wall-clock day. A malformed event is skipped, not fatal.
func Parse(body []byte, loc *time.Location) (meetings []model.Meeting, skipped int, err error) {
	if len(body) == 0 {
		return nil, 0, errors.New("empty ICS body")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}

	for _, ve := range cal.Events() {
		m, ok := parseVEvent(ve, loc)
		if !ok {
			skipped++
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings, skipped, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (model.Meeting, bool) {
	var m model.Meeting
	m.DayIndex = model.LegacyDayUnset

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return m, false
	}
	m.ID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		m.Title = p.Value
	}

	// All-day events carry VALUE=DATE or a date-only DTSTART; they have
	// no place on the time grid.
	if dtStart := ve.GetProperty(ical.ComponentPropertyDtStart); dtStart != nil {
		if params := dtStart.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
				return m, false
			}
		}
		if !strings.Contains(dtStart.Value, "T") {
			return m, false
		}
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return m, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return m, false
	}
	start = start.In(loc)
	end = end.In(loc)
	if !end.After(start) {
		return m, false
	}
	if start.Year() != end.Year() || start.YearDay() != end.YearDay() {
		return m, false // spans midnight
	}

	m.Date = dateview.ISODate(start)
	m.StartMinutes = start.Hour()*60 + start.Minute()
	m.EndMinutes = end.Hour()*60 + end.Minute()

	m.Type = model.TypeGeneral
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		m.Type = model.ParseMeetingType(strings.Split(p.Value, ",")[0])
	}
	if p := ve.GetProperty(ical.ComponentProperty("X-BOARD-NUMBER")); p != nil {
		m.BoardNumber = p.Value
	}
	for _, a := range ve.Attendees() {
		name := a.Email()
		if params := a.ICalParameters; params != nil {
			if cns, ok := params["CN"]; ok && len(cns) > 0 && cns[0] != "" {
				name = cns[0]
			}
		}
		if name != "" {
			m.Members = append(m.Members, name)
		}
	}

	return m, m.Validate() == nil
}
