// Package ics serializes planner items to iCalendar, for export files and
// meeting invites.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
)

// Export serializes the given items into a VCALENDAR document. Items whose
// date or start time cannot be resolved are skipped; an end time that fails
// to parse falls back to one hour after the start.
func Export(items []model.Item, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//dayplanner//EN")

	for _, it := range items {
		addEvent(cal, it, now)
	}

	return cal.Serialize()
}

// MeetingInvite builds a one-event REQUEST calendar for a meeting, the
// planner's replacement for composing invite emails by hand.
func MeetingInvite(it model.Item, organizer string, now time.Time) (string, error) {
	if it.Type != model.TypeMeeting {
		return "", fmt.Errorf("item %q is not a meeting", it.Title)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodRequest)
	cal.SetProductId("-//dayplanner//EN")

	ev := addEvent(cal, it, now)
	if ev == nil {
		return "", fmt.Errorf("meeting %q has no resolvable date/time", it.Title)
	}
	if organizer != "" {
		ev.SetOrganizer(organizer)
	}

	return cal.Serialize(), nil
}

func addEvent(cal *ical.Calendar, it model.Item, now time.Time) *ical.VEvent {
	start, err := datekey.At(it.Date, it.Time)
	if err != nil {
		return nil
	}
	end, err := datekey.At(it.Date, it.EndTime)
	if err != nil || !end.After(start) {
		end = start.Add(time.Hour)
	}

	ev := cal.AddEvent(it.ID)
	ev.SetDtStampTime(now)
	ev.SetStartAt(start)
	ev.SetEndAt(end)
	ev.SetSummary(it.Title)
	if it.Location != "" {
		ev.SetLocation(it.Location)
	}
	if it.Notes != "" {
		ev.SetDescription(it.Notes)
	}
	if it.Done() {
		ev.SetStatus(ical.ObjectStatusCompleted)
	} else {
		ev.SetStatus(ical.ObjectStatusConfirmed)
	}
	return ev
}
