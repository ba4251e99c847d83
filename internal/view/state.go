package view

import (
	"time"

	"dayplanner/internal/datekey"
)

// State is the shared view cursor threaded through the render entry points:
// which month the grid shows, which day is selected, which Monday the week
// views start from. It replaces ad hoc mutable globals; callers hold one
// State and derive every view from it.
type State struct {
	Year        int
	Month       time.Month
	SelectedDay datekey.Key
	WeekStart   datekey.Key
}

// NewState positions the cursors on the current month, day and week.
func NewState(now time.Time) State {
	return State{
		Year:        now.Year(),
		Month:       now.Month(),
		SelectedDay: datekey.ToKey(now),
		WeekStart:   datekey.MondayOf(now),
	}
}

// PrevMonth moves the month cursor back one month.
func (s State) PrevMonth() State {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	s.Year, s.Month = t.Year(), t.Month()
	return s
}

// NextMonth moves the month cursor forward one month.
func (s State) NextMonth() State {
	t := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	s.Year, s.Month = t.Year(), t.Month()
	return s
}

// PrevWeek moves the week cursor back seven days.
func (s State) PrevWeek() State {
	s.WeekStart = datekey.AddDays(s.WeekStart, -7)
	return s
}

// NextWeek moves the week cursor forward seven days.
func (s State) NextWeek() State {
	s.WeekStart = datekey.AddDays(s.WeekStart, 7)
	return s
}

// Select points the selected-day cursor at the given key. Every dependent
// view re-renders from the returned state.
func (s State) Select(day datekey.Key) State {
	s.SelectedDay = day
	return s
}
