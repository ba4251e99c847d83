// Package view computes the pure data behind the planner's calendar
// perspectives: the month grid, the week time-bar, per-day lists and home
// statistics. Nothing here renders visuals; the presentation layer consumes
// these structures as-is.
package view

import (
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
)

// DaySignal annotates a grid cell with the strongest category present on
// that day. Precedence: work meeting > private meeting > any item > none.
type DaySignal int

const (
	SignalNone DaySignal = iota
	SignalHasItems
	SignalPrivateMeeting
	SignalWorkMeeting
)

// GridCell is one day cell of the month grid.
type GridCell struct {
	Date       datekey.Key
	Day        int  // day of month
	OtherMonth bool // belongs to the previous or next month
	Today      bool
	Selected   bool
	Signal     DaySignal
}

// MonthGrid builds the calendar grid for the given month (1-based via
// time.Month). The cell count is the smallest multiple of 7 covering the
// leading days from the previous month plus the days of the month, with
// Monday as the first column. today and selected are date keys used to flag
// the matching cells.
func MonthGrid(year int, month time.Month, items []model.Item, today, selected datekey.Key) []GridCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := (int(first.Weekday()) + 6) % 7 // Monday=0
	daysInMonth := first.AddDate(0, 1, -1).Day()
	total := ((lead + daysInMonth + 6) / 7) * 7

	signals := daySignals(items)

	cells := make([]GridCell, 0, total)
	for i := 0; i < total; i++ {
		day := first.AddDate(0, 0, i-lead)
		key := datekey.ToKey(day)
		cells = append(cells, GridCell{
			Date:       key,
			Day:        day.Day(),
			OtherMonth: day.Month() != month,
			Today:      key == today,
			Selected:   key == selected,
			Signal:     signals[key],
		})
	}
	return cells
}

// daySignals folds the item list into the strongest signal per date key.
func daySignals(items []model.Item) map[datekey.Key]DaySignal {
	signals := make(map[datekey.Key]DaySignal)
	for _, it := range items {
		sig := SignalHasItems
		if it.Type == model.TypeMeeting {
			switch it.Category {
			case model.CategoryWork:
				sig = SignalWorkMeeting
			case model.CategoryPrivate:
				sig = SignalPrivateMeeting
			}
		}
		if sig > signals[it.Date] {
			signals[it.Date] = sig
		}
	}
	return signals
}
