package view

import (
	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
	"dayplanner/internal/store"
)

// WeekDay is one column of the week list: a day and its items in canonical
// order.
type WeekDay struct {
	Date  datekey.Key
	Items []model.Item
}

// WeekList builds the seven per-day sorted lists for the week starting at
// weekStart. Days without items keep an empty slot so the view always shows
// seven columns.
func WeekList(items []model.Item, weekStart datekey.Key) [7]WeekDay {
	var days [7]WeekDay
	for i := 0; i < 7; i++ {
		key := datekey.AddDays(weekStart, i)
		days[i].Date = key
		for _, it := range items {
			if it.Date == key {
				days[i].Items = append(days[i].Items, it)
			}
		}
		store.SortItems(days[i].Items)
	}
	return days
}

// DayItems returns the selected day's items in canonical order.
func DayItems(items []model.Item, day datekey.Key) []model.Item {
	var out []model.Item
	for _, it := range items {
		if it.Date == day {
			out = append(out, it)
		}
	}
	store.SortItems(out)
	return out
}
