package view

import (
	"testing"

	"dayplanner/internal/model"
)

func TestWeekListSevenSortedDays(t *testing.T) {
	items := []model.Item{
		{ID: "late", Date: "2025-03-03", Time: "15:00"},
		{ID: "early", Date: "2025-03-03", Time: "08:00"},
		{ID: "sun", Date: "2025-03-09", Time: "12:00"},
		{ID: "outside", Date: "2025-03-10", Time: "09:00"},
	}
	days := WeekList(items, "2025-03-03")

	if days[0].Date != "2025-03-03" || days[6].Date != "2025-03-09" {
		t.Fatalf("week spans %s..%s", days[0].Date, days[6].Date)
	}
	if len(days[0].Items) != 2 || days[0].Items[0].ID != "early" {
		t.Errorf("monday items = %v, want early first", days[0].Items)
	}
	if len(days[6].Items) != 1 || days[6].Items[0].ID != "sun" {
		t.Errorf("sunday items = %v", days[6].Items)
	}
	for i := 1; i < 6; i++ {
		if len(days[i].Items) != 0 {
			t.Errorf("day %d should be empty, got %v", i, days[i].Items)
		}
	}
}

func TestDayItemsSortedByTime(t *testing.T) {
	items := []model.Item{
		{ID: "b", Date: "2025-03-03", Time: "10:00"},
		{ID: "a", Date: "2025-03-03", Time: "09:00"},
		{ID: "other", Date: "2025-03-04", Time: "08:00"},
	}
	got := DayItems(items, "2025-03-03")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("day items = %v, want [a b]", got)
	}
}
