package view

import (
	"math"
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
)

// HomeStats summarizes the whole collection plus today's slice for the
// landing view.
type HomeStats struct {
	TodoCount       int
	InProgressCount int
	DoneCount       int

	OpenToday       int
	MeetingsToday   int
	CompletedToday  int
	ProgressPercent int

	TodayItems []model.Item
}

// Home computes the landing-view statistics for the given day.
func Home(items []model.Item, today datekey.Key) HomeStats {
	var stats HomeStats

	for _, it := range items {
		switch it.Status {
		case model.StatusTodo:
			stats.TodoCount++
		case model.StatusInProgress:
			stats.InProgressCount++
		case model.StatusDone:
			stats.DoneCount++
		}
	}

	stats.TodayItems = DayItems(items, today)
	for _, it := range stats.TodayItems {
		if it.Type == model.TypeMeeting {
			stats.MeetingsToday++
		}
		if it.Done() {
			stats.CompletedToday++
		} else {
			stats.OpenToday++
		}
	}

	if len(stats.TodayItems) > 0 {
		stats.ProgressPercent = int(math.Round(
			float64(stats.CompletedToday) / float64(len(stats.TodayItems)) * 100))
	}
	return stats
}

// Greeting returns the day-part salutation for the given clock time.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
