package service

import (
	"fmt"
	"strings"
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/store"
	"dayplanner/internal/view"
	"dayplanner/internal/weather"
)

// SummaryService builds the human-readable daily report delivered through
// the notifier.
type SummaryService struct {
	store   *store.ItemStore
	weather *weather.Client // nil when not configured
}

func NewSummaryService(st *store.ItemStore, wc *weather.Client) *SummaryService {
	return &SummaryService{store: st, weather: wc}
}

// DailySummary composes the landing-view stats, today's agenda and the
// forecast into one message for the given time.
func (s *SummaryService) DailySummary(now time.Time) string {
	today := datekey.Today(now)
	items := s.store.Items()
	stats := view.Home(items, today)

	var b strings.Builder
	fmt.Fprintf(&b, "%s! Plan for %s\n\n", view.Greeting(now), now.Format("Mon, 02 Jan 2006"))

	fmt.Fprintf(&b, "Open today: %d · Meetings: %d · Done: %d (%d%%)\n",
		stats.OpenToday, stats.MeetingsToday, stats.CompletedToday, stats.ProgressPercent)
	fmt.Fprintf(&b, "Overall: %d todo, %d in progress, %d done\n\n",
		stats.TodoCount, stats.InProgressCount, stats.DoneCount)

	if len(stats.TodayItems) == 0 {
		b.WriteString("Nothing scheduled today.\n")
	} else {
		for _, it := range stats.TodayItems {
			marker := "•"
			if it.Done() {
				marker = "✓"
			}
			fmt.Fprintf(&b, "%s %s–%s %s", marker, it.Time, it.EndTime, it.Title)
			if it.Location != "" {
				fmt.Fprintf(&b, " @ %s", it.Location)
			}
			b.WriteByte('\n')
		}
	}

	if s.weather != nil {
		if days, err := s.weather.Forecast(3); err == nil && len(days) > 0 {
			b.WriteString("\nWeather:\n")
			for _, d := range days {
				fmt.Fprintf(&b, "%s %s %d°C\n", d.Label, d.Icon, d.AvgTempC)
			}
		}
	}

	return strings.TrimSpace(b.String())
}
