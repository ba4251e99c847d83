package view

import (
	"fmt"
	"math"
	"time"

	"dayplanner/internal/datekey"
	"dayplanner/internal/model"
)

// Week bar geometry. Row 1 is the day-label header; hour rows occupy
// 2..25 (00:00-01:00 up to 23:00-24:00).
const (
	headerRowOffset = 2
	minBlockHours   = 0.5
)

// Block is one foreground rectangle on the week bar: column is the day index
// (Monday=0), the block spans grid rows [RowStart, RowEnd).
type Block struct {
	ItemID   string
	Title    string
	Time     string
	Column   int
	RowStart int
	RowEnd   int
	Category model.Category
}

// WeekBackground is the item-independent part of the week bar: the header
// labels and the 24 hour labels. It is always fully populated.
type WeekBackground struct {
	DayLabels  [7]string // "Mon 2", ... derived from the week's dates
	HourLabels [24]string
}

// Background builds the static grid scaffolding for the week starting at
// weekStart (a Monday key).
func Background(weekStart datekey.Key) WeekBackground {
	var bg WeekBackground
	start, err := datekey.FromKey(weekStart)
	if err != nil {
		start = time.Now()
	}
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		bg.DayLabels[i] = fmt.Sprintf("%s %d", d.Format("Mon"), d.Day())
	}
	for hour := 0; hour < 24; hour++ {
		bg.HourLabels[hour] = fmt.Sprintf("%02d:00", hour)
	}
	return bg
}

// WeekBar places every item whose date falls in the 7-day window starting at
// weekStart onto the hour-by-day grid. Items with malformed dates are
// silently dropped; malformed times fall back to defaults. Overlapping
// blocks in the same column are emitted as-is, the engine does not resolve
// collisions.
func WeekBar(items []model.Item, weekStart datekey.Key) []Block {
	weekEnd := datekey.AddDays(weekStart, 6)

	var blocks []Block
	for _, it := range items {
		if it.Date < weekStart || it.Date > weekEnd {
			continue
		}

		// Defensive clip: the range filter above should make this
		// impossible, but malformed dates must not escape the grid.
		dayIndex, err := datekey.DaysBetween(weekStart, it.Date)
		if err != nil || dayIndex < 0 || dayIndex > 6 {
			continue
		}

		startHour, endHour := blockHours(it)
		blocks = append(blocks, Block{
			ItemID:   it.ID,
			Title:    it.Title,
			Time:     it.Time,
			Column:   dayIndex,
			RowStart: int(math.Floor(startHour)) + headerRowOffset,
			RowEnd:   int(math.Ceil(endHour)) + headerRowOffset,
			Category: it.Category,
		})
	}
	return blocks
}

// blockHours converts an item's clock strings into fractional start/end
// hours, applying the fallback and minimum-duration rules: an unparsable
// start is midnight, a missing or unparsable end falls back to the start,
// and the end is clamped to at least 30 minutes after the start so
// instantaneous events stay visible.
func blockHours(it model.Item) (float64, float64) {
	startHour, err := datekey.ParseClock(it.Time)
	if err != nil {
		startHour = 0
	}

	endHour := startHour
	if it.EndTime != "" {
		if parsed, err := datekey.ParseClock(it.EndTime); err == nil {
			endHour = parsed
		}
	}
	if endHour < startHour+minBlockHours {
		endHour = startHour + minBlockHours
	}
	return startHour, endHour
}
