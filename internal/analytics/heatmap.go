package analytics

import (
	"fmt"
	"time"

	"github.com/threadcount/backend/internal/models"
)

// DateLayout is the calendar-date wire format used throughout the
// analytics core. Wear logs carry dates, never times.
const DateLayout = "2006-01-02"

// Intensity buckets a day's wear count into the 0-4 heatmap scale
func Intensity(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count <= 3:
		return 2
	case count <= 5:
		return 3
	default:
		return 4
	}
}

// Streaks computes the longest and current consecutive-activity runs
// over an ordered day sequence. The longest streak is the longest run
// of entries with at least one wear, scanning left to right. The
// current streak counts backward from today's entry (or from
// yesterday when today has no wears yet, or from the last entry when
// today is absent from the sequence).
func Streaks(days []models.HeatmapDay, today string) (longest, current int) {
	if len(days) == 0 {
		return 0, 0
	}

	run := 0
	for _, d := range days {
		if d.WearCount > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	start := len(days) - 1
	for i, d := range days {
		if d.Date == today {
			start = i
			// A quiet today should not break a streak that is
			// still alive from yesterday.
			if d.WearCount == 0 {
				start = i - 1
			}
			break
		}
	}

	for i := start; i >= 0; i-- {
		if days[i].WearCount == 0 {
			break
		}
		current++
	}

	return longest, current
}

// BuildDaySeries expands wear logs into a contiguous inclusive day
// sequence from start to end. Every log row counts as one wear, even
// repeats of the same item on the same day.
func BuildDaySeries(logs []models.WearLogEntry, start, end, today string) []models.HeatmapDay {
	startDate, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	endDate, err := time.Parse(DateLayout, end)
	if err != nil || endDate.Before(startDate) {
		return nil
	}

	counts := make(map[string]int, len(logs))
	for _, l := range logs {
		counts[l.WornDate]++
	}

	var days []models.HeatmapDay
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		count := counts[date]
		days = append(days, models.HeatmapDay{
			Date:      date,
			WearCount: count,
			Intensity: Intensity(count),
			IsToday:   date == today,
		})
	}

	return days
}

// BuildHeatmap aggregates a day series into the full heatmap payload
func BuildHeatmap(days []models.HeatmapDay, today string) models.HeatmapData {
	data := models.HeatmapData{Days: days}

	for _, d := range days {
		if d.WearCount > 0 {
			data.ActiveDays++
		}
		data.TotalWears += d.WearCount
	}

	data.LongestStreak, data.CurrentStreak = Streaks(days, today)
	data.Insight = heatmapInsight(data, len(days))

	return data
}

func heatmapInsight(data models.HeatmapData, totalDays int) string {
	switch {
	case totalDays == 0 || data.TotalWears == 0:
		return "No wears logged this period yet. Log an outfit to start your streak!"
	case data.CurrentStreak >= 3:
		return fmt.Sprintf("You're on a %d-day streak. Keep it going!", data.CurrentStreak)
	default:
		return fmt.Sprintf("You logged outfits on %d of %d days this period.", data.ActiveDays, totalDays)
	}
}
