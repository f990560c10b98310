package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/threadcount/backend/internal/models"
)

// Neglect threshold bounds, in days. The threshold is a persisted user
// preference; values outside the bounds are rejected on write and fall
// back to the default on read.
const (
	DefaultNeglectThresholdDays = 180
	MinNeglectThresholdDays     = 30
	MaxNeglectThresholdDays     = 365
)

// How many items the top-neglected ranking returns
const topNeglectedLimit = 3

// IsNeglected reports whether an item counts as neglected at the given
// threshold: never worn, or last worn at least thresholdDays ago.
func IsNeglected(item models.WardrobeItem, now time.Time, thresholdDays int) bool {
	if item.LastWornAt == nil {
		return true
	}
	return now.Sub(*item.LastWornAt) >= time.Duration(thresholdDays)*24*time.Hour
}

// IsNeglectedFromDB reads the neglect flag the database trigger
// maintains instead of recomputing it. The trigger and IsNeglected
// must agree by contract.
func IsNeglectedFromDB(item models.WardrobeItem) bool {
	return item.NeglectStatus
}

// ValidateNeglectThreshold rejects thresholds outside the allowed
// range; it never clamps.
func ValidateNeglectThreshold(days int) error {
	if days < MinNeglectThresholdDays || days > MaxNeglectThresholdDays {
		return fmt.Errorf("neglect threshold must be between %d and %d days, got %d",
			MinNeglectThresholdDays, MaxNeglectThresholdDays, days)
	}
	return nil
}

// ParseNeglectThreshold parses a stored preference value, silently
// falling back to the default for non-numeric or out-of-range values.
func ParseNeglectThreshold(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || ValidateNeglectThreshold(days) != nil {
		return DefaultNeglectThresholdDays
	}
	return days
}

// GetNeglectStats summarizes neglect across complete items using the
// precomputed per-item flag.
func GetNeglectStats(items []models.WardrobeItem) models.NeglectStats {
	complete := filterComplete(items)

	stats := models.NeglectStats{TotalCount: len(complete)}
	for _, item := range complete {
		if item.NeglectStatus {
			stats.NeglectedCount++
		}
	}
	stats.Percentage = roundPct(stats.NeglectedCount, stats.TotalCount)

	if stats.NeglectedCount == 0 {
		stats.Label = "No neglected items"
	} else {
		stats.Label = fmt.Sprintf("%d%% of your wardrobe (%d items) hasn't been worn recently.",
			stats.Percentage, stats.NeglectedCount)
	}

	return stats
}

// TopNeglected ranks the most-neglected complete items by days since
// last worn, descending. Never-worn items rank first; ties keep their
// original order. At most three items are returned.
func TopNeglected(items []models.WardrobeItem, now time.Time) []models.NeglectedItem {
	var ranked []models.NeglectedItem
	for _, item := range filterComplete(items) {
		if !item.NeglectStatus {
			continue
		}
		days := -1 // never worn
		if item.LastWornAt != nil {
			days = int(now.Sub(*item.LastWornAt).Hours() / 24)
		}
		ranked = append(ranked, models.NeglectedItem{Item: item, DaysSinceWorn: days})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].DaysSinceWorn, ranked[j].DaysSinceWorn
		if a == -1 {
			return b != -1
		}
		if b == -1 {
			return false
		}
		return a > b
	})

	if len(ranked) > topNeglectedLimit {
		ranked = ranked[:topNeglectedLimit]
	}
	return ranked
}
