// Package analytics is the pure computational core of the wardrobe
// backend: health scoring, cost-per-wear analytics, wear heatmaps and
// streaks, neglect detection, gap analysis, seasonal readiness, resale
// estimation, and trip-packing deduplication. Every function here is a
// synchronous, total transform over already-fetched records; nothing
// performs I/O or touches shared state.
package analytics

import (
	"fmt"
	"math"

	"github.com/threadcount/backend/internal/models"
)

// Health score factor weights. Utilization dominates: a wardrobe you
// actually wear beats one with good unit economics.
const (
	weightUtilization = 0.50
	weightCPW         = 0.25
	weightNeglect     = 0.25
)

// Tier boundaries on the 0-100 composite score
const (
	tierExcellentMin = 80
	tierGoodMin      = 50
)

// Utilization thresholds for the recommendation text
const (
	utilizationDeclutterBelow = 70
	utilizationPraiseAbove    = 85
)

// CalculateHealthScore combines utilization, cost-per-wear, and
// neglect ratio into a single 0-100 score with tier classification and
// a decluttering recommendation. An empty (or all-incomplete) item set
// yields a zero score in the poor tier.
func CalculateHealthScore(items []models.WardrobeItem) models.HealthScore {
	complete := filterComplete(items)
	if len(complete) == 0 {
		return models.HealthScore{
			Score:           0,
			Tier:            models.HealthTierPoor,
			Color:           models.HealthColorPoor,
			Recommendation:  "Add items to your wardrobe to see your health score.",
			ComparisonLabel: "Room for improvement",
		}
	}

	total := len(complete)
	neglected := 0
	for _, item := range complete {
		if item.NeglectStatus {
			neglected++
		}
	}

	utilization := roundPct(total-neglected, total)
	neglectFactor := 100 - roundPct(neglected, total)
	cpwFactor := cpwScore(complete)

	raw := weightUtilization*float64(utilization) +
		weightCPW*float64(cpwFactor) +
		weightNeglect*float64(neglectFactor)
	score := clampScore(int(math.Round(raw)))

	tier, color := classifyTier(score)

	declutterCount := 0
	if utilization < utilizationDeclutterBelow {
		declutterCount = neglected
	}

	return models.HealthScore{
		Score:             score,
		Tier:              tier,
		Color:             color,
		UtilizationFactor: utilization,
		CPWFactor:         cpwFactor,
		NeglectFactor:     neglectFactor,
		Recommendation:    healthRecommendation(utilization, declutterCount),
		DeclutterCount:    declutterCount,
		ComparisonLabel:   comparisonLabel(score),
	}
}

// cpwScore maps average cost-per-wear over priced items onto [0,100],
// linearly decreasing so that lower CPW scores higher. With no priced
// items there is nothing to judge, so it returns a neutral 50.
func cpwScore(items []models.WardrobeItem) int {
	totalSpent := 0.0
	totalWears := 0
	priced := 0
	for _, item := range items {
		if item.Price() > 0 {
			priced++
			totalSpent += item.Price()
			totalWears += item.WearCount
		}
	}

	if priced == 0 {
		return 50
	}
	if totalWears == 0 {
		return 0
	}

	avgCPW := totalSpent / float64(totalWears)
	return clampScore(int(math.Round(100 - 2*avgCPW)))
}

func classifyTier(score int) (models.HealthTier, string) {
	switch {
	case score >= tierExcellentMin:
		return models.HealthTierExcellent, models.HealthColorExcellent
	case score >= tierGoodMin:
		return models.HealthTierGood, models.HealthColorGood
	default:
		return models.HealthTierPoor, models.HealthColorPoor
	}
}

func healthRecommendation(utilization, declutterCount int) string {
	switch {
	case utilization < utilizationDeclutterBelow:
		if declutterCount == 1 {
			return "Consider decluttering 1 neglected item to boost your score."
		}
		return fmt.Sprintf("Consider decluttering %d neglected items to boost your score.", declutterCount)
	case utilization >= utilizationPraiseAbove:
		return "Your wardrobe is working hard for you. Keep it up!"
	default:
		return "You're making good use of your wardrobe. A few more wears will push your score higher."
	}
}

func comparisonLabel(score int) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Better than %d%% of wardrobes", score)
	case score >= 70:
		return "Above average. Solid rotation!"
	default:
		return "Room for improvement"
	}
}

// filterComplete keeps only fully catalogued items; every aggregate
// starts with this filter.
func filterComplete(items []models.WardrobeItem) []models.WardrobeItem {
	out := make([]models.WardrobeItem, 0, len(items))
	for _, item := range items {
		if item.IsComplete() {
			out = append(out, item)
		}
	}
	return out
}

// roundPct is round(100*part/whole), 0 when whole is 0
func roundPct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
