package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/threadcount/backend/internal/models"
)

// A brand needs this many complete items before its cost-per-wear
// average means anything.
const minBrandSampleSize = 3

// CalculateBrandStats groups complete items by brand, computes spend
// and wear-weighted cost-per-wear per brand, and ranks brands by value
// (ascending avgCPW, infinite CPW last). Items without a brand are
// excluded from grouping; brands with fewer than minBrandSampleSize
// items are discarded entirely. An optional category filter restricts
// the input set before grouping and is echoed back for display.
func CalculateBrandStats(items []models.WardrobeItem, logs []models.WearLogEntry, categoryFilter string) models.BrandReport {
	complete := filterComplete(items)
	if categoryFilter != "" {
		filtered := complete[:0:0]
		for _, item := range complete {
			if string(item.Category) == categoryFilter {
				filtered = append(filtered, item)
			}
		}
		complete = filtered
	}

	wearsByItem := make(map[string]int, len(logs))
	for _, l := range logs {
		wearsByItem[l.ItemID]++
	}

	groups := make(map[string][]models.WardrobeItem)
	var order []string
	for _, item := range complete {
		brand := item.BrandName()
		if brand == "" {
			continue
		}
		if _, seen := groups[brand]; !seen {
			order = append(order, brand)
		}
		groups[brand] = append(groups[brand], item)
	}

	brands := make([]models.BrandStats, 0, len(order))
	for _, brand := range order {
		group := groups[brand]
		if len(group) < minBrandSampleSize {
			continue
		}
		brands = append(brands, buildBrandStats(brand, group, wearsByItem))
	}

	// Ascending by avgCPW; infinite CPW (spend with no wears) always
	// sorts last. SliceStable keeps encounter order for ties.
	sort.SliceStable(brands, func(i, j int) bool {
		a, b := brands[i].AvgCPW, brands[j].AvgCPW
		if math.IsInf(a, 1) {
			return false
		}
		if math.IsInf(b, 1) {
			return true
		}
		return a < b
	})

	report := models.BrandReport{
		Brands:         brands,
		CategoryFilter: categoryFilter,
	}
	if len(brands) > 0 {
		top := brands[0]
		report.TopBrand = &top
	}
	report.Insight = GenerateBrandInsight(brands)

	return report
}

func buildBrandStats(brand string, group []models.WardrobeItem, wearsByItem map[string]int) models.BrandStats {
	stats := models.BrandStats{
		Brand:     brand,
		ItemCount: len(group),
	}

	bestCPW := math.Inf(1)
	var bestName string
	for _, item := range group {
		stats.TotalSpent += item.Price()
		stats.TotalWears += wearsByItem[item.ID]

		// Best single item: lowest finite per-item CPW. Unworn items
		// have no finite CPW and never win.
		if item.WearCount > 0 && item.Price() > 0 {
			cpw := item.Price() / float64(item.WearCount)
			if cpw < bestCPW {
				bestCPW = cpw
				bestName = item.DisplayName()
			}
		}
	}

	if stats.TotalWears == 0 {
		stats.AvgCPW = math.Inf(1)
	} else {
		stats.AvgCPW = stats.TotalSpent / float64(stats.TotalWears)
	}

	if !math.IsInf(bestCPW, 1) {
		stats.BestItem = &bestName
		stats.BestItemCPW = &bestCPW
	}

	return stats
}

// GenerateBrandInsight produces the natural-language summary shown
// above the brand ranking.
func GenerateBrandInsight(brands []models.BrandStats) string {
	if len(brands) == 0 {
		return "Add brands and purchase prices to your items to unlock cost-per-wear insights."
	}

	top := brands[0]
	if math.IsInf(top.AvgCPW, 1) {
		return "Add purchase prices to your items to see which brands give you the best cost per wear."
	}

	insight := fmt.Sprintf("%s is your best-value brand at $%.2f per wear.", top.Brand, top.AvgCPW)
	if top.BestItem != nil && *top.BestItemCPW != top.AvgCPW {
		insight += fmt.Sprintf(" Your %s stands out at $%.2f per wear.", *top.BestItem, *top.BestItemCPW)
	}
	return insight
}
