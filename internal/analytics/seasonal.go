package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/threadcount/backend/internal/models"
)

// How many most-worn items a seasonal report lists
const maxMostWorn = 5

// keyCategories are the four categories that count toward seasonal
// coverage. Dresses and accessories are nice-to-haves.
var keyCategories = []models.Category{
	models.CategoryTops,
	models.CategoryBottoms,
	models.CategoryShoes,
	models.CategoryOuterwear,
}

// SeasonForMonth maps a calendar month (1-12) to its season:
// spring 3-5, summer 6-8, fall 9-11, winter 12/1/2.
func SeasonForMonth(month int) models.Season {
	switch {
	case month >= 3 && month <= 5:
		return models.SeasonSpring
	case month >= 6 && month <= 8:
		return models.SeasonSummer
	case month >= 9 && month <= 11:
		return models.SeasonFall
	default:
		return models.SeasonWinter
	}
}

// SeasonDateRange returns the inclusive calendar range of a season in
// a given year. Winter starts in December and spans into February of
// the following year; the February end is leap-aware.
func SeasonDateRange(season models.Season, year int) models.PeriodRange {
	var start, end time.Time
	switch season {
	case models.SeasonSpring:
		start = time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.June, 0, 0, 0, 0, 0, time.UTC)
	case models.SeasonSummer:
		start = time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.September, 0, 0, 0, 0, 0, time.UTC)
	case models.SeasonFall:
		start = time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.December, 0, 0, 0, 0, 0, time.UTC)
	default: // winter
		start = time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year+1, time.March, 0, 0, 0, 0, 0, time.UTC)
	}

	return models.PeriodRange{
		Start: start.Format(DateLayout),
		End:   end.Format(DateLayout),
		Label: fmt.Sprintf("%s %d", titleSeason(season), year),
	}
}

// CalculateReadinessScore measures how prepared a wardrobe is for a
// season on a 0-10 scale: key-category coverage (max 4), item variety
// (max 3), and usage (max 3). Empty input scores 0.
func CalculateReadinessScore(items []models.WardrobeItem, wearCounts map[string]int) int {
	if len(items) == 0 {
		return 0
	}

	present := make(map[models.Category]bool)
	worn := 0
	for _, item := range items {
		present[item.Category] = true
		if wearCounts[item.ID] > 0 {
			worn++
		}
	}

	coverage := 0
	for _, cat := range keyCategories {
		if present[cat] {
			coverage++
		}
	}

	variety := 1
	switch {
	case len(items) >= 10:
		variety = 3
	case len(items) >= 5:
		variety = 2
	}

	usage := 0
	wornPct := 100 * float64(worn) / float64(len(items))
	switch {
	case wornPct > 75: // exactly 75% stays in the middle tier
		usage = 3
	case worn > 0:
		usage = 2
	}

	return coverage + variety + usage
}

// GenerateSeasonRecommendations builds at most three suggestions for
// the given season's wardrobe.
func GenerateSeasonRecommendations(items []models.WardrobeItem, wearCounts map[string]int, neglectedCount int, season models.Season) []string {
	if len(items) == 0 {
		return []string{fmt.Sprintf("Tag items for %s to start tracking your seasonal readiness.", season)}
	}

	hasOuterwear := false
	worn := 0
	for _, item := range items {
		if item.Category == models.CategoryOuterwear {
			hasOuterwear = true
		}
		if wearCounts[item.ID] > 0 {
			worn++
		}
	}

	var recs []string
	if !hasOuterwear {
		recs = append(recs, fmt.Sprintf("You have no outerwear tagged for %s. Consider adding a layer.", season))
	}
	if len(items) < 5 {
		recs = append(recs, fmt.Sprintf("Only %d items tagged for %s. Expand your seasonal rotation.", len(items), season))
	}
	switch {
	case neglectedCount > 5:
		recs = append(recs, fmt.Sprintf("Over 5 %s items went unworn. Time for a wardrobe review.", season))
	case neglectedCount >= 1:
		recs = append(recs, fmt.Sprintf("%d %s items haven't been worn yet. Try working them into your rotation.", neglectedCount, season))
	}
	if float64(worn) >= 0.9*float64(len(items)) {
		recs = append(recs, fmt.Sprintf("You wore almost everything tagged for %s. Great rotation!", season))
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// CompareSeasons renders the year-over-year wear comparison. previous
// is the prior year's cached total for the same season, nil when this
// is the first report for the season.
func CompareSeasons(currentWears int, previous *int, season models.Season) string {
	if previous == nil {
		return fmt.Sprintf("First %s tracked", season)
	}
	prev := *previous
	if prev == 0 {
		if currentWears == 0 {
			return fmt.Sprintf("No wears logged for %s yet", season)
		}
		return fmt.Sprintf("↑ %d wears vs none last %s", currentWears, season)
	}

	pct := int(math.Round(100 * float64(currentWears-prev) / float64(prev)))

	switch {
	case pct > 0:
		return fmt.Sprintf("↑ %d%% more wears than last %s", pct, season)
	case pct < 0:
		return fmt.Sprintf("↓ %d%% fewer wears than last %s", -pct, season)
	default:
		return fmt.Sprintf("Same wear activity as last %s", season)
	}
}

// BuildSeasonalReport assembles the full readiness report for one
// season of one year. Items are restricted to complete items tagged
// for the season; wear counts come from logs within the season's
// calendar range for that year.
func BuildSeasonalReport(season models.Season, year int, items []models.WardrobeItem, logs []models.WearLogEntry, previousWears *int) models.SeasonalReport {
	seasonItems := make([]models.WardrobeItem, 0)
	for _, item := range filterComplete(items) {
		if taggedForSeason(item, season) {
			seasonItems = append(seasonItems, item)
		}
	}

	dateRange := SeasonDateRange(season, year)
	inSeason := func(date string) bool {
		return date >= dateRange.Start && date <= dateRange.End
	}

	itemIDs := make(map[string]bool, len(seasonItems))
	for _, item := range seasonItems {
		itemIDs[item.ID] = true
	}

	wearCounts := make(map[string]int)
	totalWears := 0
	for _, l := range logs {
		if itemIDs[l.ItemID] && inSeason(l.WornDate) {
			wearCounts[l.ItemID]++
			totalWears++
		}
	}

	byCategory := make(map[models.Category]int)
	var mostWorn []models.SeasonalItemStat
	var neglected []models.WardrobeItem
	for _, item := range seasonItems {
		byCategory[item.Category]++
		if wearCounts[item.ID] > 0 {
			mostWorn = append(mostWorn, models.SeasonalItemStat{Item: item, WearCount: wearCounts[item.ID]})
		} else {
			neglected = append(neglected, item)
		}
	}

	sort.SliceStable(mostWorn, func(i, j int) bool {
		return mostWorn[i].WearCount > mostWorn[j].WearCount
	})
	if len(mostWorn) > maxMostWorn {
		mostWorn = mostWorn[:maxMostWorn]
	}

	return models.SeasonalReport{
		Season:          season,
		Year:            year,
		TotalItems:      len(seasonItems),
		ByCategory:      byCategory,
		MostWorn:        mostWorn,
		Neglected:       neglected,
		TotalWears:      totalWears,
		ReadinessScore:  CalculateReadinessScore(seasonItems, wearCounts),
		Recommendations: GenerateSeasonRecommendations(seasonItems, wearCounts, len(neglected), season),
		ComparisonText:  CompareSeasons(totalWears, previousWears, season),
	}
}

func taggedForSeason(item models.WardrobeItem, season models.Season) bool {
	for _, s := range item.Seasons {
		if s == season {
			return true
		}
	}
	return false
}
