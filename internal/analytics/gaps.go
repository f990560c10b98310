package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/threadcount/backend/internal/models"
)

// Color monotony triggers when more than this share of items is dark
const darkColorRatio = 0.7

// Formality coverage is only judged once the wardrobe has some depth
const formalityMinItems = 5

// Fixed gap IDs for the non-category rules
const (
	GapIDColorMonotony = "color-monotony"
	GapIDNoFormalWear  = "no-formal-wear"
)

var darkColors = map[string]struct{}{
	"black":     {},
	"gray":      {},
	"grey":      {},
	"charcoal":  {},
	"navy":      {},
	"dark blue": {},
	"dark gray": {},
	"dark grey": {},
}

var severityRank = map[models.GapSeverity]int{
	models.GapSeverityCritical:  0,
	models.GapSeverityImportant: 1,
	models.GapSeverityOptional:  2,
}

// DetectBasicGaps runs the rule-based gap detection over complete
// items. Gender "man" removes the dresses category from consideration
// entirely; any other value (including empty) keeps all six
// categories. Output is sorted critical before important before
// optional, stable within each tier.
func DetectBasicGaps(items []models.WardrobeItem, gender string) []models.Gap {
	complete := filterComplete(items)

	byCategory := make(map[models.Category]int)
	darkItems := 0
	formalItems := 0
	for _, item := range complete {
		byCategory[item.Category]++
		if isDarkItem(item) {
			darkItems++
		}
		if hasOccasion(item, "formal") {
			formalItems++
		}
	}

	var gaps []models.Gap
	for _, cat := range AllowedCategories(gender) {
		switch byCategory[cat] {
		case 0:
			gaps = append(gaps, models.Gap{
				ID:          fmt.Sprintf("missing-%s", cat),
				Type:        models.GapTypeCategory,
				Severity:    models.GapSeverityCritical,
				Title:       fmt.Sprintf("No %s", cat),
				Description: fmt.Sprintf("Your wardrobe has no %s at all.", cat),
			})
		case 1:
			gaps = append(gaps, models.Gap{
				ID:          fmt.Sprintf("low-%s", cat),
				Type:        models.GapTypeCategory,
				Severity:    models.GapSeverityImportant,
				Title:       fmt.Sprintf("Only one of your %s", cat),
				Description: fmt.Sprintf("A single item in %s leaves you no rotation.", cat),
			})
		}
	}

	if len(complete) > 0 && float64(darkItems)/float64(len(complete)) > darkColorRatio {
		gaps = append(gaps, models.Gap{
			ID:          GapIDColorMonotony,
			Type:        models.GapTypeColor,
			Severity:    models.GapSeverityImportant,
			Title:       "Mostly dark colors",
			Description: "Over 70% of your wardrobe is black, gray, or navy. A few brighter pieces would add range.",
		})
	}

	if len(complete) >= formalityMinItems && formalItems == 0 {
		gaps = append(gaps, models.Gap{
			ID:          GapIDNoFormalWear,
			Type:        models.GapTypeFormality,
			Severity:    models.GapSeverityImportant,
			Title:       "Nothing for formal occasions",
			Description: "None of your items are tagged for formal occasions.",
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return severityRank[gaps[i].Severity] < severityRank[gaps[j].Severity]
	})

	return gaps
}

// AllowedCategories returns the base categories considered for the
// given gender. "man" excludes dresses.
func AllowedCategories(gender string) []models.Category {
	if gender != "man" {
		return models.AllCategories
	}
	out := make([]models.Category, 0, len(models.AllCategories)-1)
	for _, cat := range models.AllCategories {
		if cat != models.CategoryDresses {
			out = append(out, cat)
		}
	}
	return out
}

// ApplyDismissals marks gaps whose IDs appear in the dismissed set and
// recomputes the total as the count of non-dismissed gaps.
func ApplyDismissals(gaps []models.Gap, dismissed map[string]bool) models.GapReport {
	report := models.GapReport{Gaps: make([]models.Gap, len(gaps))}
	for i, gap := range gaps {
		gap.Dismissed = dismissed[gap.ID]
		report.Gaps[i] = gap
		if !gap.Dismissed {
			report.TotalGaps++
		}
	}
	return report
}

// isDarkItem reports whether an item reads as dark: it has at least
// one color and every listed color is in the dark set.
func isDarkItem(item models.WardrobeItem) bool {
	if len(item.Colors) == 0 {
		return false
	}
	for _, c := range item.Colors {
		if _, ok := darkColors[strings.ToLower(strings.TrimSpace(c))]; !ok {
			return false
		}
	}
	return true
}

func hasOccasion(item models.WardrobeItem, occasion string) bool {
	for _, o := range item.Occasions {
		if strings.EqualFold(o, occasion) {
			return true
		}
	}
	return false
}
