package models

import (
	"encoding/json"
	"math"
)

// HealthTier represents the named bracket for a wardrobe health score
type HealthTier string

const (
	HealthTierExcellent HealthTier = "excellent"
	HealthTierGood      HealthTier = "good"
	HealthTierPoor      HealthTier = "poor"
)

// Hex swatches for each health tier, used by the mobile client
const (
	HealthColorExcellent = "#22c55e"
	HealthColorGood      = "#f59e0b"
	HealthColorPoor      = "#ef4444"
)

// HealthScore is the composite wardrobe health result.
// All factor values and the score itself are clamped to [0,100].
type HealthScore struct {
	Score             int        `json:"score"`
	Tier              HealthTier `json:"tier"`
	Color             string     `json:"color"`
	UtilizationFactor int        `json:"utilization_factor"`
	CPWFactor         int        `json:"cpw_factor"`
	NeglectFactor     int        `json:"neglect_factor"`
	Recommendation    string     `json:"recommendation"`
	DeclutterCount    int        `json:"declutter_count"`
	ComparisonLabel   string     `json:"comparison_label"`
}

// BrandStats aggregates cost-per-wear analytics for a single brand.
// AvgCPW is +Inf when the brand has spend but no recorded wears; it
// serializes as the string "Infinity" so clients can render a prompt
// instead of a number.
type BrandStats struct {
	Brand       string   `json:"brand"`
	ItemCount   int      `json:"item_count"`
	TotalSpent  float64  `json:"total_spent"`
	TotalWears  int      `json:"total_wears"`
	AvgCPW      float64  `json:"-"`
	BestItem    *string  `json:"best_item,omitempty"`
	BestItemCPW *float64 `json:"best_item_cpw,omitempty"`
}

// MarshalJSON renders AvgCPW as the string "Infinity" when the brand
// has no recorded wears. encoding/json rejects IEEE infinities, and
// the client already special-cases the string form.
func (b BrandStats) MarshalJSON() ([]byte, error) {
	type alias BrandStats
	var cpw any = b.AvgCPW
	if math.IsInf(b.AvgCPW, 1) {
		cpw = "Infinity"
	}
	return json.Marshal(struct {
		alias
		AvgCPW any `json:"avg_cpw"`
	}{alias(b), cpw})
}

// BrandReport is the full brand analytics response
type BrandReport struct {
	Brands         []BrandStats `json:"brands"`
	TopBrand       *BrandStats  `json:"top_brand,omitempty"`
	CategoryFilter string       `json:"category_filter,omitempty"`
	Insight        string       `json:"insight"`
}

// HeatmapDay is one cell of the wear-frequency heatmap
type HeatmapDay struct {
	Date      string `json:"date"` // YYYY-MM-DD
	WearCount int    `json:"wear_count"`
	Intensity int    `json:"intensity"` // 0-4 bucket
	IsToday   bool   `json:"is_today"`
}

// HeatmapData aggregates a contiguous day sequence with streaks
type HeatmapData struct {
	Days          []HeatmapDay `json:"days"`
	ActiveDays    int          `json:"active_days"`
	TotalWears    int          `json:"total_wears"`
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
	Insight       string       `json:"insight"`
}

// GapType classifies what kind of deficiency a gap describes
type GapType string

const (
	GapTypeCategory  GapType = "category"
	GapTypeColor     GapType = "color"
	GapTypeFormality GapType = "formality"
)

// GapSeverity orders gaps by urgency: critical > important > optional
type GapSeverity string

const (
	GapSeverityCritical  GapSeverity = "critical"
	GapSeverityImportant GapSeverity = "important"
	GapSeverityOptional  GapSeverity = "optional"
)

// Gap is a detected wardrobe composition deficiency. The ID is a
// stable slug so dismissals survive recomputation.
type Gap struct {
	ID          string      `json:"id"`
	Type        GapType     `json:"type"`
	Severity    GapSeverity `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Dismissed   bool        `json:"dismissed"`
}

// GapReport is the gap analysis response. TotalGaps counts only
// non-dismissed gaps.
type GapReport struct {
	Gaps      []Gap `json:"gaps"`
	TotalGaps int   `json:"total_gaps"`
}

// NeglectStats summarizes neglect across complete items
type NeglectStats struct {
	NeglectedCount int    `json:"neglected_count"`
	TotalCount     int    `json:"total_count"`
	Percentage     int    `json:"percentage"`
	Label          string `json:"label"`
}

// NeglectedItem pairs an item with how stale it is. Never-worn items
// carry DaysSinceWorn == -1 and rank ahead of everything else.
type NeglectedItem struct {
	Item          WardrobeItem `json:"item"`
	DaysSinceWorn int          `json:"days_since_worn"`
}

// NeglectReport combines aggregate stats with the top-neglected list
type NeglectReport struct {
	Stats         NeglectStats    `json:"stats"`
	TopNeglected  []NeglectedItem `json:"top_neglected"`
	ThresholdDays int             `json:"threshold_days"`
}

// SeasonalItemStat pairs an item with its wear count within a season
type SeasonalItemStat struct {
	Item      WardrobeItem `json:"item"`
	WearCount int          `json:"wear_count"`
}

// SeasonalReport is the per-season readiness result
type SeasonalReport struct {
	Season          Season             `json:"season"`
	Year            int                `json:"year"`
	TotalItems      int                `json:"total_items"`
	ByCategory      map[Category]int   `json:"by_category"`
	MostWorn        []SeasonalItemStat `json:"most_worn"`  // top 5, wear > 0
	Neglected       []WardrobeItem     `json:"neglected"`  // wear == 0 this season
	TotalWears      int                `json:"total_wears"`
	ReadinessScore  int                `json:"readiness_score"` // 0-10
	Recommendations []string           `json:"recommendations"` // at most 3
	ComparisonText  string             `json:"comparison_text"`
}

// ResaleEstimate is the estimated resale value for an item
type ResaleEstimate struct {
	ItemID         string  `json:"item_id"`
	EstimatedPrice float64 `json:"estimated_price"`
	PremiumBrand   bool    `json:"premium_brand"`
}

// OutfitItem is the display metadata for one item inside a planned
// outfit, as the trip planner sends it.
type OutfitItem struct {
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	ImageURL string   `json:"image_url,omitempty"`
}

// DayOutfit is one day's planned outfit on a trip
type DayOutfit struct {
	Date  string       `json:"date"` // YYYY-MM-DD
	Items []OutfitItem `json:"items"`
}

// PackingItem is a deduplicated packing entry: one physical item plus
// every trip day it is needed, in encounter order.
type PackingItem struct {
	Item OutfitItem `json:"item"`
	Days []string   `json:"days"`
}

// PeriodRange is an inclusive calendar period
type PeriodRange struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
	Label string `json:"label"`
}

// TransitionAlert warns that a season change is near
type TransitionAlert struct {
	Season    Season `json:"season"`
	DaysUntil int    `json:"days_until"`
	Message   string `json:"message"`
}
