package analytics

import (
	"math"
	"strings"

	"github.com/threadcount/backend/internal/models"
)

// Resale model parameters. Premium brands hold roughly 70% of their
// purchase price on the secondhand market, everything else about 50%.
// Each wear knocks 1% off, capped at 30%, and nothing sells for less
// than the floor.
const (
	resaleDefaultPrice  = 15.0
	resaleFloorPrice    = 5.0
	premiumRetention    = 0.70
	standardRetention   = 0.50
	wearDiscountPerWear = 0.01
	wearDiscountCap     = 0.30
)

// premiumBrands is the lookup table of brands that hold resale value.
// Matching is case-insensitive on the trimmed brand name.
var premiumBrands = map[string]struct{}{
	"nike":           {},
	"adidas":         {},
	"new balance":    {},
	"levi's":         {},
	"levis":          {},
	"patagonia":      {},
	"the north face": {},
	"north face":     {},
	"lululemon":      {},
	"carhartt":       {},
	"dr. martens":    {},
	"ralph lauren":   {},
	"tommy hilfiger": {},
	"gucci":          {},
	"prada":          {},
	"coach":          {},
	"burberry":       {},
}

// IsPremiumBrand reports whether a brand is in the premium tier
func IsPremiumBrand(brand string) bool {
	_, ok := premiumBrands[strings.ToLower(strings.TrimSpace(brand))]
	return ok
}

// EstimateResalePrice estimates an item's resale value from its
// purchase price, brand tier, and wear count. Items without a known
// purchase price get a flat default.
func EstimateResalePrice(item models.WardrobeItem) models.ResaleEstimate {
	estimate := models.ResaleEstimate{
		ItemID:       item.ID,
		PremiumBrand: IsPremiumBrand(item.BrandName()),
	}

	price := item.Price()
	if price <= 0 {
		estimate.EstimatedPrice = resaleDefaultPrice
		return estimate
	}

	retention := standardRetention
	if estimate.PremiumBrand {
		retention = premiumRetention
	}

	discount := math.Min(float64(item.WearCount)*wearDiscountPerWear, wearDiscountCap)
	value := math.Round(price * retention * (1 - discount))
	estimate.EstimatedPrice = math.Max(value, resaleFloorPrice)

	return estimate
}
