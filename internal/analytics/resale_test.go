package analytics

import (
	"testing"

	"github.com/threadcount/backend/internal/models"
)

func resaleItem(brand string, price float64, wears int) models.WardrobeItem {
	item := models.WardrobeItem{
		ID:        "item",
		Category:  models.CategoryShoes,
		WearCount: wears,
		Status:    models.ItemStatusComplete,
	}
	if brand != "" {
		item.Brand = &brand
	}
	if price > 0 {
		item.PurchasePrice = &price
	}
	return item
}

func TestEstimateResalePrice(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		price float64
		wears int
		want  float64
	}{
		{"premium brand unworn", "Nike", 200, 0, 140},
		{"premium brand case-insensitive", "NIKE", 200, 0, 140},
		{"unknown brand unworn", "Shein", 100, 0, 50},
		{"no price", "Nike", 0, 10, 15},
		{"no brand", "", 100, 0, 50},
		{"wear discount", "Nike", 200, 10, 126}, // 140 * 0.90
		{"wear discount caps at 30%", "Nike", 200, 100, 98},
		{"floor of 5", "Shein", 8, 30, 5}, // 8*0.5*0.7 = 2.8 -> floor
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateResalePrice(resaleItem(tt.brand, tt.price, tt.wears))
			if got.EstimatedPrice != tt.want {
				t.Errorf("EstimateResalePrice = %v, want %v", got.EstimatedPrice, tt.want)
			}
		})
	}
}

func TestEstimateResalePrice_PremiumFlag(t *testing.T) {
	if got := EstimateResalePrice(resaleItem("Patagonia", 100, 0)); !got.PremiumBrand {
		t.Error("Patagonia should be flagged premium")
	}
	if got := EstimateResalePrice(resaleItem("Unknown Label", 100, 0)); got.PremiumBrand {
		t.Error("unknown brand should not be flagged premium")
	}
}

func TestIsPremiumBrand_Trimming(t *testing.T) {
	if !IsPremiumBrand("  Levi's  ") {
		t.Error("brand matching should trim whitespace")
	}
}
