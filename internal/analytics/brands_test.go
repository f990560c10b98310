package analytics

import (
	"math"
	"strings"
	"testing"

	"github.com/threadcount/backend/internal/models"
)

func brandItem(id, brand string, category models.Category, price float64, wears int) models.WardrobeItem {
	name := brand + " " + id
	item := models.WardrobeItem{
		ID:        id,
		Name:      &name,
		Category:  category,
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

func wears(itemID string, n int) []models.WearLogEntry {
	logs := make([]models.WearLogEntry, n)
	for i := range logs {
		logs[i] = models.WearLogEntry{ItemID: itemID, WornDate: "2026-01-15"}
	}
	return logs
}

func TestCalculateBrandStats_SmallBrandsExcluded(t *testing.T) {
	// A sole brand with two items never qualifies
	items := []models.WardrobeItem{
		brandItem("a", "Acme", models.CategoryTops, 40, 4),
		brandItem("b", "Acme", models.CategoryTops, 60, 6),
	}

	report := CalculateBrandStats(items, wears("a", 4), "")
	if len(report.Brands) != 0 {
		t.Errorf("len(Brands) = %d, want 0", len(report.Brands))
	}
	if report.TopBrand != nil {
		t.Errorf("TopBrand = %+v, want nil", report.TopBrand)
	}
}

func TestCalculateBrandStats_GroupingAndCPW(t *testing.T) {
	items := []models.WardrobeItem{
		brandItem("a1", "Acme", models.CategoryTops, 30, 10),
		brandItem("a2", "Acme", models.CategoryTops, 50, 10),
		brandItem("a3", "Acme", models.CategoryBottoms, 20, 5),
		brandItem("u1", "", models.CategoryTops, 100, 1), // no brand, excluded
	}
	var logs []models.WearLogEntry
	logs = append(logs, wears("a1", 10)...)
	logs = append(logs, wears("a2", 10)...)
	logs = append(logs, wears("a3", 5)...)

	report := CalculateBrandStats(items, logs, "")
	if len(report.Brands) != 1 {
		t.Fatalf("len(Brands) = %d, want 1", len(report.Brands))
	}

	acme := report.Brands[0]
	if acme.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", acme.ItemCount)
	}
	if acme.TotalSpent != 100 {
		t.Errorf("TotalSpent = %v, want 100", acme.TotalSpent)
	}
	if acme.TotalWears != 25 {
		t.Errorf("TotalWears = %d, want 25", acme.TotalWears)
	}
	if acme.AvgCPW != 4 {
		t.Errorf("AvgCPW = %v, want 4", acme.AvgCPW)
	}
	// Best item: a1 at 30/10 = 3.00 per wear
	if acme.BestItem == nil || *acme.BestItem != "Acme a1" {
		t.Errorf("BestItem = %v, want Acme a1", acme.BestItem)
	}
	if acme.BestItemCPW == nil || *acme.BestItemCPW != 3 {
		t.Errorf("BestItemCPW = %v, want 3", acme.BestItemCPW)
	}
}

func TestCalculateBrandStats_InfinitySortsLast(t *testing.T) {
	items := []models.WardrobeItem{
		brandItem("n1", "NeverWorn", models.CategoryTops, 100, 0),
		brandItem("n2", "NeverWorn", models.CategoryTops, 100, 0),
		brandItem("n3", "NeverWorn", models.CategoryTops, 100, 0),
		brandItem("w1", "Worn", models.CategoryTops, 30, 10),
		brandItem("w2", "Worn", models.CategoryTops, 30, 10),
		brandItem("w3", "Worn", models.CategoryTops, 30, 10),
	}
	var logs []models.WearLogEntry
	for _, id := range []string{"w1", "w2", "w3"} {
		logs = append(logs, wears(id, 10)...)
	}

	report := CalculateBrandStats(items, logs, "")
	if len(report.Brands) != 2 {
		t.Fatalf("len(Brands) = %d, want 2", len(report.Brands))
	}
	if report.Brands[0].Brand != "Worn" {
		t.Errorf("first brand = %s, want Worn", report.Brands[0].Brand)
	}
	if !math.IsInf(report.Brands[1].AvgCPW, 1) {
		t.Errorf("last brand AvgCPW = %v, want +Inf", report.Brands[1].AvgCPW)
	}
	if report.TopBrand == nil || report.TopBrand.Brand != "Worn" {
		t.Errorf("TopBrand = %+v, want Worn", report.TopBrand)
	}
}

func TestCalculateBrandStats_CategoryFilter(t *testing.T) {
	items := []models.WardrobeItem{
		brandItem("a1", "Acme", models.CategoryTops, 30, 3),
		brandItem("a2", "Acme", models.CategoryTops, 30, 3),
		brandItem("a3", "Acme", models.CategoryShoes, 30, 3),
	}

	report := CalculateBrandStats(items, nil, "tops")
	if report.CategoryFilter != "tops" {
		t.Errorf("CategoryFilter = %q, want tops", report.CategoryFilter)
	}
	// Only two tops remain, below the sample minimum
	if len(report.Brands) != 0 {
		t.Errorf("len(Brands) = %d, want 0 after filter", len(report.Brands))
	}
}

func TestGenerateBrandInsight(t *testing.T) {
	if got := GenerateBrandInsight(nil); !strings.Contains(got, "Add brands") {
		t.Errorf("empty insight = %q, want prompt to add brands", got)
	}

	infBrand := []models.BrandStats{{Brand: "Ghost", AvgCPW: math.Inf(1)}}
	if got := GenerateBrandInsight(infBrand); !strings.Contains(got, "purchase prices") {
		t.Errorf("infinite-CPW insight = %q, want price prompt", got)
	}

	best := "Acme tee"
	bestCPW := 1.5
	brands := []models.BrandStats{{
		Brand:       "Acme",
		AvgCPW:      3.256,
		BestItem:    &best,
		BestItemCPW: &bestCPW,
	}}
	got := GenerateBrandInsight(brands)
	if !strings.Contains(got, "Acme") || !strings.Contains(got, "$3.26") {
		t.Errorf("insight = %q, want brand name and 2-decimal CPW", got)
	}
	if !strings.Contains(got, "Acme tee") || !strings.Contains(got, "$1.50") {
		t.Errorf("insight = %q, want best item mention", got)
	}
}
