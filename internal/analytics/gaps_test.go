package analytics

import (
	"testing"

	"github.com/threadcount/backend/internal/models"
)

func gapItem(id string, category models.Category, colors []string, occasions []string) models.WardrobeItem {
	return models.WardrobeItem{
		ID:        id,
		Category:  category,
		Colors:    colors,
		Occasions: occasions,
		Status:    models.ItemStatusComplete,
	}
}

func TestDetectBasicGaps_EmptyWardrobe(t *testing.T) {
	gaps := DetectBasicGaps(nil, "")
	if len(gaps) != 6 {
		t.Fatalf("len(gaps) = %d, want 6", len(gaps))
	}
	for _, gap := range gaps {
		if gap.Severity != models.GapSeverityCritical {
			t.Errorf("gap %s severity = %s, want critical", gap.ID, gap.Severity)
		}
		if gap.Dismissed {
			t.Errorf("gap %s should not start dismissed", gap.ID)
		}
	}
}

func TestDetectBasicGaps_ManExcludesDresses(t *testing.T) {
	gaps := DetectBasicGaps(nil, "man")
	if len(gaps) != 5 {
		t.Fatalf("len(gaps) = %d, want 5", len(gaps))
	}
	for _, gap := range gaps {
		if gap.ID == "missing-dresses" {
			t.Error("dresses gap should be excluded for gender man")
		}
	}
}

func TestDetectBasicGaps_SingleItemIsImportant(t *testing.T) {
	items := []models.WardrobeItem{
		gapItem("t1", models.CategoryTops, []string{"red"}, nil),
	}

	gaps := DetectBasicGaps(items, "")
	var topsGap *models.Gap
	for i := range gaps {
		if gaps[i].ID == "low-tops" {
			topsGap = &gaps[i]
		}
	}
	if topsGap == nil {
		t.Fatal("expected low-tops gap for a single top")
	}
	if topsGap.Severity != models.GapSeverityImportant {
		t.Errorf("severity = %s, want important", topsGap.Severity)
	}
}

func TestDetectBasicGaps_SeverityOrdering(t *testing.T) {
	// One top only (important) and five missing categories (critical):
	// criticals must come first.
	items := []models.WardrobeItem{
		gapItem("t1", models.CategoryTops, []string{"red"}, nil),
	}

	gaps := DetectBasicGaps(items, "")
	seenImportant := false
	for _, gap := range gaps {
		switch gap.Severity {
		case models.GapSeverityImportant:
			seenImportant = true
		case models.GapSeverityCritical:
			if seenImportant {
				t.Fatalf("critical gap %s after important gap", gap.ID)
			}
		}
	}
}

func TestDetectBasicGaps_ColorMonotony(t *testing.T) {
	dark := []string{"black"}
	items := []models.WardrobeItem{
		gapItem("1", models.CategoryTops, dark, nil),
		gapItem("2", models.CategoryTops, dark, nil),
		gapItem("3", models.CategoryBottoms, []string{"navy"}, nil),
		gapItem("4", models.CategoryShoes, []string{"charcoal"}, nil),
	}

	gaps := DetectBasicGaps(items, "")
	found := false
	for _, gap := range gaps {
		if gap.ID == GapIDColorMonotony {
			found = true
			if gap.Type != models.GapTypeColor || gap.Severity != models.GapSeverityImportant {
				t.Errorf("color gap = {%s, %s}, want {color, important}", gap.Type, gap.Severity)
			}
		}
	}
	if !found {
		t.Error("expected color monotony gap for an all-dark wardrobe")
	}
}

func TestDetectBasicGaps_NoColorMonotonyWithVariety(t *testing.T) {
	items := []models.WardrobeItem{
		gapItem("1", models.CategoryTops, []string{"black"}, nil),
		gapItem("2", models.CategoryTops, []string{"red"}, nil),
		gapItem("3", models.CategoryBottoms, []string{"green"}, nil),
	}

	for _, gap := range DetectBasicGaps(items, "") {
		if gap.ID == GapIDColorMonotony {
			t.Error("unexpected color monotony gap for a varied wardrobe")
		}
	}
}

func TestDetectBasicGaps_FormalityNeedsFiveItems(t *testing.T) {
	colors := []string{"red"}
	small := []models.WardrobeItem{
		gapItem("1", models.CategoryTops, colors, nil),
		gapItem("2", models.CategoryTops, colors, nil),
		gapItem("3", models.CategoryBottoms, colors, nil),
		gapItem("4", models.CategoryBottoms, colors, nil),
	}
	for _, gap := range DetectBasicGaps(small, "") {
		if gap.ID == GapIDNoFormalWear {
			t.Error("formality gap should not trigger below five items")
		}
	}

	big := append(small, gapItem("5", models.CategoryShoes, colors, nil))
	found := false
	for _, gap := range DetectBasicGaps(big, "") {
		if gap.ID == GapIDNoFormalWear {
			found = true
		}
	}
	if !found {
		t.Error("expected formality gap for five casual items")
	}
}

func TestDetectBasicGaps_FormalTagSuppressesFormalityGap(t *testing.T) {
	colors := []string{"red"}
	items := []models.WardrobeItem{
		gapItem("1", models.CategoryTops, colors, []string{"formal"}),
		gapItem("2", models.CategoryTops, colors, nil),
		gapItem("3", models.CategoryBottoms, colors, nil),
		gapItem("4", models.CategoryBottoms, colors, nil),
		gapItem("5", models.CategoryShoes, colors, nil),
	}
	for _, gap := range DetectBasicGaps(items, "") {
		if gap.ID == GapIDNoFormalWear {
			t.Error("formality gap should not trigger with a formal item present")
		}
	}
}

func TestApplyDismissals(t *testing.T) {
	gaps := DetectBasicGaps(nil, "")
	report := ApplyDismissals(gaps, map[string]bool{
		"missing-tops":  true,
		"missing-shoes": true,
	})

	if report.TotalGaps != 4 {
		t.Errorf("TotalGaps = %d, want 4 non-dismissed", report.TotalGaps)
	}
	dismissed := 0
	for _, gap := range report.Gaps {
		if gap.Dismissed {
			dismissed++
		}
	}
	if dismissed != 2 {
		t.Errorf("dismissed = %d, want 2", dismissed)
	}
}
