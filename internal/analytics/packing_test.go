package analytics

import (
	"reflect"
	"testing"

	"github.com/threadcount/backend/internal/models"
)

func TestDedupePackingList(t *testing.T) {
	jeans := models.OutfitItem{ItemID: "jeans", Name: "Blue jeans", Category: models.CategoryBottoms}
	tee := models.OutfitItem{ItemID: "tee", Name: "White tee", Category: models.CategoryTops}
	jacket := models.OutfitItem{ItemID: "jacket", Name: "Denim jacket", Category: models.CategoryOuterwear}

	days := []models.DayOutfit{
		{Date: "2026-07-01", Items: []models.OutfitItem{jeans, tee}},
		{Date: "2026-07-02", Items: []models.OutfitItem{jeans, jacket}},
		{Date: "2026-07-03", Items: []models.OutfitItem{jeans}},
	}

	packed := DedupePackingList(days)
	if len(packed) != 3 {
		t.Fatalf("len(packed) = %d, want 3", len(packed))
	}

	if packed[0].Item.ItemID != "jeans" {
		t.Errorf("packed[0] = %s, want jeans (first encountered)", packed[0].Item.ItemID)
	}
	wantDays := []string{"2026-07-01", "2026-07-02", "2026-07-03"}
	if !reflect.DeepEqual(packed[0].Days, wantDays) {
		t.Errorf("jeans days = %v, want %v in encounter order", packed[0].Days, wantDays)
	}

	if packed[1].Item.ItemID != "tee" || !reflect.DeepEqual(packed[1].Days, []string{"2026-07-01"}) {
		t.Errorf("packed[1] = %+v, want tee on day one only", packed[1])
	}
	if packed[2].Item.ItemID != "jacket" || !reflect.DeepEqual(packed[2].Days, []string{"2026-07-02"}) {
		t.Errorf("packed[2] = %+v, want jacket on day two only", packed[2])
	}
}

func TestDedupePackingList_Empty(t *testing.T) {
	if packed := DedupePackingList(nil); len(packed) != 0 {
		t.Errorf("len(packed) = %d, want 0", len(packed))
	}
}
