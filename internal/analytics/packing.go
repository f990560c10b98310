package analytics

import "github.com/threadcount/backend/internal/models"

// DedupePackingList merges a per-day outfit plan into one packing
// entry per physical item. The first occurrence of an item creates its
// entry; every later occurrence appends that day's date to the entry,
// preserving encounter order for both items and days.
func DedupePackingList(days []models.DayOutfit) []models.PackingItem {
	index := make(map[string]int)
	var packed []models.PackingItem

	for _, day := range days {
		for _, item := range day.Items {
			if i, seen := index[item.ItemID]; seen {
				packed[i].Days = append(packed[i].Days, day.Date)
				continue
			}
			index[item.ItemID] = len(packed)
			packed = append(packed, models.PackingItem{
				Item: item,
				Days: []string{day.Date},
			})
		}
	}

	return packed
}
