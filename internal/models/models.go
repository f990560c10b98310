package models

import "time"

// Category is the fixed wardrobe taxonomy
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryOuterwear,
	CategoryShoes,
	CategoryAccessories,
}

// ItemStatusComplete marks an item as fully catalogued. Items in any
// other status are excluded from every aggregate.
const ItemStatusComplete = "complete"

// Season represents a quarter of the style year
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// WardrobeItem represents a single catalogued garment
type WardrobeItem struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Category      Category   `json:"category"`
	SubCategory   *string    `json:"sub_category,omitempty"`
	Brand         *string    `json:"brand,omitempty"`
	Name          *string    `json:"name,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Colors        []string   `json:"colors,omitempty"`
	Seasons       []Season   `json:"seasons,omitempty"`
	Occasions     []string   `json:"occasions,omitempty"`
	WearCount     int        `json:"wear_count"`
	PurchasePrice *float64   `json:"purchase_price,omitempty"`
	LastWornAt    *time.Time `json:"last_worn_at,omitempty"`
	NeglectStatus bool       `json:"neglect_status"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsComplete reports whether the item participates in aggregates
func (w *WardrobeItem) IsComplete() bool {
	return w.Status == ItemStatusComplete
}

// BrandName returns the brand or "" when unset
func (w *WardrobeItem) BrandName() string {
	if w.Brand == nil {
		return ""
	}
	return *w.Brand
}

// Price returns the purchase price, 0 when unset
func (w *WardrobeItem) Price() float64 {
	if w.PurchasePrice == nil {
		return 0
	}
	return *w.PurchasePrice
}

// DisplayName returns the item name or its category as a fallback
func (w *WardrobeItem) DisplayName() string {
	if w.Name != nil && *w.Name != "" {
		return *w.Name
	}
	return string(w.Category)
}

// WearLogEntry represents one recorded wear of an item on a calendar
// day. Multiple entries for the same item on the same day are allowed
// and each counts as one wear.
type WearLogEntry struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	WornDate string `json:"worn_date"` // YYYY-MM-DD, no time component
}

// User represents a Supabase-authenticated user
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPreference is a single persisted key/value preference row.
// Values are stored as strings; readers are responsible for parsing
// and falling back to defaults on garbage.
type UserPreference struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GapDismissal records that a user dismissed a detected gap
type GapDismissal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	GapID       string    `json:"gap_id"`
	DismissedAt time.Time `json:"dismissed_at"`
}

// SeasonalSnapshot is the persisted per-season wear total used for
// year-over-year comparisons.
type SeasonalSnapshot struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Season     Season    `json:"season"`
	Year       int       `json:"year"`
	TotalWears int       `json:"total_wears"`
	CreatedAt  time.Time `json:"created_at"`
}
