package repository

import (
	"context"

	"github.com/threadcount/backend/internal/models"
)

// ItemRepository defines the interface for wardrobe item data access.
// Reads return only items with status "complete"; incomplete items
// never participate in analytics.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*models.WardrobeItem, error)
	GetCompleteByUserID(ctx context.Context, userID string) ([]models.WardrobeItem, error)
}

// WearLogRepository defines the interface for wear log data access
type WearLogRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.WearLogEntry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID, startDate, endDate string) ([]models.WearLogEntry, error)
}

// PreferenceRepository defines the interface for user preference data
// access. Values are free-form strings; parsing belongs to callers.
type PreferenceRepository interface {
	Get(ctx context.Context, userID, key string) (*models.UserPreference, error)
	Set(ctx context.Context, userID, key, value string) error
}

// DismissalRepository defines the interface for gap dismissal data access
type DismissalRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.GapDismissal, error)
	Create(ctx context.Context, userID, gapID string) error
}

// SnapshotRepository defines the interface for per-season wear
// snapshots backing year-over-year comparisons.
type SnapshotRepository interface {
	Get(ctx context.Context, userID string, season models.Season, year int) (*models.SeasonalSnapshot, error)
	Upsert(ctx context.Context, snapshot *models.SeasonalSnapshot) error
}
