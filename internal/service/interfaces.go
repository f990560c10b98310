package service

import (
	"context"
	"time"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/models"
)

// AnalyticsService defines the interface for wardrobe analytics
// business logic. Each method fetches a snapshot of the user's records
// and hands it to the pure analytics core.
type AnalyticsService interface {
	GetHealthScore(ctx context.Context, userID string) (*models.HealthScore, error)
	GetBrandReport(ctx context.Context, userID, categoryFilter string) (*models.BrandReport, error)
	GetHeatmap(ctx context.Context, userID string, view analytics.View, ref time.Time) (*models.HeatmapData, error)
	GetNeglectReport(ctx context.Context, userID string) (*models.NeglectReport, error)
}

// GapService defines the interface for gap analysis with dismissal
// persistence and a short-TTL result cache.
type GapService interface {
	GetGaps(ctx context.Context, userID, gender string, forceRefresh bool) (*models.GapReport, error)
	DismissGap(ctx context.Context, userID, gender, gapID string) (*models.GapReport, error)
}

// SeasonalService defines the interface for seasonal readiness reports
type SeasonalService interface {
	GetReport(ctx context.Context, userID string, season models.Season, year int) (*models.SeasonalReport, error)
}

// PreferenceService defines the interface for analytics preferences
type PreferenceService interface {
	GetNeglectThreshold(ctx context.Context, userID string) (int, error)
	SetNeglectThreshold(ctx context.Context, userID string, days int) error
}

// ResaleService defines the interface for resale price estimation
type ResaleService interface {
	EstimateItem(ctx context.Context, userID, itemID string) (*models.ResaleEstimate, error)
}

// TripService defines the interface for trip packing logic
type TripService interface {
	BuildPackingList(ctx context.Context, days []models.DayOutfit) []models.PackingItem
}
