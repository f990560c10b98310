package service

import (
	"context"
	"fmt"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/logger"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/repository"
)

type seasonalService struct {
	itemRepo     repository.ItemRepository
	wearLogRepo  repository.WearLogRepository
	snapshotRepo repository.SnapshotRepository
}

// NewSeasonalService creates a new seasonal readiness service
func NewSeasonalService(itemRepo repository.ItemRepository, wearLogRepo repository.WearLogRepository, snapshotRepo repository.SnapshotRepository) SeasonalService {
	return &seasonalService{
		itemRepo:     itemRepo,
		wearLogRepo:  wearLogRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *seasonalService) GetReport(ctx context.Context, userID string, season models.Season, year int) (*models.SeasonalReport, error) {
	period := analytics.SeasonDateRange(season, year)

	items, err := s.itemRepo.GetCompleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	logs, err := s.wearLogRepo.GetByUserIDAndDateRange(ctx, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get wear logs: %w", err)
	}

	// Year-over-year comparison uses last year's persisted wear total
	var previousWears *int
	previous, err := s.snapshotRepo.Get(ctx, userID, season, year-1)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous snapshot: %w", err)
	}
	if previous != nil {
		previousWears = &previous.TotalWears
	}

	report := analytics.BuildSeasonalReport(season, year, items, logs, previousWears)

	// Persist this season's total for next year's comparison. A failed
	// write degrades next year's report, not this one.
	snapshot := &models.SeasonalSnapshot{
		UserID:     userID,
		Season:     season,
		Year:       year,
		TotalWears: report.TotalWears,
	}
	if err := s.snapshotRepo.Upsert(ctx, snapshot); err != nil {
		logger.WithContext(ctx).Warn("failed to upsert seasonal snapshot",
			logger.String("season", string(season)), logger.Int("year", year), logger.Err(err))
	}

	return &report, nil
}
