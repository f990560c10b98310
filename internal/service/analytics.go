package service

import (
	"context"
	"fmt"
	"time"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/repository"
)

type analyticsService struct {
	itemRepo    repository.ItemRepository
	wearLogRepo repository.WearLogRepository
	prefRepo    repository.PreferenceRepository
	now         func() time.Time
}

// NewAnalyticsService creates a new wardrobe analytics service
func NewAnalyticsService(itemRepo repository.ItemRepository, wearLogRepo repository.WearLogRepository, prefRepo repository.PreferenceRepository) AnalyticsService {
	return &analyticsService{
		itemRepo:    itemRepo,
		wearLogRepo: wearLogRepo,
		prefRepo:    prefRepo,
		now:         time.Now,
	}
}

func (s *analyticsService) GetHealthScore(ctx context.Context, userID string) (*models.HealthScore, error) {
	items, err := s.itemRepo.GetCompleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	score := analytics.CalculateHealthScore(items)
	return &score, nil
}

func (s *analyticsService) GetBrandReport(ctx context.Context, userID, categoryFilter string) (*models.BrandReport, error) {
	items, err := s.itemRepo.GetCompleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	logs, err := s.wearLogRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wear logs: %w", err)
	}

	report := analytics.CalculateBrandStats(items, logs, categoryFilter)
	return &report, nil
}

func (s *analyticsService) GetHeatmap(ctx context.Context, userID string, view analytics.View, ref time.Time) (*models.HeatmapData, error) {
	period := analytics.GetDateRange(view, ref)

	logs, err := s.wearLogRepo.GetByUserIDAndDateRange(ctx, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get wear logs: %w", err)
	}

	today := s.now().Format(analytics.DateLayout)
	days := analytics.BuildDaySeries(logs, period.Start, period.End, today)
	data := analytics.BuildHeatmap(days, today)
	return &data, nil
}

func (s *analyticsService) GetNeglectReport(ctx context.Context, userID string) (*models.NeglectReport, error) {
	threshold := analytics.DefaultNeglectThresholdDays
	pref, err := s.prefRepo.Get(ctx, userID, PreferenceKeyNeglectThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get neglect threshold: %w", err)
	}
	if pref != nil {
		threshold = analytics.ParseNeglectThreshold(pref.Value)
	}

	items, err := s.itemRepo.GetCompleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	top := analytics.TopNeglected(items, s.now())
	if top == nil {
		top = []models.NeglectedItem{}
	}

	return &models.NeglectReport{
		Stats:         analytics.GetNeglectStats(items),
		TopNeglected:  top,
		ThresholdDays: threshold,
	}, nil
}
