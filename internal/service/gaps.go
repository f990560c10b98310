package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/logger"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/repository"
)

// Detected gaps are cached briefly so repeated pulls while the user
// browses don't rescan the wardrobe. Dismissals are always read fresh.
const gapCacheTTL = 5 * time.Minute

type gapService struct {
	itemRepo      repository.ItemRepository
	dismissalRepo repository.DismissalRepository
	cache         *redis.Client
}

// NewGapService creates a new gap analysis service. The cache client
// may be nil, in which case every call recomputes.
func NewGapService(itemRepo repository.ItemRepository, dismissalRepo repository.DismissalRepository, cache *redis.Client) GapService {
	return &gapService{
		itemRepo:      itemRepo,
		dismissalRepo: dismissalRepo,
		cache:         cache,
	}
}

func (s *gapService) GetGaps(ctx context.Context, userID, gender string, forceRefresh bool) (*models.GapReport, error) {
	gaps, err := s.detectGaps(ctx, userID, gender, forceRefresh)
	if err != nil {
		return nil, err
	}

	dismissals, err := s.dismissalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dismissals: %w", err)
	}

	dismissed := make(map[string]bool, len(dismissals))
	for _, d := range dismissals {
		dismissed[d.GapID] = true
	}

	report := analytics.ApplyDismissals(gaps, dismissed)
	return &report, nil
}

func (s *gapService) DismissGap(ctx context.Context, userID, gender, gapID string) (*models.GapReport, error) {
	if err := s.dismissalRepo.Create(ctx, userID, gapID); err != nil {
		return nil, fmt.Errorf("failed to dismiss gap: %w", err)
	}
	return s.GetGaps(ctx, userID, gender, false)
}

// detectGaps returns raw gaps without dismissal state, consulting the
// cache unless forceRefresh is set.
func (s *gapService) detectGaps(ctx context.Context, userID, gender string, forceRefresh bool) ([]models.Gap, error) {
	key := fmt.Sprintf("gaps:%s:%s", userID, gender)

	if s.cache != nil && !forceRefresh {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var gaps []models.Gap
			if err := json.Unmarshal([]byte(raw), &gaps); err == nil {
				logger.WithContext(ctx).Debug("gap cache hit", logger.String("key", key))
				return gaps, nil
			}
		}
	}

	items, err := s.itemRepo.GetCompleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	gaps := analytics.DetectBasicGaps(items, gender)

	if s.cache != nil {
		payload, err := json.Marshal(gaps)
		if err == nil {
			if err := s.cache.Set(ctx, key, payload, gapCacheTTL).Err(); err != nil {
				logger.WithContext(ctx).Warn("failed to cache gaps",
					logger.String("key", key), logger.Err(err))
			}
		}
	}

	return gaps, nil
}
