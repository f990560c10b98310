package service

import (
	"context"
	"fmt"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/internal/repository"
)

type resaleService struct {
	itemRepo repository.ItemRepository
}

// NewResaleService creates a new resale estimation service
func NewResaleService(itemRepo repository.ItemRepository) ResaleService {
	return &resaleService{itemRepo: itemRepo}
}

// EstimateItem returns (nil, nil) when the item does not exist or
// belongs to another user.
func (s *resaleService) EstimateItem(ctx context.Context, userID, itemID string) (*models.ResaleEstimate, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil || item.UserID != userID {
		return nil, nil
	}

	estimate := analytics.EstimateResalePrice(*item)
	return &estimate, nil
}
