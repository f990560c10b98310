package service

import (
	"context"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/models"
)

type tripService struct{}

// NewTripService creates a new trip packing service
func NewTripService() TripService {
	return &tripService{}
}

func (s *tripService) BuildPackingList(ctx context.Context, days []models.DayOutfit) []models.PackingItem {
	return analytics.DedupePackingList(days)
}
