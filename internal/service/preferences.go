package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/threadcount/backend/internal/analytics"
	"github.com/threadcount/backend/internal/repository"
)

// PreferenceKeyNeglectThreshold is the preference row key holding the
// per-user neglect threshold in days.
const PreferenceKeyNeglectThreshold = "neglect_threshold_days"

type preferenceService struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceService creates a new analytics preference service
func NewPreferenceService(prefRepo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{prefRepo: prefRepo}
}

func (s *preferenceService) GetNeglectThreshold(ctx context.Context, userID string) (int, error) {
	pref, err := s.prefRepo.Get(ctx, userID, PreferenceKeyNeglectThreshold)
	if err != nil {
		return 0, fmt.Errorf("failed to get neglect threshold: %w", err)
	}
	if pref == nil {
		return analytics.DefaultNeglectThresholdDays, nil
	}
	return analytics.ParseNeglectThreshold(pref.Value), nil
}

func (s *preferenceService) SetNeglectThreshold(ctx context.Context, userID string, days int) error {
	if err := analytics.ValidateNeglectThreshold(days); err != nil {
		return err
	}

	if err := s.prefRepo.Set(ctx, userID, PreferenceKeyNeglectThreshold, strconv.Itoa(days)); err != nil {
		return fmt.Errorf("failed to set neglect threshold: %w", err)
	}
	return nil
}
