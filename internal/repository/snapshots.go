package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/pkg/supabase"
)

type snapshotRepository struct {
	client *supabase.Client
}

// NewSnapshotRepository creates a new seasonal snapshot repository
func NewSnapshotRepository(client *supabase.Client) SnapshotRepository {
	return &snapshotRepository{client: client}
}

func (r *snapshotRepository) Get(ctx context.Context, userID string, season models.Season, year int) (*models.SeasonalSnapshot, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"season":  fmt.Sprintf("eq.%s", season),
		"year":    fmt.Sprintf("eq.%d", year),
		"select":  "*",
	}

	body, err := r.client.Query("seasonal_reports", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasonal snapshot: %w", err)
	}

	var snapshots []models.SeasonalSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}

func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *models.SeasonalSnapshot) error {
	data := map[string]any{
		"user_id":     snapshot.UserID,
		"season":      snapshot.Season,
		"year":        snapshot.Year,
		"total_wears": snapshot.TotalWears,
	}

	if _, err := r.client.Upsert("seasonal_reports", data, "user_id,season,year"); err != nil {
		return fmt.Errorf("failed to upsert seasonal snapshot: %w", err)
	}

	return nil
}
