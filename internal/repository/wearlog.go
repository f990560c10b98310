package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/pkg/supabase"
)

type wearLogRepository struct {
	client *supabase.Client
}

// NewWearLogRepository creates a new wear log repository
func NewWearLogRepository(client *supabase.Client) WearLogRepository {
	return &wearLogRepository{client: client}
}

func (r *wearLogRepository) GetByUserID(ctx context.Context, userID string) ([]models.WearLogEntry, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "worn_date.asc",
	}

	body, err := r.client.Query("wear_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get wear logs: %w", err)
	}

	var logs []models.WearLogEntry
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *wearLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID, startDate, endDate string) ([]models.WearLogEntry, error) {
	// PostgREST needs both bounds on the same column; "and" groups them
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(worn_date.gte.%s,worn_date.lte.%s)", startDate, endDate),
		"select":  "*",
		"order":   "worn_date.asc",
	}

	body, err := r.client.Query("wear_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get wear logs: %w", err)
	}

	var logs []models.WearLogEntry
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}
