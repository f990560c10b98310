package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/pkg/supabase"
)

type dismissalRepository struct {
	client *supabase.Client
}

// NewDismissalRepository creates a new gap dismissal repository
func NewDismissalRepository(client *supabase.Client) DismissalRepository {
	return &dismissalRepository{client: client}
}

func (r *dismissalRepository) GetByUserID(ctx context.Context, userID string) ([]models.GapDismissal, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query("gap_dismissals", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get dismissals: %w", err)
	}

	var dismissals []models.GapDismissal
	if err := json.Unmarshal(body, &dismissals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return dismissals, nil
}

func (r *dismissalRepository) Create(ctx context.Context, userID, gapID string) error {
	data := map[string]any{
		"user_id": userID,
		"gap_id":  gapID,
	}

	// Re-dismissing the same gap is a no-op, not an error
	if _, err := r.client.Upsert("gap_dismissals", data, "user_id,gap_id"); err != nil {
		return fmt.Errorf("failed to create dismissal: %w", err)
	}

	return nil
}
