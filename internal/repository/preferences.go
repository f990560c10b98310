package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/pkg/supabase"
)

type preferenceRepository struct {
	client *supabase.Client
}

// NewPreferenceRepository creates a new user preference repository
func NewPreferenceRepository(client *supabase.Client) PreferenceRepository {
	return &preferenceRepository{client: client}
}

func (r *preferenceRepository) Get(ctx context.Context, userID, key string) (*models.UserPreference, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"key":     fmt.Sprintf("eq.%s", key),
		"select":  "*",
	}

	body, err := r.client.Query("user_preferences", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	var prefs []models.UserPreference
	if err := json.Unmarshal(body, &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(prefs) == 0 {
		return nil, nil
	}
	return &prefs[0], nil
}

func (r *preferenceRepository) Set(ctx context.Context, userID, key, value string) error {
	data := map[string]any{
		"user_id": userID,
		"key":     key,
		"value":   value,
	}

	if _, err := r.client.Upsert("user_preferences", data, "user_id,key"); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}
