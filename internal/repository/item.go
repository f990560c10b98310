package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/threadcount/backend/internal/models"
	"github.com/threadcount/backend/pkg/supabase"
)

type itemRepository struct {
	client *supabase.Client
}

// NewItemRepository creates a new wardrobe item repository
func NewItemRepository(client *supabase.Client) ItemRepository {
	return &itemRepository{client: client}
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*models.WardrobeItem, error) {
	query := map[string]any{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query("wardrobe_items", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	var items []models.WardrobeItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *itemRepository) GetCompleteByUserID(ctx context.Context, userID string) ([]models.WardrobeItem, error) {
	query := map[string]any{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"status":  fmt.Sprintf("eq.%s", models.ItemStatusComplete),
		"select":  "*",
		"order":   "created_at.asc",
	}

	body, err := r.client.Query("wardrobe_items", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	var items []models.WardrobeItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return items, nil
}
