// Package supabase is a thin PostgREST client for the hosted database.
// It speaks the /rest/v1 query dialect (eq. filters, select, order,
// Prefer headers) and the /auth/v1 user endpoint for token checks.
package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a Supabase project over PostgREST
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// User represents a Supabase-authenticated user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewClient creates a client for the given project URL and service key
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do builds, authorizes, and executes one PostgREST request. An empty
// userToken falls back to the service key; the apikey header always
// carries the service key.
func (c *Client) do(method, table string, query map[string]any, payload any, prefer, userToken string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), body)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	if userToken == "" {
		userToken = c.ServiceKey
	}
	req.Header.Set("Authorization", "Bearer "+userToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Query runs a filtered select against a table
func (c *Client) Query(table string, query map[string]any) ([]byte, error) {
	return c.QueryWithToken(table, query, "")
}

// QueryWithToken runs a select with a user JWT so row-level security
// applies to that user.
func (c *Client) QueryWithToken(table string, query map[string]any, userToken string) ([]byte, error) {
	return c.do(http.MethodGet, table, query, nil, "", userToken)
}

// Insert inserts a record and returns the created representation
func (c *Client) Insert(table string, data any) ([]byte, error) {
	return c.InsertWithToken(table, data, "")
}

// InsertWithToken inserts with a user JWT for RLS
func (c *Client) InsertWithToken(table string, data any, userToken string) ([]byte, error) {
	return c.do(http.MethodPost, table, nil, data, "return=representation", userToken)
}

// Upsert inserts or updates on conflict. onConflict names the columns
// that identify a duplicate (e.g. "user_id,key").
func (c *Client) Upsert(table string, data any, onConflict string) ([]byte, error) {
	return c.UpsertWithToken(table, data, onConflict, "")
}

// UpsertWithToken upserts with a user JWT for RLS
func (c *Client) UpsertWithToken(table string, data any, onConflict, userToken string) ([]byte, error) {
	query := map[string]any{"on_conflict": onConflict}
	return c.do(http.MethodPost, table, query, data, "return=representation,resolution=merge-duplicates", userToken)
}

// UpdateWhere patches all records matching the query
func (c *Client) UpdateWhere(table string, query map[string]any, data any) ([]byte, error) {
	return c.UpdateWhereWithToken(table, query, data, "")
}

// UpdateWhereWithToken patches matching records with a user JWT
func (c *Client) UpdateWhereWithToken(table string, query map[string]any, data any, userToken string) ([]byte, error) {
	return c.do(http.MethodPatch, table, query, data, "return=representation", userToken)
}

// DeleteWhere deletes all records matching the query
func (c *Client) DeleteWhere(table string, query map[string]any) error {
	return c.DeleteWhereWithToken(table, query, "")
}

// DeleteWhereWithToken deletes matching records with a user JWT
func (c *Client) DeleteWhereWithToken(table string, query map[string]any, userToken string) error {
	_, err := c.do(http.MethodDelete, table, query, nil, "", userToken)
	return err
}

// VerifyToken resolves a user JWT into the authenticated user via the
// Supabase auth endpoint.
func (c *Client) VerifyToken(token string) (*User, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
