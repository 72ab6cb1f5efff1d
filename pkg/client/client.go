// Package client is a Go consumer of the finboard HTTP API. Client
// wraps the raw endpoints; the list containers in lists.go mirror the
// dashboard's data hooks, keeping a local copy of each list that is
// patched in place after successful mutations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/finboard/finboard/internal/models"
)

// APIError is a non-2xx response decoded from the {"error": ...}
// envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the finboard REST endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the API served at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// ListAssets fetches a user's tracked assets.
func (c *Client) ListAssets(ctx context.Context, userID string) ([]models.TrackedAsset, error) {
	var out struct {
		Assets []models.TrackedAsset `json:"assets"`
	}
	query := url.Values{"userId": {userID}}
	err := c.do(ctx, http.MethodGet, "/api/assets", query, nil, &out)
	return out.Assets, err
}

// AddAsset tracks a new symbol for a user.
func (c *Client) AddAsset(ctx context.Context, userID, symbol string, assetType models.AssetType) (*models.TrackedAsset, error) {
	body := map[string]interface{}{
		"userId":    userID,
		"symbol":    symbol,
		"assetType": assetType,
	}
	var out struct {
		Asset models.TrackedAsset `json:"asset"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/assets", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// RemoveAsset stops tracking a symbol for a user.
func (c *Client) RemoveAsset(ctx context.Context, userID, symbol string) error {
	query := url.Values{"userId": {userID}, "symbol": {symbol}}
	return c.do(ctx, http.MethodDelete, "/api/assets", query, nil, nil)
}

// ListWatchlists fetches a user's watchlists.
func (c *Client) ListWatchlists(ctx context.Context, userID string) ([]models.Watchlist, error) {
	var out struct {
		Watchlists []models.Watchlist `json:"watchlists"`
	}
	query := url.Values{"userId": {userID}}
	err := c.do(ctx, http.MethodGet, "/api/watchlists", query, nil, &out)
	return out.Watchlists, err
}

// CreateWatchlist creates a named watchlist for a user.
func (c *Client) CreateWatchlist(ctx context.Context, userID, name, description string) (*models.Watchlist, error) {
	body := map[string]interface{}{
		"userId":      userID,
		"name":        name,
		"description": description,
	}
	var out struct {
		Watchlist models.Watchlist `json:"watchlist"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/watchlists", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Watchlist, nil
}

// DeleteWatchlist deletes a watchlist the user owns.
func (c *Client) DeleteWatchlist(ctx context.Context, userID string, watchlistID uint) error {
	query := url.Values{
		"userId":      {userID},
		"watchlistId": {strconv.FormatUint(uint64(watchlistID), 10)},
	}
	return c.do(ctx, http.MethodDelete, "/api/watchlists", query, nil, nil)
}

// ListWatchlistAssets fetches a watchlist's members in display order.
func (c *Client) ListWatchlistAssets(ctx context.Context, watchlistID uint) ([]models.WatchlistAsset, error) {
	var out struct {
		Assets []models.WatchlistAsset `json:"assets"`
	}
	path := fmt.Sprintf("/api/watchlists/%d/assets", watchlistID)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out.Assets, err
}

// AddWatchlistAsset adds a symbol to a watchlist.
func (c *Client) AddWatchlistAsset(ctx context.Context, watchlistID uint, symbol string, assetType models.AssetType) (*models.WatchlistAsset, error) {
	body := map[string]interface{}{
		"symbol":    symbol,
		"assetType": assetType,
	}
	var out struct {
		Asset models.WatchlistAsset `json:"asset"`
	}
	path := fmt.Sprintf("/api/watchlists/%d/assets", watchlistID)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// RemoveWatchlistAsset removes a symbol from a watchlist.
func (c *Client) RemoveWatchlistAsset(ctx context.Context, watchlistID uint, symbol string) error {
	query := url.Values{"symbol": {symbol}}
	path := fmt.Sprintf("/api/watchlists/%d/assets", watchlistID)
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// do performs one request and decodes the response into out. Non-2xx
// responses become an *APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
