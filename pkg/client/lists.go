package client

import (
	"context"
	"strings"
	"sync"

	"github.com/finboard/finboard/internal/models"
)

// The list containers hold the current list, a loading flag, and the
// last error, like the UI's data hooks. Mutations patch the local list
// from the server's echo instead of refetching; Refresh is there for
// callers that want to resynchronize.

// AssetList tracks one user's tracked-asset list.
type AssetList struct {
	client *Client
	userID string

	mu      sync.Mutex
	assets  []models.TrackedAsset
	loading bool
	lastErr string
}

// NewAssetList returns an empty container; call Refresh to load it.
func NewAssetList(c *Client, userID string) *AssetList {
	return &AssetList{client: c, userID: userID}
}

// Refresh replaces the local list with the server's.
func (l *AssetList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.lastErr = ""
	l.mu.Unlock()

	assets, err := l.client.ListAssets(ctx, l.userID)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.assets = assets
	return nil
}

// Add tracks a new symbol and prepends the server's echo to the local
// list.
func (l *AssetList) Add(ctx context.Context, symbol string, assetType models.AssetType) error {
	asset, err := l.client.AddAsset(ctx, l.userID, symbol, assetType)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.lastErr = ""
	l.assets = append([]models.TrackedAsset{*asset}, l.assets...)
	return nil
}

// Remove stops tracking a symbol and filters it out of the local list.
func (l *AssetList) Remove(ctx context.Context, symbol string) error {
	err := l.client.RemoveAsset(ctx, l.userID, symbol)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.lastErr = ""
	symbol = strings.ToUpper(symbol)
	kept := l.assets[:0]
	for _, a := range l.assets {
		if a.Symbol != symbol {
			kept = append(kept, a)
		}
	}
	l.assets = kept
	return nil
}

// Assets returns a copy of the current list.
func (l *AssetList) Assets() []models.TrackedAsset {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.TrackedAsset, len(l.assets))
	copy(out, l.assets)
	return out
}

// Loading reports whether a Refresh is in flight.
func (l *AssetList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the last recorded error message, if any.
func (l *AssetList) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// WatchlistList tracks one user's watchlists.
type WatchlistList struct {
	client *Client
	userID string

	mu         sync.Mutex
	watchlists []models.Watchlist
	loading    bool
	lastErr    string
}

func NewWatchlistList(c *Client, userID string) *WatchlistList {
	return &WatchlistList{client: c, userID: userID}
}

func (l *WatchlistList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.lastErr = ""
	l.mu.Unlock()

	watchlists, err := l.client.ListWatchlists(ctx, l.userID)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.watchlists = watchlists
	return nil
}

// Create makes a new watchlist and prepends it to the local list.
func (l *WatchlistList) Create(ctx context.Context, name, description string) (*models.Watchlist, error) {
	watchlist, err := l.client.CreateWatchlist(ctx, l.userID, name, description)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return nil, err
	}
	l.lastErr = ""
	l.watchlists = append([]models.Watchlist{*watchlist}, l.watchlists...)
	return watchlist, nil
}

// Delete removes a watchlist and filters it out of the local list.
func (l *WatchlistList) Delete(ctx context.Context, watchlistID uint) error {
	err := l.client.DeleteWatchlist(ctx, l.userID, watchlistID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.lastErr = ""
	kept := l.watchlists[:0]
	for _, wl := range l.watchlists {
		if wl.ID != watchlistID {
			kept = append(kept, wl)
		}
	}
	l.watchlists = kept
	return nil
}

func (l *WatchlistList) Watchlists() []models.Watchlist {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Watchlist, len(l.watchlists))
	copy(out, l.watchlists)
	return out
}

func (l *WatchlistList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *WatchlistList) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// WatchlistAssetList tracks the members of one watchlist.
type WatchlistAssetList struct {
	client      *Client
	watchlistID uint

	mu      sync.Mutex
	assets  []models.WatchlistAsset
	loading bool
	lastErr string
}

func NewWatchlistAssetList(c *Client, watchlistID uint) *WatchlistAssetList {
	return &WatchlistAssetList{client: c, watchlistID: watchlistID}
}

func (l *WatchlistAssetList) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.lastErr = ""
	l.mu.Unlock()

	assets, err := l.client.ListWatchlistAssets(ctx, l.watchlistID)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.assets = assets
	return nil
}

// Add appends a symbol; the server assigns the sort order, so the echo
// goes at the end rather than the front.
func (l *WatchlistAssetList) Add(ctx context.Context, symbol string, assetType models.AssetType) error {
	asset, err := l.client.AddWatchlistAsset(ctx, l.watchlistID, symbol, assetType)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.lastErr = ""
	l.assets = append(l.assets, *asset)
	return nil
}

func (l *WatchlistAssetList) Remove(ctx context.Context, symbol string) error {
	err := l.client.RemoveWatchlistAsset(ctx, l.watchlistID, symbol)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.lastErr = err.Error()
		return err
	}
	l.lastErr = ""
	symbol = strings.ToUpper(symbol)
	kept := l.assets[:0]
	for _, a := range l.assets {
		if a.Symbol != symbol {
			kept = append(kept, a)
		}
	}
	l.assets = kept
	return nil
}

func (l *WatchlistAssetList) Assets() []models.WatchlistAsset {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.WatchlistAsset, len(l.assets))
	copy(out, l.assets)
	return out
}

func (l *WatchlistAssetList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *WatchlistAssetList) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}
