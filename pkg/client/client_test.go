package client

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/api"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/db"
	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/websocket"
)

// newTestServer serves the full production router over a per-test
// in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	router := api.SetupRouter(database, nil, websocket.NewHub(), config.Load())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestAssetList(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	list := NewAssetList(c, "u1")
	if err := list.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(list.Assets()) != 0 {
		t.Fatalf("Expected empty list, got %d entries", len(list.Assets()))
	}

	// Adds prepend the server echo
	if err := list.Add(ctx, "aapl", models.AssetTypeStock); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := list.Add(ctx, "btc", models.AssetTypeCrypto); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	assets := list.Assets()
	if len(assets) != 2 || assets[0].Symbol != "BTC" || assets[1].Symbol != "AAPL" {
		t.Errorf("Expected [BTC AAPL] after prepends, got %+v", assets)
	}

	// A duplicate surfaces the server's message and leaves the list alone
	err := list.Add(ctx, "AAPL", models.AssetTypeStock)
	if err == nil {
		t.Fatal("Expected duplicate add to fail")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 409 {
		t.Errorf("Expected a 409 APIError, got %v", err)
	}
	if list.Err() == "" {
		t.Error("Expected the error to be recorded")
	}
	if len(list.Assets()) != 2 {
		t.Errorf("Expected list unchanged after failure, got %d entries", len(list.Assets()))
	}

	// Removes filter locally without a refetch
	if err := list.Remove(ctx, "aapl"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	assets = list.Assets()
	if len(assets) != 1 || assets[0].Symbol != "BTC" {
		t.Errorf("Expected [BTC] after remove, got %+v", assets)
	}
	if list.Err() != "" {
		t.Errorf("Expected error cleared after success, got %q", list.Err())
	}

	// The local list agrees with the server after a refetch
	if err := list.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	assets = list.Assets()
	if len(assets) != 1 || assets[0].Symbol != "BTC" {
		t.Errorf("Expected server to agree, got %+v", assets)
	}
}

func TestWatchlistLists(t *testing.T) {
	server := newTestServer(t)
	c := New(server.URL)
	ctx := context.Background()

	lists := NewWatchlistList(c, "u1")
	if err := lists.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	tech, err := lists.Create(ctx, "Tech", "large caps")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := lists.Create(ctx, "Tech", ""); err == nil {
		t.Fatal("Expected duplicate name to fail")
	}
	if len(lists.Watchlists()) != 1 {
		t.Errorf("Expected 1 watchlist, got %d", len(lists.Watchlists()))
	}

	// Member container against the created watchlist
	members := NewWatchlistAssetList(c, tech.ID)
	if err := members.Add(ctx, "nvda", models.AssetTypeStock); err != nil {
		t.Fatalf("Member add failed: %v", err)
	}
	if err := members.Add(ctx, "amd", models.AssetTypeStock); err != nil {
		t.Fatalf("Member add failed: %v", err)
	}
	got := members.Assets()
	if len(got) != 2 || got[0].Symbol != "NVDA" || got[1].Symbol != "AMD" {
		t.Errorf("Expected [NVDA AMD] in sort order, got %+v", got)
	}
	if got[0].SortOrder >= got[1].SortOrder {
		t.Errorf("Expected ascending sort order, got %d then %d", got[0].SortOrder, got[1].SortOrder)
	}

	// Adding to a watchlist that does not exist is a 404
	ghost := NewWatchlistAssetList(c, tech.ID+999)
	err = ghost.Add(ctx, "NVDA", models.AssetTypeStock)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Errorf("Expected a 404 APIError, got %v", err)
	}

	if err := members.Remove(ctx, "nvda"); err != nil {
		t.Fatalf("Member remove failed: %v", err)
	}
	got = members.Assets()
	if len(got) != 1 || got[0].Symbol != "AMD" {
		t.Errorf("Expected [AMD] after remove, got %+v", got)
	}

	// Deleting the watchlist filters it locally
	if err := lists.Delete(ctx, tech.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(lists.Watchlists()) != 0 {
		t.Errorf("Expected empty watchlist list, got %+v", lists.Watchlists())
	}

	// A second delete is a 404 recorded on the container
	err = lists.Delete(ctx, tech.ID)
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Errorf("Expected a 404 APIError, got %v", err)
	}
	if lists.Err() == "" {
		t.Error("Expected the error to be recorded")
	}
}
