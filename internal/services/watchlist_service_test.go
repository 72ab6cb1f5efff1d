package services

import (
	"errors"
	"testing"

	"github.com/finboard/finboard/internal/models"
)

func TestWatchlistService(t *testing.T) {
	db := newTestDB(t)
	service := NewWatchlistService(db)

	// Create then list
	list, err := service.CreateWatchlist("u1", "Tech", "large caps")
	if err != nil {
		t.Fatalf("Failed to create watchlist: %v", err)
	}
	if list.ID == 0 {
		t.Error("Expected a generated ID")
	}

	lists, err := service.GetUserWatchlists("u1")
	if err != nil {
		t.Fatalf("Failed to list watchlists: %v", err)
	}
	if len(lists) != 1 || lists[0].Name != "Tech" {
		t.Errorf("Unexpected watchlists: %+v", lists)
	}

	// Duplicate name for the same user
	if _, err := service.CreateWatchlist("u1", "Tech", ""); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	// Same name for another user is fine
	if _, err := service.CreateWatchlist("u2", "Tech", ""); err != nil {
		t.Errorf("Expected create for another user to succeed, got %v", err)
	}

	// Delete scoped to the wrong owner reports false
	deleted, err := service.DeleteWatchlist(list.ID, "u2")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected delete by non-owner to report false")
	}

	deleted, err = service.DeleteWatchlist(list.ID, "u1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Expected delete by owner to report true")
	}

	// Deleting again reports false
	deleted, _ = service.DeleteWatchlist(list.ID, "u1")
	if deleted {
		t.Error("Expected repeated delete to report false")
	}
}

func TestWatchlistAssets(t *testing.T) {
	db := newTestDB(t)
	service := NewWatchlistService(db)

	list, err := service.CreateWatchlist("u1", "Tech", "")
	if err != nil {
		t.Fatalf("Failed to create watchlist: %v", err)
	}

	// Adding to a watchlist that does not exist
	if _, err := service.AddWatchlistAsset(list.ID+999, "NVDA", models.AssetTypeStock); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Sort order increases with each addition
	first, err := service.AddWatchlistAsset(list.ID, "NVDA", models.AssetTypeStock)
	if err != nil {
		t.Fatalf("Failed to add asset: %v", err)
	}
	second, err := service.AddWatchlistAsset(list.ID, "AAPL", models.AssetTypeStock)
	if err != nil {
		t.Fatalf("Failed to add asset: %v", err)
	}
	if first.SortOrder != 1 || second.SortOrder != 2 {
		t.Errorf("Expected sort orders 1 and 2, got %d and %d", first.SortOrder, second.SortOrder)
	}

	// Duplicate member
	if _, err := service.AddWatchlistAsset(list.ID, "NVDA", models.AssetTypeStock); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	// Listing follows sort order
	assets, err := service.GetWatchlistAssets(list.ID)
	if err != nil {
		t.Fatalf("Failed to list assets: %v", err)
	}
	if len(assets) != 2 || assets[0].Symbol != "NVDA" || assets[1].Symbol != "AAPL" {
		t.Errorf("Unexpected member order: %+v", assets)
	}

	// Remove member
	removed, err := service.RemoveWatchlistAsset(list.ID, "NVDA")
	if err != nil || !removed {
		t.Errorf("Expected removal to succeed, got removed=%v err=%v", removed, err)
	}
	removed, err = service.RemoveWatchlistAsset(list.ID, "NVDA")
	if err != nil {
		t.Fatalf("Expected no error removing missing member, got %v", err)
	}
	if removed {
		t.Error("Expected removal of missing member to report false")
	}

	// Deleting the parent removes its members
	if _, err := service.DeleteWatchlist(list.ID, "u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	assets, err = service.GetWatchlistAssets(list.ID)
	if err != nil {
		t.Fatalf("Failed to list assets: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("Expected members to cascade away, got %+v", assets)
	}
}
