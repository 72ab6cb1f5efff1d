package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/models"
)

// WatchlistService manages watchlists and their member assets.
type WatchlistService struct {
	DB *gorm.DB
}

func NewWatchlistService(db *gorm.DB) *WatchlistService {
	return &WatchlistService{DB: db}
}

// GetUserWatchlists returns a user's watchlists in creation order.
func (s *WatchlistService) GetUserWatchlists(userID string) ([]models.Watchlist, error) {
	var lists []models.Watchlist
	result := s.DB.Where("user_id = ?", userID).Order("id ASC").Find(&lists)
	return lists, result.Error
}

// CreateWatchlist creates a named watchlist for a user. Returns
// ErrDuplicate when the user already has a watchlist with that name.
func (s *WatchlistService) CreateWatchlist(userID, name, description string) (*models.Watchlist, error) {
	list := models.Watchlist{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.DB.Create(&list).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &list, nil
}

// DeleteWatchlist removes a watchlist scoped to its owner. A row owned
// by someone else and a row that never existed are both reported as
// false; the caller cannot tell them apart.
func (s *WatchlistService) DeleteWatchlist(id uint, userID string) (bool, error) {
	result := s.DB.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Watchlist{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetWatchlistAssets returns a watchlist's members in display order.
func (s *WatchlistService) GetWatchlistAssets(watchlistID uint) ([]models.WatchlistAsset, error) {
	var assets []models.WatchlistAsset
	result := s.DB.Where("watchlist_id = ?", watchlistID).
		Order("sort_order ASC").Find(&assets)
	return assets, result.Error
}

// AddWatchlistAsset appends a symbol to a watchlist, assigning the next
// sort order. Returns ErrNotFound when the watchlist does not exist and
// ErrDuplicate when the symbol is already a member.
func (s *WatchlistService) AddWatchlistAsset(watchlistID uint, symbol string, assetType models.AssetType) (*models.WatchlistAsset, error) {
	var list models.Watchlist
	if err := s.DB.First(&list, watchlistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var maxOrder int
	row := s.DB.Model(&models.WatchlistAsset{}).
		Where("watchlist_id = ?", watchlistID).
		Select("COALESCE(MAX(sort_order), 0)")
	if err := row.Scan(&maxOrder).Error; err != nil {
		return nil, err
	}

	asset := models.WatchlistAsset{
		WatchlistID: watchlistID,
		Symbol:      symbol,
		AssetType:   assetType,
		SortOrder:   maxOrder + 1,
	}
	if err := s.DB.Create(&asset).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &asset, nil
}

// RemoveWatchlistAsset deletes a member symbol and reports whether a
// row was actually removed.
func (s *WatchlistService) RemoveWatchlistAsset(watchlistID uint, symbol string) (bool, error) {
	result := s.DB.Where("watchlist_id = ? AND symbol = ?", watchlistID, symbol).
		Delete(&models.WatchlistAsset{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
