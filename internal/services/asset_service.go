package services

import (
	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/models"
)

// AssetService manages the flat per-user list of tracked assets.
type AssetService struct {
	DB *gorm.DB
}

func NewAssetService(db *gorm.DB) *AssetService {
	return &AssetService{DB: db}
}

// GetUserAssets returns a user's tracked assets in insertion order.
func (s *AssetService) GetUserAssets(userID string) ([]models.TrackedAsset, error) {
	var assets []models.TrackedAsset
	result := s.DB.Where("user_id = ?", userID).Order("id ASC").Find(&assets)
	return assets, result.Error
}

// AddUserAsset records that a user follows a symbol. The symbol is
// expected pre-normalized (uppercase) by the caller. Returns
// ErrDuplicate when the (user, symbol) pair already exists.
func (s *AssetService) AddUserAsset(userID, symbol string, assetType models.AssetType) (*models.TrackedAsset, error) {
	asset := models.TrackedAsset{
		UserID:    userID,
		Symbol:    symbol,
		AssetType: assetType,
	}
	if err := s.DB.Create(&asset).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return &asset, nil
}

// RemoveUserAsset deletes a tracked asset and reports whether a row was
// actually removed. A missing row is a query outcome, not an error.
func (s *AssetService) RemoveUserAsset(userID, symbol string) (bool, error) {
	result := s.DB.Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&models.TrackedAsset{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
