package models

import (
	"time"
)

// AssetType tags a symbol as an equity or a cryptocurrency. It carries
// no behavior beyond storage and display.
type AssetType string

const (
	AssetTypeStock  AssetType = "stock"
	AssetTypeCrypto AssetType = "crypto"
)

// Valid reports whether the asset type is one of the two supported kinds.
func (t AssetType) Valid() bool {
	return t == AssetTypeStock || t == AssetTypeCrypto
}

// TrackedAsset is one (user, symbol) pairing a user follows. Symbols are
// stored uppercase; normalization happens at the HTTP layer.
type TrackedAsset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_assets_user_symbol" json:"user_id"`
	Symbol    string    `gorm:"uniqueIndex:idx_user_assets_user_symbol" json:"symbol"`
	AssetType AssetType `gorm:"column:asset_type" json:"asset_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (TrackedAsset) TableName() string {
	return "user_assets"
}
