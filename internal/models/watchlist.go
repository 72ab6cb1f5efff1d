package models

import (
	"time"
)

// Watchlist is a named, user-owned grouping of symbols, independent from
// the flat tracked-asset list.
type Watchlist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"uniqueIndex:idx_watchlists_user_name" json:"user_id"`
	Name        string    `gorm:"uniqueIndex:idx_watchlists_user_name" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Members are removed with the parent row.
	Assets []WatchlistAsset `gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE" json:"assets,omitempty"`
}

// WatchlistAsset is the membership of a symbol within a watchlist.
// SortOrder keeps the display sequence stable across additions.
type WatchlistAsset struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WatchlistID uint      `gorm:"uniqueIndex:idx_watchlist_assets_list_symbol" json:"watchlist_id"`
	Symbol      string    `gorm:"uniqueIndex:idx_watchlist_assets_list_symbol" json:"symbol"`
	AssetType   AssetType `gorm:"column:asset_type" json:"asset_type"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}
