package models

import (
	"time"
)

// Quote is a point-in-time price snapshot kept in the quote store and
// broadcast to WebSocket clients.
type Quote struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"asset_type"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change"`
	ChangePct float64   `json:"change_pct"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents a WebSocket message
type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}
