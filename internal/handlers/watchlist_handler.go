package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/services"
)

// WatchlistHandler serves the watchlist and watchlist-member endpoints.
type WatchlistHandler struct {
	watchlistService *services.WatchlistService
}

func NewWatchlistHandler(watchlistService *services.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

func (h *WatchlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/watchlists", h.GetWatchlists).Methods("GET")
	router.HandleFunc("/watchlists", h.CreateWatchlist).Methods("POST")
	router.HandleFunc("/watchlists", h.DeleteWatchlist).Methods("DELETE")
	// No regex constraint on id: a malformed id should parse-fail into
	// a 400 rather than fall through to a routing 404.
	router.HandleFunc("/watchlists/{id}/assets", h.GetWatchlistAssets).Methods("GET")
	router.HandleFunc("/watchlists/{id}/assets", h.AddWatchlistAsset).Methods("POST")
	router.HandleFunc("/watchlists/{id}/assets", h.RemoveWatchlistAsset).Methods("DELETE")
}

// GetWatchlists returns all watchlists owned by a user.
func (h *WatchlistHandler) GetWatchlists(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	watchlists, err := h.watchlistService.GetUserWatchlists(userID)
	if err != nil {
		log.Printf("Error fetching watchlists: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch watchlists")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"watchlists": watchlists})
}

// CreateWatchlist creates a named watchlist for a user.
func (h *WatchlistHandler) CreateWatchlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string `json:"userId"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "User ID and name are required")
		return
	}

	watchlist, err := h.watchlistService.CreateWatchlist(req.UserID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			writeError(w, http.StatusConflict, "A watchlist with this name already exists")
			return
		}
		log.Printf("Error creating watchlist: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create watchlist")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"watchlist": watchlist})
}

// DeleteWatchlist removes a watchlist scoped to its owner. A watchlist
// that does not exist and one owned by another user both come back 404.
func (h *WatchlistHandler) DeleteWatchlist(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	watchlistIDStr := r.URL.Query().Get("watchlistId")

	if userID == "" || watchlistIDStr == "" {
		writeError(w, http.StatusBadRequest, "User ID and watchlist ID are required")
		return
	}

	watchlistID, err := strconv.ParseUint(watchlistIDStr, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watchlist ID")
		return
	}

	deleted, err := h.watchlistService.DeleteWatchlist(uint(watchlistID), userID)
	if err != nil {
		log.Printf("Error deleting watchlist: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete watchlist")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Watchlist not found or access denied")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetWatchlistAssets returns a watchlist's members in display order.
func (h *WatchlistHandler) GetWatchlistAssets(w http.ResponseWriter, r *http.Request) {
	watchlistID, err := watchlistIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watchlist ID")
		return
	}

	assets, err := h.watchlistService.GetWatchlistAssets(watchlistID)
	if err != nil {
		log.Printf("Error fetching watchlist assets: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch watchlist assets")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

// AddWatchlistAsset adds a symbol to a watchlist.
func (h *WatchlistHandler) AddWatchlistAsset(w http.ResponseWriter, r *http.Request) {
	watchlistID, err := watchlistIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watchlist ID")
		return
	}

	var req struct {
		Symbol    string           `json:"symbol"`
		AssetType models.AssetType `json:"assetType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Symbol == "" || req.AssetType == "" {
		writeError(w, http.StatusBadRequest, "Symbol and asset type are required")
		return
	}
	if !req.AssetType.Valid() {
		writeError(w, http.StatusBadRequest, `Asset type must be either "stock" or "crypto"`)
		return
	}

	asset, err := h.watchlistService.AddWatchlistAsset(watchlistID, strings.ToUpper(req.Symbol), req.AssetType)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Watchlist not found")
			return
		}
		if errors.Is(err, services.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Asset already exists in this watchlist")
			return
		}
		log.Printf("Error adding asset to watchlist: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add asset to watchlist")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"asset": asset})
}

// RemoveWatchlistAsset removes a symbol from a watchlist.
func (h *WatchlistHandler) RemoveWatchlistAsset(w http.ResponseWriter, r *http.Request) {
	watchlistID, err := watchlistIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watchlist ID")
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	removed, err := h.watchlistService.RemoveWatchlistAsset(watchlistID, strings.ToUpper(symbol))
	if err != nil {
		log.Printf("Error removing asset from watchlist: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove asset from watchlist")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Asset not found in watchlist")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func watchlistIDFromPath(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
