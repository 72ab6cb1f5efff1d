package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/services"
)

// AssetHandler serves the tracked-asset endpoints.
type AssetHandler struct {
	assetService *services.AssetService
}

func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

func (h *AssetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/assets", h.GetAssets).Methods("GET")
	router.HandleFunc("/assets", h.AddAsset).Methods("POST")
	router.HandleFunc("/assets", h.RemoveAsset).Methods("DELETE")
}

// GetAssets returns all assets tracked by a user.
func (h *AssetHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	assets, err := h.assetService.GetUserAssets(userID)
	if err != nil {
		log.Printf("Error fetching user assets: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

// AddAsset records a new tracked asset. Symbols are uppercased here so
// the store only ever sees normalized values.
func (h *AssetHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string           `json:"userId"`
		Symbol    string           `json:"symbol"`
		AssetType models.AssetType `json:"assetType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Symbol == "" || req.AssetType == "" {
		writeError(w, http.StatusBadRequest, "User ID, symbol, and asset type are required")
		return
	}
	if !req.AssetType.Valid() {
		writeError(w, http.StatusBadRequest, `Asset type must be either "stock" or "crypto"`)
		return
	}

	asset, err := h.assetService.AddUserAsset(req.UserID, strings.ToUpper(req.Symbol), req.AssetType)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			writeError(w, http.StatusConflict, "Asset already exists in your portfolio")
			return
		}
		log.Printf("Error adding asset: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add asset")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"asset": asset})
}

// RemoveAsset deletes a tracked asset by (userId, symbol).
func (h *AssetHandler) RemoveAsset(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	symbol := r.URL.Query().Get("symbol")

	if userID == "" || symbol == "" {
		writeError(w, http.StatusBadRequest, "User ID and symbol are required")
		return
	}

	removed, err := h.assetService.RemoveUserAsset(userID, strings.ToUpper(symbol))
	if err != nil {
		log.Printf("Error removing asset: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove asset")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Asset not found or already removed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
