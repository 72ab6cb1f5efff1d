package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/services"
)

// QuoteHandler serves the latest price snapshots from the quote store.
type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func (h *QuoteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/quotes", h.GetQuotes).Methods("GET")
}

// GetQuotes returns snapshots for a comma-separated symbols parameter.
// Symbols are uppercased before the lookup.
func (h *QuoteHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	symbolsParam := r.URL.Query().Get("symbols")
	if symbolsParam == "" {
		writeError(w, http.StatusBadRequest, "Symbols parameter is required")
		return
	}

	var symbols []string
	for _, s := range strings.Split(symbolsParam, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, strings.ToUpper(s))
		}
	}
	// A parameter of only separators is as good as absent.
	if len(symbols) == 0 {
		writeError(w, http.StatusBadRequest, "Symbols parameter is required")
		return
	}

	quotes, err := h.quoteService.GetQuotes(r.Context(), symbols)
	if err != nil {
		if errors.Is(err, services.ErrQuoteStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "Quote store unavailable")
			return
		}
		log.Printf("Error fetching quotes: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}
