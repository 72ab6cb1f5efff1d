package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/services"
)

func newQuoteRouter(quoteService *services.QuoteService) *mux.Router {
	router := mux.NewRouter()
	apiRouter := router.PathPrefix("/api").Subrouter()
	NewQuoteHandler(quoteService).RegisterRoutes(apiRouter)
	return router
}

func TestGetQuotes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	quoteService := services.NewQuoteService(client)
	router := newQuoteRouter(quoteService)

	seed := []models.Quote{
		{Symbol: "AAPL", AssetType: models.AssetTypeStock, Price: 192.42},
		{Symbol: "BTC", AssetType: models.AssetTypeCrypto, Price: 43567},
	}
	if err := quoteService.SetQuotes(context.Background(), seed); err != nil {
		t.Fatalf("SetQuotes failed: %v", err)
	}

	// Lowercase symbols resolve to the uppercase snapshots
	rec := doRequest(t, router, "GET", "/api/quotes?symbols=aapl,btc,unknown", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	quotes, ok := body["quotes"].([]interface{})
	if !ok || len(quotes) != 2 {
		t.Fatalf("Expected 2 quotes, got %v", body["quotes"])
	}
	first := quotes[0].(map[string]interface{})
	if first["symbol"] != "AAPL" {
		t.Errorf("Expected symbol AAPL, got %v", first["symbol"])
	}
}

func TestGetQuotesValidation(t *testing.T) {
	router := newQuoteRouter(services.NewQuoteService(nil))

	// Missing parameter
	rec := doRequest(t, router, "GET", "/api/quotes", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing symbols, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Symbols parameter is required" {
		t.Errorf("Unexpected error message: %v", body["error"])
	}

	// Only separators and whitespace is as good as missing
	for _, param := range []string{",", ",,,", "+%2C+"} {
		rec = doRequest(t, router, "GET", "/api/quotes?symbols="+param, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for symbols=%q, got %d", param, rec.Code)
		}
	}
}

func TestGetQuotesStoreUnavailable(t *testing.T) {
	router := newQuoteRouter(services.NewQuoteService(nil))

	rec := doRequest(t, router, "GET", "/api/quotes?symbols=AAPL", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Quote store unavailable" {
		t.Errorf("Unexpected error message: %v", body["error"])
	}
}
