package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/models"
	"github.com/finboard/finboard/internal/services"
)

// newTestRouter wires the CRUD handlers over a per-test in-memory
// database, mirroring the production route layout.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	err = db.AutoMigrate(&models.TrackedAsset{}, &models.Watchlist{}, &models.WatchlistAsset{})
	if err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	router := mux.NewRouter()
	apiRouter := router.PathPrefix("/api").Subrouter()
	NewAssetHandler(services.NewAssetService(db)).RegisterRoutes(apiRouter)
	NewWatchlistHandler(services.NewWatchlistService(db)).RegisterRoutes(apiRouter)
	NewDashboardHandler().RegisterRoutes(apiRouter)
	return router
}

// doRequest performs one request against the router and returns the
// recorder.
func doRequest(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
