package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/finboard/finboard/internal/dashboard"
)

// DashboardHandler serves the mock panel datasets the UI renders.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboards/{kind}", h.GetDashboard).Methods("GET")
	router.HandleFunc("/timescales", h.GetTimescales).Methods("GET")
}

// GetDashboard returns the snapshot for one (kind, marketView, timescale)
// selection. marketView defaults to stocks-etf and timescale to the
// slider's starting stop.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	kind, ok := dashboard.ParseKind(mux.Vars(r)["kind"])
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown dashboard kind")
		return
	}

	viewParam := r.URL.Query().Get("marketView")
	if viewParam == "" {
		viewParam = string(dashboard.ViewStocksETF)
	}
	view, ok := dashboard.ParseMarketView(viewParam)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown market view")
		return
	}

	tsParam := r.URL.Query().Get("timescale")
	if tsParam == "" {
		tsParam = dashboard.DefaultTimescale
	}
	ts, ok := dashboard.ParseTimescale(tsParam)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown timescale")
		return
	}

	snapshot, ok := dashboard.Lookup(kind, view, ts)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown dashboard kind")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"dashboard": snapshot})
}

// GetTimescales returns the slider stops in display order.
func (h *DashboardHandler) GetTimescales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"timescales": dashboard.Timescales})
}
