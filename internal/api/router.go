package api

import (
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/handlers"
	"github.com/finboard/finboard/internal/middleware"
	"github.com/finboard/finboard/internal/services"
	"github.com/finboard/finboard/internal/websocket"
)

// SetupRouter configures all routes and returns the router
func SetupRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	wsHub *websocket.Hub,
	cfg *config.Config,
) *mux.Router {
	router := mux.NewRouter()

	// Add health check endpoint
	router.HandleFunc("/api/health", HealthHandler).Methods("GET")

	// WebSocket route
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	// Serve static files
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))),
	)

	// Create services
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db)
	assetService := services.NewAssetService(db)
	watchlistService := services.NewWatchlistService(db)
	quoteService := services.NewQuoteService(redisClient)

	// Create handlers using services
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT.SecretKey)
	userHandler := handlers.NewUserHandler(userService)
	assetHandler := handlers.NewAssetHandler(assetService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	dashboardHandler := handlers.NewDashboardHandler()

	// Public endpoints: the dashboard identifies its caller by an
	// explicit userId, so the CRUD surface is not behind auth.
	router.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	apiRouter := router.PathPrefix("/api").Subrouter()
	assetHandler.RegisterRoutes(apiRouter)
	watchlistHandler.RegisterRoutes(apiRouter)
	quoteHandler.RegisterRoutes(apiRouter)
	dashboardHandler.RegisterRoutes(apiRouter)

	// Admin endpoints require a valid token.
	adminRouter := apiRouter.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AuthMiddleware(cfg.JWT.SecretKey))
	userHandler.RegisterRoutes(adminRouter)

	// Catch-all handler for serving the SPA
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "web/index.html")
	})

	return router
}
