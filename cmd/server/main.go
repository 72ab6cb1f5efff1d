package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/finboard/finboard/internal/api"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/db"
	"github.com/finboard/finboard/internal/services"
	"github.com/finboard/finboard/internal/tasks"
	"github.com/finboard/finboard/internal/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database connection
	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Redis client. The quote endpoints degrade gracefully
	// when it is down, so this is a warning rather than fatal.
	redisClient, err := db.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		redisClient = nil
	}

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Initialize scheduled tasks
	taskManager := tasks.NewManager()
	if redisClient != nil {
		quoteService := services.NewQuoteService(redisClient)
		taskManager.RegisterTask(tasks.NewQuoteTickTask(quoteService, wsHub, cfg.Server.QuoteInterval))
	}
	taskManager.StartScheduledTasks()

	// Initialize router
	router := api.SetupRouter(database, redisClient, wsHub, cfg)

	// Set up CORS
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsMiddleware.Handler(router)

	// Start the server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, handler))
}
