package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"stylist-demo/internal/app"
	"stylist-demo/internal/application/services"
	"stylist-demo/internal/config"
	"stylist-demo/internal/infrastructure/api"
	"stylist-demo/internal/infrastructure/metrics"
)

func main() {
	// .envは任意
	if err := godotenv.Load(); err != nil {
		log.Printf("[boot] No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	m := metrics.New()

	stylist, err := app.New(context.Background(), cfg, m)
	if err != nil {
		log.Fatalf("Failed to initialize stylist: %v", err)
	}
	defer stylist.Close()

	// Initialize API layer
	handler := api.NewStylistHandler(stylist.UseCase, services.NewParameterService())

	// Setup routes
	r := mux.NewRouter()
	handler.RegisterRoutes(r, m.Handler())

	// Start server
	log.Printf("Starting server on port %s", cfg.Server.Port)
	log.Printf("Trends: count=%d, max concurrent images=%d", cfg.Trends.Count, cfg.Trends.MaxConcurrentImages)

	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
