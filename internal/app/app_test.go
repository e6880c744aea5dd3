package app

import (
	"context"
	"errors"
	"testing"

	"stylist-demo/internal/config"
	"stylist-demo/internal/infrastructure/metrics"
	"stylist-demo/internal/infrastructure/services"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := New(context.Background(), cfg, nil)
	if !errors.Is(err, services.ErrMissingCredential) {
		t.Fatalf("Expected ErrMissingCredential, got %v", err)
	}
}

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{config.ImageBackendGemini, config.ImageBackendImagen} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.APIKey = "test-key"
			cfg.Gateway.BaseURL = "http://127.0.0.1:1"
			cfg.Models.ImageBackend = backend

			a, err := New(context.Background(), cfg, metrics.New())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer a.Close()

			if a.UseCase == nil {
				t.Fatal("Expected a use case")
			}
		})
	}
}
