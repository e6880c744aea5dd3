package app

import (
	"context"
	"fmt"
	"log"

	"stylist-demo/internal/application/usecases"
	"stylist-demo/internal/config"
	"stylist-demo/internal/domain/repositories"
	domainservices "stylist-demo/internal/domain/services"
	"stylist-demo/internal/infrastructure/external"
	"stylist-demo/internal/infrastructure/metrics"
	"stylist-demo/internal/infrastructure/services"
)

// App is the wired stylist stack shared by the server and the CLI.
type App struct {
	UseCase *usecases.StylistUseCase

	pool repositories.ClientPoolService
}

// New builds every layer from cfg. m may be nil.
func New(ctx context.Context, cfg config.Config, m *metrics.Metrics) (*App, error) {
	// Initialize infrastructure layer
	pool, err := services.NewClientPoolService(repositories.AIClientConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.Gateway.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client pool: %w", err)
	}

	genAIClient, err := pool.GenAIPool().GetGenAIClient(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	textAIService := external.NewGeminiAIService(genAIClient, m)

	var imageAIService repositories.ImageAIService = external.NewNanobananaAIService(genAIClient, m)
	if cfg.Models.ImageBackend == config.ImageBackendImagen {
		// 参照画像付きのリクエストはGeminiの画像モデルに任せる
		imageAIService = external.NewImagenAIService(genAIClient, cfg.Models.Imagen, imageAIService, m)
	}

	log.Printf("[boot] TEXT_MODEL=%s VISION_MODEL=%s IMAGE_MODEL=%s IMAGE_BACKEND=%s",
		cfg.Models.Text, cfg.Models.Vision, cfg.Models.Image, cfg.Models.ImageBackend)

	// Initialize domain layer
	stylistDomainService := domainservices.NewStylistDomainService(textAIService, imageAIService, cfg.StylistOptions())

	// Initialize application layer
	var observer usecases.OperationObserver
	if m != nil {
		observer = m
	}

	return &App{
		UseCase: usecases.NewStylistUseCase(stylistDomainService, observer),
		pool:    pool,
	}, nil
}

func (a *App) Close() error {
	return a.pool.Close()
}
