package external

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	genai_std "google.golang.org/genai"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/repositories"
	"stylist-demo/internal/domain/valueobjects"
	"stylist-demo/internal/infrastructure/metrics"
)

// ImagenAIService renders text-only prompts with an Imagen model. Requests
// carrying reference images go to the fallback service, since Imagen only
// takes a prompt.
type ImagenAIService struct {
	genAIClient *genai_std.Client
	model       string
	fallback    repositories.ImageAIService
	metrics     *metrics.Metrics
}

func NewImagenAIService(
	genAIClient *genai_std.Client,
	model string,
	fallback repositories.ImageAIService,
	m *metrics.Metrics,
) repositories.ImageAIService {
	return &ImagenAIService{
		genAIClient: genAIClient,
		model:       model,
		fallback:    fallback,
		metrics:     m,
	}
}

func (s *ImagenAIService) GenerateImage(ctx context.Context, request *entities.ImageRequest) (*entities.ImageResult, error) {
	if request.HasReferenceImages() {
		if s.fallback == nil {
			return nil, fmt.Errorf("imagen model %s does not accept reference images", s.model)
		}
		return s.fallback.GenerateImage(ctx, request)
	}

	return s.generate(ctx, request.Prompt())
}

func (s *ImagenAIService) generate(ctx context.Context, prompt string) (result *entities.ImageResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveGatewayCall(metrics.CapabilityImage, s.model, start, err) }()

	slog.Info("GenerateImages", "model", s.model)

	resp, err := s.genAIClient.Models.GenerateImages(
		ctx,
		s.model,
		prompt,
		&genai_std.GenerateImagesConfig{
			NumberOfImages: 1,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate images: %w", err)
	}

	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		image, err := valueobjects.NewImageData(generated.Image.ImageBytes, generated.Image.MIMEType)
		if err != nil {
			return nil, fmt.Errorf("failed to create image data: %w", err)
		}
		return entities.NewImageResult("", image), nil
	}

	return nil, repositories.ErrNoImageData
}
