package external

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/repositories"
	"stylist-demo/internal/domain/valueobjects"
	"stylist-demo/internal/infrastructure/metrics"
)

// NanobananaAIService generates images with the Gemini image model. It also
// accepts reference images to ground the output on.
type NanobananaAIService struct {
	genAIClient *genai.Client
	metrics     *metrics.Metrics
}

func NewNanobananaAIService(genAIClient *genai.Client, m *metrics.Metrics) repositories.ImageAIService {
	return &NanobananaAIService{
		genAIClient: genAIClient,
		metrics:     m,
	}
}

func (s *NanobananaAIService) GenerateImage(ctx context.Context, request *entities.ImageRequest) (result *entities.ImageResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveGatewayCall(metrics.CapabilityImage, request.Model(), start, err) }()

	slog.Info("GenerateImage", "model", request.Model(), "referenceCount", len(request.ReferenceImages()))

	parts := []*genai.Part{
		genai.NewPartFromText(request.Prompt()),
	}
	parts = append(parts, imageParts(request.ReferenceImages())...)

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	// 2025/08/28時点で、画像モデルは複数候補を返せない。MediaResolutionの指定も不可
	resp, err := s.genAIClient.Models.GenerateContent(
		ctx,
		request.Model(),
		contents,
		&genai.GenerateContentConfig{
			ResponseModalities: []string{string(genai.ModalityImage)},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, repositories.ErrNoImageData
	}

	var (
		text      string
		imageData *valueobjects.ImageData
	)

	for i, part := range resp.Candidates[0].Content.Parts {
		slog.Debug("Processing part", "index", i, "hasText", part.Text != "", "hasInlineData", part.InlineData != nil)

		if part.Text != "" {
			text += part.Text
		} else if part.InlineData != nil && imageData == nil {
			imageData, err = valueobjects.NewImageData(part.InlineData.Data, part.InlineData.MIMEType)
			if err != nil {
				return nil, fmt.Errorf("failed to create image data: %w", err)
			}
		}
	}

	if imageData == nil {
		slog.Warn("No image data in response", "responseText", text)
		return nil, repositories.ErrNoImageData
	}

	return entities.NewImageResult(text, imageData), nil
}
