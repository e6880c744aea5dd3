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

const mimeTypeJSON = "application/json"

type GeminiAIService struct {
	genAIClient *genai_std.Client
	metrics     *metrics.Metrics
}

func NewGeminiAIService(genAIClient *genai_std.Client, m *metrics.Metrics) repositories.TextAIService {
	return &GeminiAIService{
		genAIClient: genAIClient,
		metrics:     m,
	}
}

// GenerateStructured constrains the response to schema and returns the raw
// JSON text.
func (s *GeminiAIService) GenerateStructured(
	ctx context.Context,
	request *entities.TextRequest,
	schema *valueobjects.Schema,
) (result *entities.TextResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveGatewayCall(metrics.CapabilityStructured, request.Model(), start, err) }()

	slog.Info("GenerateStructured", "model", request.Model(), "imageCount", len(request.Images()))

	resp, err := s.genAIClient.Models.GenerateContent(ctx,
		request.Model(),
		buildContents(request),
		&genai_std.GenerateContentConfig{
			ResponseMIMEType: mimeTypeJSON,
			ResponseSchema:   toGenAISchema(schema),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return entities.NewTextResult(resp.Text(), request.Model()), nil
}

func (s *GeminiAIService) GenerateText(ctx context.Context, request *entities.TextRequest) (result *entities.TextResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveGatewayCall(metrics.CapabilityText, request.Model(), start, err) }()

	slog.Info("GenerateText", "model", request.Model(), "imageCount", len(request.Images()))

	resp, err := s.genAIClient.Models.GenerateContent(ctx,
		request.Model(),
		buildContents(request),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return entities.NewTextResult(resp.Text(), request.Model()), nil
}

func buildContents(request *entities.TextRequest) []*genai_std.Content {
	if !request.HasImages() {
		return genai_std.Text(request.Prompt())
	}

	parts := []*genai_std.Part{
		genai_std.NewPartFromText(request.Prompt()),
	}
	parts = append(parts, imageParts(request.Images())...)

	return []*genai_std.Content{
		genai_std.NewContentFromParts(parts, genai_std.RoleUser),
	}
}

func imageParts(images []*valueobjects.ImageData) []*genai_std.Part {
	parts := make([]*genai_std.Part, 0, len(images))
	for _, imageData := range images {
		parts = append(parts, &genai_std.Part{
			InlineData: &genai_std.Blob{
				MIMEType: imageData.MimeType(),
				Data:     imageData.Data(),
			},
		})
	}
	return parts
}
