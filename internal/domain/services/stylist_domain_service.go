package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/repositories"
	"stylist-demo/internal/domain/valueobjects"
)

var errEmptyDescription = errors.New("model returned an empty description")

const (
	DefaultTextModel   = "gemini-2.5-flash"
	DefaultVisionModel = "gemini-2.5-pro"
	DefaultImageModel  = "gemini-2.5-flash-image"
	DefaultTrendCount  = 3
)

type ModelConfig struct {
	// 一般的なテキスト生成（flash）
	Text string
	// 画像に基づく分析（pro）
	Vision string
	Image  string
}

type Options struct {
	Models ModelConfig

	// プロンプトで要求するトレンド数。応答の件数は強制しない
	TrendCount int

	// 0は無制限
	MaxConcurrentImages int
}

func DefaultOptions() Options {
	return Options{
		Models: ModelConfig{
			Text:   DefaultTextModel,
			Vision: DefaultVisionModel,
			Image:  DefaultImageModel,
		},
		TrendCount: DefaultTrendCount,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Models.Text == "" {
		o.Models.Text = d.Models.Text
	}
	if o.Models.Vision == "" {
		o.Models.Vision = d.Models.Vision
	}
	if o.Models.Image == "" {
		o.Models.Image = d.Models.Image
	}
	if o.TrendCount <= 0 {
		o.TrendCount = d.TrendCount
	}
	if o.MaxConcurrentImages < 0 {
		o.MaxConcurrentImages = 0
	}
	return o
}

// StylistDomainService turns styling requests into model calls and model
// output into domain values.
type StylistDomainService struct {
	textAIService  repositories.TextAIService
	imageAIService repositories.ImageAIService
	options        Options
}

func NewStylistDomainService(
	textAIService repositories.TextAIService,
	imageAIService repositories.ImageAIService,
	options Options,
) *StylistDomainService {
	return &StylistDomainService{
		textAIService:  textAIService,
		imageAIService: imageAIService,
		options:        options.withDefaults(),
	}
}

func (s *StylistDomainService) Options() Options {
	return s.options
}

func (s *StylistDomainService) GenerateOutfit(
	ctx context.Context,
	request *entities.OutfitRequest,
) (*entities.OutfitRecommendation, error) {
	textRequest := entities.NewTextRequest(buildOutfitPrompt(request), s.options.Models.Text)
	textResult, err := s.textAIService.GenerateStructured(ctx, textRequest, outfitSchema)
	if err != nil {
		return nil, s.fail(OperationGenerateOutfit, ErrGenerateOutfit, fmt.Errorf("outfit generation failed: %w", err))
	}

	var payload outfitPayload
	if err := decodeStructured(textResult, outfitSchema, &payload); err != nil {
		return nil, s.fail(OperationGenerateOutfit, ErrGenerateOutfit, err)
	}

	outfit := &entities.OutfitRecommendation{
		OutfitName:  payload.OutfitName,
		Description: payload.Description,
		Items:       payload.Items,
	}

	imageRequest := entities.NewImageRequest(s.options.Models.Image, buildOutfitImagePrompt(outfit))
	imageURL, err := s.generateImageURL(ctx, imageRequest)
	if err != nil {
		return nil, s.fail(OperationGenerateOutfit, ErrGenerateOutfit, fmt.Errorf("outfit image generation failed: %w", err))
	}
	outfit.ImageURL = imageURL

	return outfit, nil
}

func (s *StylistDomainService) AnalyzeItemByText(ctx context.Context, text string) (*entities.ItemAnalysis, error) {
	var description, imageURL string

	// 説明文と画像は互いに依存しないので並行に実行
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		textResult, err := s.textAIService.GenerateText(gctx, entities.NewTextRequest(buildItemTextPrompt(text), s.options.Models.Text))
		if err != nil {
			return fmt.Errorf("item description failed: %w", err)
		}
		description, err = descriptionFrom(textResult)
		return err
	})
	g.Go(func() error {
		var err error
		imageURL, err = s.generateImageURL(gctx, entities.NewImageRequest(s.options.Models.Image, buildItemImagePrompt(text)))
		if err != nil {
			return fmt.Errorf("item image generation failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, s.fail(OperationAnalyzeItemByText, ErrAnalyzeItemByText, err)
	}

	return &entities.ItemAnalysis{
		Description: description,
		ImageURL:    imageURL,
	}, nil
}

func (s *StylistDomainService) AnalyzeItemByImage(
	ctx context.Context,
	image *valueobjects.ImageData,
) (*entities.ItemAnalysis, error) {
	if image == nil {
		return nil, s.fail(OperationAnalyzeItemByImage, ErrAnalyzeItemByImage, fmt.Errorf("image data is required"))
	}
	images := []*valueobjects.ImageData{image}

	var description, imageURL string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		textRequest := entities.NewTextRequestWithImages(analyzeImageInstruction, s.options.Models.Vision, images)
		textResult, err := s.textAIService.GenerateText(gctx, textRequest)
		if err != nil {
			return fmt.Errorf("item description failed: %w", err)
		}
		description, err = descriptionFrom(textResult)
		return err
	})
	g.Go(func() error {
		imageRequest := entities.NewImageRequestWithReference(s.options.Models.Image, pairedImageInstruction, images)
		var err error
		imageURL, err = s.generateImageURL(gctx, imageRequest)
		if err != nil {
			return fmt.Errorf("paired image generation failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		failure := s.fail(OperationAnalyzeItemByImage, ErrAnalyzeItemByImage, err)
		if errors.Is(err, repositories.ErrNoImageData) {
			return nil, fmt.Errorf("%w: %w", failure, ErrPairedImageMissing)
		}
		return nil, failure
	}

	return &entities.ItemAnalysis{
		Description: description,
		ImageURL:    imageURL,
	}, nil
}

func (s *StylistDomainService) generateImageURL(ctx context.Context, request *entities.ImageRequest) (string, error) {
	result, err := s.imageAIService.GenerateImage(ctx, request)
	if err != nil {
		return "", err
	}
	if result == nil || !result.HasImage() {
		return "", repositories.ErrNoImageData
	}
	return result.ImageData().DataURI(), nil
}

// 空の候補やブロックされた応答はエラーなしで空文字を返す
func descriptionFrom(result *entities.TextResult) (string, error) {
	if result == nil || result.TrimmedText() == "" {
		return "", errEmptyDescription
	}
	return result.TrimmedText(), nil
}

// fail logs the cause and returns the caller-facing sentinel in its place.
func (s *StylistDomainService) fail(operation string, sentinel error, cause error) error {
	slog.Error("Stylist operation failed",
		"operation", operation,
		"error", cause,
		"quota", isQuotaError(cause))
	return sentinel
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted") ||
		strings.Contains(errStr, "resource_exhausted")
}
