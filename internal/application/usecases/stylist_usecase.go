package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/services"
	"stylist-demo/internal/domain/valueobjects"
)

// ErrInvalidImage marks an upload that cannot be sent to the model.
var ErrInvalidImage = errors.New("invalid image")

// StylistService is the domain behaviour the use case drives.
// *services.StylistDomainService implements it.
type StylistService interface {
	GenerateOutfit(ctx context.Context, request *entities.OutfitRequest) (*entities.OutfitRecommendation, error)
	FetchTrends(ctx context.Context, category string) ([]entities.Trend, error)
	AnalyzeItemByText(ctx context.Context, text string) (*entities.ItemAnalysis, error)
	AnalyzeItemByImage(ctx context.Context, image *valueobjects.ImageData) (*entities.ItemAnalysis, error)
}

// OperationObserver receives the outcome of every operation.
type OperationObserver interface {
	ObserveOperation(operation string, err error)
}

type StylistUseCase struct {
	stylist  StylistService
	observer OperationObserver
}

// observer may be nil.
func NewStylistUseCase(stylist StylistService, observer OperationObserver) *StylistUseCase {
	return &StylistUseCase{
		stylist:  stylist,
		observer: observer,
	}
}

type OutfitInput struct {
	BodyShape string `json:"bodyShape"`
	Style     string `json:"style"`
	Occasion  string `json:"occasion"`
	Weather   string `json:"weather"`
}

type TrendsInput struct {
	Category string
}

type TrendsOutput struct {
	Trends []entities.Trend `json:"trends"`
}

type ItemTextInput struct {
	Text string `json:"text"`
}

type ItemImageInput struct {
	ImageData []byte

	// 空または application/octet-stream の場合はバイト列から判定
	MimeType string
}

func (uc *StylistUseCase) GenerateOutfit(ctx context.Context, input OutfitInput) (*entities.OutfitRecommendation, error) {
	request := entities.NewOutfitRequest(input.BodyShape, input.Style, input.Occasion, input.Weather)

	outfit, err := uc.stylist.GenerateOutfit(ctx, request)
	uc.observe(services.OperationGenerateOutfit, err)
	if err != nil {
		return nil, err
	}
	return outfit, nil
}

func (uc *StylistUseCase) FetchTrends(ctx context.Context, input TrendsInput) (*TrendsOutput, error) {
	trends, err := uc.stylist.FetchTrends(ctx, input.Category)
	uc.observe(services.OperationFetchTrends, err)
	if err != nil {
		return nil, err
	}
	return &TrendsOutput{Trends: trends}, nil
}

func (uc *StylistUseCase) AnalyzeItemByText(ctx context.Context, input ItemTextInput) (*entities.ItemAnalysis, error) {
	analysis, err := uc.stylist.AnalyzeItemByText(ctx, input.Text)
	uc.observe(services.OperationAnalyzeItemByText, err)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

func (uc *StylistUseCase) AnalyzeItemByImage(ctx context.Context, input ItemImageInput) (*entities.ItemAnalysis, error) {
	image, err := NewUploadedImage(input.ImageData, input.MimeType)
	if err != nil {
		uc.observe(services.OperationAnalyzeItemByImage, err)
		return nil, err
	}

	analysis, err := uc.stylist.AnalyzeItemByImage(ctx, image)
	uc.observe(services.OperationAnalyzeItemByImage, err)
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// NewUploadedImage wraps uploaded bytes, sniffing the format when the client
// sent no usable content type.
func NewUploadedImage(data []byte, mimeType string) (*valueobjects.ImageData, error) {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}
	if mimeType != "" && !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, mimeType)
	}

	image, err := valueobjects.NewImageData(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return image, nil
}

func (uc *StylistUseCase) observe(operation string, err error) {
	if uc.observer != nil {
		uc.observer.ObserveOperation(operation, err)
	}
}
