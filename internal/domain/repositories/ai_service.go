package repositories

import (
	"context"
	"errors"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/valueobjects"
)

// ErrNoImageData is returned by an ImageAIService when the model answered
// without an inline image payload.
var ErrNoImageData = errors.New("no image data received from model")

// テキスト生成サービス
type TextAIService interface {
	// schemaに従うJSONテキストを生成
	GenerateStructured(ctx context.Context, request *entities.TextRequest, schema *valueobjects.Schema) (*entities.TextResult, error)

	// 自由形式のテキストを生成（画像入力も可）
	GenerateText(ctx context.Context, request *entities.TextRequest) (*entities.TextResult, error)
}

// 画像生成サービス
type ImageAIService interface {
	GenerateImage(ctx context.Context, request *entities.ImageRequest) (*entities.ImageResult, error)
}
