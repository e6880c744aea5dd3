package entities

import "stylist-demo/internal/domain/valueobjects"

// 画像生成リクエスト
type ImageRequest struct {
	model           string
	prompt          string
	referenceImages []*valueobjects.ImageData
}

func NewImageRequest(model string, prompt string) *ImageRequest {
	return &ImageRequest{
		model:  model,
		prompt: prompt,
	}
}

// NewImageRequestWithReference builds a request whose output must stay
// grounded on the given images.
func NewImageRequestWithReference(model string, prompt string, referenceImages []*valueobjects.ImageData) *ImageRequest {
	return &ImageRequest{
		model:           model,
		prompt:          prompt,
		referenceImages: referenceImages,
	}
}

func (r *ImageRequest) Model() string {
	return r.model
}

func (r *ImageRequest) Prompt() string {
	return r.prompt
}

func (r *ImageRequest) ReferenceImages() []*valueobjects.ImageData {
	return r.referenceImages
}

func (r *ImageRequest) HasReferenceImages() bool {
	return len(r.referenceImages) > 0
}
