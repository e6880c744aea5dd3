package entities

import "stylist-demo/internal/domain/valueobjects"

type TextRequest struct {
	prompt string

	// 対象とするモデル
	model string

	// 画像に基づく分析の場合のみ指定
	images []*valueobjects.ImageData
}

func NewTextRequest(prompt string, model string) *TextRequest {
	return &TextRequest{
		prompt: prompt,
		model:  model,
	}
}

func NewTextRequestWithImages(prompt string, model string, images []*valueobjects.ImageData) *TextRequest {
	return &TextRequest{
		prompt: prompt,
		model:  model,
		images: images,
	}
}

func (r *TextRequest) Prompt() string {
	return r.prompt
}

func (r *TextRequest) Model() string {
	return r.model
}

func (r *TextRequest) Images() []*valueobjects.ImageData {
	return r.images
}

func (r *TextRequest) HasImages() bool {
	return len(r.images) > 0
}
