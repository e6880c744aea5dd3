package entities

import "stylist-demo/internal/domain/valueobjects"

type ImageResult struct {
	response  string
	imageData *valueobjects.ImageData
}

func NewImageResult(response string, imageData *valueobjects.ImageData) *ImageResult {
	return &ImageResult{
		response:  response,
		imageData: imageData,
	}
}

// Response is any accompanying text part returned next to the image.
func (r *ImageResult) Response() string {
	return r.response
}

func (r *ImageResult) ImageData() *valueobjects.ImageData {
	return r.imageData
}

func (r *ImageResult) HasImage() bool {
	return r.imageData != nil
}
