package services

import "errors"

// Operation failures surfaced to callers. The underlying cause is logged,
// never returned.
var (
	ErrGenerateOutfit     = errors.New("could not generate outfit")
	ErrFetchTrends        = errors.New("could not fetch trends")
	ErrAnalyzeItemByText  = errors.New("could not analyze item by text")
	ErrAnalyzeItemByImage = errors.New("could not analyze item by image")

	// ErrPairedImageMissing is returned together with ErrAnalyzeItemByImage
	// when the image model answered without an image.
	ErrPairedImageMissing = errors.New("could not generate paired-item image")
)

const (
	OperationGenerateOutfit     = "generate_outfit"
	OperationFetchTrends        = "fetch_trends"
	OperationAnalyzeItemByText  = "analyze_item_by_text"
	OperationAnalyzeItemByImage = "analyze_item_by_image"
)
