package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"stylist-demo/internal/domain/entities"
)

// FetchTrends asks for a set of trends in category and illustrates each one.
// Images are generated concurrently; the result keeps the model's order and
// fails as a whole if any image fails.
func (s *StylistDomainService) FetchTrends(ctx context.Context, category string) ([]entities.Trend, error) {
	textRequest := entities.NewTextRequest(buildTrendsPrompt(category, s.options.TrendCount), s.options.Models.Text)
	textResult, err := s.textAIService.GenerateStructured(ctx, textRequest, trendsSchema)
	if err != nil {
		return nil, s.fail(OperationFetchTrends, ErrFetchTrends, fmt.Errorf("trend generation failed: %w", err))
	}

	var payload []trendPayload
	if err := decodeStructured(textResult, trendsSchema, &payload); err != nil {
		return nil, s.fail(OperationFetchTrends, ErrFetchTrends, err)
	}

	// 完了順ではなくインデックスで結果を対応付ける
	trends := make([]entities.Trend, len(payload))

	g, gctx := errgroup.WithContext(ctx)
	if s.options.MaxConcurrentImages > 0 {
		g.SetLimit(s.options.MaxConcurrentImages)
	}

	for i, trend := range payload {
		g.Go(func() error {
			imageRequest := entities.NewImageRequest(s.options.Models.Image, buildTrendImagePrompt(trend))
			imageURL, err := s.generateImageURL(gctx, imageRequest)
			if err != nil {
				return fmt.Errorf("trend %d (%s) image generation failed: %w", i, trend.Name, err)
			}

			trends[i] = entities.Trend{
				Name:        trend.Name,
				Description: trend.Description,
				KeyItems:    trend.KeyItems,
				ImageURL:    imageURL,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.fail(OperationFetchTrends, ErrFetchTrends, err)
	}

	return trends, nil
}
