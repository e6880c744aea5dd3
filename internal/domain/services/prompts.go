package services

import (
	"fmt"
	"strings"

	"stylist-demo/internal/domain/entities"
)

const (
	analyzeImageInstruction = "Describe this fashion item. What is its style, which brands might make it, and which pieces would pair well with it?"

	pairedImageInstruction = "Create a new image in which a model wears this item as part of a complete fashion outfit. Keep the style of the original item but place it in a new setting."
)

func buildOutfitPrompt(request *entities.OutfitRequest) string {
	var sb strings.Builder

	sb.WriteString("Act as a professional fashion stylist. ")
	sb.WriteString("Based on the following details: ")
	sb.WriteString("Body shape - " + request.BodyShape() + ", ")
	sb.WriteString("Style - " + request.Style() + ", ")
	sb.WriteString("Occasion - " + request.Occasion() + ", ")
	sb.WriteString("Weather - " + request.Weather() + ". ")
	sb.WriteString("Suggest one complete outfit.")

	return sb.String()
}

func buildOutfitImagePrompt(outfit *entities.OutfitRecommendation) string {
	return fmt.Sprintf(
		"A high-quality, full-body fashion photo of a model wearing the following outfit: %s. Minimal studio setting, beautiful lighting.",
		outfit.ItemDescriptions(),
	)
}

func buildTrendsPrompt(category string, count int) string {
	return fmt.Sprintf(
		"Create a JSON list of %d standout fashion trends for the topic %q. The response MUST be an array of JSON objects, each object representing one trend.",
		count, category,
	)
}

func buildTrendImagePrompt(trend trendPayload) string {
	return fmt.Sprintf(
		"A fashion photo collage showcasing the %q trend. Include key pieces such as %s. Artistic, modern, vibrant style.",
		trend.Name, strings.Join(trend.KeyItems, ", "),
	)
}

func buildItemTextPrompt(text string) string {
	return fmt.Sprintf(
		"Provide information about the following fashion item: %q. Describe its style, the brands that might make it, and suggest how to style it.",
		text,
	)
}

func buildItemImagePrompt(text string) string {
	return fmt.Sprintf(
		"A high-quality fashion photo of the following item: %q, styled within a complete outfit worn by a model.",
		text,
	)
}
