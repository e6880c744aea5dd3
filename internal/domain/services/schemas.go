package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"stylist-demo/internal/domain/entities"
	"stylist-demo/internal/domain/valueobjects"
)

type outfitPayload struct {
	OutfitName  string                `json:"outfitName" description:"Suggested name for the outfit."`
	Description string                `json:"description" description:"Short description of the outfit's style and the occasions it suits."`
	Items       []entities.OutfitItem `json:"items" description:"Pieces that make up the outfit."`
}

type trendPayload struct {
	Name        string   `json:"name" description:"Name of the trend."`
	Description string   `json:"description" description:"Description of the trend."`
	KeyItems    []string `json:"keyItems" description:"Key pieces of the trend."`
}

var (
	outfitSchema = valueobjects.MustSchema(outfitPayload{})
	trendsSchema = valueobjects.MustSchema([]trendPayload{}).WithDescription("List of fashion trends.")
)

// decodeStructured validates the model output against schema and decodes it
// into out.
func decodeStructured(result *entities.TextResult, schema *valueobjects.Schema, out any) error {
	content := cleanJSONResponse(result.TrimmedText())
	if content == "" {
		return fmt.Errorf("empty structured response")
	}

	if err := schema.Validate([]byte(content)); err != nil {
		return fmt.Errorf("response does not match schema: %w", err)
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Structured output is normally bare JSON, but fenced blocks still show up.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
