package services

import (
	"net/http"
	"strings"

	"stylist-demo/internal/application/usecases"
)

// ParameterService reads operation inputs from form and query values.
// Both camelCase and snake_case keys are accepted.
type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

func (s *ParameterService) ParseOutfitInput(r *http.Request) usecases.OutfitInput {
	return usecases.OutfitInput{
		BodyShape: s.getString(r, "", "bodyShape", "body_shape"),
		Style:     s.getString(r, "", "style"),
		Occasion:  s.getString(r, "", "occasion"),
		Weather:   s.getString(r, "", "weather"),
	}
}

func (s *ParameterService) ParseTrendsInput(r *http.Request) usecases.TrendsInput {
	return usecases.TrendsInput{
		Category: s.getString(r, "", "category"),
	}
}

func (s *ParameterService) ParseItemTextInput(r *http.Request) usecases.ItemTextInput {
	return usecases.ItemTextInput{
		Text: s.getString(r, "", "text", "description"),
	}
}

// getString returns the first non-blank value among keys.
func (s *ParameterService) getString(r *http.Request, defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(r.FormValue(key)); value != "" {
			return value
		}
	}
	return defaultValue
}
