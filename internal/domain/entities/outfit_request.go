package entities

// OutfitRequest carries the four free-text inputs of an outfit suggestion.
// The values are passed to the model as given.
type OutfitRequest struct {
	bodyShape string
	style     string
	occasion  string
	weather   string
}

func NewOutfitRequest(bodyShape, style, occasion, weather string) *OutfitRequest {
	return &OutfitRequest{
		bodyShape: bodyShape,
		style:     style,
		occasion:  occasion,
		weather:   weather,
	}
}

func (r *OutfitRequest) BodyShape() string {
	return r.bodyShape
}

func (r *OutfitRequest) Style() string {
	return r.style
}

func (r *OutfitRequest) Occasion() string {
	return r.occasion
}

func (r *OutfitRequest) Weather() string {
	return r.weather
}
