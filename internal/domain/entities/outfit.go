package entities

import "strings"

type OutfitItem struct {
	Type        string `json:"type" description:"Kind of piece, e.g. top, trousers, dress, shoes, accessory."`
	Description string `json:"description" description:"Detailed description of the piece including color, material and cut."`
}

type OutfitRecommendation struct {
	OutfitName  string       `json:"outfitName"`
	Description string       `json:"description"`
	Items       []OutfitItem `json:"items"`
	// data URI
	ImageURL string `json:"imageUrl"`
}

// ItemDescriptions joins the item descriptions in order, comma separated.
func (o *OutfitRecommendation) ItemDescriptions() string {
	descriptions := make([]string, len(o.Items))
	for i, item := range o.Items {
		descriptions[i] = item.Description
	}
	return strings.Join(descriptions, ", ")
}
