package entities

type ItemAnalysis struct {
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
