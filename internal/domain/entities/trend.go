package entities

type Trend struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	KeyItems    []string `json:"keyItems"`
	ImageURL    string   `json:"imageUrl"`
}
