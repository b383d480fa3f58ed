package domain

// Fish is a catchable fish
type Fish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Season      string  `json:"season"`
	Weather     string  `json:"weather"`
	Location    string  `json:"location"`
	Time        *string `json:"time"`
	Difficulty  *int    `json:"difficulty"`
	Image       *string `json:"image"`
}
