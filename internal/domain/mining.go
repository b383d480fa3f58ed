package domain

// MiningLocation is a mine with its floor sections. Location is unique.
type MiningLocation struct {
	ID          string    `json:"id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Floors      string    `json:"floors"`
	Sections    []Section `json:"sections"`
}

// Section is a floor range inside a mining location. It is owned by its location.
type Section struct {
	Name     string   `json:"name"`
	Floors   string   `json:"floors"`
	Theme    string   `json:"theme"`
	Monsters []string `json:"monsters"`
	Ores     []string `json:"ores"`
	Gems     []string `json:"gems"`
	Geodes   []string `json:"geodes"`
	Notes    string   `json:"notes"`
}
