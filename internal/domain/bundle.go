package domain

// Bundle is a community center bundle: a set of required items tied to a reward
type Bundle struct {
	ID     string   `json:"id"`
	Room   string   `json:"room"`
	Name   string   `json:"name"`
	Reward string   `json:"reward"`
	Items  []string `json:"items"`
}
