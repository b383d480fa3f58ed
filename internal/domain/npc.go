package domain

import (
	"fmt"
	"strings"
)

// NPC is a villager with gift preferences. Name is unique and looked up
// case-insensitively.
type NPC struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Birthday string   `json:"birthday"`
	Location string   `json:"location"`
	Loves    []string `json:"loves"`
	Likes    []string `json:"likes"`
	Hates    []string `json:"hates"`
	Image    *string  `json:"image"`
}

// FindNPCByName returns a copy of the first NPC whose whole name matches
// name under Unicode lower-casing. Every backend resolves names through it.
func FindNPCByName(npcs []NPC, name string) (*NPC, error) {
	want := strings.ToLower(name)
	for i := range npcs {
		if strings.ToLower(npcs[i].Name) == want {
			npc := npcs[i]
			return &npc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNPCNotFound, name)
}
