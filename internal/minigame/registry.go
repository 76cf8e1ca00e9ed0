package minigame

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrInvalidID = errors.New("game id must be a positive integer")
	ErrNilGame   = errors.New("game must not be nil")
)

// Registry maps game ids to instances.
type Registry struct {
	games map[int]Game
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{games: make(map[int]Game)}
}

// Register adds g under id, replacing any previous registration.
func (r *Registry) Register(id int, g Game) error {
	if id <= 0 {
		return fmt.Errorf("register %d: %w", id, ErrInvalidID)
	}
	if g == nil {
		return fmt.Errorf("register %d: %w", id, ErrNilGame)
	}
	r.games[id] = g
	return nil
}

// Lookup returns the game registered under id.
func (r *Registry) Lookup(id int) (Game, bool) {
	g, ok := r.games[id]
	return g, ok
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []int {
	return slices.Sorted(maps.Keys(r.games))
}

func (r *Registry) Len() int { return len(r.games) }
