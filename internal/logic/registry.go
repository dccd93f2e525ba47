// Package logic provides the built-in move strategies and a global
// registry for them. Strategies register themselves in init()
// functions, so the CLI can offer them without hardcoded dependencies.
package logic

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcticline/icefloe/internal/game"
)

// Strategy decides which move to answer a move request with. Returning
// nil declines the request. Strategies are called from the single
// session goroutine and may keep internal state between calls.
type Strategy interface {
	// Name returns the identifier used on the CLI and in the archive.
	Name() string

	// CalculateMove picks a move for the current team of the given
	// state, or nil to decline.
	CalculateMove(state *game.GameState) *game.Move
}

// Info describes a registered strategy.
type Info struct {
	Name        string
	Description string
}

// Factory creates a fresh strategy instance.
type Factory func() Strategy

var (
	mu           sync.RWMutex
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
)

// Register adds a strategy factory. Typically called from an init()
// function; panics on duplicate names.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("logic: strategy %q already registered", name))
	}
	factories[name] = f
	descriptions[name] = description
}

// List returns all registered strategies sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(factories))
	for name := range factories {
		out = append(out, Info{Name: name, Description: descriptions[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Create instantiates a strategy by name.
func Create(name string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("logic: unknown strategy %q", name)
	}
	return f(), nil
}

// Exists reports whether a strategy is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
