// Package registry maps mode IDs to game factories. The skyduel package
// registers its two modes ("skyduel" against computer enemies and
// "skyduel_duel" for two seats only) from init, and the CLI, the local TUI
// and the SSH server all create sessions through Create.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sky-duel/internal/core"
)

// Game is one two-seat match. It knows nothing of terminals, speakers or
// sessions: the platform feeds it input, draws it and plays its sounds.
type Game interface {
	// ID is the mode key used on the command line and in the results
	// database.
	ID() string

	// Title is the name shown in menus and score listings.
	Title() string

	// Reset starts a fresh match for both seats. The platform calls it on
	// launch and when a finished match is restarted.
	Reset(cfg core.RuntimeConfig)

	// Step advances the match by one tick. ByPlayer holds the keys each
	// seat is holding; Events holds discrete presses such as fire and
	// pause in the order they arrived. Sounds in the result were raised
	// during this tick, in order, and are played by the platform; a
	// session without audio drops them.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws the arena onto a cleared screen.
	Render(dst *core.Screen)

	// State reports both seats' lives and scores and the winner once the
	// match is over.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a match in its initial state.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register makes a mode available under id. Registering the same id twice
// panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a new match of the given mode. Each SSH session gets its
// own.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
