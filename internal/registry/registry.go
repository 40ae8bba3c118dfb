// Package registry maps game IDs to factories. Games register themselves in
// init(), so front ends can create them by ID without importing them.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

// Game is what a front end drives: fixed-step logic plus rendering into a
// Screen buffer. Implementations never touch the terminal.
type Game interface {
	// ID is the stable identifier used for score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts over with the given screen size, seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions held this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, lives and run status.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Title returns the display name of a registered game.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := titles[id]
	return t, ok
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
