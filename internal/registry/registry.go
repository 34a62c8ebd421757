// Package registry provides a global registry for arena layouts.
// Layouts register a simulation factory in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
)

// Simulation is the interface every arena layout implements.
// Simulations contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Simulation interface {
	// ID returns a unique identifier for this layout (e.g., "random", "box").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh arena fitted to the screen in cfg, seeded by cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's input and advances the emitter by one tick
	// unless paused.
	Step(in core.InputFrame) core.StepResult

	// Render draws walls, rays, hits, the emitter and a HUD row into dst.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current counters.
	State() core.SimState
}

// Info contains metadata about a registered layout.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new simulation from the loaded configuration.
type Factory func(cfg config.Config) Simulation

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(config.Default()).Title()
}

// List returns information about all registered layouts, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by layout ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.Config) (Simulation, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
