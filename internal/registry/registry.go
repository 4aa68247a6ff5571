// Package registry provides a global registry for game variant factories.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gagank1/Flappy-Nerd/internal/core"
)

// Game is the interface every variant must implement. Variants contain pure
// logic with no external dependencies (especially no Bubble Tea). The
// platform handles input mapping, frame timing, and terminal output.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the variant state.
	// Called once at start; the RuntimeConfig provides the terminal cell
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one frame: the abstracted input actions and the wall
	// clock delta since the previous frame, in seconds. The variant runs
	// however many fixed simulation steps are due and returns the result.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current presentation state (score, game over, paused).
	State() core.GameState
}

// Options carries construction-time settings common to all variants.
type Options struct {
	ConfigPath string // Custom YAML config path; empty uses the search order
	DBPath     string // Question bank database path; empty uses the default
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a variant.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
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

// Create instantiates a new variant by its ID.
// Returns an error if the variant ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return f(opts)
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
