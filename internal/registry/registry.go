// Package registry provides a global registry of computer strategies.
// Strategies register themselves in init() functions, so the CLI and the
// config loader can pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// Factory creates a new strategy instance. Seed feeds any randomness the
// strategy uses so games can be replayed.
type Factory func(seed int64) tictactoe.Selector

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
func Create(id string, seed int64) (tictactoe.Selector, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(seed), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// NewSession starts a game with the named strategy seated for the computer.
// Hot-seat games ignore strategy.
func NewSession(opts tictactoe.Options, strategy string, seed int64) (*tictactoe.Session, error) {
	if !opts.HotSeat {
		sel, err := Create(strategy, seed)
		if err != nil {
			return nil, err
		}
		opts.Selector = sel
	}
	return tictactoe.NewSession(opts)
}
