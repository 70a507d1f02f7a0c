// Package ai implements computer opponents for Tic Tac Toe.
// Both strategies register with the strategy registry on import.
package ai

import (
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Strategy IDs.
const (
	StrategyRandom    = "random"
	StrategyHeuristic = "heuristic"
)

func init() {
	registry.Register(StrategyRandom, "Random empty cell", func(seed int64) tictactoe.Selector {
		return NewRandom(seed)
	})
	registry.Register(StrategyHeuristic, "Win, block, then strongest line", func(int64) tictactoe.Selector {
		return NewHeuristic()
	})
}
