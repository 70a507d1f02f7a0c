package ai

import (
	"math/rand"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// Random picks uniformly among the empty cells.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy with a fixed seed for reproducible games.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// SelectMove implements tictactoe.Selector.
func (r *Random) SelectMove(b *tictactoe.Board, _ tictactoe.Cell) (tictactoe.Move, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return tictactoe.Move{}, tictactoe.ErrNoMovesLeft
	}
	return empty[r.rng.Intn(len(empty))], nil
}
