package ai

import (
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// Heuristic plays a win in one if it has one, otherwise blocks the opponent's
// win in one, otherwise takes the cell with the highest line weight.
//
// Every empty cell weighs 1. Each line that holds no opponent mark adds
// N+1-blanks to each of its blank cells, so lines closer to completion pull
// harder. Ties go to the last cell in row-major order.
type Heuristic struct{}

// NewHeuristic returns the line-weight strategy.
func NewHeuristic() Heuristic {
	return Heuristic{}
}

// SelectMove implements tictactoe.Selector.
func (Heuristic) SelectMove(b *tictactoe.Board, mark tictactoe.Cell) (tictactoe.Move, error) {
	if b.IsFull() {
		return tictactoe.Move{}, tictactoe.ErrNoMovesLeft
	}
	if !mark.IsPlayer() {
		return tictactoe.Move{}, tictactoe.ErrInvalidMark
	}

	n := b.Dimension()
	opponent := mark.Opponent()
	lines := b.Lines()

	weights := make([]int, n*n)
	for _, mv := range b.EmptyCells() {
		weights[mv.Row*n+mv.Col] = 1
	}

	for _, line := range lines {
		blanks, blocked := lineBlanks(b, line, opponent)
		if blocked {
			continue
		}
		// win in one
		if len(blanks) == 1 {
			return blanks[0], nil
		}
		bonus := n + 1 - len(blanks)
		for _, mv := range blanks {
			weights[mv.Row*n+mv.Col] += bonus
		}
	}

	for _, line := range lines {
		blanks, blocked := lineBlanks(b, line, mark)
		if !blocked && len(blanks) == 1 {
			return blanks[0], nil
		}
	}

	best := tictactoe.Move{Row: -1}
	bestWeight := 0
	for _, mv := range b.EmptyCells() {
		if w := weights[mv.Row*n+mv.Col]; best.Row < 0 || w >= bestWeight {
			best, bestWeight = mv, w
		}
	}
	return best, nil
}

// lineBlanks returns the empty cells of line, or blocked=true if the line holds stop.
func lineBlanks(b *tictactoe.Board, line []tictactoe.Move, stop tictactoe.Cell) (blanks []tictactoe.Move, blocked bool) {
	for _, mv := range line {
		switch b.At(mv.Row, mv.Col) {
		case stop:
			return nil, true
		case tictactoe.Empty:
			blanks = append(blanks, mv)
		}
	}
	return blanks, false
}
