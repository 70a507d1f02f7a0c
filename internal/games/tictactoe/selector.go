package tictactoe

// Selector picks moves for a computer-controlled player.
// Implementations must return an empty cell, or ErrNoMovesLeft on a full board.
type Selector interface {
	SelectMove(b *Board, mark Cell) (Move, error)
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(b *Board, mark Cell) (Move, error)

// SelectMove calls f(b, mark).
func (f SelectorFunc) SelectMove(b *Board, mark Cell) (Move, error) {
	return f(b, mark)
}
