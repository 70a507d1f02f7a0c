package tictactoe

import "fmt"

// Status is the engine's state.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Result describes the game status after a move.
// Winner is only set when Status is StatusWon.
type Result struct {
	Status Status
	Winner Cell
}

// Over reports whether the result is terminal.
func (r Result) Over() bool {
	return r.Status != StatusInProgress
}

func (r Result) String() string {
	switch r.Status {
	case StatusWon:
		return fmt.Sprintf("%s wins", r.Winner)
	case StatusDrawn:
		return "draw"
	default:
		return "in progress"
	}
}

// Engine enforces turn order and detects wins and draws.
// It owns its board exclusively; Board() hands out copies.
type Engine struct {
	board   *Board
	first   Cell
	turn    Cell
	result  Result
	history []Move
}

// NewEngine starts a game on an empty n×n board with first to move.
// Passing Empty for first means X starts.
func NewEngine(n int, first Cell) (*Engine, error) {
	b, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	if first == Empty {
		first = X
	}
	if !first.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, first)
	}
	return &Engine{board: b, first: first, turn: first}, nil
}

// Turn returns the mark that moves next. Empty once the game is over.
func (e *Engine) Turn() Cell {
	if e.result.Over() {
		return Empty
	}
	return e.turn
}

// First returns the mark that opened the game.
func (e *Engine) First() Cell {
	return e.first
}

// Result returns the current status.
func (e *Engine) Result() Result {
	return e.result
}

// IsOver reports whether the game reached a terminal state.
func (e *Engine) IsOver() bool {
	return e.result.Over()
}

// Dimension returns the board dimension.
func (e *Engine) Dimension() int {
	return e.board.dim
}

// Board returns a copy of the current board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// History returns the moves played so far, oldest first.
func (e *Engine) History() []Move {
	return append([]Move(nil), e.history...)
}

// LastMove returns the most recent move, if any.
func (e *Engine) LastMove() (Move, bool) {
	if len(e.history) == 0 {
		return Move{}, false
	}
	return e.history[len(e.history)-1], true
}

// ApplyMove places the current player's mark at (row, col).
func (e *Engine) ApplyMove(row, col int) (Result, error) {
	if e.result.Over() {
		return e.result, ErrGameAlreadyOver
	}

	mark := e.turn
	if err := e.board.Place(row, col, mark); err != nil {
		return e.result, err
	}
	e.history = append(e.history, Move{Row: row, Col: col})

	switch {
	case completedLine(e.board, row, col, mark) != nil:
		e.result = Result{Status: StatusWon, Winner: mark}
	case e.board.IsFull():
		e.result = Result{Status: StatusDrawn}
	default:
		e.turn = mark.Opponent()
	}

	return e.result, nil
}

// ApplyMoveAs is ApplyMove for callers that track the mover themselves.
// It fails with ErrNotYourTurn when mark is not the player to move.
func (e *Engine) ApplyMoveAs(mark Cell, row, col int) (Result, error) {
	if e.result.Over() {
		return e.result, ErrGameAlreadyOver
	}
	if mark != e.turn {
		return e.result, fmt.Errorf("%w: %s tried to move, %s is next", ErrNotYourTurn, mark, e.turn)
	}
	return e.ApplyMove(row, col)
}

// WinningLine returns the completed line when the game was won, nil otherwise.
func (e *Engine) WinningLine() []Move {
	last, ok := e.LastMove()
	if !ok || e.result.Status != StatusWon {
		return nil
	}
	return completedLine(e.board, last.Row, last.Col, e.result.Winner)
}

// completedLine checks only the lines through (row, col), since the last
// move is the only one that can have produced a win.
func completedLine(b *Board, row, col int, mark Cell) []Move {
	for _, line := range b.LinesThrough(row, col) {
		if lineHolds(b, line, mark) {
			return line
		}
	}
	return nil
}

func lineHolds(b *Board, line []Move, mark Cell) bool {
	for _, m := range line {
		if b.at(m.Row, m.Col) != mark {
			return false
		}
	}
	return true
}
