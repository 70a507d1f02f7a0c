package tictactoe

import (
	"errors"
	"fmt"
)

var (
	// ErrNoComputer is returned when a computer move is requested in a hot-seat game.
	ErrNoComputer = errors.New("no computer player in this game")
	// ErrNoSelector is returned when a game against the computer has no strategy.
	ErrNoSelector = errors.New("computer player needs a move selector")
)

// Options configures a Session.
type Options struct {
	Dimension      int
	HumanMark      Cell     // Mark used by the human (X when Empty)
	ComputerBegins bool     // Computer takes the first move
	HotSeat        bool     // Two humans share the terminal, no computer
	Selector       Selector // Computer strategy, required unless HotSeat
}

// Outcome is the end-of-game verdict from the players' point of view.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHumanWon
	OutcomeComputerWon
	OutcomeXWon
	OutcomeOWon
	OutcomeTie
)

// String returns the message printed when the game ends.
func (o Outcome) String() string {
	switch o {
	case OutcomeHumanWon:
		return "You won!"
	case OutcomeComputerWon:
		return "Computer won!"
	case OutcomeXWon:
		return "X won!"
	case OutcomeOWon:
		return "O won!"
	case OutcomeTie:
		return "It's a tie!"
	default:
		return ""
	}
}

// Key returns a stable identifier used when recording results.
func (o Outcome) Key() string {
	switch o {
	case OutcomeHumanWon:
		return "human_won"
	case OutcomeComputerWon:
		return "computer_won"
	case OutcomeXWon:
		return "x_won"
	case OutcomeOWon:
		return "o_won"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

// Session seats the players around an Engine: a human and either the
// computer or a second human.
type Session struct {
	engine   *Engine
	opts     Options
	human    Cell
	computer Cell // Empty in hot-seat games
	selector Selector
}

// NewSession validates opts and starts a new game.
func NewSession(opts Options) (*Session, error) {
	human := opts.HumanMark
	if human == Empty {
		human = X
	}
	if !human.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, human)
	}

	s := &Session{
		opts:     opts,
		human:    human,
		selector: opts.Selector,
	}

	first := human
	if opts.HotSeat {
		first = X
	} else {
		s.computer = human.Opponent()
		if opts.ComputerBegins {
			first = s.computer
		}
		if s.selector == nil {
			return nil, ErrNoSelector
		}
	}

	engine, err := NewEngine(opts.Dimension, first)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

// Restart discards the current game and starts a fresh one with the same options.
func (s *Session) Restart() error {
	engine, err := NewEngine(s.engine.Dimension(), s.engine.First())
	if err != nil {
		return err
	}
	s.engine = engine
	return nil
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// HumanMark returns the human's mark.
func (s *Session) HumanMark() Cell {
	return s.human
}

// ComputerMark returns the computer's mark, Empty in hot-seat games.
func (s *Session) ComputerMark() Cell {
	return s.computer
}

// HotSeat reports whether two humans are playing.
func (s *Session) HotSeat() bool {
	return s.computer == Empty
}

// Dimension returns the board dimension.
func (s *Session) Dimension() int {
	return s.engine.Dimension()
}

// Board returns a copy of the current board.
func (s *Session) Board() *Board {
	return s.engine.Board()
}

// Turn returns the mark to move next, Empty once the game is over.
func (s *Session) Turn() Cell {
	return s.engine.Turn()
}

// Result returns the engine status.
func (s *Session) Result() Result {
	return s.engine.Result()
}

// History returns the moves played so far.
func (s *Session) History() []Move {
	return s.engine.History()
}

// LastMove returns the most recent move.
func (s *Session) LastMove() (Move, bool) {
	return s.engine.LastMove()
}

// WinningLine returns the completed line of a won game.
func (s *Session) WinningLine() []Move {
	return s.engine.WinningLine()
}

// IsOver reports whether the game has ended.
func (s *Session) IsOver() bool {
	return s.engine.IsOver()
}

// IsComputerTurn reports whether the computer should move next.
func (s *Session) IsComputerTurn() bool {
	return s.computer != Empty && s.engine.Turn() == s.computer
}

// HumanMove plays the human's move. In hot-seat games it plays for whoever is next.
func (s *Session) HumanMove(row, col int) (Result, error) {
	if s.HotSeat() {
		return s.engine.ApplyMove(row, col)
	}
	return s.engine.ApplyMoveAs(s.human, row, col)
}

// ComputerMove asks the selector for a move and plays it.
func (s *Session) ComputerMove() (Move, Result, error) {
	if s.HotSeat() {
		return Move{}, s.engine.Result(), ErrNoComputer
	}
	if s.engine.IsOver() {
		return Move{}, s.engine.Result(), ErrGameAlreadyOver
	}
	if s.engine.Turn() != s.computer {
		return Move{}, s.engine.Result(), fmt.Errorf("%w: computer plays %s, %s is next", ErrNotYourTurn, s.computer, s.engine.Turn())
	}

	mv, err := s.selector.SelectMove(s.engine.Board(), s.computer)
	if err != nil {
		return Move{}, s.engine.Result(), fmt.Errorf("select move: %w", err)
	}
	res, err := s.engine.ApplyMoveAs(s.computer, mv.Row, mv.Col)
	if err != nil {
		return mv, res, fmt.Errorf("computer move %s: %w", mv, err)
	}
	return mv, res, nil
}

// Outcome translates the engine result into a verdict.
func (s *Session) Outcome() Outcome {
	res := s.engine.Result()
	switch res.Status {
	case StatusDrawn:
		return OutcomeTie
	case StatusWon:
		switch {
		case s.HotSeat() && res.Winner == X:
			return OutcomeXWon
		case s.HotSeat():
			return OutcomeOWon
		case res.Winner == s.human:
			return OutcomeHumanWon
		default:
			return OutcomeComputerWon
		}
	}
	return OutcomeNone
}
