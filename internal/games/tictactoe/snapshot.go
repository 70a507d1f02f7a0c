package tictactoe

// StateType names the game state in snapshots.
type StateType string

const (
	StatePlaying StateType = "playing"
	StateWon     StateType = "won"
	StateDrawn   StateType = "drawn"
)

// Snapshot captures the complete game state for tests and result records.
type Snapshot struct {
	Dimension int
	Turn      Cell // Empty once the game is over
	First     Cell
	Human     Cell
	Computer  Cell // Empty in hot-seat games
	Moves     []Move
	Board     string // Rows of X, O and '-' joined by '/'
	State     StateType
	Winner    Cell
	Outcome   Outcome
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	res := s.engine.Result()
	switch res.Status {
	case StatusWon:
		state = StateWon
	case StatusDrawn:
		state = StateDrawn
	}

	return Snapshot{
		Dimension: s.engine.Dimension(),
		Turn:      s.engine.Turn(),
		First:     s.engine.First(),
		Human:     s.human,
		Computer:  s.computer,
		Moves:     s.engine.History(),
		Board:     s.engine.board.Compact(),
		State:     state,
		Winner:    res.Winner,
		Outcome:   s.Outcome(),
	}
}
