package tictactoe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playMoves applies moves in order and returns the result of the last one.
func playMoves(t *testing.T, e *Engine, moves []Move) Result {
	t.Helper()
	var res Result
	for i, m := range moves {
		var err error
		res, err = e.ApplyMove(m.Row, m.Col)
		require.NoError(t, err, "move %d %s", i, m)
	}
	return res
}

func TestEngineInitialState(t *testing.T) {
	e, err := NewEngine(3, Empty)
	require.NoError(t, err)

	assert.Equal(t, X, e.Turn())
	assert.Equal(t, StatusInProgress, e.Result().Status)
	assert.False(t, e.IsOver())
	assert.Empty(t, e.History())

	e, err = NewEngine(3, O)
	require.NoError(t, err)
	assert.Equal(t, O, e.Turn())
	assert.Equal(t, O, e.First())
}

func TestEngineInvalidDimension(t *testing.T) {
	_, err := NewEngine(1, X)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewEngine(31, X)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestEngineTurnAlternates(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	_, err = e.ApplyMove(0, 0)
	require.NoError(t, err)
	assert.Equal(t, O, e.Turn())

	_, err = e.ApplyMove(1, 1)
	require.NoError(t, err)
	assert.Equal(t, X, e.Turn())

	b := e.Board()
	assert.Equal(t, X, b.At(0, 0))
	assert.Equal(t, O, b.At(1, 1))
}

func TestEngineRejectedMoveKeepsTurn(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)
	_, err = e.ApplyMove(0, 0)
	require.NoError(t, err)

	_, err = e.ApplyMove(0, 0)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, O, e.Turn())

	_, err = e.ApplyMove(3, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, O, e.Turn())
	assert.Len(t, e.History(), 1)
}

func TestEngineApplyMoveAs(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	_, err = e.ApplyMoveAs(O, 0, 0)
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.Equal(t, Empty, e.Board().At(0, 0))

	_, err = e.ApplyMoveAs(X, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, O, e.Turn())
}

func TestEngineClassicTopRowWin(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	res := playMoves(t, e, []Move{
		{0, 0}, // X
		{1, 1}, // O
		{0, 1}, // X
		{2, 1}, // O
	})
	assert.Equal(t, StatusInProgress, res.Status)

	res, err = e.ApplyMove(0, 2)
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusWon, Winner: X}, res)
	assert.Equal(t, Empty, e.Turn())
	assert.Equal(t, []Move{{0, 0}, {0, 1}, {0, 2}}, e.WinningLine())
}

// winScenario fills a target line with X's moves while O plays on cells
// that can never complete a line, and checks the win lands on the final move.
func winScenario(t *testing.T, n int, line []Move) {
	t.Helper()
	e, err := NewEngine(n, X)
	require.NoError(t, err)

	onLine := make(map[Move]bool, len(line))
	for _, m := range line {
		onLine[m] = true
	}

	// O only plays off the target line and never fills a line of its own:
	// pick cells row-major, skipping the target line, and stop before O
	// could hold a full row, column or diagonal.
	var oMoves []Move
	for r := 0; r < n && len(oMoves) < n-1; r++ {
		for c := 0; c < n && len(oMoves) < n-1; c++ {
			m := Move{r, c}
			if !onLine[m] {
				oMoves = append(oMoves, m)
			}
		}
	}
	require.Len(t, oMoves, n-1, "not enough free cells for O on %dx%d", n, n)

	for i, xm := range line {
		res, err := e.ApplyMove(xm.Row, xm.Col)
		require.NoError(t, err)
		if i < len(line)-1 {
			require.Equal(t, StatusInProgress, res.Status, "win declared early at move %d", i)
			res, err = e.ApplyMove(oMoves[i].Row, oMoves[i].Col)
			require.NoError(t, err)
			require.Equal(t, StatusInProgress, res.Status, "O must not win")
		} else {
			assert.Equal(t, Result{Status: StatusWon, Winner: X}, res)
		}
	}
}

func TestEngineWinEveryLineShape(t *testing.T) {
	for n := MinDimension + 1; n <= MaxDimension; n++ {
		b, err := NewBoard(n)
		require.NoError(t, err)

		shapes := map[string][]Move{
			"first row":     b.row(0),
			"last row":      b.row(n - 1),
			"first column":  b.col(0),
			"last column":   b.col(n - 1),
			"diagonal":      b.diagonal(),
			"anti-diagonal": b.antiDiagonal(),
		}
		for name, line := range shapes {
			t.Run(fmt.Sprintf("%dx%d %s", n, n, name), func(t *testing.T) {
				winScenario(t, n, line)
			})
		}
	}
}

func TestEngineTwoByTwo(t *testing.T) {
	// On 2x2 the first player always completes a line with its second move.
	e, err := NewEngine(2, X)
	require.NoError(t, err)

	res := playMoves(t, e, []Move{{0, 0}, {1, 1}})
	assert.Equal(t, StatusInProgress, res.Status)

	res, err = e.ApplyMove(0, 1)
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusWon, Winner: X}, res)
}

func TestEngineDraw(t *testing.T) {
	// Final position:
	//   X O X
	//   X O O
	//   O X X
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	moves := []Move{
		{0, 0}, // X
		{0, 1}, // O
		{0, 2}, // X
		{1, 1}, // O
		{1, 0}, // X
		{1, 2}, // O
		{2, 1}, // X
		{2, 0}, // O
	}
	res := playMoves(t, e, moves)
	assert.Equal(t, StatusInProgress, res.Status, "draw declared before the last cell")

	res, err = e.ApplyMove(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Result{Status: StatusDrawn}, res)
	assert.Nil(t, e.WinningLine())
}

func TestEngineWinOnLastCellIsNotDraw(t *testing.T) {
	// Final position, X completes the main diagonal on the last empty cell:
	//   X O O
	//   O X X
	//   X O X
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	res := playMoves(t, e, []Move{
		{0, 0}, {0, 1},
		{1, 1}, {0, 2},
		{1, 2}, {1, 0},
		{2, 0}, {2, 1},
		{2, 2},
	})
	assert.Equal(t, Result{Status: StatusWon, Winner: X}, res)
}

func TestEngineTerminalStateIsFinal(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)
	playMoves(t, e, []Move{{0, 0}, {1, 1}, {0, 1}, {2, 1}, {0, 2}})
	require.True(t, e.IsOver())

	before := e.Board().Compact()
	res, err := e.ApplyMove(2, 2)
	assert.ErrorIs(t, err, ErrGameAlreadyOver)
	assert.Equal(t, Result{Status: StatusWon, Winner: X}, res)
	assert.Equal(t, before, e.Board().Compact())

	_, err = e.ApplyMoveAs(O, 2, 2)
	assert.ErrorIs(t, err, ErrGameAlreadyOver)
	assert.Equal(t, before, e.Board().Compact())
}

func TestEngineBoardIsACopy(t *testing.T) {
	e, err := NewEngine(3, X)
	require.NoError(t, err)

	b := e.Board()
	require.NoError(t, b.Place(0, 0, O))

	_, err = e.ApplyMove(0, 0)
	assert.NoError(t, err, "mutating a copy must not affect the engine")
}
