package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

func mustBoard(t *testing.T, rows ...string) *tictactoe.Board {
	t.Helper()
	b, err := tictactoe.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestHeuristicSelectMove(t *testing.T) {
	tests := []struct {
		name     string
		board    []string
		expected tictactoe.Move
	}{
		{
			name:     "first move center",
			board:    []string{"---", "---", "---"},
			expected: tictactoe.Move{Row: 1, Col: 1},
		},
		{
			name:     "avoid loss",
			board:    []string{"X--", "XO-", "---"},
			expected: tictactoe.Move{Row: 2, Col: 0},
		},
		{
			name:     "win over avoid loss",
			board:    []string{"X--", "XO-", "-O-"},
			expected: tictactoe.Move{Row: 0, Col: 1},
		},
		{
			name:     "complete anti-diagonal on 4x4",
			board:    []string{"---O", "XXO-", "XO--", "----"},
			expected: tictactoe.Move{Row: 3, Col: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.board...)
			mv, err := NewHeuristic().SelectMove(b, tictactoe.O)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mv)
		})
	}
}

func TestHeuristicFullBoard(t *testing.T) {
	b := mustBoard(t, "XO", "OX")
	_, err := NewHeuristic().SelectMove(b, tictactoe.O)
	assert.ErrorIs(t, err, tictactoe.ErrNoMovesLeft)
}

func TestHeuristicInvalidMark(t *testing.T) {
	b := mustBoard(t, "--", "--")
	_, err := NewHeuristic().SelectMove(b, tictactoe.Empty)
	assert.ErrorIs(t, err, tictactoe.ErrInvalidMark)
}

func TestRandomAlwaysPicksEmptyCell(t *testing.T) {
	r := NewRandom(42)
	b := mustBoard(t,
		"XO-X",
		"-OX-",
		"OX-O",
		"X--O",
	)

	for i := 0; i < 200; i++ {
		mv, err := r.SelectMove(b, tictactoe.O)
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Empty, b.At(mv.Row, mv.Col), "picked occupied cell %s", mv)
	}
}

func TestRandomDeterministicWithSeed(t *testing.T) {
	b := mustBoard(t, "-----", "-----", "-----", "-----", "-----")
	r1 := NewRandom(7)
	r2 := NewRandom(7)

	for i := 0; i < 20; i++ {
		m1, err := r1.SelectMove(b, tictactoe.X)
		require.NoError(t, err)
		m2, err := r2.SelectMove(b, tictactoe.X)
		require.NoError(t, err)
		assert.Equal(t, m1, m2)
	}
}

func TestRandomFullBoard(t *testing.T) {
	_, err := NewRandom(1).SelectMove(mustBoard(t, "XO", "OX"), tictactoe.X)
	assert.ErrorIs(t, err, tictactoe.ErrNoMovesLeft)
}

// Playing a whole game, each strategy's pick must be empty and a new cell
// every time, until the engine reports a terminal state.
func TestStrategiesPlayFullGames(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 30} {
		for _, id := range []string{StrategyRandom, StrategyHeuristic} {
			sel, err := registry.Create(id, 99)
			require.NoError(t, err)

			e, err := tictactoe.NewEngine(n, tictactoe.X)
			require.NoError(t, err)

			var prev *tictactoe.Move
			for !e.IsOver() {
				b := e.Board()
				mv, err := sel.SelectMove(b, e.Turn())
				require.NoError(t, err)
				require.Equal(t, tictactoe.Empty, b.At(mv.Row, mv.Col))
				if prev != nil {
					require.NotEqual(t, *prev, mv, "same cell picked twice in a row")
				}
				_, err = e.ApplyMove(mv.Row, mv.Col)
				require.NoError(t, err, "%s on %dx%d", id, n, n)
				prev = &mv
			}
		}
	}
}

func TestRegisteredStrategies(t *testing.T) {
	assert.True(t, registry.Exists(StrategyRandom))
	assert.True(t, registry.Exists(StrategyHeuristic))
}
