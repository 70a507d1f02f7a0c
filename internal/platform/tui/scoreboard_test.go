package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, r := range []storage.GameRecord{
		{Dimension: 3, Mode: storage.ModeComputer, Strategy: "heuristic", HumanMark: "X", FirstMark: "X", Outcome: "tie", Moves: 9},
		{Dimension: 3, Mode: storage.ModeComputer, Strategy: "heuristic", HumanMark: "X", FirstMark: "X", Outcome: "computer_won", Winner: "O", Moves: 6},
		{Dimension: 5, Mode: storage.ModeHotSeat, HumanMark: "X", FirstMark: "X", Outcome: "x_won", Winner: "X", Moves: 9},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 120, 40)
	assert.Equal(t, []int{3, 5}, m.dims)
	assert.Len(t, m.visible(), 3)
	assert.Contains(t, m.View(), "RESULTS - all boards")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 3, m.currentDim())
	assert.Len(t, m.visible(), 2)
	assert.Contains(t, m.View(), "RESULTS - 3x3")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	assert.Equal(t, 5, m.currentDim())
	assert.Len(t, m.visible(), 1)

	// wraps around to "all"
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.currentDim())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	assert.Equal(t, 5, m.currentDim())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(ScoreboardModel)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Contains(t, m.View(), "No results database available.")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 0, m.currentDim(), "only the all tab exists")
}
