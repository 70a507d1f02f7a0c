package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var firstEmpty = tictactoe.SelectorFunc(func(b *tictactoe.Board, _ tictactoe.Cell) (tictactoe.Move, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return tictactoe.Move{}, tictactoe.ErrNoMovesLeft
	}
	return empty[0], nil
})

func newTestModel(t *testing.T, opts tictactoe.Options, store *storage.Store) Model {
	t.Helper()
	if !opts.HotSeat {
		opts.Selector = firstEmpty
	}
	s, err := tictactoe.NewSession(opts)
	require.NoError(t, err)
	return NewModel(Options{
		Session:  s,
		Strategy: "first-empty",
		Store:    store,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 30},
	})
}

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds keys to the model and runs any computer turn they schedule.
func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(press(k))
		m = next.(Model)
		m = runComputer(t, m, cmd)
	}
	return m
}

func runComputer(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg, ok := cmd().(computerTurnMsg)
	if !ok {
		return m
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelCursorMovesAndClamps(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3}, nil)
	assert.Equal(t, tictactoe.Move{Row: 1, Col: 1}, m.Cursor(), "cursor starts in the center")

	m = send(t, m, "up", "up", "left", "h")
	assert.Equal(t, tictactoe.Move{Row: 0, Col: 0}, m.Cursor())

	m = send(t, m, "j", "s", "down", "l", "d", "right")
	assert.Equal(t, tictactoe.Move{Row: 2, Col: 2}, m.Cursor())
}

func TestModelPlaceAndComputerReply(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3}, nil)

	next, cmd := m.Update(press("enter"))
	m = next.(Model)
	require.NotNil(t, cmd, "computer turn is scheduled")
	assert.Equal(t, tictactoe.X, m.Session().Board().At(1, 1))
	assert.Equal(t, "Computer is thinking...", m.Status())

	m = runComputer(t, m, cmd)
	assert.Equal(t, tictactoe.O, m.Session().Board().At(0, 0))
	assert.Contains(t, m.Status(), "Computer played 1 1")
	assert.Contains(t, m.Status(), "Your move (X)")
}

func TestModelOccupiedCell(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3}, nil)
	m = send(t, m, "enter")

	// O took (0,0); try to play there
	m = send(t, m, "up", "left", "enter")
	assert.Contains(t, m.Status(), "already taken")
	assert.Equal(t, tictactoe.O, m.Session().Board().At(0, 0))
	assert.Len(t, m.Session().History(), 2)
}

func TestModelComputerBegins(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3, ComputerBegins: true}, nil)
	assert.Equal(t, "Computer is thinking...", m.Status())

	// keys are ignored while the computer is to move
	m = send(t, m, "enter")
	assert.Empty(t, m.Session().History())

	m = runComputer(t, m, m.Init())
	assert.Equal(t, tictactoe.O, m.Session().Board().At(0, 0))
	assert.False(t, m.Session().IsComputerTurn())
}

func TestModelStaleComputerTurnIgnored(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3, ComputerBegins: true}, nil)
	stale := m.Init()

	next, fresh := m.Update(press("r"))
	m = next.(Model)
	require.NotNil(t, fresh)

	m = runComputer(t, m, stale)
	assert.Empty(t, m.Session().History(), "turn scheduled before the restart is dropped")

	m = runComputer(t, m, fresh)
	assert.Len(t, m.Session().History(), 1)
}

func TestModelGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, tictactoe.Options{Dimension: 3}, store)

	// X takes the middle row while O fills the top row from the left
	m = send(t, m, "left", "enter", "right", "enter", "right", "enter")
	require.True(t, m.Session().IsOver())
	assert.Contains(t, m.Status(), "You won!")
	assert.True(t, m.Saved())

	m = send(t, m, "enter", "enter")
	results, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "human_won", results[0].Outcome)
	assert.Equal(t, "first-empty", results[0].Strategy)
	assert.Equal(t, storage.SourceLocal, results[0].Source)
	assert.Equal(t, "OO-/XXX/---", results[0].Board)

	m = send(t, m, "r")
	assert.False(t, m.Saved())
	assert.False(t, m.Session().IsOver())
	assert.Empty(t, m.Session().History())
	assert.Equal(t, tictactoe.Move{Row: 1, Col: 1}, m.Cursor())
}

func TestModelHotSeat(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3, HotSeat: true}, nil)
	assert.Equal(t, "X to move", m.Status())

	next, cmd := m.Update(press("enter"))
	m = next.(Model)
	assert.Nil(t, cmd, "no computer in hot-seat games")
	assert.Equal(t, "O to move", m.Status())

	m = send(t, m, "up", "enter")
	assert.Equal(t, tictactoe.O, m.Session().Board().At(0, 1))
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3}, nil)

	next, cmd := m.Update(press("q"))
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 3}, nil)
	m = send(t, m, "enter")

	view := m.View()
	assert.Contains(t, view, "Tic Tac Toe 3x3")
	assert.Contains(t, view, "Your move (X)")
	assert.Contains(t, view, "┌")
	assert.Contains(t, view, "X")
	assert.Contains(t, view, "O")
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, tictactoe.Options{Dimension: 20}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	m = next.(Model)
	assert.Contains(t, m.View(), "Window too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Contains(t, m.View(), "Tic Tac Toe 20x20")
}

func TestChooseLayout(t *testing.T) {
	tests := []struct {
		name      string
		dim, w, h int
		boxed, ok bool
	}{
		{"small board boxed", 3, 80, 24, true, true},
		{"largest boxed fits", 30, 130, 70, true, true},
		{"large board compact", 30, 100, 40, false, true},
		{"does not fit", 30, 60, 20, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := chooseLayout(tc.dim, tc.w, tc.h)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.boxed, l.boxed)
		})
	}
}

func TestDrawBoard(t *testing.T) {
	b, err := tictactoe.ParseBoard("X--", "-O-", "--X")
	require.NoError(t, err)

	t.Run("boxed", func(t *testing.T) {
		s := core.NewScreen(20, 10)
		l, _ := chooseLayout(3, 20, 10)
		require.True(t, l.boxed)

		drawBoard(s, boardView{board: b, cursor: tictactoe.Move{Row: 2, Col: 0}, focused: true}, l, 0, 0)
		assert.Equal(t, '┌', s.Get(0, 0))
		assert.Equal(t, '┼', s.Get(4, 2))
		assert.Equal(t, 'X', s.Get(2, 1))
		assert.Equal(t, 'O', s.Get(6, 3))
		assert.Equal(t, core.ColorRed, s.GetCell(6, 3).Color)
		assert.Equal(t, "│[ ]│", string([]rune(s.Row(5))[:5]))
	})

	t.Run("compact", func(t *testing.T) {
		s := core.NewScreen(9, 3)
		drawBoard(s, boardView{board: b, winning: []tictactoe.Move{{Row: 0, Col: 0}}}, boardLayout{dim: 3}, 0, 0)
		assert.Equal(t, " X  ·  · ", s.Row(0))
		assert.Equal(t, core.ColorGreen, s.GetCell(1, 0).Color)
		assert.Equal(t, " ·  O  · ", s.Row(1))
		assert.False(t, strings.ContainsAny(s.String(), "[]"), "no cursor when unfocused")
	})
}
