package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// helpHeight is the space kept below the board for the help view.
const helpHeight = 4

// Options configures a game model.
type Options struct {
	Session  *tictactoe.Session // required
	Strategy string             // strategy ID, recorded with results
	Store    *storage.Store     // nil disables result saving
	Logger   *log.Logger        // nil discards log output
	Runtime  core.RuntimeConfig
	Source   string // storage.SourceLocal or storage.SourceSSH
	Player   string // ssh user name
}

// Model is the Bubble Tea model for one game of Tic Tac Toe.
type Model struct {
	session  *tictactoe.Session
	store    *storage.Store
	logger   *log.Logger
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	strategy string
	source   string
	player   string
	cursor   tictactoe.Move
	status   string
	gen      int // bumped on restart
	started  time.Time
	saved    bool // Whether the result has been saved for the current game
	quitting bool
}

// NewModel creates a new Bubble Tea model around a session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	source := opts.Source
	if source == "" {
		source = storage.SourceLocal
	}

	m := Model{
		session:  opts.Session,
		store:    opts.Store,
		logger:   logger,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		strategy: opts.Strategy,
		source:   source,
		player:   opts.Player,
		started:  time.Now(),
	}
	m.centerCursor()
	m.status = m.turnStatus()
	return m
}

// Init starts the computer's turn when it has the first move.
func (m Model) Init() tea.Cmd {
	return m.scheduleComputer()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case computerTurnMsg:
		return m.handleComputerTurn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.session.Dimension() - 1

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = core.Clamp(m.cursor.Row-1, 0, last)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = core.Clamp(m.cursor.Row+1, 0, last)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = core.Clamp(m.cursor.Col-1, 0, last)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = core.Clamp(m.cursor.Col+1, 0, last)
	case key.Matches(msg, m.keys.Place):
		return m.place()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// place plays the human's move at the cursor.
func (m Model) place() (tea.Model, tea.Cmd) {
	if m.session.IsOver() || m.session.IsComputerTurn() {
		return m, nil
	}

	res, err := m.session.HumanMove(m.cursor.Row, m.cursor.Col)
	switch {
	case errors.Is(err, tictactoe.ErrCellOccupied):
		m.status = fmt.Sprintf("Cell %s is already taken", coords(m.cursor))
		return m, nil
	case err != nil:
		m.logger.Error("human move rejected", "move", coords(m.cursor), "error", err)
		m.status = err.Error()
		return m, nil
	}

	if res.Over() {
		m.finish()
		return m, nil
	}
	m.status = m.turnStatus()
	return m, m.scheduleComputer()
}

// handleComputerTurn plays the computer's move.
func (m Model) handleComputerTurn(msg computerTurnMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.session.IsComputerTurn() {
		return m, nil
	}

	mv, res, err := m.session.ComputerMove()
	if err != nil {
		m.logger.Error("computer move failed", "strategy", m.strategy, "error", err)
		m.status = fmt.Sprintf("Computer could not move: %v", err)
		return m, nil
	}
	m.logger.Debug("computer move", "move", coords(mv), "strategy", m.strategy)

	if res.Over() {
		m.finish()
		return m, nil
	}
	m.status = fmt.Sprintf("Computer played %s. %s", coords(mv), m.turnStatus())
	return m, nil
}

// finish announces the result and saves it once.
func (m *Model) finish() {
	outcome := m.session.Outcome()
	m.status = outcome.String() + " Press r to play again."
	m.logger.Info("game over",
		"outcome", outcome.Key(),
		"dimension", m.session.Dimension(),
		"moves", len(m.session.History()),
		"player", m.player,
	)

	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	rec := storage.NewRecord(m.session, m.strategy, time.Since(m.started))
	rec.Source = m.source
	rec.Player = m.player
	if id, err := m.store.SaveResult(rec); err != nil {
		m.logger.Warn("could not save result", "error", err)
	} else {
		m.logger.Debug("result saved", "game_id", id)
	}
}

// restart starts a new game with the same seats.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.session.Restart(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.gen++
	m.saved = false
	m.started = time.Now()
	m.centerCursor()
	m.status = m.turnStatus()
	return m, m.scheduleComputer()
}

func (m Model) scheduleComputer() tea.Cmd {
	if !m.session.IsComputerTurn() {
		return nil
	}
	return computerTurnCmd(m.gen, m.config.ComputerDelay)
}

func (m *Model) centerCursor() {
	mid := (m.session.Dimension() - 1) / 2
	m.cursor = tictactoe.Move{Row: mid, Col: mid}
}

func (m Model) turnStatus() string {
	switch {
	case m.session.IsOver():
		return m.session.Outcome().String()
	case m.session.HotSeat():
		return fmt.Sprintf("%s to move", m.session.Turn())
	case m.session.IsComputerTurn():
		return "Computer is thinking..."
	default:
		return fmt.Sprintf("Your move (%s)", m.session.HumanMark())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	n := m.session.Dimension()
	layout, ok := chooseLayout(n, m.screen.Width(), m.screen.Height())
	if !ok {
		drawTooSmall(m.screen, layout.width())
		return RenderScreen(m.screen)
	}

	title := fmt.Sprintf("Tic Tac Toe %dx%d", n, n)
	m.drawCentered(0, title, core.ColorBrightWhite)

	statusColor := core.ColorDefault
	if m.session.IsOver() {
		statusColor = core.ColorGreen
	}
	m.drawCentered(1, m.status, statusColor)

	x0 := (m.screen.Width() - layout.width()) / 2
	drawBoard(m.screen, boardView{
		board:   m.session.Board(),
		winning: m.session.WinningLine(),
		cursor:  m.cursor,
		focused: !m.session.IsOver(),
	}, layout, x0, hudHeight)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) drawCentered(y int, text string, c core.Color) {
	x := (m.screen.Width() - len([]rune(text))) / 2
	m.screen.DrawTextColored(max(x, 0), y, text, c)
}

// Session returns the game being played.
func (m Model) Session() *tictactoe.Session {
	return m.session
}

// Cursor returns the cell under the cursor.
func (m Model) Cursor() tictactoe.Move {
	return m.cursor
}

// Status returns the status line.
func (m Model) Status() string {
	return m.status
}

// Saved reports whether the current game's result has been recorded.
func (m Model) Saved() bool {
	return m.saved
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
