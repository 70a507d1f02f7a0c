package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of stats sidebar
	maxResults         = 200 // Max results to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextDim key.Binding
	PrevDim key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevDim, k.NextDim, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevDim, k.NextDim, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDim: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next board size"),
		),
		PrevDim: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/S-tab", "prev board size"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ScoreboardModel browses recorded games, filtered by board size.
type ScoreboardModel struct {
	store       *storage.Store
	results     []storage.GameRecord // all loaded results, newest first
	stats       map[int]*storage.Stats
	dims        []int // played dimensions; index 0 of the tabs is "all"
	tab         int
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	loadErr     error
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	results, err := m.store.RecentResults(maxResults)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := m.store.AllStats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.results = results
	m.stats = stats
	m.dims = make([]int, 0, len(stats))
	for d := range stats {
		m.dims = append(m.dims, d)
	}
	slices.Sort(m.dims)
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Board", Width: 6},
		{Title: "Mode", Width: 9},
		{Title: "Result", Width: 13},
		{Title: "Moves", Width: 6},
		{Title: "Player", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentDim returns the selected dimension, 0 for all.
func (m ScoreboardModel) currentDim() int {
	if m.tab == 0 {
		return 0
	}
	return m.dims[m.tab-1]
}

// visible returns the results shown for the current tab.
func (m ScoreboardModel) visible() []storage.GameRecord {
	dim := m.currentDim()
	if dim == 0 {
		return m.results
	}
	out := make([]storage.GameRecord, 0, len(m.results))
	for _, r := range m.results {
		if r.Dimension == dim {
			out = append(out, r)
		}
	}
	return out
}

// updateTableRows fills the table for the current tab.
func (m *ScoreboardModel) updateTableRows() {
	results := m.visible()
	rows := make([]table.Row, len(results))
	for i, r := range results {
		mode := "vs " + r.Strategy
		if r.Mode == storage.ModeHotSeat {
			mode = "hot seat"
		}
		player := r.Player
		if player == "" {
			player = r.Source
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%dx%d", r.Dimension, r.Dimension),
			mode,
			outcomeLabel(r.Outcome),
			fmt.Sprintf("%d", r.Moves),
			player,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func outcomeLabel(key string) string {
	switch key {
	case "human_won":
		return "human won"
	case "computer_won":
		return "computer won"
	case "x_won":
		return "X won"
	case "o_won":
		return "O won"
	case "tie":
		return "tie"
	}
	return key
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	tabs := len(m.dims) + 1

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDim):
			m.tab = (m.tab + 1) % tabs
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevDim):
			m.tab = (m.tab - 1 + tabs) % tabs
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RESULTS - all boards"
	if dim := m.currentDim(); dim > 0 {
		title = fmt.Sprintf("RESULTS - %dx%d", dim, dim)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar shows win/tie counts for the selected tab.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var st storage.Stats
	if dim := m.currentDim(); dim > 0 {
		if s, ok := m.stats[dim]; ok {
			st = *s
		}
	} else {
		for _, s := range m.stats {
			st.Games += s.Games
			st.HumanWins += s.HumanWins
			st.ComputerWins += s.ComputerWins
			st.Ties += s.Ties
			st.XWins += s.XWins
			st.OWins += s.OWins
		}
	}

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Games     %d\n", st.Games)
	fmt.Fprintf(&sb, "You won   %d\n", st.HumanWins)
	fmt.Fprintf(&sb, "CPU won   %d\n", st.ComputerWins)
	fmt.Fprintf(&sb, "Ties      %d\n", st.Ties)
	if st.XWins+st.OWins > 0 {
		fmt.Fprintf(&sb, "X / O     %d / %d\n", st.XWins, st.OWins)
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No results database available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.visible()) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
