package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const hudHeight = 3 // title, status, blank line

// boardLayout is the on-screen geometry of one board.
// Boxed boards draw a grid around every cell; compact boards only use
// brackets and dots, for large dimensions on small terminals.
type boardLayout struct {
	boxed bool
	dim   int
}

func (l boardLayout) cellW() int {
	if l.boxed {
		return 4
	}
	return 3
}

func (l boardLayout) cellH() int {
	if l.boxed {
		return 2
	}
	return 1
}

func (l boardLayout) width() int {
	if l.boxed {
		return l.dim*l.cellW() + 1
	}
	return l.dim * l.cellW()
}

func (l boardLayout) height() int {
	if l.boxed {
		return l.dim*l.cellH() + 1
	}
	return l.dim
}

// chooseLayout picks the boxed layout when it fits in w×h, else compact.
// ok is false when not even the compact board fits.
func chooseLayout(dim, w, h int) (layout boardLayout, ok bool) {
	boxed := boardLayout{boxed: true, dim: dim}
	if boxed.width() <= w && boxed.height()+hudHeight <= h {
		return boxed, true
	}
	compact := boardLayout{dim: dim}
	return compact, compact.width() <= w && compact.height()+hudHeight <= h
}

// boardView is what drawBoard needs to know about a game.
type boardView struct {
	board   *tictactoe.Board
	winning []tictactoe.Move
	cursor  tictactoe.Move
	focused bool // show the cursor
}

func markColor(c tictactoe.Cell) core.Color {
	switch c {
	case tictactoe.X:
		return core.ColorCyan
	case tictactoe.O:
		return core.ColorRed
	}
	return core.ColorGray
}

// drawBoard draws the board with its top-left corner at (x0, y0).
func drawBoard(dst *core.Screen, v boardView, l boardLayout, x0, y0 int) {
	n := v.board.Dimension()
	if l.boxed {
		drawGrid(dst, n, x0, y0)
	}

	onWinLine := make(map[tictactoe.Move]bool, len(v.winning))
	for _, mv := range v.winning {
		onWinLine[mv] = true
	}

	for r := range n {
		for c := range n {
			px := x0 + c*l.cellW()
			py := y0 + r*l.cellH()
			if l.boxed {
				px++
				py++
			}

			mark := v.board.At(r, c)
			mv := tictactoe.Move{Row: r, Col: c}

			ch, color := '·', core.ColorGray
			if mark.IsPlayer() {
				ch, color = []rune(mark.String())[0], markColor(mark)
			} else if l.boxed {
				ch = ' '
			}
			if onWinLine[mv] {
				color = core.ColorGreen
			}
			dst.SetColored(px+1, py, ch, color)

			if v.focused && mv == v.cursor {
				dst.SetColored(px, py, '[', core.ColorYellow)
				dst.SetColored(px+2, py, ']', core.ColorYellow)
			}
		}
	}
}

// drawGrid draws the box-drawing lines around n×n cells.
func drawGrid(dst *core.Screen, n, x0, y0 int) {
	const cellW, cellH = 4, 2
	for y := range n + 1 {
		for x := range n + 1 {
			px := x0 + x*cellW
			py := y0 + y*cellH

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellH; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// drawTooSmall shows a "window too small" message.
func drawTooSmall(dst *core.Screen, need int) {
	lines := []string{"Window too small", fmt.Sprintf("Need at least %d columns", need)}
	y := dst.Height()/2 - 1
	w := len([]rune(lines[1])) + 4
	if w <= dst.Width() && y >= 1 {
		dst.DrawBox(core.NewRect((dst.Width()-w)/2, y-1, w, len(lines)+2))
	}
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line)
	}
}

// coords formats a move the way players type it: 1-based column then row.
func coords(mv tictactoe.Move) string {
	return fmt.Sprintf("%d %d", mv.Col+1, mv.Row+1)
}
