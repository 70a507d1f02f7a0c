// Package tictactoe implements Tic Tac Toe on square boards from 2x2 up to 30x30.
// It holds pure game logic: no terminal, storage or logging dependencies.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Board dimension limits.
const (
	MinDimension     = 2
	MaxDimension     = 30
	DefaultDimension = 4
)

// Errors returned by board and engine operations.
var (
	ErrInvalidDimension = errors.New("invalid board dimension, must be between 2 and 30")
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrCellOccupied     = errors.New("cell already taken")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrGameAlreadyOver  = errors.New("game is already over")
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrNoMovesLeft      = errors.New("no empty cell left")
)

// Cell is the content of one square of the board.
// X and O double as the player identities.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the mark shown on the board.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// IsPlayer reports whether c is X or O.
func (c Cell) IsPlayer() bool {
	return c == X || c == O
}

// ParseMark converts "X"/"O" (any case) into a Cell.
func ParseMark(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, s)
}

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row, Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is an N×N grid stored row-major.
// Cells only ever go from Empty to a mark.
type Board struct {
	dim    int
	cells  []Cell
	filled int
}

// NewBoard creates an empty board of the given dimension.
func NewBoard(dim int) (*Board, error) {
	if dim < MinDimension || dim > MaxDimension {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	return &Board{
		dim:   dim,
		cells: make([]Cell, dim*dim),
	}, nil
}

// ParseBoard builds a board from rows of 'X', 'O' and '-' characters.
// Spaces inside a row are ignored. Every row must have as many cells as there are rows.
func ParseBoard(rows ...string) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != b.dim {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), b.dim)
		}
		for c, ch := range row {
			switch ch {
			case '-':
			case 'X', 'x':
				b.set(r, c, X)
			case 'O', 'o':
				b.set(r, c, O)
			default:
				return nil, fmt.Errorf("row %d: unexpected character %q", r, ch)
			}
		}
	}
	return b, nil
}

// Dimension returns N.
func (b *Board) Dimension() int {
	return b.dim
}

// InBounds reports whether (row, col) addresses a cell of this board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.dim && col >= 0 && col < b.dim
}

// At returns the cell at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.at(row, col)
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.dim, b.dim)
	}
	return b.at(row, col), nil
}

// Place puts mark on an empty cell.
func (b *Board) Place(row, col int, mark Cell) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.dim, b.dim)
	}
	if b.at(row, col) != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	b.set(row, col, mark)
	return nil
}

// IsFull returns true when no empty cell remains.
func (b *Board) IsFull() bool {
	return b.filled == len(b.cells)
}

// Filled returns the number of marked cells.
func (b *Board) Filled() int {
	return b.filled
}

// EmptyCells returns the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells)-b.filled)
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, Move{Row: i / b.dim, Col: i % b.dim})
		}
	}
	return moves
}

// Cells returns a copy of the grid as rows.
func (b *Board) Cells() [][]Cell {
	rows := make([][]Cell, b.dim)
	for r := range rows {
		rows[r] = append([]Cell(nil), b.cells[r*b.dim:(r+1)*b.dim]...)
	}
	return rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		dim:    b.dim,
		cells:  append([]Cell(nil), b.cells...),
		filled: b.filled,
	}
}

// Lines returns every row, column and both diagonals.
func (b *Board) Lines() [][]Move {
	n := b.dim
	lines := make([][]Move, 0, 2*n+2)
	for i := range n {
		lines = append(lines, b.row(i), b.col(i))
	}
	return append(lines, b.diagonal(), b.antiDiagonal())
}

// LinesThrough returns the lines passing through (row, col): its row, its
// column and each diagonal the cell lies on.
func (b *Board) LinesThrough(row, col int) [][]Move {
	lines := [][]Move{b.row(row), b.col(col)}
	if row == col {
		lines = append(lines, b.diagonal())
	}
	if row+col == b.dim-1 {
		lines = append(lines, b.antiDiagonal())
	}
	return lines
}

func (b *Board) row(r int) []Move {
	line := make([]Move, b.dim)
	for c := range line {
		line[c] = Move{Row: r, Col: c}
	}
	return line
}

func (b *Board) col(c int) []Move {
	line := make([]Move, b.dim)
	for r := range line {
		line[r] = Move{Row: r, Col: c}
	}
	return line
}

func (b *Board) diagonal() []Move {
	line := make([]Move, b.dim)
	for i := range line {
		line[i] = Move{Row: i, Col: i}
	}
	return line
}

func (b *Board) antiDiagonal() []Move {
	line := make([]Move, b.dim)
	for i := range line {
		line[i] = Move{Row: i, Col: b.dim - 1 - i}
	}
	return line
}

func (b *Board) at(row, col int) Cell {
	return b.cells[row*b.dim+col]
}

func (b *Board) set(row, col int, mark Cell) {
	b.cells[row*b.dim+col] = mark
	b.filled++
}

// Compact encodes the board as rows of 'X', 'O' and '-' joined by '/'.
// ParseBoard(strings.Split(b.Compact(), "/")...) restores it.
func (b *Board) Compact() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + b.dim)
	for i, c := range b.cells {
		if i > 0 && i%b.dim == 0 {
			sb.WriteByte('/')
		}
		if c == Empty {
			sb.WriteByte('-')
		} else {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// String draws the board as an ASCII grid:
//
//	+---+---+
//	| X |   |
//	+---+---+
func (b *Board) String() string {
	var sb strings.Builder
	sep := strings.Repeat("+---", b.dim) + "+\n"
	sb.Grow(len(sep) * (2*b.dim + 1))

	sb.WriteString(sep)
	for r := range b.dim {
		for c := range b.dim {
			sb.WriteString("| ")
			sb.WriteString(b.at(r, c).String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		sb.WriteString(sep)
	}
	return sb.String()
}
