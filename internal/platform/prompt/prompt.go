// Package prompt plays a game as a line-oriented dialogue: the board is
// printed between turns and moves are typed as "x y", 1-based, column first.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// ErrInputClosed is returned when the input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Prompt text shown before every human move.
const Prompt = "Enter x and y separated by a space: "

// Game runs one session over a reader and a writer.
type Game struct {
	session *tictactoe.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

// New creates a line-oriented game. A nil logger discards log output.
func New(s *tictactoe.Session, in io.Reader, out io.Writer, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Play runs the game to the end and returns the outcome.
func (g *Game) Play() (tictactoe.Outcome, error) {
	s := g.session
	if s.IsComputerTurn() {
		fmt.Fprintln(g.out, "Computer has the first move.")
	}

	for !s.IsOver() {
		if s.IsComputerTurn() {
			mv, _, err := s.ComputerMove()
			if err != nil {
				return tictactoe.OutcomeNone, err
			}
			g.logger.Debug("computer move", "x", mv.Col+1, "y", mv.Row+1)
			fmt.Fprintf(g.out, "Computer played %d %d.\n", mv.Col+1, mv.Row+1)
			continue
		}

		fmt.Fprintln(g.out, s.Board())
		if err := g.humanMove(); err != nil {
			return tictactoe.OutcomeNone, err
		}
	}

	outcome := s.Outcome()
	fmt.Fprintf(g.out, "%s\n\n", outcome)
	fmt.Fprintln(g.out, s.Board())
	return outcome, nil
}

// humanMove reads lines until one is a legal move, then plays it.
func (g *Game) humanMove() error {
	n := g.session.Dimension()
	for {
		if g.session.HotSeat() {
			fmt.Fprintf(g.out, "%s to move. ", g.session.Turn())
		}
		fmt.Fprintln(g.out, Prompt)

		if !g.in.Scan() {
			if err := g.in.Err(); err != nil {
				return fmt.Errorf("read move: %w", err)
			}
			return ErrInputClosed
		}
		line := g.in.Text()

		x, y, ok := parseCoords(line)
		if !ok {
			fmt.Fprintf(g.out, "Invalid input: %s\n", line)
			continue
		}
		if x < 1 || y < 1 || x > n || y > n {
			fmt.Fprintln(g.out, "Invalid coordinates")
			continue
		}

		_, err := g.session.HumanMove(y-1, x-1)
		switch {
		case errors.Is(err, tictactoe.ErrCellOccupied):
			fmt.Fprintf(g.out, "Cell %d %d is already taken\n", x, y)
			continue
		case err != nil:
			return err
		}
		return nil
	}
}

// parseCoords reads two non-negative integers from the start of line.
// Anything after them is ignored.
func parseCoords(line string) (x, y int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}
