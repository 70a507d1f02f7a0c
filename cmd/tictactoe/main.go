// tictactoe is a terminal Tic Tac Toe game on boards from 2x2 up to 30x30.
//
// Usage:
//
//	tictactoe                 - Play against the computer (full-screen)
//	tictactoe --plain         - Play with typed "x y" coordinates
//	tictactoe scores          - Show recorded results
//	tictactoe strategies      - List computer strategies
//	tictactoe serve           - Start SSH server for remote play
//
// Game flags:
//
//	-d <n>          - Board dimension (default: 4)
//	-c              - Computer has the first move
//	-o              - Play O instead of X
//	--hot-seat      - Two humans share the terminal
//	--strategy <id> - Computer strategy (default: heuristic)
//	--difficulty    - Preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import strategies to register them
	_ "github.com/vovakirdan/tui-tictactoe/internal/ai"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Game flags, shared by play and serve
	flagDimension      int
	flagComputerBegins bool
	flagPlayerO        bool
	flagHotSeat        bool
	flagStrategy       string
	flagDifficulty     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic Tac Toe in your terminal, on boards up to 30x30",
	Long: `A text-based Tic Tac Toe game. Play against the computer or a friend
on a board anywhere from 2x2 to 30x30. A line is a full row, column or
diagonal; the first player to fill one wins.

Controls (full-screen mode):
  Arrows/HJKL/WASD  - Move the cursor
  Enter/Space       - Place your mark
  R                 - New game
  ?                 - Toggle help
  Q/Esc             - Quit

In --plain mode, type the column and row separated by a space (1-based).

Examples:
  tictactoe
  tictactoe -d 3 -c
  tictactoe -d 10 -o --difficulty easy
  tictactoe --hot-seat --plain
  tictactoe scores
  tictactoe serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(pf *pflag.FlagSet) {
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDBPath, "db", "", "Path to results database (default: ~/.tictactoe/results.db)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for the computer (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	pf.IntVarP(&flagDimension, "dimension", "d", 4, "Board dimension, 2 to 30")
	pf.BoolVarP(&flagComputerBegins, "computer-begins", "c", false, "Computer has the first move")
	pf.BoolVarP(&flagPlayerO, "player-o", "o", false, "Play O instead of X")
	pf.BoolVar(&flagHotSeat, "hot-seat", false, "Two humans share the terminal")
	pf.StringVar(&flagStrategy, "strategy", "", "Computer strategy (see 'tictactoe strategies')")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}
