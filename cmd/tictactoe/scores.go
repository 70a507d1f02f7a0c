package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display recent games and win/tie statistics per board size.

Examples:
  tictactoe scores
  tictactoe scores --limit 50
  tictactoe scores --tui
  tictactoe scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent games to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded results")
}

func runScores(cmd *cobra.Command, _ []string) {
	dbPath := config.DefaultTicTacToeConfig().Storage.DBPath
	if cfg, err := config.LoadTicTacToe(flagConfig); err == nil && cfg.Storage.DBPath != "" {
		dbPath = cfg.Storage.DBPath
	}
	if cmd.Flags().Changed("db") {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fail("opening results database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fail("%v", err)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 100, 30 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	results, err := store.RecentResults(flagScoresLimit)
	if err != nil {
		fail("retrieving results: %v", err)
	}

	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Finish a game with 'tictactoe' to see it here!")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-16s  %-12s  %s\n", "Date", "Board", "Mode", "Result", "Moves")
	fmt.Printf("  %-16s  %-5s  %-16s  %-12s  %s\n", "----", "-----", "----", "------", "-----")
	for _, r := range results {
		mode := "vs " + r.Strategy
		if r.Mode == storage.ModeHotSeat {
			mode = "hot seat"
		}
		fmt.Printf("  %-16s  %-5s  %-16s  %-12s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Dimension, r.Dimension),
			mode,
			r.Outcome,
			r.Moves,
		)
	}

	stats, err := store.AllStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	dims := make([]int, 0, len(stats))
	for d := range stats {
		dims = append(dims, d)
	}
	slices.Sort(dims)

	fmt.Println()
	fmt.Println("By board size")
	fmt.Println()
	fmt.Printf("  %-5s  %5s  %7s  %7s  %5s  %9s\n", "Board", "Games", "You won", "CPU won", "Ties", "Avg moves")
	for _, d := range dims {
		s := stats[d]
		fmt.Printf("  %-5s  %5d  %7d  %7d  %5d  %9.1f\n",
			fmt.Sprintf("%dx%d", d, d), s.Games, s.HumanWins, s.ComputerWins, s.Ties, s.AvgMoves)
	}
}
