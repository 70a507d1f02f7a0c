package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

// loadConfig reads the config file and applies the difficulty preset and
// every flag the user set explicitly, in that order.
func loadConfig(cmd *cobra.Command) (config.TicTacToeConfig, error) {
	cfg, err := config.LoadTicTacToe(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	flags := cmd.Flags()
	if flags.Changed("dimension") {
		cfg.Board.Dimension = flagDimension
	}
	if flags.Changed("computer-begins") {
		cfg.Players.ComputerBegins = flagComputerBegins
	}
	if flags.Changed("player-o") {
		cfg.Players.HumanMark = "X"
		if flagPlayerO {
			cfg.Players.HumanMark = "O"
		}
	}
	if flags.Changed("hot-seat") {
		cfg.Players.HotSeat = flagHotSeat
	}
	if flags.Changed("strategy") {
		cfg.Computer.Strategy = flagStrategy
	}
	if flags.Changed("seed") {
		cfg.Computer.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	return cfg, cfg.Validate()
}

// seedFor returns the configured seed, or a time-based one for 0.
func seedFor(cfg config.TicTacToeConfig) int64 {
	if cfg.Computer.Seed != 0 {
		return cfg.Computer.Seed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(cfg config.TicTacToeConfig, fallback io.Writer) (*log.Logger, func(), error) {
	out, closer := fallback, func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			closer()
			return nil, nil, err
		}
		logger.SetLevel(level)
	}
	return logger, closer, nil
}

// fail prints err and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
