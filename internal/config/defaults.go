package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// Default values shared by the hardcoded config and the CLI flags.
const (
	DefaultStrategy    = "heuristic"
	DefaultDBPath      = "~/.tictactoe/results.db"
	DefaultAddress     = ":23235"
	DefaultHostKeyPath = ".ssh/tictactoe_ed25519"
	DefaultIdleTimeout = 10 * time.Minute
)

// DefaultTicTacToeConfig returns the hardcoded default configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Board: BoardConfig{
			Dimension: tictactoe.DefaultDimension,
		},
		Players: PlayersConfig{
			HumanMark: "X",
		},
		Computer: ComputerConfig{
			Strategy: DefaultStrategy,
		},
		Storage: StorageConfig{
			DBPath: DefaultDBPath,
		},
		Server: ServerConfig{
			Address:     DefaultAddress,
			HostKeyPath: DefaultHostKeyPath,
			IdleTimeout: DefaultIdleTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
