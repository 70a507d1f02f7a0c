// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the tictactoe binaries.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// ErrInvalidConfig is returned by Validate for any rejected value.
var ErrInvalidConfig = errors.New("invalid configuration")

// TicTacToeConfig contains all configuration for a game and its front-ends.
type TicTacToeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Players  PlayersConfig  `yaml:"players"`
	Computer ComputerConfig `yaml:"computer"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// BoardConfig defines the board size.
type BoardConfig struct {
	Dimension int `yaml:"dimension"` // N for an NxN board, 2..30
}

// PlayersConfig defines who sits where and who moves first.
type PlayersConfig struct {
	ComputerBegins bool   `yaml:"computer_begins"`
	HumanMark      string `yaml:"human_mark"` // "X" or "O"
	HotSeat        bool   `yaml:"hot_seat"`
}

// ComputerConfig selects the computer's strategy.
type ComputerConfig struct {
	Strategy string `yaml:"strategy"`
	Seed     int64  `yaml:"seed"` // 0 = time-based
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines the log level.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// HumanCell returns the human's mark as a board cell.
func (c TicTacToeConfig) HumanCell() (tictactoe.Cell, error) {
	if c.Players.HumanMark == "" {
		return tictactoe.X, nil
	}
	return tictactoe.ParseMark(c.Players.HumanMark)
}

// Options converts the config into session options. The selector is left for
// the caller, since it depends on the seed in use.
func (c TicTacToeConfig) Options() (tictactoe.Options, error) {
	human, err := c.HumanCell()
	if err != nil {
		return tictactoe.Options{}, err
	}
	return tictactoe.Options{
		Dimension:      c.Board.Dimension,
		HumanMark:      human,
		ComputerBegins: c.Players.ComputerBegins,
		HotSeat:        c.Players.HotSeat,
	}, nil
}

// Validate checks every field. Dimension errors wrap tictactoe.ErrInvalidDimension.
func (c TicTacToeConfig) Validate() error {
	d := c.Board.Dimension
	if d < tictactoe.MinDimension || d > tictactoe.MaxDimension {
		return fmt.Errorf("%w: board.dimension: %w: got %d", ErrInvalidConfig, tictactoe.ErrInvalidDimension, d)
	}
	if _, err := c.HumanCell(); err != nil {
		return fmt.Errorf("%w: players.human_mark: %w", ErrInvalidConfig, err)
	}
	if !c.Players.HotSeat && !registry.Exists(c.Computer.Strategy) {
		return fmt.Errorf("%w: computer.strategy: unknown strategy %q", ErrInvalidConfig, c.Computer.Strategy)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
		}
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}
