package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy plays random moves, normal and hard use the heuristic, and on hard the
// computer also takes the first move.
func ApplyPreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Computer.Strategy = "random"
	case DifficultyNormal:
		cfg.Computer.Strategy = DefaultStrategy
	case DifficultyHard:
		cfg.Computer.Strategy = DefaultStrategy
		cfg.Players.ComputerBegins = true
	}
}
