// Package tui provides the Bubble Tea front-end for Tic Tac Toe.
// It handles the terminal UI loop, key bindings, result saving and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// computerTurnMsg asks the model to play the computer's move.
// gen ties the message to one game so a restart discards stale turns.
type computerTurnMsg struct {
	gen int
}

// computerTurnCmd schedules the computer's move after delay.
func computerTurnCmd(gen int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return computerTurnMsg{gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return computerTurnMsg{gen: gen}
	})
}
