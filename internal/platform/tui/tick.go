// Package tui provides the Bubble Tea front-end: the game model, the preset
// picker and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg asks the model to refresh the timer readout.
type ClockMsg time.Time

// clockCmd schedules the next clock refresh. The clock only reads elapsed
// time; game state changes come from input alone.
func clockCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
