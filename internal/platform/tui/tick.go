// Package tui provides the Bubble Tea integration for the runtime. It drives
// the frame loop, translates terminal key and mouse events into physical
// input signals, and renders the screen buffer with lipgloss styling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the simulation one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// frame rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
