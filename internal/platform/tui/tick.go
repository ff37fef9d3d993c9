// Package tui provides the Bubble Tea integration for the memory game.
// It handles the terminal UI loop, input mapping, and fixed-tick simulation
// with a measured dt.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. The timestamp is used
// to measure the real interval between ticks.
type TickMsg time.Time

// maxTickDelta caps the dt fed to the simulation after a stall (suspended
// terminal, slow SSH link). Timers jump by at most this much per tick.
const maxTickDelta = 0.25

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
