// Package tui provides the Bubble Tea integration for ricochet.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, and
// clocks that went backwards, use the nominal interval.
func frameDelta(last, now time.Time, tickRate int) float32 {
	if last.IsZero() || !now.After(last) {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float32(tickRate)
	}
	return float32(now.Sub(last).Seconds())
}
