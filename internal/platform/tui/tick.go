// Package tui provides the Bubble Tea integration for termsnake. It handles
// the terminal UI loop, input mapping, rendering and the speed-driven tick
// pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick pacing: level 1 ticks every 200ms and each level shaves off 15ms,
// floored at 60ms.
const (
	baseTickInterval = 200 * time.Millisecond
	tickIntervalStep = 15 * time.Millisecond
	minTickInterval  = 60 * time.Millisecond
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickInterval returns the real-time delay between ticks at the given
// speed level.
func tickInterval(speedLevel int) time.Duration {
	if speedLevel < 1 {
		speedLevel = 1
	}
	interval := baseTickInterval - time.Duration(speedLevel-1)*tickIntervalStep
	if interval < minTickInterval {
		interval = minTickInterval
	}
	return interval
}

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the interval for the given speed level.
func tickCmd(speedLevel int) tea.Cmd {
	return tea.Tick(tickInterval(speedLevel), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
