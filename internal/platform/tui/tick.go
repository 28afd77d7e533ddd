// Package tui provides the Bubble Tea integration: it drives the snake state
// machine on a clock, maps keys to inputs and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickMsg triggers a full step.
type TickMsg time.Time

// pollMsg delivers the inputs collected during one frame.
type pollMsg time.Time

// frameDuration is the length of one driver frame.
func frameDuration(clock int) time.Duration {
	return time.Second / time.Duration(core.Max(clock, 1))
}

// stepInterval returns the time between full steps: clock-speed frames, at
// least one. Higher speed means faster ticking.
func stepInterval(clock, speed int) time.Duration {
	return time.Duration(core.Max(clock-speed, 1)) * frameDuration(clock)
}

// tickCmd schedules the next full step.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// pollCmd schedules the end of the current input frame.
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}
