// Package tui provides the Bubble Tea front end: the framebuffer drawn with
// half-block characters, keyboard switches and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshRate is how often the view samples the framebuffer.
const refreshRate = 30

// FrameMsg is sent to trigger a view refresh.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next refresh.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/refreshRate, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
