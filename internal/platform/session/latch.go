package session

import (
	"sync"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// SwitchLatch turns key events into switch readings.
//
// Terminals only report presses (plus auto-repeat), so a press is latched
// until the next read consumes it. Front ends that can see key state, like
// the window, use Hold instead: a held switch reads pressed on every tick.
type SwitchLatch struct {
	mu      sync.Mutex
	latched uint8 // active-high
	held    uint8
}

// Press latches switch i until the next read.
func (l *SwitchLatch) Press(i int) {
	if i < 0 || i >= core.SwitchCount {
		return
	}
	l.mu.Lock()
	l.latched |= 1 << uint(i)
	l.mu.Unlock()
}

// Hold sets whether switch i is held down.
func (l *SwitchLatch) Hold(i int, down bool) {
	if i < 0 || i >= core.SwitchCount {
		return
	}
	l.mu.Lock()
	if down {
		l.held |= 1 << uint(i)
	} else {
		l.held &^= 1 << uint(i)
	}
	l.mu.Unlock()
}

// HoldFrame replaces the held switches with the switch actions in f.
func (l *SwitchLatch) HoldFrame(f core.InputFrame) {
	l.mu.Lock()
	l.held = uint8(core.AllReleased &^ f.Mask())
	l.mu.Unlock()
}

// ReadSwitchMask implements core.SwitchReader. It consumes latched presses.
func (l *SwitchLatch) ReadSwitchMask() core.SwitchMask {
	l.mu.Lock()
	down := l.latched | l.held
	l.latched = 0
	l.mu.Unlock()
	return core.AllReleased &^ core.SwitchMask(down)
}

// Reset drops every latched and held switch.
func (l *SwitchLatch) Reset() {
	l.mu.Lock()
	l.latched, l.held = 0, 0
	l.mu.Unlock()
}
