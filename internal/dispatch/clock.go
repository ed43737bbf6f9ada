package dispatch

import "time"

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. The loop takes a Clock so tests can drive ticks by
// hand.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// RealClock is backed by time.Ticker.
type RealClock struct{}

// NewTicker returns a time.Ticker firing every d.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

// ManualClock hands out a ticker that fires only when Tick is called.
type ManualClock struct {
	ch      chan time.Time
	stopped chan struct{}
}

// NewManualClock creates a manual clock.
func NewManualClock() *ManualClock {
	return &ManualClock{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

// NewTicker ignores d. A ManualClock supports a single ticker.
func (m *ManualClock) NewTicker(time.Duration) Ticker {
	return manualTicker{m}
}

// Tick delivers one tick and blocks until the loop receives it. It returns
// false if the ticker was stopped or timeout elapsed first.
func (m *ManualClock) Tick(timeout time.Duration) bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	case <-time.After(timeout):
		return false
	}
}

// Stopped is closed once the ticker has been stopped.
func (m *ManualClock) Stopped() <-chan struct{} {
	return m.stopped
}

type manualTicker struct {
	m *ManualClock
}

func (t manualTicker) C() <-chan time.Time { return t.m.ch }

func (t manualTicker) Stop() {
	select {
	case <-t.m.stopped:
	default:
		close(t.m.stopped)
	}
}
