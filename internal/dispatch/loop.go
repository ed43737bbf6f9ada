// Package dispatch runs a game at a fixed tick rate.
//
// Two sides share the game. The tick side services every timer tick on its
// own goroutine: it runs Game.Tick inside the critical section and, when the
// tick asks for it, raises the redraw flag and posts to a single-slot
// mailbox. The foreground side (Run) parks on the mailbox; when woken with the
// flag set it runs Game.Commit inside the critical section and then
// Game.Paint outside it, so painting never blocks the next tick.
//
// A tick that reports Halt stops tick processing for good. The foreground
// performs one last paint and then stays parked, display only, until its
// context is cancelled.
package dispatch

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ErrRunning is returned when Run is called on a loop that already ran.
var ErrRunning = errors.New("dispatch: loop already started")

// Result is what a tick asks of the loop.
type Result struct {
	Redraw bool // positions changed; commit and paint
	Halt   bool // terminal condition; freeze after the final paint
}

// Game is driven by the loop.
type Game interface {
	// Tick advances the game by one timer tick. Runs inside the critical
	// section.
	Tick() Result
	// Commit publishes tentative state for painting. Runs inside the
	// critical section and must be short.
	Commit()
	// Paint draws committed state. The first call must paint everything.
	Paint()
}

// State of the tick side.
type State int32

const (
	StateIdle   State = iota // waiting for the next tick
	StateActive              // servicing a tick
	StateFrozen              // halted, no more ticks
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Options configures a Loop.
type Options struct {
	TickRate int         // ticks per second, defaults to 15
	Clock    Clock       // defaults to RealClock
	Logger   *log.Logger // defaults to a discarding logger
}

// Stats counts loop activity.
type Stats struct {
	Ticks     uint64 // ticks serviced
	Paints    uint64 // paint passes, including the initial one
	Coalesced uint64 // redraw posts merged into an already pending one
}

// Loop is the fixed-rate dispatch loop.
type Loop struct {
	game   Game
	clock  Clock
	period time.Duration
	logger *log.Logger

	mu      sync.Mutex // critical section between Tick and Commit
	mailbox chan struct{}
	redraw  atomic.Bool
	halted  atomic.Bool
	state   atomic.Int32
	started atomic.Bool

	frozen     chan struct{}
	frozenOnce sync.Once

	ticks     atomic.Uint64
	paints    atomic.Uint64
	coalesced atomic.Uint64
}

// New creates a loop for g.
func New(g Game, opts Options) *Loop {
	if opts.TickRate <= 0 {
		opts.TickRate = 15
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Loop{
		game:    g,
		clock:   opts.Clock,
		period:  time.Second / time.Duration(opts.TickRate),
		logger:  opts.Logger,
		mailbox: make(chan struct{}, 1),
		frozen:  make(chan struct{}),
	}
}

// Run paints the initial frame, starts the tick side and services redraws
// until ctx is cancelled. It returns nil on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	l.logger.Info("loop started", "period", l.period)
	l.paint()

	ticker := l.clock.NewTicker(l.period)
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.tickLoop(ctx, ticker)
	}()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", "ticks", l.ticks.Load(), "paints", l.paints.Load())
			return nil
		case <-l.mailbox:
		}

		l.redrawPending()

		if l.halted.Load() {
			// The halt tick may have landed during the paint above.
			l.redrawPending()
			l.freeze()
			<-ctx.Done()
			l.logger.Info("loop stopped", "ticks", l.ticks.Load(), "paints", l.paints.Load())
			return nil
		}
	}
}

func (l *Loop) tickLoop(ctx context.Context, ticker Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
		}

		l.state.Store(int32(StateActive))
		l.mu.Lock()
		res := l.game.Tick()
		l.mu.Unlock()
		n := l.ticks.Add(1)

		if res.Redraw || res.Halt {
			l.redraw.Store(true)
		}
		// redraw is stored before halted so a halt never hides its frame.
		if res.Halt {
			l.halted.Store(true)
		}
		if res.Redraw || res.Halt {
			l.post()
		}
		if res.Halt {
			l.state.Store(int32(StateFrozen))
			l.logger.Info("tick processing halted", "tick", n)
			return
		}
		l.state.Store(int32(StateIdle))
	}
}

// post wakes the foreground without blocking. A pending wakeup already
// covers this one.
func (l *Loop) post() {
	select {
	case l.mailbox <- struct{}{}:
	default:
		l.coalesced.Add(1)
	}
}

// redrawPending commits and paints if a tick asked for a redraw.
func (l *Loop) redrawPending() {
	if !l.redraw.Swap(false) {
		return
	}
	l.mu.Lock()
	l.game.Commit()
	l.mu.Unlock()
	l.paint()
}

func (l *Loop) paint() {
	l.game.Paint()
	l.paints.Add(1)
}

func (l *Loop) freeze() {
	l.frozenOnce.Do(func() {
		l.logger.Info("display frozen", "ticks", l.ticks.Load())
		close(l.frozen)
	})
}

// Frozen is closed once the final paint after a halt has completed.
func (l *Loop) Frozen() <-chan struct{} {
	return l.frozen
}

// State returns the tick side state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stats returns a snapshot of the counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Ticks:     l.ticks.Load(),
		Paints:    l.paints.Load(),
		Coalesced: l.coalesced.Load(),
	}
}
