// Package session hosts one running game for a front end: the framebuffer it
// paints into, the switch latch it reads, and the dispatch loop driving it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/dispatch"
	"github.com/vovakirdan/lcd-pong/internal/glyph"
	"github.com/vovakirdan/lcd-pong/internal/logging"
	"github.com/vovakirdan/lcd-pong/internal/registry"
)

// Options configures a Session.
type Options struct {
	GameID  string
	Runtime core.RuntimeConfig
	Tone    core.ToneOutput // nil plays nothing
	Logger  *log.Logger
	Clock   dispatch.Clock // nil uses the wall clock
}

// Session owns a game and the loop running it.
type Session struct {
	opts  Options
	fb    *core.Framebuffer
	latch *SwitchLatch
	seed  int64

	mu     sync.Mutex
	game   registry.Game
	loop   *dispatch.Loop
	cancel context.CancelFunc
	done   chan error
}

// New prepares a session. Nothing runs until Start.
func New(opts Options) (*Session, error) {
	if !registry.Exists(opts.GameID) {
		return nil, fmt.Errorf("session: unknown game %q", opts.GameID)
	}
	def := core.DefaultConfig()
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = def.TickRate
	}
	if opts.Tone == nil {
		opts.Tone = core.NopTone{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		opts:  opts,
		fb:    core.NewFramebuffer(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		latch: &SwitchLatch{},
		seed:  seed,
	}, nil
}

// Start builds a fresh game and runs its loop until ctx is cancelled or Stop
// is called.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(ctx)
}

func (s *Session) startLocked(ctx context.Context) error {
	if s.loop != nil {
		return dispatch.ErrRunning
	}

	rc := s.opts.Runtime
	rc.Seed = s.seed
	dev := core.Devices{
		Display: s.fb,
		Input:   s.latch,
		Tone:    s.opts.Tone,
		Text:    glyph.New(),
	}
	game, err := registry.Create(s.opts.GameID, rc, dev)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	loop := dispatch.New(game, dispatch.Options{
		TickRate: rc.TickRate,
		Clock:    s.opts.Clock,
		Logger:   s.opts.Logger,
	})
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	s.game, s.loop, s.cancel, s.done = game, loop, cancel, done
	s.opts.Logger.Info("session started", "game", s.opts.GameID, "seed", s.seed)
	return nil
}

// Stop cancels the running loop and waits for it to return.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

func (s *Session) stopLocked() error {
	if s.loop == nil {
		return nil
	}
	s.cancel()
	err := <-s.done
	s.loop, s.cancel, s.done = nil, nil, nil
	return err
}

// Restart replaces the running game with a new one using the next seed.
func (s *Session) Restart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.stopLocked(); err != nil {
		return err
	}
	s.seed++
	s.latch.Reset()
	return s.startLocked(ctx)
}

// Framebuffer returns the display the game paints into.
func (s *Session) Framebuffer() *core.Framebuffer {
	return s.fb
}

// Latch returns the switch input shared with the game.
func (s *Session) Latch() *SwitchLatch {
	return s.latch
}

// Title returns the running game's title.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return s.opts.GameID
	}
	return s.game.Title()
}

// State returns the running game's state.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	g := s.game
	s.mu.Unlock()
	if g == nil {
		return core.GameState{}
	}
	return g.State()
}

// Stats returns the running loop's counters.
func (s *Session) Stats() dispatch.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop == nil {
		return dispatch.Stats{}
	}
	return s.loop.Stats()
}

// Frozen is closed once the running game has halted and painted its last
// frame. It returns nil when nothing is running.
func (s *Session) Frozen() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop == nil {
		return nil
	}
	return s.loop.Frozen()
}
