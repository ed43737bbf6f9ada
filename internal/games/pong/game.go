// Package pong implements two-player pong on the layered LCD renderer.
// Player 1 holds switches SW1/SW2 for the left paddle, player 2 SW3/SW4 for
// the right one. The pong-cpu variant lets the CPU drive the right paddle.
package pong

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-pong/internal/config"
	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/dispatch"
	"github.com/vovakirdan/lcd-pong/internal/logging"
	"github.com/vovakirdan/lcd-pong/internal/physics"
	"github.com/vovakirdan/lcd-pong/internal/scene"
	"github.com/vovakirdan/lcd-pong/internal/shape"
	"github.com/vovakirdan/lcd-pong/internal/tone"
)

// Scene capacity: two paddles, ball, field, divider.
const (
	maxLayers  = 5
	maxMobiles = 3
)

// Observer is told about every physics event, with the tick it happened on.
// It runs inside the tick critical section and must not block.
type Observer func(tick int, ev physics.Event)

// Options configures New.
type Options struct {
	ID       string
	Title    string
	CPU      bool // the CPU drives the right paddle
	Logger   *log.Logger
	Observer Observer
}

// Game is a pong match. Tick runs on the dispatch loop's tick side; Commit
// and Paint run on its foreground side.
type Game struct {
	id    string
	title string

	cfg     config.PongConfig
	palette config.Palette
	dev     core.Devices
	logger  *log.Logger
	observe Observer

	scene  *scene.Scene
	comp   *scene.Compositor
	engine *physics.Engine
	events physics.Events
	sweep  *tone.Sweep
	diff   *config.DifficultyManager
	rng    *rand.Rand

	leftPaddle, rightPaddle, ball scene.LayerID
	leftMob, rightMob, ballMob    scene.MobileID

	cpu       bool
	ticks     int
	serveWait int
	serveDir  physics.Side

	// Written by Tick; stateMu lets other goroutines read it.
	stateMu sync.Mutex
	state   core.GameState

	// Foreground only.
	shown   core.GameState
	drawn   core.GameState
	painted bool
}

// New builds a game from a validated configuration.
func New(cfg config.PongConfig, rc core.RuntimeConfig, dev core.Devices, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}
	if dev.Display == nil {
		return nil, fmt.Errorf("pong: no display")
	}
	if dev.Input == nil {
		dev.Input = core.SwitchFunc(func() core.SwitchMask { return core.AllReleased })
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.ID == "" {
		opts.ID = "pong"
	}
	if opts.Title == "" {
		opts.Title = "Pong"
	}

	screen := core.NewRegion(0, 0, cfg.Screen.Width-1, cfg.Screen.Height-1)
	g := &Game{
		id:      opts.ID,
		title:   opts.Title,
		cfg:     cfg,
		palette: palette,
		dev:     dev,
		logger:  opts.Logger,
		observe: opts.Observer,
		scene:   scene.New(maxLayers, maxMobiles),
		comp:    scene.NewCompositor(screen, palette.Background),
		engine:  physics.New(cfg.Fence()),
		sweep:   tone.NewSweep(cfg.ToneParams(), dev.Tone),
		diff:    config.NewDifficultyManager(cfg.Difficulty),
		rng:     rand.New(rand.NewSource(rc.Seed)),
		cpu:     opts.CPU,
	}
	if err := g.build(); err != nil {
		return nil, err
	}

	first := physics.SideRight
	if g.rng.Intn(2) == 0 {
		first = physics.SideLeft
	}
	g.serve(first)
	g.shown = g.state
	return g, nil
}

// build adds the layers in paint order: right paddle, left paddle, ball,
// field outline, center divider.
func (g *Game) build() error {
	cfg := g.cfg
	field := cfg.FieldRegion()
	center := field.Center()
	leftX, rightX := cfg.PaddleX()
	paddle := shape.FilledRect(cfg.Paddles.HalfWidth, cfg.Paddles.HalfHeight)

	var err error
	add := func(l scene.Layer) scene.LayerID {
		if err != nil {
			return 0
		}
		var id scene.LayerID
		id, err = g.scene.AddLayer(l)
		return id
	}

	g.rightPaddle = add(scene.NewLayer("right-paddle", paddle, g.palette.Paddles, core.V(rightX, center.Y)))
	g.leftPaddle = add(scene.NewLayer("left-paddle", paddle, g.palette.Paddles, core.V(leftX, center.Y)))
	g.ball = add(scene.NewLayer("ball", shape.Circle(cfg.Ball.Radius), g.palette.Ball, center))
	add(scene.NewLayer("field", shape.RectOutline(cfg.Field.HalfWidth, cfg.Field.HalfHeight), g.palette.Field, center))
	if cfg.Divider.Enabled {
		divider := shape.SlicedRect(0, cfg.Field.HalfHeight-1, shape.Slice{
			Axis:   core.AxisY,
			Period: cfg.Divider.Period,
			Phase:  cfg.Divider.Phase,
			Gap:    cfg.Divider.Gap,
		})
		add(scene.NewLayer("divider", divider, g.palette.Divider, center))
	}
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}

	mobiles := []struct {
		dst *scene.MobileID
		m   scene.Mobile
	}{
		{&g.rightMob, scene.Mobile{Layer: g.rightPaddle, Walls: scene.WallBoth}},
		{&g.leftMob, scene.Mobile{Layer: g.leftPaddle, Walls: scene.WallBoth}},
		{&g.ballMob, scene.Mobile{
			Layer:     g.ball,
			Walls:     scene.WallY,
			Scorer:    true,
			Opponents: []scene.LayerID{g.rightPaddle, g.leftPaddle},
		}},
	}
	for _, m := range mobiles {
		id, err := g.scene.AddMobile(m.m)
		if err != nil {
			return fmt.Errorf("pong: %w", err)
		}
		*m.dst = id
	}
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// State returns the current game state. Safe to call from any goroutine.
func (g *Game) State() core.GameState {
	g.stateMu.Lock()
	defer g.stateMu.Unlock()
	return g.state
}

// Tick polls the switches, advances every mobile and reacts to collisions.
func (g *Game) Tick() dispatch.Result {
	if g.state.GameOver {
		return dispatch.Result{Halt: true}
	}
	g.ticks++

	mask := g.dev.Input.ReadSwitchMask()
	if g.cpu {
		mask = g.cpuSwitches(mask)
	}
	g.handleSwitches(mask)

	if g.serveWait > 0 {
		g.serveWait--
		if g.serveWait == 0 {
			g.launch()
		}
	}

	g.engine.Advance(g.scene, &g.events)
	scored := false
	for _, ev := range g.events.All() {
		if g.observe != nil {
			g.observe(g.ticks, ev)
		}
		switch ev.Kind {
		case physics.EventHit:
			g.sweep.Advance()
		case physics.EventGoal:
			g.goal(ev.Side)
			scored = true
		}
	}
	if n := g.events.Dropped(); n > 0 {
		g.logger.Warn("physics events dropped", "tick", g.ticks, "count", n)
	}

	if g.state.GameOver {
		return dispatch.Result{Redraw: true, Halt: true}
	}
	return dispatch.Result{Redraw: scored || g.moving()}
}

// handleSwitches sets each paddle's vertical velocity from its two
// switches. Up wins when both are held. Every move plays a tone step.
func (g *Game) handleSwitches(mask core.SwitchMask) {
	speed := g.cfg.Paddles.Speed
	set := func(id scene.MobileID, up, down core.Action) {
		m := g.scene.Mobile(id)
		switch {
		case mask.Pressed(up.Switch()):
			m.Velocity = core.V(0, -speed)
		case mask.Pressed(down.Switch()):
			m.Velocity = core.V(0, speed)
		default:
			m.Velocity = core.Vec2{}
			return
		}
		g.sweep.Advance()
	}
	set(g.leftMob, core.ActionLeftUp, core.ActionLeftDown)
	set(g.rightMob, core.ActionRightUp, core.ActionRightDown)
}

// moving reports whether any mobile has a position not yet painted.
func (g *Game) moving() bool {
	for i := 0; i < g.scene.MobileCount(); i++ {
		l := g.scene.Layer(g.scene.Mobile(scene.MobileID(i)).Layer)
		if l.Next != l.Committed {
			return true
		}
	}
	return false
}

// goal credits the side opposite to the one that missed and re-serves.
func (g *Game) goal(missed physics.Side) {
	g.sweep.Advance()

	g.stateMu.Lock()
	if missed == physics.SideLeft {
		g.state.ScoreRight++
	} else {
		g.state.ScoreLeft++
	}
	g.state.Score = g.state.ScoreLeft + g.state.ScoreRight
	switch {
	case g.state.ScoreLeft >= g.cfg.Gameplay.WinScore:
		g.state.GameOver, g.state.Winner = true, 1
	case g.state.ScoreRight >= g.cfg.Gameplay.WinScore:
		g.state.GameOver, g.state.Winner = true, 2
	}
	st := g.state
	g.stateMu.Unlock()

	g.logger.Info("goal", "missed", missed, "left", st.ScoreLeft, "right", st.ScoreRight, "tick", g.ticks)
	if st.GameOver {
		g.logger.Info("game over", "winner", st.Winner, "ticks", g.ticks)
		g.scene.Mobile(g.ballMob).Velocity = core.Vec2{}
		g.scene.Layer(g.ball).Next = g.cfg.FieldRegion().Center()
		return
	}
	g.serve(missed)
}

// serve puts the ball back at the center. After the serve delay it heads
// toward side.
func (g *Game) serve(side physics.Side) {
	g.scene.Layer(g.ball).Next = g.cfg.FieldRegion().Center()
	g.scene.Mobile(g.ballMob).Velocity = core.Vec2{}
	g.serveDir = side
	g.serveWait = g.cfg.Gameplay.ServeDelay
	if g.serveWait == 0 {
		g.launch()
	}
}

func (g *Game) launch() {
	st := g.state
	limit := g.cfg.Ball.Radius
	vx := g.diff.Speed(g.cfg.Ball.VelocityX, limit, st.Score, g.ticks)
	vy := g.diff.Speed(g.cfg.Ball.VelocityY, limit, st.Score, g.ticks)
	if g.serveDir == physics.SideLeft {
		vx = -vx
	}
	if g.rng.Intn(2) == 0 {
		vy = -vy
	}
	g.scene.Mobile(g.ballMob).Velocity = core.V(vx, vy)
}

// Commit publishes the positions and score computed by the last ticks.
func (g *Game) Commit() {
	g.scene.Commit()
	g.shown = g.state
}

// Paint draws the committed frame. The first call paints the whole screen.
func (g *Game) Paint() {
	d := g.dev.Display
	if l, ok := d.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	if !g.painted {
		d.Clear(g.palette.Background)
		g.comp.PaintAll(g.scene, d)
		g.drawLabel()
		g.drawScore()
		if g.shown.GameOver {
			g.drawWinner()
		}
		g.painted = true
	} else {
		g.comp.Paint(g.scene, d)
		if g.shown.ScoreLeft != g.drawn.ScoreLeft || g.shown.ScoreRight != g.drawn.ScoreRight {
			g.drawScore()
		}
		if g.shown.GameOver && !g.drawn.GameOver {
			g.drawWinner()
		}
	}
	g.drawn = g.shown
}
