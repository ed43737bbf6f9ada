// Package window shows a session in a desktop window using ebiten. Keys
// are sampled every frame, so a held key keeps its switch closed.
package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
)

// DefaultScale is the window pixels per LCD pixel.
const DefaultScale = 4

// switchKeys lists the keys that close each switch.
var switchKeys = map[core.Action][]ebiten.Key{
	core.ActionLeftUp:    {ebiten.KeyW},
	core.ActionLeftDown:  {ebiten.KeyS},
	core.ActionRightUp:   {ebiten.KeyArrowUp, ebiten.KeyK},
	core.ActionRightDown: {ebiten.KeyArrowDown, ebiten.KeyJ},
}

// Game adapts a session to ebiten.Game.
type Game struct {
	ctx     context.Context
	session *session.Session
	img     *ebiten.Image
	pix     []core.Color
	rgba    []byte

	pressed func(ebiten.Key) bool
}

// New creates the window game for a started session.
func New(ctx context.Context, s *session.Session) *Game {
	fb := s.Framebuffer()
	return &Game{
		ctx:     ctx,
		session: s,
		rgba:    make([]byte, 4*fb.Width()*fb.Height()),
		pressed: ebiten.IsKeyPressed,
	}
}

// pollSwitches holds each switch while one of its keys is down.
func (g *Game) pollSwitches() {
	var frame core.InputFrame
	for action, keys := range switchKeys {
		for _, k := range keys {
			if g.pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	g.session.Latch().HoldFrame(frame)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Restart(g.ctx); err != nil {
			return err
		}
	}
	g.pollSwitches()
	return nil
}

// FillRGBA converts RGB565 pixels to opaque RGBA bytes. dst must hold
// 4*len(pix) bytes.
func FillRGBA(dst []byte, pix []core.Color) {
	for i, c := range pix {
		r, g, b := c.RGB()
		j := 4 * i
		dst[j], dst[j+1], dst[j+2], dst[j+3] = r, g, b, 0xff
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.session.Framebuffer()
	if g.img == nil {
		g.img = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.pix = fb.Snapshot(g.pix)
	FillRGBA(g.rgba, g.pix)
	g.img.WritePixels(g.rgba)
	screen.DrawImage(g.img, nil)
}

// Layout implements ebiten.Game. The logical screen is the LCD; ebiten
// scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	fb := g.session.Framebuffer()
	return fb.Width(), fb.Height()
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, s *session.Session, scale int) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	fb := s.Framebuffer()
	ebiten.SetWindowTitle(fmt.Sprintf("lcdpong - %s", s.Title()))
	ebiten.SetWindowSize(fb.Width()*scale, fb.Height()*scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(New(ctx, s)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
