package window

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/dispatch"
	_ "github.com/vovakirdan/lcd-pong/internal/games/pong"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
)

func TestFillRGBA(t *testing.T) {
	pix := []core.Color{core.ColorBlack, core.ColorWhite, core.RGB565(255, 0, 0)}
	dst := make([]byte, 4*len(pix))
	FillRGBA(dst, pix)

	expected := []byte{
		0, 0, 0, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0, 0, 0xff,
	}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Errorf("FillRGBA() byte %d = %#x, expected %#x", i, dst[i], expected[i])
		}
	}
}

func TestPollSwitches(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s, err := session.New(session.Options{GameID: "pong", Clock: dispatch.NewManualClock()})
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}

	down := map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyJ: true}
	g := New(context.Background(), s)
	g.pressed = func(k ebiten.Key) bool { return down[k] }

	for i := 0; i < 2; i++ {
		g.pollSwitches()
		m := s.Latch().ReadSwitchMask()
		if !m.Pressed(0) || m.Pressed(1) || m.Pressed(2) || !m.Pressed(3) {
			t.Errorf("poll %d: mask = %04b, expected SW1 and SW4 held", i, m)
		}
	}

	down = map[ebiten.Key]bool{}
	g.pollSwitches()
	if m := s.Latch().ReadSwitchMask(); m.Any() {
		t.Errorf("mask = %04b after release, expected none", m)
	}

	if w, h := g.Layout(0, 0); w != 128 || h != 160 {
		t.Errorf("Layout() = %d, %d, expected the LCD size", w, h)
	}
}
