package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/dispatch"
	_ "github.com/vovakirdan/lcd-pong/internal/games/pong"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
)

func newTestFrontend(t *testing.T, cols, rows int) (*Frontend, tcell.SimulationScreen, *session.Session) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	s, err := session.New(session.Options{
		GameID:  "pong",
		Runtime: core.RuntimeConfig{Seed: 3},
		Clock:   dispatch.NewManualClock(),
	})
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Stop() })

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return New(screen, s), screen, s
}

func TestKeysAction(t *testing.T) {
	k := DefaultKeys()
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected core.Action
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.ActionLeftUp},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), core.ActionLeftDown},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.ActionRightUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.ActionRightDown},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), core.ActionRestart},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.ActionQuit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), core.ActionNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), core.ActionNone},
	}
	for _, tc := range tests {
		if got := k.Action(tc.ev); got != tc.expected {
			t.Errorf("Action(%s) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestDrawFullSize(t *testing.T) {
	f, screen, s := newTestFrontend(t, 140, 90)
	f.Draw()

	fb := s.Framebuffer()
	// Cell (30, 11) shows pixel rows 22 and 23: the field's top edge over
	// the background.
	r, _, style, _ := screen.GetContent(30, 11)
	fg, bg, _ := style.Decompose()
	if r != '▀' {
		t.Fatalf("cell rune = %q, expected a half block", r)
	}
	if fg != tcellColor(fb.At(30, 22)) || bg != tcellColor(fb.At(30, 23)) {
		t.Errorf("cell colors = %v/%v, expected %v/%v", fg, bg, tcellColor(fb.At(30, 22)), tcellColor(fb.At(30, 23)))
	}

	if r, _, _, _ := screen.GetContent(0, 89); r != 'P' {
		t.Errorf("status line starts with %q, expected the title", r)
	}
}

func TestDrawScalesDown(t *testing.T) {
	f, screen, _ := newTestFrontend(t, 40, 30)
	f.Draw()

	// Scale 4 gives 32 columns; column 32 must stay empty.
	if r, _, _, _ := screen.GetContent(31, 0); r != '▀' {
		t.Errorf("cell (31, 0) = %q, expected frame content", r)
	}
	if r, _, _, _ := screen.GetContent(32, 0); r == '▀' {
		t.Error("frame wider than the scaled size")
	}
}

func TestHandle(t *testing.T) {
	f, _, s := newTestFrontend(t, 80, 40)
	ctx := context.Background()

	more, err := f.Handle(ctx, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !more || err != nil {
		t.Fatalf("Handle(w) = %v, %v", more, err)
	}
	if m := s.Latch().ReadSwitchMask(); !m.Pressed(core.ActionLeftUp.Switch()) {
		t.Error("w should latch SW1")
	}

	more, _ = f.Handle(ctx, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if more {
		t.Error("Handle(q) should stop the loop")
	}
}
