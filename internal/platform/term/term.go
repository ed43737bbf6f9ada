// Package term is a tcell front end. It draws the framebuffer with
// half-block cells straight into the terminal's cell buffer.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/platform/session"
)

const refresh = time.Second / 30

// Keys maps runes and special keys to actions.
type Keys struct {
	Runes   map[rune]core.Action
	Special map[tcell.Key]core.Action
}

// DefaultKeys mirrors the Bubble Tea bindings.
func DefaultKeys() Keys {
	return Keys{
		Runes: map[rune]core.Action{
			'w': core.ActionLeftUp,
			's': core.ActionLeftDown,
			'k': core.ActionRightUp,
			'j': core.ActionRightDown,
			'r': core.ActionRestart,
			'q': core.ActionQuit,
		},
		Special: map[tcell.Key]core.Action{
			tcell.KeyUp:     core.ActionRightUp,
			tcell.KeyDown:   core.ActionRightDown,
			tcell.KeyCtrlC:  core.ActionQuit,
			tcell.KeyEscape: core.ActionQuit,
		},
	}
}

// Action translates a key event.
func (k Keys) Action(ev *tcell.EventKey) core.Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := k.Runes[ev.Rune()]; ok {
			return a
		}
		return core.ActionNone
	}
	if a, ok := k.Special[ev.Key()]; ok {
		return a
	}
	return core.ActionNone
}

// Frontend draws a session on a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *session.Session
	keys    Keys
	pix     []core.Color
	styles  map[[2]core.Color]tcell.Style
}

// New wraps an initialized screen.
func New(screen tcell.Screen, s *session.Session) *Frontend {
	return &Frontend{
		screen:  screen,
		session: s,
		keys:    DefaultKeys(),
		styles:  make(map[[2]core.Color]tcell.Style),
	}
}

func tcellColor(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (f *Frontend) style(top, bottom core.Color) tcell.Style {
	k := [2]core.Color{top, bottom}
	if s, ok := f.styles[k]; ok {
		return s
	}
	s := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
	f.styles[k] = s
	return s
}

// Draw copies the framebuffer to the screen, scaled down to fit, with a
// status line underneath.
func (f *Frontend) Draw() {
	fb := f.session.Framebuffer()
	f.pix = fb.Snapshot(f.pix)
	w, h := fb.Width(), fb.Height()

	cols, rows := f.screen.Size()
	scale := 1
	for (w+scale-1)/scale > cols || ((h+scale-1)/scale+1)/2 > rows-1 {
		if scale >= max(w, h) {
			break
		}
		scale++
	}

	f.screen.Clear()
	for row := 0; 2*row*scale < h; row++ {
		y0 := 2 * row * scale
		y1 := y0 + scale
		for col := 0; col*scale < w; col++ {
			x := col * scale
			top := f.pix[y0*w+x]
			bottom := core.ColorBlack
			if y1 < h {
				bottom = f.pix[y1*w+x]
			}
			f.screen.SetContent(col, row, '▀', nil, f.style(top, bottom))
		}
	}

	st := f.session.State()
	status := fmt.Sprintf("%s  P1 %d : %d P2", f.session.Title(), st.ScoreLeft, st.ScoreRight)
	if st.GameOver {
		status += fmt.Sprintf("  P%d WINS - r restarts", st.Winner)
	}
	f.drawText(0, rows-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	f.screen.Show()
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Handle applies one event. It returns false when the user quits.
func (f *Frontend) Handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a := f.keys.Action(ev); a {
		case core.ActionQuit:
			return false, nil
		case core.ActionRestart:
			if err := f.session.Restart(ctx); err != nil {
				return false, err
			}
		case core.ActionNone:
		default:
			f.session.Latch().Press(a.Switch())
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true, nil
}

// Run initializes the terminal and shows a started session until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()
	return New(screen, s).Loop(ctx)
}

// Loop polls events and redraws until quit.
func (f *Frontend) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			more, err := f.Handle(ctx, ev)
			if err != nil || !more {
				return err
			}
		case <-ticker.C:
			f.Draw()
		}
	}
}
