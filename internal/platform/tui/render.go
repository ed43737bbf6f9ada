package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// upperHalf draws the top pixel in the foreground and the bottom pixel in
// the background, so each cell shows two pixel rows.
const upperHalf = "▀"

type cellColors struct {
	top, bottom core.Color
	single      bool // no bottom pixel
}

// FrameRenderer converts framebuffer pixels to styled half-block text. It
// caches one style per color pair and is not safe for concurrent use.
type FrameRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
	pix      []core.Color
}

// NewFrameRenderer creates a renderer. A nil lipgloss renderer uses the
// default one for the local terminal.
func NewFrameRenderer(r *lipgloss.Renderer) *FrameRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &FrameRenderer{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

func (f *FrameRenderer) style(c cellColors) lipgloss.Style {
	if s, ok := f.styles[c]; ok {
		return s
	}
	s := f.renderer.NewStyle().Foreground(lipgloss.Color(c.top.Hex()))
	if !c.single {
		s = s.Background(lipgloss.Color(c.bottom.Hex()))
	}
	f.styles[c] = s
	return s
}

// FrameSize returns the cell size of a w x h framebuffer drawn at scale.
func FrameSize(w, h, scale int) (cols, rows int) {
	scale = max(1, scale)
	cols = (w + scale - 1) / scale
	ph := (h + scale - 1) / scale
	return cols, (ph + 1) / 2
}

// FitScale returns the smallest integer downscale that fits a w x h
// framebuffer into cols x rows cells.
func FitScale(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	scale := 1
	for {
		c, r := FrameSize(w, h, scale)
		if c <= cols && r <= rows {
			return scale
		}
		scale++
	}
}

// RenderFramebuffer snapshots fb and renders it.
func (f *FrameRenderer) RenderFramebuffer(fb *core.Framebuffer, scale int) string {
	f.pix = fb.Snapshot(f.pix)
	return f.Render(f.pix, fb.Width(), fb.Height(), scale)
}

// Render draws pix, a row-major w x h frame, sampling every scale-th pixel.
// Adjacent cells with the same colors share one styled run.
func (f *FrameRenderer) Render(pix []core.Color, w, h, scale int) string {
	scale = max(1, scale)
	cols, rows := FrameSize(w, h, scale)

	var sb strings.Builder
	sb.Grow(cols*rows*len(upperHalf) + rows*32)

	cell := func(col, row int) cellColors {
		x := col * scale
		y0 := 2 * row * scale
		y1 := y0 + scale
		c := cellColors{top: pix[y0*w+x]}
		if y1 < h {
			c.bottom = pix[y1*w+x]
		} else {
			c.single = true
		}
		return c
	}

	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		col := 0
		for col < cols {
			start := cell(col, row)
			n := 0
			for col < cols && cell(col, row) == start {
				n++
				col++
			}
			sb.WriteString(f.style(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}
