// Package glyph rasterizes text labels into a Display using the fixed 7x13
// bitmap face from golang.org/x/image.
package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// Renderer implements core.TextRenderer. It keeps a scratch image between
// calls and is not safe for concurrent use.
type Renderer struct {
	face    font.Face
	ascent  int
	height  int
	scratch *image.Alpha
}

// New creates a renderer with the 7x13 face.
func New() *Renderer {
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace creates a renderer for any font face.
func NewWithFace(face font.Face) *Renderer {
	m := face.Metrics()
	return &Renderer{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
	}
}

// Measure returns the pixel size of text.
func (r *Renderer) Measure(text string) core.Vec2 {
	if text == "" {
		return core.Vec2{}
	}
	return core.V(font.MeasureString(r.face, text).Ceil(), r.height)
}

// DrawText streams text into d with its top-left corner at (x, y). Covered
// pixels get fg and the rest of the text box gets bg.
func (r *Renderer) DrawText(d core.Display, x, y int, text string, fg, bg core.Color) {
	size := r.Measure(text)
	if size.X == 0 {
		return
	}

	mask := r.rasterize(text, size)
	d.DeclareRegion(core.NewRegion(x, y, x+size.X-1, y+size.Y-1))
	for row := 0; row < size.Y; row++ {
		for col := 0; col < size.X; col++ {
			if mask.AlphaAt(col, row).A >= 0x80 {
				d.WritePixel(fg)
			} else {
				d.WritePixel(bg)
			}
		}
	}
}

func (r *Renderer) rasterize(text string, size core.Vec2) *image.Alpha {
	bounds := image.Rect(0, 0, size.X, size.Y)
	if r.scratch == nil || !bounds.In(r.scratch.Bounds()) {
		r.scratch = image.NewAlpha(bounds)
	}
	img := r.scratch.SubImage(bounds).(*image.Alpha)
	for i := range img.Pix {
		img.Pix[i] = 0
	}

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Opaque),
		Face: r.face,
		Dot:  fixed.P(0, r.ascent),
	}
	drawer.DrawString(text)
	return img
}
