package scene

import (
	"github.com/vovakirdan/lcd-pong/internal/core"
)

// Compositor paints a Scene into a Display. It keeps a reusable dirty
// region buffer so painting does not allocate once warmed up.
type Compositor struct {
	Screen     core.Region
	Background core.Color

	dirty []core.Region
}

// NewCompositor creates a compositor for the given screen area.
func NewCompositor(screen core.Region, bg core.Color) *Compositor {
	return &Compositor{Screen: screen, Background: bg}
}

// Dirty computes the regions that must be repainted after a commit: for each
// mobile that moved, the bounds at its last painted position and at its
// committed position, merged when they overlap. Regions are clipped to the
// screen. The returned slice is reused by the next call.
func (c *Compositor) Dirty(s *Scene) []core.Region {
	c.dirty = c.dirty[:0]
	for i := range s.mobiles {
		l := &s.layers[s.mobiles[i].Layer]
		if !l.Moved() {
			continue
		}
		before := l.Shape.Bounds(l.Last)
		after := l.Shape.Bounds(l.Committed)
		if before.Intersects(after) {
			c.add(before.Union(after))
			continue
		}
		c.add(before)
		c.add(after)
	}
	return c.dirty
}

func (c *Compositor) add(r core.Region) {
	if clipped, ok := r.Clip(c.Screen); ok {
		c.dirty = append(c.dirty, clipped)
	}
}

// Paint repaints the dirty regions of s. It returns the number of regions
// streamed.
func (c *Compositor) Paint(s *Scene, d core.Display) int {
	regions := c.Dirty(s)
	for _, r := range regions {
		c.PaintRegion(s, d, r)
	}
	return len(regions)
}

// PaintAll repaints the whole screen.
func (c *Compositor) PaintAll(s *Scene, d core.Display) {
	c.PaintRegion(s, d, c.Screen)
}

// PaintRegion declares r to the display and streams one color per pixel in
// row-major order. The color of each pixel is that of the first layer in
// priority order containing it, else the background.
func (c *Compositor) PaintRegion(s *Scene, d core.Display, r core.Region) {
	if r.Empty() {
		return
	}
	d.DeclareRegion(r)
	for y := r.TopLeft.Y; y <= r.BotRight.Y; y++ {
		for x := r.TopLeft.X; x <= r.BotRight.X; x++ {
			d.WritePixel(s.ColorAt(core.Vec2{X: x, Y: y}, c.Background))
		}
	}
}
