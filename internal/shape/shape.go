// Package shape implements the fixed set of drawable shapes. A Shape is a
// pure value: given a center it yields its bounding Region and decides pixel
// membership. The set is closed, so dispatch is a switch on Kind.
package shape

import (
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// Kind identifies the shape variant.
type Kind uint8

const (
	KindCircle Kind = iota
	KindFilledRect
	KindRectOutline
	KindSlicedRect
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindFilledRect:
		return "rect"
	case KindRectOutline:
		return "outline"
	case KindSlicedRect:
		return "sliced"
	default:
		return "unknown"
	}
}

// Slice describes the periodic gap pattern of a sliced rectangle. Along Axis,
// a pixel at offset d from the center is excluded when
// (d + Phase) mod Period < Gap.
type Slice struct {
	Axis   core.Axis
	Period int
	Phase  int
	Gap    int
}

// Shape is a tagged variant over the four shape kinds. Only the fields
// relevant to Kind are meaningful.
type Shape struct {
	Kind   Kind
	Radius int       // circle
	Half   core.Vec2 // rectangles: half width, half height
	Slice  Slice     // sliced rectangle
}

// Circle creates a filled circle of the given radius.
func Circle(radius int) Shape {
	return Shape{Kind: KindCircle, Radius: radius}
}

// FilledRect creates a solid rectangle spanning center±half.
func FilledRect(halfW, halfH int) Shape {
	return Shape{Kind: KindFilledRect, Half: core.V(halfW, halfH)}
}

// RectOutline creates a one-pixel rectangle border spanning center±half.
func RectOutline(halfW, halfH int) Shape {
	return Shape{Kind: KindRectOutline, Half: core.V(halfW, halfH)}
}

// SlicedRect creates a filled rectangle with a periodic gap pattern.
func SlicedRect(halfW, halfH int, s Slice) Shape {
	return Shape{Kind: KindSlicedRect, Half: core.V(halfW, halfH), Slice: s}
}

// Extent returns the half size of the bounding box on each axis.
func (s Shape) Extent() core.Vec2 {
	if s.Kind == KindCircle {
		return core.V(s.Radius, s.Radius)
	}
	return s.Half
}

// Bounds returns the minimal region containing every pixel of the shape when
// centered at center.
func (s Shape) Bounds(center core.Vec2) core.Region {
	return core.RegionAround(center, s.Extent())
}

// Contains reports whether pixel p belongs to the shape centered at center.
func (s Shape) Contains(center, p core.Vec2) bool {
	d := p.Sub(center)
	switch s.Kind {
	case KindCircle:
		return d.X*d.X+d.Y*d.Y <= s.Radius*s.Radius
	case KindFilledRect:
		return insideRect(d, s.Half)
	case KindRectOutline:
		if !insideRect(d, s.Half) {
			return false
		}
		return core.Abs(d.X) == s.Half.X || core.Abs(d.Y) == s.Half.Y
	case KindSlicedRect:
		if !insideRect(d, s.Half) {
			return false
		}
		return !s.Slice.excludes(d.Axis(s.Slice.Axis))
	}
	return false
}

// Validate checks that the shape parameters are usable.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindCircle:
		if s.Radius < 0 {
			return fmt.Errorf("shape: circle radius %d is negative", s.Radius)
		}
	case KindFilledRect, KindRectOutline:
		if s.Half.X < 0 || s.Half.Y < 0 {
			return fmt.Errorf("shape: %s half size %v is negative", s.Kind, s.Half)
		}
	case KindSlicedRect:
		if s.Half.X < 0 || s.Half.Y < 0 {
			return fmt.Errorf("shape: %s half size %v is negative", s.Kind, s.Half)
		}
		if s.Slice.Period <= 0 {
			return fmt.Errorf("shape: slice period %d must be positive", s.Slice.Period)
		}
		if s.Slice.Gap < 0 || s.Slice.Gap >= s.Slice.Period {
			return fmt.Errorf("shape: slice gap %d must be in [0, %d)", s.Slice.Gap, s.Slice.Period)
		}
	default:
		return fmt.Errorf("shape: unknown kind %d", s.Kind)
	}
	return nil
}

func insideRect(d, half core.Vec2) bool {
	return core.Abs(d.X) <= half.X && core.Abs(d.Y) <= half.Y
}

func (sl Slice) excludes(offset int) bool {
	if sl.Period <= 0 || sl.Gap <= 0 {
		return false
	}
	m := (offset + sl.Phase) % sl.Period
	if m < 0 {
		m += sl.Period
	}
	return m < sl.Gap
}
