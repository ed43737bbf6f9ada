// Package scene holds the layers and mobile entities of a game in a
// fixed-capacity arena, and composites them into a Display.
//
// Layers are addressed by small integer handles. Paint priority is the
// insertion order: the first layer added occludes every later one.
package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/shape"
)

var (
	// ErrLayerCapacity is returned when the layer arena is full.
	ErrLayerCapacity = errors.New("scene: layer capacity exceeded")
	// ErrMobileCapacity is returned when the mobile arena is full.
	ErrMobileCapacity = errors.New("scene: mobile capacity exceeded")
	// ErrUnknownLayer is returned when a handle does not name a layer.
	ErrUnknownLayer = errors.New("scene: unknown layer")
)

// LayerID is a handle into the layer arena.
type LayerID uint8

// MobileID is a handle into the mobile arena.
type MobileID uint8

// Layer is a shape instance at a position.
//
// Next is the tentative position written by the motion step. Committed is
// what the compositor paints. Last is what was painted in the previous pass,
// kept so the area it covered can be repainted when the layer moves away.
type Layer struct {
	Name      string
	Shape     shape.Shape
	Color     core.Color
	Committed core.Vec2
	Last      core.Vec2
	Next      core.Vec2
}

// NewLayer creates a layer with all three snapshots at pos.
func NewLayer(name string, s shape.Shape, c core.Color, pos core.Vec2) Layer {
	return Layer{Name: name, Shape: s, Color: c, Committed: pos, Last: pos, Next: pos}
}

// Bounds returns the layer's bounds at its committed position.
func (l *Layer) Bounds() core.Region {
	return l.Shape.Bounds(l.Committed)
}

// Moved reports whether the layer's committed position differs from the
// previously painted one.
func (l *Layer) Moved() bool {
	return l.Committed != l.Last
}

// AxisMask selects which axes of a mobile are confined by the fence.
type AxisMask uint8

const (
	WallX AxisMask = 1 << iota
	WallY

	WallBoth = WallX | WallY
)

// Has reports whether axis a is walled.
func (m AxisMask) Has(a core.Axis) bool {
	return m&(1<<a) != 0
}

// Mobile is a layer that moves. Velocity is in pixels per tick.
//
// Walls lists the axes reflected at the fence. A Scorer raises a goal when
// it leaves the fence entirely along the x axis. Opponents are the layers it
// bounces off horizontally.
type Mobile struct {
	Layer     LayerID
	Velocity  core.Vec2
	Walls     AxisMask
	Scorer    bool
	Opponents []LayerID
}

// Scene is the arena of layers and mobiles.
type Scene struct {
	layers  []Layer
	mobiles []Mobile
}

// New creates a scene with room for the given number of layers and mobiles.
// Nothing is allocated after construction.
func New(layerCap, mobileCap int) *Scene {
	return &Scene{
		layers:  make([]Layer, 0, layerCap),
		mobiles: make([]Mobile, 0, mobileCap),
	}
}

// AddLayer appends a layer at the lowest priority so far.
func (s *Scene) AddLayer(l Layer) (LayerID, error) {
	if len(s.layers) == cap(s.layers) {
		return 0, fmt.Errorf("%w: %d layers", ErrLayerCapacity, cap(s.layers))
	}
	if err := l.Shape.Validate(); err != nil {
		return 0, fmt.Errorf("scene: layer %q: %w", l.Name, err)
	}
	s.layers = append(s.layers, l)
	return LayerID(len(s.layers) - 1), nil
}

// AddMobile registers a mobile entity for an existing layer.
func (s *Scene) AddMobile(m Mobile) (MobileID, error) {
	if len(s.mobiles) == cap(s.mobiles) {
		return 0, fmt.Errorf("%w: %d mobiles", ErrMobileCapacity, cap(s.mobiles))
	}
	if !s.valid(m.Layer) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLayer, m.Layer)
	}
	for _, o := range m.Opponents {
		if !s.valid(o) {
			return 0, fmt.Errorf("%w: opponent %d", ErrUnknownLayer, o)
		}
	}
	s.mobiles = append(s.mobiles, m)
	return MobileID(len(s.mobiles) - 1), nil
}

func (s *Scene) valid(id LayerID) bool {
	return int(id) < len(s.layers)
}

// Layer returns the layer for a handle. The handle must come from AddLayer.
func (s *Scene) Layer(id LayerID) *Layer {
	return &s.layers[id]
}

// Mobile returns the mobile for a handle. The handle must come from AddMobile.
func (s *Scene) Mobile(id MobileID) *Mobile {
	return &s.mobiles[id]
}

// LayerCount returns the number of layers.
func (s *Scene) LayerCount() int {
	return len(s.layers)
}

// MobileCount returns the number of mobiles.
func (s *Scene) MobileCount() int {
	return len(s.mobiles)
}

// Commit publishes each mobile's tentative position: Last takes the
// committed position and Committed takes Next. Callers must hold the
// critical section shared with the motion step.
func (s *Scene) Commit() {
	for i := range s.mobiles {
		l := &s.layers[s.mobiles[i].Layer]
		l.Last = l.Committed
		l.Committed = l.Next
	}
}

// ColorAt returns the color of the highest priority layer covering p at its
// committed position, or bg when no layer does.
func (s *Scene) ColorAt(p core.Vec2, bg core.Color) core.Color {
	for i := range s.layers {
		l := &s.layers[i]
		if l.Shape.Contains(l.Committed, p) {
			return l.Color
		}
	}
	return bg
}
