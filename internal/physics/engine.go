// Package physics advances mobile layers one tick at a time and resolves
// their collisions against the fence and against opponent layers.
//
// Resolution is a single step per axis: an offending velocity component is
// reflected and the candidate position moved back by twice the new velocity.
// An overshoot larger than one velocity step is not fully corrected within
// the same tick.
package physics

import (
	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/scene"
)

// Engine holds the fence every mobile is confined to.
type Engine struct {
	Fence core.Region
}

// New creates an engine for the given fence.
func New(fence core.Region) *Engine {
	return &Engine{Fence: fence}
}

// Advance moves every mobile of s by its velocity, starting from its
// tentative position, and writes the result back to Layer.Next. Events are
// appended to ev, which is reset first.
//
// Advance reads opponents at their committed position, so it must run under
// the same critical section as Scene.Commit.
func (e *Engine) Advance(s *scene.Scene, ev *Events) {
	ev.Reset()
	for i := 0; i < s.MobileCount(); i++ {
		e.advanceOne(s, scene.MobileID(i), ev)
	}
}

func (e *Engine) advanceOne(s *scene.Scene, id scene.MobileID, ev *Events) {
	m := s.Mobile(id)
	l := s.Layer(m.Layer)

	candidate := l.Next.Add(m.Velocity)
	bounds := l.Shape.Bounds(candidate)
	goal := false

	for _, axis := range core.Axes {
		lo, hi := bounds.TopLeft.Axis(axis), bounds.BotRight.Axis(axis)
		fenceLo, fenceHi := e.Fence.TopLeft.Axis(axis), e.Fence.BotRight.Axis(axis)

		if m.Scorer && axis == core.AxisX {
			if hi < fenceLo {
				ev.Add(Event{Kind: EventGoal, Mobile: id, Side: SideLeft})
				goal = true
				continue
			}
			if lo > fenceHi {
				ev.Add(Event{Kind: EventGoal, Mobile: id, Side: SideRight})
				goal = true
				continue
			}
		}

		if !m.Walls.Has(axis) || (lo >= fenceLo && hi <= fenceHi) {
			continue
		}
		v := m.Velocity.Axis(axis)
		if v == 0 {
			continue
		}
		candidate, bounds = reflect(m, l, candidate, axis)
		ev.Add(Event{Kind: EventBounce, Mobile: id, Axis: axis})
	}

	if !goal {
		for _, opp := range m.Opponents {
			if opp == m.Layer {
				continue
			}
			if !bounds.Intersects(s.Layer(opp).Bounds()) {
				continue
			}
			candidate, bounds = reflect(m, l, candidate, core.AxisX)
			ev.Add(Event{Kind: EventHit, Mobile: id, Opponent: opp})
			break
		}
	}

	l.Next = candidate
}

// reflect negates the velocity along axis and moves the candidate back by
// twice the reflected velocity.
func reflect(m *scene.Mobile, l *scene.Layer, candidate core.Vec2, axis core.Axis) (core.Vec2, core.Region) {
	v := -m.Velocity.Axis(axis)
	m.Velocity = m.Velocity.With(axis, v)
	candidate = candidate.With(axis, candidate.Axis(axis)+2*v)
	return candidate, l.Shape.Bounds(candidate)
}
