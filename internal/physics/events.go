package physics

import (
	"fmt"

	"github.com/vovakirdan/lcd-pong/internal/core"
	"github.com/vovakirdan/lcd-pong/internal/scene"
)

// EventKind classifies what happened to a mobile during Advance.
type EventKind uint8

const (
	// EventBounce is a reflection off the fence.
	EventBounce EventKind = iota
	// EventHit is a reflection off an opponent layer.
	EventHit
	// EventGoal means a scorer left the fence entirely.
	EventGoal
)

func (k EventKind) String() string {
	switch k {
	case EventBounce:
		return "bounce"
	case EventHit:
		return "hit"
	case EventGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Side names the fence edge a goal was scored past: the side that failed to
// return the ball.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return 1 - s
}

// Event is a single collision or scoring event.
type Event struct {
	Kind     EventKind
	Mobile   scene.MobileID
	Axis     core.Axis     // bounce
	Opponent scene.LayerID // hit
	Side     Side          // goal
}

func (e Event) String() string {
	switch e.Kind {
	case EventBounce:
		return fmt.Sprintf("bounce mobile=%d axis=%s", e.Mobile, e.Axis)
	case EventHit:
		return fmt.Sprintf("hit mobile=%d opponent=%d", e.Mobile, e.Opponent)
	case EventGoal:
		return fmt.Sprintf("goal mobile=%d missed=%s", e.Mobile, e.Side)
	}
	return e.Kind.String()
}

// MaxEvents bounds the events recorded per Advance.
const MaxEvents = 16

// Events is a fixed-capacity event buffer reused across ticks.
type Events struct {
	buf     [MaxEvents]Event
	n       int
	dropped int
}

// Reset empties the buffer.
func (e *Events) Reset() {
	e.n = 0
	e.dropped = 0
}

// Add appends an event. Events beyond capacity are counted and discarded.
func (e *Events) Add(ev Event) {
	if e.n == len(e.buf) {
		e.dropped++
		return
	}
	e.buf[e.n] = ev
	e.n++
}

// Len returns the number of recorded events.
func (e *Events) Len() int {
	return e.n
}

// Dropped returns how many events did not fit.
func (e *Events) Dropped() int {
	return e.dropped
}

// All returns the recorded events. The slice aliases the buffer and is only
// valid until the next Reset.
func (e *Events) All() []Event {
	return e.buf[:e.n]
}

// Goal returns the first goal event, if any.
func (e *Events) Goal() (Event, bool) {
	for _, ev := range e.buf[:e.n] {
		if ev.Kind == EventGoal {
			return ev, true
		}
	}
	return Event{}, false
}

// Count returns how many events of kind k were recorded.
func (e *Events) Count(k EventKind) int {
	n := 0
	for _, ev := range e.buf[:e.n] {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
