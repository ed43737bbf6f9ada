package core

// SwitchCount is the number of push buttons on the board.
const SwitchCount = 4

// SwitchMask is a raw switch reading. Bits are active-low: a 0 bit means the
// switch is pressed, so an idle board reads AllReleased.
type SwitchMask uint8

// AllReleased is the reading when no switch is closed.
const AllReleased SwitchMask = 1<<SwitchCount - 1

// Pressed reports whether switch i (0-based) is closed.
func (m SwitchMask) Pressed(i int) bool {
	return m&(1<<uint(i)) == 0
}

// Press returns the mask with switch i closed.
func (m SwitchMask) Press(i int) SwitchMask {
	return m &^ (1 << uint(i))
}

// Any reports whether at least one switch is closed.
func (m SwitchMask) Any() bool {
	return m&AllReleased != AllReleased
}

// Action represents a semantic game action, abstracted from physical key presses.
// The first four actions map one-to-one onto the board switches.
type Action int

const (
	ActionLeftUp    Action = iota // SW1
	ActionLeftDown                // SW2
	ActionRightUp                 // SW3
	ActionRightDown               // SW4
	ActionRestart                 // R key
	ActionQuit                    // Q, Ctrl+C
	ActionSnapshot                // Ctrl+S, copy frame to clipboard
	ActionNone
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSnapshot:
		return "Snapshot"
	case ActionNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Switch returns the switch index an action drives, or -1.
func (a Action) Switch() int {
	if a >= ActionLeftUp && a <= ActionRightDown {
		return int(a)
	}
	return -1
}

// InputFrame is the set of actions triggered during one tick.
// A bitset keeps it allocation-free inside the tick path.
type InputFrame uint16

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a < 0 || a >= ActionNone {
		return
	}
	*f |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a < 0 || a >= ActionNone {
		return false
	}
	return f&(1<<uint(a)) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = 0
}

// Mask converts the switch actions of the frame to an active-low reading.
func (f InputFrame) Mask() SwitchMask {
	m := AllReleased
	for a := ActionLeftUp; a <= ActionRightDown; a++ {
		if f.Has(a) {
			m = m.Press(a.Switch())
		}
	}
	return m
}
