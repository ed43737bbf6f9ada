package session

import (
	"testing"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

func TestSwitchLatchPress(t *testing.T) {
	var l SwitchLatch
	l.Press(0)
	l.Press(3)
	l.Press(7) // ignored

	m := l.ReadSwitchMask()
	if !m.Pressed(0) || !m.Pressed(3) || m.Pressed(1) || m.Pressed(2) {
		t.Errorf("ReadSwitchMask() = %04b, expected SW1 and SW4 pressed", m)
	}
	if m := l.ReadSwitchMask(); m != core.AllReleased {
		t.Errorf("second ReadSwitchMask() = %04b, expected latch consumed", m)
	}
}

func TestSwitchLatchHold(t *testing.T) {
	var l SwitchLatch
	l.Hold(2, true)

	for i := 0; i < 3; i++ {
		if m := l.ReadSwitchMask(); !m.Pressed(2) {
			t.Fatalf("read %d: held switch not pressed", i)
		}
	}
	l.Hold(2, false)
	if m := l.ReadSwitchMask(); m.Any() {
		t.Errorf("ReadSwitchMask() = %04b after release, expected none", m)
	}
}

func TestSwitchLatchReset(t *testing.T) {
	var l SwitchLatch
	l.Press(1)
	l.Hold(0, true)
	l.Reset()
	if m := l.ReadSwitchMask(); m != core.AllReleased {
		t.Errorf("ReadSwitchMask() = %04b after Reset, expected AllReleased", m)
	}
}

func TestSwitchLatchHoldFrame(t *testing.T) {
	var l SwitchLatch
	var f core.InputFrame
	f.Set(core.ActionLeftDown)
	f.Set(core.ActionRightUp)
	f.Set(core.ActionRestart)
	l.HoldFrame(f)

	m := l.ReadSwitchMask()
	if m.Pressed(0) || !m.Pressed(1) || !m.Pressed(2) || m.Pressed(3) {
		t.Errorf("ReadSwitchMask() = %04b, expected SW2 and SW3", m)
	}

	l.HoldFrame(0)
	if m := l.ReadSwitchMask(); m.Any() {
		t.Errorf("ReadSwitchMask() = %04b after an empty frame, expected none", m)
	}
}
