package core

import (
	"strings"
	"testing"
)

func TestNewFramebuffer(t *testing.T) {
	f := NewFramebuffer(16, 8)

	if f.Width() != 16 || f.Height() != 8 {
		t.Errorf("size = %dx%d, expected 16x8", f.Width(), f.Height())
	}
	if f.Bounds() != NewRegion(0, 0, 15, 7) {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.At(x, y) != ColorBlack {
				t.Fatalf("new framebuffer should be black, got %#04x at (%d, %d)", f.At(x, y), x, y)
			}
		}
	}
}

func TestFramebufferStreamRowMajor(t *testing.T) {
	f := NewFramebuffer(10, 10)
	f.DeclareRegion(NewRegion(2, 3, 4, 4))

	colors := []Color{1, 2, 3, 4, 5, 6}
	for _, c := range colors {
		f.WritePixel(c)
	}

	expected := map[Vec2]Color{
		V(2, 3): 1, V(3, 3): 2, V(4, 3): 3,
		V(2, 4): 4, V(3, 4): 5, V(4, 4): 6,
	}
	for p, c := range expected {
		if f.At(p.X, p.Y) != c {
			t.Errorf("At(%d, %d) = %d, expected %d", p.X, p.Y, f.At(p.X, p.Y), c)
		}
	}
	if f.At(5, 3) != ColorBlack || f.At(2, 5) != ColorBlack {
		t.Error("stream should not write outside the declared region")
	}
}

func TestFramebufferStreamWraps(t *testing.T) {
	f := NewFramebuffer(4, 4)
	f.DeclareRegion(NewRegion(0, 0, 1, 0))

	f.WritePixel(1)
	f.WritePixel(2)
	f.WritePixel(3) // wraps back to (0, 0)

	if f.At(0, 0) != 3 || f.At(1, 0) != 2 {
		t.Errorf("wrap failed: (0,0)=%d (1,0)=%d", f.At(0, 0), f.At(1, 0))
	}
	if f.At(0, 1) != ColorBlack {
		t.Error("wrap should stay inside the declared region")
	}
}

func TestFramebufferOffscreenSlots(t *testing.T) {
	f := NewFramebuffer(4, 4)
	// Region hangs off the left edge: (-1,0) is consumed but not stored.
	f.DeclareRegion(NewRegion(-1, 0, 0, 0))

	f.WritePixel(7)
	f.WritePixel(9)

	if f.At(0, 0) != 9 {
		t.Errorf("At(0, 0) = %d, expected 9 (first slot is off-screen)", f.At(0, 0))
	}
}

func TestFramebufferClear(t *testing.T) {
	f := NewFramebuffer(3, 3)
	f.Clear(ColorBlue)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if f.At(x, y) != ColorBlue {
				t.Errorf("After Clear, expected blue at (%d, %d), got %#04x", x, y, f.At(x, y))
			}
		}
	}

	// Clear closes the stream
	f.WritePixel(ColorRed)
	if f.At(0, 0) != ColorBlue {
		t.Error("WritePixel after Clear without DeclareRegion should be ignored")
	}
}

func TestFramebufferSnapshot(t *testing.T) {
	f := NewFramebuffer(2, 2)
	f.DeclareRegion(f.Bounds())
	for _, c := range []Color{1, 2, 3, 4} {
		f.WritePixel(c)
	}

	snap := f.Snapshot(nil)
	if len(snap) != 4 || snap[0] != 1 || snap[3] != 4 {
		t.Errorf("Snapshot() = %v, expected [1 2 3 4]", snap)
	}

	// Snapshot is a copy
	snap[0] = 99
	if f.At(0, 0) != 1 {
		t.Error("modifying a snapshot should not change the framebuffer")
	}

	// Reuses a large enough buffer
	buf := make([]Color, 0, 8)
	out := f.Snapshot(buf)
	if &out[0] != &buf[:1][0] {
		t.Error("Snapshot should reuse dst when it has capacity")
	}
}

func TestFramebufferString(t *testing.T) {
	f := NewFramebuffer(3, 2)
	f.Clear(ColorBlack)
	f.DeclareRegion(NewRegion(1, 0, 1, 1))
	f.WritePixel(ColorWhite)
	f.WritePixel(ColorWhite)

	result := f.String()
	expected := " @ \n @ "
	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
	if strings.Count(result, "\n") != 1 {
		t.Error("String() should join rows with newlines")
	}
}
