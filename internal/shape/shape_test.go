package shape

import (
	"testing"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

func testShapes() []Shape {
	return []Shape{
		Circle(0),
		Circle(1),
		Circle(5),
		FilledRect(0, 0),
		FilledRect(2, 10),
		RectOutline(3, 4),
		RectOutline(0, 2),
		SlicedRect(1, 12, Slice{Axis: core.AxisY, Period: 6, Phase: 0, Gap: 3}),
		SlicedRect(8, 1, Slice{Axis: core.AxisX, Period: 4, Phase: 1, Gap: 1}),
	}
}

func TestBoundsSoundness(t *testing.T) {
	centers := []core.Vec2{core.V(0, 0), core.V(64, 80), core.V(-7, 3)}

	for _, s := range testShapes() {
		for _, c := range centers {
			b := s.Bounds(c)
			ext := s.Extent()
			// Scan a window larger than the bounds on every side.
			for y := c.Y - ext.Y - 3; y <= c.Y+ext.Y+3; y++ {
				for x := c.X - ext.X - 3; x <= c.X+ext.X+3; x++ {
					p := core.V(x, y)
					if s.Contains(c, p) && !b.Contains(p) {
						t.Errorf("%s at %v: pixel %v is contained but outside bounds %v", s.Kind, c, p, b)
					}
				}
			}
		}
	}
}

func TestBoundsMinimal(t *testing.T) {
	// Every edge of the bounds should touch at least one contained pixel
	// for the solid shapes.
	solid := []Shape{Circle(4), FilledRect(3, 2), RectOutline(5, 5)}
	c := core.V(20, 20)

	for _, s := range solid {
		b := s.Bounds(c)
		top, bottom, left, right := false, false, false, false
		for y := b.TopLeft.Y; y <= b.BotRight.Y; y++ {
			for x := b.TopLeft.X; x <= b.BotRight.X; x++ {
				if !s.Contains(c, core.V(x, y)) {
					continue
				}
				top = top || y == b.TopLeft.Y
				bottom = bottom || y == b.BotRight.Y
				left = left || x == b.TopLeft.X
				right = right || x == b.BotRight.X
			}
		}
		if !top || !bottom || !left || !right {
			t.Errorf("%s bounds %v are not tight (top=%v bottom=%v left=%v right=%v)", s.Kind, b, top, bottom, left, right)
		}
	}
}

func TestCircleContains(t *testing.T) {
	s := Circle(3)
	c := core.V(10, 10)

	tests := []struct {
		name     string
		p        core.Vec2
		expected bool
	}{
		{"center", core.V(10, 10), true},
		{"on axis at radius", core.V(13, 10), true},
		{"beyond radius", core.V(14, 10), false},
		{"diagonal inside (2,2)", core.V(12, 12), true},
		{"bounding box corner", core.V(13, 13), false},
		{"distance squared 10", core.V(13, 11), false},
		{"distance squared 9", core.V(10, 7), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Contains(c, tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestFilledRectContains(t *testing.T) {
	s := FilledRect(2, 10)
	c := core.V(14, 80)

	if s.Bounds(c) != core.NewRegion(12, 70, 16, 90) {
		t.Errorf("Bounds() = %v, expected {(12,70),(16,90)}", s.Bounds(c))
	}
	if !s.Contains(c, core.V(12, 70)) || !s.Contains(c, core.V(16, 90)) {
		t.Error("corners of a filled rect should be contained")
	}
	if s.Contains(c, core.V(17, 80)) || s.Contains(c, core.V(14, 91)) {
		t.Error("pixels past the half size should not be contained")
	}
}

func TestRectOutlineContains(t *testing.T) {
	s := RectOutline(3, 2)
	c := core.V(0, 0)

	count := 0
	for y := -3; y <= 3; y++ {
		for x := -4; x <= 4; x++ {
			if s.Contains(c, core.V(x, y)) {
				count++
			}
		}
	}
	// Perimeter of a 7x5 rectangle: 2*7 + 2*3 = 20 pixels.
	if count != 20 {
		t.Errorf("outline pixel count = %d, expected 20", count)
	}
	if s.Contains(c, core.V(0, 0)) || s.Contains(c, core.V(2, 1)) {
		t.Error("interior pixels should not belong to the outline")
	}
	if !s.Contains(c, core.V(-3, 0)) || !s.Contains(c, core.V(1, 2)) {
		t.Error("edge pixels should belong to the outline")
	}
}

func TestSlicedRectPattern(t *testing.T) {
	s := SlicedRect(0, 11, Slice{Axis: core.AxisY, Period: 6, Phase: 0, Gap: 3})
	c := core.V(50, 50)

	var got []bool
	for dy := -11; dy <= 11; dy++ {
		got = append(got, s.Contains(c, core.V(50, 50+dy)))
	}

	// Offsets with (dy mod 6) < 3 are gaps.
	for i, dy := 0, -11; dy <= 11; i, dy = i+1, dy+1 {
		m := ((dy % 6) + 6) % 6
		want := m >= 3
		if got[i] != want {
			t.Errorf("offset %d: Contains = %v, expected %v", dy, got[i], want)
		}
	}

	// Outside the filled rect is never contained
	if s.Contains(c, core.V(51, 50+4)) {
		t.Error("sliced rect should honor the filled rect bounds")
	}
}

func TestSlicedRectPhase(t *testing.T) {
	a := SlicedRect(5, 0, Slice{Axis: core.AxisX, Period: 4, Phase: 0, Gap: 1})
	b := SlicedRect(5, 0, Slice{Axis: core.AxisX, Period: 4, Phase: 1, Gap: 1})
	c := core.V(0, 0)

	// Shifting the phase by one moves the gap one pixel left.
	for x := -4; x <= 4; x++ {
		if a.Contains(c, core.V(x, 0)) != b.Contains(c, core.V(x-1, 0)) {
			t.Errorf("phase shift mismatch at x=%d", x)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Shape
		wantErr bool
	}{
		{"circle ok", Circle(3), false},
		{"negative radius", Circle(-1), true},
		{"negative rect", FilledRect(-1, 2), true},
		{"outline ok", RectOutline(10, 10), false},
		{"slice ok", SlicedRect(1, 10, Slice{Period: 4, Gap: 2}), false},
		{"slice zero period", SlicedRect(1, 10, Slice{Period: 0, Gap: 0}), true},
		{"slice gap too large", SlicedRect(1, 10, Slice{Period: 4, Gap: 4}), true},
		{"unknown kind", Shape{Kind: Kind(42)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
