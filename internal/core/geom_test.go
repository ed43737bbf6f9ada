package core

import "testing"

func TestRegionIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Region
		expected bool
	}{
		{
			name:     "overlapping regions",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(5, 5, 14, 14),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(15, 0, 24, 9),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(0, 15, 9, 24),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(10, 0, 19, 9),
			expected: false,
		},
		{
			name:     "shared edge column (inclusive corners overlap)",
			a:        NewRegion(0, 0, 10, 9),
			b:        NewRegion(10, 0, 19, 9),
			expected: true,
		},
		{
			name:     "contained region",
			a:        NewRegion(0, 0, 19, 19),
			b:        NewRegion(5, 5, 9, 9),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRegion(0, 0, 9, 9),
			b:        NewRegion(9, 9, 18, 18),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(10, 10, 29, 24)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right corner (inclusive)", V(29, 24), true},
		{"outside left", V(5, 15), false},
		{"outside right", V(30, 15), false},
		{"outside top", V(15, 9), false},
		{"outside bottom", V(15, 25), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRegionDimensions(t *testing.T) {
	r := NewRegion(5, 10, 24, 24)

	if r.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", r.Width())
	}
	if r.Height() != 15 {
		t.Errorf("Height() = %d, expected 15", r.Height())
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}

	c := r.Center()
	if c != V(14, 17) {
		t.Errorf("Center() = %v, expected (14, 17)", c)
	}

	if !NewRegion(3, 0, 2, 0).Empty() {
		t.Error("Region with TopLeft.X > BotRight.X should be empty")
	}
	if NewRegion(3, 0, 2, 0).Area() != 0 {
		t.Error("Empty region should have zero area")
	}
}

func TestRegionUnionClip(t *testing.T) {
	a := NewRegion(0, 0, 9, 9)
	b := NewRegion(5, 20, 30, 25)

	u := a.Union(b)
	if u != NewRegion(0, 0, 30, 25) {
		t.Errorf("Union() = %v, expected {(0,0),(30,25)}", u)
	}
	if !a.Within(u) || !b.Within(u) {
		t.Error("Both inputs should lie within their union")
	}

	if _, ok := a.Clip(b); ok {
		t.Error("Clip() of disjoint regions should report no overlap")
	}

	c, ok := NewRegion(-5, -5, 5, 5).Clip(NewRegion(0, 0, 127, 159))
	if !ok {
		t.Fatal("Clip() should report overlap")
	}
	if c != NewRegion(0, 0, 5, 5) {
		t.Errorf("Clip() = %v, expected {(0,0),(5,5)}", c)
	}
}

func TestRegionInsetTranslate(t *testing.T) {
	r := RegionAround(V(50, 50), V(10, 20))
	if r != NewRegion(40, 30, 60, 70) {
		t.Errorf("RegionAround() = %v", r)
	}
	if r.Inset(1) != NewRegion(41, 31, 59, 69) {
		t.Errorf("Inset(1) = %v", r.Inset(1))
	}
	if r.Translate(V(-40, 2)) != NewRegion(0, 32, 20, 72) {
		t.Errorf("Translate() = %v", r.Translate(V(-40, 2)))
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, -4)
	b := V(-1, 7)

	if a.Add(b) != V(2, 3) {
		t.Errorf("Add() = %v, expected (2, 3)", a.Add(b))
	}
	if a.Sub(b) != V(4, -11) {
		t.Errorf("Sub() = %v, expected (4, -11)", a.Sub(b))
	}
	if a.Scale(2) != V(6, -8) {
		t.Errorf("Scale() = %v, expected (6, -8)", a.Scale(2))
	}
	if a.Neg() != V(-3, 4) {
		t.Errorf("Neg() = %v, expected (-3, 4)", a.Neg())
	}
	if a.Axis(AxisX) != 3 || a.Axis(AxisY) != -4 {
		t.Errorf("Axis() returned wrong components for %v", a)
	}
	if a.With(AxisY, 9) != V(3, 9) {
		t.Errorf("With(AxisY, 9) = %v", a.With(AxisY, 9))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
