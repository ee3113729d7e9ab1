package core

import "testing"

func TestRectFContains(t *testing.T) {
	r := RectF{X: 10, Y: 10, W: 20, H: 15}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner", Vec2{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec2{30, 25}, false},
		{"outside left", Vec2{5, 15}, false},
		{"outside right", Vec2{35, 15}, false},
		{"outside top", Vec2{15, 5}, false},
		{"outside bottom", Vec2{15, 30}, false},
		{"fractional inside", Vec2{29.9, 24.9}, true},
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

func TestRectFCenter(t *testing.T) {
	r := RectF{X: 5, Y: 10, W: 20, H: 15}
	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
}

func TestVec2Ops(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, -1})
	if v.X != 4 || v.Y != 1 {
		t.Errorf("Add = %v, expected (4, 1)", v)
	}

	v = Vec2{2, -3}.Scale(2)
	if v.X != 4 || v.Y != -6 {
		t.Errorf("Scale = %v, expected (4, -6)", v)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{5, 3, 0.5, 4},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}
