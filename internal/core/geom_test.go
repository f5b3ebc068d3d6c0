package core

import (
	"errors"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
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

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"touching edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching top", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"sub-unit overlap", NewBox(0, 0, 10, 10), NewBox(9.75, 9.75, 1, 1), true},
		{"far apart", NewBox(0, 0, 1, 1), NewBox(50, 50, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxAround(20, 30, 10, 4)

	if b.Left() != 15 || b.Right() != 25 {
		t.Errorf("horizontal edges = (%v, %v), expected (15, 25)", b.Left(), b.Right())
	}
	if b.Top() != 28 || b.Bottom() != 32 {
		t.Errorf("vertical edges = (%v, %v), expected (28, 32)", b.Top(), b.Bottom())
	}
	if b.CenterX() != 20 || b.CenterY() != 30 {
		t.Errorf("center = (%v, %v), expected (20, 30)", b.CenterX(), b.CenterY())
	}

	m := b.Moved(5, -8)
	if m.X != 20 || m.Y != 20 || m.W != 10 || m.H != 4 {
		t.Errorf("Moved() = %+v", m)
	}
}

func TestVecUnit(t *testing.T) {
	u := V(3, 4).Unit()
	if math.Abs(u.X-0.6) > 1e-12 || math.Abs(u.Y-0.8) > 1e-12 {
		t.Errorf("Unit() = %+v, expected (0.6, 0.8)", u)
	}
	if !V(0, 0).Unit().IsZero() {
		t.Error("Unit() of zero vector should be zero")
	}
	if V(3, 4).Len() != 5 {
		t.Errorf("Len() = %v, expected 5", V(3, 4).Len())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSignAbs(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(0.1) != 1 {
		t.Error("Sign() returned wrong values")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned wrong values")
	}
}

func TestViewportRect(t *testing.T) {
	vp := NewViewport(NewBox(0, 0, 100, 50), 50, 27, 2)

	r := vp.Rect(NewBox(10, 10, 20, 10))
	if r.X != 5 || r.Y != 7 || r.W != 10 || r.H != 5 {
		t.Errorf("Rect() = %+v, expected {5 7 10 5}", r)
	}

	// Tiny boxes still occupy a cell
	tiny := vp.Rect(NewBox(0, 0, 0.1, 0.1))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny Rect() = %+v, expected 1x1", tiny)
	}
}

func TestRuntimeConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.TickRate = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero tick rate: expected ErrInvalidConfig, got %v", err)
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "tick_rate" {
		t.Errorf("expected ConfigError on tick_rate, got %v", err)
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(InvariantError); !ok {
			t.Fatalf("expected InvariantError panic, got %v", r)
		}
	}()
	Invariant(false, "room %d outside floor", 7)
}

func TestSoundsDrain(t *testing.T) {
	var s Sounds
	s.Emit(SoundStep)
	s.Emit(SoundStairs)

	got := s.Drain()
	if len(got) != 2 || got[0] != SoundStep || got[1] != SoundStairs {
		t.Errorf("Drain() = %v", got)
	}
	if s.Drain() != nil {
		t.Error("second Drain() should be empty")
	}
}
