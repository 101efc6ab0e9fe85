package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b Vec2, eps float32) bool {
	return float32(math.Abs(float64(a.X()-b.X()))) <= eps &&
		float32(math.Abs(float64(a.Y()-b.Y()))) <= eps
}

func TestApplyTranslation(t *testing.T) {
	m := Translation(Vec2{3, -2})
	if p := Apply(m, Vec2{1, 1}); p != (Vec2{4, -1}) {
		t.Errorf("Expected (4, -1), got %v", p)
	}
}

func TestApplyRotationQuarterTurn(t *testing.T) {
	m := Rotation(float32(math.Pi / 2))
	if p := Apply(m, Vec2{1, 0}); !almostEqual(p, Vec2{0, 1}, 1e-6) {
		t.Errorf("Expected (0, 1), got %v", p)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Vec2{10, 10}, Vec2{4, 6})
	if r.Min != (Vec2{8, 7}) {
		t.Errorf("Expected min (8, 7), got %v", r.Min)
	}
	if r.Max() != (Vec2{12, 13}) {
		t.Errorf("Expected max (12, 13), got %v", r.Max())
	}
}

func TestRectGrow(t *testing.T) {
	r := Rect{Min: Vec2{2, 2}, Size: Vec2{4, 4}}.Grow(3)
	if r.Min != (Vec2{-1, -1}) {
		t.Errorf("Expected min (-1, -1), got %v", r.Min)
	}
	if r.Size != (Vec2{10, 10}) {
		t.Errorf("Expected size (10, 10), got %v", r.Size)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{Min: Vec2{0, 0}, Size: Vec2{10, 10}}
	b := Rect{Min: Vec2{5, 5}, Size: Vec2{10, 10}}

	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("Expected rectangles to intersect")
	}
	if got.Min != (Vec2{5, 5}) || got.Size != (Vec2{5, 5}) {
		t.Errorf("Expected intersection (5, 5) size (5, 5), got %v size %v", got.Min, got.Size)
	}

	c := Rect{Min: Vec2{20, 20}, Size: Vec2{3, 3}}
	if _, ok := a.Intersect(c); ok {
		t.Error("Expected disjoint rectangles not to intersect")
	}

	// Touching edges cover no area.
	d := Rect{Min: Vec2{10, 0}, Size: Vec2{5, 5}}
	if _, ok := a.Intersect(d); ok {
		t.Error("Expected edge-touching rectangles not to intersect")
	}
}

func TestTransformRectBoundingBox(t *testing.T) {
	r := Rect{Min: Vec2{0, 0}, Size: Vec2{1, 1}}
	got := TransformRect(Rotation(float32(math.Pi/2)), r)

	if !almostEqual(got.Min, Vec2{-1, 0}, 1e-6) {
		t.Errorf("Expected min (-1, 0), got %v", got.Min)
	}
	if !almostEqual(got.Size, Vec2{1, 1}, 1e-6) {
		t.Errorf("Expected size (1, 1), got %v", got.Size)
	}
}
