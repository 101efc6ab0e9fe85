package geom

// Rect is an axis-aligned rectangle in float coordinates, stored as its
// minimum corner and size.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// RectFromCenter returns the rectangle of the given size centered on center.
func RectFromCenter(center, size Vec2) Rect {
	return Rect{Min: center.Sub(size.Mul(0.5)), Size: size}
}

// Max returns the maximum corner of r.
func (r Rect) Max() Vec2 {
	return r.Min.Add(r.Size)
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Size.X() <= 0 || r.Size.Y() <= 0
}

// Grow returns r expanded by d on all four sides.
func (r Rect) Grow(d float32) Rect {
	return Rect{
		Min:  Vec2{r.Min.X() - d, r.Min.Y() - d},
		Size: Vec2{r.Size.X() + 2*d, r.Size.Y() + 2*d},
	}
}

// Intersect returns the overlap of r and o. The second result is false when
// the rectangles do not overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	lo := Vec2{
		max(r.Min.X(), o.Min.X()),
		max(r.Min.Y(), o.Min.Y()),
	}
	hi := Vec2{
		min(r.Max().X(), o.Max().X()),
		min(r.Max().Y(), o.Max().Y()),
	}
	out := Rect{Min: lo, Size: hi.Sub(lo)}
	if out.Empty() {
		return Rect{}, false
	}
	return out, true
}

// TransformRect returns the axis-aligned bounding box of r transformed by m.
// Under rotation this over-approximates the transformed shape, which is what
// visibility culling wants.
func TransformRect(m Mat3, r Rect) Rect {
	corners := [4]Vec2{
		Apply(m, r.Min),
		Apply(m, Vec2{r.Max().X(), r.Min.Y()}),
		Apply(m, Vec2{r.Min.X(), r.Max().Y()}),
		Apply(m, r.Max()),
	}

	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = Vec2{min(lo.X(), c.X()), min(lo.Y(), c.Y())}
		hi = Vec2{max(hi.X(), c.X()), max(hi.Y(), c.Y())}
	}
	return Rect{Min: lo, Size: hi.Sub(lo)}
}
