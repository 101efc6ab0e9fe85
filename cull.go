package tilelayer

import (
	"image"
	"math"

	"chosenoffset.com/tilelayer/geom"
)

// View describes the camera: a world-space center and size. No rotation
// angle is needed; the culler over-approximates the view so that any camera
// rotation stays covered.
type View struct {
	Center geom.Vec2
	Size   geom.Vec2
}

// visibleRect computes the minimal cell rectangle that must be rendered for
// the given view, clamped to the layer bounds. An empty rectangle means the
// view lies entirely outside the layer.
func (l *Layer) visibleRect(view View) image.Rectangle {
	bs := l.BlockSize()
	if bs.X() == 0 || bs.Y() == 0 {
		return image.Rectangle{}
	}

	// Inflate the view to a square whose side covers the view's diagonal,
	// so an arbitrarily rotated camera is fully contained.
	side := float32(math.Sqrt2) * max(view.Size.X(), view.Size.Y())
	world := geom.RectFromCenter(view.Center, geom.Vec2{side, side})

	// Into layer-local space, grown by one block to keep partially visible
	// edge cells plus rounding slack.
	local := geom.TransformRect(l.InverseTransform(), world).Grow(max(bs.X(), bs.Y()))

	bounds := geom.Rect{Size: geom.Vec2{float32(l.width) * bs.X(), float32(l.height) * bs.Y()}}
	inter, ok := local.Intersect(bounds)
	if !ok {
		return image.Rectangle{}
	}

	// To cell coordinates, rounding half up so partially covered boundary
	// cells are kept. The bias can run one cell past the edge, so re-clamp.
	x := int(inter.Min.X()/bs.X() + 0.5)
	y := int(inter.Min.Y()/bs.Y() + 0.5)
	w := int(inter.Size.X()/bs.X() + 0.5)
	h := int(inter.Size.Y()/bs.Y() + 0.5)

	x = min(x, l.width)
	y = min(y, l.height)
	return image.Rect(x, y, min(x+w, l.width), min(y+h, l.height))
}
