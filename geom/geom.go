// Package geom provides the small amount of 2D math the tile layer needs on
// top of mathgl: affine transforms in homogeneous coordinates and float
// rectangles with intersection, growth and transformed bounding boxes.
package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is the 2D vector type used throughout the library.
type Vec2 = mgl32.Vec2

// Mat3 is a 2D affine transform in homogeneous coordinates.
type Mat3 = mgl32.Mat3

// Ident returns the identity transform.
func Ident() Mat3 {
	return mgl32.Ident3()
}

// Translation returns the transform moving points by v.
func Translation(v Vec2) Mat3 {
	return mgl32.Translate2D(v.X(), v.Y())
}

// Rotation returns the transform rotating points by angle radians around the
// origin.
func Rotation(angle float32) Mat3 {
	return mgl32.HomogRotate2D(angle)
}

// Scaling returns the transform scaling points component-wise by v.
func Scaling(v Vec2) Mat3 {
	return mgl32.Scale2D(v.X(), v.Y())
}

// Apply transforms point p by m.
func Apply(m Mat3, p Vec2) Vec2 {
	h := m.Mul3x1(mgl32.Vec3{p.X(), p.Y(), 1})
	return Vec2{h.X(), h.Y()}
}
