package tilelayer

import (
	"chosenoffset.com/tilelayer/geom"
)

// Transformable holds the placement of a drawable in world space: position,
// origin, rotation and scale. The zero value is the identity placement.
type Transformable struct {
	position geom.Vec2
	origin   geom.Vec2
	rotation float32
	scale    geom.Vec2
}

// SetPosition moves the drawable to the given world position.
func (t *Transformable) SetPosition(x, y float32) {
	t.position = geom.Vec2{x, y}
}

// Position returns the world position.
func (t *Transformable) Position() geom.Vec2 {
	return t.position
}

// SetOrigin sets the local point that position, rotation and scale are
// relative to.
func (t *Transformable) SetOrigin(origin geom.Vec2) {
	t.origin = origin
}

// Origin returns the local origin.
func (t *Transformable) Origin() geom.Vec2 {
	return t.origin
}

// SetRotation sets the rotation in radians.
func (t *Transformable) SetRotation(angle float32) {
	t.rotation = angle
}

// Rotation returns the rotation in radians.
func (t *Transformable) Rotation() float32 {
	return t.rotation
}

// SetScale sets the scale factors. A zero scale means unscaled.
func (t *Transformable) SetScale(x, y float32) {
	t.scale = geom.Vec2{x, y}
}

// Scale returns the effective scale factors.
func (t *Transformable) Scale() geom.Vec2 {
	return t.effectiveScale()
}

func (t *Transformable) effectiveScale() geom.Vec2 {
	if t.scale == (geom.Vec2{}) {
		return geom.Vec2{1, 1}
	}
	return t.scale
}

// Transform returns the local-to-world transform: translation, then
// rotation, then scale, relative to the origin.
func (t *Transformable) Transform() geom.Mat3 {
	return geom.Translation(t.position).
		Mul3(geom.Rotation(t.rotation)).
		Mul3(geom.Scaling(t.effectiveScale())).
		Mul3(geom.Translation(t.origin.Mul(-1)))
}

// InverseTransform returns the world-to-local transform.
func (t *Transformable) InverseTransform() geom.Mat3 {
	return t.Transform().Inv()
}

// Anchor names a reference point of a bounding rectangle, used to derive an
// origin from local bounds.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)
