package tilelayer

import (
	"chosenoffset.com/tilelayer/geom"
	"chosenoffset.com/tilelayer/render"
)

// DrawOptions carries optional state for Layer.Draw.
type DrawOptions struct {
	// Transform is composed on top of the layer's own placement transform,
	// typically the caller's camera matrix. Nil means identity.
	Transform *geom.Mat3

	AntiAlias bool
}

// Draw renders the part of the layer visible through view onto target.
//
// The visible cell rectangle is recomputed every call; geometry is rebuilt
// only when that rectangle differs from the cached one, so camera jitter
// within the same cells reuses the cache. Without a bound texture Draw does
// nothing.
func (l *Layer) Draw(target render.Target, view View, opts *DrawOptions) {
	if l.texture == nil {
		return
	}

	if rect := l.visibleRect(view); rect != l.rect {
		l.rect = rect
		l.rebuild()
	}

	m := l.Transform()
	if opts != nil && opts.Transform != nil {
		m = opts.Transform.Mul3(m)
	}

	topts := &render.DrawTrianglesOptions{Transform: &m}
	if opts != nil {
		topts.AntiAlias = opts.AntiAlias
	}
	target.DrawTriangles(l.vertices, l.indices, l.texture, topts)
}
