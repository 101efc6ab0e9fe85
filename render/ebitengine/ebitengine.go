// Package ebitengine implements the render interfaces on top of Ebiten.
package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/tilelayer/geom"
	"chosenoffset.com/tilelayer/render"
)

// Target wraps an ebiten.Image as a render.Target.
type Target struct {
	img *ebiten.Image
}

// NewTarget wraps an existing ebiten.Image as a draw target.
func NewTarget(img *ebiten.Image) *Target {
	return &Target{img: img}
}

// DrawTriangles converts the vertices to ebiten.Vertex, baking the transform
// into the destination coordinates since Ebiten's triangle call takes none.
func (t *Target) DrawTriangles(vertices []render.Vertex, indices []uint32, texture render.Texture, opts *render.DrawTrianglesOptions) {
	if len(vertices) == 0 {
		return
	}

	ev := make([]ebiten.Vertex, len(vertices))
	for i, v := range vertices {
		x, y := v.DstX, v.DstY
		if opts != nil && opts.Transform != nil {
			p := geom.Apply(*opts.Transform, geom.Vec2{x, y})
			x, y = p.X(), p.Y()
		}
		ev[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   v.SrcX,
			SrcY:   v.SrcY,
			ColorR: v.ColorR,
			ColorG: v.ColorG,
			ColorB: v.ColorB,
			ColorA: v.ColorA,
		}
	}

	src := texture.(*Texture).img

	var eopts *ebiten.DrawTrianglesOptions
	if opts != nil {
		eopts = &ebiten.DrawTrianglesOptions{AntiAlias: opts.AntiAlias}
	}
	t.img.DrawTriangles32(ev, indices, src, eopts)
}

// Texture wraps an ebiten.Image as a render.Texture. Ebiten samples source
// images in texels, so Coords returns pixel corners, offset by the image
// origin so sub-images work too.
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps an existing ebiten.Image as a tileset texture. The
// wrapper does not own the image.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Size returns the image dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Coords converts a pixel rectangle into texel sampling coordinates.
func (t *Texture) Coords(r image.Rectangle) render.TexRect {
	o := t.img.Bounds().Min
	return render.TexRect{
		U0: float32(o.X + r.Min.X),
		V0: float32(o.Y + r.Min.Y),
		U1: float32(o.X + r.Max.X),
		V1: float32(o.Y + r.Max.Y),
	}
}

// Image returns the underlying ebiten.Image, for interop with
// ebiten-specific code.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}
