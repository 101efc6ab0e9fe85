// Package render defines the boundary between the tile layer and the
// graphics backend that executes its draw calls. This allows swapping
// rendering backends without changing the geometry code, and lets tests
// verify geometry without a GPU.
package render

import (
	"image"

	"chosenoffset.com/tilelayer/geom"
)

// Vertex is one corner of a textured triangle. Dst is the destination
// position in layer-local coordinates before the draw transform is applied;
// Src is a sampling coordinate in the units the paired Target consumes.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// TexRect holds the sampling coordinates of a pixel rectangle's corners:
// (U0, V0) is the top-left corner, (U1, V1) the bottom-right.
type TexRect struct {
	U0, V0 float32
	U1, V1 float32
}

// Texture is a non-owning handle to a tileset image. The caller keeps the
// underlying image alive for as long as the texture is in use.
type Texture interface {
	// Size returns the image dimensions in pixels.
	Size() (width, height int)

	// Coords converts a pixel rectangle within the image into the sampling
	// coordinates used by Vertex.SrcX/SrcY. The unit is backend-defined:
	// texels for Ebiten, normalized UVs for a GL-style backend.
	Coords(r image.Rectangle) TexRect
}

// DrawTrianglesOptions contains options for Target.DrawTriangles.
type DrawTrianglesOptions struct {
	// Transform is applied to vertex destination coordinates before
	// rasterization. Nil means identity.
	Transform *geom.Mat3

	AntiAlias bool
}

// Target is a surface that can execute a triangle draw call. It is
// fire-and-forget: the layer observes no result. Indices are 32-bit so a
// single call can carry more than 65536 vertices.
type Target interface {
	DrawTriangles(vertices []Vertex, indices []uint32, texture Texture, opts *DrawTrianglesOptions)
}
