// Package tilelayer renders large 2D tile grids through a camera. It culls
// the grid against the current view, builds triangle geometry for the
// visible cells only, and caches that geometry until the visible cell
// rectangle changes.
//
// A layer references a single tileset texture laid out as a uniform grid of
// tiles, addressed by tile size, margin and spacing. Each cell selects a
// tile by linear index and may flip its texture coordinates horizontally,
// vertically or diagonally, with the same semantics as the TMX map format.
package tilelayer

import (
	"fmt"
	"image"

	"chosenoffset.com/tilelayer/geom"
	"chosenoffset.com/tilelayer/render"
)

// Layer is a drawable grid of tiles backed by one tileset texture.
//
// A Layer is not safe for concurrent use: callers must serialize tile edits
// against drawing. The texture is a non-owning reference; the caller keeps
// it alive for as long as the layer uses it, and the layer degrades to an
// inert no-op while none is bound.
type Layer struct {
	Transformable

	width  int
	height int
	grid   *grid

	texture   render.Texture
	tileSize  image.Point
	margin    image.Point
	spacing   image.Point
	blockSize geom.Vec2

	// geometry cache, keyed on the visible cell rectangle
	rect     image.Rectangle
	vertices []render.Vertex
	indices  []uint32
}

// NewLayer creates an empty layer of width x height cells. Every cell starts
// as NoTile.
func NewLayer(width, height int) *Layer {
	return &Layer{
		width:  width,
		height: height,
		grid:   newGrid(width, height),
	}
}

// Size returns the layer dimensions in cells.
func (l *Layer) Size() (width, height int) {
	return l.width, l.height
}

// SetTexture binds the tileset texture. The layer does not own it.
//
// Like tile edits, swapping textures does not rebuild cached geometry by
// itself; call Invalidate if the new texture has a different layout and the
// change must show before the camera moves.
func (l *Layer) SetTexture(t render.Texture) {
	l.texture = t
}

// UnsetTexture removes the texture reference. The layer stops drawing until
// a new one is bound.
func (l *Layer) UnsetTexture() {
	l.texture = nil
}

// SetTileSize sets the pixel size of one tile in the tileset.
func (l *Layer) SetTileSize(w, h int) {
	l.tileSize = image.Point{X: w, Y: h}
}

// SetMargin sets the pixel border around the tileset's tile grid.
func (l *Layer) SetMargin(w, h int) {
	l.margin = image.Point{X: w, Y: h}
}

// SetSpacing sets the pixel gap between adjacent tiles in the tileset.
func (l *Layer) SetSpacing(w, h int) {
	l.spacing = image.Point{X: w, Y: h}
}

// SetBlockSize sets the world-space footprint of one cell. It is
// independent of the tile size: block size governs placement, tile size
// governs where to sample in the tileset.
func (l *Layer) SetBlockSize(w, h float32) {
	l.blockSize = geom.Vec2{w, h}
}

// BlockSize returns the world-space footprint of one cell, falling back to
// the tile size while no block size is set.
func (l *Layer) BlockSize() geom.Vec2 {
	if l.blockSize == (geom.Vec2{}) {
		return geom.Vec2{float32(l.tileSize.X), float32(l.tileSize.Y)}
	}
	return l.blockSize
}

// SetTile sets the tile index and flip of the cell at (x, y). The index is
// not validated against the tileset here; an index past the tileset is
// caught at geometry-build time.
func (l *Layer) SetTile(x, y int, tile int, flip Flip) error {
	if !l.grid.contains(x, y) {
		return fmt.Errorf("cell (%d, %d) out of bounds for %dx%d layer", x, y, l.width, l.height)
	}
	if tile < NoTile {
		return fmt.Errorf("invalid tile index %d", tile)
	}
	l.grid.set(x, y, cell{tile: tile, flip: flip})
	return nil
}

// Tile returns the tile index of the cell at (x, y).
func (l *Layer) Tile(x, y int) (int, error) {
	if !l.grid.contains(x, y) {
		return NoTile, fmt.Errorf("cell (%d, %d) out of bounds for %dx%d layer", x, y, l.width, l.height)
	}
	return l.grid.at(x, y).tile, nil
}

// TileFlip returns the flip flags of the cell at (x, y).
func (l *Layer) TileFlip(x, y int) (Flip, error) {
	if !l.grid.contains(x, y) {
		return FlipNone, fmt.Errorf("cell (%d, %d) out of bounds for %dx%d layer", x, y, l.width, l.height)
	}
	return l.grid.at(x, y).flip, nil
}

// Clear resets every cell to NoTile with no flip.
//
// Clear does not invalidate cached geometry: the cache is keyed on the
// visible rectangle, not on content. Call Invalidate after edits that must
// show before the camera moves.
func (l *Layer) Clear() {
	l.grid.reset()
}

// Invalidate drops the cached geometry so the next draw rebuilds it. Needed
// after tile edits inside the currently visible rectangle, which the
// rectangle-keyed cache cannot detect on its own.
func (l *Layer) Invalidate() {
	l.rect = image.Rectangle{}
	l.vertices = l.vertices[:0]
	l.indices = l.indices[:0]
}

// LocalBounds returns the rectangle covered by the layer in local
// coordinates, before any placement transform.
func (l *Layer) LocalBounds() geom.Rect {
	bs := l.BlockSize()
	return geom.Rect{Size: geom.Vec2{float32(l.width) * bs.X(), float32(l.height) * bs.Y()}}
}

// SetAnchor places the origin at the given anchor point of the local bounds.
func (l *Layer) SetAnchor(a Anchor) {
	b := l.LocalBounds()
	fx := float32(int(a)%3) * 0.5
	fy := float32(int(a)/3) * 0.5
	l.SetOrigin(geom.Vec2{fx * b.Size.X(), fy * b.Size.Y()})
}
