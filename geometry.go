package tilelayer

import (
	"image"

	"chosenoffset.com/tilelayer/render"
)

// quadOrder lists the corner of each emitted vertex: two triangles
// (top-left, top-right, bottom-left) and (bottom-left, top-right,
// bottom-right), six vertices per cell.
var quadOrder = [6]int{0, 1, 2, 2, 1, 3}

// appendGeometry appends vertices and indices for every non-empty cell of
// rect, in row-major order, and returns the extended slices. The caller
// guarantees a bound texture, a non-zero tile size, and that rect lies
// within the grid.
//
// Indices are sequential; they exist because indexed draw sinks (Ebiten)
// require them. They are 32-bit so that large builds, such as a full-layer
// export, are not limited to 65536 vertices.
func (l *Layer) appendGeometry(rect image.Rectangle, vertices []render.Vertex, indices []uint32) ([]render.Vertex, []uint32) {
	texW, texH := l.texture.Size()

	// Tileset layout: a uniform grid of tiles separated by spacing and
	// bordered by margin.
	columns := (texW - 2*l.margin.X + l.spacing.X) / (l.tileSize.X + l.spacing.X)
	rows := (texH - 2*l.margin.Y + l.spacing.Y) / (l.tileSize.Y + l.spacing.Y)
	if columns <= 0 || rows <= 0 {
		Logger().Warn("tileset smaller than one tile",
			"texture_width", texW, "texture_height", texH,
			"tile_width", l.tileSize.X, "tile_height", l.tileSize.Y)
		return vertices, indices
	}

	bs := l.BlockSize()

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := l.grid.at(x, y)
			if c.tile == NoTile {
				continue
			}

			col := c.tile % columns
			row := c.tile / columns
			if row >= rows {
				Logger().Warn("tile index out of range for tileset",
					"tile", c.tile, "x", x, "y", y, "columns", columns, "rows", rows)
				continue
			}

			// Destination quad in layer-local coordinates.
			x0 := float32(x) * bs.X()
			y0 := float32(y) * bs.Y()
			x1 := x0 + bs.X()
			y1 := y0 + bs.Y()
			dst := [4][2]float32{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}

			// Source rectangle in tileset pixels.
			sx := col*(l.tileSize.X+l.spacing.X) + l.margin.X
			sy := row*(l.tileSize.Y+l.spacing.Y) + l.margin.Y
			tc := l.texture.Coords(image.Rect(sx, sy, sx+l.tileSize.X, sy+l.tileSize.Y))

			src := [4][2]float32{
				{tc.U0, tc.V0},
				{tc.U1, tc.V0},
				{tc.U0, tc.V1},
				{tc.U1, tc.V1},
			}

			// The application order is fixed by the TMX format: diagonal
			// first, then horizontal, then vertical.
			if c.flip.Has(FlipDiagonal) {
				src[1], src[2] = src[2], src[1]
			}
			if c.flip.Has(FlipHorizontal) {
				src[0], src[1] = src[1], src[0]
				src[2], src[3] = src[3], src[2]
			}
			if c.flip.Has(FlipVertical) {
				src[0], src[2] = src[2], src[0]
				src[1], src[3] = src[3], src[1]
			}

			for _, i := range quadOrder {
				indices = append(indices, uint32(len(vertices)))
				vertices = append(vertices, render.Vertex{
					DstX:   dst[i][0],
					DstY:   dst[i][1],
					SrcX:   src[i][0],
					SrcY:   src[i][1],
					ColorR: 1,
					ColorG: 1,
					ColorB: 1,
					ColorA: 1,
				})
			}
		}
	}
	return vertices, indices
}

// rebuild regenerates the cached geometry for the current cached rectangle.
// With no texture or a zero tile size the cache is left empty.
func (l *Layer) rebuild() {
	l.vertices = l.vertices[:0]
	l.indices = l.indices[:0]

	if l.texture == nil || l.tileSize.X == 0 || l.tileSize.Y == 0 {
		return
	}
	l.vertices, l.indices = l.appendGeometry(l.rect, l.vertices, l.indices)
}

// FullGeometry builds geometry covering the whole layer, bypassing the
// visibility cache. It is a one-shot export for callers that want to bake
// the layer into a static buffer; nil slices are returned while the layer
// is inert (no texture or zero tile size).
func (l *Layer) FullGeometry() ([]render.Vertex, []uint32) {
	if l.texture == nil || l.tileSize.X == 0 || l.tileSize.Y == 0 {
		return nil, nil
	}
	return l.appendGeometry(image.Rect(0, 0, l.width, l.height), nil, nil)
}
