package tilelayer

// NoTile marks a cell with nothing to draw.
const NoTile = -1

// Flip is a bit-set of texture-coordinate flips applied to a single tile,
// following the TMX tile-flipping semantics.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota
	FlipVertical
	FlipDiagonal
)

// FlipNone is the zero Flip: the tile is drawn as stored in the tileset.
const FlipNone Flip = 0

// Has reports whether f contains flag.
func (f Flip) Has(flag Flip) bool {
	return f&flag != 0
}

// cell is one grid position: which tile to draw and how to flip it.
type cell struct {
	tile int
	flip Flip
}

// grid is a fixed-size 2D array of cells in row-major order.
type grid struct {
	width  int
	height int
	cells  []cell
}

func newGrid(width, height int) *grid {
	g := &grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	g.reset()
	return g
}

func (g *grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// at returns the cell at (x, y) without bounds checking. The geometry loop
// stays within the culled rectangle, which is clamped to the grid.
func (g *grid) at(x, y int) cell {
	return g.cells[y*g.width+x]
}

func (g *grid) set(x, y int, c cell) {
	g.cells[y*g.width+x] = c
}

func (g *grid) reset() {
	for i := range g.cells {
		g.cells[i] = cell{tile: NoTile, flip: FlipNone}
	}
}
