// Package placeholders generates simple tileset images so the demo and
// visual debugging need no binary assets.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
)

// Palette is the set of fill colors cycled across generated tiles.
var Palette = []color.RGBA{
	{80, 85, 95, 255},    // gray-blue
	{140, 145, 155, 255}, // light metal
	{139, 90, 60, 255},   // brown
	{0, 150, 200, 255},   // cyan
	{200, 150, 0, 255},   // gold
	{0, 255, 100, 255},   // green
	{255, 50, 50, 255},   // red
	{255, 215, 0, 255},   // yellow
}

var (
	background = color.RGBA{40, 40, 45, 255}
	border     = color.RGBA{200, 200, 200, 255}
	marker     = color.RGBA{20, 20, 25, 255}
)

// Tileset renders a columns x rows grid of bordered tiles with the given
// tile size, margin and spacing, matching the atlas layout parameters the
// layer uses for its lookup math. Each tile carries a dark marker in its
// top-left corner so flips are visible on screen.
func Tileset(columns, rows, tileSize, margin, spacing int) *image.RGBA {
	w := 2*margin + columns*tileSize + (columns-1)*spacing
	h := 2*margin + rows*tileSize + (rows-1)*spacing

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			x := margin + col*(tileSize+spacing)
			y := margin + row*(tileSize+spacing)
			fill := Palette[(row*columns+col)%len(Palette)]
			drawTile(img, image.Rect(x, y, x+tileSize, y+tileSize), fill)
		}
	}
	return img
}

func drawTile(img *image.RGBA, r image.Rectangle, fill color.RGBA) {
	draw.Draw(img, r, &image.Uniform{border}, image.Point{}, draw.Src)
	draw.Draw(img, r.Inset(1), &image.Uniform{fill}, image.Point{}, draw.Src)

	q := r.Dx() / 4
	mark := image.Rect(r.Min.X+2, r.Min.Y+2, r.Min.X+2+q, r.Min.Y+2+q)
	draw.Draw(img, mark, &image.Uniform{marker}, image.Point{}, draw.Src)
}
