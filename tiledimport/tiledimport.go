// Package tiledimport populates tile layers from parsed Tiled (TMX) maps.
// It sits on the asset-loading side of the layer boundary: it fills the
// grid and the tileset layout parameters, while texture loading stays with
// the rendering backend.
package tiledimport

import (
	"fmt"

	"github.com/lafriks/go-tiled"

	"chosenoffset.com/tilelayer"
)

// Layer converts one tile layer of m into a tilelayer.Layer configured for
// the map's tileset. The map must use exactly one tileset; a layer cannot
// sample from several tilesets. The returned layer has no texture bound.
func Layer(m *tiled.Map, layerIndex int) (*tilelayer.Layer, error) {
	if layerIndex < 0 || layerIndex >= len(m.Layers) {
		return nil, fmt.Errorf("layer index %d out of range, map has %d layers", layerIndex, len(m.Layers))
	}
	if len(m.Tilesets) != 1 {
		return nil, fmt.Errorf("map uses %d tilesets, want exactly 1", len(m.Tilesets))
	}

	ts := m.Tilesets[0]
	src := m.Layers[layerIndex]

	l := tilelayer.NewLayer(m.Width, m.Height)
	l.SetTileSize(ts.TileWidth, ts.TileHeight)
	l.SetMargin(ts.Margin, ts.Margin)
	l.SetSpacing(ts.Spacing, ts.Spacing)

	for i, t := range src.Tiles {
		if t == nil || t.Nil {
			continue
		}

		var flip tilelayer.Flip
		if t.HorizontalFlip {
			flip |= tilelayer.FlipHorizontal
		}
		if t.VerticalFlip {
			flip |= tilelayer.FlipVertical
		}
		if t.DiagonalFlip {
			flip |= tilelayer.FlipDiagonal
		}

		if err := l.SetTile(i%m.Width, i/m.Width, int(t.ID), flip); err != nil {
			return nil, fmt.Errorf("layer %d tile %d: %w", layerIndex, i, err)
		}
	}
	return l, nil
}
