// Command tileviewer displays a tile layer with a scrollable, rotatable
// camera. With no arguments it generates a procedural map and placeholder
// tileset; given a TMX file it displays that map's first tile layer.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"

	"chosenoffset.com/tilelayer"
	"chosenoffset.com/tilelayer/geom"
	"chosenoffset.com/tilelayer/internal/placeholders"
	"chosenoffset.com/tilelayer/render/ebitengine"
	"chosenoffset.com/tilelayer/tiledimport"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	layerWidth  = 200
	layerHeight = 200
	tileSize    = 32
	margin      = 2
	spacing     = 2

	tilesetColumns = 8
	tilesetRows    = 8
)

type viewer struct {
	layer *tilelayer.Layer
	view  tilelayer.View
	angle float32
}

func (v *viewer) Update() error {
	const panSpeed = 8
	const rotSpeed = 0.02

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.view.Center[0] -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.view.Center[0] += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.view.Center[1] -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.view.Center[1] += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		v.angle -= rotSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		v.angle += rotSpeed
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	// World-to-screen camera: center the view, then rotate around it.
	cam := geom.Translation(geom.Vec2{screenWidth / 2, screenHeight / 2}).
		Mul3(geom.Rotation(v.angle)).
		Mul3(geom.Translation(v.view.Center.Mul(-1)))

	v.layer.Draw(ebitengine.NewTarget(screen), v.view, &tilelayer.DrawOptions{Transform: &cam})

	ebitenutil.DebugPrint(screen, "arrows: pan  Q/E: rotate")
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var layer *tilelayer.Layer
	var err error

	if len(os.Args) > 1 {
		layer, err = loadTiledLayer(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load map %s: %v", os.Args[1], err)
		}
	} else {
		log.Println("No map given, generating a procedural layer...")
		layer = proceduralLayer()
	}

	w, h := layer.Size()
	bs := layer.BlockSize()
	v := &viewer{
		layer: layer,
		view: tilelayer.View{
			Center: geom.Vec2{float32(w) * bs.X() / 2, float32(h) * bs.Y() / 2},
			Size:   geom.Vec2{screenWidth, screenHeight},
		},
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tileviewer")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// proceduralLayer builds a layer over a generated placeholder tileset, with
// random tiles, random flips, and holes so empty cells are visible.
func proceduralLayer() *tilelayer.Layer {
	img := placeholders.Tileset(tilesetColumns, tilesetRows, tileSize, margin, spacing)

	layer := tilelayer.NewLayer(layerWidth, layerHeight)
	layer.SetTexture(ebitengine.NewTexture(ebiten.NewImageFromImage(img)))
	layer.SetTileSize(tileSize, tileSize)
	layer.SetMargin(margin, margin)
	layer.SetSpacing(spacing, spacing)

	rng := rand.New(rand.NewSource(1))
	for y := 0; y < layerHeight; y++ {
		for x := 0; x < layerWidth; x++ {
			if rng.Intn(8) == 0 {
				continue
			}
			tile := rng.Intn(tilesetColumns * tilesetRows)
			flip := tilelayer.Flip(rng.Intn(8))
			if err := layer.SetTile(x, y, tile, flip); err != nil {
				log.Fatalf("Failed to set tile (%d, %d): %v", x, y, err)
			}
		}
	}
	return layer
}

// loadTiledLayer parses a TMX map and returns its first tile layer with the
// tileset image bound.
func loadTiledLayer(path string) (*tilelayer.Layer, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}

	layer, err := tiledimport.Layer(m, 0)
	if err != nil {
		return nil, err
	}

	ts := m.Tilesets[0]
	if ts.Image == nil {
		return nil, fmt.Errorf("tileset %q has no image", ts.Name)
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(filepath.Dir(path), ts.Image.Source))
	if err != nil {
		return nil, fmt.Errorf("load tileset image: %w", err)
	}
	layer.SetTexture(ebitengine.NewTexture(img))

	return layer, nil
}
