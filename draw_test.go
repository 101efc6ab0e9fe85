package tilelayer

import (
	"testing"

	"chosenoffset.com/tilelayer/geom"
	"chosenoffset.com/tilelayer/render"
)

// fullLayer builds an 8x8 layer with every cell set, over a counting stub
// texture sized for 16 tiles of 32x32.
func fullLayer(t *testing.T) (*Layer, *stubTexture) {
	t.Helper()

	tex := &stubTexture{width: 128, height: 128}
	l := NewLayer(8, 8)
	l.SetTexture(tex)
	l.SetTileSize(32, 32)
	l.SetBlockSize(16, 16)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if err := l.SetTile(x, y, (x+y)%16, FlipNone); err != nil {
				t.Fatalf("SetTile failed: %v", err)
			}
		}
	}
	return l, tex
}

func TestDrawWithoutTextureIsInert(t *testing.T) {
	l := NewLayer(4, 4)
	l.SetTileSize(32, 32)
	if err := l.SetTile(0, 0, 0, FlipNone); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}

	target := &stubTarget{}
	l.Draw(target, View{Center: geom.Vec2{32, 32}, Size: geom.Vec2{64, 64}}, nil)

	if target.draws != 0 {
		t.Errorf("Expected no draw call without a texture, got %d", target.draws)
	}
}

func TestDrawOffLayerDelegatesEmptyGeometry(t *testing.T) {
	l, _ := fullLayer(t)

	target := &stubTarget{}
	l.Draw(target, View{Center: geom.Vec2{10000, 10000}, Size: geom.Vec2{64, 64}}, nil)

	if target.draws != 1 {
		t.Fatalf("Expected the draw to be delegated, got %d calls", target.draws)
	}
	if len(target.vertices) != 0 {
		t.Errorf("Expected zero-length geometry off layer, got %d vertices", len(target.vertices))
	}
}

func TestDrawReusesCacheForUnchangedView(t *testing.T) {
	l, tex := fullLayer(t)
	target := &stubTarget{}
	view := View{Center: geom.Vec2{64, 64}, Size: geom.Vec2{32, 32}}

	l.Draw(target, view, nil)
	built := tex.coordsCalls
	if built == 0 {
		t.Fatal("Expected the first draw to build geometry")
	}
	first := append([]render.Vertex(nil), target.vertices...)

	l.Draw(target, view, nil)
	if tex.coordsCalls != built {
		t.Errorf("Expected no rebuild on the second draw, got %d extra lookups", tex.coordsCalls-built)
	}
	if target.draws != 2 {
		t.Errorf("Expected 2 delegated draws, got %d", target.draws)
	}
	if len(target.vertices) != len(first) {
		t.Fatalf("Expected identical geometry, got %d vs %d vertices", len(target.vertices), len(first))
	}
	for i := range first {
		if target.vertices[i] != first[i] {
			t.Fatalf("Vertex %d changed between identical draws", i)
		}
	}
}

func TestDrawCameraJitterKeepsCache(t *testing.T) {
	l, tex := fullLayer(t)
	target := &stubTarget{}

	l.Draw(target, View{Center: geom.Vec2{64, 64}, Size: geom.Vec2{32, 32}}, nil)
	built := tex.coordsCalls

	// One pixel of camera jitter lands in the same cell rectangle.
	l.Draw(target, View{Center: geom.Vec2{65, 65}, Size: geom.Vec2{32, 32}}, nil)
	if tex.coordsCalls != built {
		t.Errorf("Expected jitter within the same cells to reuse the cache, got %d extra lookups", tex.coordsCalls-built)
	}

	// A full block of movement changes the rectangle and must rebuild.
	l.Draw(target, View{Center: geom.Vec2{80, 80}, Size: geom.Vec2{32, 32}}, nil)
	if tex.coordsCalls == built {
		t.Error("Expected a view change spanning cells to rebuild geometry")
	}
}

func TestDrawStaleAfterEditUntilInvalidate(t *testing.T) {
	l, _ := fullLayer(t)
	target := &stubTarget{}
	view := View{Center: geom.Vec2{64, 64}, Size: geom.Vec2{160, 160}}

	l.Draw(target, view, nil)
	before := len(target.vertices)
	if before == 0 {
		t.Fatal("Expected geometry on the first draw")
	}

	// Emptying a visible cell does not rebuild by itself: the cache is
	// keyed on the rectangle, not on content.
	if err := l.SetTile(4, 4, NoTile, FlipNone); err != nil {
		t.Fatalf("SetTile failed: %v", err)
	}
	l.Draw(target, view, nil)
	if len(target.vertices) != before {
		t.Errorf("Expected stale geometry without Invalidate, got %d vs %d vertices", len(target.vertices), before)
	}

	l.Invalidate()
	l.Draw(target, view, nil)
	if len(target.vertices) != before-6 {
		t.Errorf("Expected %d vertices after Invalidate, got %d", before-6, len(target.vertices))
	}
}

func TestSetTextureKeepsCacheUntilInvalidate(t *testing.T) {
	l, _ := fullLayer(t)
	target := &stubTarget{}
	view := View{Center: geom.Vec2{64, 64}, Size: geom.Vec2{32, 32}}

	l.Draw(target, view, nil)

	// A texture swap alone leaves the cached source coordinates of the old
	// texture in place while the rectangle is unchanged.
	swapped := &stubTexture{width: 128, height: 128}
	l.SetTexture(swapped)
	l.Draw(target, view, nil)
	if swapped.coordsCalls != 0 {
		t.Errorf("Expected no rebuild after a bare texture swap, got %d lookups", swapped.coordsCalls)
	}

	l.Invalidate()
	l.Draw(target, view, nil)
	if swapped.coordsCalls == 0 {
		t.Error("Expected Invalidate to rebuild against the new texture")
	}
}

func TestDrawComposesCallerTransform(t *testing.T) {
	l, _ := fullLayer(t)
	l.SetPosition(10, 0)

	target := &stubTarget{}
	cam := geom.Translation(geom.Vec2{5, 0})
	l.Draw(target, View{Center: geom.Vec2{64, 64}, Size: geom.Vec2{32, 32}}, &DrawOptions{Transform: &cam})

	if target.opts == nil || target.opts.Transform == nil {
		t.Fatal("Expected a transform to reach the draw sink")
	}
	// Caller transform is applied on top of the layer placement.
	p := geom.Apply(*target.opts.Transform, geom.Vec2{0, 0})
	if p != (geom.Vec2{15, 0}) {
		t.Errorf("Expected local origin to map to (15, 0), got %v", p)
	}
}
