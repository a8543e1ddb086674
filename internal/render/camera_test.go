package render

import (
	"testing"

	"tile-robot/internal/component"
	"tile-robot/internal/system"
)

func TestTileSizeDoublesPerZoom(t *testing.T) {
	v := DefaultViewport
	cases := []struct {
		zoom int
		want float64
	}{
		{0, 64},
		{1, 128},
		{3, 512},
		{-1, 32},
		{-6, 1},
		{-7, 0.5},
	}
	for _, tc := range cases {
		if got := v.TileSize(tc.zoom); got != tc.want {
			t.Errorf("TileSize(%d) = %v; want %v", tc.zoom, got, tc.want)
		}
	}
}

func TestTileCount(t *testing.T) {
	v := DefaultViewport
	cases := []struct {
		zoom int
		want int
	}{
		{0, 8},
		{1, 4},
		{2, 2},
		{3, 1},
		{10, 1},
		{-1, 16},
		{-6, 512},
		{-7, 512}, // ceil(512/0.5) would be 1024
		{-20, 512}, // capped at one tile per pixel
		{-1000, 512},
	}
	for _, tc := range cases {
		if got := v.TileCount(tc.zoom); got != tc.want {
			t.Errorf("TileCount(%d) = %d; want %d", tc.zoom, got, tc.want)
		}
	}
}

func TestTileCountRoundsUp(t *testing.T) {
	v := Viewport{TilePixels: 64, CanvasTiles: 5}
	// 320px canvas / 128px tiles = 2.5 -> 3
	if got := v.TileCount(1); got != 3 {
		t.Fatalf("TileCount(1) = %d; want 3", got)
	}
}

func TestCanvasToTile(t *testing.T) {
	v := DefaultViewport
	cam := system.Camera{Offset: component.Position{X: 10, Y: -4}}

	cases := []struct {
		name   string
		zoom   int
		px, py int
		want   component.Position
		ok     bool
	}{
		{"origin", 0, 0, 0, component.Position{X: 10, Y: -4}, true},
		{"inside second tile", 0, 65, 130, component.Position{X: 11, Y: -2}, true},
		{"last pixel", 0, 511, 511, component.Position{X: 17, Y: 3}, true},
		{"zoomed in", 1, 200, 0, component.Position{X: 11, Y: -4}, true},
		{"zoomed out", -1, 40, 0, component.Position{X: 11, Y: -4}, true},
		{"left of canvas", 0, -1, 0, component.Position{}, false},
		{"below canvas", 0, 0, 512, component.Position{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam.Zoom = tc.zoom
			got, ok := v.CanvasToTile(cam, tc.px, tc.py)
			if ok != tc.ok || got != tc.want {
				t.Errorf("CanvasToTile(%d,%d) = %v,%v; want %v,%v", tc.px, tc.py, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestVisibleWindow(t *testing.T) {
	cam := system.Camera{Offset: component.Position{X: -3, Y: 2}, Zoom: 1}
	lo, hi := DefaultViewport.Visible(cam)
	if lo != cam.Offset {
		t.Errorf("lo = %v; want %v", lo, cam.Offset)
	}
	if hi != (component.Position{X: 1, Y: 6}) {
		t.Errorf("hi = %v; want (1,6)", hi)
	}
}

func TestCellSpan(t *testing.T) {
	cases := []struct {
		name        string
		start, size float64
		first, last int
	}{
		{"one tile one cell", 64, 64, 1, 2},
		{"zoomed in block", 0, 256, 0, 4},
		{"sub-cell tile", 70, 8, 1, 2},
		{"clipped at edge", 448, 256, 7, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := cellSpan(tc.start, tc.size, 64, 8)
			if first != tc.first || last != tc.last {
				t.Errorf("cellSpan = [%d,%d); want [%d,%d)", first, last, tc.first, tc.last)
			}
		})
	}
}
