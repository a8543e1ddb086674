package render

import (
	"math"

	"tile-robot/internal/component"
	"tile-robot/internal/system"
)

// Viewport is the fixed-size canvas the camera projects onto. Canvas
// coordinates are in pixels; one tile is TilePixels wide at zoom 0.
type Viewport struct {
	TilePixels  int
	CanvasTiles int
}

// DefaultViewport is a 512px canvas of 64px tiles.
var DefaultViewport = Viewport{TilePixels: 64, CanvasTiles: 8}

// CanvasPixels is the width and height of the canvas.
func (v Viewport) CanvasPixels() int { return v.TilePixels * v.CanvasTiles }

// zoomLimit bounds the exponent used for geometry so pixel math stays finite.
// Camera state itself is never clamped.
const zoomLimit = 32

// TileSize is the on-canvas size of one tile: TilePixels * 2^zoom.
// Very negative zoom yields sub-pixel tiles.
func (v Viewport) TileSize(zoom int) float64 {
	zoom = min(max(zoom, -zoomLimit), zoomLimit)
	return math.Ldexp(float64(v.TilePixels), zoom)
}

// TileCount is ceil(CanvasPixels / TileSize(zoom)), kept within one tile and
// one tile per canvas pixel. With the default 512px canvas the cap applies
// from zoom -7 down, where the plain formula would give 1024 or more.
func (v Viewport) TileCount(zoom int) int {
	n := math.Ceil(float64(v.CanvasPixels()) / v.TileSize(zoom))
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if limit := float64(v.CanvasPixels()); n > limit {
		return int(limit)
	}
	return int(n)
}

// Visible returns the half-open tile rectangle [lo, hi) shown by cam.
func (v Viewport) Visible(cam system.Camera) (lo, hi component.Position) {
	n := v.TileCount(cam.Zoom)
	return cam.Offset, component.Position{X: cam.Offset.X + n, Y: cam.Offset.Y + n}
}

// CanvasToTile converts a canvas pixel to the tile under it. ok is false
// when the pixel lies outside the canvas.
func (v Viewport) CanvasToTile(cam system.Camera, px, py int) (p component.Position, ok bool) {
	size := v.CanvasPixels()
	if px < 0 || px >= size || py < 0 || py >= size {
		return component.Position{}, false
	}
	ts := v.TileSize(cam.Zoom)
	return component.Position{
		X: int(math.Floor(float64(px)/ts)) + cam.Offset.X,
		Y: int(math.Floor(float64(py)/ts)) + cam.Offset.Y,
	}, true
}

// TileToCanvas returns the canvas pixel of the top-left corner of tile p.
func (v Viewport) TileToCanvas(cam system.Camera, p component.Position) (px, py float64) {
	ts := v.TileSize(cam.Zoom)
	return float64(p.X-cam.Offset.X) * ts, float64(p.Y-cam.Offset.Y) * ts
}
