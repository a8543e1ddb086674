package render

import (
	"math"
	"sort"

	"tile-robot/internal/ecs"
	"tile-robot/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws simulation state onto a tcell screen. The canvas occupies
// the top-left corner: one terminal row per TilePixels of canvas height and
// two columns per TilePixels of width, since emoji are two columns wide.
type Renderer struct {
	screen  tcell.Screen
	view    Viewport
	sprites map[string]Sprite
}

// NewRenderer creates a Renderer for the given screen and canvas.
func NewRenderer(screen tcell.Screen, view Viewport) *Renderer {
	return &Renderer{
		screen:  screen,
		view:    view,
		sprites: loadSprites(),
	}
}

// canvasRows is the canvas height in terminal rows; the width is twice that in columns.
func (r *Renderer) canvasRows() int { return r.view.CanvasTiles }

// ScreenToTile converts a terminal cell inside the canvas to a grid tile.
func (r *Renderer) ScreenToTile(cam system.Camera, col, row int) (x, y int, ok bool) {
	if col < 0 || row < 0 || col >= 2*r.canvasRows() || row >= r.canvasRows() {
		return 0, 0, false
	}
	p, ok := r.view.CanvasToTile(cam, (col/2)*r.view.TilePixels, row*r.view.TilePixels)
	return p.X, p.Y, ok
}

// DrawFrame renders the ground and every entity inside the camera window.
func (r *Renderer) DrawFrame(s system.State) {
	r.screen.Clear()
	r.drawBackground()
	r.drawEntities(s)
}

func (r *Renderer) drawBackground() {
	sand := r.sprites[background]
	style := tcell.StyleDefault.Foreground(sand.FG).Background(tcell.ColorBlack)
	for row := 0; row < r.canvasRows(); row++ {
		for cell := 0; cell < r.canvasRows(); cell++ {
			r.putGlyph(cell*2, row, sand.Glyph, style)
		}
	}
}

type drawable struct {
	item   ecs.Item
	sprite Sprite
}

// drawEntities paints visible entities in ascending sprite order. When zoomed
// out past one tile per cell, the highest-order entity in a cell wins.
func (r *Renderer) drawEntities(s system.State) {
	lo, hi := r.view.Visible(s.Camera)
	items := s.Items.Filter(ecs.Within(lo, hi))

	list := make([]drawable, 0, len(items))
	for _, it := range items {
		list = append(list, drawable{item: it, sprite: r.spriteFor(it.Kind)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].sprite.Order < list[j].sprite.Order
	})

	ts := r.view.TileSize(s.Camera.Zoom)
	tp := float64(r.view.TilePixels)
	n := r.canvasRows()
	for _, d := range list {
		px, py := r.view.TileToCanvas(s.Camera, d.item.Pos)
		c0, c1 := cellSpan(px, ts, tp, n)
		r0, r1 := cellSpan(py, ts, tp, n)
		style := tcell.StyleDefault.Foreground(d.sprite.FG).Background(tcell.ColorBlack)
		for row := r0; row < r1; row++ {
			for cell := c0; cell < c1; cell++ {
				r.putGlyph(cell*2, row, d.sprite.Glyph, style)
			}
		}
	}
}

// cellSpan maps the canvas interval [start, start+size) to the half-open
// range of cells it touches, clipped to [0, n). It always covers one cell
// when the interval starts on the canvas.
func cellSpan(start, size, cellPixels float64, n int) (int, int) {
	first := math.Max(math.Floor(start/cellPixels), 0)
	last := math.Min(math.Ceil((start+size)/cellPixels), float64(n))
	if last <= first && first < float64(n) {
		last = first + 1
	}
	return int(first), int(last)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 1 {
		// Pad narrow glyphs so every tile is two columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
