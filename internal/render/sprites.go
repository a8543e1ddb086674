package render

import (
	"tile-robot/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Sprite is how one kind of tile is drawn. Higher Order draws on top.
type Sprite struct {
	Glyph string
	FG    tcell.Color
	Order int
}

// background is the sprite name of the empty ground.
const background = "sand"

// defaultSprites maps sprite names to glyphs. Entity sprites are keyed by
// component.Kind names.
var defaultSprites = map[string]Sprite{
	background: {Glyph: "🟫", FG: tcell.ColorTan},
	"spawn":    {Glyph: "🌀", FG: tcell.ColorAqua, Order: 1},
	"dead":     {Glyph: "💀", FG: tcell.ColorGray, Order: 2},
	"battery":  {Glyph: "🔋", FG: tcell.ColorGreen, Order: 3},
	"glitch":   {Glyph: "👾", FG: tcell.ColorFuchsia, Order: 4},
	"robot":    {Glyph: "🤖", FG: tcell.ColorYellow, Order: 10},
}

// loadSprites returns a private copy of the sprite table for one renderer.
func loadSprites() map[string]Sprite {
	out := make(map[string]Sprite, len(defaultSprites))
	for name, s := range defaultSprites {
		out[name] = s
	}
	return out
}

// spriteFor returns the sprite for kind k, falling back to a '?' glyph.
func (r *Renderer) spriteFor(k component.Kind) Sprite {
	if s, ok := r.sprites[k.String()]; ok {
		return s
	}
	return Sprite{Glyph: "?", FG: tcell.ColorRed}
}
