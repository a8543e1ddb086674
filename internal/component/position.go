package component

import "fmt"

// Position is a cell on the unbounded tile grid.
type Position struct {
	X, Y int
}

// Add returns p translated by one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
