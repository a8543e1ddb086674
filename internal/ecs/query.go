package ecs

import "tile-robot/internal/component"

// OfKind matches items of kind k.
func OfKind(k component.Kind) func(Item) bool {
	return func(it Item) bool { return it.Kind == k }
}

// At matches items located exactly at p.
func At(p component.Position) func(Item) bool {
	return func(it Item) bool { return it.Pos == p }
}

// Within matches items inside the half-open rectangle [min, max).
func Within(min, max component.Position) func(Item) bool {
	return func(it Item) bool {
		return it.Pos.X >= min.X && it.Pos.X < max.X &&
			it.Pos.Y >= min.Y && it.Pos.Y < max.Y
	}
}
