package ecs

import "tile-robot/internal/component"

// EntityID identifies an entity within one Store. IDs start at 0 and are
// never reused by the store that allocated them.
type EntityID int

// Entity is the data stored under an id. It has no identity of its own.
type Entity struct {
	Kind component.Kind
	Pos  component.Position
	// Energy is meaningful for robots; dead bodies and batteries carry the
	// value the robot had when it died.
	Energy int
}

// Item is an Entity together with the id the store assigned to it.
type Item struct {
	ID EntityID
	Entity
}
