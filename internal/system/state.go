package system

import (
	"time"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
	"tile-robot/internal/factory"
)

// Camera is the viewport onto the grid. Neither field is clamped here;
// the renderer decides what a given zoom level looks like.
type Camera struct {
	Offset component.Position
	Zoom   int
}

// State is the whole simulation: the entity store and the camera.
type State struct {
	Items  ecs.Store
	Camera Camera
}

// Rules are the per-session constants the reducer needs. Spawn is only
// read by NewState; respawn uses the spawn entity in the store.
type Rules struct {
	StartEnergy int
	GlitchDelay time.Duration
	Spawn       component.Position
}

// DefaultRules matches the stock game: 10 energy per robot, bodies decay
// after 3s, spawn at the origin.
func DefaultRules() Rules {
	return Rules{
		StartEnergy: 10,
		GlitchDelay: 3000 * time.Millisecond,
	}
}

// NewState returns a fresh simulation with a spawn point and robot at r.Spawn.
func (r Rules) NewState() State {
	return State{Items: factory.NewWorld(r.Spawn, r.StartEnergy)}
}

// Robot returns the current robot, if any.
func (s State) Robot() (ecs.Item, bool) {
	return s.Items.Find(ecs.OfKind(component.KindRobot))
}
