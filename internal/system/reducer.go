package system

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction means the input layer asked for an action the reducer
	// does not have. It is a wiring bug, never a player-reachable state.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidArgs means a known action was dispatched with arguments of
	// the wrong count or type.
	ErrInvalidArgs = errors.New("invalid action arguments")
	// ErrNoSpawn means respawn was requested in a world without a spawn point.
	ErrNoSpawn = errors.New("no spawn entity")
)

// Apply runs one action to completion and returns the next state plus any
// follow-ups to dispatch later. s is never modified. On error the returned
// state is s.
func (r Rules) Apply(s State, a Action) (State, []Scheduled, error) {
	switch a := a.(type) {
	case RobotMove:
		if !a.Dir.Valid() {
			return s, nil, fmt.Errorf("robot move %v: %w", a.Dir, ErrInvalidArgs)
		}
		return r.moveRobot(s, a)
	case RobotInteract:
		return r.interact(s, a)
	case RobotRespawn:
		return r.respawn(s)
	case SpawnGlitch:
		return r.spawnGlitch(s, a)
	case CameraMove:
		if !a.Dir.Valid() {
			return s, nil, fmt.Errorf("camera move %v: %w", a.Dir, ErrInvalidArgs)
		}
		return moveCamera(s, a), nil, nil
	case CameraZoom:
		return zoomCamera(s, a), nil, nil
	case nil:
		return s, nil, fmt.Errorf("nil action: %w", ErrUnknownAction)
	default:
		return s, nil, fmt.Errorf("%T: %w", a, ErrUnknownAction)
	}
}

// Apply runs a with DefaultRules.
func Apply(s State, a Action) (State, []Scheduled, error) {
	return DefaultRules().Apply(s, a)
}
