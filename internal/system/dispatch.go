package system

import (
	"fmt"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
)

// aliasMoveCamera is the legacy top-level name for camera panning.
const aliasMoveCamera = "moveCamera"

// Step is one dispatched action and what it produced.
type Step struct {
	Action    Action
	State     State
	Scheduled []Scheduled
}

// Dispatch is the string-keyed entry point used by key tables:
// Dispatch(s, "robotAction", "move", "left"). On error the Step holds s.
func (r Rules) Dispatch(s State, namespace string, args ...any) (Step, error) {
	a, err := Decode(namespace, args...)
	if err != nil {
		return Step{State: s}, err
	}
	next, sched, err := r.Apply(s, a)
	return Step{Action: a, State: next, Scheduled: sched}, err
}

// Redispatch applies a fired follow-up through the same path as any other action.
func (r Rules) Redispatch(s State, f Scheduled) (Step, error) {
	ns, name, args := f.Action.Descriptor()
	return r.Dispatch(s, ns, append([]any{name}, args...)...)
}

// Decode resolves a (namespace, name, args...) descriptor to an Action.
func Decode(namespace string, args ...any) (Action, error) {
	switch namespace {
	case NSRobot:
		return decodeRobot(args)
	case NSCamera:
		return decodeCamera(args)
	case aliasMoveCamera:
		return decodeCamera(append([]any{"move"}, args...))
	}
	return nil, fmt.Errorf("namespace %q: %w", namespace, ErrUnknownAction)
}

func decodeRobot(args []any) (Action, error) {
	name, rest, err := subAction(NSRobot, args)
	if err != nil {
		return nil, err
	}
	switch name {
	case "move":
		d, err := directionArg(NSRobot, name, rest)
		if err != nil {
			return nil, err
		}
		return RobotMove{Dir: d}, nil
	case "interact":
		p, err := positionArg(name, rest)
		if err != nil {
			return nil, err
		}
		return RobotInteract{At: p}, nil
	case "respawn":
		return RobotRespawn{}, nil
	case "spawnGlitch":
		id, err := idArg(name, rest)
		if err != nil {
			return nil, err
		}
		return SpawnGlitch{DeadID: id}, nil
	}
	return nil, fmt.Errorf("%s.%s: %w", NSRobot, name, ErrUnknownAction)
}

func decodeCamera(args []any) (Action, error) {
	name, rest, err := subAction(NSCamera, args)
	if err != nil {
		return nil, err
	}
	switch name {
	case "move":
		d, err := directionArg(NSCamera, name, rest)
		if err != nil {
			return nil, err
		}
		return CameraMove{Dir: d}, nil
	case "zoom":
		if len(rest) != 1 {
			return nil, fmt.Errorf("%s.zoom wants 1 argument, got %d: %w", NSCamera, len(rest), ErrInvalidArgs)
		}
		tok, ok := rest[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s.zoom: %T is not a string: %w", NSCamera, rest[0], ErrInvalidArgs)
		}
		return CameraZoom{InOrOut: tok}, nil
	}
	return nil, fmt.Errorf("%s.%s: %w", NSCamera, name, ErrUnknownAction)
}

func subAction(namespace string, args []any) (string, []any, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%s: missing action name: %w", namespace, ErrUnknownAction)
	}
	name, ok := args[0].(string)
	if !ok {
		return "", nil, fmt.Errorf("%s: action name %v: %w", namespace, args[0], ErrUnknownAction)
	}
	return name, args[1:], nil
}

func directionArg(namespace, name string, rest []any) (component.Direction, error) {
	if len(rest) != 1 {
		return 0, fmt.Errorf("%s.%s wants 1 argument, got %d: %w", namespace, name, len(rest), ErrInvalidArgs)
	}
	switch v := rest[0].(type) {
	case component.Direction:
		if !v.Valid() {
			return 0, fmt.Errorf("%s.%s: %v: %w", namespace, name, v, ErrInvalidArgs)
		}
		return v, nil
	case string:
		d, err := component.ParseDirection(v)
		if err != nil {
			return 0, fmt.Errorf("%s.%s: %v: %w", namespace, name, err, ErrInvalidArgs)
		}
		return d, nil
	}
	return 0, fmt.Errorf("%s.%s: %T is not a direction: %w", namespace, name, rest[0], ErrInvalidArgs)
}

// positionArg accepts either a component.Position or two ints.
func positionArg(name string, rest []any) (component.Position, error) {
	switch len(rest) {
	case 1:
		if p, ok := rest[0].(component.Position); ok {
			return p, nil
		}
	case 2:
		x, okX := rest[0].(int)
		y, okY := rest[1].(int)
		if okX && okY {
			return component.Position{X: x, Y: y}, nil
		}
	}
	return component.Position{}, fmt.Errorf("%s.%s wants a position: %w", NSRobot, name, ErrInvalidArgs)
}

func idArg(name string, rest []any) (ecs.EntityID, error) {
	if len(rest) == 1 {
		switch v := rest[0].(type) {
		case ecs.EntityID:
			return v, nil
		case int:
			return ecs.EntityID(v), nil
		}
	}
	return 0, fmt.Errorf("%s.%s wants an entity id: %w", NSRobot, name, ErrInvalidArgs)
}
