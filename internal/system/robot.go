package system

import (
	"fmt"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
	"tile-robot/internal/factory"
)

// Every robot action, follow-ups included, is a no-op while no robot exists.

func (r Rules) moveRobot(s State, a RobotMove) (State, []Scheduled, error) {
	robot, ok := s.Robot()
	if !ok || robot.Energy <= 0 {
		return s, nil, nil
	}
	items, err := s.Items.Set(robot.ID, factory.Moved(robot.Entity, a.Dir))
	if err != nil {
		return s, nil, err
	}
	s.Items = items
	return s, nil, nil
}

// interact butchers the first body at the target tile, or failing that
// drains the first battery there into the robot.
func (r Rules) interact(s State, a RobotInteract) (State, []Scheduled, error) {
	robot, ok := s.Robot()
	if !ok {
		return s, nil, nil
	}
	here := ecs.At(a.At)

	if dead, ok := s.Items.Find(func(it ecs.Item) bool {
		return here(it) && it.Kind == component.KindDead
	}); ok {
		items, err := s.Items.Set(dead.ID, factory.Butcher(dead.Entity))
		if err != nil {
			return s, nil, err
		}
		s.Items = items
		return s, nil, nil
	}

	if bat, ok := s.Items.Find(func(it ecs.Item) bool {
		return here(it) && it.Kind == component.KindBattery
	}); ok {
		items, err := s.Items.Remove(bat.ID)
		if err != nil {
			return s, nil, err
		}
		items, err = items.Set(robot.ID, factory.Charged(robot.Entity, bat.Energy))
		if err != nil {
			return s, nil, err
		}
		s.Items = items
	}
	return s, nil, nil
}

// respawn leaves the current robot behind as a body under its own id and
// puts a fresh robot on the spawn point. The body decays after GlitchDelay.
func (r Rules) respawn(s State) (State, []Scheduled, error) {
	robot, ok := s.Robot()
	if !ok {
		return s, nil, nil
	}
	spawn, ok := s.Items.Find(ecs.OfKind(component.KindSpawn))
	if !ok {
		return s, nil, fmt.Errorf("respawn robot %d: %w", robot.ID, ErrNoSpawn)
	}

	items, err := s.Items.Set(robot.ID, factory.Dead(robot.Entity))
	if err != nil {
		return s, nil, err
	}
	items, _ = items.Add(factory.NewRobot(spawn.Pos, r.StartEnergy))
	s.Items = items

	return s, []Scheduled{{
		Delay:  r.GlitchDelay,
		Action: SpawnGlitch{DeadID: robot.ID},
	}}, nil
}

// spawnGlitch only touches the entity if it is still a body. It may have
// been butchered, drained, or decayed by an earlier duplicate follow-up.
func (r Rules) spawnGlitch(s State, a SpawnGlitch) (State, []Scheduled, error) {
	if _, ok := s.Robot(); !ok {
		return s, nil, nil
	}
	dead, err := s.Items.Get(a.DeadID)
	if err != nil || dead.Kind != component.KindDead {
		return s, nil, nil
	}
	items, err := s.Items.Set(dead.ID, factory.Glitch(dead.Entity))
	if err != nil {
		return s, nil, err
	}
	s.Items = items
	return s, nil, nil
}
