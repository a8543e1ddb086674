package factory

import (
	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
)

// NewRobot returns a robot entity at pos with the given energy.
func NewRobot(pos component.Position, energy int) ecs.Entity {
	return ecs.Entity{Kind: component.KindRobot, Pos: pos, Energy: energy}
}

// NewSpawn returns the anchor entity that marks where robots respawn.
func NewSpawn(pos component.Position) ecs.Entity {
	return ecs.Entity{Kind: component.KindSpawn, Pos: pos}
}

// NewWorld builds the initial store: a spawn point with a fresh robot on it.
// The spawn gets id 0 and the robot id 1.
func NewWorld(spawn component.Position, energy int) ecs.Store {
	return ecs.New(NewSpawn(spawn), NewRobot(spawn, energy))
}

// Moved is the robot after one step in direction d. It costs one energy.
func Moved(robot ecs.Entity, d component.Direction) ecs.Entity {
	robot.Pos = robot.Pos.Add(d)
	robot.Energy--
	return robot
}

// Charged is the robot after absorbing energy from a battery.
func Charged(robot ecs.Entity, energy int) ecs.Entity {
	robot.Energy += energy
	return robot
}

// Dead converts a robot into its remains. Position and energy are kept.
func Dead(robot ecs.Entity) ecs.Entity {
	robot.Kind = component.KindDead
	return robot
}

// Butcher turns a dead body into a battery holding the body's energy.
func Butcher(dead ecs.Entity) ecs.Entity {
	dead.Kind = component.KindBattery
	return dead
}

// Glitch is the terminal decay state of an unclaimed body.
func Glitch(dead ecs.Entity) ecs.Entity {
	dead.Kind = component.KindGlitch
	return dead
}
