package factory

import (
	"testing"

	"tile-robot/internal/component"
)

func TestNewWorldLayout(t *testing.T) {
	spawn := component.Position{X: 2, Y: -1}
	s := NewWorld(spawn, 10)

	if s.Len() != 2 {
		t.Fatalf("expected 2 entities, got %d", s.Len())
	}
	sp, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if sp.Kind != component.KindSpawn || sp.Pos != spawn {
		t.Errorf("id 0 = %+v; want spawn at %v", sp, spawn)
	}
	robot, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if robot.Kind != component.KindRobot || robot.Pos != spawn || robot.Energy != 10 {
		t.Errorf("id 1 = %+v; want robot at %v with 10 energy", robot, spawn)
	}
}

func TestLifecycleConversionsKeepPositionAndEnergy(t *testing.T) {
	robot := NewRobot(component.Position{X: 4, Y: 4}, 7)

	dead := Dead(robot)
	if dead.Kind != component.KindDead || dead.Pos != robot.Pos || dead.Energy != 7 {
		t.Errorf("Dead = %+v", dead)
	}
	bat := Butcher(dead)
	if bat.Kind != component.KindBattery || bat.Energy != 7 {
		t.Errorf("Butcher = %+v", bat)
	}
	gl := Glitch(dead)
	if gl.Kind != component.KindGlitch || gl.Pos != robot.Pos {
		t.Errorf("Glitch = %+v", gl)
	}
	if robot.Kind != component.KindRobot {
		t.Error("conversions must not modify their argument")
	}
}

func TestMovedAndCharged(t *testing.T) {
	robot := NewRobot(component.Position{}, 3)
	m := Moved(robot, component.DirRight)
	if m.Pos != (component.Position{X: 1, Y: 0}) || m.Energy != 2 {
		t.Errorf("Moved = %+v; want (1,0) with 2 energy", m)
	}
	c := Charged(m, 5)
	if c.Energy != 7 {
		t.Errorf("Charged energy = %d; want 7", c.Energy)
	}
}
