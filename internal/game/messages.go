package game

import (
	"fmt"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
	"tile-robot/internal/system"
)

// describe returns the log line for a completed action, or "" when the
// action is not worth a message.
func describe(before, after system.State, action system.Action) string {
	robotBefore, hadRobot := before.Robot()
	robotAfter, hasRobot := after.Robot()

	switch a := action.(type) {
	case system.RobotMove:
		if hadRobot && robotBefore.Energy <= 0 {
			return "Out of energy. Press r to respawn."
		}
	case system.RobotInteract:
		if count(after, component.KindBattery) > count(before, component.KindBattery) {
			return fmt.Sprintf("Salvaged a battery at %v.", a.At)
		}
		if hadRobot && hasRobot && robotAfter.Energy > robotBefore.Energy {
			return fmt.Sprintf("Recharged +%d.", robotAfter.Energy-robotBefore.Energy)
		}
	case system.RobotRespawn:
		if hadRobot && hasRobot && robotAfter.ID != robotBefore.ID {
			return fmt.Sprintf("Robot %d shut down at %v. New robot online at %v.",
				robotBefore.ID, robotBefore.Pos, robotAfter.Pos)
		}
	case system.SpawnGlitch:
		if count(after, component.KindGlitch) > count(before, component.KindGlitch) {
			return fmt.Sprintf("The remains of robot %d decayed into a glitch.", a.DeadID)
		}
	}
	return ""
}

func count(s system.State, k component.Kind) int {
	return len(s.Items.Filter(ecs.OfKind(k)))
}
