package system

import (
	"time"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
)

// Namespaces accepted by Dispatch.
const (
	NSRobot  = "robotAction"
	NSCamera = "cameraAction"
)

// Action is a closed set of reducer inputs. Every variant can describe
// itself as the (namespace, name, args) triple Dispatch understands.
type Action interface {
	Descriptor() (namespace, name string, args []any)
	isAction()
}

// RobotMove steps the robot one tile if it has energy left.
type RobotMove struct{ Dir component.Direction }

// RobotInteract butchers a body or drains a battery at a tile.
type RobotInteract struct{ At component.Position }

// RobotRespawn kills the current robot and spawns a fresh one.
type RobotRespawn struct{}

// SpawnGlitch decays a body into a glitch. Only ever produced as a follow-up.
type SpawnGlitch struct{ DeadID ecs.EntityID }

// CameraMove pans the camera one tile.
type CameraMove struct{ Dir component.Direction }

// CameraZoom zooms "in" or "out"; any other token is ignored.
type CameraZoom struct{ InOrOut string }

func (a RobotMove) Descriptor() (string, string, []any) {
	return NSRobot, "move", []any{a.Dir.String()}
}

func (a RobotInteract) Descriptor() (string, string, []any) {
	return NSRobot, "interact", []any{a.At}
}

func (RobotRespawn) Descriptor() (string, string, []any) {
	return NSRobot, "respawn", nil
}

func (a SpawnGlitch) Descriptor() (string, string, []any) {
	return NSRobot, "spawnGlitch", []any{a.DeadID}
}

func (a CameraMove) Descriptor() (string, string, []any) {
	return NSCamera, "move", []any{a.Dir.String()}
}

func (a CameraZoom) Descriptor() (string, string, []any) {
	return NSCamera, "zoom", []any{a.InOrOut}
}

func (RobotMove) isAction()     {}
func (RobotInteract) isAction() {}
func (RobotRespawn) isAction()  {}
func (SpawnGlitch) isAction()   {}
func (CameraMove) isAction()    {}
func (CameraZoom) isAction()    {}

// Scheduled is a follow-up the caller must dispatch once Delay has elapsed.
// It carries ids, never references, so intervening mutations cannot retarget it.
type Scheduled struct {
	Delay  time.Duration
	Action Action
}

// DelayMs is Delay in whole milliseconds.
func (s Scheduled) DelayMs() int64 { return s.Delay.Milliseconds() }

// Name is the sub-action name of the follow-up, e.g. "spawnGlitch".
func (s Scheduled) Name() string {
	_, name, _ := s.Action.Descriptor()
	return name
}

// Args are the follow-up's arguments as Dispatch expects them.
func (s Scheduled) Args() []any {
	_, _, args := s.Action.Descriptor()
	return args
}
