package component

import "fmt"

// Kind tags an entity and decides its sprite and interaction rules.
type Kind uint8

const (
	KindRobot Kind = iota
	KindSpawn
	KindDead
	KindBattery
	KindGlitch
)

var kindNames = [...]string{
	KindRobot:   "robot",
	KindSpawn:   "spawn",
	KindDead:    "dead",
	KindBattery: "battery",
	KindGlitch:  "glitch",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}
