package component

import "fmt"

// Direction is one of the four unit steps on the grid.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directionNames holds the wire names used by action descriptors and key tables.
var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool { return d <= DirRight }

// Delta returns the unit vector for d. Screen coordinates: y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection maps "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
