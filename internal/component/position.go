package component

import "fmt"

// Position is a board coordinate. X is the row (north/south) axis and Y the
// column (east/west) axis.
type Position struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		p.X--
	case South:
		p.X++
	case East:
		p.Y++
	case West:
		p.Y--
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four compass moves a turn script can request.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionCodes = [...]string{North: "N", East: "E", South: "S", West: "W"}

// ParseDirection maps a script token to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d, code := range directionCodes {
		if code == s {
			return Direction(d), true
		}
	}
	return 0, false
}

func (d Direction) String() string {
	if int(d) < len(directionCodes) {
		return directionCodes[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Actor is the single-letter code that names a knight in a turn script.
type Actor uint8

const (
	Red Actor = iota
	Green
	Blue
	Yellow
)

var actorCodes = [...]string{Red: "R", Green: "G", Blue: "B", Yellow: "Y"}

// Actors returns every actor in declaration order.
func Actors() []Actor {
	return []Actor{Red, Green, Blue, Yellow}
}

// ParseActor maps a script token to an Actor.
func ParseActor(s string) (Actor, bool) {
	for a, code := range actorCodes {
		if code == s {
			return Actor(a), true
		}
	}
	return 0, false
}

func (a Actor) String() string {
	if int(a) < len(actorCodes) {
		return actorCodes[a]
	}
	return fmt.Sprintf("Actor(%d)", uint8(a))
}
