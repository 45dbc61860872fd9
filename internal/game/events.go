package game

import (
	"fmt"
	"knights-battle/internal/component"
)

// EventKind classifies what happened during a turn.
type EventKind uint8

const (
	EventMoved    EventKind = iota // knight reached a new cell
	EventPickedUp                  // knight equipped an item
	EventFought                    // Knight beat Other
	EventDrowned                   // knight walked off the board from At
	EventDropped                   // Knight's item was left on At
)

var eventNames = [...]string{
	EventMoved:    "moved",
	EventPickedUp: "picked_up",
	EventFought:   "fought",
	EventDrowned:  "drowned",
	EventDropped:  "dropped",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one entry of the game's message log. Knight and Other are knight
// keys; Item is an item key.
type Event struct {
	Turn   int
	Kind   EventKind
	Knight string
	Other  string
	Item   string
	At     component.Position
}

func (e Event) String() string {
	switch e.Kind {
	case EventMoved:
		return fmt.Sprintf("turn %d: %s moves to %v", e.Turn, e.Knight, e.At)
	case EventPickedUp:
		return fmt.Sprintf("turn %d: %s picks up %s at %v", e.Turn, e.Knight, e.Item, e.At)
	case EventFought:
		return fmt.Sprintf("turn %d: %s defeats %s at %v", e.Turn, e.Knight, e.Other, e.At)
	case EventDrowned:
		return fmt.Sprintf("turn %d: %s drowns leaving %v", e.Turn, e.Knight, e.At)
	case EventDropped:
		return fmt.Sprintf("turn %d: %s drops %s at %v", e.Turn, e.Knight, e.Item, e.At)
	}
	return fmt.Sprintf("turn %d: %v", e.Turn, e.Kind)
}
