package component

// Kind discriminates the two things that can stand on a board cell.
type Kind uint8

const (
	KindKnight Kind = iota
	KindItem
)

// Occupant is implemented by *Knight and *Item only.
type Occupant interface {
	Kind() Kind
	// Key is the stable snapshot name of the occupant.
	Key() string
	// Position reports where the occupant is. ok is false when it is off the
	// board (a dead or drowned knight).
	Position() (p Position, ok bool)
}

var (
	_ Occupant = (*Knight)(nil)
	_ Occupant = (*Item)(nil)
)
