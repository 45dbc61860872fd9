package component

// Status is the life state of a knight.
type Status uint8

const (
	Alive Status = iota
	Dead
	Drowned
)

var statusNames = [...]string{Alive: "ALIVE", Dead: "DEAD", Drowned: "DROWNED"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "UNKNOWN"
}

// DefaultBaseStat is the base attack and defence of a fresh knight.
const DefaultBaseStat = 1

// Knight is a scripted actor. Once it leaves the Alive state it has no
// position and no item, and it never moves or fights again.
type Knight struct {
	actor       Actor
	key         string
	Name        string
	Glyph       string
	BaseAttack  float64
	BaseDefence float64

	pos     Position
	onBoard bool
	item    *Item
	status  Status
	history []Position
}

// NewKnight creates a live knight standing at start with default stats.
func NewKnight(actor Actor, key, name string, start Position) *Knight {
	return &Knight{
		actor:       actor,
		key:         key,
		Name:        name,
		BaseAttack:  DefaultBaseStat,
		BaseDefence: DefaultBaseStat,
		pos:         start,
		onBoard:     true,
	}
}

func (*Knight) Kind() Kind { return KindKnight }

func (k *Knight) Key() string { return k.key }

// Actor returns the script code that drives this knight.
func (k *Knight) Actor() Actor { return k.actor }

func (k *Knight) Position() (Position, bool) { return k.pos, k.onBoard }

func (k *Knight) Status() Status { return k.status }

func (k *Knight) Alive() bool { return k.status == Alive }

// Item returns the held item, or nil.
func (k *Knight) Item() *Item { return k.item }

// History returns a copy of every position the knight has moved away from.
func (k *Knight) History() []Position {
	out := make([]Position, len(k.history))
	copy(out, k.history)
	return out
}

// Attack is the base attack plus the held item's bonus.
func (k *Knight) Attack() float64 {
	if k.item == nil {
		return k.BaseAttack
	}
	return k.BaseAttack + k.item.AttackBonus
}

// Defence is the base defence plus the held item's bonus.
func (k *Knight) Defence() float64 {
	if k.item == nil {
		return k.BaseDefence
	}
	return k.BaseDefence + k.item.DefenceBonus
}

// Move records the current position and steps one cell in d. Bounds are
// the board's concern.
func (k *Knight) Move(d Direction) {
	k.history = append(k.history, k.pos)
	k.pos = k.pos.Step(d)
}

// EquipItem gives the knight it. Callers only offer items to empty hands.
func (k *Knight) EquipItem(it *Item) {
	it.equip(k)
	k.item = it
}

// DropItem leaves the held item at at and returns it, or nil when the
// knight holds nothing.
func (k *Knight) DropItem(at Position) *Item {
	it := k.item
	if it == nil {
		return nil
	}
	it.drop(at)
	k.item = nil
	return it
}

// Die drops the held item where the knight stands and takes it off the board.
func (k *Knight) Die() *Item {
	dropped := k.DropItem(k.pos)
	k.BaseAttack, k.BaseDefence = 0, 0
	k.status = Dead
	k.onBoard = false
	return dropped
}

// Drown is the fate of a knight that walked off the board. Its item washes
// up on the last cell it stood on.
func (k *Knight) Drown() *Item {
	var dropped *Item
	if n := len(k.history); n > 0 {
		dropped = k.DropItem(k.history[n-1])
	} else {
		dropped = k.DropItem(k.pos)
	}
	k.BaseAttack, k.BaseDefence = 0, 0
	k.status = Drowned
	k.onBoard = false
	return dropped
}
