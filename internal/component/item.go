package component

// Item is a stat modifier lying on the board or held by a knight.
// A held item has no position of its own; it reads its holder's.
type Item struct {
	key          string
	Name         string
	Glyph        string
	AttackBonus  float64
	DefenceBonus float64

	pos    Position
	holder *Knight
}

// NewItem creates an unequipped item lying at start.
func NewItem(key, name string, attack, defence float64, start Position) *Item {
	return &Item{
		key:          key,
		Name:         name,
		AttackBonus:  attack,
		DefenceBonus: defence,
		pos:          start,
	}
}

func (*Item) Kind() Kind { return KindItem }

func (it *Item) Key() string { return it.key }

// Position returns the holder's position while equipped, otherwise the
// drop site.
func (it *Item) Position() (Position, bool) {
	if it.holder != nil {
		return it.holder.Position()
	}
	return it.pos, true
}

// Equipped reports whether a knight is carrying the item.
func (it *Item) Equipped() bool { return it.holder != nil }

// Holder returns the knight carrying the item, or nil.
func (it *Item) Holder() *Knight { return it.holder }

func (it *Item) equip(holder *Knight) {
	it.holder = holder
}

// drop stores its own copy of at; later moves of the former holder do not
// carry the item along.
func (it *Item) drop(at Position) {
	it.holder = nil
	it.pos = at
}
