package system

import (
	"knights-battle/internal/component"
	"sort"
)

// FindEnemy returns the first live knight in cell other than self, or nil.
func FindEnemy(self *component.Knight, cell []component.Occupant) *component.Knight {
	for _, o := range cell {
		switch occ := o.(type) {
		case *component.Knight:
			if occ != self && occ.Alive() {
				return occ
			}
		case *component.Item:
		}
	}
	return nil
}

// FindItems returns the items in cell, oldest first.
func FindItems(cell []component.Occupant) []*component.Item {
	var items []*component.Item
	for _, o := range cell {
		switch occ := o.(type) {
		case *component.Item:
			items = append(items, occ)
		case *component.Knight:
		}
	}
	return items
}

// SelectItem picks the item with the highest attack bonus, then the highest
// defence bonus; remaining ties go to the earliest item. It returns nil for
// an empty list and never reorders items.
func SelectItem(items []*component.Item) *component.Item {
	if len(items) == 0 {
		return nil
	}
	ranked := make([]*component.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AttackBonus != ranked[j].AttackBonus {
			return ranked[i].AttackBonus > ranked[j].AttackBonus
		}
		return ranked[i].DefenceBonus > ranked[j].DefenceBonus
	})
	return ranked[0]
}
