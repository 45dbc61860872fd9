package board

import (
	"fmt"
	"knights-battle/internal/component"
)

// Board is a fixed grid of cells. Each cell lists its occupants in the order
// they arrived. Width spans the X (row) axis and Height the Y (column) axis.
type Board struct {
	Width, Height int
	cells         [][][]component.Occupant
}

// New creates an empty width x height board.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrConfig, width, height)
	}
	cells := make([][][]component.Occupant, width)
	for x := range cells {
		cells[x] = make([][]component.Occupant, height)
	}
	return &Board{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether p is within the board.
func (b *Board) InBounds(p component.Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Place appends o to the cell at its position. It reports false, leaving the
// board untouched, when o has no position or stands off the board.
func (b *Board) Place(o component.Occupant) bool {
	p, ok := o.Position()
	if !ok || !b.InBounds(p) {
		return false
	}
	b.cells[p.X][p.Y] = append(b.cells[p.X][p.Y], o)
	return true
}

// Remove deletes o from the cell at its current position.
func (b *Board) Remove(o component.Occupant) {
	if p, ok := o.Position(); ok {
		b.RemoveFrom(p, o)
	}
}

// RemoveFrom deletes o from the cell at p. It is a no-op when o is not there.
func (b *Board) RemoveFrom(p component.Position, o component.Occupant) {
	if !b.InBounds(p) {
		return
	}
	cell := b.cells[p.X][p.Y]
	for i, occ := range cell {
		if occ == o {
			b.cells[p.X][p.Y] = append(cell[:i:i], cell[i+1:]...)
			return
		}
	}
}

// At returns a copy of the occupants at p, oldest first. Off-board positions
// have no occupants.
func (b *Board) At(p component.Position) []component.Occupant {
	if !b.InBounds(p) {
		return nil
	}
	cell := b.cells[p.X][p.Y]
	out := make([]component.Occupant, len(cell))
	copy(out, cell)
	return out
}
