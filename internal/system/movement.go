package system

import (
	"knights-battle/internal/board"
	"knights-battle/internal/component"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // knight placed on its new cell
	MoveDrowned                   // knight stepped off the board
)

func (r MoveResult) String() string {
	if r == MoveDrowned {
		return "drowned"
	}
	return "ok"
}

// TryMove steps knight k one cell in d on b.
// A knight that leaves the board drowns; its item, if any, is returned to the
// board on the last cell the knight stood on and reported as dropped.
func TryMove(b *board.Board, k *component.Knight, d component.Direction) (result MoveResult, dropped *component.Item) {
	b.Remove(k)
	k.Move(d)
	if b.Place(k) {
		return MoveOK, nil
	}
	dropped = k.Drown()
	if dropped != nil {
		b.Place(dropped)
	}
	return MoveDrowned, dropped
}
