package game

import (
	"fmt"
	"knights-battle/internal/board"
	"knights-battle/internal/component"
	"knights-battle/internal/config"
	"knights-battle/internal/factory"
	"knights-battle/internal/script"
	"knights-battle/internal/system"
)

// Game is the turn engine. It owns the board and is its only writer.
type Game struct {
	board   *board.Board
	knights map[component.Actor]*component.Knight
	roster  []*component.Knight // setup order
	items   []*component.Item   // setup order
	pending []script.Instruction
	history []script.Instruction
	events  []Event
}

// New builds the board from setup, places every knight and item, and queues
// turns. Bad setups and turns for knights missing from the roster fail here,
// before anything moves.
func New(setup config.Setup, turns []script.Instruction) (*Game, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	b, err := board.New(setup.Board.Width, setup.Board.Height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:   b,
		knights: make(map[component.Actor]*component.Knight, len(setup.Knights)),
	}
	for _, spec := range setup.Knights {
		k, err := factory.NewKnight(spec)
		if err != nil {
			return nil, err
		}
		if !b.Place(k) {
			return nil, fmt.Errorf("%w: knight %q starts off the board", board.ErrConfig, k.Key())
		}
		g.knights[k.Actor()] = k
		g.roster = append(g.roster, k)
	}
	for _, spec := range setup.Items {
		it := factory.NewItem(spec)
		if !b.Place(it) {
			return nil, fmt.Errorf("%w: item %q starts off the board", board.ErrConfig, it.Key())
		}
		g.items = append(g.items, it)
	}

	for i, in := range turns {
		if _, ok := g.knights[in.Actor]; !ok {
			return nil, fmt.Errorf("%w: turn %d moves knight %s, which is not on the roster", board.ErrConfig, i+1, in.Actor)
		}
	}
	g.pending = append([]script.Instruction(nil), turns...)
	return g, nil
}

// Play runs every queued turn.
func (g *Game) Play() {
	for g.Step() {
	}
}

// Step plays the next queued turn: movement, then item pickup, then combat.
// It reports false when no turns remain.
func (g *Game) Step() bool {
	if len(g.pending) == 0 {
		return false
	}
	in := g.pending[0]
	g.pending = g.pending[1:]
	g.history = append(g.history, in)

	k := g.knights[in.Actor]
	if !k.Alive() {
		// Pruning removes every turn of a fallen knight, so this is unreachable.
		return true
	}
	turn := len(g.history)

	from, _ := k.Position()
	if result, dropped := system.TryMove(g.board, k, in.Direction); result == system.MoveDrowned {
		g.record(Event{Turn: turn, Kind: EventDrowned, Knight: k.Key(), At: from})
		if dropped != nil {
			g.record(Event{Turn: turn, Kind: EventDropped, Knight: k.Key(), Item: dropped.Key(), At: from})
		}
		g.prune(k.Actor())
		return true
	}

	at, _ := k.Position()
	g.record(Event{Turn: turn, Kind: EventMoved, Knight: k.Key(), At: at})
	g.pickup(turn, k, at)
	g.combat(turn, k, at)
	return true
}

// pickup equips the best item on the knight's cell when its hands are empty.
// The item leaves the board and travels with the knight.
func (g *Game) pickup(turn int, k *component.Knight, at component.Position) {
	if k.Item() != nil {
		return
	}
	it := system.SelectItem(system.FindItems(g.board.At(at)))
	if it == nil {
		return
	}
	g.board.Remove(it)
	k.EquipItem(it)
	g.record(Event{Turn: turn, Kind: EventPickedUp, Knight: k.Key(), Item: it.Key(), At: at})
}

// combat fights the first enemy sharing the knight's cell. The loser leaves
// the board and the schedule; its item stays on the fight cell.
func (g *Game) combat(turn int, k *component.Knight, at component.Position) {
	enemy := system.FindEnemy(k, g.board.At(at))
	if enemy == nil {
		return
	}
	res := system.Fight(k, enemy)
	g.board.RemoveFrom(at, res.Loser)
	g.prune(res.Loser.Actor())
	g.record(Event{Turn: turn, Kind: EventFought, Knight: res.Winner.Key(), Other: res.Loser.Key(), At: at})
	if res.Dropped != nil {
		g.board.Place(res.Dropped)
		g.record(Event{Turn: turn, Kind: EventDropped, Knight: res.Loser.Key(), Item: res.Dropped.Key(), At: at})
	}
}

// prune drops every queued turn of actor.
func (g *Game) prune(actor component.Actor) {
	kept := g.pending[:0]
	for _, in := range g.pending {
		if in.Actor != actor {
			kept = append(kept, in)
		}
	}
	g.pending = kept
}

func (g *Game) record(e Event) {
	g.events = append(g.events, e)
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *board.Board { return g.board }

// Knight returns the knight driven by actor, or nil.
func (g *Game) Knight(actor component.Actor) *component.Knight { return g.knights[actor] }

// Knights returns the roster in setup order.
func (g *Game) Knights() []*component.Knight {
	return append([]*component.Knight(nil), g.roster...)
}

// Items returns every item in setup order.
func (g *Game) Items() []*component.Item {
	return append([]*component.Item(nil), g.items...)
}

// Pending returns the turns still queued.
func (g *Game) Pending() []script.Instruction {
	return append([]script.Instruction(nil), g.pending...)
}

// History returns the turns played so far, in order.
func (g *Game) History() []script.Instruction {
	return append([]script.Instruction(nil), g.history...)
}

// Events returns everything that happened, in order.
func (g *Game) Events() []Event {
	return append([]Event(nil), g.events...)
}
