package game

import (
	"errors"
	"knights-battle/internal/board"
	"knights-battle/internal/component"
	"knights-battle/internal/config"
	"knights-battle/internal/script"
	"testing"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newTestGame(t *testing.T, setup config.Setup, src string) *Game {
	t.Helper()
	turns, err := script.Parse(src)
	if err != nil {
		t.Fatalf("script.Parse: %v", err)
	}
	g, err := New(setup, turns)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// laneSetup is a width x 1 board: a single north/south lane.
func laneSetup(width int, knights []config.KnightSpec, items []config.ItemSpec) config.Setup {
	if items == nil {
		items = []config.ItemSpec{}
	}
	return config.Setup{Board: config.Size{Width: width, Height: 1}, Knights: knights, Items: items}
}

func knightAt(actor, key string, x, y int) config.KnightSpec {
	return config.KnightSpec{Actor: actor, Key: key, Name: key, Start: config.Point{x, y}}
}

func itemAt(key string, atk, def float64, x, y int) config.ItemSpec {
	return config.ItemSpec{Key: key, Name: key, Attack: atk, Defence: def, Start: config.Point{x, y}}
}

func at(x, y int) component.Position { return component.Position{X: x, Y: y} }

func onCell(g *Game, p component.Position, o component.Occupant) bool {
	for _, occ := range g.Board().At(p) {
		if occ == o {
			return true
		}
	}
	return false
}

// ─── setup ────────────────────────────────────────────────────────────────────

func TestNewPlacesEverything(t *testing.T) {
	g := newTestGame(t, config.DefaultSetup(), "GAME-START\n\nGAME-END")
	for _, k := range g.Knights() {
		p, ok := k.Position()
		if !ok || !onCell(g, p, k) {
			t.Errorf("knight %s not on its start cell %v", k.Key(), p)
		}
	}
	for _, it := range g.Items() {
		p, _ := it.Position()
		if !onCell(g, p, it) {
			t.Errorf("item %s not on its start cell %v", it.Key(), p)
		}
	}
	if k := g.Knight(component.Blue); k == nil || k.Key() != "blue" {
		t.Errorf("Knight(B) = %v; want blue", k)
	}
}

func TestNewRejectsBadSetup(t *testing.T) {
	s := config.DefaultSetup()
	s.Knights[2].Start = config.Point{8, 8}
	if _, err := New(s, nil); !errors.Is(err, board.ErrConfig) {
		t.Fatalf("New error = %v; want ErrConfig", err)
	}
}

func TestNewRejectsTurnsForMissingKnight(t *testing.T) {
	s := laneSetup(2, []config.KnightSpec{knightAt("R", "red", 0, 0)}, nil)
	turns := []script.Instruction{{Actor: component.Red, Direction: component.South}, {Actor: component.Yellow, Direction: component.North}}
	if _, err := New(s, turns); !errors.Is(err, board.ErrConfig) {
		t.Fatalf("New error = %v; want ErrConfig", err)
	}
}

func TestEmptyScriptChangesNothing(t *testing.T) {
	g := newTestGame(t, config.DefaultSetup(), "GAME-START\n\nGAME-END")
	before := g.Snapshot()
	if g.Step() {
		t.Fatal("Step should report no turns")
	}
	g.Play()
	after := g.Snapshot()
	for key, ks := range before.Knights {
		if *after.Knights[key].Position != *ks.Position {
			t.Errorf("knight %s moved without a turn", key)
		}
	}
}

// ─── movement ─────────────────────────────────────────────────────────────────

func TestDrowningPrunesTurns(t *testing.T) {
	g := newTestGame(t, config.DefaultSetup(), "GAME-START\nR:N\nB:E\nR:S\nR:E\nGAME-END")

	if !g.Step() {
		t.Fatal("Step should play the first turn")
	}
	red := g.Knight(component.Red)
	if red.Status() != component.Drowned {
		t.Fatalf("red status = %v; want DROWNED", red.Status())
	}
	if _, ok := red.Position(); ok {
		t.Error("drowned knight should have no position")
	}
	pending := g.Pending()
	if len(pending) != 1 || pending[0].Actor != component.Blue {
		t.Fatalf("pending = %v; want only B:E", pending)
	}
	if len(g.Board().At(at(0, 0))) != 0 {
		t.Error("red's start cell should be empty")
	}

	g.Play()
	if h := g.History(); len(h) != 2 {
		t.Errorf("history = %v; want 2 turns", h)
	}
}

func TestDrowningWithItemLeavesItOnLastCell(t *testing.T) {
	// Red walks to the axe at (2,2), back to the west edge, and off it.
	g := newTestGame(t, config.DefaultSetup(), "GAME-START\nR:S\nR:S\nR:E\nR:E\nR:W\nR:W\nR:W\nGAME-END")
	g.Play()

	red := g.Knight(component.Red)
	if red.Status() != component.Drowned || red.Item() != nil {
		t.Fatalf("red = %v holding %v; want DROWNED empty-handed", red.Status(), red.Item())
	}
	snap := g.Snapshot()
	axe := snap.Items["axe"]
	if axe.Equipped || axe.Position == nil || *axe.Position != at(2, 0) {
		t.Errorf("axe = %+v; want unequipped at (2,0)", axe)
	}
	var axeItem *component.Item
	for _, it := range g.Items() {
		if it.Key() == "axe" {
			axeItem = it
		}
	}
	if !onCell(g, at(2, 0), axeItem) {
		t.Error("axe should be back on the board at (2,0)")
	}
}

// ─── items ────────────────────────────────────────────────────────────────────

func TestPickupFollowsKnight(t *testing.T) {
	g := newTestGame(t, config.DefaultSetup(), "GAME-START\nR:S\nR:S\nR:E\nR:E\nGAME-END")
	g.Play()

	red := g.Knight(component.Red)
	if red.Item() == nil || red.Item().Key() != "axe" {
		t.Fatalf("red holds %v; want axe", red.Item())
	}
	if red.Attack() != 3 || red.Defence() != 1 {
		t.Errorf("red stats = %v/%v; want 3/1", red.Attack(), red.Defence())
	}
	if onCell(g, at(2, 2), red.Item()) {
		t.Error("equipped axe should leave the board")
	}

	g2 := newTestGame(t, config.DefaultSetup(), "GAME-START\nR:S\nR:S\nR:E\nR:E\nR:S\nGAME-END")
	g2.Play()
	axe := g2.Snapshot().Items["axe"]
	if !axe.Equipped || *axe.Position != at(3, 2) {
		t.Errorf("axe = %+v; want equipped at (3,2)", axe)
	}
}

func TestPickupChoosesBestItem(t *testing.T) {
	s := laneSetup(2,
		[]config.KnightSpec{knightAt("R", "red", 0, 0)},
		[]config.ItemSpec{itemAt("helmet", 0, 1, 1, 0), itemAt("dagger", 1, 0, 1, 0), itemAt("staff", 1, 1, 1, 0)},
	)
	g := newTestGame(t, s, "GAME-START\nR:S\nGAME-END")
	g.Play()

	if got := g.Knight(component.Red).Item(); got == nil || got.Key() != "staff" {
		t.Fatalf("red holds %v; want staff", got)
	}
	cell := g.Board().At(at(1, 0))
	if len(cell) != 3 {
		t.Fatalf("cell = %v; want helmet, dagger, red", cell)
	}
}

func TestHandsFullSkipsPickup(t *testing.T) {
	s := laneSetup(3,
		[]config.KnightSpec{knightAt("R", "red", 0, 0)},
		[]config.ItemSpec{itemAt("dagger", 1, 0, 1, 0), itemAt("axe", 2, 0, 2, 0)},
	)
	g := newTestGame(t, s, "GAME-START\nR:S\nR:S\nGAME-END")
	g.Play()

	if got := g.Knight(component.Red).Item(); got.Key() != "dagger" {
		t.Fatalf("red holds %s; want dagger", got.Key())
	}
	if axe := g.Snapshot().Items["axe"]; axe.Equipped {
		t.Error("axe should stay on the board")
	}
}

// ─── combat ───────────────────────────────────────────────────────────────────

func TestTwoKnightDuel(t *testing.T) {
	s := config.Setup{
		Board:   config.Size{Width: 2, Height: 2},
		Knights: []config.KnightSpec{knightAt("R", "red", 0, 0), knightAt("B", "blue", 1, 0)},
		Items:   []config.ItemSpec{},
	}
	g := newTestGame(t, s, "GAME-START\nR:S\nB:N\nGAME-END")
	g.Play()

	snap := g.Snapshot()
	dead := 0
	for _, ks := range snap.Knights {
		if ks.Status == "DEAD" {
			dead++
		}
	}
	if dead != 1 {
		t.Fatalf("got %d dead knights; want 1", dead)
	}
	red := snap.Knights["red"]
	if red.Status != "ALIVE" || red.Attack != 1 || *red.Position != at(1, 0) {
		t.Errorf("red = %+v; want ALIVE at (1,0) with attack 1", red)
	}
	blue := snap.Knights["blue"]
	if blue.Position != nil || blue.Attack != 0 || blue.Defence != 0 {
		t.Errorf("blue = %+v; want no position and zero stats", blue)
	}
	if h := g.History(); len(h) != 1 {
		t.Errorf("history = %v; blue's turn should have been pruned", h)
	}
	if cell := g.Board().At(at(1, 0)); len(cell) != 1 {
		t.Errorf("fight cell = %v; want only red", cell)
	}
}

func TestLoserDropsItemOnFightCell(t *testing.T) {
	s := laneSetup(4,
		[]config.KnightSpec{knightAt("R", "red", 0, 0), knightAt("B", "blue", 3, 0)},
		[]config.ItemSpec{itemAt("dagger", 1, 0, 1, 0), itemAt("helmet", 0, 1, 2, 0)},
	)
	// Red 2+0.5 against blue's 1+1.
	g := newTestGame(t, s, "GAME-START\nR:S\nB:N\nR:S\nB:N\nGAME-END")
	g.Play()

	snap := g.Snapshot()
	if snap.Knights["blue"].Status != "DEAD" {
		t.Fatalf("blue = %+v; want DEAD", snap.Knights["blue"])
	}
	helmet := snap.Items["helmet"]
	if helmet.Equipped || *helmet.Position != at(2, 0) {
		t.Errorf("helmet = %+v; want dropped at (2,0)", helmet)
	}
	cell := g.Board().At(at(2, 0))
	if len(cell) != 2 || cell[0] != g.Knight(component.Red) || cell[1].Key() != "helmet" {
		t.Errorf("fight cell = %v; want [red helmet]", cell)
	}
	if red := snap.Knights["red"]; red.Item != "dagger" || red.Attack != 2 {
		t.Errorf("red = %+v; want dagger and attack 2", red)
	}
}

func TestMoverLosesToStrongerDefence(t *testing.T) {
	s := laneSetup(4,
		[]config.KnightSpec{knightAt("R", "red", 0, 0), knightAt("B", "blue", 3, 0)},
		[]config.ItemSpec{itemAt("helmet", 0, 1, 2, 0)},
	)
	g := newTestGame(t, s, "GAME-START\nB:N\nR:S\nR:S\nR:S\nB:S\nGAME-END")
	g.Play()

	snap := g.Snapshot()
	red, blue := snap.Knights["red"], snap.Knights["blue"]
	if red.Status != "DEAD" || red.Position != nil {
		t.Errorf("red = %+v; want DEAD off the board", red)
	}
	if blue.Status != "ALIVE" || blue.Item != "helmet" || blue.Defence != 2 {
		t.Errorf("blue = %+v; want ALIVE with helmet", blue)
	}
	// B:N, R:S, R:S play; red's last turn is pruned; blue's B:S plays.
	if h := g.History(); len(h) != 4 {
		t.Errorf("history = %v; want 4 turns", h)
	}
	if *blue.Position != at(3, 0) {
		t.Errorf("blue at %v; want (3,0)", *blue.Position)
	}
}

func TestEventsTellTheStory(t *testing.T) {
	s := config.Setup{
		Board:   config.Size{Width: 2, Height: 2},
		Knights: []config.KnightSpec{knightAt("R", "red", 0, 0), knightAt("B", "blue", 1, 0)},
		Items:   []config.ItemSpec{itemAt("dagger", 1, 0, 1, 1)},
	}
	// Blue takes the dagger and parks next to red; red (1+0.5) beats blue's
	// defence of 1, then walks off the board.
	g := newTestGame(t, s, "GAME-START\nB:E\nB:N\nR:E\nR:N\nGAME-END")
	g.Play()

	want := []EventKind{EventMoved, EventPickedUp, EventMoved, EventMoved, EventFought, EventDropped, EventDrowned}
	events := g.Events()
	if len(events) != len(want) {
		t.Fatalf("events = %v; want kinds %v", events, want)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("event %d = %v; want %v", i, events[i], k)
		}
	}
	fight := events[4]
	if fight.Knight != "red" || fight.Other != "blue" || fight.At != at(0, 1) {
		t.Errorf("fight event = %+v; want red beating blue at (0,1)", fight)
	}
	if events[5].Item != "dagger" {
		t.Errorf("drop event = %+v; want the dagger", events[5])
	}
	if got := fight.String(); got != "turn 3: red defeats blue at (0,1)" {
		t.Errorf("String() = %q", got)
	}
}
