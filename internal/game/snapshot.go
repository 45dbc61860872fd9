package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"knights-battle/internal/component"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// KnightState is a knight's entry in the final snapshot, encoded as
// [[x,y]|null, status, item|null, attack, defence].
type KnightState struct {
	Position *component.Position
	Status   string
	Item     string // item key, empty when empty-handed
	Attack   float64
	Defence  float64
}

// ItemState is an item's entry in the final snapshot, encoded as
// [[x,y]|null, equipped].
type ItemState struct {
	Position *component.Position
	Equipped bool
}

// Snapshot is the final state of every knight and item, keyed by setup key.
type Snapshot struct {
	Knights map[string]KnightState
	Items   map[string]ItemState
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Knights: make(map[string]KnightState, len(g.roster)),
		Items:   make(map[string]ItemState, len(g.items)),
	}
	for _, k := range g.roster {
		ks := KnightState{
			Position: positionOf(k),
			Status:   k.Status().String(),
			Attack:   k.Attack(),
			Defence:  k.Defence(),
		}
		if it := k.Item(); it != nil {
			ks.Item = it.Key()
		}
		s.Knights[k.Key()] = ks
	}
	for _, it := range g.items {
		s.Items[it.Key()] = ItemState{Position: positionOf(it), Equipped: it.Equipped()}
	}
	return s
}

func positionOf(o component.Occupant) *component.Position {
	p, ok := o.Position()
	if !ok {
		return nil
	}
	return &p
}

func encodePoint(p *component.Position) any {
	if p == nil {
		return nil
	}
	return [2]int{p.X, p.Y}
}

func decodePoint(raw json.RawMessage) (*component.Position, error) {
	var pt *[2]int
	if err := json.Unmarshal(raw, &pt); err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, nil
	}
	return &component.Position{X: pt[0], Y: pt[1]}, nil
}

func (s KnightState) MarshalJSON() ([]byte, error) {
	var item any
	if s.Item != "" {
		item = s.Item
	}
	return json.Marshal([]any{encodePoint(s.Position), s.Status, item, s.Attack, s.Defence})
}

func (s *KnightState) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 5 {
		return fmt.Errorf("knight state: want 5 fields, got %d", len(tuple))
	}
	pos, err := decodePoint(tuple[0])
	if err != nil {
		return fmt.Errorf("knight state position: %w", err)
	}
	var item *string
	if err := json.Unmarshal(tuple[2], &item); err != nil {
		return fmt.Errorf("knight state item: %w", err)
	}
	out := KnightState{Position: pos}
	if item != nil {
		out.Item = *item
	}
	if err := json.Unmarshal(tuple[1], &out.Status); err != nil {
		return fmt.Errorf("knight state status: %w", err)
	}
	if err := json.Unmarshal(tuple[3], &out.Attack); err != nil {
		return fmt.Errorf("knight state attack: %w", err)
	}
	if err := json.Unmarshal(tuple[4], &out.Defence); err != nil {
		return fmt.Errorf("knight state defence: %w", err)
	}
	*s = out
	return nil
}

func (s ItemState) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{encodePoint(s.Position), s.Equipped})
}

func (s *ItemState) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("item state: want 2 fields, got %d", len(tuple))
	}
	pos, err := decodePoint(tuple[0])
	if err != nil {
		return fmt.Errorf("item state position: %w", err)
	}
	out := ItemState{Position: pos}
	if err := json.Unmarshal(tuple[1], &out.Equipped); err != nil {
		return fmt.Errorf("item state equipped: %w", err)
	}
	*s = out
	return nil
}

// MarshalJSON flattens knights and items into one object keyed by name.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(s.Knights)+len(s.Items))
	for key, ks := range s.Knights {
		flat[key] = ks
	}
	for key, is := range s.Items {
		flat[key] = is
	}
	return json.Marshal(flat)
}

// UnmarshalJSON tells knights from items by tuple length.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var flat map[string][]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	out := Snapshot{Knights: make(map[string]KnightState), Items: make(map[string]ItemState)}
	for key, tuple := range flat {
		raw, err := json.Marshal(tuple)
		if err != nil {
			return err
		}
		switch len(tuple) {
		case 5:
			var ks KnightState
			if err := json.Unmarshal(raw, &ks); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			out.Knights[key] = ks
		case 2:
			var is ItemState
			if err := json.Unmarshal(raw, &is); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			out.Items[key] = is
		default:
			return fmt.Errorf("%s: unexpected %d-field entry", key, len(tuple))
		}
	}
	*s = out
	return nil
}

// WriteSnapshot stores snap as indented JSON at path, zstd-compressed when
// the path ends in ".zst". Parent directories are created as needed.
func WriteSnapshot(path string, snap Snapshot) (err error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".zst") {
		_, err = f.Write(data)
		return err
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return snap, err
		}
		defer dec.Close()
		r = dec
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
