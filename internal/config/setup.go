package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"knights-battle/assets"
	"knights-battle/internal/board"
	"knights-battle/internal/component"
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a board coordinate written as [x, y].
type Point [2]int

// Position converts p to a board position.
func (p Point) Position() component.Position {
	return component.Position{X: p[0], Y: p[1]}
}

// Size is the board extent. Width spans the X (row) axis.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KnightSpec configures one knight. Nil stats default to
// component.DefaultBaseStat.
type KnightSpec struct {
	Actor   string   `yaml:"actor"`
	Key     string   `yaml:"key"`
	Name    string   `yaml:"name"`
	Glyph   string   `yaml:"glyph,omitempty"`
	Start   Point    `yaml:"start"`
	Attack  *float64 `yaml:"attack,omitempty"`
	Defence *float64 `yaml:"defence,omitempty"`
}

// ItemSpec configures one item lying on the board at the start.
type ItemSpec struct {
	Key     string  `yaml:"key"`
	Name    string  `yaml:"name"`
	Glyph   string  `yaml:"glyph,omitempty"`
	Attack  float64 `yaml:"attack"`
	Defence float64 `yaml:"defence"`
	Start   Point   `yaml:"start"`
}

// Setup is everything the engine needs before the first turn.
type Setup struct {
	Board   Size         `yaml:"board"`
	Knights []KnightSpec `yaml:"knights"`
	Items   []ItemSpec   `yaml:"items"`
}

// DefaultSetup is the classic game: an 8x8 board, a knight in each corner and
// four items in the middle.
func DefaultSetup() Setup {
	s := Setup{Board: Size{Width: assets.DefaultBoardSize, Height: assets.DefaultBoardSize}}
	for _, k := range assets.Knights {
		s.Knights = append(s.Knights, KnightSpec{
			Actor: k.Actor.String(),
			Key:   k.Key,
			Name:  k.Name,
			Glyph: k.Glyph,
			Start: Point{k.Start.X, k.Start.Y},
		})
	}
	for _, it := range assets.Items {
		s.Items = append(s.Items, ItemSpec{
			Key:     it.Key,
			Name:    it.Name,
			Glyph:   it.Glyph,
			Attack:  it.Attack,
			Defence: it.Defence,
			Start:   Point{it.Start.X, it.Start.Y},
		})
	}
	return s
}

// LoadSetup reads a YAML setup file. Sections left out of the file keep their
// DefaultSetup values; an explicit empty item list means no items.
func LoadSetup(path string) (Setup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, err
	}
	s, err := DecodeSetup(bytes.NewReader(raw))
	if err != nil {
		return Setup{}, fmt.Errorf("setup.yaml: %w", err)
	}
	return s, nil
}

// setupDoc is the on-disk shape of a Setup. Board is a pointer so a missing
// section can be told apart from an explicit zero size.
type setupDoc struct {
	Board   *Size        `yaml:"board"`
	Knights []KnightSpec `yaml:"knights"`
	Items   []ItemSpec   `yaml:"items"`
}

// DecodeSetup parses a YAML setup document and validates it.
func DecodeSetup(r io.Reader) (Setup, error) {
	var doc setupDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Setup{}, err
	}

	s := DefaultSetup()
	if doc.Board != nil {
		s.Board = *doc.Board
	}
	if doc.Knights != nil {
		s.Knights = doc.Knights
	}
	if doc.Items != nil {
		s.Items = doc.Items
	}
	if err := s.Validate(); err != nil {
		return Setup{}, err
	}
	return s, nil
}

// Validate checks the setup against its own board. Every failure wraps
// board.ErrConfig.
func (s Setup) Validate() error {
	if s.Board.Width <= 0 || s.Board.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", board.ErrConfig, s.Board.Width, s.Board.Height)
	}
	inBounds := func(p Point) bool {
		return p[0] >= 0 && p[0] < s.Board.Width && p[1] >= 0 && p[1] < s.Board.Height
	}

	keys := make(map[string]bool)
	actors := make(map[component.Actor]bool)
	for _, k := range s.Knights {
		a, ok := component.ParseActor(k.Actor)
		if !ok {
			return fmt.Errorf("%w: knight %q: unknown actor %q", board.ErrConfig, k.Key, k.Actor)
		}
		if actors[a] {
			return fmt.Errorf("%w: actor %s used twice", board.ErrConfig, a)
		}
		actors[a] = true
		if k.Key == "" || keys[k.Key] {
			return fmt.Errorf("%w: knight key %q missing or duplicated", board.ErrConfig, k.Key)
		}
		keys[k.Key] = true
		if !inBounds(k.Start) {
			return fmt.Errorf("%w: knight %q starts off the board at %v", board.ErrConfig, k.Key, k.Start)
		}
		if (k.Attack != nil && *k.Attack < 0) || (k.Defence != nil && *k.Defence < 0) {
			return fmt.Errorf("%w: knight %q has negative stats", board.ErrConfig, k.Key)
		}
	}
	for _, it := range s.Items {
		if it.Key == "" || keys[it.Key] {
			return fmt.Errorf("%w: item key %q missing or duplicated", board.ErrConfig, it.Key)
		}
		keys[it.Key] = true
		if !inBounds(it.Start) {
			return fmt.Errorf("%w: item %q starts off the board at %v", board.ErrConfig, it.Key, it.Start)
		}
		if it.Attack < 0 || it.Defence < 0 {
			return fmt.Errorf("%w: item %q has a negative bonus", board.ErrConfig, it.Key)
		}
	}
	return nil
}
