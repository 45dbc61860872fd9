package factory

import (
	"fmt"
	"knights-battle/assets"
	"knights-battle/internal/board"
	"knights-battle/internal/component"
	"knights-battle/internal/config"
)

// NewKnight creates a knight from its setup entry.
func NewKnight(spec config.KnightSpec) (*component.Knight, error) {
	actor, ok := component.ParseActor(spec.Actor)
	if !ok {
		return nil, fmt.Errorf("%w: knight %q: unknown actor %q", board.ErrConfig, spec.Key, spec.Actor)
	}
	name := spec.Name
	if name == "" {
		name = spec.Key
	}
	k := component.NewKnight(actor, spec.Key, name, spec.Start.Position())
	k.Glyph = spec.Glyph
	if k.Glyph == "" {
		k.Glyph = assets.KnightGlyph(actor)
	}
	if spec.Attack != nil {
		k.BaseAttack = *spec.Attack
	}
	if spec.Defence != nil {
		k.BaseDefence = *spec.Defence
	}
	return k, nil
}

// NewItem creates an unequipped item from its setup entry.
func NewItem(spec config.ItemSpec) *component.Item {
	name := spec.Name
	if name == "" {
		name = spec.Key
	}
	it := component.NewItem(spec.Key, name, spec.Attack, spec.Defence, spec.Start.Position())
	it.Glyph = spec.Glyph
	if it.Glyph == "" {
		it.Glyph = assets.ItemGlyph(spec.Key)
	}
	return it
}
