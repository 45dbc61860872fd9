package assets

import "knights-battle/internal/component"

// ItemTemplate describes one item of the default set.
type ItemTemplate struct {
	Key     string
	Name    string
	Glyph   string
	Attack  float64
	Defence float64
	Start   component.Position
}

// Items is the default item set, in placement order.
var Items = []ItemTemplate{
	{Key: "axe", Name: "Axe", Glyph: GlyphAxe, Attack: 2, Start: component.Position{X: 2, Y: 2}},
	{Key: "dagger", Name: "Dagger", Glyph: GlyphDagger, Attack: 1, Start: component.Position{X: 2, Y: 5}},
	{Key: "magic_staff", Name: "MagicStaff", Glyph: GlyphMagicStaff, Attack: 1, Defence: 1, Start: component.Position{X: 5, Y: 2}},
	{Key: "helmet", Name: "Helmet", Glyph: GlyphHelmet, Defence: 1, Start: component.Position{X: 5, Y: 5}},
}

// itemGlyphs maps an item key to its glyph.
var itemGlyphs = map[string]string{
	"axe":         GlyphAxe,
	"dagger":      GlyphDagger,
	"magic_staff": GlyphMagicStaff,
	"helmet":      GlyphHelmet,
}

// ItemGlyph returns the glyph for an item key, falling back to a generic
// pickup glyph for items outside the default set.
func ItemGlyph(key string) string {
	if g, ok := itemGlyphs[key]; ok {
		return g
	}
	return GlyphItem
}
