package assets

import "knights-battle/internal/component"

// Emoji constants used as board glyphs.
const (
	GlyphRed        = "🔴"
	GlyphGreen      = "🟢"
	GlyphBlue       = "🔵"
	GlyphYellow     = "🟡"
	GlyphAxe        = "🪓"
	GlyphDagger     = "🗡"
	GlyphMagicStaff = "🪄"
	GlyphHelmet     = "⛑"
	GlyphItem       = "🎁"
	GlyphEmpty      = "⬜"
)

// KnightTemplate describes one knight of the default roster.
type KnightTemplate struct {
	Actor component.Actor
	Key   string
	Name  string
	Glyph string
	Start component.Position
}

// Knights is the default roster: one knight in each corner of an 8x8 board.
var Knights = []KnightTemplate{
	{Actor: component.Red, Key: "red", Name: "Red", Glyph: GlyphRed, Start: component.Position{X: 0, Y: 0}},
	{Actor: component.Blue, Key: "blue", Name: "Blue", Glyph: GlyphBlue, Start: component.Position{X: 7, Y: 0}},
	{Actor: component.Green, Key: "green", Name: "Green", Glyph: GlyphGreen, Start: component.Position{X: 7, Y: 7}},
	{Actor: component.Yellow, Key: "yellow", Name: "Yellow", Glyph: GlyphYellow, Start: component.Position{X: 0, Y: 7}},
}

// DefaultBoardSize is the width and height of the default board.
const DefaultBoardSize = 8

// KnightGlyph returns the glyph for an actor's knight.
func KnightGlyph(a component.Actor) string {
	switch a {
	case component.Red:
		return GlyphRed
	case component.Green:
		return GlyphGreen
	case component.Blue:
		return GlyphBlue
	case component.Yellow:
		return GlyphYellow
	}
	return "?"
}
