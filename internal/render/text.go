package render

import (
	"knights-battle/internal/board"
	"knights-battle/internal/component"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text draws b as plain text, one line per board row. Every cell is padded
// to two terminal columns so emoji and ASCII glyphs line up.
func Text(b *board.Board) string {
	var sb strings.Builder
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			glyph := CellGlyph(b.At(component.Position{X: x, Y: y}))
			sb.WriteString(runewidth.FillRight(glyph, 2))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
