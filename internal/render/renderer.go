package render

import (
	"knights-battle/assets"
	"knights-battle/internal/board"
	"knights-battle/internal/component"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the board.
const hudRows = 6

// Renderer draws a board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-hudRows)),
	}
}

// CenterOn recenters the camera on board cell (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame renders the board and one HUD line per knight.
func (r *Renderer) DrawFrame(b *board.Board, knights []*component.Knight) {
	r.screen.Clear()
	r.drawBoard(b)
	r.DrawHUD(knights)
	r.screen.Show()
}

func (r *Renderer) drawBoard(b *board.Board) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			sx, sy, onScreen := r.camera.BoardToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, CellGlyph(b.At(component.Position{X: x, Y: y})), style)
		}
	}
}

// renderOrder ranks occupants; higher is drawn on top.
func renderOrder(o component.Occupant) int {
	switch o.Kind() {
	case component.KindKnight:
		return 10
	case component.KindItem:
		return 2
	}
	return 0
}

func glyphOf(o component.Occupant) string {
	switch occ := o.(type) {
	case *component.Knight:
		return occ.Glyph
	case *component.Item:
		return occ.Glyph
	}
	return "?"
}

// CellGlyph returns the glyph of the topmost occupant in cell: knights cover
// items, and later arrivals cover earlier ones.
func CellGlyph(cell []component.Occupant) string {
	var top component.Occupant
	for _, o := range cell {
		if top == nil || renderOrder(o) >= renderOrder(top) {
			top = o
		}
	}
	if top == nil {
		return assets.GlyphEmpty
	}
	if g := glyphOf(top); g != "" {
		return g
	}
	for _, ch := range top.Key() {
		return string(ch)
	}
	return "?"
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs still own a two-column cell.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
