package render

import (
	"fmt"
	"knights-battle/internal/component"

	"github.com/gdamore/tcell/v2"
)

// StatusLine summarises one knight for the HUD and the console.
func StatusLine(k *component.Knight) string {
	item := "-"
	if it := k.Item(); it != nil {
		item = it.Name
	}
	return fmt.Sprintf("%-8s %-7s item:%-10s ATK:%g DEF:%g", k.Name, k.Status(), item, k.Attack(), k.Defence())
}

// DrawHUD renders a separator and one status line per knight at the bottom
// of the screen.
func (r *Renderer) DrawHUD(knights []*component.Knight) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	for i, k := range knights {
		if i >= hudRows-1 {
			break
		}
		style := statusStyle(k)
		r.putGlyph(0, hudY+1+i, k.Glyph, style)
		r.drawText(3, hudY+1+i, StatusLine(k), style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
