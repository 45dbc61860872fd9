package render

import (
	"knights-battle/internal/component"

	"github.com/gdamore/tcell/v2"
)

// actorColors tints HUD lines so each knight is recognisable without its glyph.
var actorColors = map[component.Actor]tcell.Color{
	component.Red:    tcell.ColorRed,
	component.Green:  tcell.ColorGreen,
	component.Blue:   tcell.ColorBlue,
	component.Yellow: tcell.ColorYellow,
}

// statusStyle dims knights that are out of the fight.
func statusStyle(k *component.Knight) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if !k.Alive() {
		return style.Foreground(tcell.ColorGray)
	}
	if c, ok := actorColors[k.Actor()]; ok {
		return style.Foreground(c)
	}
	return style.Foreground(tcell.ColorWhite)
}
