package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal character with its colors
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// emptyCell is the cleared state; Bg is resolved to the theme background at flush
var emptyCell = Cell{Rune: ' ', Fg: RgbText, Bg: tcell.ColorDefault}
