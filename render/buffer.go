package render

import "github.com/gdamore/tcell/v2"

// RenderBuffer is an off-screen cell grid with background tracking
// Views draw into it, then Flush copies it to a tcell screen in one pass
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a cleared buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background
// Does not mark the cell touched, so the default background still applies at flush
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background color while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// Text writes s left to right from x,y, clipped at the buffer edge
// Returns the column after the last rune
func (b *RenderBuffer) Text(x, y int, s string, fg tcell.Color) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg)
		x++
	}
	return x
}

// FillBg paints the background of a rectangle
func (b *RenderBuffer) FillBg(x, y, w, h int, bg tcell.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// Flush copies the buffer to s; untouched cells get the theme background
func (b *RenderBuffer) Flush(s tcell.Screen) {
	base := tcell.StyleDefault
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			bg := c.Bg
			if !b.touched[row+x] {
				bg = RgbBackground
			}
			s.SetContent(x, y, c.Rune, nil, base.Foreground(c.Fg).Background(bg))
		}
	}
}
