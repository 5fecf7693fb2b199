package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferBounds(t *testing.T) {
	b := NewRenderBuffer(4, 3)
	b.SetWithBg(-1, 0, 'x', RgbText, RgbPanel)
	b.SetWithBg(4, 0, 'x', RgbText, RgbPanel)
	b.SetFgOnly(0, 3, 'x', RgbText)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if b.Get(x, y).Rune != ' ' {
				t.Errorf("Expected out of bounds writes ignored, found %q at %d,%d", b.Get(x, y).Rune, x, y)
			}
		}
	}
	if b.Get(10, 10) != emptyCell {
		t.Error("Expected empty cell for out of bounds read")
	}
}

func TestRenderBufferLayers(t *testing.T) {
	b := NewRenderBuffer(4, 1)
	b.SetBgOnly(1, 0, RgbPanel)
	b.SetFgOnly(1, 0, 'a', RgbAccent)

	c := b.Get(1, 0)
	if c.Rune != 'a' || c.Fg != RgbAccent || c.Bg != RgbPanel {
		t.Errorf("Expected fg write to keep background, got %+v", c)
	}

	if end := b.Text(2, 0, "xyz", RgbText); end != 5 {
		t.Errorf("Expected Text to return next column 5, got %d", end)
	}
	if b.Get(3, 0).Rune != 'y' {
		t.Errorf("Expected clipped text, got %q", b.Get(3, 0).Rune)
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	b := NewRenderBuffer(3, 3)
	b.SetWithBg(1, 1, 'x', RgbText, RgbPanel)

	b.Resize(2, 2)
	if w, h := b.Bounds(); w != 2 || h != 2 {
		t.Errorf("Expected 2x2, got %dx%d", w, h)
	}
	if b.Get(1, 1).Rune != ' ' {
		t.Error("Expected resize to clear")
	}

	b.Resize(-1, 5)
	if w, h := b.Bounds(); w != 0 || h != 5 {
		t.Errorf("Expected negative width clamped, got %dx%d", w, h)
	}
}

func TestRenderBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(3, 1)

	b := NewRenderBuffer(3, 1)
	b.SetWithBg(0, 0, 'a', RgbText, RgbPanel)
	b.SetFgOnly(1, 0, 'b', RgbAccent)
	b.Flush(screen)

	r, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if r != 'a' || fg != RgbText || bg != RgbPanel {
		t.Errorf("Expected touched cell written as-is, got %q %v %v", r, fg, bg)
	}

	r, _, style, _ = screen.GetContent(1, 0)
	fg, bg, _ = style.Decompose()
	if r != 'b' || fg != RgbAccent || bg != RgbBackground {
		t.Errorf("Expected untouched background replaced by theme, got %q %v %v", r, fg, bg)
	}
}
