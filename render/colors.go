package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/tween/vmath"
)

// Theme colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPanel      = tcell.NewRGBColor(36, 40, 59)    // Slightly lifted panel
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Soft white
	RgbDim        = tcell.NewRGBColor(86, 95, 137)   // Muted gray-blue
	RgbAccent     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbTrack      = tcell.NewRGBColor(65, 72, 104)   // Track rail
	RgbMover      = tcell.NewRGBColor(122, 162, 247) // Blue block
	RgbNeedle     = tcell.NewRGBColor(187, 154, 247) // Purple needle
	RgbScaleBox   = tcell.NewRGBColor(158, 206, 106) // Green box
	RgbGraphGrid  = tcell.NewRGBColor(65, 72, 104)   // Grid dots
	RgbGraphAxis  = tcell.NewRGBColor(110, 118, 160) // Axis line
	RgbGraphCurve = tcell.NewRGBColor(255, 158, 100) // Curve trace
	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on status bar
	RgbPaused     = tcell.NewRGBColor(200, 50, 50)   // Red pause badge
)

// Hue swatch parameters in degrees
const (
	DefaultHue       = 225.0 // 5/8 of the wheel
	MaxHueShift      = 108.0 // 0.3 of the wheel
	SwatchSaturation = 0.6
	SwatchValue      = 0.85
)

// HueColor converts an HSV triple to a terminal color; hue wraps into [0,360)
func HueColor(hue, saturation, value float64) tcell.Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsv(hue, saturation, value).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends c toward the theme background; alpha 1 keeps c and 0 yields the background
func Fade(c tcell.Color, alpha float64) tcell.Color {
	alpha = vmath.Clamp(alpha, 0, 1)
	if alpha == 1 {
		return c
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	from := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	to := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := from.BlendRgb(to, alpha).Clamped()
	r8, g8, b8 := out.RGB255()
	return tcell.NewRGBColor(int32(r8), int32(g8), int32(b8))
}

// SwatchHue returns the swatch hue for signed displacement
func SwatchHue(signed float64) float64 {
	return DefaultHue + MaxHueShift*signed
}
