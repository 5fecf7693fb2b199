package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/graph"
	"github.com/lixenwraith/tween/phase"
	"github.com/lixenwraith/tween/vmath"
)

// Demo layout constants
const (
	MaxRotationDegrees = 60.0
	MaxScale           = 1.5

	headerRow     = 0
	trackLabelRow = 2
	trackRow      = 3
	needleLabel   = 5
	needlePivot   = 11
	needleLength  = 5
	scaleLabelRow = 13
	scaleCenter   = 16
	scaleHalfW    = 6
	scaleHalfH    = 1
	swatchLabel   = 20
	swatchRow     = 21
	swatchHeight  = 2
	swatchWidth   = 16
	leftMargin    = 2

	// Graph panel shown beside the objects when the terminal is wide enough
	graphMinWidth = 70
)

// Status is the non-animated state shown around the objects
type Status struct {
	Entry    curve.Entry
	Duration time.Duration
	Paused   bool
	Sound    bool

	// Curve picker overlay, drawn while Picker is set
	Picker   bool
	Selected int
	Entries  []curve.Entry
	// PickerSlide is the picker's offset toward the right edge, 0 in place and 1 off screen
	PickerSlide float64
	// GraphFade dims the graph panel toward the background, 0 fully visible
	GraphFade float64
}

// DemoView draws the four animated objects, the curve graph and the status line
type DemoView struct {
	buf *RenderBuffer

	// Graph cache, rebuilt when curve or panel size changes
	graphKey  string
	graphGrid *graph.Grid
}

// NewDemoView creates a view with an empty buffer
func NewDemoView() *DemoView {
	return &DemoView{buf: NewRenderBuffer(0, 0)}
}

// Buffer exposes the last composed frame
func (v *DemoView) Buffer() *RenderBuffer {
	return v.buf
}

// Draw composes one frame and copies it to s; the caller calls s.Show
func (v *DemoView) Draw(s tcell.Screen, f phase.Frame, st Status) {
	w, h := s.Size()
	v.Compose(w, h, f, st)
	v.buf.Flush(s)
}

// Compose renders into the internal buffer at w x h
func (v *DemoView) Compose(w, h int, f phase.Frame, st Status) {
	v.buf.Resize(w, h)
	if w <= 0 || h <= 0 {
		return
	}

	left := w
	if w >= graphMinWidth {
		left = w * 3 / 5
	}

	v.drawHeader(w, f, st)
	v.drawTrack(left, f)
	v.drawNeedle(left, f)
	v.drawScaleBox(left, f)
	v.drawSwatch(f)
	if left < w {
		v.drawGraph(left+1, 2, w-left-2, h-4, st.Entry, 1-st.GraphFade)
	}
	if st.Picker {
		v.drawPicker(left, w, h, st)
	}
	v.buf.Text(1, h-1, "←/→ curve  ↑/↓ duration  enter pick  space pause  s sound  q quit", RgbDim)
}

func (v *DemoView) drawHeader(w int, f phase.Frame, st Status) {
	v.buf.FillBg(0, headerRow, w, 1, RgbStatusBar)
	x := v.buf.Text(1, headerRow, "tween", RgbStatusText)
	title := st.Entry.Title
	if title == "" {
		title = st.Entry.Name
	}
	text := fmt.Sprintf(" │ %s │ %v │ %s", title, st.Duration, f.Phase)
	if st.Sound {
		text += " │ ♪"
	}
	v.buf.Text(x, headerRow, text, RgbStatusText)

	if st.Paused {
		label := " PAUSED "
		px := w - len(label) - 1
		for i, r := range label {
			v.buf.SetWithBg(px+i, headerRow, r, RgbText, RgbPaused)
		}
	}
}

// TrackPosition returns the mover column on a track spanning x0..x1
// signed is the phase-applied displacement; overshoot may leave the track
func TrackPosition(x0, x1 int, signed float64) int {
	center := float64((x0 + x1) / 2)
	maxOffset := float64((x1-x0)/2 - 1)
	return int(math.Round(center + signed*maxOffset))
}

func (v *DemoView) drawTrack(left int, f phase.Frame) {
	v.buf.Text(leftMargin, trackLabelRow, "move", RgbDim)
	x0, x1 := leftMargin, left-leftMargin-1
	for x := x0; x <= x1; x++ {
		v.buf.SetFgOnly(x, trackRow, '─', RgbTrack)
	}
	v.buf.SetFgOnly(TrackPosition(x0, x1, 0), trackRow, '┼', RgbTrack)
	v.buf.SetFgOnly(TrackPosition(x0, x1, f.Signed()), trackRow, '█', RgbMover)
}

// NeedleTip returns the needle end for a pivot and signed displacement
// Columns are doubled so the needle looks round in a terminal cell grid
func NeedleTip(pivot vmath.Vec2, length, signed float64) vmath.Vec2 {
	rad := MaxRotationDegrees * signed * math.Pi / 180
	return pivot.Add(vmath.Vec2{X: math.Sin(rad) * length * 2, Y: -math.Cos(rad) * length})
}

func (v *DemoView) drawNeedle(left int, f phase.Frame) {
	v.buf.Text(leftMargin, needleLabel, "rotate", RgbDim)
	pivot := vmath.Vec2{X: float64(left / 2), Y: needlePivot}
	tip := NeedleTip(pivot, needleLength, f.Signed())

	steps := needleLength * 4
	for i := 1; i <= steps; i++ {
		p := vmath.LerpOf(pivot, tip, float64(i)/float64(steps))
		v.buf.SetFgOnly(int(math.Round(p.X)), int(math.Round(p.Y)), '•', RgbNeedle)
	}
	v.buf.SetFgOnly(int(pivot.X), int(pivot.Y), 'o', RgbText)
}

// BoxScale returns the scale factor for a frame
// Forward phases grow toward MaxScale, backward ones shrink toward 1/MaxScale
func BoxScale(f phase.Frame) float64 {
	target := MaxScale
	if f.Phase.IsBackward() {
		target = 1 / MaxScale
	}
	return vmath.Lerp(1.0, target, f.T)
}

func (v *DemoView) drawScaleBox(left int, f phase.Frame) {
	v.buf.Text(leftMargin, scaleLabelRow, "scale", RgbDim)
	scale := BoxScale(f)
	halfW := int(math.Round(scaleHalfW * scale))
	halfH := int(math.Round(scaleHalfH * scale))
	if halfW < 0 {
		halfW = 0
	}
	if halfH < 0 {
		halfH = 0
	}
	cx := left / 2
	v.buf.FillBg(cx-halfW, scaleCenter-halfH, 2*halfW+1, 2*halfH+1, RgbScaleBox)
}

func (v *DemoView) drawSwatch(f phase.Frame) {
	v.buf.Text(leftMargin, swatchLabel, "color", RgbDim)
	c := HueColor(SwatchHue(f.Signed()), SwatchSaturation, SwatchValue)
	v.buf.FillBg(leftMargin, swatchRow, swatchWidth, swatchHeight, c)
}

func (v *DemoView) drawGraph(x, y, w, h int, entry curve.Entry, alpha float64) {
	if w < 4 || h < 4 || entry.Curve == nil {
		return
	}
	key := fmt.Sprintf("%s/%dx%d", entry.Name, w, h-1)
	if key != v.graphKey {
		b := graph.BoundsOf(entry.Curve, graph.DefaultSamples)
		v.graphGrid = graph.Plot(entry.Curve, w, h-1, b)
		v.graphKey = key
	}
	g := v.graphGrid

	v.buf.Text(x, y, fmt.Sprintf("graph y∈[%.1f, %.1f]", g.Bounds.YMin, g.Bounds.YMax), Fade(RgbDim, alpha))
	curveFg, axisFg, gridFg := Fade(RgbGraphCurve, alpha), Fade(RgbGraphAxis, alpha), Fade(RgbGraphGrid, alpha)
	for row, cells := range g.Cells {
		for col, r := range cells {
			var fg tcell.Color
			switch r {
			case graph.GlyphCurve, graph.GlyphJoin:
				fg = curveFg
			case graph.GlyphAxis:
				fg = axisFg
			case graph.GlyphMajor:
				fg = gridFg
			default:
				continue
			}
			v.buf.SetFgOnly(x+col, y+1+row, r, fg)
		}
	}
}

// PickerColumn returns the picker's left column for a slide offset
// Slide 1 places it just past the right edge; overshooting curves may carry it left of its rest
func PickerColumn(left, w int, slide float64) int {
	rest := left + 2
	return rest + int(math.Round(slide*float64(w-rest+1)))
}

func (v *DemoView) drawPicker(left, w, h int, st Status) {
	x := PickerColumn(left, w, st.PickerSlide)
	y := 2
	width := 0
	for _, e := range st.Entries {
		width = max(width, len([]rune(e.Title))+4)
	}
	height := min(len(st.Entries), h-4)
	v.buf.FillBg(x-1, y-1, width+2, height+2, RgbPanel)

	// Scroll so the selection stays visible
	first := 0
	if st.Selected >= height {
		first = st.Selected - height + 1
	}
	for i := 0; i < height; i++ {
		idx := first + i
		if idx >= len(st.Entries) {
			break
		}
		fg, marker := RgbText, "  "
		if idx == st.Selected {
			fg, marker = RgbAccent, "▶ "
		}
		v.buf.Text(x, y+i, marker+st.Entries[idx].Title, fg)
	}
}
