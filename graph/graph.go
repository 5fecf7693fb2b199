// Package graph samples curves and rasterizes them for display
package graph

import (
	"math"
	"strings"

	"github.com/lixenwraith/tween/curve"
)

const (
	// GridInterval is the spacing of minor grid lines in curve units
	GridInterval = 0.1
	// MajorEvery is the number of minor intervals between major grid lines
	MajorEvery = 5
	// DefaultSamples is used when a sample count below 2 is requested
	DefaultSamples = 200
)

// Plot glyphs
const (
	GlyphEmpty = ' '
	GlyphMajor = '·'
	GlyphAxis  = '─'
	GlyphCurve = '•'
	GlyphJoin  = '│'
)

// Point is one sample of a curve
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample evaluates c at n evenly spaced points over [0,1]
func Sample(c curve.Curve, n int) []Point {
	return SampleRange(c, 0, 1, n)
}

// SampleRange evaluates c at n evenly spaced points over [from,to], endpoints included
func SampleRange(c curve.Curve, from, to float64, n int) []Point {
	if n < 2 {
		n = DefaultSamples
	}
	points := make([]Point, n)
	span := to - from
	for i := range points {
		x := from + span*float64(i)/float64(n-1)
		if i == n-1 {
			x = to
		}
		points[i] = Point{X: x, Y: c(x)}
	}
	return points
}

// Bounds is the visible domain and range of a graph
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Width returns the domain span
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the range span
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether p lies inside b, allowing snapEpsilon of float noise
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin-snapEpsilon && p.X <= b.XMax+snapEpsilon &&
		p.Y >= b.YMin-snapEpsilon && p.Y <= b.YMax+snapEpsilon
}

// BoundsOf returns display bounds for c over [0,1]
// The range always covers [0,1] and is widened outward to the grid interval,
// so overshooting curves gain headroom above 1 and shake reaches down to -1
func BoundsOf(c curve.Curve, n int) Bounds {
	b := Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	for _, p := range Sample(c, n) {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		b.YMin = math.Min(b.YMin, p.Y)
		b.YMax = math.Max(b.YMax, p.Y)
	}
	b.YMin = snapDown(b.YMin)
	b.YMax = snapUp(b.YMax)
	return b
}

// snapEpsilon absorbs float noise so 1.0000000001 does not add a grid row
const snapEpsilon = 1e-9

func snapUp(v float64) float64 {
	return round(math.Ceil(v/GridInterval-snapEpsilon) * GridInterval)
}

func snapDown(v float64) float64 {
	return round(math.Floor(v/GridInterval+snapEpsilon) * GridInterval)
}

// round trims accumulated error from multiplying by GridInterval
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Grid is a rasterized graph, row 0 at the top
type Grid struct {
	Width  int
	Height int
	Bounds Bounds
	Cells  [][]rune
}

// Plot rasterizes c into a width x height grid over b
// Major grid rows and the y=0 axis are drawn beneath the curve
func Plot(c curve.Curve, width, height int, b Bounds) *Grid {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	g := &Grid{Width: width, Height: height, Bounds: b, Cells: make([][]rune, height)}
	for r := range g.Cells {
		row := make([]rune, width)
		for col := range row {
			row[col] = GlyphEmpty
		}
		g.Cells[r] = row
	}

	g.drawGrid()

	prev := -1
	for col := 0; col < width; col++ {
		x := b.XMin + b.Width()*float64(col)/float64(width-1)
		row, ok := g.RowOf(c(x))
		if !ok {
			prev = -1
			continue
		}
		// Join steep segments so the trace stays connected
		if prev >= 0 {
			lo, hi := prev, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				if g.Cells[r][col] != GlyphCurve {
					g.Cells[r][col] = GlyphJoin
				}
			}
		}
		g.Cells[row][col] = GlyphCurve
		prev = row
	}
	return g
}

func (g *Grid) drawGrid() {
	major := GridInterval * MajorEvery
	first := math.Ceil(g.Bounds.YMin/major-snapEpsilon) * major
	for y := first; y <= g.Bounds.YMax+snapEpsilon; y += major {
		row, ok := g.RowOf(y)
		if !ok {
			continue
		}
		glyph := GlyphMajor
		if math.Abs(y) < snapEpsilon {
			glyph = GlyphAxis
		}
		for col := range g.Cells[row] {
			if glyph == GlyphAxis || col%2 == 0 {
				g.Cells[row][col] = glyph
			}
		}
	}
}

// RowOf maps a curve value to a grid row, false when outside the bounds
func (g *Grid) RowOf(y float64) (int, bool) {
	h := g.Bounds.Height()
	if h <= 0 || math.IsNaN(y) {
		return 0, false
	}
	if y < g.Bounds.YMin-snapEpsilon || y > g.Bounds.YMax+snapEpsilon {
		return 0, false
	}
	row := int(math.Round((g.Bounds.YMax - y) / h * float64(g.Height-1)))
	if row < 0 {
		row = 0
	}
	if row >= g.Height {
		row = g.Height - 1
	}
	return row, true
}

// Rows returns each grid row as a string
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.Cells))
	for i, r := range g.Cells {
		rows[i] = string(r)
	}
	return rows
}

// String joins rows with newlines
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
