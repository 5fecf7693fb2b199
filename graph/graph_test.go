package graph

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/tween/curve"
)

func TestSampleEndpoints(t *testing.T) {
	points := Sample(curve.EaseInOut, 11)
	if len(points) != 11 {
		t.Fatalf("Expected 11 points, got %d", len(points))
	}
	if points[0].X != 0 || points[0].Y != 0 {
		t.Errorf("Expected first point (0,0), got %+v", points[0])
	}
	if points[10].X != 1 || points[10].Y != 1 {
		t.Errorf("Expected last point (1,1), got %+v", points[10])
	}
	if math.Abs(points[5].Y-0.5) > 1e-9 {
		t.Errorf("Expected midpoint 0.5, got %v", points[5].Y)
	}
}

func TestSampleDefaultCount(t *testing.T) {
	if got := len(Sample(curve.Linear, 0)); got != DefaultSamples {
		t.Errorf("Expected %d samples, got %d", DefaultSamples, got)
	}
}

func TestSampleRange(t *testing.T) {
	points := SampleRange(curve.Linear, -1, 2, 4)
	want := []float64{-1, 0, 1, 2}
	for i, w := range want {
		if math.Abs(points[i].X-w) > 1e-12 || math.Abs(points[i].Y-w) > 1e-12 {
			t.Errorf("Point %d: expected (%v,%v), got %+v", i, w, w, points[i])
		}
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name       string
		curve      curve.Curve
		yMin, yMax float64
	}{
		{"linear", curve.Linear, 0, 1},
		{"ease", curve.EaseInOut, 0, 1},
		{"exponential", curve.ExponentialDecelerate(), 0, 1},
		{"overshoot", curve.Overshoot(1), 0, 1.2},
		{"shake", curve.Shake(5), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoundsOf(tt.curve, 500)
			if b.XMin != 0 || b.XMax != 1 {
				t.Errorf("Expected domain [0,1], got [%v,%v]", b.XMin, b.XMax)
			}
			if b.YMin != tt.yMin || b.YMax != tt.yMax {
				t.Errorf("Expected range [%v,%v], got [%v,%v]", tt.yMin, tt.yMax, b.YMin, b.YMax)
			}
		})
	}
}

func TestBoundsContainSamples(t *testing.T) {
	for _, name := range curve.Names() {
		c, _ := curve.Lookup(name)
		b := BoundsOf(c, 300)
		for _, p := range Sample(c, 300) {
			if !b.Contains(p) {
				t.Errorf("%s: sample %+v outside bounds %+v", name, p, b)
				break
			}
		}
		if b.YMin > 0 || b.YMax < 1 {
			t.Errorf("%s: expected bounds to cover [0,1], got %+v", name, b)
		}
	}
}

func TestPlotLinear(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	g := Plot(curve.Linear, 11, 11, b)

	if g.Cells[10][0] != GlyphCurve {
		t.Errorf("Expected curve at bottom-left, got %q", g.Cells[10][0])
	}
	if g.Cells[0][10] != GlyphCurve {
		t.Errorf("Expected curve at top-right, got %q", g.Cells[0][10])
	}
	if g.Cells[5][5] != GlyphCurve {
		t.Errorf("Expected curve through the center, got %q", g.Cells[5][5])
	}
	// y=0 axis row keeps its glyph where the curve is absent
	if g.Cells[10][5] != GlyphAxis {
		t.Errorf("Expected axis glyph on bottom row, got %q", g.Cells[10][5])
	}

	rows := g.Rows()
	if len(rows) != 11 {
		t.Fatalf("Expected 11 rows, got %d", len(rows))
	}
	if strings.Count(g.String(), "\n") != 10 {
		t.Error("Expected rows joined by newlines")
	}
}

func TestPlotJoinsSteepSegments(t *testing.T) {
	step := curve.Ease(50)
	g := Plot(step, 10, 20, Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1})

	joins := 0
	for _, row := range g.Cells {
		for _, r := range row {
			if r == GlyphJoin {
				joins++
			}
		}
	}
	if joins == 0 {
		t.Error("Expected join glyphs on a near-step curve")
	}
}

func TestRowOf(t *testing.T) {
	g := Plot(curve.Linear, 5, 5, Bounds{XMin: 0, XMax: 1, YMin: -1, YMax: 1})
	if row, ok := g.RowOf(0); !ok || row != 2 {
		t.Errorf("Expected y=0 at middle row, got %d (%v)", row, ok)
	}
	if _, ok := g.RowOf(2); ok {
		t.Error("Expected out of range value rejected")
	}
	if _, ok := g.RowOf(math.NaN()); ok {
		t.Error("Expected NaN rejected")
	}
}
