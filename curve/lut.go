package curve

// DefaultLUTSize is the table resolution used by Bake when size < 2
const DefaultLUTSize = 1024

// LUT is a curve sampled at evenly spaced points over [0,1]
// Evaluation between samples uses linear interpolation
type LUT struct {
	table  []float64
	source Curve
	step   float64
}

// Bake precomputes c at size points for cheap repeated evaluation
// Useful where a composed curve is evaluated at audio rate
func Bake(c Curve, size int) *LUT {
	if size < 2 {
		size = DefaultLUTSize
	}
	l := &LUT{
		table:  make([]float64, size),
		source: c,
		step:   1 / float64(size-1),
	}
	for i := range l.table {
		l.table[i] = c(float64(i) * l.step)
	}
	// Endpoint comes from the source so End() is exact
	l.table[size-1] = c(1)
	return l
}

// At returns the interpolated value at t
// Outside [0,1], and for NaN, the source curve is evaluated directly
func (l *LUT) At(t float64) float64 {
	if !(t >= 0 && t <= 1) {
		return l.source(t)
	}
	last := len(l.table) - 1
	pos := t * float64(last)
	idx := int(pos)
	if idx >= last {
		return l.table[last]
	}
	frac := pos - float64(idx)
	v0 := l.table[idx]
	v1 := l.table[idx+1]
	return v0 + (v1-v0)*frac
}

// Curve exposes the table as a Curve value
func (l *LUT) Curve() Curve {
	return l.At
}

// Size returns the number of samples
func (l *LUT) Size() int {
	return len(l.table)
}
