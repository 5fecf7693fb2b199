// Package vmath provides interpolation helpers for curve-driven values.
// Interpolation never clamps t: overshooting curves rely on t leaving [0,1].
package vmath

// Number is any built-in numeric type
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerper is implemented by composite values that interpolate component-wise
type Lerper[T any] interface {
	Lerp(to T, t float64) T
}

// Lerp returns a + (b-a)*t, with t unclamped
// Integer results truncate toward zero
func Lerp[T Number](a, b T, t float64) T {
	fa := float64(a)
	return T(fa + (float64(b)-fa)*t)
}

// LerpOf interpolates composite values through their Lerp method
func LerpOf[T Lerper[T]](a, b T, t float64) T {
	return a.Lerp(b, t)
}

// InverseLerp returns t such that Lerp(a, b, t) == v
// Returns 0 when a == b
func InverseLerp[T Number](a, b, v T) float64 {
	span := float64(b) - float64(a)
	if span == 0 {
		return 0
	}
	return (float64(v) - float64(a)) / span
}

// Remap maps v from range [inA,inB] to [outA,outB] without clamping
func Remap(v, inA, inB, outA, outB float64) float64 {
	return Lerp(outA, outB, InverseLerp(inA, inB, v))
}

// Clamp bounds v to [lo,hi]
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
