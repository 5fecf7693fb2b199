package curve

import "math"

// Composition operators. All return new curves and leave their inputs untouched.

// Constant returns a curve that ignores t
func Constant(v float64) Curve {
	return func(float64) float64 { return v }
}

// Mul multiplies the outputs of a and b
func Mul(a, b Curve) Curve {
	return func(t float64) float64 { return a(t) * b(t) }
}

// Add sums the outputs of a and b
func Add(a, b Curve) Curve {
	return func(t float64) float64 { return a(t) + b(t) }
}

// Sub subtracts the output of b from a
func Sub(a, b Curve) Curve {
	return func(t float64) float64 { return a(t) - b(t) }
}

// Scale multiplies the output of c by k
func Scale(c Curve, k float64) Curve {
	return func(t float64) float64 { return c(t) * k }
}

// Offset adds d to the output of c
func Offset(c Curve, d float64) Curve {
	return func(t float64) float64 { return c(t) + d }
}

// Compose returns outer(inner(t))
func Compose(outer, inner Curve) Curve {
	return func(t float64) float64 { return outer(inner(t)) }
}

// Reverse plays c backwards: c(1-t)
func Reverse(c Curve) Curve {
	return func(t float64) float64 { return c(1 - t) }
}

// Complement returns 1-c(t)
func Complement(c Curve) Curve {
	return func(t float64) float64 { return 1 - c(t) }
}

// Invert turns an ease-in into the matching ease-out: 1-c(1-t)
func Invert(c Curve) Curve {
	return func(t float64) float64 { return 1 - c(1-t) }
}

// Mirror runs c over the first half and its inversion over the second half
// Ease-in curves become symmetric ease-in-out curves
func Mirror(c Curve) Curve {
	return func(t float64) float64 {
		if t < 0.5 {
			return 0.5 * c(2*t)
		}
		return 1 - 0.5*c(2*(1-t))
	}
}

// Split evaluates first over [0,at] and second over [at,1]
// Each half is handed its own normalized time, so both see [0,1].
// at outside (0,1) selects a single curve.
func Split(at float64, first, second Curve) Curve {
	if at <= 0 {
		return second
	}
	if at >= 1 {
		return first
	}
	return func(t float64) float64 {
		if t <= at {
			return first(t / at)
		}
		return second((t - at) / (1 - at))
	}
}

// Sine returns sin(2*pi*cycles*t), completing cycles full waves over [0,1]
func Sine(cycles float64) Curve {
	w := 2 * math.Pi * cycles
	return func(t float64) float64 { return math.Sin(w * t) }
}

// Clamp bounds the output of c to [lo,hi]
func Clamp(c Curve, lo, hi float64) Curve {
	return func(t float64) float64 {
		v := c(t)
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}
