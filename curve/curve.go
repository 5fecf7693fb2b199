// Package curve provides pure easing functions over normalized time.
//
// A Curve maps normalized time t, usually in [0,1], to a progress value that is
// not bounded to [0,1]. Curves are ordinary function values: new ones are built by
// composing existing ones (see compose.go) rather than by extending a fixed set.
// Every curve in this package is stateless and safe for concurrent evaluation.
package curve

import "math"

// Curve is a pure shaping function of normalized time
type Curve func(t float64) float64

// At evaluates the curve at t
func (c Curve) At(t float64) float64 {
	return c(t)
}

// End returns the curve value at t=1
// Most curves end at 1, oscillating ones may not; query instead of assuming
func (c Curve) End() float64 {
	return c(1)
}

// Then feeds the output of c into next
func (c Curve) Then(next Curve) Curve {
	return Compose(next, c)
}

// DefaultDecayRate is the exponent rate used by ExponentialDecelerate
const DefaultDecayRate = 5.0

var (
	// Linear maps t to itself
	Linear Curve = func(t float64) float64 { return t }

	// EaseIn is quadratic acceleration from rest
	EaseIn = Accelerate(1)

	// EaseOut is quadratic deceleration to rest
	EaseOut = Decelerate(1)

	// EaseInOut is quadratic ease at both ends, symmetric about t=0.5
	EaseInOut = Ease(1)
)

// Accelerate returns t^(strength+1)
// Sign is preserved for t<0 so the curve stays defined outside [0,1]
func Accelerate(strength float64) Curve {
	exp := strength + 1
	return func(t float64) float64 {
		return signedPow(t, exp)
	}
}

// Decelerate returns the ease-out counterpart of Accelerate
// Larger strength stops more sharply near t=1
func Decelerate(strength float64) Curve {
	return Invert(Accelerate(strength))
}

// Ease returns an ease-in-out curve, strength 1 is quadratic
// As strength grows the curve approaches a step at t=0.5
func Ease(strength float64) Curve {
	return Mirror(Accelerate(strength))
}

// ExponentialDecelerate approaches 1 by exponential decay at DefaultDecayRate
func ExponentialDecelerate() Curve {
	return ExponentialDecay(DefaultDecayRate)
}

// ExponentialDecay returns (1-e^(-rate*t)) / (1-e^(-rate))
// Normalized so f(0)=0 and f(1)=1; rate <= 0 degrades to Linear
func ExponentialDecay(rate float64) Curve {
	if rate <= 0 {
		return Linear
	}
	norm := 1 - math.Exp(-rate)
	return func(t float64) float64 {
		return (1 - math.Exp(-rate*t)) / norm
	}
}

// Overshoot returns a springy curve passing 1 count times before settling
// f(t) = 1 - (1-t)^(2c) * cos((2c-1/2)*pi*t), so f(0)=0 and f(1)=1 exactly
// Each successive overshoot is smaller; count < 1 is treated as 1
func Overshoot(count int) Curve {
	if count < 1 {
		count = 1
	}
	damping := float64(2 * count)
	omega := (float64(2*count) - 0.5) * math.Pi
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, damping)*math.Cos(omega*t)
	}
}

// Shake oscillates shakes times around 0, ramping amplitude up to the midpoint
// and back down to 0 at t=1. It ends at 0, not 1.
func Shake(shakes int) Curve {
	envelope := Split(0.5, EaseInOut, Complement(EaseInOut))
	return Mul(Sine(float64(shakes)), envelope)
}

func signedPow(t, exp float64) float64 {
	if t < 0 {
		return -math.Pow(-t, exp)
	}
	return math.Pow(t, exp)
}
