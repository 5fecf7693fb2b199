package curve

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
)

const tolerance = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestLinearEndpoints(t *testing.T) {
	if Linear(0) != 0 {
		t.Errorf("Expected Linear(0) = 0, got %v", Linear(0))
	}
	if Linear(1) != 1 {
		t.Errorf("Expected Linear(1) = 1, got %v", Linear(1))
	}
	if Linear(-0.5) != -0.5 || Linear(1.5) != 1.5 {
		t.Error("Linear should be identity outside [0,1]")
	}
}

func TestStandardEndpoints(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
	}{
		{"EaseIn", EaseIn},
		{"EaseOut", EaseOut},
		{"EaseInOut", EaseInOut},
		{"Ease3", Ease(3)},
		{"Decelerate3", Decelerate(3)},
		{"Accelerate3", Accelerate(3)},
		{"ExponentialDecelerate", ExponentialDecelerate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c(0); !almostEqual(got, 0, tolerance) {
				t.Errorf("Expected f(0) = 0, got %v", got)
			}
			if got := tt.c.End(); !almostEqual(got, 1, tolerance) {
				t.Errorf("Expected f(1) = 1, got %v", got)
			}
		})
	}
}

func TestMonotonicEasing(t *testing.T) {
	curves := map[string]Curve{
		"EaseIn":                EaseIn,
		"EaseOut":               EaseOut,
		"EaseInOut":             EaseInOut,
		"Ease5":                 Ease(5),
		"Decelerate4":           Decelerate(4),
		"ExponentialDecelerate": ExponentialDecelerate(),
	}

	for name, c := range curves {
		prev := c(0)
		for i := 1; i <= 1000; i++ {
			v := c(float64(i) / 1000)
			if v < prev-tolerance {
				t.Errorf("%s: expected non-decreasing output, f(%v)=%v < %v", name, float64(i)/1000, v, prev)
				break
			}
			prev = v
		}
	}
}

func TestEaseInOutSymmetry(t *testing.T) {
	for _, c := range []Curve{EaseInOut, Ease(2), Ease(7.5)} {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			if sum := c(x) + c(1-x); !almostEqual(sum, 1, tolerance) {
				t.Errorf("Expected f(t)+f(1-t) = 1 at t=%v, got %v", x, sum)
			}
		}
		if mid := c(0.5); !almostEqual(mid, 0.5, tolerance) {
			t.Errorf("Expected f(0.5) = 0.5, got %v", mid)
		}
	}
}

func TestZeroDerivativeAtEasedEnds(t *testing.T) {
	const h = 1e-6
	if d := (EaseIn(h) - EaseIn(0)) / h; d > 1e-4 {
		t.Errorf("Expected EaseIn slope ~0 at t=0, got %v", d)
	}
	if d := (EaseOut(1) - EaseOut(1-h)) / h; d > 1e-4 {
		t.Errorf("Expected EaseOut slope ~0 at t=1, got %v", d)
	}
	if d := (EaseInOut(h) - EaseInOut(0)) / h; d > 1e-4 {
		t.Errorf("Expected EaseInOut slope ~0 at t=0, got %v", d)
	}
	if d := (EaseInOut(1) - EaseInOut(1-h)) / h; d > 1e-4 {
		t.Errorf("Expected EaseInOut slope ~0 at t=1, got %v", d)
	}
}

func TestMatchesReferenceQuadratics(t *testing.T) {
	for i := 0; i <= 50; i++ {
		x := float64(i) / 50
		if !almostEqual(EaseIn(x), ease.InQuad(x), tolerance) {
			t.Errorf("EaseIn(%v) = %v, reference %v", x, EaseIn(x), ease.InQuad(x))
		}
		if !almostEqual(EaseOut(x), ease.OutQuad(x), tolerance) {
			t.Errorf("EaseOut(%v) = %v, reference %v", x, EaseOut(x), ease.OutQuad(x))
		}
		if !almostEqual(EaseInOut(x), ease.InOutQuad(x), tolerance) {
			t.Errorf("EaseInOut(%v) = %v, reference %v", x, EaseInOut(x), ease.InOutQuad(x))
		}
	}
}

func TestEaseStrengthApproachesStep(t *testing.T) {
	mild := Ease(1)
	strong := Ease(50)

	if strong(0.4) >= mild(0.4) {
		t.Errorf("Expected stronger ease to lag below the mild one before midpoint, got %v >= %v", strong(0.4), mild(0.4))
	}
	if strong(0.4) > 0.01 {
		t.Errorf("Expected Ease(50)(0.4) near 0, got %v", strong(0.4))
	}
	if strong(0.6) < 0.99 {
		t.Errorf("Expected Ease(50)(0.6) near 1, got %v", strong(0.6))
	}
}

func TestDecelerateStrength(t *testing.T) {
	soft := Decelerate(1)
	sharp := Decelerate(3)
	for _, x := range []float64{0.1, 0.3, 0.5, 0.8} {
		if sharp(x) <= soft(x) {
			t.Errorf("Expected Decelerate(3)(%v) > Decelerate(1)(%v), got %v <= %v", x, x, sharp(x), soft(x))
		}
	}
}

func TestFactoriesArePure(t *testing.T) {
	a, b := Ease(2.5), Ease(2.5)
	o1, o2 := Overshoot(2), Overshoot(2)
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if a(x) != b(x) {
			t.Errorf("Ease(2.5) differs between instances at %v", x)
		}
		if o1(x) != o2(x) {
			t.Errorf("Overshoot(2) differs between instances at %v", x)
		}
	}
}

func TestExponentialDecay(t *testing.T) {
	c := ExponentialDecelerate()
	if c(0) != 0 {
		t.Errorf("Expected f(0) = 0, got %v", c(0))
	}
	if c(1) != 1 {
		t.Errorf("Expected f(1) = 1 exactly, got %v", c(1))
	}
	// Front-loaded: most of the distance is covered early
	if c(0.3) < 0.75 {
		t.Errorf("Expected f(0.3) > 0.75 for default rate, got %v", c(0.3))
	}

	fast := ExponentialDecay(12)
	if fast(0.2) <= c(0.2) {
		t.Errorf("Expected higher rate to decelerate sooner, got %v <= %v", fast(0.2), c(0.2))
	}

	degenerate := ExponentialDecay(0)
	if degenerate(0.37) != 0.37 {
		t.Errorf("Expected rate 0 to degrade to linear, got %v", degenerate(0.37))
	}
}

func overshootRuns(c Curve, samples int) int {
	runs := 0
	above := false
	for i := 1; i < samples; i++ {
		v := c(float64(i) / float64(samples))
		if v > 1 && !above {
			runs++
		}
		above = v > 1
	}
	return runs
}

func TestOvershootEndpoints(t *testing.T) {
	for k := 1; k <= 5; k++ {
		c := Overshoot(k)
		if c(0) != 0 {
			t.Errorf("Overshoot(%d)(0): expected 0, got %v", k, c(0))
		}
		if c(1) != 1 {
			t.Errorf("Overshoot(%d)(1): expected exactly 1, got %v", k, c(1))
		}
	}
}

func TestOvershootExceedsTarget(t *testing.T) {
	tests := []struct {
		count int
		runs  int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
	}

	for _, tt := range tests {
		c := Overshoot(tt.count)
		if got := overshootRuns(c, 10000); got != tt.runs {
			t.Errorf("Overshoot(%d): expected %d overshoots, got %d", tt.count, tt.runs, got)
		}
	}
}

func TestOvershootDecreasingAmplitude(t *testing.T) {
	c := Overshoot(3)
	// Peaks sit where the cosine term reaches -1: t = (2j+1)/(2c-1/2)
	omega := 5.5
	prev := math.Inf(1)
	for j := 0; j < 3; j++ {
		peak := c(float64(2*j+1) / omega)
		if peak <= 1 {
			t.Errorf("Expected overshoot %d above 1, got %v", j, peak)
		}
		if peak >= prev {
			t.Errorf("Expected overshoot %d smaller than previous, got %v >= %v", j, peak, prev)
		}
		prev = peak
	}
}

func TestOvershootScenario(t *testing.T) {
	c := Overshoot(1)
	if c(0) != 0 {
		t.Errorf("Expected 0 at t=0, got %v", c(0))
	}
	mid := c(0.5)
	if mid <= 0 {
		t.Errorf("Expected positive value at t=0.5, got %v", mid)
	}
	if c(1) != 1 {
		t.Errorf("Expected 1 at t=1, got %v", c(1))
	}
}

func TestOvershootInvalidCount(t *testing.T) {
	zero := Overshoot(0)
	one := Overshoot(1)
	neg := Overshoot(-4)
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if zero(x) != one(x) || neg(x) != one(x) {
			t.Errorf("Expected count < 1 to behave as 1 at %v", x)
		}
	}
}

func TestShake(t *testing.T) {
	c := Shake(5)
	if !almostEqual(c(0), 0, tolerance) {
		t.Errorf("Expected shake to start at 0, got %v", c(0))
	}
	if !almostEqual(c.End(), 0, tolerance) {
		t.Errorf("Expected shake to end at 0, got %v", c.End())
	}

	maxAbs := 0.0
	for i := 0; i <= 1000; i++ {
		v := c(float64(i) / 1000)
		if math.Abs(v) > 1+tolerance {
			t.Fatalf("Expected |shake| <= 1, got %v at %v", v, float64(i)/1000)
		}
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs < 0.9 {
		t.Errorf("Expected near full amplitude around the midpoint, got max %v", maxAbs)
	}

	// Envelope is small near the ends
	quarterWave := 1.0 / 20
	if math.Abs(c(quarterWave)) > 0.1 {
		t.Errorf("Expected damped amplitude near start, got %v", c(quarterWave))
	}
}
