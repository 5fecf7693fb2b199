package vmath

// Vec2 is a 2D point or offset
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates both axes
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
	}
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Vec3 is a 3D vector, also used for HSV or RGB triples
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates all three components
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
		Z: Lerp(v.Z, to.Z, t),
	}
}

// Channels is a variable-length tuple interpolated per channel
// Colors decomposed into RGBA or HSVA fit here
type Channels []float64

// Lerp interpolates channel by channel
// Extra channels of the longer tuple are dropped
func (c Channels) Lerp(to Channels, t float64) Channels {
	n := min(len(c), len(to))
	out := make(Channels, n)
	for i := 0; i < n; i++ {
		out[i] = Lerp(c[i], to[i], t)
	}
	return out
}
