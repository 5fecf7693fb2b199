// Package phase runs the demo's endless four-phase animation cycle:
// forward, back to rest, backward, back to rest.
package phase

// Phase is one leg of the cycle
type Phase int

const (
	Forward Phase = iota
	ForwardRevert
	Backward
	BackwardRevert
)

// phaseCount is the number of phases before the cycle wraps
const phaseCount = 4

// Next returns the phase that follows p, wrapping to Forward
func (p Phase) Next() Phase {
	return (p + 1) % phaseCount
}

// IsBackward reports whether the phase moves in the negative direction
func (p Phase) IsBackward() bool {
	return p >= Backward
}

// IsReverting reports whether the phase returns to the rest state
func (p Phase) IsReverting() bool {
	return p == ForwardRevert || p == BackwardRevert
}

// Direction returns +1 for forward phases and -1 for backward ones
func (p Phase) Direction() float64 {
	if p.IsBackward() {
		return -1
	}
	return 1
}

// Apply maps curve progress to displacement for this phase
// Reverting phases yield end - progress; end is c(1), not assumed to be 1
func (p Phase) Apply(progress, end float64) float64 {
	if p.IsReverting() {
		return end - progress
	}
	return progress
}

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Forward:
		return "forward"
	case ForwardRevert:
		return "forward-revert"
	case Backward:
		return "backward"
	case BackwardRevert:
		return "backward-revert"
	default:
		return "unknown"
	}
}

// Frame is one rendered step of the cycle
type Frame struct {
	Phase Phase
	// Progress is the raw curve output delivered by the animator
	Progress float64
	// T is the phase-applied displacement in curve units, before direction
	T float64
}

// Direction returns the frame's phase direction
func (f Frame) Direction() float64 {
	return f.Phase.Direction()
}

// Signed returns T with the phase direction applied
func (f Frame) Signed() float64 {
	return f.T * f.Phase.Direction()
}
