package curve

import (
	"sync"

	"github.com/fogleman/ease"
)

// Entry is a named catalog curve
type Entry struct {
	Name  string
	Title string
	Curve Curve
}

// Registry is an ordered, concurrency-safe collection of named curves
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds or replaces a named curve, keeping first-registration order
func (r *Registry) Register(name, title string, c Curve) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		r.entries[i] = Entry{Name: name, Title: title, Curve: c}
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Title: title, Curve: c})
}

// Lookup returns the curve registered under name
func (r *Registry) Lookup(name string) (Curve, bool) {
	e, ok := r.Entry(name)
	return e.Curve, ok
}

// Entry returns the full entry registered under name
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a snapshot of all entries in registration order
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns registered names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered curves
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Catalog is the default registry: the demo picker curves followed by
// adapters of github.com/fogleman/ease
var Catalog = DefaultRegistry()

// DefaultRegistry builds a fresh registry with the standard curves
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("ease", "Ease", EaseInOut)
	r.Register("ease-in", "Ease In", EaseIn)
	r.Register("ease-out", "Ease Out", EaseOut)
	r.Register("linear", "Linear", Linear)

	r.Register("strong-ease", "Strong Ease", Ease(3))
	r.Register("strong-ease-in", "Strong Ease In", Accelerate(3))
	r.Register("strong-ease-out", "Strong Ease Out", Decelerate(3))

	r.Register("exponential-ease-out", "Exponential Ease Out", ExponentialDecelerate())

	r.Register("overshoot", "Overshoot", Overshoot(1))
	r.Register("overshoot3", "Overshoot x3", Overshoot(3))

	r.Register("shake", "Shake", Shake(5))

	// fogleman/ease functions already have the Curve signature
	r.Register("sine-in-out", "Sine In Out", ease.InOutSine)
	r.Register("cubic-in-out", "Cubic In Out", ease.InOutCubic)
	r.Register("back-out", "Back Out", ease.OutBack)
	r.Register("elastic-out", "Elastic Out", ease.OutElastic)
	r.Register("bounce-out", "Bounce Out", ease.OutBounce)

	return r
}

// Lookup finds a curve in the default catalog
func Lookup(name string) (Curve, bool) {
	return Catalog.Lookup(name)
}

// Names lists the default catalog
func Names() []string {
	return Catalog.Names()
}
