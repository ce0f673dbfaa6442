package scene

import (
	"math"

	"github.com/google/uuid"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
)

// UpdateFunc mutates scene nodes for one frame. elapsed is the number of
// seconds since the scene was first shown and only ever grows.
type UpdateFunc func(elapsed float64)

// Scene is one structure or trait model: a node tree plus the callbacks
// that animate it. It owns its nodes exclusively.
type Scene struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`

	// Units is how many sequence units are on screen
	Units int `json:"units"`

	// Placeholder is set on the loading, empty and "no model" scenes
	Placeholder bool `json:"placeholder,omitempty"`

	Root *Node `json:"root"`

	updates  []UpdateFunc
	elapsed  float64
	disposed bool
}

// New returns a scene around root.
func New(title string, root *Node) *Scene {
	if root == nil {
		root = NewGroup()
	}
	return &Scene{ID: uuid.New(), Title: title, Root: root}
}

// OnFrame registers fn to run on every Advance.
func (s *Scene) OnFrame(fns ...UpdateFunc) {
	if s.disposed {
		return
	}
	for _, fn := range fns {
		if fn != nil {
			s.updates = append(s.updates, fn)
		}
	}
}

// Bind registers fn to animate n. fn stops being called once n is disposed.
func (s *Scene) Bind(n *Node, fn func(n *Node, elapsed float64)) {
	s.OnFrame(func(elapsed float64) {
		if n.disposed {
			return
		}
		fn(n, elapsed)
	})
}

// Advance runs the frame callbacks at the given elapsed time. Time that
// steps backwards is clamped so callbacks see a monotonic clock. Advancing a
// disposed scene does nothing.
func (s *Scene) Advance(elapsed float64) {
	if s.disposed {
		return
	}
	if elapsed < s.elapsed {
		elapsed = s.elapsed
	}
	s.elapsed = elapsed

	for _, fn := range s.updates {
		fn(elapsed)
	}
}

// Elapsed is the time of the last Advance.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Callbacks is the number of registered frame callbacks.
func (s *Scene) Callbacks() int { return len(s.updates) }

// Dispose tears the scene down: callbacks are dropped and every node is
// marked disposed. It is safe to call more than once.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.updates = nil
	s.Root.dispose()
}

// Disposed reports whether Dispose has been called.
func (s *Scene) Disposed() bool { return s.disposed }

// Find returns the first node named name.
func (s *Scene) Find(name string) *Node { return s.Root.Find(name) }

// Walk visits every node with its world transform.
func (s *Scene) Walk(fn func(n *Node, world geom.Affine) bool) { s.Root.Walk(fn) }

// Spin rotates n about Y at a constant angular velocity in radians per second.
func Spin(n *Node, speed float64) UpdateFunc {
	return func(elapsed float64) {
		n.Rotation.Y = elapsed * speed
	}
}

// Float wraps child in a group that bobs and wobbles gently around where it
// was placed, and returns the group with the callback driving it.
func Float(child *Node, speed, rotation, float float64) (*Node, UpdateFunc) {
	g := NewGroup(child)
	return g, func(elapsed float64) {
		t := elapsed / 4 * speed
		g.Rotation = geom.Vec3{
			X: math.Cos(t) / 8 * rotation,
			Y: math.Sin(t) / 8 * rotation,
			Z: math.Sin(t) / 20 * rotation,
		}
		g.Position.Y = math.Sin(t) / 10 * float
	}
}

// Pulse returns an oscillation between lo and hi with the given angular
// frequency, a common driver for emissive intensity and scale.
func Pulse(elapsed, freq, lo, hi float64) float64 {
	return lo + (hi-lo)*(math.Sin(elapsed*freq)+1)/2
}
