// Package scene is the scene graph structures and trait models are built from,
// and the frame driver that animates them.
package scene

import (
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
)

// Kind is the primitive a node draws.
type Kind string

const (
	Group       Kind = "group"
	Sphere      Kind = "sphere"
	Cylinder    Kind = "cylinder"
	Cone        Kind = "cone"
	Torus       Kind = "torus"
	Box         Kind = "box"
	Icosahedron Kind = "icosahedron"
	Octahedron  Kind = "octahedron"
	Capsule     Kind = "capsule"
	Tube        Kind = "tube"
	Line        Kind = "line"
	PointLight  Kind = "light"
)

// Node is one element of the scene graph. Shape fields are read according to
// Kind; the rest are left zero.
type Node struct {
	Name string `json:"name,omitempty"`
	Kind Kind   `json:"kind"`

	Position geom.Vec3 `json:"position"`
	Rotation geom.Vec3 `json:"rotation"`
	Scale    geom.Vec3 `json:"scale"`

	// Radius of spheres, capsules, polyhedra, cones and the ring of a torus
	Radius float64 `json:"radius,omitempty"`

	// RadiusTop of a cylinder. Radius is its bottom.
	RadiusTop float64 `json:"radiusTop,omitempty"`

	// Thickness of a torus ring or a tube
	Thickness float64 `json:"thickness,omitempty"`

	// Height of cylinders and cones, length of capsules
	Height float64 `json:"height,omitempty"`

	// Arc of a torus in radians, zero for a full ring
	Arc float64 `json:"arc,omitempty"`

	// Size of a box
	Size geom.Vec3 `json:"size,omitempty"`

	// Path of a tube or line and whether it loops back on itself
	Path   []geom.Vec3 `json:"path,omitempty"`
	Closed bool        `json:"closed,omitempty"`

	// Intensity of a light
	Intensity float64 `json:"intensity,omitempty"`

	Material Material `json:"material"`
	Hidden   bool     `json:"hidden,omitempty"`
	Children []*Node  `json:"children,omitempty"`

	disposed bool
}

func newNode(k Kind, m Material) *Node {
	return &Node{Kind: k, Scale: geom.Splat(1), Material: m}
}

// NewGroup returns an empty transform node holding children.
func NewGroup(children ...*Node) *Node {
	n := newNode(Group, Material{})
	return n.Add(children...)
}

// NewSphere returns a sphere of radius r.
func NewSphere(r float64, m Material) *Node {
	n := newNode(Sphere, m)
	n.Radius = r
	return n
}

// NewCylinder returns a cylinder along Y centered on its origin.
func NewCylinder(top, bottom, height float64, m Material) *Node {
	n := newNode(Cylinder, m)
	n.RadiusTop, n.Radius, n.Height = top, bottom, height
	return n
}

// NewCone returns a cone along Y with its tip pointing up.
func NewCone(r, height float64, m Material) *Node {
	n := newNode(Cone, m)
	n.Radius, n.Height = r, height
	return n
}

// NewTorus returns a full ring in the XY plane.
func NewTorus(r, thickness float64, m Material) *Node {
	n := newNode(Torus, m)
	n.Radius, n.Thickness = r, thickness
	return n
}

// NewArc returns a partial torus sweeping arc radians from +X.
func NewArc(r, thickness, arc float64, m Material) *Node {
	n := NewTorus(r, thickness, m)
	n.Arc = arc
	return n
}

// NewBox returns a box with the given extents.
func NewBox(size geom.Vec3, m Material) *Node {
	n := newNode(Box, m)
	n.Size = size
	return n
}

// NewIcosahedron returns an icosahedron with circumradius r.
func NewIcosahedron(r float64, m Material) *Node {
	n := newNode(Icosahedron, m)
	n.Radius = r
	return n
}

// NewOctahedron returns an octahedron with circumradius r.
func NewOctahedron(r float64, m Material) *Node {
	n := newNode(Octahedron, m)
	n.Radius = r
	return n
}

// NewCapsule returns a capsule along Y whose straight section is length long.
func NewCapsule(r, length float64, m Material) *Node {
	n := newNode(Capsule, m)
	n.Radius, n.Height = r, length
	return n
}

// NewTube sweeps a circle of the given thickness along path.
func NewTube(path []geom.Vec3, thickness float64, closed bool, m Material) *Node {
	n := newNode(Tube, m)
	n.Path, n.Thickness, n.Closed = path, thickness, closed
	return n
}

// NewLine returns a polyline through points.
func NewLine(points []geom.Vec3, m Material) *Node {
	n := newNode(Line, m)
	n.Path = points
	return n
}

// NewPointLight returns a light that brightens nearby primitives.
func NewPointLight(color palette.Token, intensity float64) *Node {
	n := newNode(PointLight, Material{Color: color})
	n.Intensity = intensity
	return n
}

// At moves the node.
func (n *Node) At(p geom.Vec3) *Node {
	n.Position = p
	return n
}

// Rotated sets the euler rotation of the node.
func (n *Node) Rotated(r geom.Vec3) *Node {
	n.Rotation = r
	return n
}

// Scaled scales the node uniformly.
func (n *Node) Scaled(s float64) *Node {
	n.Scale = geom.Splat(s)
	return n
}

// ScaledBy scales the node per axis.
func (n *Node) ScaledBy(s geom.Vec3) *Node {
	n.Scale = s
	return n
}

// Named labels the node so it can be found later.
func (n *Node) Named(name string) *Node {
	n.Name = name
	return n
}

// Add appends children, skipping nils.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Local is the node's transform relative to its parent.
func (n *Node) Local() geom.Affine {
	return geom.Compose(n.Position, n.Rotation, n.Scale)
}

// Disposed reports whether the scene owning this node has been torn down.
func (n *Node) Disposed() bool { return n.disposed }

// Walk visits n and its descendants depth first with their world
// transforms. Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(n *Node, world geom.Affine) bool) {
	n.walk(geom.Identity(), fn)
}

func (n *Node) walk(parent geom.Affine, fn func(*Node, geom.Affine) bool) {
	world := parent.Mul(n.Local())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// Find returns the first node named name, depth first.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes of kind k under and including n.
func (n *Node) Count(k Kind) int {
	count := 0
	if n.Kind == k {
		count++
	}
	for _, c := range n.Children {
		count += c.Count(k)
	}
	return count
}

func (n *Node) dispose() {
	n.disposed = true
	for _, c := range n.Children {
		c.dispose()
	}
}
