package raster

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

const (
	// wireRadius is how thick wireframes and lines are drawn, in world units
	wireRadius = 0.008

	minSegments = 12
	maxSegments = 64

	// tubeSteps is how many strokes a tube spends between two path points
	tubeSteps = 3

	// maxCells caps how many strokes a box is filled with across its section
	maxCells = 12
)

// Stroke is a capsule from A to B whose radius tapers from RA to RB. Every
// primitive is drawn as strokes; a sphere is a stroke with A == B.
type Stroke struct {
	A, B   geom.Vec3
	RA, RB float64

	Color    colorful.Color
	Glow     colorful.Color
	Emissive float64
	Alpha    float64

	// Flat strokes are not lit
	Flat bool
}

// Light is a point light in world space.
type Light struct {
	Position  geom.Vec3
	Color     colorful.Color
	Intensity float64
}

// Frame is everything visible in a scene at one instant, in world space.
type Frame struct {
	Strokes []Stroke
	Lights  []Light
}

// Flatten snapshots the visible primitives of a scene. The result shares
// nothing with the scene, so it can be rasterised while the scene moves on.
func Flatten(sc *scene.Scene) Frame {
	var f Frame
	if sc == nil || sc.Root == nil {
		return f
	}

	sc.Walk(func(n *scene.Node, world geom.Affine) bool {
		if n.Hidden {
			return false
		}
		if n.Kind == scene.PointLight {
			f.Lights = append(f.Lights, Light{
				Position:  world.T,
				Color:     n.Material.Color.Color(),
				Intensity: n.Intensity,
			})
			return true
		}
		if n.Kind == scene.Group {
			return true
		}

		base := strokeOf(n.Material)
		if s, ok := ellipsoid(n, world); ok {
			s.Color, s.Glow, s.Emissive, s.Alpha, s.Flat = base.Color, base.Glow, base.Emissive, base.Alpha, base.Flat
			f.Strokes = append(f.Strokes, s)
			return true
		}
		for _, s := range shape(n) {
			s.A, s.B = world.Apply(s.A), world.Apply(s.B)
			k := radiusScale(n, world)
			s.RA, s.RB = s.RA*k, s.RB*k
			s.Color, s.Glow, s.Emissive, s.Alpha, s.Flat = base.Color, base.Glow, base.Emissive, base.Alpha, base.Flat
			f.Strokes = append(f.Strokes, s)
		}
		return true
	})
	return f
}

func strokeOf(m scene.Material) Stroke {
	s := Stroke{
		Color: m.Color.Color(),
		Alpha: m.Alpha(),
		Flat:  m.Wireframe,
	}
	if m.Emissive != "" {
		s.Glow, s.Emissive = m.Emissive.Color(), m.EmissiveIntensity
	}
	return s
}

// shape returns the strokes of a primitive in its local space.
func shape(n *scene.Node) []Stroke {
	wire := n.Material.Wireframe

	switch n.Kind {
	case scene.Sphere, scene.Icosahedron, scene.Octahedron:
		r := n.Radius
		if n.Kind != scene.Sphere {
			r *= 0.85
		}
		if wire {
			return greatCircles(r)
		}
		return []Stroke{dot(geom.Vec3{}, r)}

	case scene.Capsule:
		return []Stroke{seg(geom.V(0, -n.Height/2, 0), geom.V(0, n.Height/2, 0), n.Radius, n.Radius)}

	case scene.Cylinder:
		return []Stroke{seg(geom.V(0, -n.Height/2, 0), geom.V(0, n.Height/2, 0), n.Radius, n.RadiusTop)}

	case scene.Cone:
		return []Stroke{seg(geom.V(0, -n.Height/2, 0), geom.V(0, n.Height/2, 0), n.Radius, 0)}

	case scene.Torus:
		arc := n.Arc
		if arc <= 0 {
			arc = 2 * math.Pi
		}
		t := n.Thickness
		if wire {
			t = wireRadius
		}
		return polyline(circle(n.Radius, arc, t), t, arc >= 2*math.Pi)

	case scene.Box:
		return box(n.Size)

	case scene.Tube:
		t := n.Thickness
		if wire {
			t = wireRadius
		}
		return polyline(smooth(n.Path, n.Closed), t, n.Closed)

	case scene.Line:
		return polyline(n.Path, wireRadius, n.Closed)
	}
	return nil
}

func dot(p geom.Vec3, r float64) Stroke {
	return Stroke{A: p, B: p, RA: r, RB: r}
}

func seg(a, b geom.Vec3, ra, rb float64) Stroke {
	return Stroke{A: a, B: b, RA: ra, RB: rb}
}

func polyline(pts []geom.Vec3, r float64, closed bool) []Stroke {
	if len(pts) == 1 {
		return []Stroke{dot(pts[0], r)}
	}
	var out []Stroke
	for i := 1; i < len(pts); i++ {
		out = append(out, seg(pts[i-1], pts[i], r, r))
	}
	if closed && len(pts) > 2 {
		out = append(out, seg(pts[len(pts)-1], pts[0], r, r))
	}
	return out
}

// smooth resamples a tube's path along a Catmull-Rom spline through its points.
func smooth(path []geom.Vec3, closed bool) []geom.Vec3 {
	if len(path) < 3 {
		return path
	}
	n := (len(path)-1)*tubeSteps + 1
	if closed {
		n = len(path) * tubeSteps
	}
	return geom.CatmullRom{Points: path, Closed: closed}.Sample(n)
}

// circle samples a ring in the XY plane, the plane tori lie in.
func circle(radius, arc, thickness float64) []geom.Vec3 {
	count := int(math.Ceil(radius * arc / (4 * math.Max(thickness, 0.01))))
	if count < minSegments {
		count = minSegments
	}
	if count > maxSegments {
		count = maxSegments
	}

	pts := make([]geom.Vec3, count+1)
	for i := range pts {
		a := arc * float64(i) / float64(count)
		pts[i] = geom.V(math.Cos(a)*radius, math.Sin(a)*radius, 0)
	}
	if arc >= 2*math.Pi {
		pts = pts[:count]
	}
	return pts
}

func greatCircles(r float64) []Stroke {
	ring := circle(r, 2*math.Pi, wireRadius)
	var out []Stroke
	for _, rot := range []geom.Vec3{{}, geom.V(math.Pi/2, 0, 0), geom.V(0, math.Pi/2, 0)} {
		pts := make([]geom.Vec3, len(ring))
		for i, p := range ring {
			pts[i] = p.RotateEuler(rot)
		}
		out = append(out, polyline(pts, wireRadius, true)...)
	}
	return out
}

// box fills a box with parallel strokes along its longest side.
func box(size geom.Vec3) []Stroke {
	ext := [3]float64{math.Abs(size.X), math.Abs(size.Y), math.Abs(size.Z)}
	long := 0
	for i := 1; i < 3; i++ {
		if ext[i] > ext[long] {
			long = i
		}
	}
	u, v := (long+1)%3, (long+2)%3

	cell := math.Min(ext[u], ext[v])
	cell = math.Max(cell, math.Max(ext[u], ext[v])/maxCells)
	if cell <= 0 {
		return nil
	}
	nu := int(math.Max(1, math.Round(ext[u]/cell)))
	nv := int(math.Max(1, math.Round(ext[v]/cell)))
	r := cell / 2
	half := math.Max(ext[long]/2-r, 0)

	var out []Stroke
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			var a, b [3]float64
			a[u] = (float64(i)+0.5)*ext[u]/float64(nu) - ext[u]/2
			a[v] = (float64(j)+0.5)*ext[v]/float64(nv) - ext[v]/2
			b = a
			a[long], b[long] = -half, half
			out = append(out, seg(geom.V(a[0], a[1], a[2]), geom.V(b[0], b[1], b[2]), r, r))
		}
	}
	return out
}

// radiusScale is how much the node's world transform widens its strokes.
// Lines stay thin however they are scaled.
func radiusScale(n *scene.Node, world geom.Affine) float64 {
	if n.Kind == scene.Line || n.Material.Wireframe {
		return 1
	}
	return world.MaxScale()
}

// ellipsoid draws a sphere that has been stretched as a stroke along its
// longest axis, as wide as its middle axis.
func ellipsoid(n *scene.Node, world geom.Affine) (Stroke, bool) {
	if n.Kind != scene.Sphere || n.Material.Wireframe {
		return Stroke{}, false
	}

	var cols [3]geom.Vec3
	for c := 0; c < 3; c++ {
		cols[c] = geom.V(world.M[0][c], world.M[1][c], world.M[2][c])
	}
	sort.Slice(cols[:], func(i, j int) bool { return cols[i].Len() > cols[j].Len() })

	major, mid := cols[0].Len(), cols[1].Len()
	if mid <= 0 || major/mid < 1.2 {
		return Stroke{}, false
	}

	d := cols[0].Norm().Scale(n.Radius * (major - mid))
	r := n.Radius * mid
	return seg(world.T.Sub(d), world.T.Add(d), r, r), true
}
