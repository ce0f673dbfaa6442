package geom

import (
	"math"
	"math/rand"
)

// Helix places count points evenly along a cylindrical helix centered
// vertically on the origin. The partner strand of a double helix is the same
// call with phase = π.
func Helix(count int, radius, turns, spacing, phase float64) []Vec3 {
	if count <= 0 {
		return nil
	}

	pts := make([]Vec3, count)
	n := float64(count)
	for i := range pts {
		angle := (float64(i)/n)*turns*2*math.Pi + phase
		pts[i] = Vec3{
			X: math.Cos(angle) * radius,
			Y: (float64(i) - n/2) * spacing,
			Z: math.Sin(angle) * radius,
		}
	}
	return pts
}

// WindingShape parameterizes the single strand path of an RNA.
type WindingShape struct {
	// Radius is the mean distance of the strand from the vertical axis
	Radius float64

	// Bulge is how far a loop pushes the strand out (and pulls it in)
	Bulge float64

	// Loops is the number of bulges along the path (k in sin(t·π·k))
	Loops float64

	// Twists is the number of half turns around the axis
	Twists float64

	// Height is the vertical extent of the path
	Height float64
}

// DefaultWinding is the RNA strand shape.
var DefaultWinding = WindingShape{Radius: 0.8, Bulge: 0.15, Loops: 4, Twists: 3, Height: 4}

// Winding is a helix whose radius swells with sin(t·π·k) so the path bulges
// outward periodically, standing in for hairpin loops.
func Winding(count int, w WindingShape) []Vec3 {
	if count <= 0 {
		return nil
	}

	pts := make([]Vec3, count)
	n := float64(count)
	for i := range pts {
		t := float64(i) / n
		r := w.Radius + math.Sin(t*math.Pi*w.Loops)*w.Bulge
		a := t * math.Pi * w.Twists
		pts[i] = Vec3{
			X: math.Sin(a) * r,
			Y: (t - 0.5) * w.Height,
			Z: math.Cos(a) * r,
		}
	}
	return pts
}

// FoldShape parameterizes a protein backbone: a fast "helix" sinusoid riding
// on a slow "sheet" sinusoid.
type FoldShape struct {
	// HelixFreq and HelixAmp shape the tight coils
	HelixFreq, HelixAmp float64

	// SheetFreq and SheetAmp shape the broad sweep and its vertical ripple
	SheetFreq, SheetAmp float64

	// Sweep is the radius of the broad loop
	Sweep float64

	// Height is the vertical extent of the path
	Height float64
}

// DefaultFold is the protein backbone shape.
var DefaultFold = FoldShape{HelixFreq: 6, HelixAmp: 0.4, SheetFreq: 2, SheetAmp: 0.3, Sweep: 0.6, Height: 3}

// Fold composes two sinusoids of different frequency to approximate
// alpha-helix / beta-sheet alternation. It is not a structure prediction.
func Fold(count int, f FoldShape) []Vec3 {
	if count <= 0 {
		return nil
	}

	pts := make([]Vec3, count)
	n := float64(count)
	for i := range pts {
		t := float64(i) / n
		h := t * math.Pi * f.HelixFreq
		s := t * math.Pi * f.SheetFreq
		pts[i] = Vec3{
			X: math.Sin(h)*f.HelixAmp + math.Sin(s)*f.Sweep,
			Y: (t-0.5)*f.Height + math.Cos(s)*f.SheetAmp,
			Z: math.Cos(h)*f.HelixAmp + math.Cos(s)*f.Sweep,
		}
	}
	return pts
}

// Ring places count points on a horizontal circle at height y. The gap from
// the last point back to the first equals the spacing between neighbors, so a
// tube through them closes cleanly.
func Ring(count int, radius, y float64) []Vec3 {
	if count <= 0 {
		return nil
	}

	pts := make([]Vec3, count)
	for i := range pts {
		a := float64(i) / float64(count) * 2 * math.Pi
		pts[i] = Vec3{X: math.Cos(a) * radius, Y: y, Z: math.Sin(a) * radius}
	}
	return pts
}

// Arc returns count points along a horizontal circular arc from start to
// start+sweep radians, both ends included.
func Arc(count int, radius, start, sweep float64) []Vec3 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []Vec3{{X: math.Cos(start) * radius, Z: math.Sin(start) * radius}}
	}

	pts := make([]Vec3, count)
	for i := range pts {
		a := start + sweep*float64(i)/float64(count-1)
		pts[i] = Vec3{X: math.Cos(a) * radius, Z: math.Sin(a) * radius}
	}
	return pts
}

// At returns the point a fraction t (0..1) of the way along pts by index,
// clamped to the last point. It is how markers get placed "25% along".
func At(pts []Vec3, t float64) (Vec3, bool) {
	if len(pts) == 0 {
		return Vec3{}, false
	}
	i := int(math.Floor(t * float64(len(pts))))
	if i < 0 {
		i = 0
	}
	if i > len(pts)-1 {
		i = len(pts) - 1
	}
	return pts[i], true
}

// Scatter places count points uniformly inside a box of the given extent
// centered on the origin. It's decorative noise and takes its own source.
func Scatter(r *rand.Rand, count int, extent Vec3) []Vec3 {
	pts := make([]Vec3, 0, count)
	for i := 0; i < count; i++ {
		pts = append(pts, Vec3{
			X: (r.Float64() - 0.5) * extent.X,
			Y: (r.Float64() - 0.5) * extent.Y,
			Z: (r.Float64() - 0.5) * extent.Z,
		})
	}
	return pts
}
