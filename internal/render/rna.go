package render

import (
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const (
	rnaSpin = 0.15

	// baseReach is how far a base sticks out from the backbone
	baseReach = 0.15
)

var (
	// hairpins are where loop markers sit, as fractions of the strand
	hairpins = []float64{0.25, 0.5, 0.75}

	rnaBackbone = palette.Token("#ff9800")
)

// RNA draws a single winding strand with its bases facing outward, hairpin
// loop markers and colored 5' and 3' caps. Thymine is transcribed to uracil.
func RNA(sequence string, limit int) *scene.Scene {
	units := seq.ToRNA(prepare(sequence, limit))
	n := len(units)
	if n == 0 {
		return Placeholder(seq.RNA)
	}

	pts := geom.Winding(n, geom.DefaultWinding)
	body := scene.NewGroup(
		scene.NewTube(pts, 0.035, false, scene.Emit(rnaBackbone, "#f57c00", 0.4)).Named("backbone"),
	)

	for i, p := range pts {
		out := geom.V(p.X, 0, p.Z).Norm().Scale(baseReach)
		body.Add(scene.NewGroup(
			scene.NewSphere(0.06, scene.Glow(palette.ColorFor(units[i], seq.RNA), 0.6)).At(p.Add(out)).Named(named("base", i)),
			scene.NewCylinder(0.01, 0.01, baseReach, scene.Standard("#ffcc80").Faded(0.6)).
				At(p.Add(out.Scale(0.5))).
				Rotated(radial(angleOf(p))),
		))
	}

	for i, t := range hairpins {
		p, _ := geom.At(pts, t)
		body.Add(scene.NewTorus(0.15, 0.03, scene.Emit("#ffab40", "#ff9100", 0.5).Faded(0.7)).
			At(p).
			Rotated(geom.V(halfPi, 0, 0)).
			Named(named("hairpin", i)))
	}

	first, last := pts[0], pts[n-1]
	body.Add(
		scene.NewSphere(0.12, scene.Emit("#4caf50", "#2e7d32", 0.8)).At(first.Add(geom.V(0, -0.2, 0))).Named("cap-5"),
		scene.NewSphere(0.12, scene.Emit("#f44336", "#c62828", 0.8)).At(last.Add(geom.V(0, 0.2, 0))).Named("cap-3"),
	)

	floating, bob := scene.Float(body, 0.8, 0.15, 0.2)
	root := scene.NewGroup(
		floating,
		scene.NewPointLight(rnaBackbone, 1).At(geom.V(0, 0, 3)),
	)

	sc := newScene(seq.RNA, n, root)
	sc.OnFrame(scene.Spin(root, rnaSpin), bob)
	return sc
}
