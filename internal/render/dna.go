package render

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const (
	helixRadius  = 0.6
	helixTurns   = 3
	helixSpacing = 0.15

	// rungEvery is how often a hydrogen bond rung is drawn between strands
	rungEvery = 3

	dnaSpin = 0.1
)

var strandColors = [2]palette.Token{"#00e5ff", "#7c4dff"}

// DNA draws a double helix: two backbones half a turn apart, a base on each
// strand per unit and a rung every few pairs.
func DNA(sequence string, limit int) *scene.Scene {
	units := prepare(sequence, limit)
	n := len(units)
	if n == 0 {
		return Placeholder(seq.DNA)
	}

	strands := [2][]geom.Vec3{
		geom.Helix(n, helixRadius, helixTurns, helixSpacing, 0),
		geom.Helix(n, helixRadius, helixTurns, helixSpacing, math.Pi),
	}

	body := scene.NewGroup()
	for i, strand := range strands {
		body.Add(scene.NewTube(strand, 0.04, false, scene.Glow(strandColors[i], 0.3)).Named(named("backbone", i)))
	}

	for i := 0; i < n; i++ {
		base := units[i]
		partner := palette.Muted
		if c, err := seq.Complement(base, seq.DNA); err == nil {
			partner = palette.ColorFor(c, seq.DNA)
		}

		pair := scene.NewGroup(
			scene.NewSphere(0.08, scene.Glow(palette.ColorFor(base, seq.DNA), 0.5)).At(strands[0][i]).Named(named("base", i)),
			scene.NewSphere(0.08, scene.Glow(partner, 0.5)).At(strands[1][i]).Named(named("partner", i)),
		)
		if i%rungEvery == 0 {
			pair.Add(scene.NewCylinder(0.015, 0.015, 2*helixRadius-0.1, scene.Standard(palette.White).Faded(0.4)).
				At(geom.V(0, strands[0][i].Y, 0)).
				Rotated(radial(angleOf(strands[0][i]))).
				Named(named("rung", i)))
		}
		body.Add(pair)
	}

	floating, bob := scene.Float(body, 0.5, 0.1, 0.2)
	root := scene.NewGroup(
		floating,
		scene.NewPointLight(strandColors[0], 1).At(geom.V(0, 0, 3)),
	)

	sc := newScene(seq.DNA, n, root)
	sc.OnFrame(scene.Spin(root, dnaSpin), bob)
	return sc
}
