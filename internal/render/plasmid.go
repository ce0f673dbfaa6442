package render

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const (
	innerRadius = 1.2
	outerRadius = 1.35
	markRadius  = 1.27

	// minRing is the fewest points a backbone ring is drawn through
	minRing = 36

	plasmidSpin = 0.1
)

// annotation is a fixed feature marker on the plasmid.
type annotation struct {
	name            string
	at              geom.Vec3
	color, emissive palette.Token
}

var annotations = []annotation{
	{"ori", geom.V(markRadius, 0.3, 0), "#4caf50", "#2e7d32"},
	{"selection-marker", geom.V(-markRadius, 0.3, 0), "#ff9800", "#f57c00"},
	{"mcs", geom.V(0, 0.3, markRadius), "#9c27b0", "#7b1fa2"},
}

// Plasmid draws circular DNA: two closed backbone rings with a base pair per
// unit around them, three feature annotations, a highlighted insert and a
// faint supercoil.
func Plasmid(sequence string, limit int) *scene.Scene {
	units := prepare(sequence, limit)
	n := len(units)
	if n == 0 {
		return Placeholder(seq.Plasmid)
	}

	ring := n
	if ring < minRing {
		ring = minRing
	}

	body := scene.NewGroup(
		scene.NewTube(geom.Ring(ring, innerRadius, 0), 0.04, true, scene.Emit(strandColors[0], "#00b8d4", 0.4)).Named("backbone-0"),
		scene.NewTube(geom.Ring(ring, outerRadius, 0), 0.04, true, scene.Emit(strandColors[1], "#651fff", 0.4)).Named("backbone-1"),
	)

	inner, outer := geom.Ring(n, innerRadius, 0), geom.Ring(n, outerRadius, 0)
	for i := 0; i < n; i++ {
		partner := palette.Muted
		if c, err := seq.Complement(units[i], seq.Plasmid); err == nil {
			partner = palette.ColorFor(c, seq.Plasmid)
		}

		pair := scene.NewGroup(
			scene.NewSphere(0.06, scene.Glow(palette.ColorFor(units[i], seq.Plasmid), 0.6)).At(inner[i]).Named(named("base", i)),
			scene.NewSphere(0.06, scene.Glow(partner, 0.6)).At(outer[i]).Named(named("partner", i)),
		)
		if i%2 == 0 {
			a := angleOf(inner[i])
			pair.Add(scene.NewCylinder(0.01, 0.01, 0.12, scene.Standard(palette.White).Faded(0.5)).
				At(inner[i].Lerp(outer[i], 0.5)).
				Rotated(radial(a)))
		}
		body.Add(pair)
	}

	for _, a := range annotations {
		body.Add(scene.NewSphere(0.12, scene.Emit(a.color, a.emissive, 0.8)).At(a.at).Named(a.name))
	}

	body.Add(
		scene.NewArc(markRadius, 0.08, halfPi, scene.Emit("#ffeb3b", "#fdd835", 0.5).Faded(0.6)).
			Rotated(geom.V(halfPi, 0, 0)).
			Named("insert"),
		scene.NewTorus(markRadius, 0.02, scene.Standard("#b2ebf2").Faded(0.3)).
			At(geom.V(0, -0.1, 0)).
			Rotated(geom.V(halfPi+0.2, 0.1, 0)).
			Named("supercoil"),
	)

	floating, bob := scene.Float(body, 0.5, 0.15, 0.2)
	root := scene.NewGroup(
		floating,
		scene.NewPointLight(strandColors[0], 1).At(geom.V(0, 2, 2)),
		scene.NewPointLight(strandColors[1], 0.5).At(geom.V(0, -2, 2)),
	)

	sc := newScene(seq.Plasmid, n, root)
	sc.OnFrame(func(elapsed float64) {
		root.Rotation.Y = elapsed * plasmidSpin
		root.Rotation.X = math.Sin(elapsed*0.3) * 0.1
	}, bob)
	return sc
}
