package render

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const placeholderSpin = 0.2

var placeholderColors = map[seq.Structure]palette.Token{
	seq.DNA:     "#7c4dff",
	seq.RNA:     "#ff9800",
	seq.Protein: "#e91e63",
	seq.Plasmid: "#00e5ff",
}

// Placeholder is the scene shown while there's no sequence to draw: three
// crossed wireframe rings around a sketch of the archetype's shape.
func Placeholder(s seq.Structure) *scene.Scene {
	c, ok := placeholderColors[s]
	if !ok {
		s, c = seq.DNA, placeholderColors[seq.DNA]
	}
	wire := scene.Wire(c).Faded(0.3)

	body := scene.NewGroup(
		scene.NewTorus(1, 0.02, wire).Named("ring-0"),
		scene.NewTorus(1, 0.02, wire).Rotated(geom.V(math.Pi/4, 0, 0)).Named("ring-1"),
		scene.NewTorus(1, 0.02, wire).Rotated(geom.V(halfPi, 0, 0)).Named("ring-2"),
		sketch(s, scene.Wire(c).Faded(0.5)).Named("sketch"),
	)

	floating, bob := scene.Float(body, 1, 0.3, 0.5)
	root := scene.NewGroup(floating)

	sc := newScene(s, 0, root)
	sc.Placeholder = true
	sc.OnFrame(scene.Spin(root, placeholderSpin), bob)
	return sc
}

func sketch(s seq.Structure, m scene.Material) *scene.Node {
	switch s {
	case seq.RNA:
		return scene.NewLine(geom.Winding(24, geom.WindingShape{Radius: 0.3, Bulge: 0.08, Loops: 4, Twists: 3, Height: 1.2}), m)
	case seq.Protein:
		return scene.NewIcosahedron(0.4, m)
	case seq.Plasmid:
		return scene.NewTorus(0.45, 0.02, m).Rotated(geom.V(halfPi, 0, 0))
	default:
		return scene.NewLine(geom.Helix(24, 0.3, 2, 0.05, 0), m)
	}
}
