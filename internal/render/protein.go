package render

import (
	"math"
	"strings"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

const proteinSpin = 0.12

var (
	helices = []float64{0.2, 0.6}
	sheets  = []float64{0.4, 0.8}

	proteinBackbone = palette.Token("#e91e63")
	sheetColor      = palette.Token("#7c4dff")
)

// Residues returns the amino acids a protein view shows. Nucleotide input is
// translated codon by codon; anything else is taken to be residues already.
func Residues(sequence string, limit int) string {
	if seq.IsNucleotide(strings.ToUpper(sequence)) {
		return prepare(seq.Translate(prepare(sequence, 3*limit)), limit)
	}
	return prepare(sequence, limit)
}

// Protein draws a folded chain: a residue per unit in a rotating palette
// with a side chain in its biochemical color, helix and sheet markers and a
// translucent active site at the middle of the chain.
func Protein(sequence string, limit int) *scene.Scene {
	residues := Residues(sequence, limit)
	n := len(residues)
	if n == 0 {
		return Placeholder(seq.Protein)
	}

	pts := geom.Fold(n, geom.DefaultFold)
	backbone := scene.NewTube(pts, 0.06, false, scene.Emit(proteinBackbone, "#c2185b", 0.3).Metal(0.3, 0.4)).Named("backbone")
	body := scene.NewGroup(backbone)

	for i, p := range pts {
		out := geom.V(p.X, 0, p.Z).Norm().Scale(0.14)
		body.Add(scene.NewGroup(
			scene.NewSphere(0.1, scene.Glow(palette.Residue(i), 0.4).Metal(0.5, 0.3)).At(p).Named(named("residue", i)),
			scene.NewSphere(0.04, scene.Standard(palette.ColorFor(residues[i], seq.Protein))).At(p.Add(out)).Named(named("side", i)),
		))
	}

	for i, t := range helices {
		p, _ := geom.At(pts, t)
		body.Add(scene.NewArc(0.2, 0.04, 1.5*math.Pi, scene.Emit("#ff4081", "#f50057", 0.5)).
			At(p).
			Rotated(geom.V(0, t*2*math.Pi, 0)).
			Named(named("helix", i)))
	}
	for i, t := range sheets {
		p, _ := geom.At(pts, t)
		body.Add(scene.NewBox(geom.V(0.4, 0.02, 0.2), scene.Emit(sheetColor, "#651fff", 0.5)).
			At(p).
			Rotated(geom.V(halfPi, t*math.Pi, 0)).
			Named(named("sheet", i)))
	}

	body.Add(scene.NewSphere(0.25, scene.Emit("#76ff03", "#64dd17", 0.6).Faded(0.4)).At(pts[n/2]).Named("active-site"))

	floating, bob := scene.Float(body, 0.6, 0.1, 0.2)
	root := scene.NewGroup(
		floating,
		scene.NewPointLight(proteinBackbone, 1).At(geom.V(2, 2, 2)),
		scene.NewPointLight(sheetColor, 0.5).At(geom.V(-2, -2, 2)),
	)

	sc := newScene(seq.Protein, n, root)
	sc.OnFrame(scene.Spin(root, proteinSpin), bob)

	// the backbone breathes a little, standing in for a distorting surface
	sc.Bind(backbone, func(n *scene.Node, elapsed float64) {
		n.Scale = geom.Splat(scene.Pulse(elapsed, 1, 0.98, 1.02))
	})
	return sc
}
