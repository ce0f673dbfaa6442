package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("regeneration", 0, regeneration)
	register("antifreeze-protein", 0.15, antifreezeProtein)
	register("silk-production", 0, silkProduction)
	register("venom-synthesis", 0, venomSynthesis)
	register("camouflage", 0, camouflage)
}

// regeneration is a limb regrowing from a bud of stem cells.
func regeneration(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.2, 0.6, scene.Standard("#f48fb1")).At(geom.V(0, -0.5, 0)).Named("stump"),
	)

	bud := scene.NewCapsule(0.17, 0.5, scene.Glow("#f06292", 0.3).Faded(0.8)).At(geom.V(0, 0.35, 0)).Named("bud")
	g.Add(k.animate(bud, func(n *scene.Node, t float64) {
		grow := (math.Sin(t*0.7) + 1) / 2
		n.Scale = geom.V(1, 0.3+grow*0.7, 1)
	}))

	g.Add(ring(8, 0.3, 0.05, func(i int, p geom.Vec3, _ float64) *scene.Node {
		return k.breathe(scene.NewSphere(0.05, scene.Glow("#ff80ab", 0.8)).At(p).Named(named("stem-cell", i)), 3, float64(i), 0.3)
	}))

	g.Add(ring(3, 0.12, 0.85, func(i int, p geom.Vec3, a float64) *scene.Node {
		return scene.NewCone(0.05, 0.15, scene.Standard("#ec407a")).At(p).Named(named("digit", i))
	}))

	g.Add(k.light("#e91e63", 1.5, geom.V(0, 1, 2)))
	return g
}

// antifreezeProtein coils around ice crystals and keeps them from growing.
func antifreezeProtein(k *kit) *scene.Node {
	// (2,3) torus knot
	knot := make([]geom.Vec3, 96)
	for i := range knot {
		t := float64(i) / float64(len(knot)) * 2 * math.Pi
		r := 0.5 + 0.15*math.Cos(3*t)
		knot[i] = geom.V(r*math.Cos(2*t), 0.15*math.Sin(3*t), r*math.Sin(2*t))
	}

	g := scene.NewGroup(
		k.turn(scene.NewTube(knot, 0.05, true, scene.Glow("#4fc3f7", 0.4)).Named("protein"), 'x', 0.3),
	)

	g.Add(ring(6, 1, 0, func(i int, p geom.Vec3, _ float64) *scene.Node {
		ice := scene.NewIcosahedron(0.12, scene.Standard("#e1f5fe").Metal(0.9, 0.1).Faded(0.8)).At(p).Named(named("ice", i))
		return k.turn(ice, 'y', 0.3)
	}))

	g.Add(ring(6, 0.65, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		site := scene.NewSphere(0.04, scene.Glow("#00e5ff", 1)).At(p).Named(named("site", i))
		return k.glimmer(site, 4, a, 0.3, 1)
	}))

	g.Add(k.light("#4fc3f7", 1.5, geom.V(0, 1, 2)))
	return g
}

// silkProduction is a spinneret drawing out a waving silk thread.
func silkProduction(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCone(0.3, 0.5, scene.Standard("#bdbdbd")).At(geom.V(0, 0.8, 0)).Rotated(geom.V(math.Pi, 0, 0)).Named("spinneret"),
	)

	const points = 40
	path := make([]geom.Vec3, points)
	thread := scene.NewTube(path, 0.015, false, scene.Glow("#fafafa", 0.6)).Named("silk")
	wave := func(n *scene.Node, t float64) {
		for i := range n.Path {
			f := float64(i) / (points - 1)
			n.Path[i] = geom.V(math.Sin(4*math.Pi*f+t*2)*0.3*f, 0.55-2*f*1.2, 0)
		}
	}
	wave(thread, 0)
	g.Add(k.animate(thread, wave))

	for i := 0; i < 6; i++ {
		protein := scene.NewBox(geom.Splat(0.05), scene.Glow("#e0e0e0", 0.4)).At(geom.V(0, 0.55, 0)).Named(named("fibroin", i))
		g.Add(k.rise(protein, -2, 3, float64(i)/6))
	}

	g.Add(k.light("#e0e0e0", 1.2, geom.V(0, 1, 2)))
	return g
}

// venomSynthesis is a venom gland pushing toxin down a duct.
func venomSynthesis(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.35, 0.4, scene.Standard("#6a1b9a").Faded(0.8)).Rotated(geom.V(0, 0, math.Pi/2)).Named("gland"),
		scene.NewCylinder(0.05, 0.08, 0.8, scene.Standard("#4a148c")).At(geom.V(0.8, -0.3, 0)).Rotated(geom.V(0, 0, math.Pi/4)).Named("duct"),
		k.glimmer(scene.NewSphere(0.7, scene.Glow("#ce93d8", 0.4)).Named("aura"), 2, 0, 0.05, 0.2),
	)

	for i := 0; i < 8; i++ {
		toxin := molecule("#e040fb", 0.05, "#ea80fc", geom.V(0.07, 0.05, 0)).At(geom.V(k.between(-0.3, 0.3), k.between(-0.15, 0.15), 0.1)).Named(named("toxin", i))
		g.Add(k.drift(toxin, geom.V(1, -0.4, 0), 1.2, float64(i), 0.35))
	}

	g.Add(k.light("#9c27b0", 1.5, geom.V(0, 1, 2)))
	return g
}

var chromatophoreColors = []palette.Token{"#ef5350", "#42a5f5", "#66bb6a", "#ffca28", "#ab47bc"}

// camouflage is skin cycling its hue while chromatophores open and close.
func camouflage(k *kit) *scene.Node {
	base := palette.Token("#4db6ac")
	cell := scene.NewSphere(0.6, scene.Standard(base)).Named("cell")
	k.animate(cell, func(n *scene.Node, t float64) {
		n.Material.Color = base.Hue(math.Sin(t*0.5) * 60)
	})

	g := scene.NewGroup(cell)
	g.Add(ring(12, 0.62, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		p.Y = math.Sin(a*3) * 0.3
		return k.breathe(scene.NewSphere(0.06, scene.Glow(pick(chromatophoreColors, i), 0.5)).At(p).Named(named("chromatophore", i)), 2, a, 0.4)
	}))

	g.Add(k.light("#26a69a", 1.5, geom.V(0, 1, 2)))
	return g
}
