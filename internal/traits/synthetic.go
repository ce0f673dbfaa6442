package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("biosensor", 0, biosensor)
	register("bioplastic", 0, bioplastic)
	register("metal-accumulation", 0, metalAccumulation)
	register("oxygen-production", 0, oxygenProduction)
	register("self-repair", 0, selfRepair)
	register("biofilm-resistance", 0, biofilmResistance)
}

// biosensor is a cell studded with receptors that light up as signals arrive.
func biosensor(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(0.5, scene.Standard("#aed581").Faded(0.7)).Named("cell"))

	g.Add(ring(8, 0.55, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		r := scene.NewBox(geom.V(0.2, 0.06, 0.06), scene.Glow("#76ff03", 0.3)).At(p).Rotated(geom.V(0, -a, 0)).Named(named("receptor", i))
		return k.animate(r, func(n *scene.Node, t float64) {
			n.Material.EmissiveIntensity = scene.Pulse(t, 4, 0.2, 1) * (0.5 + 0.5*math.Cos(a))
		})
	}))

	g.Add(ring(6, 1.3, 0.3, func(i int, p geom.Vec3, a float64) *scene.Node {
		s := scene.NewOctahedron(0.05, scene.Glow("#ffeb3b", 1)).At(p).Named(named("signal", i))
		return k.drift(s, geom.V(-math.Cos(a), 0, -math.Sin(a)), 2, float64(i), 0.4)
	}))

	g.Add(k.pulsingLight("#76ff03", 4, 0.5, 1.5, geom.V(0, 1, 2)))
	return g
}

// bioplastic is a cell filling up with PHA granules spun into polymer.
func bioplastic(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.8, scene.Standard("#90caf9").Faded(0.3)).Named("membrane"),
		k.turn(scene.NewIcosahedron(0.15, scene.Glow("#1e88e5", 0.6)).Named("synthase"), 'y', 1.5),
	)

	g.Add(cloud(k.scatter(8, geom.Splat(0.9)), func(i int, p geom.Vec3) *scene.Node {
		return k.breathe(scene.NewSphere(k.between(0.08, 0.14), scene.Standard("#fafafa").Metal(0.1, 0.2)).At(p).Named(named("granule", i)), 1, float64(i), 0.15)
	}))

	for i := 0; i < 4; i++ {
		chain := scene.NewTorus(0.3+float64(i)*0.12, 0.015, scene.Glow("#42a5f5", 0.4)).
			Rotated(geom.V(float64(i)*math.Pi/4, 0, 0)).
			Named(named("polymer", i))
		g.Add(k.turn(chain, 'z', 0.5+float64(i)*0.2))
	}

	g.Add(k.light("#42a5f5", 1.5, geom.V(0, 1, 2)))
	return g
}

var metals = []palette.Token{"#ffd700", "#c0c0c0", "#b87333"}

// metalAccumulation is a cell binding heavy metal ions from the water around it.
func metalAccumulation(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(0.5, scene.Standard("#80cbc4").Faded(0.6)).Named("cell"))

	g.Add(cloud(k.scatter(12, geom.Splat(2.2)), func(i int, p geom.Vec3) *scene.Node {
		ion := scene.NewIcosahedron(0.06, scene.Standard(pick(metals, i)).Metal(1, 0.2)).At(p).Named(named("metal", i))
		return k.drift(ion, p.Norm().Scale(-1), 0.8, float64(i), 0.3)
	}))

	for i := 0; i < 4; i++ {
		g.Add(k.turn(scene.NewTorus(0.6, 0.02, scene.Glow("#ffd700", 0.4)).
			Rotated(geom.V(float64(i)*math.Pi/4, 0, 0)).
			Named(named("binding", i)), 'y', 0.4))
	}

	g.Add(k.light("#ffd700", 1.5, geom.V(0, 1, 2)))
	return g
}

// oxygenProduction is a photosynthetic cell bubbling oxygen.
func oxygenProduction(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.35, 0.8, scene.Standard("#4db6ac").Faded(0.7)).Rotated(geom.V(0, 0, math.Pi/2)).Named("cell"),
		scene.NewBox(geom.V(0.3, 0.2, 0.2), scene.Glow("#00796b", 0.5)).Named("photosystem"),
	)

	for i := 0; i < 10; i++ {
		o2 := scene.NewSphere(k.between(0.04, 0.08), scene.Standard("#e1f5fe").Faded(0.6)).
			At(geom.V(k.between(-0.5, 0.5), 0.3, k.between(-0.2, 0.2))).
			Named(named("o2", i))
		g.Add(k.rise(o2, 1.4, 2+float64(i%3), float64(i)/10))
	}

	g.Add(ring(5, 0.2, 1.4, func(i int, p geom.Vec3, a float64) *scene.Node {
		return k.glimmer(scene.NewCylinder(0.01, 0.01, 0.6, scene.Glow("#fff59d", 1)).At(p).Named(named("ray", i)), 2, a, 0.2, 0.7)
	}))

	g.Add(k.light("#29b6f6", 1.5, geom.V(0, 1, 2)))
	return g
}

// selfRepair is a twisted strand with one damaged segment scanned by Cas9.
func selfRepair(k *kit) *scene.Node {
	g := scene.NewGroup()

	for i := 0; i < 15; i++ {
		c := palette.Token("#7c4dff")
		if i == 7 {
			c = "#f44336"
		}
		g.Add(scene.NewBox(geom.V(0.5, 0.06, 0.1), scene.Glow(c, 0.4)).
			At(geom.V(0, float64(i)*0.15-1.05, 0)).
			Rotated(geom.V(0, float64(i)*0.4, 0)).
			Named(named("segment", i)))
	}

	cas9 := scene.NewIcosahedron(0.25, scene.Standard("#ff9800").Faded(0.7)).At(geom.V(0.15, 0, 0)).Named("cas9")
	g.Add(k.animate(cas9, func(n *scene.Node, t float64) {
		n.Position.Y = math.Sin(t) * 0.5
	}))

	guide := scene.NewTorus(0.3, 0.015, scene.Glow("#ffeb3b", 0.8)).Rotated(geom.V(math.Pi/2, 0, 0)).Named("guide")
	g.Add(k.animate(guide, func(n *scene.Node, t float64) {
		n.Position.Y = math.Sin(t) * 0.5
		n.Rotation.Z = t * 2
	}))

	g.Add(k.light("#ff9800", 1.5, geom.V(0, 1, 2)))
	return g
}

// biofilmResistance is a cell under a shield that turns away intruders.
func biofilmResistance(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.4, scene.Standard("#26a69a")).Named("cell"),
		k.glimmer(scene.NewSphere(0.7, scene.Glow("#80cbc4", 0.4)).Named("shield"), 2, 0, 0.15, 0.35),
	)

	g.Add(ring(8, 1.1, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		intruder := scene.NewCapsule(0.05, 0.12, scene.Standard("#ef5350")).At(p).Rotated(radial(a)).Named(named("blocked", i))
		return k.drift(intruder, geom.V(math.Cos(a), 0, math.Sin(a)), 1.5, float64(i), 0.15)
	}))

	g.Add(k.light("#26a69a", 1.5, geom.V(0, 1, 2)))
	return g
}
