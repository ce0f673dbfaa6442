package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("c4-photosynthesis", 0, c4Photosynthesis)
	register("drought", 0.15, drought)
	register("nitrogen-fixation", 0, nitrogenFixation)
	register("fast-growth", 0, fastGrowth)
	register("deep-root", 0.15, deepRoot)
	register("uv-protection", 0, uvProtection)
}

// c4Photosynthesis is a chloroplast with stacked thylakoids pulling in CO2
// under sun rays.
func c4Photosynthesis(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.4, 1, scene.Standard("#66bb6a").Faded(0.6)).Rotated(geom.V(0, 0, math.Pi/2)).Named("chloroplast"),
	)

	for i := 0; i < 5; i++ {
		g.Add(scene.NewCylinder(0.25, 0.25, 0.06, scene.Glow("#2e7d32", 0.3)).
			At(geom.V(float64(i)*0.2-0.4, 0, 0)).
			Named(named("thylakoid", i)))
	}

	g.Add(ring(6, 1, 0.2, func(i int, p geom.Vec3, a float64) *scene.Node {
		co2 := molecule("#424242", 0.06, "#ef5350", geom.V(0.08, 0, 0), geom.V(-0.08, 0, 0)).At(p).Named(named("co2", i))
		return k.drift(co2, geom.V(-math.Cos(a), 0, -math.Sin(a)), 1.2, float64(i), 0.3)
	}))

	g.Add(ring(8, 0.3, 1.5, func(i int, p geom.Vec3, a float64) *scene.Node {
		ray := scene.NewCylinder(0.01, 0.01, 0.8, scene.Glow("#ffeb3b", 1).Faded(0.6)).At(p).Named(named("ray", i))
		return k.glimmer(ray, 2, a, 0.2, 0.7)
	}))

	g.Add(
		k.light("#ffeb3b", 1.5, geom.V(0, 2, 1)),
		k.light("#4caf50", 1, geom.V(0, -1, 2)),
	)
	return g
}

// drought is a root wrapped in a water-holding membrane, droplets dripping in.
func drought(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCylinder(0.1, 0.15, 1.5, scene.Standard("#6d4c41")).Named("root"),
		scene.NewSphere(1.2, scene.Standard("#4fc3f7").Faded(0.08)).Named("membrane"),
	)

	for i := 0; i < 4; i++ {
		a := step(i, 4)
		g.Add(scene.NewCylinder(0.03, 0.05, 0.6, scene.Standard("#795548")).
			At(around(a, 0.25, -0.3+float64(i)*0.2)).
			Rotated(geom.V(0, -a, math.Pi/4)).
			Named(named("branch", i)))
	}

	g.Add(cloud(k.scatter(10, geom.V(1.6, 0.1, 1.6)), func(i int, p geom.Vec3) *scene.Node {
		drop := scene.NewSphere(0.05, scene.Glow("#29b6f6", 0.5)).At(p.Add(geom.V(0, 0.8, 0))).Named(named("droplet", i))
		return k.rise(drop, -1.6, 2.5, float64(i)/10)
	}))

	g.Add(k.light("#8d6e63", 1.5, geom.V(0, 1, 2)))
	return g
}

// nitrogenFixation is a nitrogenase around its FeMo cofactor splitting N2
// into ammonia.
func nitrogenFixation(k *kit) *scene.Node {
	enzyme := scene.NewGroup(
		scene.NewSphere(0.5, scene.Standard("#3f51b5").Faded(0.7)).At(geom.V(-0.2, 0, 0)).Named("enzyme"),
		scene.NewSphere(0.35, scene.Standard("#5c6bc0").Faded(0.7)).At(geom.V(0.35, 0.1, 0)),
		scene.NewIcosahedron(0.15, scene.Emit("#ff9800", "#ff5722", 0.8).Metal(0.8, 0.2)).Named("femo"),
	)
	k.turn(enzyme, 'z', 0.5)

	g := scene.NewGroup(enzyme)
	for i := 0; i < 3; i++ {
		n2 := molecule("#7986cb", 0.07, "#7986cb", geom.V(0.12, 0, 0)).At(geom.V(-1.2, float64(i)*0.4-0.4, 0)).Named(named("n2", i))
		g.Add(k.drift(n2, geom.V(1, 0, 0), 1, float64(i), 0.2))
	}
	for i := 0; i < 3; i++ {
		nh3 := molecule("#42a5f5", 0.07, "#e0e0e0", geom.V(0.1, 0.06, 0), geom.V(-0.1, 0.06, 0), geom.V(0, -0.1, 0)).
			At(geom.V(1.2, float64(i)*0.4-0.4, 0)).
			Named(named("nh3", i))
		g.Add(k.drift(nh3, geom.V(1, 0, 0), 1, float64(i)+math.Pi, 0.2))
	}

	g.Add(k.light("#5c6bc0", 1.5, geom.V(0, 1, 2)))
	return g
}

// fastGrowth is one cell dividing into two, pinching apart and back.
func fastGrowth(k *kit) *scene.Node {
	g := scene.NewGroup()

	for i, side := range []float64{-1, 1} {
		cell := scene.NewGroup(
			scene.NewSphere(0.45, scene.Standard("#aed581").Faded(0.6)).Named(named("cell", i)),
			scene.NewSphere(0.15, scene.Glow("#558b2f", 0.4)).Named(named("nucleus", i)),
		)
		k.animate(cell, func(n *scene.Node, t float64) {
			phase := (math.Sin(t*0.5) + 1) / 2
			n.Position.X = side * phase * 0.4
			n.Scale = geom.V(1-phase*0.3, 1, 1)
		})
		g.Add(cell)
	}

	g.Add(ring(4, 0.9, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		return scene.NewCone(0.06, 0.2, scene.Glow("#8bc34a", 0.5)).At(p).Rotated(radial(a)).Named(named("growth", i))
	}))

	g.Add(k.light("#8bc34a", 1.5, geom.V(0, 1, 2)))
	return g
}

// deepRoot is a taproot diving through soil, throwing out laterals and hairs.
func deepRoot(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewCylinder(0.2, 0.05, 2.5, scene.Standard("#795548")).Named("taproot"))

	for i := 0; i < 8; i++ {
		y := 0.9 - float64(i)*0.25
		a := step(i, 8) * 1.5
		g.Add(scene.NewCylinder(0.02, 0.04, 0.6-float64(i)*0.04, scene.Standard("#8d6e63")).
			At(around(a, 0.25, y)).
			Rotated(radial(a)).
			Named(named("lateral", i)))
	}

	g.Add(cloud(k.scatter(20, geom.V(1.2, 2.2, 1.2)), func(i int, p geom.Vec3) *scene.Node {
		hair := scene.NewCylinder(0.005, 0.005, 0.15, scene.Standard("#d7ccc8")).At(p).Named(named("hair", i))
		return k.animate(hair, func(n *scene.Node, t float64) {
			n.Rotation.Z = math.Sin(t+float64(i)) * 0.3
		})
	}))

	g.Add(cloud(k.scatter(15, geom.V(2, 2.5, 2)), func(i int, p geom.Vec3) *scene.Node {
		return scene.NewBox(geom.Splat(0.08), scene.Standard("#4e342e").Faded(0.5)).At(p).Rotated(geom.V(p.X, p.Y, p.Z)).Named(named("soil", i))
	}))

	g.Add(k.pulsingLight("#795548", 1, 1, 1.5, geom.V(0, 1, 2)))
	return g
}

// uvProtection is a cell behind a rotating pigment shield deflecting rays.
func uvProtection(k *kit) *scene.Node {
	shield := scene.NewTorus(0.8, 0.05, scene.Glow("#ab47bc", 0.6).Metal(0.5, 0.2)).Named("shield")
	g := scene.NewGroup(
		scene.NewSphere(0.5, scene.Standard("#ce93d8")).Named("cell"),
		k.turn(shield, 'z', 1),
	)

	for i := 0; i < 10; i++ {
		x := float64(i)*0.3 - 1.35
		c := palette.Blend("#7c4dff", "#e040fb", float64(i)/9)
		ray := scene.NewCylinder(0.01, 0.01, 0.6, scene.Glow(c, 1)).At(geom.V(x, 1.4, 0)).Named(named("ray", i))
		g.Add(k.glimmer(ray, 3, float64(i), 0.2, 0.9))
	}

	g.Add(k.light("#9c27b0", 1.5, geom.V(0, 1, 2)))
	return g
}
