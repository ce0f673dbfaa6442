package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("sulfur-oxidation", 0, sulfurOxidation)
	register("iron-oxidation", 0, ironOxidation)
	register("hydrogen", 0.25, hydrogen)
	register("methane", 0, methane)
	register("ammonia", 0, ammonia)
	register("arsenite", 0, arsenite)
}

// The chemosynthetic models share one layout: substrate drifting in from the
// left, an enzyme in the middle, product drifting out to the right.

func inflow(k *kit, g *scene.Node, count int, kind string, build func() *scene.Node) {
	for i := 0; i < count; i++ {
		m := build().At(geom.V(-1.1, float64(i)*0.35-float64(count-1)*0.175, 0)).Named(named(kind, i))
		g.Add(k.drift(m, geom.V(1, 0, 0), 1.2, float64(i), 0.25))
	}
}

func outflow(k *kit, g *scene.Node, count int, kind string, build func() *scene.Node) {
	for i := 0; i < count; i++ {
		m := build().At(geom.V(1.1, float64(i)*0.35-float64(count-1)*0.175, 0)).Named(named(kind, i))
		g.Add(k.drift(m, geom.V(1, 0, 0), 1.2, float64(i)+math.Pi, 0.25))
	}
}

// sulfurOxidation is a rod bacterium turning H2S into sulfur granules.
func sulfurOxidation(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCylinder(0.25, 0.25, 1, scene.Standard("#fdd835").Faded(0.8)).Rotated(geom.V(0, 0, math.Pi/2)).Named("rod"),
	)
	for i := 0; i < 5; i++ {
		g.Add(k.breathe(scene.NewSphere(0.07, scene.Glow("#fff176", 0.6)).At(geom.V(float64(i)*0.2-0.4, 0, 0.1)).Named(named("granule", i)), 2, float64(i), 0.2))
	}

	inflow(k, g, 4, "h2s", func() *scene.Node {
		return molecule("#ffff00", 0.07, "#e0e0e0", geom.V(0.08, 0.06, 0), geom.V(-0.08, 0.06, 0))
	})

	g.Add(k.light("#ffc107", 1.5, geom.V(0, 1, 2)))
	return g
}

// ironOxidation takes ferrous iron in and pushes ferric iron out.
func ironOxidation(k *kit) *scene.Node {
	g := scene.NewGroup(
		k.turn(scene.NewTorus(0.35, 0.06, scene.Glow("#ff7043", 0.5)).Named("reaction"), 'z', 1),
	)

	inflow(k, g, 4, "fe2", func() *scene.Node {
		return scene.NewIcosahedron(0.08, scene.Standard("#78909c").Metal(0.8, 0.3))
	})
	outflow(k, g, 4, "fe3", func() *scene.Node {
		return scene.NewIcosahedron(0.08, scene.Glow("#bf360c", 0.4).Metal(0.6, 0.4))
	})

	g.Add(k.light("#ff7043", 1.5, geom.V(0, 1, 2)))
	return g
}

// hydrogen is a hydrogenase splitting H2 at its nickel-iron site.
func hydrogen(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewIcosahedron(0.5, scene.Standard("#0288d1").Faded(0.7)).Named("hydrogenase"),
		k.breathe(scene.NewSphere(0.12, scene.Glow("#ffc107", 1)).Named("nife"), 3, 0, 0.2),
	)

	g.Add(ring(6, 0.9, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		h2 := molecule("#e3f2fd", 0.05, "#e3f2fd", geom.V(0.08, 0, 0)).At(p).Named(named("h2", i))
		return k.orbit(h2, 0.9, 0.7, a)
	}))

	g.Add(k.light("#0288d1", 1.5, geom.V(0, 1, 2)))
	return g
}

// methane is an enzyme oxidising methane to carbon dioxide.
func methane(k *kit) *scene.Node {
	g := scene.NewGroup(
		k.turn(scene.NewSphere(0.4, scene.Standard("#00897b")).Named("enzyme"), 'y', 0.5),
	)

	inflow(k, g, 3, "ch4", func() *scene.Node {
		return molecule("#212121", 0.08, "#e0e0e0",
			geom.V(0.1, 0.1, 0.1), geom.V(-0.1, -0.1, 0.1), geom.V(-0.1, 0.1, -0.1), geom.V(0.1, -0.1, -0.1))
	})
	outflow(k, g, 3, "co2", func() *scene.Node {
		return molecule("#424242", 0.08, "#ef5350", geom.V(0.12, 0, 0), geom.V(-0.12, 0, 0))
	})

	g.Add(k.light("#00897b", 1.5, geom.V(0, 1, 2)))
	return g
}

// ammonia is a tilted enzyme block oxidising ammonia to nitrite.
func ammonia(k *kit) *scene.Node {
	g := scene.NewGroup(
		k.breathe(scene.NewBox(geom.V(0.6, 0.5, 0.4), scene.Standard("#7cb342")).Rotated(geom.V(0, 0, 0.2)).Named("enzyme"), 1.5, 0, 0.04),
	)

	inflow(k, g, 3, "nh3", func() *scene.Node {
		return molecule("#42a5f5", 0.07, "#e0e0e0", geom.V(0.1, 0.06, 0), geom.V(-0.1, 0.06, 0), geom.V(0, -0.1, 0))
	})
	outflow(k, g, 3, "no2", func() *scene.Node {
		return molecule("#42a5f5", 0.07, "#ef5350", geom.V(0.1, 0.05, 0), geom.V(-0.1, 0.05, 0))
	})

	g.Add(k.light("#7cb342", 1.5, geom.V(0, 1, 2)))
	return g
}

// arsenite is an oxidase passing electrons off as it converts As3+ to As5+.
func arsenite(k *kit) *scene.Node {
	g := scene.NewGroup(
		k.turn(scene.NewIcosahedron(0.4, scene.Standard("#7b1fa2").Metal(0.3, 0.4)).Named("oxidase"), 'y', 0.6),
	)

	inflow(k, g, 3, "as3", func() *scene.Node {
		return scene.NewSphere(0.08, scene.Glow("#ce93d8", 0.4))
	})
	outflow(k, g, 3, "as5", func() *scene.Node {
		return scene.NewSphere(0.09, scene.Glow("#e1bee7", 0.4))
	})

	g.Add(ring(4, 0.2, 0.5, func(i int, p geom.Vec3, a float64) *scene.Node {
		e := scene.NewSphere(0.03, scene.Glow("#ffeb3b", 1.5)).At(p).Named(named("electron", i))
		return k.rise(e, 1, 1.5, float64(i)/4)
	}))

	g.Add(k.light("#9c27b0", 1.5, geom.V(0, 1, 2)))
	return g
}
