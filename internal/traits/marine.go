package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("pressure-adaptation", 0, pressureAdaptation)
	register("jet-propulsion", 0.3, jetPropulsion)
	register("ink", 0.15, ink)
	register("electric-organ", 0, electricOrgan)
	register("coral-symbiosis", 0.1, coralSymbiosis)
	register("chromatophore", 0.15, chromatophore)
	register("osmoregulation", 0, osmoregulation)
}

// pressureAdaptation is a flattened deep sea fish under pressure rings.
func pressureAdaptation(k *kit) *scene.Node {
	fish := scene.NewGroup(
		scene.NewSphere(0.5, scene.Standard("#1565c0").Metal(0.3, 0.5)).ScaledBy(geom.V(1.2, 0.6, 0.8)).Named("body"),
		scene.NewSphere(0.25, scene.Standard("#0d47a1")).At(geom.V(0.5, 0.05, 0)).Named("skull"),
		scene.NewCone(0.2, 0.3, scene.Standard("#1976d2")).At(geom.V(-0.7, 0, 0)).Rotated(geom.V(0, 0, math.Pi/2)).Named("tail"),
	)
	g := scene.NewGroup(k.float(fish, 1, 0.5, 0.5))

	for i := 0; i < 5; i++ {
		r := scene.NewTorus(0.9+float64(i)*0.12, 0.01, scene.Glow("#64b5f6", 0.3).Faded(0.4)).
			Rotated(geom.V(0, math.Pi/2, 0)).
			Named(named("pressure", i))
		g.Add(k.breathe(r, 1.5, float64(i)*0.6, 0.04))
	}

	g.Add(cloud(k.scatter(8, geom.V(0.8, 0.2, 0.6)), func(i int, p geom.Vec3) *scene.Node {
		return k.glimmer(scene.NewSphere(0.03, scene.Glow("#b3e5fc", 1)).At(p.Add(geom.V(0, 0.2, 0))).Named(named("spot", i)), 2, float64(i), 0.3, 1)
	}))

	g.Add(k.light("#1565c0", 1.5, geom.V(0, 1, 2)))
	return g
}

// jetPropulsion is a squid pulsing water out of its mantle.
func jetPropulsion(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCone(0.35, 1.2, scene.Standard("#ff7043").Metal(0.1, 0.6)).At(geom.V(0, 0.4, 0)).Named("mantle"),
		scene.NewSphere(0.3, scene.Standard("#ff8a65")).At(geom.V(0, -0.3, 0)).Named("head"),
	)

	for i, x := range []float64{-0.12, 0.12} {
		jet := scene.NewCone(0.08, 0.4, scene.Glow("#4dd0e1", 0.6).Faded(0.6)).At(geom.V(x, -0.6, 0.2)).Rotated(geom.V(math.Pi, 0, 0)).Named(named("jet", i))
		g.Add(k.animate(jet, func(n *scene.Node, t float64) {
			n.Scale.Y = 1 + math.Sin(t*4+float64(i))*0.3
		}))
	}

	g.Add(ring(8, 0.18, -0.75, func(i int, p geom.Vec3, a float64) *scene.Node {
		arm := scene.NewCylinder(0.02, 0.035, 0.6, scene.Standard("#ffab91")).At(p.Add(geom.V(0, -0.2, 0))).Named(named("tentacle", i))
		return k.animate(arm, func(n *scene.Node, t float64) {
			n.Rotation.X = math.Sin(t*3+a) * 0.25
		})
	}))

	g.Add(k.light("#00bcd4", 1.5, geom.V(0, 1, 2)))
	return g
}

// ink is a cuttlefish releasing a cloud of ink.
func ink(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.45, scene.Standard("#a1887f")).ScaledBy(geom.V(1.5, 0.8, 1)).Named("body"),
		scene.NewSphere(0.15, scene.Standard("#3e2723")).At(geom.V(-0.35, -0.1, 0)).Named("ink-sac"),
		scene.NewSphere(0.07, scene.Glow("#fff8e1", 0.3)).At(geom.V(0.5, 0.12, 0.2)).Named("eye-0"),
		scene.NewSphere(0.07, scene.Glow("#fff8e1", 0.3)).At(geom.V(0.5, 0.12, -0.2)).Named("eye-1"),
	)

	for i := 0; i < 30; i++ {
		puff := scene.NewSphere(k.between(0.03, 0.09), scene.Standard("#212121").Faded(0.6)).At(geom.V(-0.6, k.between(-0.2, 0.2), k.between(-0.2, 0.2))).Named(named("ink", i))
		g.Add(k.drift(puff, geom.V(-1, k.between(-0.3, 0.3), k.between(-0.3, 0.3)), 0.8, float64(i)*0.4, 0.5))
	}

	g.Add(k.light("#4e342e", 1.5, geom.V(0, 1, 2)))
	return g
}

// electricOrgan is an eel body of stacked electrocytes discharging sparks.
func electricOrgan(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCylinder(0.25, 0.15, 2, scene.Standard("#455a64")).Rotated(geom.V(0, 0, math.Pi/2)).Named("eel"),
	)

	for i := 0; i < 8; i++ {
		cell := scene.NewBox(geom.V(0.15, 0.35, 0.35), scene.Glow("#ffee58", 0.3).Faded(0.8)).At(geom.V(float64(i)*0.2-0.7, 0, 0)).Named(named("electrocyte", i))
		g.Add(k.animate(cell, func(n *scene.Node, t float64) {
			n.Material.EmissiveIntensity = scene.Pulse(t, 10, 0.1, 1) * float64(i+1) / 8
		}))
	}

	g.Add(ring(6, 0.5, 0, func(i int, p geom.Vec3, _ float64) *scene.Node {
		spark := scene.NewOctahedron(0.06, scene.Glow("#ffeb3b", 2)).At(p).Named(named("spark", i))
		spark.Material = spark.Material.Faded(1)
		return k.animate(spark, func(n *scene.Node, t float64) {
			n.Material.Opacity = math.Max(0, math.Min(1, 0.3+math.Sin(t*10+float64(i)*2)*0.7))
		})
	}))

	g.Add(k.pulsingLight("#ffeb3b", 10, 0.5, 2.5, geom.V(0, 1, 1)))
	return g
}

// coralSymbiosis is a polyp waving its tentacles, algae glowing inside.
func coralSymbiosis(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCylinder(0.4, 0.5, 0.6, scene.Standard("#ff8a65")).At(geom.V(0, -0.5, 0)).Named("base"),
		scene.NewSphere(0.35, scene.Standard("#ffab91").Faded(0.8)).Named("polyp"),
	)

	g.Add(ring(12, 0.3, 0.3, func(i int, p geom.Vec3, a float64) *scene.Node {
		arm := scene.NewGroup(
			scene.NewCylinder(0.02, 0.03, 0.5, scene.Standard("#ffccbc")).At(geom.V(0, 0.25, 0)),
			scene.NewSphere(0.04, scene.Glow("#ff7043", 0.8)).At(geom.V(0, 0.5, 0)).Named(named("tip", i)),
		).At(p).Named(named("tentacle", i))
		return k.animate(arm, func(n *scene.Node, t float64) {
			n.Rotation = geom.V(math.Cos(a)*0.3, 0, math.Sin(t*2+a)*0.3)
		})
	}))

	g.Add(cloud(k.scatter(8, geom.Splat(0.4)), func(i int, p geom.Vec3) *scene.Node {
		return k.breathe(scene.NewSphere(0.04, scene.Glow("#c6ff00", 0.8)).At(p).Named(named("zooxanthella", i)), 2, float64(i), 0.3)
	}))

	g.Add(k.light("#ff8a65", 1.5, geom.V(0, 1, 2)))
	return g
}

var pigmentColors = []palette.Token{"#f44336", "#2196f3", "#ffeb3b", "#4caf50", "#9c27b0"}

// chromatophore is skin whose pigment cells expand and contract in waves.
func chromatophore(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(0.6, scene.Standard("#ffe0b2")).Named("skin"))

	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < 20; i++ {
		y := 1 - float64(i)/19*2
		r := math.Sqrt(1 - y*y)
		a := golden * float64(i)
		p := geom.V(math.Cos(a)*r, y, math.Sin(a)*r).Scale(0.6)
		cell := scene.NewSphere(0.08, scene.Glow(pick(pigmentColors, i), 0.5)).At(p).Named(named("pigment", i))
		g.Add(k.animate(cell, func(n *scene.Node, t float64) {
			n.Scale = geom.Splat(0.8 + math.Sin(t*3+float64(i)*0.5)*0.4)
		}))
	}

	g.Add(k.light("#ff9800", 1.5, geom.V(0, 1, 2)))
	return g
}

// osmoregulation is a gill arch pumping ions across its filaments.
func osmoregulation(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewTorus(0.6, 0.08, scene.Standard("#ef9a9a")).Rotated(geom.V(math.Pi/2, 0, 0)).Named("gill"),
	)

	g.Add(ring(16, 0.6, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		f := scene.NewCylinder(0.015, 0.025, 0.35, scene.Standard("#e57373")).At(p.Add(geom.V(0, -0.2, 0))).Named(named("filament", i))
		return k.animate(f, func(n *scene.Node, t float64) {
			n.Rotation.X = math.Sin(t*2+a) * 0.15
		})
	}))

	g.Add(ring(12, 0.35, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		c := pick([]palette.Token{"#26c6da", "#ffee58"}, i)
		return k.orbit(scene.NewSphere(0.04, scene.Glow(c, 0.8)).At(p.Add(geom.V(0, float64(i%3)*0.1-0.1, 0))).Named(named("ion", i)), 0.35, 1.2, a)
	}))

	for i, x := range []float64{-1, 1} {
		g.Add(scene.NewCone(0.08, 0.2, scene.Glow("#00acc1", 0.5)).
			At(geom.V(x, 0, 0)).
			Rotated(geom.V(0, 0, -x*math.Pi/2)).
			Named(named("flow", i)))
	}

	g.Add(k.light("#26c6da", 1.5, geom.V(0, 1, 2)))
	return g
}
