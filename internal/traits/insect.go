package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("exoskeleton", 0, exoskeleton)
	register("compound-eyes", 0.15, compoundEyes)
	register("metamorphosis", 0, metamorphosis)
	register("flight-muscles", 0, flightMuscles)
	register("pheromone", 0.15, pheromone)
	register("hive-mind", 0.1, hiveMind)
	register("super-strength", 0.15, superStrength)
}

// exoskeleton is three overlapping chitin plates over a jointed frame.
func exoskeleton(k *kit) *scene.Node {
	g := scene.NewGroup()

	for i, c := range []palette.Token{"#5d4037", "#6d4c41", "#8d6e63"} {
		plate := scene.NewSphere(0.45-float64(i)*0.05, scene.Standard(c).Metal(0.4, 0.3)).
			At(geom.V(float64(i)*0.55-0.55, 0, 0)).
			ScaledBy(geom.V(1, 0.7, 0.9)).
			Named(named("plate", i))
		g.Add(k.breathe(plate, 1, float64(i)*0.8, 0.02))
	}

	for i := 0; i < 6; i++ {
		g.Add(scene.NewBox(geom.V(1.6, 0.02, 0.02), scene.Glow("#bcaaa4", 0.2)).
			At(geom.V(0, float64(i%3)*0.2-0.2, float64(i/3)*0.4-0.2)).
			Named(named("chitin", i)))
	}

	for i := 0; i < 4; i++ {
		joint := scene.NewSphere(0.06, scene.Glow("#ffcc80", 0.5)).At(geom.V(float64(i)*0.55-0.825, -0.2, 0)).Named(named("joint", i))
		g.Add(k.glimmer(joint, 2, float64(i), 0.5, 1))
	}

	g.Add(k.light("#8d6e63", 1.5, geom.V(0, 1, 2)))
	return g
}

// compoundEyes is a dome tiled with hexagonal rings of ommatidia.
func compoundEyes(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.6, scene.Standard("#4a148c")).ScaledBy(geom.V(1, 1, 0.6)).Named("dome"),
	)

	i := 0
	for r := 0; r <= 3; r++ {
		count := 6 * r
		if r == 0 {
			count = 1
		}
		for j := 0; j < count; j++ {
			a := step(j, count)
			x, y := math.Cos(a)*float64(r)*0.12, math.Sin(a)*float64(r)*0.12
			z := math.Sqrt(math.Max(0, 0.36-x*x-y*y)) * 0.6
			o := scene.NewCylinder(0.05, 0.05, 0.06, scene.Glow("#ce93d8", 0.4).Metal(0.6, 0.2)).
				At(geom.V(x, y, z+0.02)).
				Rotated(geom.V(math.Pi/2, 0, 0)).
				Named(named("ommatidium", i))
			g.Add(k.animate(o, func(n *scene.Node, t float64) {
				n.Material.EmissiveIntensity = scene.Pulse(t, 2, 0.2, 0.8) * (1 - float64(r)*0.15)
			}))
			i++
		}
	}

	g.Add(k.light("#9c27b0", 1.5, geom.V(0, 1, 2)))
	return g
}

// metamorphosis is a chrysalis splitting as wings unfold.
func metamorphosis(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.25, 0.6, scene.Standard("#8bc34a").Faded(0.8)).Named("chrysalis"),
	)

	for i, side := range []float64{-1, 1} {
		wing := scene.NewSphere(0.4, scene.Glow("#f48fb1", 0.4).Faded(0.8)).
			At(geom.V(side*0.45, 0.1, 0)).
			ScaledBy(geom.V(1.5, 0.8, 0.1)).
			Named(named("wing", i))
		g.Add(k.animate(wing, func(n *scene.Node, t float64) {
			open := (math.Sin(t*0.6) + 1) / 2
			n.Rotation.Y = side * (1 - open) * math.Pi / 2
		}))
	}

	g.Add(cloud(k.scatter(12, geom.Splat(1.6)), func(i int, p geom.Vec3) *scene.Node {
		return k.glimmer(scene.NewSphere(0.025, scene.Glow("#fce4ec", 1)).At(p).Named(named("sparkle", i)), 3, float64(i), 0, 1)
	}))

	g.Add(k.light("#e91e63", 1.5, geom.V(0, 1, 2)))
	return g
}

// flightMuscles is a thorax beating a pair of wings.
func flightMuscles(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.35, scene.Standard("#37474f")).Named("thorax"),
		k.breathe(scene.NewBox(geom.V(0.3, 0.3, 0.25), scene.Glow("#e57373", 0.4)).Named("muscle"), 20, 0, 0.05),
	)

	for i, side := range []float64{-1, 1} {
		wing := scene.NewBox(geom.V(0.9, 0.02, 0.35), scene.Standard("#bbdefb").Faded(0.5)).
			At(geom.V(side*0.6, 0.2, 0)).
			Named(named("wing", i))
		g.Add(k.animate(wing, func(n *scene.Node, t float64) {
			n.Rotation.Z = math.Sin(t*20) * 0.5 * side
		}))
	}

	g.Add(k.light("#64b5f6", 1.5, geom.V(0, 1, 2)))
	return g
}

// pheromone is a moth trailing a widening plume of scent.
func pheromone(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCapsule(0.12, 0.4, scene.Standard("#8d6e63")).Rotated(geom.V(0, 0, math.Pi/2)).At(geom.V(-0.8, 0, 0)).Named("moth"),
	)

	for i, side := range []float64{-1, 1} {
		g.Add(scene.NewCylinder(0.008, 0.008, 0.35, scene.Standard("#5d4037")).
			At(geom.V(-0.5, 0.12, side*0.08)).
			Rotated(geom.V(side*0.4, 0, -0.9)).
			Named(named("antenna", i)))
	}

	for i := 0; i < 15; i++ {
		f := float64(i) / 14
		puff := scene.NewSphere(0.03+f*0.12, scene.Glow("#f48fb1", 0.5).Faded(0.6-f*0.4)).
			At(geom.V(-0.5+f*1.8, math.Sin(f*math.Pi*2)*0.2, 0)).
			Named(named("plume", i))
		g.Add(k.drift(puff, geom.V(0, 1, 0.5), 1.5, f*math.Pi*2, 0.1))
	}

	g.Add(k.light("#ec407a", 1.5, geom.V(0, 1, 2)))
	return g
}

// hiveMind is a swarm of striped bees linked to their queen.
func hiveMind(k *kit) *scene.Node {
	g := scene.NewGroup()

	var bees []*scene.Node
	for i := 0; i < 6; i++ {
		bee := scene.NewGroup(
			scene.NewSphere(0.12, scene.Standard("#ffc107")).ScaledBy(geom.V(1.4, 1, 1)),
			scene.NewTorus(0.1, 0.02, scene.Standard("#212121")).Rotated(geom.V(0, math.Pi/2, 0)),
		).Named(named("bee", i))
		if i == 0 {
			bee.Scaled(1.4)
		} else {
			bee.At(around(step(i-1, 5), 0.8, float64(i%2)*0.3-0.15))
			k.orbit(bee, 0.8, 0.5, step(i-1, 5))
		}
		bees = append(bees, bee)
		g.Add(bee)
	}

	for i := 1; i < len(bees); i++ {
		link := scene.NewLine([]geom.Vec3{{}, bees[i].Position}, scene.Glow("#ffe082", 0.6).Faded(0.5)).Named(named("link", i))
		bee := bees[i]
		g.Add(k.animate(link, func(n *scene.Node, t float64) {
			n.Path[1] = bee.Position
		}))
	}

	g.Add(k.light("#ffc107", 1.5, geom.V(0, 1, 2)))
	return g
}

// superStrength is a horned beetle holding a weight above itself.
func superStrength(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.4, scene.Standard("#2e7d32").Metal(0.6, 0.3)).ScaledBy(geom.V(1.3, 0.7, 1)).Named("beetle"),
		scene.NewCone(0.08, 0.35, scene.Standard("#1b5e20")).At(geom.V(0.5, 0.25, 0)).Rotated(geom.V(0, 0, -0.6)).Named("horn"),
	)

	for i := 0; i < 6; i++ {
		side := 1.0
		if i >= 3 {
			side = -1
		}
		g.Add(scene.NewCylinder(0.02, 0.02, 0.4, scene.Standard("#33691e")).
			At(geom.V(float64(i%3)*0.3-0.3, -0.25, side*0.35)).
			Rotated(geom.V(side*0.6, 0, 0)).
			Named(named("leg", i)))
	}

	weight := scene.NewBox(geom.V(0.6, 0.3, 0.6), scene.Standard("#616161").Metal(0.9, 0.3)).At(geom.V(0, 0.75, 0)).Named("weight")
	g.Add(k.drift(weight, geom.V(0, 1, 0), 1.5, 0, 0.08))

	g.Add(k.light("#4caf50", 1.5, geom.V(0, 1, 2)))
	return g
}
