package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("mycelium", 0.1, mycelium)
	register("lignin", 0.15, lignin)
	register("symbiosis", 0, symbiosis)
	register("spore-formation", 0, sporeFormation)
	register("bioluminescence", 0, bioluminescence)
}

const hyphaDepth = 3

// mycelium is a branching network of hyphae spreading from a center.
func mycelium(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(0.12, scene.Glow("#ffcc80", 0.6)).Named("hub"))

	var hypha func(from, dir geom.Vec3, length float64, depth int)
	hypha = func(from, dir geom.Vec3, length float64, depth int) {
		to := from.Add(dir.Scale(length))
		g.Add(scene.NewLine([]geom.Vec3{from, to}, scene.Glow("#ffe0b2", 0.3).Faded(0.8)))
		g.Add(k.breathe(scene.NewSphere(0.025, scene.Glow("#ff9800", 0.8)).At(to), 2, to.X*3, 0.3))

		if depth == 0 {
			return
		}
		for b := 0; b < 2; b++ {
			turn := k.between(-0.8, 0.8)
			lift := k.between(-0.3, 0.3)
			next := dir.RotateY(turn).Add(geom.V(0, lift, 0)).Norm()
			hypha(to, next, length*0.7, depth-1)
		}
	}

	for i := 0; i < 6; i++ {
		hypha(geom.Vec3{}, around(step(i, 6), 1, 0), 0.5, hyphaDepth)
	}

	g.Add(k.light("#ff9800", 1.5, geom.V(0, 1, 2)))
	return g
}

// lignin is a block of wood being broken into fragments by enzymes.
func lignin(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewBox(geom.V(1, 0.6, 0.6), scene.Standard("#8d6e63").Metal(0, 0.9)).Named("wood"))

	g.Add(ring(5, 0.8, 0, func(i int, p geom.Vec3, _ float64) *scene.Node {
		enzyme := scene.NewIcosahedron(0.1, scene.Glow("#ffb74d", 0.5)).At(p).Named(named("enzyme", i))
		return k.orbit(enzyme, 0.8, 0.6, step(i, 5))
	}))

	g.Add(cloud(k.scatter(12, geom.V(0.8, 0.2, 0.5)), func(i int, p geom.Vec3) *scene.Node {
		frag := scene.NewBox(geom.Splat(0.06), scene.Standard("#a1887f")).At(p.Add(geom.V(0, 0.3, 0))).Named(named("fragment", i))
		return k.rise(frag, 1, 3, float64(i)/12)
	}))

	g.Add(k.light("#8d6e63", 1.5, geom.V(0, 1, 2)))
	return g
}

// symbiosis is a fungus and a root cell joined by a channel trading nutrients.
func symbiosis(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.4, scene.Standard("#8bc34a")).At(geom.V(-0.7, 0, 0)).Named("root-cell"),
		scene.NewCapsule(0.25, 0.5, scene.Standard("#ffb74d")).At(geom.V(0.7, 0, 0)).Named("fungus"),
		scene.NewCylinder(0.06, 0.06, 1, scene.Standard("#a5d6a7").Faded(0.6)).Rotated(geom.V(0, 0, math.Pi/2)).Named("channel"),
	)

	for i := 0; i < 8; i++ {
		c, dir := palette.Token("#4fc3f7"), geom.V(1, 0, 0)
		if i%2 == 1 {
			c, dir = "#ffb74d", geom.V(-1, 0, 0)
		}
		p := scene.NewSphere(0.04, scene.Glow(c, 0.8)).At(geom.V(0, float64(i%3)*0.04-0.04, 0)).Named(named("nutrient", i))
		g.Add(k.drift(p, dir, 1.5, float64(i/2), 0.45))
	}

	g.Add(k.light("#66bb6a", 1.5, geom.V(0, 1, 2)))
	return g
}

// sporeFormation is a sporangium packed with spores, some drifting free.
func sporeFormation(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewCylinder(0.04, 0.06, 0.8, scene.Standard("#90a4ae")).At(geom.V(0, -0.8, 0)).Named("stalk"),
		scene.NewSphere(0.5, scene.Standard("#607d8b")).Named("sporangium"),
		scene.NewSphere(0.6, scene.Standard("#b0bec5").Faded(0.2)).Named("wall"),
	)

	// fibonacci sphere
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < 20; i++ {
		y := 1 - float64(i)/19*2
		r := math.Sqrt(1 - y*y)
		a := golden * float64(i)
		p := geom.V(math.Cos(a)*r, y, math.Sin(a)*r).Scale(0.35)
		g.Add(k.breathe(scene.NewSphere(0.05, scene.Glow("#cfd8dc", 0.3)).At(p).Named(named("spore", i)), 2, a, 0.1))
	}

	for i := 0; i < 6; i++ {
		s := scene.NewSphere(0.04, scene.Glow("#eceff1", 0.5)).At(around(step(i, 6), 0.7, 0.2)).Named(named("released", i))
		g.Add(k.rise(s, 1.2, 4, float64(i)/6))
	}

	g.Add(k.light("#78909c", 1.5, geom.V(0, 1, 2)))
	return g
}

// bioluminescence is a glowing organism shedding light particles.
func bioluminescence(k *kit) *scene.Node {
	g := scene.NewGroup(
		k.breathe(scene.NewSphere(0.6, scene.Glow("#00e5ff", 0.8).Faded(0.7)).Named("organism"), 2, 0, 0.05),
		scene.NewSphere(0.25, scene.Glow("#e0f7fa", 1.5)).Named("core"),
	)

	g.Add(cloud(k.scatter(15, geom.Splat(2.2)), func(i int, p geom.Vec3) *scene.Node {
		spark := scene.NewSphere(0.03, scene.Glow("#18ffff", 1.5)).At(p).Named(named("photon", i))
		return k.glimmer(spark, 3, float64(i), 0.2, 1)
	}))

	g.Add(k.pulsingLight("#00e5ff", 3, 1, 3, geom.V(0, 0, 0)))
	return g
}
