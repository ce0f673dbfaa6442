package traits

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func init() {
	register("thermophilic", 0.25, thermophilic)
	register("radioresistance", 0, radioresistance)
	register("psychrophilic", 0.15, psychrophilic)
	register("halophilic", 0.25, halophilic)
	register("acidophilic", 0, acidophilic)
	register("barophilic", 0, barophilic)
	register("desiccation", 0.15, desiccation)
	register("alkaliphilic", 0, alkaliphilic)
}

// thermophilic is a heat shock chaperone barrel around a glowing client
// protein, with flames rising underneath.
func thermophilic(k *kit) *scene.Node {
	g := scene.NewGroup()

	for i := 0; i < 7; i++ {
		f := float64(i) / 6
		r := 0.5 + math.Sin(f*math.Pi)*0.15
		y := float64(i-3) * 0.2
		c := palette.Blend("#ff1744", "#ffeb3b", f)

		g.Add(scene.NewTorus(r, 0.03, scene.Glow(c, 0.5).Metal(0.6, 0.3)).
			At(geom.V(0, y, 0)).
			Rotated(geom.V(math.Pi/2, 0, 0)).
			Named(named("barrel", i)))
		g.Add(ring(8, r, y, func(_ int, p geom.Vec3, _ float64) *scene.Node {
			return scene.NewSphere(0.03, scene.Standard(c)).At(p)
		}))
	}

	g.Add(k.breathe(scene.NewSphere(0.25, scene.Emit("#ffeb3b", "#ff9800", 1)).Named("core"), 3, 0, 0.1))

	g.Add(ring(12, 0.8, -0.6, func(i int, p geom.Vec3, _ float64) *scene.Node {
		c := pick([]palette.Token{"#ff5722", "#ff9800"}, i)
		return k.rise(scene.NewCone(0.05, 0.2, scene.Glow(c, 0.8)).At(p).Named(named("flame", i)), 1.2, 2, float64(i)/12)
	}))

	g.Add(scene.NewSphere(1, scene.Glow("#ff5722", 0.2).Faded(0.1)).Named("aura"))

	for i := 0; i < 3; i++ {
		atp := scene.NewSphere(0.06, scene.Glow("#76ff03", 1)).Named(named("atp", i))
		g.Add(k.orbit(atp, 0.35, 1.5, step(i, 3)))
	}

	g.Add(cloud(k.scatter(20, geom.Splat(2)), func(i int, p geom.Vec3) *scene.Node {
		return k.drift(scene.NewSphere(0.02, scene.Glow("#ffeb3b", 1)).At(p), geom.V(0, 1, 0), 2, float64(i), 0.1)
	}))

	g.Add(k.pulsingLight("#ff5722", 4, 2, 4, geom.V(0, 0, 0)))
	return g
}

// radioresistance is a DNA double helix with rungs, patched by repair enzymes.
func radioresistance(k *kit) *scene.Node {
	g := scene.NewGroup()

	strands := [2][]geom.Vec3{
		geom.Helix(50, 0.5, 2, 3.0/50, 0),
		geom.Helix(50, 0.5, 2, 3.0/50, math.Pi),
	}
	for i, c := range []palette.Token{"#7c4dff", "#448aff"} {
		g.Add(scene.NewLine(strands[i], scene.Glow(c, 0.5)).Named(named("strand", i)))
	}

	for i := 0; i < 10; i++ {
		p := strands[0][i*5]
		c := pick([]palette.Token{"#69f0ae", "#ffab40"}, i)
		g.Add(scene.NewBox(geom.V(1, 0.05, 0.1), scene.Glow(c, 0.3)).
			At(geom.V(0, p.Y, 0)).
			Rotated(geom.V(0, -math.Atan2(p.Z, p.X), 0)).
			Named(named("rung", i)))
	}

	for i := 0; i < 4; i++ {
		repair := scene.NewSphere(0.08, scene.Glow("#76ff03", 0.8)).At(geom.V(0.7, float64(i)*0.6-0.9, 0)).Named(named("repair", i))
		g.Add(k.orbit(repair, 0.7, 0.8, step(i, 4)))
	}

	g.Add(k.pulsingLight("#7c4dff", 2, 1, 2, geom.V(0, 0, 2)))
	return g
}

// psychrophilic is a frosted antifreeze protein in an ice lattice.
func psychrophilic(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewIcosahedron(0.7, scene.Glow("#e3f2fd", 0.2).Metal(0.9, 0.1)).Named("core"),
		scene.NewIcosahedron(1.2, scene.Wire("#bbdefb").Faded(0.3)).Named("lattice"),
	)

	g.Add(cloud(k.scatter(20, geom.Splat(2.4)), func(i int, p geom.Vec3) *scene.Node {
		return k.turn(scene.NewOctahedron(0.08, scene.Glow("#e1f5fe", 0.6)).At(p).Named(named("crystal", i)), 'y', 0.5+float64(i%3)*0.2)
	}))

	for i := 0; i < 3; i++ {
		g.Add(scene.NewCylinder(0.03, 0.03, 1.6, scene.Glow("#00bcd4", 0.4)).
			Rotated(geom.V(0, 0, step(i, 3)/2)).
			Named(named("binding", i)))
	}

	k.animate(g, func(n *scene.Node, t float64) {
		n.Rotation.X = math.Sin(t*0.5) * 0.1
	})

	g.Add(k.light("#4fc3f7", 1.5, geom.V(0, 1, 2)))
	return g
}

// halophilic is a stack of membrane rings pumping salt ions.
func halophilic(k *kit) *scene.Node {
	g := scene.NewGroup()

	for i, y := range []float64{-0.4, 0, 0.4} {
		g.Add(scene.NewTorus(0.6, 0.15, scene.Standard("#ffb74d").Metal(0.2, 0.6)).
			At(geom.V(0, y, 0)).
			Rotated(geom.V(math.Pi/2, 0, 0)).
			Named(named("membrane", i)))
	}

	g.Add(ring(4, 0.6, 0, func(i int, p geom.Vec3, _ float64) *scene.Node {
		return scene.NewCylinder(0.06, 0.06, 1.2, scene.Glow("#ff9800", 0.3)).At(p).Named(named("pump", i))
	}))

	for i := 0; i < 8; i++ {
		c := pick([]palette.Token{"#ffd54f", "#81c784"}, i)
		ion := scene.NewSphere(0.07, scene.Glow(c, 0.6)).At(geom.V(0, float64(i%4)*0.3-0.45, 0)).Named(named("ion", i))
		g.Add(k.orbit(ion, 0.3+float64(i%2)*0.6, 1+float64(i%3)*0.3, step(i, 8)))
	}

	g.Add(k.light("#ffb74d", 1.5, geom.V(0, 0, 2)))
	return g
}

// acidophilic is a proton pump: a rotor spinning in a membrane base while
// protons are pushed out through the top.
func acidophilic(k *kit) *scene.Node {
	rotor := scene.NewGroup(scene.NewCylinder(0.3, 0.3, 0.4, scene.Standard("#ec407a").Metal(0.5, 0.4)).Named("rotor"))
	for i := 0; i < 3; i++ {
		a := step(i, 3)
		rotor.Add(scene.NewBox(geom.V(0.5, 0.08, 0.15), scene.Standard("#f48fb1")).
			At(around(a, 0.45, 0)).
			Rotated(geom.V(0, -a, 0)).
			Named(named("blade", i)))
	}
	k.turn(rotor, 'y', 3)

	g := scene.NewGroup(
		scene.NewCylinder(0.8, 0.9, 0.3, scene.Standard("#880e4f").Faded(0.8)).At(geom.V(0, -0.5, 0)).Named("base"),
		rotor,
		scene.NewSphere(0.35, scene.Glow("#f06292", 0.3)).At(geom.V(0, 0.6, 0)).Named("head"),
	)

	for i := 0; i < 6; i++ {
		h := scene.NewSphere(0.05, scene.Glow("#fff176", 1)).At(around(step(i, 6), 0.2, -0.3)).Named(named("proton", i))
		g.Add(k.rise(h, 1.6, 1.5, float64(i)/6))
	}

	g.Add(k.light("#f06292", 2, geom.V(0, 1, 2)))
	return g
}

// barophilic is a core squeezed by pressure rings, flattening and recovering.
func barophilic(k *kit) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(0.6, scene.Standard("#455a64").Metal(0.7, 0.3)).Named("core"))

	for i := 0; i < 4; i++ {
		g.Add(scene.NewTorus(0.8+float64(i)*0.15, 0.02, scene.Glow("#90a4ae", 0.3).Faded(0.6)).
			Rotated(geom.V(math.Pi/2, 0, step(i, 8))).
			Named(named("pressure", i)))
	}

	g.Add(ring(6, 1.4, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		return scene.NewCone(0.08, 0.25, scene.Standard("#607d8b")).At(p).Rotated(radial(a + math.Pi)).Named(named("force", i))
	}))

	k.animate(g, func(n *scene.Node, t float64) {
		s := 1 + math.Sin(t*2)*0.05
		n.Scale = geom.V(s, 1/s, s)
	})

	g.Add(k.light("#607d8b", 1.5, geom.V(0, 2, 2)))
	return g
}

// desiccation is a water bear curled into a glassy tun.
func desiccation(k *kit) *scene.Node {
	tun := scene.NewSphere(0.6, scene.Standard("#a1887f").Metal(0.1, 0.8)).ScaledBy(geom.V(1, 0.8, 0.8)).Named("tun")

	g := scene.NewGroup(tun)
	for i := 0; i < 8; i++ {
		x := float64(i%4)*0.3 - 0.45
		z := 0.35
		if i >= 4 {
			z = -0.35
		}
		g.Add(scene.NewCapsule(0.06, 0.12, scene.Standard("#8d6e63")).At(geom.V(x, -0.4, z)).Named(named("leg", i)))
	}

	g.Add(k.glimmer(scene.NewSphere(0.75, scene.Glow("#d7ccc8", 0.3)).Named("glass"), 1.5, 0, 0.1, 0.3))

	for i := 0; i < 5; i++ {
		g.Add(k.breathe(scene.NewTorus(0.55, 0.015, scene.Standard("#6d4c41")).
			At(geom.V(float64(i)*0.2-0.4, 0, 0)).
			Rotated(geom.V(0, math.Pi/2, 0)).
			Named(named("segment", i)), 1, float64(i)*0.5, 0.03))
	}

	g.Add(k.light("#a1887f", 1.2, geom.V(0, 1, 2)))
	return g
}

// alkaliphilic is a membrane with antiporters swapping hydroxide ions out.
func alkaliphilic(k *kit) *scene.Node {
	g := scene.NewGroup(
		scene.NewSphere(0.8, scene.Standard("#5c6bc0").Faded(0.4)).Named("membrane"),
		scene.NewSphere(0.4, scene.Glow("#9fa8da", 0.4)).Named("core"),
	)

	g.Add(ring(6, 0.8, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		return scene.NewCylinder(0.08, 0.08, 0.3, scene.Glow("#3949ab", 0.3)).At(p).Rotated(radial(a)).Named(named("antiporter", i))
	}))

	g.Add(ring(10, 1.1, 0, func(i int, p geom.Vec3, a float64) *scene.Node {
		oh := scene.NewSphere(0.05, scene.Glow("#e8eaf6", 0.8)).At(p.Add(geom.V(0, float64(i%3)*0.3-0.3, 0))).Named(named("hydroxide", i))
		return k.drift(oh, geom.V(math.Cos(a), 0, math.Sin(a)), 1.5, float64(i), 0.25)
	}))

	g.Add(k.light("#7986cb", 1.5, geom.V(0, 1, 2)))
	return g
}
