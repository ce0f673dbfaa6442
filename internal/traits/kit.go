package traits

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

// kit collects the frame callbacks of one model while it is built. Its random
// source is seeded from the model ID so a model looks the same every time.
type kit struct {
	rng     *rand.Rand
	updates []scene.UpdateFunc
}

func newKit(id string) *kit {
	h := fnv.New64a()
	h.Write([]byte(id))
	return &kit{rng: rand.New(rand.NewSource(int64(h.Sum64())))}
}

func (k *kit) on(fn scene.UpdateFunc) {
	k.updates = append(k.updates, fn)
}

// animate registers fn to drive n every frame and returns n.
func (k *kit) animate(n *scene.Node, fn func(n *scene.Node, t float64)) *scene.Node {
	k.on(func(t float64) { fn(n, t) })
	return n
}

// float wraps n in a group that bobs in place.
func (k *kit) float(n *scene.Node, speed, rotation, float float64) *scene.Node {
	g, bob := scene.Float(n, speed, rotation, float)
	k.on(bob)
	return g
}

func (k *kit) between(lo, hi float64) float64 {
	return lo + k.rng.Float64()*(hi-lo)
}

func (k *kit) scatter(count int, extent geom.Vec3) []geom.Vec3 {
	return geom.Scatter(k.rng, count, extent)
}

// light returns a point light at p.
func (k *kit) light(c palette.Token, intensity float64, p geom.Vec3) *scene.Node {
	return scene.NewPointLight(c, intensity).At(p).Named("light")
}

// pulsingLight is a light whose intensity swings between lo and hi.
func (k *kit) pulsingLight(c palette.Token, freq, lo, hi float64, p geom.Vec3) *scene.Node {
	return k.animate(k.light(c, hi, p), func(n *scene.Node, t float64) {
		n.Intensity = scene.Pulse(t, freq, lo, hi)
	})
}

func (k *kit) update() scene.UpdateFunc {
	updates := k.updates
	return func(elapsed float64) {
		for _, fn := range updates {
			fn(elapsed)
		}
	}
}

func named(kind string, i int) string {
	return fmt.Sprintf("%s-%d", kind, i)
}

// pick cycles through colors.
func pick(colors []palette.Token, i int) palette.Token {
	return colors[i%len(colors)]
}

// around is the point at angle a on a horizontal circle.
func around(a, radius, y float64) geom.Vec3 {
	return geom.V(math.Cos(a)*radius, y, math.Sin(a)*radius)
}

// step is the angle of the i-th of n points evenly spread around a circle.
func step(i, n int) float64 {
	return float64(i) / float64(n) * 2 * math.Pi
}

// radial lays a Y-aligned primitive along the horizontal direction at angle a.
func radial(a float64) geom.Vec3 {
	return geom.V(0, math.Pi-a, math.Pi/2)
}

// molecule is a center atom with smaller atoms at the given offsets.
func molecule(center palette.Token, r float64, atom palette.Token, offsets ...geom.Vec3) *scene.Node {
	g := scene.NewGroup(scene.NewSphere(r, scene.Glow(center, 0.3)))
	for _, o := range offsets {
		g.Add(scene.NewSphere(r*0.6, scene.Glow(atom, 0.3)).At(o))
	}
	return g
}

// drift moves n back and forth around where it was placed.
func (k *kit) drift(n *scene.Node, axis geom.Vec3, freq, phase, amp float64) *scene.Node {
	home := n.Position
	return k.animate(n, func(n *scene.Node, t float64) {
		n.Position = home.Add(axis.Scale(math.Sin(t*freq+phase) * amp))
	})
}

// rise loops n upward from its home through height over period seconds.
func (k *kit) rise(n *scene.Node, height, period, phase float64) *scene.Node {
	home := n.Position
	return k.animate(n, func(n *scene.Node, t float64) {
		f := math.Mod(t/period+phase, 1)
		n.Position = home.Add(geom.V(0, f*height, 0))
	})
}

// orbit carries n around the Y axis on a circle, keeping its height.
func (k *kit) orbit(n *scene.Node, radius, speed, phase float64) *scene.Node {
	y := n.Position.Y
	return k.animate(n, func(n *scene.Node, t float64) {
		n.Position = around(t*speed+phase, radius, y)
	})
}

// breathe scales n uniformly by 1 + sin(freq t + phase) amp.
func (k *kit) breathe(n *scene.Node, freq, phase, amp float64) *scene.Node {
	return k.animate(n, func(n *scene.Node, t float64) {
		n.Scale = geom.Splat(1 + math.Sin(t*freq+phase)*amp)
	})
}

// turn spins n about one axis at speed radians per second.
func (k *kit) turn(n *scene.Node, axis byte, speed float64) *scene.Node {
	return k.animate(n, func(n *scene.Node, t float64) {
		switch axis {
		case 'x':
			n.Rotation.X = t * speed
		case 'z':
			n.Rotation.Z = t * speed
		default:
			n.Rotation.Y = t * speed
		}
	})
}

// glimmer swings the opacity of n's material between lo and hi.
func (k *kit) glimmer(n *scene.Node, freq, phase, lo, hi float64) *scene.Node {
	n.Material = n.Material.Faded(hi)
	return k.animate(n, func(n *scene.Node, t float64) {
		n.Material.Opacity = lo + (hi-lo)*(math.Sin(t*freq+phase)+1)/2
	})
}

// ring places n nodes evenly around a horizontal circle.
func ring(n int, radius, y float64, fn func(i int, p geom.Vec3, a float64) *scene.Node) *scene.Node {
	g := scene.NewGroup()
	for i := 0; i < n; i++ {
		a := step(i, n)
		g.Add(fn(i, around(a, radius, y), a))
	}
	return g
}

// cloud places a node at each point.
func cloud(pts []geom.Vec3, fn func(i int, p geom.Vec3) *scene.Node) *scene.Node {
	g := scene.NewGroup()
	for i, p := range pts {
		g.Add(fn(i, p))
	}
	return g
}
