// Package raster draws scenes into images without a GPU: every primitive is
// flattened into shaded capsule strokes that are painted back to front.
package raster

import (
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
)

const (
	near = 0.05

	specular  = 0.3
	shininess = 24.0
)

// Options size the output.
type Options struct {
	Width      int
	Height     int
	Frames     int
	FPS        int
	Background palette.Token
}

// DefaultOptions are small enough to render a few seconds of animation quickly.
var DefaultOptions = Options{Width: 480, Height: 360, Frames: 48, FPS: 12, Background: "#0a0a0f"}

// projected is a stroke in screen space.
type projected struct {
	Stroke

	ax, ay, ra float64
	bx, by, rb float64
	depth      float64
}

// Render paints a frame as seen through the rig's camera.
func Render(f Frame, rig host.Rig, opt Options) *image.RGBA {
	w, h := opt.Width, opt.Height
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	bg := opt.Background.Color()
	buf := make([]colorful.Color, w*h)
	for i := range buf {
		buf[i] = bg
	}

	eye := rig.Eye()
	right, up, forward := rig.Basis()
	focal := float64(h) / 2 / math.Tan(rig.FOV*math.Pi/360)

	project := func(p geom.Vec3) (x, y, z float64) {
		rel := p.Sub(eye)
		z = rel.Dot(forward)
		x = float64(w)/2 + rel.Dot(right)*focal/z
		y = float64(h)/2 - rel.Dot(up)*focal/z
		return x, y, z
	}

	strokes := make([]projected, 0, len(f.Strokes))
	for _, s := range f.Strokes {
		if s.Alpha <= 0 {
			continue
		}
		ax, ay, az := project(s.A)
		bx, by, bz := project(s.B)
		if az < near || bz < near {
			continue
		}
		strokes = append(strokes, projected{
			Stroke: s,
			ax:     ax,
			ay:     ay,
			ra:     math.Max(s.RA*focal/az, 0.5),
			bx:     bx,
			by:     by,
			rb:     math.Max(s.RB*focal/bz, 0.5),
			depth:  (az + bz) / 2,
		})
	}
	sort.SliceStable(strokes, func(i, j int) bool { return strokes[i].depth > strokes[j].depth })

	sh := shader{rig: rig, eye: eye, lights: f.Lights, key: rig.Key.Position.Norm()}
	for _, p := range strokes {
		paint(buf, w, h, p, right, up, forward, sh)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range buf {
		r, g, b := c.Clamped().RGB255()
		img.Pix[i*4], img.Pix[i*4+1], img.Pix[i*4+2], img.Pix[i*4+3] = r, g, b, 0xff
	}
	return img
}

func paint(buf []colorful.Color, w, h int, p projected, right, up, forward geom.Vec3, sh shader) {
	rmax := math.Max(p.ra, p.rb)
	fx0, fx1 := math.Min(p.ax, p.bx)-rmax, math.Max(p.ax, p.bx)+rmax
	fy0, fy1 := math.Min(p.ay, p.by)-rmax, math.Max(p.ay, p.by)+rmax
	if !(fx1 >= 0 && fy1 >= 0 && fx0 <= float64(w) && fy0 <= float64(h)) {
		return
	}
	x0, x1 := int(math.Max(0, math.Floor(fx0))), int(math.Min(float64(w-1), math.Ceil(fx1)))
	y0, y1 := int(math.Max(0, math.Floor(fy0))), int(math.Min(float64(h-1), math.Ceil(fy1)))

	dx, dy := p.bx-p.ax, p.by-p.ay
	l2 := dx*dx + dy*dy

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			t := 0.0
			if l2 > 1e-9 {
				t = math.Max(0, math.Min(1, ((px-p.ax)*dx+(py-p.ay)*dy)/l2))
			}
			cx, cy := p.ax+t*dx, p.ay+t*dy
			r := p.ra + t*(p.rb-p.ra)
			ox, oy := px-cx, py-cy
			d := math.Hypot(ox, oy)
			if d > r+0.5 {
				continue
			}
			coverage := math.Max(0, math.Min(1, r-d+0.5))

			nx, ny := ox/r, -oy/r
			nz := math.Sqrt(math.Max(0, 1-nx*nx-ny*ny))
			normal := right.Scale(nx).Add(up.Scale(ny)).Sub(forward.Scale(nz))

			c := sh.shade(p.Stroke, p.A.Lerp(p.B, t), normal)
			a := p.Alpha * coverage
			i := y*w + x
			buf[i] = colorful.Color{
				R: buf[i].R*(1-a) + c.R*a,
				G: buf[i].G*(1-a) + c.G*a,
				B: buf[i].B*(1-a) + c.B*a,
			}
		}
	}
}

type shader struct {
	rig    host.Rig
	eye    geom.Vec3
	key    geom.Vec3
	lights []Light
}

// shade lights a point of a stroke: ambient plus the rig's key light plus the
// scene's point lights, with a specular highlight and the material's glow.
func (sh shader) shade(s Stroke, p, n geom.Vec3) colorful.Color {
	glow := colorful.Color{R: s.Glow.R * s.Emissive, G: s.Glow.G * s.Emissive, B: s.Glow.B * s.Emissive}
	if s.Flat {
		return add(s.Color, glow)
	}

	diffuse := sh.rig.Key.Intensity * math.Max(n.Dot(sh.key), 0)
	lr := sh.rig.Ambient + diffuse
	lg, lb := lr, lr

	for _, l := range sh.lights {
		toLight := l.Position.Sub(p)
		dist := toLight.Len()
		if dist < 1e-9 {
			lr, lg, lb = lr+l.Intensity*l.Color.R, lg+l.Intensity*l.Color.G, lb+l.Intensity*l.Color.B
			continue
		}
		lambert := math.Max(n.Dot(toLight.Scale(1/dist)), 0) * l.Intensity / (1 + dist*dist)
		lr, lg, lb = lr+lambert*l.Color.R, lg+lambert*l.Color.G, lb+lambert*l.Color.B
	}

	view := sh.eye.Sub(p).Norm()
	reflected := n.Scale(2 * n.Dot(sh.key)).Sub(sh.key)
	shine := specular * math.Pow(math.Max(view.Dot(reflected), 0), shininess)

	return add(colorful.Color{
		R: s.Color.R*lr + shine,
		G: s.Color.G*lg + shine,
		B: s.Color.B*lb + shine,
	}, glow)
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
