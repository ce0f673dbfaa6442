package host

import (
	"math"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
)

// polarLimit keeps the orbit off the poles, where the view flips.
const polarLimit = 0.01

// Light is a directional light shining from Position toward the origin.
type Light struct {
	Color     palette.Token `json:"color"`
	Position  geom.Vec3     `json:"position"`
	Intensity float64       `json:"intensity"`
}

// Rig is the camera and lighting a scene is viewed with. The camera orbits
// the origin: it can be rotated and zoomed between MinDistance and
// MaxDistance but never panned.
type Rig struct {
	Camera geom.Vec3 `json:"camera"`
	FOV    float64   `json:"fov"`

	MinDistance float64 `json:"minDistance"`
	MaxDistance float64 `json:"maxDistance"`

	Ambient float64 `json:"ambient"`
	Key     Light   `json:"key"`

	Azimuth  float64 `json:"azimuth"`
	Polar    float64 `json:"polar"`
	Distance float64 `json:"distance"`
}

// SequenceRig frames the structure views.
func SequenceRig() Rig {
	return newRig(geom.V(0, 0, 5), 50, 3, 10, 0.4, Light{Color: palette.White, Position: geom.V(10, 10, 5), Intensity: 0.6})
}

// TraitRig frames the trait models, which are smaller.
func TraitRig() Rig {
	return newRig(geom.V(0, 0, 4), 50, 2, 8, 0.3, Light{Color: palette.White, Position: geom.V(5, 5, 5), Intensity: 0.5})
}

func newRig(camera geom.Vec3, fov, min, max, ambient float64, key Light) Rig {
	r := Rig{
		Camera:      camera,
		FOV:         fov,
		MinDistance: min,
		MaxDistance: max,
		Ambient:     ambient,
		Key:         key,
	}
	r.Reset()
	return r
}

// Reset puts the camera back where it started.
func (r *Rig) Reset() {
	d := r.Camera.Len()
	r.Distance = clamp(d, r.MinDistance, r.MaxDistance)
	r.Azimuth = math.Atan2(r.Camera.X, r.Camera.Z)
	r.Polar = math.Pi / 2
	if d > 0 {
		r.Polar = clamp(math.Acos(r.Camera.Y/d), polarLimit, math.Pi-polarLimit)
	}
}

// Orbit turns the camera around the origin by the given angles in radians.
func (r *Rig) Orbit(azimuth, polar float64) {
	r.Azimuth = math.Mod(r.Azimuth+azimuth, 2*math.Pi)
	r.Polar = clamp(r.Polar+polar, polarLimit, math.Pi-polarLimit)
}

// Zoom scales the camera distance, staying within the rig's limits. Factors
// below one move in.
func (r *Rig) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	r.Distance = clamp(r.Distance*factor, r.MinDistance, r.MaxDistance)
}

// Eye is where the camera is.
func (r Rig) Eye() geom.Vec3 {
	s := math.Sin(r.Polar)
	return geom.V(
		r.Distance*s*math.Sin(r.Azimuth),
		r.Distance*math.Cos(r.Polar),
		r.Distance*s*math.Cos(r.Azimuth),
	)
}

// Basis is the camera's orthonormal frame: right, up and the forward
// direction it looks along, toward the origin.
func (r Rig) Basis() (right, up, forward geom.Vec3) {
	forward = r.Eye().Scale(-1).Norm()
	right = forward.Cross(geom.V(0, 1, 0)).Norm()
	up = right.Cross(forward)
	return right, up, forward
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
