package geom

import "math"

// Affine is a linear map followed by a translation: p' = M·p + T.
type Affine struct {
	M [3][3]float64
	T Vec3
}

// Identity is the transform that leaves points where they are.
func Identity() Affine {
	return Affine{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Compose builds the transform of a node placed at pos, rotated by the euler
// angles rot and scaled per axis by scale (scale first, translate last).
func Compose(pos, rot, scale Vec3) Affine {
	cols := [3]Vec3{
		V(scale.X, 0, 0).RotateEuler(rot),
		V(0, scale.Y, 0).RotateEuler(rot),
		V(0, 0, scale.Z).RotateEuler(rot),
	}

	var a Affine
	for c, col := range cols {
		a.M[0][c], a.M[1][c], a.M[2][c] = col.X, col.Y, col.Z
	}
	a.T = pos
	return a
}

// Mul returns a∘b, the transform that applies b and then a.
func (a Affine) Mul(b Affine) Affine {
	var out Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = a.M[i][0]*b.M[0][j] + a.M[i][1]*b.M[1][j] + a.M[i][2]*b.M[2][j]
		}
	}
	out.T = a.Apply(b.T)
	return out
}

// Apply transforms a point.
func (a Affine) Apply(p Vec3) Vec3 {
	return a.Direction(p).Add(a.T)
}

// Direction transforms a direction, ignoring the translation.
func (a Affine) Direction(d Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*d.X + a.M[0][1]*d.Y + a.M[0][2]*d.Z,
		Y: a.M[1][0]*d.X + a.M[1][1]*d.Y + a.M[1][2]*d.Z,
		Z: a.M[2][0]*d.X + a.M[2][1]*d.Y + a.M[2][2]*d.Z,
	}
}

// MaxScale is the largest stretch the transform applies along any local axis.
// Rasterising uses it to size primitives that are drawn as discs.
func (a Affine) MaxScale() float64 {
	var max float64
	for c := 0; c < 3; c++ {
		l := math.Sqrt(a.M[0][c]*a.M[0][c] + a.M[1][c]*a.M[1][c] + a.M[2][c]*a.M[2][c])
		if l > max {
			max = l
		}
	}
	return max
}
