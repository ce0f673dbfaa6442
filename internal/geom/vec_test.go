package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestVec3_arithmetic(t *testing.T) {
	a, b := V(1, 2, 3), V(4, 5, 6)

	assert.Equal(t, V(5, 7, 9), a.Add(b))
	assert.Equal(t, V(-3, -3, -3), a.Sub(b))
	assert.Equal(t, V(2, 4, 6), a.Scale(2))
	assert.Equal(t, V(4, 10, 18), a.Mul(b))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, V(-3, 6, -3), a.Cross(b))
	assert.Equal(t, 5.0, V(3, 4, 0).Len())
	assert.Equal(t, V(0, 0, 0), V(0, 0, 0).Norm())
	assert.InDelta(t, 1.0, a.Norm().Len(), 1e-12)
	assert.Equal(t, V(2.5, 3.5, 4.5), a.Lerp(b, 0.5))
	assert.Equal(t, "(1.000,2.000,3.000)", a.String())
}

func TestVec3_rotate(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x axis spins y into z", V(0, 1, 0).RotateX(math.Pi / 2), V(0, 0, 1)},
		{"y axis spins z into x", V(0, 0, 1).RotateY(math.Pi / 2), V(1, 0, 0)},
		{"z axis spins x into y", V(1, 0, 0).RotateZ(math.Pi / 2), V(0, 1, 0)},
		{"euler zero is identity", V(1, 2, 3).RotateEuler(Vec3{}), V(1, 2, 3)},
		{"euler rotates about x last", V(0, 1, 0).RotateEuler(V(math.Pi/2, math.Pi/2, 0)), V(0, 0, 1)},
		{"euler rotates about z first", V(1, 0, 0).RotateEuler(V(0, math.Pi/2, math.Pi/2)), V(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approx); diff != "" {
				t.Errorf("rotation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
