package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestHelix(t *testing.T) {
	type args struct {
		count   int
		radius  float64
		turns   float64
		spacing float64
		phase   float64
	}
	tests := []struct {
		name string
		args args
		want []Vec3
	}{
		{
			"empty",
			args{0, 0.6, 3, 0.15, 0},
			nil,
		},
		{
			"negative count",
			args{-3, 0.6, 3, 0.15, 0},
			nil,
		},
		{
			"single point",
			args{1, 1, 3, 0.5, 0},
			[]Vec3{{X: 1, Y: -0.25, Z: 0}},
		},
		{
			"quarter turns",
			args{4, 1, 1, 1, 0},
			[]Vec3{
				{X: 1, Y: -2, Z: 0},
				{X: 0, Y: -1, Z: 1},
				{X: -1, Y: 0, Z: 0},
				{X: 0, Y: 1, Z: -1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Helix(tt.args.count, tt.args.radius, tt.args.turns, tt.args.spacing, tt.args.phase)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Helix() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHelix_deterministic(t *testing.T) {
	first := Helix(4, 0.6, 8, 0.25, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Helix(4, 0.6, 8, 0.25, 0))
	}
}

func TestHelix_antiparallel(t *testing.T) {
	for _, n := range []int{1, 2, 7, 60} {
		a := Helix(n, 0.6, 3, 0.15, 0)
		b := Helix(n, 0.6, 3, 0.15, math.Pi)
		if len(a) != len(b) {
			t.Fatalf("strand lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			want := Vec3{X: -a[i].X, Y: a[i].Y, Z: -a[i].Z}
			if diff := cmp.Diff(want, b[i], approx); diff != "" {
				t.Errorf("n=%d i=%d not reflected through the axis:\n%s", n, i, diff)
			}
		}
	}
}

func TestWinding(t *testing.T) {
	assert.Empty(t, Winding(0, DefaultWinding))
	assert.Len(t, Winding(1, DefaultWinding), 1)

	pts := Winding(80, DefaultWinding)
	assert.Len(t, pts, 80)

	// first point sits on the unbulged radius at the bottom of the path
	if diff := cmp.Diff(Vec3{X: 0, Y: -2, Z: 0.8}, pts[0], approx); diff != "" {
		t.Errorf("Winding()[0] mismatch (-want +got):\n%s", diff)
	}

	// a quarter of the way along, sin(t·π·4) peaks and the path bulges out
	assert.InDelta(t, DefaultWinding.Radius+DefaultWinding.Bulge, math.Hypot(pts[10].X, pts[10].Z), 1e-9)

	// and three quarters along it pinches in
	assert.InDelta(t, DefaultWinding.Radius-DefaultWinding.Bulge, math.Hypot(pts[30].X, pts[30].Z), 1e-9)
}

func TestFold(t *testing.T) {
	assert.Nil(t, Fold(0, DefaultFold))

	a := Fold(40, DefaultFold)
	b := Fold(40, DefaultFold)
	assert.Len(t, a, 40)
	assert.Equal(t, a, b)

	if diff := cmp.Diff(Vec3{X: 0, Y: -1.2, Z: 1.0}, a[0], approx); diff != "" {
		t.Errorf("Fold()[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestRing(t *testing.T) {
	assert.Nil(t, Ring(0, 1.2, 0))
	assert.Len(t, Ring(1, 1.2, 0), 1)

	for _, n := range []int{3, 36, 100} {
		pts := Ring(n, 1.2, 0.5)
		step := pts[0].Dist(pts[1])
		closing := pts[n-1].Dist(pts[0])
		assert.InDeltaf(t, step, closing, 1e-9, "ring of %d doesn't close evenly", n)

		for _, p := range pts {
			assert.InDelta(t, 1.2, math.Hypot(p.X, p.Z), 1e-9)
			assert.Equal(t, 0.5, p.Y)
		}
	}
}

func TestArc(t *testing.T) {
	assert.Nil(t, Arc(0, 1, 0, math.Pi))
	assert.Len(t, Arc(1, 1, 0, math.Pi), 1)

	pts := Arc(3, 2, 0, math.Pi)
	want := []Vec3{{X: 2}, {Z: 2}, {X: -2}}
	if diff := cmp.Diff(want, pts, approx); diff != "" {
		t.Errorf("Arc() mismatch (-want +got):\n%s", diff)
	}
}

func TestAt(t *testing.T) {
	pts := []Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}

	tests := []struct {
		name string
		t    float64
		want Vec3
		ok   bool
	}{
		{"start", 0, Vec3{X: 0}, true},
		{"quarter", 0.25, Vec3{X: 1}, true},
		{"half", 0.5, Vec3{X: 2}, true},
		{"end clamps", 1, Vec3{X: 3}, true},
		{"negative clamps", -1, Vec3{X: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := At(pts, tt.t)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := At(nil, 0.5)
	assert.False(t, ok)
}

func TestScatter(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	pts := Scatter(r, 50, V(4, 2, 1))
	assert.Len(t, pts, 50)
	for _, p := range pts {
		assert.LessOrEqual(t, math.Abs(p.X), 2.0)
		assert.LessOrEqual(t, math.Abs(p.Y), 1.0)
		assert.LessOrEqual(t, math.Abs(p.Z), 0.5)
	}
}
