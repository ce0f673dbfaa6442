package scene

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
)

func testScene() *Scene {
	inner := NewSphere(0.1, Standard(palette.Adenine)).Named("bead").At(geom.V(1, 0, 0))
	arm := NewGroup(inner).Named("arm").At(geom.V(0, 2, 0))
	return New("test", NewGroup(arm, NewTorus(1, 0.1, Glow(palette.Thymine, 0.5)).Named("ring")))
}

func TestScene_Advance(t *testing.T) {
	s := testScene()
	arm := s.Find("arm")

	var seen []float64
	s.OnFrame(Spin(arm, 0.5), func(elapsed float64) { seen = append(seen, elapsed) })
	s.OnFrame(nil)
	assert.Equal(t, 2, s.Callbacks())

	s.Advance(1)
	s.Advance(4)
	assert.Equal(t, 2.0, arm.Rotation.Y)

	s.Advance(3)
	assert.Equal(t, []float64{1, 4, 4}, seen, "time never runs backwards")
	assert.Equal(t, 4.0, s.Elapsed())
}

func TestScene_Dispose(t *testing.T) {
	s := testScene()
	bead := s.Find("bead")

	calls := 0
	s.Bind(bead, func(n *Node, elapsed float64) {
		calls++
		n.Position.Y = elapsed
	})
	s.Advance(1)
	require.Equal(t, 1, calls)

	s.Dispose()
	s.Dispose()
	assert.True(t, s.Disposed())
	assert.Zero(t, s.Callbacks())

	s.Root.Walk(func(n *Node, _ geom.Affine) bool {
		assert.Truef(t, n.Disposed(), "%q survived dispose", n.Name)
		return true
	})

	assert.NotPanics(t, func() { s.Advance(2) })
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, bead.Position.Y)

	s.OnFrame(func(float64) { calls++ })
	s.Advance(3)
	assert.Equal(t, 1, calls, "callbacks registered after dispose never run")
}

func TestScene_bindSkipsDisposedNodes(t *testing.T) {
	s := testScene()
	other := testScene()
	foreign := other.Find("bead")

	calls := 0
	s.Bind(foreign, func(*Node, float64) { calls++ })
	s.Advance(1)
	other.Dispose()
	s.Advance(2)
	assert.Equal(t, 1, calls)
}

func TestNode_Walk(t *testing.T) {
	s := testScene()
	s.Find("arm").Rotation = geom.V(0, 0, math.Pi/2)

	var beadAt geom.Vec3
	var names []string
	s.Walk(func(n *Node, world geom.Affine) bool {
		names = append(names, n.Name)
		if n.Name == "bead" {
			beadAt = world.Apply(geom.Vec3{})
		}
		return n.Name != "ring"
	})

	assert.Equal(t, []string{"", "arm", "bead", "ring"}, names)
	if diff := cmp.Diff(geom.V(0, 3, 0), beadAt, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("bead world position (-want +got):\n%s", diff)
	}
}

func TestNode_Find(t *testing.T) {
	s := testScene()
	assert.Equal(t, Sphere, s.Find("bead").Kind)
	assert.Equal(t, Torus, s.Find("ring").Kind)
	assert.Nil(t, s.Find("missing"))
}

func TestNode_Count(t *testing.T) {
	s := testScene()
	assert.Equal(t, 2, s.Root.Count(Group))
	assert.Equal(t, 1, s.Root.Count(Sphere))
	assert.Equal(t, 0, s.Root.Count(Tube))
}

func TestNode_builders(t *testing.T) {
	m := Standard(palette.Guanine)
	tests := []struct {
		name string
		n    *Node
		want Kind
	}{
		{"cylinder", NewCylinder(0.1, 0.2, 1, m), Cylinder},
		{"cone", NewCone(0.1, 1, m), Cone},
		{"arc", NewArc(1, 0.1, math.Pi, m), Torus},
		{"box", NewBox(geom.V(1, 2, 3), m), Box},
		{"icosahedron", NewIcosahedron(1, m), Icosahedron},
		{"octahedron", NewOctahedron(1, m), Octahedron},
		{"capsule", NewCapsule(0.1, 0.5, m), Capsule},
		{"tube", NewTube([]geom.Vec3{{}, {X: 1}}, 0.1, false, m), Tube},
		{"line", NewLine([]geom.Vec3{{}, {X: 1}}, m), Line},
		{"light", NewPointLight(palette.White, 1), PointLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.Kind)
			assert.Equal(t, geom.Splat(1), tt.n.Scale)
		})
	}

	c := NewCylinder(0.1, 0.2, 1, m)
	assert.Equal(t, 0.1, c.RadiusTop)
	assert.Equal(t, 0.2, c.Radius)

	n := NewSphere(1, m).At(geom.V(1, 2, 3)).Rotated(geom.V(0, 1, 0)).ScaledBy(geom.V(1, 2, 1))
	assert.Equal(t, geom.V(1, 2, 3), n.Position)
	assert.Equal(t, geom.V(1, 2, 1), n.Scale)
	assert.Equal(t, geom.Splat(3), n.Scaled(3).Scale)

	assert.Len(t, NewGroup(nil, n, nil).Children, 1)
}

func TestMaterial(t *testing.T) {
	m := Glow(palette.Cytosine, 0.8)
	assert.Equal(t, palette.Cytosine, m.Emissive)
	assert.Equal(t, 1.0, m.Alpha())

	f := m.Faded(0.4)
	assert.True(t, f.Transparent)
	assert.Equal(t, 0.4, f.Alpha())
	assert.Equal(t, 1.0, m.Alpha(), "Faded doesn't mutate the receiver")

	metal := Standard(palette.White).Metal(0.8, 0.2)
	assert.Equal(t, 0.8, metal.Metalness)
	assert.True(t, Wire(palette.White).Wireframe)
}

func TestFloat(t *testing.T) {
	child := NewSphere(1, Standard(palette.White))
	g, update := Float(child, 2, 0.5, 1)
	require.Same(t, child, g.Children[0])

	update(0)
	assert.InDelta(t, 0.5/8, g.Rotation.X, 1e-12)
	assert.InDelta(t, 0, g.Position.Y, 1e-12)

	update(math.Pi)
	assert.InDelta(t, 0.1, g.Position.Y, 1e-12)
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, Pulse(0, 1, 0, 1), 1e-12)
	assert.InDelta(t, 1, Pulse(math.Pi/2, 1, 0, 1), 1e-12)
	assert.InDelta(t, 2, Pulse(math.Pi/2, -1, 2, 4), 1e-12)
}

func TestScene_json(t *testing.T) {
	s := testScene()
	s.Units = 3
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "test", back["title"])
	assert.Equal(t, float64(3), back["units"])
	assert.Equal(t, s.ID.String(), back["id"])
}
