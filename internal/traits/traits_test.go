package traits

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

func snapshot(t *testing.T, n *scene.Node) string {
	t.Helper()
	b, err := json.Marshal(n)
	require.NoError(t, err)
	return string(b)
}

func TestModels(t *testing.T) {
	ms := Models()
	assert.Len(t, ms, 50)

	for _, m := range ms {
		t.Run(m.ID(), func(t *testing.T) {
			assert.Greater(t, m.Spin(), 0.0)

			n, update := m.Build()
			require.NotNil(t, n)
			require.NotNil(t, update)
			assert.NotEmpty(t, n.Children)
			assert.GreaterOrEqual(t, n.Count(scene.PointLight), 1, "lit")

			update(0.7)
			early := snapshot(t, n)
			update(1.9)
			assert.NotEqual(t, early, snapshot(t, n), "animates")
		})
	}
}

func TestModels_deterministic(t *testing.T) {
	for _, m := range Models() {
		a, _ := m.Build()
		b, _ := m.Build()
		assert.Equalf(t, snapshot(t, a), snapshot(t, b), "%s", m.ID())
	}
}

func TestTable(t *testing.T) {
	assert.Len(t, Names(), 88)

	used := map[string]bool{}
	for _, name := range Names() {
		m, err := For(name)
		require.NoErrorf(t, err, "%s", name)
		used[m.ID()] = true
	}
	assert.Len(t, used, len(models), "every model is reachable by name")
}

func TestFor(t *testing.T) {
	tests := []struct {
		name    string
		trait   string
		want    string
		wantErr bool
	}{
		{"canonical", "Thermophilic", "thermophilic", false},
		{"alias", "Rapid Cell Division", "fast-growth", false},
		{"legacy name", "Fast Growth", "fast-growth", false},
		{"cross category alias", "Salinity Tolerance", "halophilic", false},
		{"neural alias", "Distributed Neural Network", "mycelium", false},
		{"unknown", "Telepathy", "", true},
		{"names are exact", "thermophilic", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := For(tt.trait)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownTrait))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ID())
		})
	}
}

func TestScene(t *testing.T) {
	s := Scene("Thermophilic")
	require.False(t, s.Placeholder)
	assert.Equal(t, "Thermophilic", s.Title)
	require.NotNil(t, s.Find("core"))

	s.Advance(10)
	assert.InDelta(t, 2.5, s.Root.Rotation.Y, 1e-12)

	alias := Scene("Hibernation")
	alias.Advance(10)
	assert.InDelta(t, 1.5, alias.Root.Rotation.Y, 1e-12)
	assert.NotNil(t, alias.Find("lattice"))
}

func TestScene_fallbacks(t *testing.T) {
	none := Scene("")
	assert.True(t, none.Placeholder)
	assert.Equal(t, SelectPrompt, none.Title)

	unknown := Scene("Telepathy")
	assert.True(t, unknown.Placeholder)
	assert.Contains(t, unknown.Title, "Telepathy")
	assert.NotEqual(t, none.Title, unknown.Title)

	assert.NotPanics(t, func() { unknown.Advance(3) })
	assert.InDelta(t, 3*defaultSpin, unknown.Root.Rotation.Y, 1e-12)
}

func TestScene_dispose(t *testing.T) {
	s := Scene("Electric Organ")
	s.Advance(1)
	spark := s.Find("spark-0")
	require.NotNil(t, spark)
	before := spark.Material.Opacity

	s.Dispose()
	s.Advance(2.3)
	assert.Equal(t, before, spark.Material.Opacity)
	assert.Zero(t, s.Callbacks())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		hovered  string
		last     string
		want     string
	}{
		{"nothing", nil, "", "", ""},
		{"first selected", []string{"Thermophilic", "Ink Production"}, "", "", "Thermophilic"},
		{"last selected wins", []string{"Thermophilic", "Ink Production"}, "", "Ink Production", "Ink Production"},
		{"hover wins", []string{"Thermophilic"}, "Camouflage", "Thermophilic", "Camouflage"},
		{"hover without selection", nil, "Camouflage", "", "Camouflage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.selected, tt.hovered, tt.last))
		})
	}
}
