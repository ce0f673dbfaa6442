package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Categories, 10)
	assert.Len(t, c.Traits(), 73)

	for _, tr := range c.Traits() {
		assert.NotEmptyf(t, tr.Gene, "%s", tr.Name)
		assert.NotEmptyf(t, tr.Category, "%s", tr.Name)
		_, err := For(tr.Name)
		assert.NoErrorf(t, err, "%s has a model", tr.Name)
	}

	th, ok := c.Trait("Thermophilic")
	require.True(t, ok)
	assert.Equal(t, "HSP70", th.Gene)
	assert.Equal(t, "Thermus aquaticus", th.Source)
	assert.Equal(t, "extremophile", th.Category)
	assert.Len(t, th.References, 3)
}

func names(ts []Trait) []string {
	var out []string
	for _, t := range ts {
		out = append(out, t.Name)
	}
	return out
}

func TestCatalog_Find(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact", "Thermophilic", []string{"Thermophilic"}},
		{"typo", "Thermophylic", []string{"Thermophilic"}},
		{"dropped letter", "Echolocaton", []string{"Echolocation"}},
		{"many containing", "Oxidation", []string{"Sulfur Oxidation", "Iron Oxidation", "Methane Oxidation", "Ammonia Oxidation", "Arsenite Oxidation"}},
		{"case insensitive", "spider", []string{"Spider Silk"}},
		{"blank", "  ", nil},
		{"nothing close", "zzzzzzzzzzzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(c.Find(tt.query))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestCatalog_Card(t *testing.T) {
	c := DefaultCatalog()

	card, err := c.Card("Spider Silk")
	require.NoError(t, err)
	assert.Contains(t, card, "# Spider Silk")
	assert.Contains(t, card, "silk-production")
	assert.Contains(t, card, "## References")

	_, err = c.Card("Telepathy")
	assert.Error(t, err)
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", "categories:\n  - id: x\n    name: X\n    description: d\n    traits:\n      - name: A\n        gene: g\n        description: d\n", false},
		{"empty", "", true},
		{"no categories", "categories: []\n", true},
		{"unknown field", "categories:\n  - id: x\n    colour: red\n", true},
		{"duplicate trait", "categories:\n  - id: x\n    traits:\n      - name: A\n      - name: A\n", true},
		{"unnamed trait", "categories:\n  - id: x\n    traits:\n      - gene: g\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_ld(t *testing.T) {
	assert.Equal(t, 0, ld("silk", "SILK", true))
	assert.Equal(t, 4, ld("silk", "SILK", false))
	assert.Equal(t, 1, ld("Echolocaton", "Echolocation", true))
}
