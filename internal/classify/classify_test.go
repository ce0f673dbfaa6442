package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		traits []string
		want   seq.Structure
	}{
		{"nothing selected", nil, seq.DNA},
		{"empty selection", []string{}, seq.DNA},
		{"plasmid trait", []string{"Thermophilic"}, seq.Plasmid},
		{"protein trait", []string{"Spider Silk"}, seq.Protein},
		{"rna trait", []string{"Metamorphosis"}, seq.RNA},
		{"dna only trait", []string{"Pressure Adaptation"}, seq.DNA},
		{"unknown traits score nothing", []string{"Telepathy", "Laser Eyes"}, seq.DNA},
		{"membership is exact", []string{"thermophilic", "Spider"}, seq.DNA},
		{"plasmid beats protein on a tie", []string{"Spider Silk", "Thermophilic"}, seq.Plasmid},
		{"protein beats rna on a tie", []string{"Metamorphosis", "Exoskeleton"}, seq.Protein},
		{"rna beats dna on a tie", []string{"Pressure Adaptation", "Camouflage"}, seq.RNA},
		{"salinity counts for protein and dna", []string{"Salinity Tolerance"}, seq.Protein},
		{"majority wins", []string{"Camouflage", "Compound Eyes", "Thermophilic"}, seq.RNA},
		{"custom traits lean protein", []string{"custom:Glowing Fur"}, seq.Protein},
		{"custom prefix is stripped before lookup", []string{"custom:Thermophilic"}, seq.Plasmid},
		{"two customs outweigh one rna", []string{"custom:a", "custom:b", "Camouflage"}, seq.Protein},
		{"one custom loses to one rna", []string{"custom:a", "Camouflage"}, seq.RNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.traits); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScores(t *testing.T) {
	c := Default()

	got := c.Scores([]string{"custom:Thermophilic", "Salinity Tolerance", "Camouflage", "Nope"})
	assert.Equal(t, Scores{Plasmid: 1, Protein: 1.5, RNA: 1, DNA: 1}, got)
	assert.Equal(t, seq.Protein, got.Winner())
}

func TestScores_Winner(t *testing.T) {
	tests := []struct {
		name string
		s    Scores
		want seq.Structure
	}{
		{"zero", Scores{}, seq.DNA},
		{"all tied", Scores{1, 1, 1, 1}, seq.Plasmid},
		{"dna alone", Scores{DNA: 2}, seq.DNA},
		{"protein half point", Scores{Protein: 0.5}, seq.Protein},
		{"rna and dna tied", Scores{RNA: 3, DNA: 3}, seq.RNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Winner())
		})
	}
}

func TestDefaultTables(t *testing.T) {
	tables, err := ParseTables(defaultTables)
	require.NoError(t, err)

	assert.Len(t, tables.Plasmid, 23)
	assert.Len(t, tables.Protein, 26)
	assert.Len(t, tables.RNA, 24)
	assert.Equal(t, []string{"Salinity Tolerance", "Pressure Adaptation"}, tables.DNA)
}

func TestParseTables(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid", "plasmid: [a]\nrna: [b]\n", false},
		{"empty document", "", true},
		{"empty lists", "plasmid: []\n", true},
		{"unknown archetype", "lipid: [a]\n", true},
		{"not yaml", "plasmid: [a\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTables() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClassifier_Swap(t *testing.T) {
	c := New(&Tables{RNA: []string{"Thermophilic"}})
	assert.Equal(t, seq.RNA, c.Classify([]string{"Thermophilic"}))

	c.Swap(&Tables{Protein: []string{"Thermophilic"}})
	assert.Equal(t, seq.Protein, c.Classify([]string{"Thermophilic"}))
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "Circular Plasmid", Info(seq.Plasmid).Name)
	assert.Equal(t, "Protein Fold", Info(seq.Protein).Name)
	assert.Equal(t, Info(seq.DNA), Info(seq.Structure("lipid")))
	for _, s := range seq.Structures() {
		assert.NotEmpty(t, Info(s).Description)
	}
}
