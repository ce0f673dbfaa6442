package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    Structure
		wantErr bool
	}{
		{"dna", "dna", DNA, false},
		{"mixed case rna", " RNA ", RNA, false},
		{"protein", "Protein", Protein, false},
		{"plasmid", "plasmid", Plasmid, false},
		{"unknown", "hexose", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStructure(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStructure)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplement_involution(t *testing.T) {
	for _, s := range []Structure{DNA, RNA, Plasmid} {
		for i := 0; i < len(s.Alphabet()); i++ {
			b := s.Alphabet()[i]

			c, err := Complement(b, s)
			require.NoError(t, err)

			back, err := Complement(c, s)
			require.NoError(t, err)
			assert.Equalf(t, b, back, "%s: complement(complement(%c))", s, b)
		}
	}
}

func TestComplement(t *testing.T) {
	type args struct {
		base byte
		s    Structure
	}
	tests := []struct {
		name    string
		args    args
		want    byte
		wantErr bool
	}{
		{"A pairs with T", args{'A', DNA}, 'T', false},
		{"lower case g", args{'g', DNA}, 'C', false},
		{"A pairs with U in rna", args{'A', RNA}, 'U', false},
		{"plasmid uses dna pairing", args{'C', Plasmid}, 'G', false},
		{"T isn't an rna base", args{'T', RNA}, 0, true},
		{"N is corrupt", args{'N', DNA}, 0, true},
		{"proteins have no complement", args{'A', Protein}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Complement(tt.args.base, tt.args.s)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedSequence) {
					t.Errorf("Complement() error = %v, want ErrMalformedSequence", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Complement() = %c, want %c", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		wantErr bool
	}{
		{"dna", "ATGC", false},
		{"unknown letters are still characters", "ATGXNB", false},
		{"stops and gaps", "MKV*--", false},
		{"empty", "", true},
		{"binary", "AT\x00\x01", true},
		{"lower case isn't normalized", "atgc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.seq)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ATGCAA", Normalize(" at gc\n1 aa\t"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		limit int
		want  string
	}{
		{"longer than limit", "ATGCATGCAA", 4, "ATGC"},
		{"shorter than limit", "ATG", 40, "ATG"},
		{"zero limit", "ATG", 0, ""},
		{"negative limit", "ATG", -3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.seq, tt.limit))
		})
	}
}

func TestIsNucleotide(t *testing.T) {
	assert.True(t, IsNucleotide("ATGCU"))
	assert.False(t, IsNucleotide("MKVL"))
	assert.False(t, IsNucleotide(""))
}

func TestStructures_priority(t *testing.T) {
	assert.Equal(t, []Structure{Plasmid, Protein, RNA, DNA}, Structures())
}
