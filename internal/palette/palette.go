// Package palette maps sequence units to display colors.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

// Token is a "#rrggbb" display color.
type Token string

const (
	Adenine  Token = "#00ffa3"
	Thymine  Token = "#ff6b6b"
	Guanine  Token = "#ffd93d"
	Cytosine Token = "#6bcfff"
	Uracil   Token = "#ff9f43"

	Hydrophobic Token = "#f59e0b"
	Polar       Token = "#06b6d4"
	Charged     Token = "#f43f5e"
	Special     Token = "#8b5cf6"

	// Muted is what any unit outside its archetype's alphabet is drawn in
	Muted Token = "#8888a0"

	White Token = "#ffffff"
)

var (
	nucleotides = map[byte]Token{
		'A': Adenine,
		'T': Thymine,
		'G': Guanine,
		'C': Cytosine,
	}

	ribonucleotides = map[byte]Token{
		'A': Adenine,
		'U': Uracil,
		'G': Guanine,
		'C': Cytosine,
	}

	aminoAcids = map[byte]Token{}

	// residues is the per-position palette the protein fold cycles through
	residues = []Token{
		"#e91e63", "#9c27b0", "#673ab7", "#3f51b5", "#2196f3",
		"#03a9f4", "#00bcd4", "#009688", "#4caf50", "#8bc34a",
		"#cddc39", "#ffeb3b", "#ffc107", "#ff9800", "#ff5722",
	}
)

func init() {
	for group, t := range map[string]Token{
		"AILMFWVP": Hydrophobic,
		"STYCNQ":   Polar,
		"DEKRH":    Charged,
		"G":        Special,
	} {
		for i := 0; i < len(group); i++ {
			aminoAcids[group[i]] = t
		}
	}
}

// ColorFor returns the display color of one sequence unit. Case is ignored.
// Units that don't belong to the archetype's alphabet get Muted, never an error.
func ColorFor(unit byte, s seq.Structure) Token {
	if 'a' <= unit && unit <= 'z' {
		unit -= 'a' - 'A'
	}

	var table map[byte]Token
	switch s {
	case seq.DNA, seq.Plasmid:
		table = nucleotides
	case seq.RNA:
		table = ribonucleotides
	case seq.Protein:
		table = aminoAcids
	}

	if t, ok := table[unit]; ok {
		return t
	}
	return Muted
}

// Residue returns the decorative color of the i'th residue in a fold.
func Residue(i int) Token {
	if i < 0 {
		i = -i
	}
	return residues[i%len(residues)]
}

// Residues is the number of colors Residue cycles through.
func Residues() int { return len(residues) }

// Color parses the token. Unparseable tokens come back as Muted.
func (t Token) Color() colorful.Color {
	c, err := colorful.Hex(string(t))
	if err != nil {
		c, _ = colorful.Hex(string(Muted))
	}
	return c
}

// RGBA is the opaque 8-bit form of the token.
func (t Token) RGBA() color.RGBA {
	r, g, b := t.Color().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Valid reports whether the token parses as a hex color.
func (t Token) Valid() bool {
	_, err := colorful.Hex(string(t))
	return err == nil
}

func (t Token) String() string { return string(t) }

// Blend mixes a toward b by t (0..1) in Lab space.
func Blend(a, b Token, t float64) Token {
	return Token(a.Color().BlendLab(b.Color(), t).Clamped().Hex())
}

// Hue rotates the token's hue by degrees, keeping chroma and lightness.
func (t Token) Hue(degrees float64) Token {
	h, c, l := t.Color().Hcl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return Token(colorful.Hcl(h, c, l).Clamped().Hex())
}
