// Package seq is for the symbolic sequences handed to the visualiser: their
// archetype, alphabets, complements and the bounded prefix that gets displayed.
package seq

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrMalformedSequence is for input that isn't a string over any alphabet at all
	ErrMalformedSequence = errors.New("malformed sequence")

	// ErrUnknownStructure is for a structure type tag outside dna/rna/protein/plasmid
	ErrUnknownStructure = errors.New("unknown structure type")
)

// Structure is the molecular archetype that decides which renderer and palette apply.
type Structure string

const (
	// DNA is a linear double helix
	DNA Structure = "dna"

	// RNA is a single strand with hairpin loops
	RNA Structure = "rna"

	// Protein is a folded chain of residues
	Protein Structure = "protein"

	// Plasmid is circular double stranded DNA
	Plasmid Structure = "plasmid"
)

// Structures lists every archetype in tie-break priority order (plasmid first).
func Structures() []Structure {
	return []Structure{Plasmid, Protein, RNA, DNA}
}

// String returns the lower case tag.
func (s Structure) String() string {
	return string(s)
}

// Nucleic reports whether the archetype is built from nucleotides.
func (s Structure) Nucleic() bool {
	return s != Protein
}

// Alphabet returns the valid units for the archetype.
func (s Structure) Alphabet() string {
	switch s {
	case RNA:
		return RNAAlphabet
	case Protein:
		return ProteinAlphabet
	default:
		return DNAAlphabet
	}
}

// ParseStructure turns a tag (case insensitive) into a Structure.
func ParseStructure(tag string) (Structure, error) {
	switch Structure(strings.ToLower(strings.TrimSpace(tag))) {
	case DNA:
		return DNA, nil
	case RNA:
		return RNA, nil
	case Protein:
		return Protein, nil
	case Plasmid:
		return Plasmid, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStructure, tag)
}

const (
	// DNAAlphabet is the alphabet of dna and plasmid sequences
	DNAAlphabet = "ATGC"

	// RNAAlphabet is the alphabet of rna sequences
	RNAAlphabet = "AUGC"

	// ProteinAlphabet is the 20 single letter amino acid codes
	ProteinAlphabet = "ACDEFGHIKLMNPQRSTVWY"
)

var complements = map[Structure]map[byte]byte{
	DNA:     {'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'},
	Plasmid: {'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'},
	RNA:     {'A': 'U', 'U': 'A', 'G': 'C', 'C': 'G'},
}

// Complement returns the Watson-Crick partner of a base. A base outside the
// archetype's alphabet means the sequence was corrupted upstream.
func Complement(base byte, s Structure) (byte, error) {
	table, ok := complements[s]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no complementary strand", ErrMalformedSequence, s)
	}

	c, ok := table[upper(base)]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s base", ErrMalformedSequence, base, s)
	}
	return c, nil
}

// Normalize upper-cases a sequence and drops the whitespace and digits that
// come along with FASTA and GenBank line layouts.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate checks that a normalized sequence is character data at all. Letters
// outside an archetype's alphabet pass: they're colored with the muted default.
func Validate(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrMalformedSequence)
	}

	for i, r := range s {
		if (r >= 'A' && r <= 'Z') || r == '*' || r == '-' {
			continue
		}
		return fmt.Errorf("%w: unexpected %q at %d", ErrMalformedSequence, r, i)
	}
	return nil
}

// Truncate returns the displayed prefix, at most limit units long.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// ToRNA transcribes thymine to uracil.
func ToRNA(s string) string {
	return strings.ReplaceAll(s, "T", "U")
}

// IsNucleotide reports whether every unit is one of A, T, U, G, C.
func IsNucleotide(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'T', 'U', 'G', 'C':
		default:
			return false
		}
	}
	return true
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
