package palette

import "github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"

// Entry is one swatch of a legend.
type Entry struct {
	Label string `json:"label"`
	Color Token  `json:"color"`
}

// Legend is the key drawn under a structure: a swatch per base for nucleic
// acids, a caption for proteins since their residues are colored by position.
type Legend struct {
	Entries []Entry `json:"entries,omitempty"`
	Caption string  `json:"caption,omitempty"`
}

// LegendFor returns the legend of an archetype.
func LegendFor(s seq.Structure) Legend {
	if s == seq.Protein {
		return Legend{Caption: "Amino acids colored by position"}
	}

	alphabet := s.Alphabet()
	l := Legend{Entries: make([]Entry, 0, len(alphabet))}
	for i := 0; i < len(alphabet); i++ {
		l.Entries = append(l.Entries, Entry{
			Label: string(alphabet[i]),
			Color: ColorFor(alphabet[i], s),
		})
	}
	return l
}
