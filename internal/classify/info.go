package classify

import "github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"

// Description is the display copy of an archetype.
type Description struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var descriptions = map[seq.Structure]Description{
	seq.DNA:     {"DNA Double Helix", "Classic B-form DNA structure for genetic storage"},
	seq.RNA:     {"RNA Structure", "Single-stranded RNA with secondary hairpin structures"},
	seq.Protein: {"Protein Fold", "3D folded protein with alpha helices and beta sheets"},
	seq.Plasmid: {"Circular Plasmid", "Circular DNA for bacterial genetic engineering"},
}

// Info returns the display copy of an archetype. Unknown archetypes are
// described as dna, which is also what they render as.
func Info(s seq.Structure) Description {
	if d, ok := descriptions[s]; ok {
		return d
	}
	return descriptions[seq.DNA]
}
