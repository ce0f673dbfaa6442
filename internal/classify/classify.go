// Package classify picks the structure archetype a set of traits is drawn as.
package classify

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

// CustomPrefix tags traits that users authored themselves.
const CustomPrefix = "custom:"

// customWeight is what every custom trait adds to the protein score.
const customWeight = 0.5

//go:embed tables.yaml
var defaultTables []byte

// Tables are the trait membership lists for each archetype. Membership is
// exact string equality.
type Tables struct {
	Plasmid []string `yaml:"plasmid"`
	Protein []string `yaml:"protein"`
	RNA     []string `yaml:"rna"`
	DNA     []string `yaml:"dna"`
}

// Scores are the per-archetype totals for one selection.
type Scores struct {
	Plasmid float64 `json:"plasmid"`
	Protein float64 `json:"protein"`
	RNA     float64 `json:"rna"`
	DNA     float64 `json:"dna"`
}

// Of returns the score of one archetype.
func (s Scores) Of(st seq.Structure) float64 {
	switch st {
	case seq.Plasmid:
		return s.Plasmid
	case seq.Protein:
		return s.Protein
	case seq.RNA:
		return s.RNA
	default:
		return s.DNA
	}
}

// Winner is the archetype with the strictly highest score, with ties going
// plasmid > protein > rna > dna. An all-zero selection is dna.
func (s Scores) Winner() seq.Structure {
	best, max := seq.DNA, 0.0
	for _, st := range seq.Structures() {
		if v := s.Of(st); v > max {
			best, max = st, v
		}
	}
	return best
}

// index is a Tables reshaped for lookups.
type index struct {
	plasmid, protein, rna, dna map[string]bool
}

func newIndex(t *Tables) *index {
	set := func(names []string) map[string]bool {
		m := make(map[string]bool, len(names))
		for _, n := range names {
			m[n] = true
		}
		return m
	}
	return &index{
		plasmid: set(t.Plasmid),
		protein: set(t.Protein),
		rna:     set(t.RNA),
		dna:     set(t.DNA),
	}
}

// Classifier scores trait selections against a set of Tables. The tables
// can be swapped while classifications are running.
type Classifier struct {
	idx atomic.Pointer[index]
}

// New returns a Classifier over the given tables.
func New(t *Tables) *Classifier {
	c := &Classifier{}
	c.Swap(t)
	return c
}

// Default returns a Classifier over the built in tables.
func Default() *Classifier {
	t, err := ParseTables(defaultTables)
	if err != nil {
		panic(fmt.Errorf("failed to parse embedded tables: %w", err))
	}
	return New(t)
}

// Swap replaces the tables.
func (c *Classifier) Swap(t *Tables) {
	c.idx.Store(newIndex(t))
}

// Scores tallies a selection. Unknown traits score nothing.
func (c *Classifier) Scores(traits []string) Scores {
	idx := c.idx.Load()

	var s Scores
	for _, trait := range traits {
		name := strings.TrimPrefix(trait, CustomPrefix)
		if idx.plasmid[name] {
			s.Plasmid++
		}
		if idx.protein[name] {
			s.Protein++
		}
		if idx.rna[name] {
			s.RNA++
		}
		if idx.dna[name] {
			s.DNA++
		}
		if strings.HasPrefix(trait, CustomPrefix) {
			s.Protein += customWeight
		}
	}
	return s
}

// Classify returns the archetype a selection should be drawn as.
func (c *Classifier) Classify(traits []string) seq.Structure {
	return c.Scores(traits).Winner()
}

// ParseTables reads tables from YAML.
func ParseTables(data []byte) (*Tables, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	t := &Tables{}
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}
	if len(t.Plasmid)+len(t.Protein)+len(t.RNA)+len(t.DNA) == 0 {
		return nil, fmt.Errorf("tables are empty")
	}
	return t, nil
}

// ReadTables reads tables from a YAML file.
func ReadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables %s: %w", path, err)
	}
	return ParseTables(data)
}
