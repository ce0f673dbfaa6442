// Package render builds animated scenes of sequences, one renderer per
// structure archetype.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/classify"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

// Renderer builds the scene of at most limit units of a sequence.
type Renderer func(sequence string, limit int) *scene.Scene

// Limits are the display limits of each archetype. Only this many units of a
// sequence are ever turned into geometry.
type Limits struct {
	DNA     int
	RNA     int
	Protein int
	Plasmid int
}

// DefaultLimits keep every scene to roughly a hundred primitives.
var DefaultLimits = Limits{DNA: 60, RNA: 80, Protein: 40, Plasmid: 100}

// For returns the limit of one archetype.
func (l Limits) For(s seq.Structure) int {
	switch s {
	case seq.RNA:
		return l.RNA
	case seq.Protein:
		return l.Protein
	case seq.Plasmid:
		return l.Plasmid
	default:
		return l.DNA
	}
}

var renderers = map[seq.Structure]Renderer{
	seq.DNA:     DNA,
	seq.RNA:     RNA,
	seq.Protein: Protein,
	seq.Plasmid: Plasmid,
}

// For returns the renderer of an archetype, DNA for anything unknown.
func For(s seq.Structure) Renderer {
	if r, ok := renderers[s]; ok {
		return r
	}
	return DNA
}

// Input is what a sequence view is asked to show.
type Input struct {
	// Sequence is nil until one has been generated
	Sequence  *string
	Structure seq.Structure
	Loading   bool
}

// Build turns an input into a scene. The scene is always usable: when there
// is nothing to draw, or the sequence isn't character data, it is the
// archetype's placeholder and err says why.
func Build(in Input, lim Limits) (*scene.Scene, error) {
	s, err := seq.ParseStructure(string(in.Structure))
	if err != nil {
		s = seq.DNA
	}

	switch {
	case in.Loading:
		return Placeholder(s), nil
	case in.Sequence == nil:
		return Placeholder(s), nil
	}

	units := seq.Normalize(*in.Sequence)
	if verr := seq.Validate(units); verr != nil {
		return Placeholder(s), verr
	}

	return For(s)(units, lim.For(s)), err
}

// prepare truncates and upper-cases the displayed units.
func prepare(sequence string, limit int) string {
	return strings.ToUpper(seq.Truncate(sequence, limit))
}

func newScene(s seq.Structure, units int, root *scene.Node) *scene.Scene {
	sc := scene.New(classify.Info(s).Name, root)
	sc.Units = units
	return sc
}

const halfPi = math.Pi / 2

func named(kind string, i int) string {
	return fmt.Sprintf("%s-%d", kind, i)
}

// radial is the rotation that lays a Y-aligned cylinder along the
// horizontal direction at angle a, measured from +X toward +Z.
func radial(a float64) geom.Vec3 {
	return geom.V(0, math.Pi-a, math.Pi/2)
}

// angleOf is the horizontal angle of p around the Y axis.
func angleOf(p geom.Vec3) float64 {
	return math.Atan2(p.Z, p.X)
}
