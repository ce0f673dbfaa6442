// Package traits is the library of animated trait models: one small scene per
// canonical trait model and the table of trait names that resolve to them.
package traits

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/geom"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
)

// ErrUnknownTrait is returned for a trait name with no model.
var ErrUnknownTrait = errors.New("no model for trait")

const (
	// SelectPrompt titles the scene shown when no trait is selected
	SelectPrompt = "Select a trait to see 3D visualization"

	// NoModel titles the scene shown for a trait without a model
	NoModel = "No 3D model available for %s"

	defaultSpin = 0.2
)

// Model is one canonical trait model.
type Model interface {
	// ID names the model. Several trait names may share one.
	ID() string

	// Spin is the angular velocity of the model about Y, in radians per second.
	Spin() float64

	// Build returns a fresh node tree and the callback animating it.
	Build() (*scene.Node, scene.UpdateFunc)
}

type model struct {
	id    string
	spin  float64
	build func(k *kit) *scene.Node
}

func (m model) ID() string    { return m.id }
func (m model) Spin() float64 { return m.spin }

func (m model) Build() (*scene.Node, scene.UpdateFunc) {
	k := newKit(m.id)
	n := m.build(k)
	return n, k.update()
}

// models is keyed by model ID.
var models = map[string]model{}

func register(id string, spin float64, build func(k *kit) *scene.Node) {
	if spin == 0 {
		spin = defaultSpin
	}
	models[id] = model{id: id, spin: spin, build: build}
}

// For returns the model of a trait name.
func For(name string) (Model, error) {
	id, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrait, name)
	}
	m, ok := models[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (model %s)", ErrUnknownTrait, name, id)
	}
	return m, nil
}

// Names is every trait name with a model, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Models is every canonical model, sorted by ID.
func Models() []Model {
	out := make([]Model, 0, len(models))
	for _, m := range models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Scene builds the scene of a trait. The model spins continuously about Y.
// An empty name gives the "select a trait" placeholder and a name without a
// model gives the "no model" placeholder.
func Scene(name string) *scene.Scene {
	if name == "" {
		return Placeholder(SelectPrompt)
	}
	m, err := For(name)
	if err != nil {
		return Placeholder(fmt.Sprintf(NoModel, name))
	}

	body, update := m.Build()
	root := scene.NewGroup(body)

	sc := scene.New(name, root)
	sc.OnFrame(scene.Spin(root, m.Spin()), update)
	return sc
}

// Placeholder is a slowly turning wireframe titled with a message for the
// viewer.
func Placeholder(title string) *scene.Scene {
	wire := scene.Wire(palette.Muted).Faded(0.3)
	root := scene.NewGroup(
		scene.NewIcosahedron(0.8, wire).Named("sketch"),
		scene.NewTorus(1.1, 0.01, wire).Rotated(geom.V(math.Pi/2, 0, 0)).Named("ring"),
	)

	sc := scene.New(title, root)
	sc.Placeholder = true
	sc.OnFrame(scene.Spin(root, defaultSpin))
	return sc
}

// Resolve picks the trait to show: the hovered trait, else the most recently
// selected one, else the first selected. "" means there is nothing to show.
func Resolve(selected []string, hovered, last string) string {
	switch {
	case hovered != "":
		return hovered
	case last != "":
		return last
	case len(selected) > 0:
		return selected[0]
	default:
		return ""
	}
}
