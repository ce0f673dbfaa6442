// Package host mounts one scene at a time under a camera rig, swaps it when
// the input changes and drives its animation from a clock.
package host

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/classify"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/traits"
)

// TraitInput is what a trait view is asked to show.
type TraitInput struct {
	Selected     []string
	Hovered      string
	LastSelected string
}

// Overlay is the text drawn over a view.
type Overlay struct {
	Title   string         `json:"title"`
	Caption string         `json:"caption,omitempty"`
	Legend  palette.Legend `json:"legend"`
}

// Host owns the mounted scene. It is not safe for concurrent use.
type Host struct {
	Rig Rig

	clock  Clock
	log    *zap.Logger
	limits render.Limits

	key     string
	active  *scene.Scene
	overlay Overlay
	started time.Time
}

// Option configures a Host.
type Option func(*Host)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Host) { h.clock = c }
}

// WithLogger logs mounts, teardowns and fallbacks to l.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithLimits sets the display limits of the sequence views.
func WithLimits(l render.Limits) Option {
	return func(h *Host) { h.limits = l }
}

// New returns a host with nothing mounted.
func New(rig Rig, opts ...Option) *Host {
	h := &Host{
		Rig:    rig,
		clock:  systemClock{},
		log:    zap.NewNop(),
		limits: render.DefaultLimits,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ShowSequence mounts the scene of a sequence view. Showing the same input
// again keeps the mounted scene and its clock.
func (h *Host) ShowSequence(in render.Input) *scene.Scene {
	key := sequenceKey(in)
	if h.active != nil && key == h.key {
		return h.active
	}
	h.teardown()

	sc, err := render.Build(in, h.limits)
	if err != nil {
		h.log.Debug("falling back", zap.String("structure", string(in.Structure)), zap.Error(err))
	}

	s, perr := seq.ParseStructure(string(in.Structure))
	if perr != nil {
		s = seq.DNA
	}
	info := classify.Info(s)
	h.mount(key, sc, Overlay{
		Title:   info.Name,
		Caption: info.Description,
		Legend:  palette.LegendFor(s),
	})
	return sc
}

// ShowTraits mounts the model of the trait a trait view resolves to.
func (h *Host) ShowTraits(in TraitInput) *scene.Scene {
	name := traits.Resolve(in.Selected, in.Hovered, in.LastSelected)
	key := "trait\x00" + name
	if h.active != nil && key == h.key {
		return h.active
	}
	h.teardown()

	if name != "" {
		if _, err := traits.For(name); err != nil {
			h.log.Debug("falling back", zap.String("trait", name), zap.Error(err))
		}
	}

	sc := traits.Scene(name)
	caption := "Drag to rotate"
	if name == "" {
		caption = ""
	}
	h.mount(key, sc, Overlay{Title: sc.Title, Caption: caption})
	return sc
}

// Frame advances the mounted scene to the current time and returns it with
// the seconds elapsed since it was mounted. It returns nil when nothing is
// mounted.
func (h *Host) Frame() (*scene.Scene, float64) {
	if h.active == nil {
		return nil, 0
	}
	elapsed := h.clock.Now().Sub(h.started).Seconds()
	h.active.Advance(elapsed)
	return h.active, elapsed
}

// Scene is the mounted scene.
func (h *Host) Scene() *scene.Scene { return h.active }

// Overlay is the text of the mounted view.
func (h *Host) Overlay() Overlay { return h.overlay }

// Close tears down the mounted scene.
func (h *Host) Close() {
	h.teardown()
	h.key = ""
}

func (h *Host) mount(key string, sc *scene.Scene, o Overlay) {
	h.key, h.active, h.overlay = key, sc, o
	h.started = h.clock.Now()
	h.log.Debug("mounted scene",
		zap.Stringer("id", sc.ID),
		zap.String("title", sc.Title),
		zap.Bool("placeholder", sc.Placeholder),
		zap.Int("units", sc.Units),
	)
}

func (h *Host) teardown() {
	if h.active == nil {
		return
	}
	h.active.Dispose()
	h.log.Debug("disposed scene", zap.Stringer("id", h.active.ID), zap.String("title", h.active.Title))
	h.active = nil
}

func sequenceKey(in render.Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sequence\x00%s\x00%t\x00", in.Structure, in.Loading)
	if in.Sequence == nil {
		b.WriteString("nil")
	} else {
		b.WriteString("=")
		b.WriteString(*in.Sequence)
	}
	return b.String()
}
