package host

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/scene"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/traits"
)

func ptr(s string) *string { return &s }

func newTestHost() (*Host, *StepClock, *observer.ObservedLogs) {
	clock := NewStepClock(time.Unix(1700000000, 0))
	core, logs := observer.New(zap.DebugLevel)
	return New(SequenceRig(), WithClock(clock), WithLogger(zap.New(core))), clock, logs
}

func TestHost_ShowSequence_memoised(t *testing.T) {
	h, clock, _ := newTestHost()

	in := render.Input{Sequence: ptr("ATGCATGC"), Structure: seq.DNA}
	first := h.ShowSequence(in)
	clock.Step(2 * time.Second)

	same := h.ShowSequence(render.Input{Sequence: ptr("ATGCATGC"), Structure: seq.DNA})
	assert.Same(t, first, same)
	assert.False(t, first.Disposed())

	_, elapsed := h.Frame()
	assert.InDelta(t, 2, elapsed, 1e-9, "clock keeps running across equal inputs")

	other := h.ShowSequence(render.Input{Sequence: ptr("ATGCATGC"), Structure: seq.RNA})
	assert.NotSame(t, first, other)
	assert.True(t, first.Disposed())
	assert.Equal(t, "RNA Structure", h.Overlay().Title)

	_, elapsed = h.Frame()
	assert.Zero(t, elapsed, "a new scene starts its own clock")
}

func TestHost_ShowSequence_fallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   render.Input
	}{
		{"no sequence", render.Input{Structure: seq.Protein}},
		{"loading", render.Input{Sequence: ptr("ATGC"), Structure: seq.Plasmid, Loading: true}},
		{"malformed", render.Input{Sequence: ptr("AT\x00GC"), Structure: seq.DNA}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHost()
			s := h.ShowSequence(tt.in)
			require.NotNil(t, s)
			assert.True(t, s.Placeholder)
		})
	}
}

func TestHost_ShowSequence_nilIsNotEmpty(t *testing.T) {
	h, _, _ := newTestHost()
	a := h.ShowSequence(render.Input{Structure: seq.DNA})
	b := h.ShowSequence(render.Input{Sequence: ptr(""), Structure: seq.DNA})
	assert.NotSame(t, a, b)
}

func TestHost_ShowTraits(t *testing.T) {
	h, _, logs := newTestHost()

	none := h.ShowTraits(TraitInput{})
	assert.True(t, none.Placeholder)
	assert.Equal(t, traits.SelectPrompt, h.Overlay().Title)

	in := TraitInput{Selected: []string{"Thermophilic", "Spider Silk"}, LastSelected: "Spider Silk"}
	silk := h.ShowTraits(in)
	assert.Equal(t, "Spider Silk", silk.Title)
	assert.Equal(t, "Drag to rotate", h.Overlay().Caption)
	assert.True(t, none.Disposed())

	in.Hovered = "Thermophilic"
	hover := h.ShowTraits(in)
	assert.Equal(t, "Thermophilic", hover.Title)
	assert.True(t, silk.Disposed())

	unknown := h.ShowTraits(TraitInput{Selected: []string{"Telepathy"}})
	assert.True(t, unknown.Placeholder)
	assert.NotEmpty(t, logs.FilterMessage("falling back").All())
}

func TestHost_swapDisposesBeforeBuild(t *testing.T) {
	h, clock, logs := newTestHost()

	var scenes []*scene.Scene
	for i, name := range traits.Names()[:20] {
		scenes = append(scenes, h.ShowTraits(TraitInput{Hovered: name}))
		clock.Step(time.Duration(i) * time.Millisecond)
		h.Frame()
	}

	for _, s := range scenes[:len(scenes)-1] {
		assert.True(t, s.Disposed())
		assert.Zero(t, s.Callbacks())
	}
	assert.False(t, h.Scene().Disposed())

	// every mount after the first follows the teardown of its predecessor
	entries := logs.All()
	mounts := 0
	for i, e := range entries {
		if e.Message != "mounted scene" {
			continue
		}
		if mounts > 0 {
			require.Greater(t, i, 0)
			assert.Equal(t, "disposed scene", entries[i-1].Message)
		}
		mounts++
	}
	assert.Equal(t, 20, mounts)
}

func TestHost_Frame(t *testing.T) {
	h, clock, _ := newTestHost()

	s, elapsed := h.Frame()
	assert.Nil(t, s)
	assert.Zero(t, elapsed)

	h.ShowTraits(TraitInput{Hovered: "Thermophilic"})
	clock.Step(4 * time.Second)
	s, elapsed = h.Frame()
	assert.InDelta(t, 4, elapsed, 1e-9)
	assert.InDelta(t, 1, s.Root.Rotation.Y, 1e-9)

	h.Close()
	assert.True(t, s.Disposed())
	assert.Nil(t, h.Scene())
}

func TestRig(t *testing.T) {
	r := SequenceRig()
	assert.InDelta(t, 5, r.Distance, 1e-12)
	eye := r.Eye()
	assert.InDelta(t, 0, eye.X, 1e-12)
	assert.InDelta(t, 5, eye.Z, 1e-12)

	r.Zoom(100)
	assert.Equal(t, r.MaxDistance, r.Distance)
	r.Zoom(0.0001)
	assert.Equal(t, r.MinDistance, r.Distance)
	r.Zoom(-1)
	assert.Equal(t, r.MinDistance, r.Distance)

	r.Orbit(0, 10)
	assert.InDelta(t, math.Pi-polarLimit, r.Polar, 1e-12)
	r.Orbit(0, -10)
	assert.InDelta(t, polarLimit, r.Polar, 1e-12)

	r.Reset()
	assert.Equal(t, SequenceRig(), r)

	tr := TraitRig()
	assert.Equal(t, 2.0, tr.MinDistance)
	assert.Equal(t, 8.0, tr.MaxDistance)
	assert.InDelta(t, 4, tr.Eye().Len(), 1e-12)
}

func TestRig_Basis(t *testing.T) {
	r := TraitRig()
	r.Orbit(0.7, -0.3)
	right, up, forward := r.Basis()

	assert.InDelta(t, 1, right.Len(), 1e-9)
	assert.InDelta(t, 1, up.Len(), 1e-9)
	assert.InDelta(t, 0, right.Dot(forward), 1e-9)
	assert.InDelta(t, 0, up.Dot(forward), 1e-9)
	assert.InDelta(t, -r.Distance, r.Eye().Dot(forward), 1e-9, "looks at the origin")
}

func TestStepClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewStepClock(start)
	c.Step(time.Second)
	c.Step(-time.Hour)
	assert.Equal(t, start.Add(time.Second), c.Now())
}
