package export

import (
	"bytes"
	"context"
	"encoding/json"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

var small = raster.Options{Width: 24, Height: 18, Frames: 3, FPS: 10, Background: "#0a0a0f"}

func newHost(t *testing.T) (*host.Host, *host.StepClock) {
	clock := host.NewStepClock(time.Unix(1700000000, 0))
	h := host.New(host.SequenceRig(), host.WithClock(clock))
	t.Cleanup(h.Close)
	return h, clock
}

func TestWrite_json(t *testing.T) {
	h, clock := newHost(t)
	sequence := "ATGCGTACGT"
	h.ShowSequence(render.Input{Sequence: &sequence, Structure: seq.DNA})
	clock.Step(1500 * time.Millisecond)

	filename := filepath.Join(t.TempDir(), "dna.json")
	output, err := Write(context.Background(), filename, h, clock, small)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, output, onDisk)

	var out Output
	require.NoError(t, json.Unmarshal(output, &out))
	assert.InDelta(t, 1.5, out.Elapsed, 1e-9)
	assert.Equal(t, "DNA Double Helix", out.Overlay.Title)
	assert.Equal(t, 10, out.Scene.Units)
	assert.Equal(t, 50.0, out.Rig.FOV)
	assert.NotEmpty(t, out.Time)
}

func TestWrite_images(t *testing.T) {
	h, clock := newHost(t)
	h.ShowTraits(host.TraitInput{Selected: []string{"Thermophilic"}})
	dir := t.TempDir()

	output, err := Write(context.Background(), filepath.Join(dir, "still.PNG"), h, clock, small)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(output))
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	output, err = Write(context.Background(), filepath.Join(dir, "spin.gif"), h, clock, small)
	require.NoError(t, err)
	anim, err := gif.DecodeAll(bytes.NewReader(output))
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{10, 10, 10}, anim.Delay)
}

func TestWrite_errors(t *testing.T) {
	h, clock := newHost(t)
	dir := t.TempDir()

	_, err := Write(context.Background(), filepath.Join(dir, "out.json"), h, clock, small)
	assert.ErrorIs(t, err, raster.ErrNothingMounted)

	h.ShowTraits(host.TraitInput{})
	_, err = Write(context.Background(), filepath.Join(dir, "out.svg"), h, clock, small)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NoFileExists(t, filepath.Join(dir, "out.svg"))

	_, err = Write(context.Background(), filepath.Join(dir, "missing", "out.json"), h, clock, small)
	assert.Error(t, err)
}
