package term

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var small = raster.Options{Width: 16, Height: 10, FPS: 12, Background: "#0a0a0f"}

func newHost() *host.Host {
	return host.New(host.TraitRig(), host.WithClock(host.NewStepClock(time.Unix(1700000000, 0))))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewTraits_cycle(t *testing.T) {
	h := newHost()
	m := NewTraits(h, host.TraitInput{Selected: []string{"Thermophilic", "Hibernation"}}, small)
	assert.Equal(t, "Thermophilic", h.Overlay().Title)
	assert.Equal(t, "Drag to rotate", h.Overlay().Caption)
	assert.NotEmpty(t, m.frame)

	tests := []struct {
		key  string
		want string
	}{
		{"tab", "Thermophilic"},
		{"tab", "Hibernation"},
		{"tab", "Thermophilic"}, // back to the first selected
		{"shift+tab", "Hibernation"},
		{"shift+tab", "Thermophilic"},
	}
	for _, tt := range tests {
		m, _ = update(t, m, key(tt.key))
		assert.Equal(t, tt.want, h.Overlay().Title, tt.key)
	}
}

func TestModel_orbitAndZoom(t *testing.T) {
	h := newHost()
	m := NewTraits(h, host.TraitInput{Selected: []string{"Mycelium Network"}}, small)
	start := h.Rig

	m, _ = update(t, m, key("left"))
	assert.InDelta(t, start.Azimuth-orbitStep, h.Rig.Azimuth, 1e-9)

	for i := 0; i < 50; i++ {
		m, _ = update(t, m, key("+"))
	}
	assert.Equal(t, h.Rig.MinDistance, h.Rig.Distance)

	m, _ = update(t, m, key("r"))
	assert.Equal(t, start, h.Rig)

	_, cmd := update(t, m, key("?"))
	assert.Nil(t, cmd)
}

func TestModel_quit(t *testing.T) {
	h := newHost()
	m := NewTraits(h, host.TraitInput{}, small)
	assert.Equal(t, "Select a trait to see 3D visualization", h.Overlay().Title)

	m, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Nil(t, h.Scene())
	assert.Empty(t, m.View())
}

func TestNewSequence_loading(t *testing.T) {
	h := newHost()
	sequence := "AUGGCUAGC"
	m := NewSequence(h, render.Input{Sequence: &sequence, Structure: seq.RNA}, small)
	assert.False(t, h.Scene().Placeholder)
	assert.Contains(t, m.View(), "RNA Structure")
	assert.NotContains(t, m.View(), "Generating sequence")

	m, cmd := update(t, m, key(" "))
	assert.NotNil(t, cmd, "the spinner starts")
	assert.True(t, h.Scene().Placeholder)
	assert.Contains(t, m.View(), "Generating sequence")

	_, cmd = update(t, m, spinner.TickMsg{ID: m.spinner.ID()})
	assert.NotNil(t, cmd, "the spinner keeps turning while loading")

	m, _ = update(t, m, key(" "))
	assert.False(t, h.Scene().Placeholder)
	_, cmd = update(t, m, spinner.TickMsg{ID: m.spinner.ID()})
	assert.Nil(t, cmd, "the spinner stops with the loading")
}

func TestModel_reload(t *testing.T) {
	h := newHost()
	sequence := "ATGCATGC"
	reloads := make(chan error, 1)
	structure := seq.DNA

	m := NewSequence(h, render.Input{Sequence: &sequence, Structure: structure}, small).
		Watch(reloads, func() seq.Structure { return structure })
	assert.Equal(t, "DNA Double Helix", h.Overlay().Title)

	structure = seq.Plasmid
	reloads <- nil
	msg := m.waitForReload()()
	m, cmd := update(t, m, msg)
	assert.NotNil(t, cmd, "keeps listening")
	assert.Equal(t, "Circular Plasmid", h.Overlay().Title)
	assert.Contains(t, m.View(), "reloaded tables")

	reloads <- errors.New("bad yaml")
	m, _ = update(t, m, m.waitForReload()())
	assert.Equal(t, "Circular Plasmid", h.Overlay().Title)
	assert.Contains(t, m.View(), "bad yaml")

	close(reloads)
	assert.Nil(t, m.waitForReload()())
}

func TestModel_tick(t *testing.T) {
	m := NewTraits(newHost(), host.TraitInput{Hovered: "Bioluminescence"}, small)
	assert.NotNil(t, m.Init())

	m.frame = ""
	m, cmd := update(t, m, tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.NotEmpty(t, m.frame)
}

func Test_cells(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 5))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 0, color.RGBA{R: 0xff, A: 0xff})

	rows := strings.Split(cells(img), "\n")
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 4, strings.Count(row, halfBlock))
	}
	assert.Equal(t, lipgloss.Color("#ff0000"), hex(img.RGBAAt(0, 0)))
}
