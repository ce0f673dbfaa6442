package test

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/cmd"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/export"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.RootCmd.SetOut(&out)
	cmd.RootCmd.SetErr(&out)
	cmd.RootCmd.SetArgs(args)
	err := cmd.RootCmd.Execute()
	return out.String(), err
}

func Test_renderSequence(t *testing.T) {
	input := filepath.Join("..", "internal", "seq", "testdata", "puc_ori.gb")
	output := filepath.Join(t.TempDir(), "puc_ori.json")

	printed, err := run(t, "render", "sequence", input, "--out", output)
	require.NoError(t, err)
	assert.Contains(t, printed, "wrote "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var out export.Output
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Circular Plasmid", out.Overlay.Title, "circular records are drawn as plasmids")
	assert.Equal(t, 100, out.Scene.Units)
	assert.Equal(t, 5.0, out.Rig.Distance)
}

func Test_renderTrait(t *testing.T) {
	output := filepath.Join(t.TempDir(), "thermophilic.gif")

	_, err := run(t, "render", "trait", "Thermophilic", "Hibernation",
		"--hover", "Thermophilic",
		"--out", output,
		"--frames", "3", "--fps", "6", "--width", "40", "--height", "30",
	)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 3)
	assert.Equal(t, []int{16, 16, 16}, anim.Delay)
	assert.Equal(t, 40, anim.Config.Width)
}

func Test_renderUnsupported(t *testing.T) {
	output := filepath.Join(t.TempDir(), "thermophilic.svg")

	_, err := run(t, "render", "trait", "Thermophilic", "--out", output)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func Test_classify(t *testing.T) {
	printed, err := run(t, "classify", "Thermophilic", "custom:glow")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(printed), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, []string{"plasmid", "1.0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"protein", "0.5"}, strings.Fields(lines[2]))
	assert.Contains(t, printed, "Circular Plasmid")
}

func Test_traits(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			"list",
			[]string{"traits", "list"},
			[]string{"Thermophilic", "HSP70", "thermophilic"},
			false,
		},
		{
			"find a typo",
			[]string{"traits", "find", "Thermophylic"},
			[]string{"Thermophilic"},
			false,
		},
		{
			"find nothing",
			[]string{"traits", "find", "zzzzzzzzzzzzzz"},
			nil,
			true,
		},
		{
			"info",
			[]string{"traits", "info", "Thermophilic", "--plain"},
			[]string{"# Thermophilic", "## References", "| Model | thermophilic |"},
			false,
		},
		{
			"info of an unknown trait",
			[]string{"traits", "info", "Photosynthetic Skin"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printed, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, printed, want)
			}
		})
	}
}

func Test_docs(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "docs", dir)
	require.NoError(t, err)

	root, err := os.ReadFile(filepath.Join(dir, "arboretum.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(root), "---\nlayout: default\ntitle: arboretum\n"))
	assert.Contains(t, string(root), "permalink: /")

	find, err := os.ReadFile(filepath.Join(dir, "arboretum_traits_find.md"))
	require.NoError(t, err)
	assert.Contains(t, string(find), "grand_parent: arboretum")
}
