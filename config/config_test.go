// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0666))
	return path
}

func TestLoad(t *testing.T) {
	type args struct {
		settings string
		set      map[string]interface{}
	}
	tests := []struct {
		name    string
		args    args
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			"defaults",
			args{},
			func(t *testing.T, c *Config) {
				assert.Equal(t, render.DefaultLimits, c.RenderLimits())
				assert.Equal(t, raster.DefaultOptions, c.RasterOptions())
				assert.Empty(t, c.Tables)
				assert.False(t, c.Verbose)
			},
			false,
		},
		{
			"settings file over defaults",
			args{
				settings: "limits:\n  dna: 30\nrender:\n  fps: 24\n  background: \"#000000\"\ntables: ./tables.yaml\n",
			},
			func(t *testing.T, c *Config) {
				assert.Equal(t, 30, c.Limits.DNA)
				assert.Equal(t, 80, c.Limits.RNA)
				assert.Equal(t, 24, c.Render.FPS)
				assert.Equal(t, 480, c.Render.Width)
				assert.Equal(t, "#000000", c.Render.Background)
				assert.Equal(t, "./tables.yaml", c.Tables)
			},
			false,
		},
		{
			"flags over settings",
			args{
				settings: "render:\n  width: 200\n",
				set:      map[string]interface{}{"render.width": 100, "verbose": true},
			},
			func(t *testing.T, c *Config) {
				assert.Equal(t, 100, c.Render.Width)
				assert.True(t, c.Verbose)
			},
			false,
		},
		{
			"bad background",
			args{settings: "render:\n  background: teal\n"},
			nil,
			true,
		},
		{
			"malformed settings",
			args{settings: "limits: [1, 2\n"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			if tt.args.settings != "" {
				v.Set("settings", writeSettings(t, tt.args.settings))
			}
			for k, val := range tt.args.set {
				v.Set(k, val)
			}

			c, err := Load(v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestLoad_missingSettings(t *testing.T) {
	v := viper.New()
	v.Set("settings", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}
