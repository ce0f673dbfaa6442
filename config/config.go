// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
)

// LimitsConfig is how many units of each archetype are drawn at most
type LimitsConfig struct {
	DNA     int `mapstructure:"dna"`
	RNA     int `mapstructure:"rna"`
	Protein int `mapstructure:"protein"`
	Plasmid int `mapstructure:"plasmid"`
}

// RenderConfig is for settings of the images and animations written to disk
// and of the terminal preview
type RenderConfig struct {
	// width and height of the output in pixels
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`

	// the number of frames in an animation and how many are shown a second
	Frames int `mapstructure:"frames"`
	FPS    int `mapstructure:"fps"`

	// the color behind the scene, ex: "#0a0a0f"
	Background string `mapstructure:"background"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Limits are the display limits of the sequence views
	Limits LimitsConfig `mapstructure:"limits"`

	// Render settings
	Render RenderConfig `mapstructure:"render"`

	// Tables is an optional path to classifier tables that replace the built in ones
	Tables string `mapstructure:"tables"`

	// Catalog is an optional path to a trait catalog that replaces the built in one
	Catalog string `mapstructure:"catalog"`

	// Verbose logging
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults sets every setting's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("limits.dna", render.DefaultLimits.DNA)
	v.SetDefault("limits.rna", render.DefaultLimits.RNA)
	v.SetDefault("limits.protein", render.DefaultLimits.Protein)
	v.SetDefault("limits.plasmid", render.DefaultLimits.Plasmid)

	v.SetDefault("render.width", raster.DefaultOptions.Width)
	v.SetDefault("render.height", raster.DefaultOptions.Height)
	v.SetDefault("render.frames", raster.DefaultOptions.Frames)
	v.SetDefault("render.fps", raster.DefaultOptions.FPS)
	v.SetDefault("render.background", string(raster.DefaultOptions.Background))
}

// New returns a new Config struct populated by the global Viper
// settings: defaults, the --settings file and command line arguments
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads a Config from v. If v has a "settings" path, that YAML
// file is merged over the defaults first.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", settings, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if !palette.Token(c.Render.Background).Valid() {
		return nil, fmt.Errorf("render.background %q is not a hex color", c.Render.Background)
	}
	return c, nil
}

// RenderLimits are the display limits to build sequence scenes with.
func (c *Config) RenderLimits() render.Limits {
	return render.Limits{
		DNA:     c.Limits.DNA,
		RNA:     c.Limits.RNA,
		Protein: c.Limits.Protein,
		Plasmid: c.Limits.Plasmid,
	}
}

// RasterOptions are the output settings of the rasteriser.
func (c *Config) RasterOptions() raster.Options {
	return raster.Options{
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Frames:     c.Render.Frames,
		FPS:        c.Render.FPS,
		Background: palette.Token(c.Render.Background),
	}
}
