package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/classify"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/render"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/traits"
)

// settingFlags maps settings to the flags that override them. The flags
// are defined on several commands, so they are bound to viper when the
// command that owns them runs.
var settingFlags = map[string]string{
	"render.width":      "width",
	"render.height":     "height",
	"render.frames":     "frames",
	"render.fps":        "fps",
	"render.background": "background",
	"tables":            "tables",
	"catalog":           "catalog",
}

// bindFlags binds the settings flags of the running command to viper.
func bindFlags(cmd *cobra.Command) error {
	for key, name := range settingFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// addRenderFlags adds the flags that size the output.
func addRenderFlags(c *cobra.Command) {
	c.Flags().Int("width", 0, "width of the output in pixels (default 480)")
	c.Flags().Int("height", 0, "height of the output in pixels (default 360)")
	c.Flags().Int("fps", 0, "frames per second (default 12)")
	c.Flags().String("background", "", "background color as hex (default \"#0a0a0f\")")
}

// addSequenceFlags adds the flags that describe a sequence view.
func addSequenceFlags(c *cobra.Command) {
	c.Flags().String("seq", "", "the sequence to draw, instead of a FASTA or GenBank file")
	c.Flags().StringP("structure", "t", "", "structure to draw as: dna, rna, protein or plasmid")
	c.Flags().StringSlice("traits", nil, "comma separated traits to classify into a structure when --structure is unset")
	c.Flags().Bool("loading", false, "show the loading placeholder")
	c.Flags().String("tables", "", "path to classifier tables YAML")
}

// classifier returns a classifier over the configured tables.
func classifier() (*classify.Classifier, error) {
	if conf == nil || conf.Tables == "" {
		return classify.Default(), nil
	}
	t, err := classify.ReadTables(conf.Tables)
	if err != nil {
		return nil, err
	}
	return classify.New(t), nil
}

// catalog returns the configured trait catalog.
func catalog() (*traits.Catalog, error) {
	if conf == nil || conf.Catalog == "" {
		return traits.DefaultCatalog(), nil
	}
	return traits.ReadCatalog(conf.Catalog)
}

// sequenceInput reads the sequence view a command describes. The sequence
// is --seq, else the first record of the file in args, else there is none.
// The structure is --structure, else the one --traits classify as, else a
// plasmid for circular GenBank records and DNA for everything else.
func sequenceInput(cmd *cobra.Command, args []string) (render.Input, []string, error) {
	flags := cmd.Flags()
	inline, _ := flags.GetString("seq")
	structure, _ := flags.GetString("structure")
	selected, _ := flags.GetStringSlice("traits")
	loading, _ := flags.GetBool("loading")

	in := render.Input{Loading: loading}
	circular := false
	switch {
	case flags.Changed("seq"):
		in.Sequence = &inline
	case len(args) > 0:
		records, err := seq.Read(args[0])
		if err != nil {
			return in, nil, err
		}
		if len(records) == 0 {
			return in, nil, fmt.Errorf("no sequences in %s", args[0])
		}
		s := records[0].Seq
		in.Sequence, circular = &s, records[0].Circular
	}

	switch {
	case structure != "":
		s, err := seq.ParseStructure(structure)
		if err != nil {
			return in, nil, err
		}
		in.Structure = s
	case len(selected) > 0:
		c, err := classifier()
		if err != nil {
			return in, nil, err
		}
		in.Structure = c.Classify(selected)
	case circular:
		in.Structure = seq.Plasmid
	default:
		in.Structure = seq.DNA
	}
	return in, selected, nil
}
