package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/export"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
)

// renderCmd is for writing scenes to disk.
var renderCmd = &cobra.Command{
	Use:                        "render",
	Short:                      "Write a sequence or trait scene to a JSON, PNG or GIF file",
	SuggestionsMinimumDistance: 2,
	Long: `Write a scene to disk. The format is picked from the extension of --out:

  .json  the scene graph on its first frame, with the camera and overlay
  .png   a still of the first frame
  .gif   an animation of --frames frames at --fps`,
	Aliases: []string{"draw"},
}

// renderSequenceCmd is for drawing a sequence as its structure.
var renderSequenceCmd = &cobra.Command{
	Use:                        "sequence [file]",
	Short:                      "Draw a sequence as a helix, strand, fold or plasmid",
	RunE:                       renderSequence,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example: `  arboretum render sequence --seq ATGCGTAC --out helix.gif
  arboretum render sequence pUC19.gb --out ring.png
  arboretum render sequence --seq MKTAYIAK --traits "Venom Synthesis" --out fold.json`,
	Long: `Draw the first sequence of a FASTA or GenBank file, or the sequence passed with --seq.
It is drawn as the structure set with --structure, or else the one the selected --traits
classify as. Circular GenBank records default to a plasmid, anything else to DNA.
Without any sequence the empty placeholder is drawn.`,
	Aliases: []string{"seq"},
}

// renderTraitCmd is for drawing a trait's model.
var renderTraitCmd = &cobra.Command{
	Use:                        "trait [name...]",
	Short:                      "Draw the model of a selected trait",
	RunE:                       renderTrait,
	SuggestionsMinimumDistance: 2,
	Example:                    `  arboretum render trait Thermophilic "Mycelium Network" --hover "Mycelium Network" --out spore.gif`,
	Long: `Draw the model of one of the selected traits: the one passed with --hover, or else the
last one selected. Without any traits the "select a trait" placeholder is drawn.`,
	Aliases: []string{"traits"},
}

func renderSequence(cmd *cobra.Command, args []string) error {
	in, _, err := sequenceInput(cmd, args)
	if err != nil {
		return err
	}
	return writeScene(cmd, host.SequenceRig(), func(h *host.Host) { h.ShowSequence(in) })
}

func renderTrait(cmd *cobra.Command, args []string) error {
	hovered, _ := cmd.Flags().GetString("hover")
	in := host.TraitInput{Selected: args, Hovered: hovered}
	if len(args) > 0 {
		in.LastSelected = args[len(args)-1]
	}
	return writeScene(cmd, host.TraitRig(), func(h *host.Host) { h.ShowTraits(in) })
}

// writeScene mounts a scene on a host stepped frame by frame and writes it to --out.
func writeScene(cmd *cobra.Command, rig host.Rig, show func(*host.Host)) error {
	out, _ := cmd.Flags().GetString("out")

	clock := host.NewStepClock(time.Now())
	h := host.New(rig, host.WithClock(clock), host.WithLogger(logger), host.WithLimits(conf.RenderLimits()))
	defer h.Close()
	show(h)

	if _, err := export.Write(cmd.Context(), out, h, clock, conf.RasterOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{renderSequenceCmd, renderTraitCmd} {
		c.Flags().StringP("out", "o", "", "output file: .json, .png or .gif")
		c.Flags().Int("frames", 0, "frames in a GIF (default 48)")
		addRenderFlags(c)
		c.MarkFlagRequired("out")
	}
	addSequenceFlags(renderSequenceCmd)
	renderTraitCmd.Flags().String("hover", "", "the trait being hovered, drawn instead of the last selected")

	renderCmd.AddCommand(renderSequenceCmd)
	renderCmd.AddCommand(renderTraitCmd)
	RootCmd.AddCommand(renderCmd)
}
