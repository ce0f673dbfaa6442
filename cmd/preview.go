package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/classify"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/host"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/raster"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/term"
)

// previewColumns is the widest a preview is drawn, one pixel per column.
const previewColumns = 80

// previewCmd is for viewing scenes in the terminal.
var previewCmd = &cobra.Command{
	Use:                        "preview",
	Short:                      "View a sequence or trait scene in the terminal",
	SuggestionsMinimumDistance: 2,
	Long: `View a scene animated in the terminal.

Arrow keys orbit the camera, + and - zoom, r resets the camera and q quits.`,
	Aliases: []string{"view"},
}

// previewSequenceCmd is for viewing a sequence.
var previewSequenceCmd = &cobra.Command{
	Use:                        "sequence [file]",
	Short:                      "View a sequence as its structure",
	RunE:                       previewSequence,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    `  arboretum preview sequence --seq AUGGCUAGCUAG --traits "RNA Interference" --tables ./tables.yaml`,
	Long: `View a sequence as its structure. Space toggles the loading placeholder.

With --tables and --traits the structure is reclassified whenever the tables file
changes on disk.`,
	Aliases: []string{"seq"},
}

// previewTraitsCmd is for viewing trait models.
var previewTraitsCmd = &cobra.Command{
	Use:                        "traits [name...]",
	Short:                      "View the models of selected traits",
	RunE:                       previewTraits,
	SuggestionsMinimumDistance: 2,
	Example:                    `  arboretum preview traits Thermophilic Bioluminescence "Hive Mind"`,
	Long:                       `View the models of the selected traits. Tab hovers over each in turn.`,
	Aliases:                    []string{"trait"},
}

func previewSequence(cmd *cobra.Command, args []string) error {
	in, selected, err := sequenceInput(cmd, args)
	if err != nil {
		return err
	}

	h := newPreviewHost(host.SequenceRig())
	defer h.Close()
	m := term.NewSequence(h, in, previewOptions())

	if conf.Tables != "" && len(selected) > 0 {
		c := classify.Default()
		w, err := classify.NewWatcher(conf.Tables, c, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		m = m.Watch(w.Reloads(), func() seq.Structure { return c.Classify(selected) })
	}

	return runPreview(m)
}

func previewTraits(cmd *cobra.Command, args []string) error {
	in := host.TraitInput{Selected: args}
	if len(args) > 0 {
		in.LastSelected = args[len(args)-1]
	}

	h := newPreviewHost(host.TraitRig())
	defer h.Close()
	return runPreview(term.NewTraits(h, in, previewOptions()))
}

func newPreviewHost(rig host.Rig) *host.Host {
	return host.New(rig, host.WithLogger(logger), host.WithLimits(conf.RenderLimits()))
}

// previewOptions are the render settings scaled down to fit a terminal.
func previewOptions() raster.Options {
	opt := conf.RasterOptions()
	if opt.Width > previewColumns {
		opt.Height = opt.Height * previewColumns / opt.Width
		opt.Width = previewColumns
	}
	return opt
}

func runPreview(m tea.Model) error {
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("preview failed", zap.Error(err))
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}

func init() {
	addSequenceFlags(previewSequenceCmd)
	for _, c := range []*cobra.Command{previewSequenceCmd, previewTraitsCmd} {
		addRenderFlags(c)
	}

	previewCmd.AddCommand(previewSequenceCmd)
	previewCmd.AddCommand(previewTraitsCmd)
	RootCmd.AddCommand(previewCmd)
}
