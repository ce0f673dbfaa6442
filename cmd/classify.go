package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/classify"
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/seq"
)

// classifyCmd is for picking the structure a trait selection is drawn as.
var classifyCmd = &cobra.Command{
	Use:                        "classify [trait...]",
	Short:                      "Score a trait selection against each structure",
	RunE:                       classifyExec,
	SuggestionsMinimumDistance: 2,
	Example:                    `  arboretum classify Thermophilic "Heat Shock Proteins" custom:glow`,
	Long: `Score a selection of traits against each structure and print which one wins.

Every trait adds a point to each structure whose table lists it. Traits prefixed
with "custom:" also add half a point to protein. Ties go to plasmid, then protein,
then RNA, then DNA; an empty selection is DNA.`,
}

func classifyExec(cmd *cobra.Command, args []string) error {
	c, err := classifier()
	if err != nil {
		return err
	}

	scores := c.Scores(args)
	winner := scores.Winner()
	info := classify.Info(winner)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "structure\tscore\t\n")
	for _, s := range seq.Structures() {
		fmt.Fprintf(w, "%s\t%.1f\t\n", s, scores.Of(s))
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n", info.Name, info.Description)
	return nil
}

func init() {
	classifyCmd.Flags().String("tables", "", "path to classifier tables YAML")

	RootCmd.AddCommand(classifyCmd)
}
