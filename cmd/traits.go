package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/traits"
)

// traitsCmd is for browsing the trait catalog.
var traitsCmd = &cobra.Command{
	Use:                        "traits",
	Short:                      "List, find or describe the traits in the catalog",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"trait"},
}

// traitsListCmd is for listing every trait in the catalog.
var traitsListCmd = &cobra.Command{
	Use:                        "list",
	Short:                      "List every trait with its gene and model",
	RunE:                       traitsList,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"ls"},
}

// traitsFindCmd is for finding traits close to a name.
var traitsFindCmd = &cobra.Command{
	Use:                        "find [name]",
	Short:                      "Find traits by name",
	RunE:                       traitsFind,
	Args:                       cobra.MinimumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  arboretum traits find oxidation",
	Long: `Find traits in the catalog that are similar to [name].
If a trait has exactly that name it is the only one logged.
If multiple traits contain the name sent, each are logged.
Otherwise, all traits with names similar to the name are written to stdout`,
}

// traitsInfoCmd is for showing a trait's card.
var traitsInfoCmd = &cobra.Command{
	Use:                        "info [name]",
	Short:                      "Show a trait's gene, mechanism and references",
	RunE:                       traitsInfo,
	Args:                       cobra.MinimumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    `  arboretum traits info "Electric Organ"`,
	Aliases:                    []string{"show"},
}

func traitsList(cmd *cobra.Command, args []string) error {
	c, err := catalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "category\ttrait\tgene\tmodel\n")
	for _, t := range c.Traits() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Category, t.Name, t.Gene, modelOf(t.Name))
	}
	return w.Flush()
}

func traitsFind(cmd *cobra.Command, args []string) error {
	c, err := catalog()
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	found := c.Find(name)
	if len(found) == 0 {
		return fmt.Errorf("failed to find any traits for %s", name)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, t := range found {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Gene, t.Category)
	}
	return w.Flush()
}

func traitsInfo(cmd *cobra.Command, args []string) error {
	c, err := catalog()
	if err != nil {
		return err
	}

	card, err := c.Card(strings.Join(args, " "))
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), card)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(card)
	if err != nil {
		return fmt.Errorf("failed to render card: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func modelOf(name string) string {
	m, err := traits.For(name)
	if err != nil {
		return "-"
	}
	return m.ID()
}

func init() {
	traitsCmd.PersistentFlags().String("catalog", "", "path to a trait catalog YAML")
	traitsInfoCmd.Flags().Bool("plain", false, "print the card's markdown without styling it")

	traitsCmd.AddCommand(traitsListCmd)
	traitsCmd.AddCommand(traitsFindCmd)
	traitsCmd.AddCommand(traitsInfoCmd)
	RootCmd.AddCommand(traitsCmd)
}
