package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// metaMap is from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"arboretum":                  {root, "arboretum", 0, "", ""},
	"arboretum_render":           {childParent, "render", 0, "arboretum", ""},
	"arboretum_render_sequence":  {grandchild, "sequence", 0, "render", "arboretum"},
	"arboretum_render_trait":     {grandchild, "trait", 1, "render", "arboretum"},
	"arboretum_preview":          {childParent, "preview", 1, "arboretum", ""},
	"arboretum_preview_sequence": {grandchild, "sequence", 0, "preview", "arboretum"},
	"arboretum_preview_traits":   {grandchild, "traits", 1, "preview", "arboretum"},
	"arboretum_traits":           {childParent, "traits", 2, "arboretum", ""},
	"arboretum_traits_list":      {grandchild, "list", 0, "traits", "arboretum"},
	"arboretum_traits_find":      {grandchild, "find", 1, "traits", "arboretum"},
	"arboretum_traits_info":      {grandchild, "info", 2, "traits", "arboretum"},
	"arboretum_classify":         {child, "classify", 3, "arboretum", ""},
	"arboretum_docs":             {child, "docs", 4, "arboretum", ""},
}

// docsCmd is for writing the Markdown documentation of every command.
var docsCmd = &cobra.Command{
	Use:   "docs [dir]",
	Short: "Write Markdown documentation for every command",
	RunE:  makeDocs,
	Args:  cobra.MaximumNArgs(1),
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(cmd *cobra.Command, args []string) error {
	dir := "./docs"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	RootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote docs to %s\n", dir)
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "arboretum" {
		return "/"
	}
	return base
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
