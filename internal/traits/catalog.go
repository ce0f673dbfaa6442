package traits

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Reference is a source a trait card links to.
type Reference struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`

	// Type is one of wikipedia, paper, database
	Type string `yaml:"type" json:"type"`
}

// Trait is one card of the catalog.
type Trait struct {
	Name        string      `yaml:"name" json:"name"`
	Gene        string      `yaml:"gene" json:"gene"`
	Source      string      `yaml:"source,omitempty" json:"source,omitempty"`
	Mechanism   string      `yaml:"mechanism,omitempty" json:"mechanism,omitempty"`
	Description string      `yaml:"description" json:"description"`
	References  []Reference `yaml:"references,omitempty" json:"references,omitempty"`

	// Category is the ID of the category the trait is listed under
	Category string `yaml:"-" json:"category"`
}

// Category groups traits of one kind of organism.
type Category struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Traits      []Trait `yaml:"traits" json:"traits"`
}

// Catalog is the list of traits users pick from, grouped by category.
type Catalog struct {
	Categories []Category `yaml:"categories" json:"categories"`

	byName map[string]Trait
}

// DefaultCatalog is the catalog shipped with the binary.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog reads a catalog from YAML. Trait names must be unique.
func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	c := &Catalog{}
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	c.byName = make(map[string]Trait)
	for i := range c.Categories {
		cat := &c.Categories[i]
		for j := range cat.Traits {
			t := &cat.Traits[j]
			if t.Name == "" {
				return nil, fmt.Errorf("trait %d of %s has no name", j, cat.ID)
			}
			if _, dup := c.byName[t.Name]; dup {
				return nil, fmt.Errorf("trait %q is listed twice", t.Name)
			}
			t.Category = cat.ID
			c.byName[t.Name] = *t
		}
	}
	return c, nil
}

// ReadCatalog reads a catalog from a YAML file.
func ReadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// Trait returns the card of a trait.
func (c *Catalog) Trait(name string) (Trait, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Traits is every card in catalog order.
func (c *Catalog) Traits() []Trait {
	var out []Trait
	for _, cat := range c.Categories {
		out = append(out, cat.Traits...)
	}
	return out
}

// Find looks a trait up by name. An exact name gives that trait alone.
// Otherwise names containing the query are returned if there are a few of
// them, else those plus names within a small edit distance of it.
func (c *Catalog) Find(query string) []Trait {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	ldCutoff := len(query) / 3
	if 1 > ldCutoff {
		ldCutoff = 1
	}
	containing := []Trait{}
	lowDistance := []Trait{}

	lower := strings.ToLower(query)
	for _, t := range c.Traits() {
		if strings.Contains(strings.ToLower(t.Name), lower) {
			containing = append(containing, t)
		} else if len(t.Name) > ldCutoff && ld(query, t.Name, true) <= ldCutoff {
			lowDistance = append(lowDistance, t)
		}
	}

	// check for an exact match
	if t, exact := c.byName[query]; exact && len(containing) < 2 {
		return []Trait{t}
	}

	if len(containing) < 3 {
		lowDistance = append(containing, lowDistance...)
		containing = []Trait{}
	}
	if len(containing) > 0 {
		return containing
	}
	return lowDistance
}

// Card is the markdown of a trait's card, with the model it is drawn with.
func (c *Catalog) Card(name string) (string, error) {
	t, ok := c.Trait(name)
	if !ok {
		return "", fmt.Errorf("no trait named %q in the catalog", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "%s\n\n", t.Description)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Gene | `%s` |\n", t.Gene)
	if t.Source != "" {
		fmt.Fprintf(&b, "| Source | *%s* |\n", t.Source)
	}
	fmt.Fprintf(&b, "| Category | %s |\n", t.Category)
	if m, err := For(t.Name); err == nil {
		fmt.Fprintf(&b, "| Model | %s |\n", m.ID())
	} else {
		fmt.Fprintf(&b, "| Model | none |\n")
	}
	if t.Mechanism != "" {
		fmt.Fprintf(&b, "\n## Mechanism\n\n%s\n", t.Mechanism)
	}
	if len(t.References) > 0 {
		fmt.Fprintf(&b, "\n## References\n\n")
		for _, r := range t.References {
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n", r.Title, r.URL, r.Type)
		}
	}
	return b.String(), nil
}

// Names is every trait name in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ld computes the Levenshtein distance between two strings.
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
