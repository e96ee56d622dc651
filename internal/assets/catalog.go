package assets

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed elements.yaml
var builtinCatalog []byte

type Catalog struct {
	cards map[string]Card
}

// LoadBuiltin parses the catalog compiled into the binary.
func LoadBuiltin() (*Catalog, error) {
	c, err := Parse(builtinCatalog)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file, or the builtin one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadBuiltin()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := &Catalog{cards: make(map[string]Card, len(f.Cards))}
	for _, spec := range f.Cards {
		c.cards[strings.ToLower(spec.Name)] = Card{
			Name:         spec.Name,
			Symbol:       spec.Symbol,
			AtomicNumber: spec.AtomicNumber,
			AtomicMass:   spec.AtomicMass,
			Category:     strings.TrimSpace(spec.Category),
		}
	}
	return c, nil
}

// Lookup is case-insensitive. A missing card is not an error; callers
// render without an image.
func (c *Catalog) Lookup(name string) (Card, bool) {
	if c == nil {
		return Card{}, false
	}
	card, ok := c.cards[strings.ToLower(strings.TrimSpace(name))]
	return card, ok
}

// Missing lists the names that have no card, in input order.
func (c *Catalog) Missing(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := c.Lookup(n); !ok {
			out = append(out, n)
		}
	}
	return out
}

var _ Provider = (*Catalog)(nil)
