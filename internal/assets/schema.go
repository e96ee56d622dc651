package assets

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	CatalogKind            = "element_catalog"
	SupportedSchemaVersion = 1
)

var symbolPattern = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)

type CatalogFile struct {
	Kind          string     `yaml:"kind"`
	SchemaVersion int        `yaml:"schema_version"`
	Cards         []CardSpec `yaml:"elements"`
}

type CardSpec struct {
	Name         string  `yaml:"name"`
	Symbol       string  `yaml:"symbol"`
	AtomicNumber int     `yaml:"atomic_number"`
	AtomicMass   float64 `yaml:"atomic_mass"`
	Category     string  `yaml:"category"`
}

func (f CatalogFile) Validate() error {
	if f.Kind != CatalogKind {
		return fmt.Errorf("kind must be %q, got %q", CatalogKind, f.Kind)
	}
	if f.SchemaVersion != SupportedSchemaVersion {
		return fmt.Errorf("unsupported schema_version %d", f.SchemaVersion)
	}
	if len(f.Cards) == 0 {
		return fmt.Errorf("elements must not be empty")
	}
	seen := map[string]bool{}
	for i, c := range f.Cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("elements[%d]: %w", i, err)
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("elements[%d]: duplicate name %q", i, c.Name)
		}
		seen[key] = true
	}
	return nil
}

func (c CardSpec) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !symbolPattern.MatchString(c.Symbol) {
		return fmt.Errorf("invalid symbol %q for %s", c.Symbol, c.Name)
	}
	if c.AtomicNumber <= 0 {
		return fmt.Errorf("atomic_number must be positive for %s", c.Name)
	}
	if c.AtomicMass < 0 {
		return fmt.Errorf("atomic_mass must not be negative for %s", c.Name)
	}
	return nil
}
