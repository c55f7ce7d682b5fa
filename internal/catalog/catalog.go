// Package catalog holds the sample assembly catalog and its validation rules.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/you-humble/assembly-seeder/internal/model"
)

//go:embed catalog.yaml
var embedded []byte

// Default returns the embedded sample catalog.
func Default() (*model.Catalog, error) {
	const op = "catalog.Default"

	c, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Load reads a catalog file. An empty path selects the embedded catalog.
func Load(path string) (*model.Catalog, error) {
	const op = "catalog.Load"

	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(model.ErrInvalidCatalog, fmt.Errorf("%s: %w", op, err))
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Unknown keys are rejected.
func Parse(raw []byte) (*model.Catalog, error) {
	const op = "catalog.Parse"

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Join(model.ErrInvalidCatalog, fmt.Errorf("%s: %w", op, err))
	}

	return catalogToModel(&f), nil
}
