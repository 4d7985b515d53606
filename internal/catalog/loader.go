package catalog

import (
	_ "embed"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// file is the on-disk catalog layout.
type file struct {
	Prompts []Prompt `yaml:"prompts"`
}

// Default returns the embedded starter catalog.
func Default() []Prompt {
	prompts, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default catalog is invalid: %v", err))
	}
	return prompts
}

// LoadFile reads and validates the YAML catalog at path.
func LoadFile(path string) ([]Prompt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer f.Close()

	prompts, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	return prompts, nil
}

// Load decodes a YAML catalog from r and validates it.
func Load(r io.Reader) ([]Prompt, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := Validate(f.Prompts); err != nil {
		return nil, err
	}
	return f.Prompts, nil
}

// Validate checks that every prompt has an id, text and language, and that
// ids are unique. All failures are returned joined.
func Validate(prompts []Prompt) error {
	var errs []error
	seen := make(map[string]int, len(prompts))
	for i, p := range prompts {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("prompts[%d]: id is required", i))
		} else if j, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("prompts[%d]: duplicate id %q (first at prompts[%d])", i, p.ID, j))
		} else {
			seen[p.ID] = i
		}
		if p.Text == "" {
			errs = append(errs, fmt.Errorf("prompts[%d]: text is required", i))
		}
		if p.Language == "" {
			errs = append(errs, fmt.Errorf("prompts[%d]: language is required", i))
		}
	}
	return errors.Join(errs...)
}
