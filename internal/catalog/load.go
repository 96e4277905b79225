package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadError marks a catalog manifest that could not be read or that fails
// validation. Catalog failures are fatal to the whole run.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and validates the module catalog manifest at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes and validates manifest bytes. The path is used for error
// reporting only.
func Parse(data []byte, path string) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse manifest: %w", err)}
	}
	if err := c.validate(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("manifest declares no questions")
	}

	moduleNames := make(map[string]struct{}, len(c.Modules))
	for i, m := range c.Modules {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return fmt.Errorf("module %d: empty name", i)
		}
		if name != m.Name {
			return fmt.Errorf("module %q: name has surrounding whitespace", m.Name)
		}
		if _, ok := moduleNames[name]; ok {
			return fmt.Errorf("module %q declared twice", name)
		}
		moduleNames[name] = struct{}{}
		if strings.TrimSpace(m.Contributor) == "" {
			return fmt.Errorf("module %q: missing contributor", name)
		}
	}

	ids := make(map[string]struct{}, len(c.Questions))
	for i, q := range c.Questions {
		where := fmt.Sprintf("question %d (%s)", i, q.ID)
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("question %d: empty id", i)
		}
		if _, ok := ids[q.ID]; ok {
			return fmt.Errorf("question id %q declared twice", q.ID)
		}
		ids[q.ID] = struct{}{}

		if _, ok := moduleNames[q.Module]; !ok {
			return fmt.Errorf("%s: unknown module %q", where, q.Module)
		}
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%s: empty question text", where)
		}

		if err := validateAnswers(q); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if err := validateArguments(q); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
	}
	return nil
}

// Answer literals become map keys in the generated entry, so duplicates would
// produce source that does not compile.
func validateAnswers(q Question) error {
	seen := make(map[string]struct{}, len(q.Answers))
	for _, a := range q.Answers {
		if _, ok := seen[a]; ok {
			return fmt.Errorf("duplicate answer literal %q", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}

func validateArguments(q Question) error {
	if len(q.Arguments) == 0 {
		if len(q.TranslatableArguments) > 0 {
			return fmt.Errorf("translatable-argument flags without arguments")
		}
		return nil
	}
	if q.ArgumentGroupSize <= 0 {
		return fmt.Errorf("arguments present but group size is %d", q.ArgumentGroupSize)
	}
	if len(q.Arguments)%q.ArgumentGroupSize != 0 {
		return fmt.Errorf("%d arguments do not divide into groups of %d", len(q.Arguments), q.ArgumentGroupSize)
	}
	if len(q.TranslatableArguments) != q.ArgumentGroupSize {
		return fmt.Errorf("%d translatable-argument flags for group size %d", len(q.TranslatableArguments), q.ArgumentGroupSize)
	}
	return nil
}
