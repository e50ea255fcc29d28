// Package technique holds the static table of negotiation techniques a
// practice session scores against. A Table is built and validated once at
// startup and never mutated afterwards; accessors hand out copies so callers
// cannot alter the shared content.
package technique

import (
	"errors"
	"fmt"
	"strings"
)

// Technique is a named negotiation tactic with a point value and an ordered
// list of example dialogue lines.
type Technique struct {
	Name     string   `yaml:"name"`
	Points   int      `yaml:"points"`
	Examples []string `yaml:"examples"`
}

// Validate checks that the technique is usable in a table.
func (t Technique) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("technique: name is required")
	}
	if t.Points <= 0 {
		return fmt.Errorf("technique: %q: points must be positive, got %d", t.Name, t.Points)
	}
	if len(t.Examples) == 0 {
		return fmt.Errorf("technique: %q: at least one example is required", t.Name)
	}
	for i, ex := range t.Examples {
		if strings.TrimSpace(ex) == "" {
			return fmt.Errorf("technique: %q: example %d is empty", t.Name, i)
		}
	}
	return nil
}

// HasExample reports whether index addresses one of the technique's examples.
func (t Technique) HasExample(index int) bool {
	return index >= 0 && index < len(t.Examples)
}

func (t Technique) clone() Technique {
	cp := t
	cp.Examples = make([]string, len(t.Examples))
	copy(cp.Examples, t.Examples)
	return cp
}

// Table is an ordered, immutable set of techniques with unique names.
// It is safe for concurrent use because it is never written after NewTable.
type Table struct {
	techniques []Technique
	byName     map[string]int
}

// NewTable validates the given techniques and builds a Table. The input
// slices are copied.
func NewTable(techniques ...Technique) (*Table, error) {
	if len(techniques) == 0 {
		return nil, errors.New("technique: table: at least one technique is required")
	}

	t := &Table{
		techniques: make([]Technique, 0, len(techniques)),
		byName:     make(map[string]int, len(techniques)),
	}

	for _, tech := range techniques {
		if err := tech.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.byName[tech.Name]; dup {
			return nil, fmt.Errorf("technique: table: duplicate technique name %q", tech.Name)
		}
		t.byName[tech.Name] = len(t.techniques)
		t.techniques = append(t.techniques, tech.clone())
	}

	return t, nil
}

// Lookup returns the technique with the given name.
func (t *Table) Lookup(name string) (Technique, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Technique{}, false
	}
	return t.techniques[i].clone(), true
}

// Len returns the number of techniques.
func (t *Table) Len() int { return len(t.techniques) }

// Names returns technique names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.techniques))
	for i, tech := range t.techniques {
		names[i] = tech.Name
	}
	return names
}

// All returns a copy of every technique in table order.
func (t *Table) All() []Technique {
	out := make([]Technique, len(t.techniques))
	for i, tech := range t.techniques {
		out[i] = tech.clone()
	}
	return out
}

// Each calls fn for every technique in order until fn returns false.
func (t *Table) Each(fn func(Technique) bool) {
	for _, tech := range t.techniques {
		if !fn(tech.clone()) {
			return
		}
	}
}

// ExampleCount returns the total number of examples across all techniques.
func (t *Table) ExampleCount() int {
	n := 0
	for _, tech := range t.techniques {
		n += len(tech.Examples)
	}
	return n
}
