package technique

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a techniques YAML file.
type File struct {
	Techniques []Technique `yaml:"techniques"`
}

// LoadFile reads a techniques YAML file and builds a Table from it.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return nil, fmt.Errorf("technique: load: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("technique: %s: %w", path, err)
	}

	return t, nil
}

// Parse decodes techniques YAML and builds a Table from it.
func Parse(data []byte) (*Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("technique: parse: %w", err)
	}

	return NewTable(f.Techniques...)
}

// Marshal encodes the table as techniques YAML, suitable for LoadFile.
func Marshal(t *Table) ([]byte, error) {
	data, err := yaml.Marshal(File{Techniques: t.All()})
	if err != nil {
		return nil, fmt.Errorf("technique: marshal: %w", err)
	}
	return data, nil
}
