package technique

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tbl, err := NewTable(
		Technique{Name: "Mirroring", Points: 5, Examples: []string{"a", "b"}},
		Technique{Name: "Labeling", Points: 10, Examples: []string{"c"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"Mirroring", "Labeling"}, tbl.Names())
	assert.Equal(t, 3, tbl.ExampleCount())

	tech, ok := tbl.Lookup("Labeling")
	require.True(t, ok)
	assert.Equal(t, 10, tech.Points)
	assert.Equal(t, []string{"c"}, tech.Examples)

	_, ok = tbl.Lookup("Anchoring")
	assert.False(t, ok)
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		techs []Technique
		err   string
	}{
		{"empty table", nil, "at least one technique"},
		{"missing name", []Technique{{Points: 5, Examples: []string{"a"}}}, "name is required"},
		{"zero points", []Technique{{Name: "x", Examples: []string{"a"}}}, "points must be positive"},
		{"negative points", []Technique{{Name: "x", Points: -1, Examples: []string{"a"}}}, "points must be positive"},
		{"no examples", []Technique{{Name: "x", Points: 1}}, "at least one example"},
		{"blank example", []Technique{{Name: "x", Points: 1, Examples: []string{"a", "  "}}}, "example 1 is empty"},
		{
			"duplicate name",
			[]Technique{
				{Name: "x", Points: 1, Examples: []string{"a"}},
				{Name: "x", Points: 2, Examples: []string{"b"}},
			},
			"duplicate technique name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.techs...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestTable_CopiesAreIsolated(t *testing.T) {
	examples := []string{"a", "b"}
	tbl, err := NewTable(Technique{Name: "x", Points: 1, Examples: examples})
	require.NoError(t, err)

	examples[0] = "mutated"
	tech, _ := tbl.Lookup("x")
	assert.Equal(t, "a", tech.Examples[0])

	tech.Examples[1] = "mutated"
	again, _ := tbl.Lookup("x")
	assert.Equal(t, "b", again.Examples[1])

	all := tbl.All()
	all[0].Examples[0] = "mutated"
	again, _ = tbl.Lookup("x")
	assert.Equal(t, "a", again.Examples[0])
}

func TestTable_EachStopsEarly(t *testing.T) {
	tbl := Default()

	var seen []string
	tbl.Each(func(tech Technique) bool {
		seen = append(seen, tech.Name)
		return len(seen) < 2
	})

	assert.Len(t, seen, 2)
}

func TestTechnique_HasExample(t *testing.T) {
	tech := Technique{Name: "x", Points: 1, Examples: []string{"a", "b"}}

	assert.True(t, tech.HasExample(0))
	assert.True(t, tech.HasExample(1))
	assert.False(t, tech.HasExample(2))
	assert.False(t, tech.HasExample(-1))
}

func TestDefault(t *testing.T) {
	tbl := Default()

	mirroring, ok := tbl.Lookup("Mirroring")
	require.True(t, ok)
	assert.Equal(t, 5, mirroring.Points)
	assert.Len(t, mirroring.Examples, 10)
	assert.Equal(t, "Mirroring", tbl.Names()[0])
}

const techniquesYAML = `
techniques:
  - name: Mirroring
    points: 5
    examples:
      - "Owner: 'Too low.' You: 'Too low?'"
      - "Owner: 'Not now.' You: 'Not now?'"
  - name: Labeling
    points: 10
    examples:
      - "You: 'It sounds like timing matters.'"
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "techniques.yaml")
	require.NoError(t, os.WriteFile(path, []byte(techniquesYAML), 0o600))

	tbl, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Mirroring", "Labeling"}, tbl.Names())
	tech, _ := tbl.Lookup("Mirroring")
	assert.Equal(t, "Owner: 'Not now.' You: 'Not now?'", tech.Examples[1])
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile("/no/such/techniques.yaml")
	assert.Error(t, err)
}

func TestParse_InvalidContent(t *testing.T) {
	_, err := Parse([]byte("techniques:\n  - name: x\n    points: 0\n    examples: [a]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points must be positive")

	_, err = Parse([]byte("techniques: [\n"))
	assert.Error(t, err)
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	tbl, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), tbl.All())
}
