package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/coldcall/pkg/technique"
)

func runTechniques(args []string) error {
	fs := flag.NewFlagSet("techniques", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: coldcall techniques [flags]\n\nPrint the technique table in use.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to configuration file (default: .coldcall/config.yaml)")
	dir := fs.String("coldcall-dir", ".coldcall", "path to .coldcall directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, *dir)
	if err != nil {
		return err
	}
	table, err := cfg.LoadTable()
	if err != nil {
		return err
	}

	isDarkBG = lipgloss.HasDarkBackground()
	initMarkdownRenderer(80)
	fmt.Println(renderMarkdown(techniquesMarkdown(table)))

	return nil
}

// techniquesMarkdown formats the table as one section per technique.
func techniquesMarkdown(t *technique.Table) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Techniques\n\n%d techniques, %d examples.\n", t.Len(), t.ExampleCount())

	t.Each(func(tech technique.Technique) bool {
		fmt.Fprintf(&sb, "\n## %s · %d points\n\n", tech.Name, tech.Points)
		for i, ex := range tech.Examples {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, ex)
		}
		return true
	})

	return sb.String()
}
