package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/coldcall/pkg/coldcalldir"
	"github.com/germanamz/coldcall/pkg/game"
	"github.com/germanamz/coldcall/pkg/session"
	"github.com/germanamz/coldcall/pkg/technique"
	"gopkg.in/yaml.v3"
)

// initChoices is what the init wizard collects.
type initChoices struct {
	Techniques []string
	BonusCheck session.BonusCheck
	Logging    bool
}

func defaultInitChoices() initChoices {
	return initChoices{
		Techniques: technique.Default().Names(),
		BonusCheck: session.BonusBeforeIncrement,
		Logging:    true,
	}
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: coldcall init [flags]\n\nInitialize a .coldcall directory with config and techniques.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	dir := fs.String("coldcall-dir", ".coldcall", "path to .coldcall directory")
	force := fs.Bool("force", false, "overwrite existing config and techniques")
	yes := fs.Bool("yes", false, "skip the wizard and use the defaults")
	if err := fs.Parse(args); err != nil {
		return err
	}

	choices := defaultInitChoices()
	if !*yes {
		if err := runInitWizard(&choices); err != nil {
			return err
		}
	}

	files, err := buildInitFiles(choices)
	if err != nil {
		return err
	}

	d := coldcalldir.New(*dir)
	if err := coldcalldir.Bootstrap(d, files, *force); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())
	return nil
}

func runInitWizard(c *initChoices) error {
	defaults := technique.Default()

	opts := make([]huh.Option[string], 0, defaults.Len())
	defaults.Each(func(t technique.Technique) bool {
		label := fmt.Sprintf("%s (%d points, %d examples)", t.Name, t.Points, len(t.Examples))
		opts = append(opts, huh.NewOption(label, t.Name).Selected(true))
		return true
	})

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Techniques to practice").
				Options(opts...).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return errors.New("pick at least one technique")
					}
					return nil
				}).
				Value(&c.Techniques),
		),
		huh.NewGroup(
			huh.NewSelect[session.BonusCheck]().
				Title("When is the streak bonus awarded?").
				Options(
					huh.NewOption("On the first use and every streak_length uses after", session.BonusBeforeIncrement),
					huh.NewOption("On every streak_length-th use", session.BonusAfterIncrement),
				).
				Value(&c.BonusCheck),
			huh.NewConfirm().
				Title("Write a session log to local/coldcall.log?").
				Value(&c.Logging),
		),
	)

	return form.Run()
}

// buildInitFiles renders the config and techniques files for c.
func buildInitFiles(c initChoices) (coldcalldir.Files, error) {
	if len(c.Techniques) == 0 {
		return coldcalldir.Files{}, errors.New("init: no techniques selected")
	}

	defaults := technique.Default()
	picked := make([]technique.Technique, 0, len(c.Techniques))
	for _, name := range c.Techniques {
		t, ok := defaults.Lookup(name)
		if !ok {
			return coldcalldir.Files{}, fmt.Errorf("init: unknown technique %q", name)
		}
		picked = append(picked, t)
	}

	table, err := technique.NewTable(picked...)
	if err != nil {
		return coldcalldir.Files{}, fmt.Errorf("init: %w", err)
	}
	techniques, err := technique.Marshal(table)
	if err != nil {
		return coldcalldir.Files{}, fmt.Errorf("init: %w", err)
	}

	cfg := game.DefaultConfig()
	cfg.TechniquesFile = "techniques.yaml"
	cfg.Rules.BonusCheck = c.BonusCheck
	if c.Logging {
		cfg.Log.File = "local/coldcall.log"
	}
	if err := cfg.Validate(); err != nil {
		return coldcalldir.Files{}, err
	}

	config, err := yaml.Marshal(cfg)
	if err != nil {
		return coldcalldir.Files{}, fmt.Errorf("init: marshal config: %w", err)
	}

	return coldcalldir.Files{Config: config, Techniques: techniques}, nil
}
