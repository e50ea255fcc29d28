package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/coldcall/pkg/game"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			if err := runInit(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "techniques":
			if err := runTechniques(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coldcall [flags]\n       coldcall <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init        Initialize a .coldcall directory with config and techniques\n  techniques  Print the technique table\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: .coldcall/config.yaml)")
	dir := flag.String("coldcall-dir", ".coldcall", "path to .coldcall directory")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *dir, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dirPath, logLevel string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Query the background once, before bubbletea owns the terminal.
	isDarkBG = lipgloss.HasDarkBackground()

	cfg, err := loadConfig(configPath, dirPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	table, err := cfg.LoadTable()
	if err != nil {
		return err
	}

	g, err := game.New(cfg, table, game.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	logger.Info("session started",
		"techniques", table.Len(),
		"examples", table.ExampleCount(),
		"rules", cfg.Rules.BonusCheck,
	)

	p := tea.NewProgram(newAppModel(ctx, g), tea.WithAltScreen(), tea.WithContext(ctx))

	// Send the program reference so the model can start the bridge goroutine.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}

	st := g.Snapshot()
	logger.Info("session ended", "summary", game.Summary(st))
	fmt.Println(game.Summary(st))

	return nil
}
