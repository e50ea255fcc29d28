package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/germanamz/coldcall/pkg/game"
	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
)

// isDarkBG is set once before bubbletea starts so that glamour never issues
// its own terminal background query while the program is running.
var isDarkBG = true

var (
	mdRenderer      *glamour.TermRenderer
	mdRendererMu    sync.Mutex
	mdRendererWidth int
)

// initMarkdownRenderer initializes the glamour renderer at the given width.
func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 100
	}
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	if mdRenderer != nil && mdRendererWidth == width {
		return
	}

	style := glamourstyles.LightStyleConfig
	if isDarkBG {
		style = glamourstyles.DarkStyleConfig
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
	mdRendererWidth = width
}

// renderMarkdown converts markdown text to terminal-formatted output.
func renderMarkdown(text string) string {
	mdRendererMu.Lock()
	r := mdRenderer
	mdRendererMu.Unlock()

	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// truncate shortens s to at most width terminal cells, appending "…" when
// cut. Newlines are replaced with spaces for single-line display.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath returns the config file to use. Priority:
// 1. Explicit --config flag (non-empty)
// 2. .coldcall/config.yaml (if it exists)
// 3. "" meaning built-in defaults
func resolveConfigPath(explicit, dirPath string) string {
	if explicit != "" {
		return explicit
	}

	cfgPath := filepath.Join(dirPath, "config.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath
	}

	return ""
}

// loadConfig resolves and loads the config, falling back to defaults rooted
// at dirPath. COLDCALL_LOG_LEVEL overrides log.level.
func loadConfig(explicit, dirPath string) (game.Config, error) {
	var cfg game.Config

	if path := resolveConfigPath(explicit, dirPath); path != "" {
		loaded, err := game.LoadConfig(path)
		if err != nil {
			return game.Config{}, err
		}
		cfg = loaded
	} else {
		cfg = game.DefaultConfig()
		cfg.Dir = dirPath
	}

	if lvl := os.Getenv("COLDCALL_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}

	return cfg, nil
}

// openLogger builds the session logger from cfg. The TUI owns stdout, so
// logs go to the configured file; without one they are discarded. The
// returned closer must be called on exit.
func openLogger(cfg game.Config) (*slog.Logger, io.Closer, error) {
	lvl, err := game.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogPath()
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("log: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, nil, fmt.Errorf("log: open: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}
