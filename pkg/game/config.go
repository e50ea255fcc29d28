package game

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/germanamz/coldcall/pkg/session"
	"github.com/germanamz/coldcall/pkg/technique"
	"gopkg.in/yaml.v3"
)

// Config is the top-level game configuration.
type Config struct {
	Dir            string        `yaml:"-"` // Directory of the config file, set by LoadConfig.
	TechniquesFile string        `yaml:"techniques_file"`
	Rules          session.Rules `yaml:"rules"`
	Timer          TimerConfig   `yaml:"timer"`
	Log            LogConfig     `yaml:"log"`
}

// TimerConfig holds the tick and notification timings as duration strings
// (e.g. "1s", "500ms").
type TimerConfig struct {
	TickInterval    string `yaml:"tick_interval"`
	NotificationTTL string `yaml:"notification_ttl"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error.
	File  string `yaml:"file"`  // Relative to Dir unless absolute. Empty disables logging.
}

const (
	defaultTickInterval    = time.Second
	defaultNotificationTTL = 3 * time.Second
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Rules: session.DefaultRules(),
		Timer: TimerConfig{
			TickInterval:    defaultTickInterval.String(),
			NotificationTTL: defaultNotificationTTL.String(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing. Fields missing from the file keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("game: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("game: parse config: %w", err)
	}

	cfg.Dir = filepath.Dir(path)
	cfg.Rules = cfg.Rules.WithDefaults()

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if err := c.Rules.WithDefaults().Validate(); err != nil {
		return fmt.Errorf("game: config: %w", err)
	}

	if _, err := c.TickInterval(); err != nil {
		return err
	}
	if _, err := c.NotificationTTL(); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("game: config: %w", err)
	}

	return nil
}

// TickInterval returns the parsed timer tick interval.
func (c Config) TickInterval() (time.Duration, error) {
	return parsePositiveDuration("timer.tick_interval", c.Timer.TickInterval, defaultTickInterval)
}

// NotificationTTL returns how long a notification stays before auto-clear.
func (c Config) NotificationTTL() (time.Duration, error) {
	return parsePositiveDuration("timer.notification_ttl", c.Timer.NotificationTTL, defaultNotificationTTL)
}

func parsePositiveDuration(field, s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("game: config: %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("game: config: %s must be positive, got %s", field, s)
	}
	return d, nil
}

// TechniquesPath returns the techniques file resolved against Dir, or an
// empty string when the built-in table should be used.
func (c Config) TechniquesPath() string {
	return c.resolve(c.TechniquesFile)
}

// LogPath returns the log file resolved against Dir, or an empty string when
// logging is disabled.
func (c Config) LogPath() string {
	return c.resolve(c.Log.File)
}

func (c Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// LoadTable returns the technique table named by TechniquesFile, or the
// built-in table when none is configured.
func (c Config) LoadTable() (*technique.Table, error) {
	path := c.TechniquesPath()
	if path == "" {
		return technique.Default(), nil
	}
	return technique.LoadFile(path)
}

// ParseLogLevel maps a level name to a slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
