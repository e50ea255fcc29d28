package coldcalldir

import (
	"errors"
	"fmt"
	"os"
)

const gitignoreContent = "local/\n"

// SkeletonConfig is written by Bootstrap when no config content is given.
// It uses the built-in technique table.
const SkeletonConfig = `rules:
  points_per_level: 100
  streak_length: 3
  streak_bonus: 20
  bonus_check: before_increment
timer:
  tick_interval: 1s
  notification_ttl: 3s
log:
  level: info
  file: local/coldcall.log
`

// Files is the content Bootstrap writes.
type Files struct {
	Config     []byte // Empty means SkeletonConfig.
	Techniques []byte // Empty means no techniques file is written.
}

// EnsureStructure creates the local/ directory and .gitignore file if they are
// missing. It is safe to call multiple times. It does NOT create the
// .coldcall/ root itself; the caller decides whether to bootstrap from
// scratch or only set up an existing directory.
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.LocalDir(), 0o750); err != nil {
		return fmt.Errorf("coldcalldir: create local dir: %w", err)
	}

	if err := ensureGitignore(d); err != nil {
		return fmt.Errorf("coldcalldir: gitignore: %w", err)
	}

	return nil
}

// Bootstrap creates the .coldcall/ root, its structure and the given files.
// Existing files are left alone unless force is set.
func Bootstrap(d Dir, files Files, force bool) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("coldcalldir: create root: %w", err)
	}

	if err := EnsureStructure(d); err != nil {
		return err
	}

	cfg := files.Config
	if len(cfg) == 0 {
		cfg = []byte(SkeletonConfig)
	}
	if err := writeFile(d.ConfigPath(), cfg, force); err != nil {
		return fmt.Errorf("coldcalldir: config: %w", err)
	}

	if len(files.Techniques) > 0 {
		if err := writeFile(d.TechniquesPath(), files.Techniques, force); err != nil {
			return fmt.Errorf("coldcalldir: techniques: %w", err)
		}
	}

	return nil
}

func writeFile(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	return os.WriteFile(path, data, 0o600)
}

// ensureGitignore creates the .gitignore file if it does not exist.
func ensureGitignore(d Dir) error {
	path := d.GitignorePath()

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(gitignoreContent), 0o600)
}
