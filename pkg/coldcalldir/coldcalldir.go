// Package coldcalldir encapsulates all path knowledge for the .coldcall/
// project directory. It provides a Dir value object with accessors for the
// config file, the techniques file and the local (gitignored) runtime
// directory that holds the session log.
package coldcalldir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a .coldcall/ directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure or Bootstrap to
// create the directory layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the .coldcall/ directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the main config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// TechniquesPath returns the path to the techniques file.
func (d Dir) TechniquesPath() string { return filepath.Join(d.root, "techniques.yaml") }

// LocalDir returns the path to the local (gitignored) runtime directory.
func (d Dir) LocalDir() string { return filepath.Join(d.root, "local") }

// LogPath returns the default session log path inside local/.
func (d Dir) LogPath() string { return filepath.Join(d.root, "local", "coldcall.log") }

// GitignorePath returns the path to the .gitignore file inside .coldcall/.
func (d Dir) GitignorePath() string { return filepath.Join(d.root, ".gitignore") }

// Exists reports whether the .coldcall/ root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// HasConfig reports whether config.yaml exists.
func (d Dir) HasConfig() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
