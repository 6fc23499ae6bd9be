// Package vfs resolves UI asset paths through the engine's layered search
// order: the game filesystem (mod dirs over packed archives) first, then a
// basedir-relative fallback for loose files that live outside any game
// search path (top-level UI assets).
package vfs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound reports a miss at every search tier
var ErrNotFound = errors.New("vfs: file not found")

// GameFS is the engine-side search path primitive (tier 1)
// Implementations encode mod-override precedence and archive membership
type GameFS interface {
	// OpenFile resolves a path through the engine search order
	// pak reports archive membership; start/length bound the window
	OpenFile(name string) (f *os.File, pak bool, start, length int64, err error)
}

// Resolver is the two-tier UI asset resolver
type Resolver struct {
	game    GameFS // may be nil when no game filesystem is mounted
	baseDir string // tier 2 root, empty disables the fallback
	log     *slog.Logger
}

// NewResolver creates a resolver over a game filesystem and a basedir fallback
func NewResolver(game GameFS, baseDir string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{game: game, baseDir: baseDir, log: log}
}

// Open resolves name and returns a bounded handle
// Tier 1 (game filesystem) wins over tier 2 (basedir); a miss at both tiers
// returns ErrNotFound. Never panics across the boundary
func (r *Resolver) Open(name string) (*Handle, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return nil, err
	}

	if r.game != nil {
		f, pak, start, length, err := r.game.OpenFile(clean)
		if err == nil {
			return &Handle{file: f, pak: pak, start: start, length: length}, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("vfs: open %q: %w", clean, err)
		}
	}

	if r.baseDir != "" {
		full := filepath.Join(r.baseDir, filepath.FromSlash(clean))
		f, err := os.Open(full)
		if err == nil {
			info, err := f.Stat()
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("vfs: stat %q: %w", clean, err)
			}
			return &Handle{file: f, length: info.Size()}, nil
		}
	}

	r.log.Debug("vfs miss", "path", clean)
	return nil, fmt.Errorf("vfs: %q: %w", clean, ErrNotFound)
}

// cleanPath normalizes to slash form and rejects escapes above the root
func cleanPath(name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	clean = strings.TrimPrefix(clean, "/")
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("vfs: path escapes root: %q: %w", name, ErrNotFound)
	}
	return clean, nil
}
