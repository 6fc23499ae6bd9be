package vfs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Member is one file's window inside a packed archive
type Member struct {
	Offset int64
	Length int64
}

// Archive is a mounted packed container: one shared descriptor plus a
// pre-parsed member table. Container format parsing belongs to the host;
// the table is supplied ready-made
type Archive struct {
	File    *os.File
	Members map[string]Member
}

// GameDir is one search tier: a directory of loose files plus the archives
// mounted from it. Loose files override archive members within the tier
type GameDir struct {
	Path     string
	Archives []*Archive
}

// SearchPath is the default GameFS: an ordered list of game directories
// where later entries (active mods) override earlier ones (base game)
type SearchPath struct {
	dirs []GameDir
}

// NewSearchPath creates an empty search path
func NewSearchPath() *SearchPath {
	return &SearchPath{}
}

// AddGameDir appends a game directory; it takes precedence over all
// directories added before it
func (sp *SearchPath) AddGameDir(dir GameDir) {
	sp.dirs = append(sp.dirs, dir)
}

// OpenFile implements GameFS
// Search runs newest game dir first; within a dir, loose files win over
// archive members, and later-mounted archives win over earlier ones
func (sp *SearchPath) OpenFile(name string) (*os.File, bool, int64, int64, error) {
	for i := len(sp.dirs) - 1; i >= 0; i-- {
		dir := sp.dirs[i]

		if dir.Path != "" {
			full := filepath.Join(dir.Path, filepath.FromSlash(name))
			if f, err := os.Open(full); err == nil {
				info, err := f.Stat()
				if err != nil {
					f.Close()
					return nil, false, 0, 0, fmt.Errorf("vfs: stat %q: %w", name, err)
				}
				return f, false, 0, info.Size(), nil
			}
		}

		for j := len(dir.Archives) - 1; j >= 0; j-- {
			ar := dir.Archives[j]
			if m, ok := ar.Members[name]; ok {
				return ar.File, true, m.Offset, m.Length, nil
			}
		}
	}
	return nil, false, 0, 0, ErrNotFound
}
