// Package levels turns YAML level files into engine definitions. It
// depends on engine; engine does not depend on levels and never does
// file I/O itself.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/inertia/internal/engine"
)

// Entry is one loadable level: its identifier, the parsed definition,
// and the file it came from (empty for built-in levels).
type Entry struct {
	ID       string
	Def      engine.Definition
	FilePath string
}

// Parse unmarshals and validates one level document.
func Parse(data []byte) (engine.Definition, error) {
	var def engine.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return engine.Definition{}, fmt.Errorf("levels: parsing: %w", err)
	}
	if err := def.Validate(); err != nil {
		return engine.Definition{}, fmt.Errorf("levels: %w", err)
	}
	return def, nil
}

// Loader loads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans the root for .yaml/.yml files and loads
// every valid level, sorted by ID for deterministic ordering. Files that
// fail to parse are skipped.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		entry, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// LoadFile loads a single level file. The ID is the file name without
// its extension.
func (l *Loader) LoadFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Entry{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	return Entry{
		ID:       idFromPath(path),
		Def:      def,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Entry, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("levels: level not found: %s", id)
}

// All returns the built-in levels followed by any levels found under
// root (when root is non-empty). A directory level with the same ID as
// a built-in replaces it.
func All(root string) ([]Entry, error) {
	entries := Builtin()
	if root == "" {
		return entries, nil
	}

	loaded, err := NewLoader(root).LoadAll()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, err
	}

	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}
	for _, e := range loaded {
		if i, ok := byID[e.ID]; ok {
			entries[i] = e
		} else {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Find returns the entry with the given ID from the combined set.
func Find(root, id string) (Entry, error) {
	entries, err := All(root)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("levels: level not found: %s", id)
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
