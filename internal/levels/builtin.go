package levels

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded level set, sorted by ID. The embedded
// files are validated at build time by the loader tests; a corrupt
// embedded level is a programming error, so this panics instead of
// returning one.
func Builtin() []Entry {
	files, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded levels: %v", err))
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + f.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: reading embedded level %s: %v", f.Name(), err))
		}
		def, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("levels: embedded level %s: %v", f.Name(), err))
		}
		entries = append(entries, Entry{
			ID:  strings.TrimSuffix(f.Name(), ".yaml"),
			Def: def,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}
