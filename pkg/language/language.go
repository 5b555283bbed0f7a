// Package language maps file extensions to language names using an ordered
// table. When an extension is listed under more than one language, the entry
// that appears first in the table wins.
package language

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extension is a lower-cased file name suffix including its leading dot, e.g. ".cpp".
type Extension string

// Entry is a named language with the extensions recognized for it.
type Entry struct {
	Name       string   `json:"name" yaml:"name" msgpack:"name"`
	Extensions []string `json:"extensions" yaml:"extensions" msgpack:"extensions"`
}

// Shadow describes an extension listed under Loser that can never be
// classified as Loser because Winner appears earlier in the table.
type Shadow struct {
	Extension Extension `json:"extension" yaml:"extension"`
	Loser     string    `json:"loser" yaml:"loser"`
	Winner    string    `json:"winner" yaml:"winner"`
}

// Table is an ordered, immutable sequence of language entries.
// It is safe for concurrent use.
type Table struct {
	entries []Entry
	index   map[Extension]int // extension -> position of the winning entry
}

// NewTable builds a table from entries, preserving their order.
// Extensions are normalized to lower case.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Extension]int),
	}

	names := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: empty language name", i)
		}
		if names[e.Name] {
			return nil, fmt.Errorf("entry %d: duplicate language name %q", i, e.Name)
		}
		names[e.Name] = true

		exts := make([]string, 0, len(e.Extensions))
		own := make(map[Extension]bool, len(e.Extensions))
		for _, raw := range e.Extensions {
			ext, err := normalize(raw)
			if err != nil {
				return nil, fmt.Errorf("language %s: %w", e.Name, err)
			}
			if own[ext] {
				continue
			}
			own[ext] = true
			exts = append(exts, string(ext))

			// First entry claiming an extension keeps it.
			if _, taken := t.index[ext]; !taken {
				t.index[ext] = i
			}
		}
		t.entries = append(t.entries, Entry{Name: e.Name, Extensions: exts})
	}

	return t, nil
}

func normalize(raw string) (Extension, error) {
	if len(raw) < 2 || raw[0] != '.' {
		return "", fmt.Errorf("invalid extension %q: must start with a dot", raw)
	}
	if strings.ContainsAny(raw, `/\`) {
		return "", fmt.Errorf("invalid extension %q: contains a path separator", raw)
	}
	return Extension(strings.ToLower(raw)), nil
}

// ExtensionOf returns the lower-cased extension of the file name in path, or
// "" when the name has none. A dot at the start of the name does not begin an
// extension, so ".bashrc" has none while ".env.local" has ".local" and "..py"
// has ".py". The name ".." has no extension.
func ExtensionOf(path string) Extension {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || name == ".." {
		return ""
	}
	return Extension(strings.ToLower(name[i:]))
}

// Lookup returns the name of the first entry containing ext.
func (t *Table) Lookup(ext Extension) (string, bool) {
	if ext == "" {
		return "", false
	}
	pos, ok := t.index[Extension(strings.ToLower(string(ext)))]
	if !ok {
		return "", false
	}
	return t.entries[pos].Name, true
}

// Classify returns the language of the file at path, judged by its extension only.
func (t *Table) Classify(path string) (string, bool) {
	return t.Lookup(ExtensionOf(path))
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Name: e.Name, Extensions: append([]string(nil), e.Extensions...)}
	}
	return out
}

// Shadowed lists, in table order, every extension that a later entry declares
// but an earlier entry wins.
func (t *Table) Shadowed() []Shadow {
	var shadows []Shadow
	for i, e := range t.entries {
		for _, raw := range e.Extensions {
			ext := Extension(raw)
			if pos := t.index[ext]; pos != i {
				shadows = append(shadows, Shadow{
					Extension: ext,
					Loser:     e.Name,
					Winner:    t.entries[pos].Name,
				})
			}
		}
	}
	return shadows
}
