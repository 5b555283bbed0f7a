package language

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want Extension
	}{
		{"main.go", ".go"},
		{"src/lib/Widget.CPP", ".cpp"},
		{"/abs/path/archive.tar.gz", ".gz"},
		{"Makefile", ""},
		{"dir.with.dots/README", ""},
		{".bashrc", ""},
		{".env.local", ".local"},
		{"..hidden", ".hidden"},
		{"..py", ".py"},
		{"dir/..go", ".go"},
		{"...x", ".x"},
		{"...", "."},
		{"..", ""},
		{".", ""},
		{"trailing.", "."},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtensionOf(tc.path))
		})
	}
}

func TestClassify(t *testing.T) {
	table := Default()

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"app.py", "Python"},
		{"index.ts", "TypeScript"},
		{"README.md", "Markdown"},
		{"lib.rs", "Rust"},
		{"Program.cs", "C#"},
		{"engine.cc", "C++"},
		{"shader.cginc", "CG"},
		{"water.frag", "GLSL"},
		{"build.bat", "Shell"},
		{"layout.xml", "XML"},
		{"nested/dir/query.sql", "SQL"},
		{"scripts/..py", "Python"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := table.Classify(tc.path)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	table := Default()

	for _, name := range []string{"a.cpp", "a.CPP", "a.Cpp", "a.cPp"} {
		got, ok := table.Classify(name)
		require.True(t, ok, name)
		assert.Equal(t, "C++", got, name)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	table := Default()

	for _, name := range []string{"LICENSE", "Dockerfile", ".gitignore", "photo.jpeg", "notes.", ""} {
		got, ok := table.Classify(name)
		assert.False(t, ok, name)
		assert.Empty(t, got, name)
	}
}

func TestClassify_EarlierEntryWins(t *testing.T) {
	table := Default()

	tests := []struct {
		path string
		want string
	}{
		{"header.h", "C"},
		{"solver.m", "MATLAB"},
		{"script.pl", "Perl"},
		{"Program.fs", "F#"},
		// Non-shared extensions of the losing entries still classify.
		{"view.mm", "Objective-C"},
		{"rules.pro", "Prolog"},
		{"types.hpp", "C++"},
		{"blur.vert", "GLSL"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				got, ok := table.Classify(tc.path)
				require.True(t, ok)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestDefault_Order(t *testing.T) {
	entries := Default().Entries()

	position := make(map[string]int, len(entries))
	for i, e := range entries {
		position[e.Name] = i
	}

	// Relative order inherited from the desktop host's table.
	historical := []string{
		"Assembly", "C", "C++", "C#", "CG", "CSS", "GLSL", "Go", "HLSL", "HTML",
		"Ini", "JSON", "Java", "JavaScript", "Lua", "MATLAB", "Makefile",
		"Markdown", "MaxScript", "Objective-C", "Perl", "PHP", "Python", "R",
		"Ruby", "Rust", "Shaderlab", "Shell", "SQL", "Swift", "TypeScript", "XML",
	}
	for i := 1; i < len(historical); i++ {
		prev, cur := historical[i-1], historical[i]
		require.Contains(t, position, prev)
		require.Contains(t, position, cur)
		assert.Less(t, position[prev], position[cur], "%s must precede %s", prev, cur)
	}

	assert.Equal(t, "Assembly", entries[0].Name)
	assert.Equal(t, len(entries), Default().Len())
}

func TestDefault_Shadowed(t *testing.T) {
	want := []Shadow{
		{Extension: ".h", Loser: "C++", Winner: "C"},
		{Extension: ".fs", Loser: "GLSL", Winner: "F#"},
		{Extension: ".m", Loser: "Objective-C", Winner: "MATLAB"},
		{Extension: ".pl", Loser: "Prolog", Winner: "Perl"},
	}
	assert.Equal(t, want, Default().Shadowed())
}

func TestDefault_Shared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestNewTable_OrderDecides(t *testing.T) {
	forward, err := NewTable([]Entry{
		{Name: "First", Extensions: []string{".x"}},
		{Name: "Second", Extensions: []string{".x", ".y"}},
	})
	require.NoError(t, err)

	reversed, err := NewTable([]Entry{
		{Name: "Second", Extensions: []string{".x", ".y"}},
		{Name: "First", Extensions: []string{".x"}},
	})
	require.NoError(t, err)

	got, _ := forward.Classify("a.x")
	assert.Equal(t, "First", got)
	got, _ = reversed.Classify("a.x")
	assert.Equal(t, "Second", got)

	got, _ = forward.Classify("a.y")
	assert.Equal(t, "Second", got)
}

func TestNewTable_Normalizes(t *testing.T) {
	table, err := NewTable([]Entry{
		{Name: "Upper", Extensions: []string{".ABC", ".abc"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{".abc"}, table.Entries()[0].Extensions)

	got, ok := table.Lookup(".Abc")
	require.True(t, ok)
	assert.Equal(t, "Upper", got)
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		entries     []Entry
		errContains string
	}{
		{
			name:        "empty name",
			entries:     []Entry{{Name: "", Extensions: []string{".a"}}},
			errContains: "empty language name",
		},
		{
			name: "duplicate name",
			entries: []Entry{
				{Name: "A", Extensions: []string{".a"}},
				{Name: "A", Extensions: []string{".b"}},
			},
			errContains: "duplicate language name",
		},
		{
			name:        "missing dot",
			entries:     []Entry{{Name: "A", Extensions: []string{"a"}}},
			errContains: "must start with a dot",
		},
		{
			name:        "bare dot",
			entries:     []Entry{{Name: "A", Extensions: []string{"."}}},
			errContains: "must start with a dot",
		},
		{
			name:        "separator",
			entries:     []Entry{{Name: "A", Extensions: []string{".a/b"}}},
			errContains: "path separator",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	table := Default()

	entries := table.Entries()
	entries[0].Name = "Mutated"
	entries[1].Extensions[0] = ".zzz"

	fresh := table.Entries()
	assert.Equal(t, "Assembly", fresh[0].Name)
	assert.Equal(t, ".c", fresh[1].Extensions[0])

	got, ok := table.Classify("main.c")
	require.True(t, ok)
	assert.Equal(t, "C", got)
}

func TestClassify_ConcurrentReads(t *testing.T) {
	table := Default()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				got, ok := table.Classify("x.h")
				if !ok || got != "C" {
					t.Errorf("Classify(x.h) = %q, %v", got, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
