package survey

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3aro/go-langsurvey/internal/log"
	"github.com/l3aro/go-langsurvey/internal/scanner"
	"github.com/l3aro/go-langsurvey/pkg/language"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, path := range files {
		fullPath := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, nil, 0644))
	}
}

func TestSurvey_FirstSeenOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "a.py", "b/c.py", "b/d.md", "e")

	got, err := Survey(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Markdown"}, got)
}

func TestSurvey_NotTableOrder(t *testing.T) {
	tmpDir := t.TempDir()
	// Traversal order: 1.ts, 2/x.c, 3.go -- the reverse of table order.
	writeTree(t, tmpDir, "1.ts", "2/x.c", "3.go")

	got, err := Survey(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"TypeScript", "C", "Go"}, got)
}

func TestReport_SampleProject(t *testing.T) {
	root := filepath.Join("..", "..", "testdata", "sample_project")

	res, err := New(nil).Report(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Markdown", "Go", "Shell", "TypeScript", "HTML"}, res.Languages)
	assert.Equal(t, 6, res.Files)
	assert.Equal(t, 1, res.Unclassified)
}

func TestSurvey_KnownExtensionsOnly(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir,
		"src/main.go", "src/util.go", "src/UTIL_TEST.GO",
		"web/app.JS", "web/index.html", "web/style.css",
		"docs/guide.md", "docs/more/api.md",
	)

	got, err := Survey(tmpDir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Markdown", "Go", "JavaScript", "HTML", "CSS"}, got)
	assert.Len(t, got, 5)
}

func TestSurvey_UnclassifiedContributeNothing(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "LICENSE", "Dockerfile", ".gitignore", "logo.png", "data.bin")

	got, err := Survey(tmpDir)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSurvey_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "z.rs", "m/n.h", "m/o.m", "a/b/c.pl", "q.sql", "a/x.py")

	s := New(nil)
	first, err := s.Survey(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Perl", "Python", "C", "MATLAB", "SQL", "Rust"}, first)

	for i := 0; i < 3; i++ {
		again, err := s.Survey(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSurvey_RootNotFound(t *testing.T) {
	got, err := Survey(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, got)
}

func TestSurvey_RootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "main.go")

	got, err := Survey(filepath.Join(tmpDir, "main.go"))
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrNotDirectory)
	assert.Nil(t, got)
}

func TestSurvey_ListingFailureReturnsNoPartialResult(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "a.py", "b/c.go", "c.rs")

	// "b" disappears after a.py was classified but before it is listed.
	s := New(nil)
	s.afterVisit = func(path string) {
		if filepath.Base(path) == "a.py" {
			require.NoError(t, os.RemoveAll(filepath.Join(tmpDir, "b")))
		}
	}

	res, err := s.Report(tmpDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, res)
}

func TestReport_Counts(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "a.go", "b.go", "c.md", "d/e.go", "d/f.txt", "g")

	res, err := New(nil).Report(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, res.Root)
	assert.Equal(t, []string{"Go", "Markdown"}, res.Languages)
	assert.Equal(t, []LanguageCount{
		{Language: "Go", Files: 3},
		{Language: "Markdown", Files: 1},
	}, res.Counts)
	assert.Equal(t, 6, res.Files)
	assert.Equal(t, 2, res.Unclassified)
}

func TestSurvey_CustomTable(t *testing.T) {
	table, err := language.NewTable([]language.Entry{
		{Name: "Objective-C", Extensions: []string{".m"}},
		{Name: "MATLAB", Extensions: []string{".m"}},
	})
	require.NoError(t, err)

	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "x.m", "y.go")

	got, err := New(table).Survey(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Objective-C"}, got)
}

func TestSurvey_FollowSymlinksOption(t *testing.T) {
	tmpDir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, "lib.rs")
	writeTree(t, tmpDir, "real/app.py")
	if err := os.Symlink(filepath.Join(outside, "lib.rs"), filepath.Join(tmpDir, "lib.rs")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "real", "app.py"), filepath.Join(tmpDir, "alias.go")))

	got, err := New(nil).Survey(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, got)

	got, err = New(nil, WithScannerOptions(scanner.Options{FollowSymlinks: true})).Survey(tmpDir)
	require.NoError(t, err)
	// The link name decides the language; the escaping link is skipped.
	assert.Equal(t, []string{"Go", "Python"}, got)
}

func TestSurvey_Concurrent(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeTree(t, first, "a.go", "b.py")
	writeTree(t, second, "a.rb", "b.swift", "c.go")

	s := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root, want := first, []string{"Go", "Python"}
			if i%2 == 1 {
				root, want = second, []string{"Ruby", "Swift", "Go"}
			}
			got, err := s.Survey(root)
			if assert.NoError(t, err) {
				assert.Equal(t, want, got)
			}
		}(i)
	}
	wg.Wait()
}

func TestSurvey_Logs(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "a.go")

	var buf bytes.Buffer
	logger := log.New(log.LoggerConfig{Level: log.DebugLevel, Output: &buf})

	_, err := New(nil, WithLogger(logger)).Survey(tmpDir)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "survey started")
	assert.Contains(t, buf.String(), "survey finished")
	assert.Contains(t, buf.String(), "languages=1")
}
