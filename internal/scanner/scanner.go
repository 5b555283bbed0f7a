// Package scanner walks a directory tree and reports every regular file in it.
//
// Entries are visited depth-first in name order, so repeated walks over an
// unchanged tree visit files in the same order. Symlinks are not followed by
// default; with FollowSymlinks, only symlinks to regular files inside the root
// are visited and directory symlinks are never entered, so a walk always
// terminates.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when the walk root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// VisitFunc is called with the full path of each regular file.
// A non-nil error stops the walk and is returned by Walk.
type VisitFunc func(path string) error

// Options configures the scanner behavior.
type Options struct {
	FollowSymlinks bool // Visit symlinks to regular files within root
}

// DefaultOptions returns scanner options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		FollowSymlinks: false,
	}
}

// Scanner provides file tree walking.
type Scanner struct {
	opts Options
}

// New creates a new Scanner with the given options.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Walk calls visit for every regular file under root.
//
// Any failure to list a directory aborts the walk; the returned error wraps
// the underlying one, so errors.Is(err, fs.ErrPermission) and friends still
// match.
func (s *Scanner) Walk(root string, visit VisitFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	w := &walk{opts: s.opts, visit: visit}
	if s.opts.FollowSymlinks {
		// Symlink targets are checked against the resolved root.
		w.root, err = filepath.EvalSymlinks(root)
		if err != nil {
			return fmt.Errorf("resolving root: %w", err)
		}
		w.root, err = filepath.Abs(w.root)
		if err != nil {
			return fmt.Errorf("getting absolute path: %w", err)
		}
	}

	return w.dir(root)
}

type walk struct {
	opts  Options
	root  string
	visit VisitFunc
}

func (w *walk) dir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch mode := entry.Type(); {
		case mode.IsRegular():
			if err := w.visit(path); err != nil {
				return err
			}
		case mode.IsDir():
			if err := w.dir(path); err != nil {
				return err
			}
		case mode&fs.ModeSymlink != 0:
			if w.opts.FollowSymlinks && w.linksToFileInRoot(path) {
				if err := w.visit(path); err != nil {
					return err
				}
			}
		}
		// Sockets, devices and named pipes are skipped.
	}

	return nil
}

// linksToFileInRoot reports whether path is a symlink resolving to a regular
// file inside the walk root. Broken links resolve to nothing and are skipped.
func (w *walk) linksToFileInRoot(path string) bool {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	realAbs, err := filepath.Abs(realPath)
	if err != nil {
		return false
	}
	if !strings.HasPrefix(realAbs, w.root+string(filepath.Separator)) {
		return false
	}
	info, err := os.Stat(realAbs)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Walk walks root with default options.
func Walk(root string, visit VisitFunc) error {
	return New(DefaultOptions()).Walk(root, visit)
}
