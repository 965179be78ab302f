// Package discovery finds generated reference pages below an input directory.
package discovery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/refdoc/internal/discovery/errors"
	"git.home.luguber.info/inful/refdoc/internal/logfields"
)

// SourceFile is a discovered page.
type SourceFile struct {
	Path         string // Path as found by the walk (rooted at the input directory)
	RelativePath string // Path relative to the input directory
	Content      []byte // File content (loaded on demand)
}

// Filter selects pages by substrings of their slash-separated path.
type Filter struct {
	// Include lists substrings of which at least one must occur. Empty accepts everything.
	Include []string
	// Exclude lists substrings none of which may occur.
	Exclude []string
	// Suffix is a required path suffix, e.g. ".html". Empty accepts everything.
	Suffix string
}

// Accept reports whether path passes the filter.
func (f Filter) Accept(path string) bool {
	p := filepath.ToSlash(path)
	if f.Suffix != "" && !strings.HasSuffix(p, f.Suffix) {
		return false
	}
	if len(f.Include) > 0 && !containsAny(p, f.Include) {
		return false
	}
	return !containsAny(p, f.Exclude)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Discover walks root in lexical order and returns the files accepted by accept.
// accept receives the walked path, which begins with root.
func Discover(root string, accept func(path string) bool) ([]SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", derrors.ErrInputDirNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrDirWalkFailed, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", derrors.ErrInputNotDirectory, root)
	}

	var files []SourceFile
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !accept(path) {
			slog.Debug("Skipping file", logfields.Path(path))
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: %w", derrors.ErrInvalidRelativePath, err)
		}

		files = append(files, SourceFile{
			Path:         path,
			RelativePath: filepath.ToSlash(relPath),
		})
		slog.Debug("Discovered file", logfields.File(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrDirWalkFailed, root, err)
	}

	slog.Info("Source files discovered", logfields.Path(root), logfields.Count(len(files)))
	return files, nil
}

// LoadContent reads the file content once.
func (sf *SourceFile) LoadContent() error {
	if sf.Content != nil {
		return nil
	}

	content, err := os.ReadFile(sf.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, sf.Path, err)
	}

	sf.Content = content
	return nil
}
