// Package testutil holds filesystem fixtures and assertions shared by the
// integration tests of the conversion driver and the CLI.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)

// WriteTree creates files below a fresh directory named name inside t.TempDir
// and returns that directory. Keys are slash-separated relative paths.
func WriteTree(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(root, testDirPermissions); err != nil {
		t.Fatalf("create %s: %v", root, err)
	}
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), testDirPermissions); err != nil {
			t.Fatalf("create parent of %s: %v", full, err)
		}
		if err := os.WriteFile(full, []byte(content), testFilePermissions); err != nil {
			t.Fatalf("write %s: %v", full, err)
		}
	}
	return root
}

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper rooted at baseDir.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(relativePath, expected string) *FileAssertions {
	fa.t.Helper()
	if content, ok := fa.read(relativePath); ok && !strings.Contains(content, expected) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s", relativePath, expected, content)
	}
	return fa
}

// AssertFileEquals validates the complete content of a file.
func (fa *FileAssertions) AssertFileEquals(relativePath, expected string) *FileAssertions {
	fa.t.Helper()
	if content, ok := fa.read(relativePath); ok && content != expected {
		fa.t.Errorf("File %s differs\nExpected:\n%s\nActual:\n%s", relativePath, expected, content)
	}
	return fa
}

// AssertFiles validates that the base directory holds exactly names.
func (fa *FileAssertions) AssertFiles(names ...string) *FileAssertions {
	fa.t.Helper()
	entries, err := os.ReadDir(fa.baseDir)
	if err != nil {
		fa.t.Errorf("Failed to read directory %s: %v", fa.baseDir, err)
		return fa
	}
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	want := append([]string(nil), names...)
	sort.Strings(want)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		fa.t.Errorf("Directory %s holds %v, expected %v", fa.baseDir, got, want)
	}
	return fa
}

func (fa *FileAssertions) read(relativePath string) (string, bool) {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return "", false
	}
	return string(content), true
}
