// Package locate finds the input files and test directories that the
// pipelines work on.
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDirectory indicates a path that is missing or is not a directory.
var ErrNotDirectory = errors.New("not a valid directory")

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RequireDir returns ErrNotDirectory unless path is a directory.
func RequireDir(path string) error {
	if !IsDir(path) {
		return fmt.Errorf("%w: '%s'", ErrNotDirectory, path)
	}
	return nil
}

// Files returns the files directly inside dir whose names match the glob
// pattern, sorted by name. Only the base name is matched against pattern,
// so dir itself may contain glob metacharacters.
func Files(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// SubDirs returns the names of the directories directly inside dir whose
// names contain marker, sorted. An empty marker matches every directory.
func SubDirs(dir, marker string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), marker) {
			dirs = append(dirs, entry.Name())
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
