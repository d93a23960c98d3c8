// =============================================================================
// Dataset Report Tools - File Manager Utility
// =============================================================================
//
// This module provides input discovery and directory management shared by all
// tools:
//   - Case-insensitive TC*.txt discovery for the text pipelines
//   - Case folder and *ProductList*/*Sales* discovery for the sales pipeline
//   - Directory creation helpers
//
// All listings come back sorted by name so batches process in a
// deterministic order.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates dir (with parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// ListTCFiles returns the TC*.txt files directly inside folder, matched
// case-insensitively on both the "tc" prefix and the ".txt" extension, sorted
// by file name.
func ListTCFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasPrefix(lower, "tc") && strings.HasSuffix(lower, ".txt") {
			files = append(files, filepath.Join(folder, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ListCaseFolders returns the subdirectories of base, sorted by name. Each
// one is a test case for the sales pipeline.
func ListCaseFolders(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", base, err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, filepath.Join(base, e.Name()))
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// FindMatching returns the files in folder whose name contains substr and
// ends in ext, both matched case-insensitively, sorted by file name.
func FindMatching(folder, substr, ext string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	substr = strings.ToLower(substr)
	ext = strings.ToLower(ext)

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.Contains(lower, substr) && strings.HasSuffix(lower, ext) {
			files = append(files, filepath.Join(folder, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
