package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// enumerateInputs resolves the input path to the ordered list of HTML files
// to process. A regular file is taken as-is; a directory yields its .html
// entries (non-recursive) sorted by name so run order is deterministic. A
// missing or unreadable path is fatal for the whole run.
func enumerateInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".html") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// baseNameOf strips the directory and extension from a source path; it
// seeds every output file name for that source.
func baseNameOf(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
