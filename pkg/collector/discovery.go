package collector

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are skipped during local discovery regardless of the
// configured patterns.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
}

// Discover walks rootDir for HTML and CSS files, applying doublestar
// exclude patterns against slash-separated paths relative to the root.
// Results are sorted so extraction order is stable.
func Discover(rootDir string, excludes []string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	patterns := append(append([]string{}, DefaultExcludes...), excludes...)

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range patterns {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".css", ".html", ".htm":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
