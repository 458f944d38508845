package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
)

var exampleRegexp = regexp.MustCompile(`(?i)^[^.].*\.csv$`)

// DiscoverFiles returns paths to example CSV files beneath root, sorted.
func DiscoverFiles(root string) ([]string, error) {
	entries := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if exampleRegexp.MatchString(d.Name()) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover examples: %w", err)
	}
	sort.Strings(entries)
	return entries, nil
}
