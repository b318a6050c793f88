package report

import (
	"fmt"
	"os"
	"sort"
)

// DiscoverThemes lists the immediate subdirectories of the legacy themes root;
// each subdirectory name is a theme identifier. A missing or unreadable root
// is an error the caller is expected to treat as fatal.
func DiscoverThemes(root string, sorted bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes directory %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	if sorted {
		sort.Strings(names)
	}

	return names, nil
}
