package extract

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListDocuments enumerates the .xml documents under dir. With recursive set
// it walks subdirectories as well. The result is sorted so scheduling is
// stable across runs. An empty directory yields an empty slice; a missing
// one yields *DirectoryNotFoundError.
func ListDocuments(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryNotFoundError{Path: dir}
	}

	var paths []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && isDocument(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isDocument(entry.Name()) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func isDocument(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}
