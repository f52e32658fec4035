// Package discover finds hook scripts under a hooks root.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hookman/hookman/internal/hook"
)

// Hooks recursively finds all .py scripts under root and reads their
// content and metadata. Directories and non-Python files are skipped.
// Results are sorted by path for deterministic ordering.
func Hooks(root string) ([]hook.File, error) {
	pattern := filepath.Join(root, "**", "*.py")

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob hooks: %w", err)
	}

	var files []hook.File
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		files = append(files, hook.File{
			Name:     filepath.Base(path),
			Path:     path,
			Content:  content,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}
