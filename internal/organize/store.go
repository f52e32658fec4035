package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hookman/hookman/internal/categorize"
	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/registry"
)

// Store provides the current tier-grouped view of organized hooks.
type Store interface {
	CategorizedHooks() (map[hook.Tier][]hook.Categorized, error)
}

// NewStore selects the retrieval strategy once, based on registry
// presence: the registry file is the fast path, a recursive directory
// scan is the recovery path after partial failures or manual edits.
func NewStore(root string) Store {
	if _, err := os.Stat(registry.Path(root)); err == nil {
		return &RegistryStore{root: root}
	}
	return &ScanStore{root: root}
}

// RegistryStore reads hooks straight from hook-registry.json.
// No directory walk involved.
type RegistryStore struct {
	root string
}

// CategorizedHooks rebuilds the tier view from the registry records.
func (s *RegistryStore) CategorizedHooks() (map[hook.Tier][]hook.Categorized, error) {
	reg, err := registry.Load(s.root)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	return reg.Categorized(), nil
}

// ScanStore reconstructs the tier view by scanning the tier directories,
// including nested subdirectories (required for utils).
type ScanStore struct {
	root string
}

// CategorizedHooks walks each tier directory and builds minimal records
// from on-disk state. Tier comes from the directory, category and
// description from name heuristics.
func (s *ScanStore) CategorizedHooks() (map[hook.Tier][]hook.Categorized, error) {
	result := make(map[hook.Tier][]hook.Categorized, len(hook.Tiers))

	for _, t := range hook.Tiers {
		result[t] = []hook.Categorized{}

		dir := filepath.Join(s.root, string(t))
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*.py"))
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t, err)
		}

		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", path, err)
			}
			if info.IsDir() {
				continue
			}

			name := filepath.Base(path)
			result[t] = append(result[t], hook.Categorized{
				File: hook.File{
					Name:     name,
					Path:     path,
					Size:     info.Size(),
					Modified: info.ModTime(),
				},
				Tier:        t,
				Category:    categorize.CategoryFor(name),
				Description: categorize.Describe(name),
				Importance:  hook.ImportanceForTier(t),
			})
		}
	}

	return result, nil
}
