// Package registry manages the hook registry persisted at
// <hooksRoot>/hook-registry.json.
package registry

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/storage"
)

// FileName is the registry file name inside the hooks root.
const FileName = "hook-registry.json"

// Version is written into every saved registry.
const Version = "1.0"

// Registry indexes all organized hooks by name and by tier.
// Invariant: the keys of Hooks equal the disjoint union of all Tiers slices.
type Registry struct {
	Version     string                 `json:"version"`
	LastUpdated time.Time              `json:"lastUpdated"`
	Hooks       map[string]hook.Record `json:"hooks"`
	Tiers       map[hook.Tier][]string `json:"tiers"`
}

// New returns an empty registry with all tier indexes initialized.
func New() *Registry {
	tiers := make(map[hook.Tier][]string, len(hook.Tiers))
	for _, t := range hook.Tiers {
		tiers[t] = []string{}
	}
	return &Registry{
		Version: Version,
		Hooks:   map[string]hook.Record{},
		Tiers:   tiers,
	}
}

// Path returns the registry file path for a hooks root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the registry from the hooks root.
// Returns os.ErrNotExist (wrapped) when no registry has been written yet;
// callers treat that as a signal to fall back to a directory scan.
func Load(root string) (*Registry, error) {
	var reg Registry
	if err := storage.LoadJSON(Path(root), &reg); err != nil {
		return nil, err
	}
	if reg.Hooks == nil {
		reg.Hooks = map[string]hook.Record{}
	}
	if reg.Tiers == nil {
		reg.Tiers = map[hook.Tier][]string{}
	}
	for _, t := range hook.Tiers {
		if reg.Tiers[t] == nil {
			reg.Tiers[t] = []string{}
		}
	}
	return &reg, nil
}

// Save atomically writes the registry to the hooks root,
// stamping LastUpdated.
func (r *Registry) Save(root string) error {
	r.LastUpdated = time.Now().UTC()
	if err := storage.SaveJSON(Path(root), r); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

// Put records a hook, replacing any previous entry and keeping the tier
// indexes consistent: the name appears in exactly one tier slice.
func (r *Registry) Put(rec hook.Record) {
	for t, names := range r.Tiers {
		if i := slices.Index(names, rec.Name); i >= 0 {
			r.Tiers[t] = slices.Delete(names, i, i+1)
		}
	}
	r.Hooks[rec.Name] = rec
	r.Tiers[rec.Tier] = append(r.Tiers[rec.Tier], rec.Name)
}

// Move reassigns a registered hook to a new tier and path.
// Returns an error if the hook is unknown or not in fromTier.
func (r *Registry) Move(name string, from, to hook.Tier, newPath string) error {
	rec, ok := r.Hooks[name]
	if !ok {
		return fmt.Errorf("hook not registered: %s", name)
	}
	if rec.Tier != from {
		return fmt.Errorf("hook %s is in %s, not %s", name, rec.Tier, from)
	}

	rec.Tier = to
	rec.CurrentPath = newPath
	rec.Importance = hook.ImportanceForTier(to)
	r.Put(rec)
	return nil
}

// Names returns the hook names indexed under a tier.
func (r *Registry) Names(t hook.Tier) []string {
	return r.Tiers[t]
}

// Categorized rebuilds the tier-to-hooks view from the registry records,
// preserving tier index order. No directory walk involved.
func (r *Registry) Categorized() map[hook.Tier][]hook.Categorized {
	result := make(map[hook.Tier][]hook.Categorized, len(hook.Tiers))
	for _, t := range hook.Tiers {
		result[t] = []hook.Categorized{}
		for _, name := range r.Tiers[t] {
			rec, ok := r.Hooks[name]
			if !ok {
				continue
			}
			result[t] = append(result[t], rec.Categorize())
		}
	}
	return result
}
