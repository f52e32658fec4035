package organize

import (
	"time"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/registry"
	"github.com/hookman/hookman/internal/storage"
)

// Manifest is the distribution-oriented summary of organized hooks.
// Export-only: it is not persisted to the hooks root by default.
type Manifest struct {
	Version    string                     `json:"version"`
	Generated  time.Time                  `json:"generated"`
	Tiers      map[hook.Tier]ManifestTier `json:"tiers"`
	TotalHooks int                        `json:"totalHooks"`
}

// ManifestTier summarizes one tier.
type ManifestTier struct {
	Description string         `json:"description"`
	HookCount   int            `json:"hookCount"`
	Hooks       []ManifestHook `json:"hooks"`
}

// ManifestHook is the flattened per-hook entry.
type ManifestHook struct {
	Name        string        `json:"name"`
	Category    hook.Category `json:"category"`
	Description string        `json:"description"`
	Size        int64         `json:"size"`
}

// GenerateManifest builds a manifest from the current hook view
// (registry when present, directory scan otherwise).
func (o *Organizer) GenerateManifest() (*Manifest, error) {
	categorized, err := NewStore(o.root).CategorizedHooks()
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		Version:   registry.Version,
		Generated: time.Now().UTC(),
		Tiers:     make(map[hook.Tier]ManifestTier, len(hook.Tiers)),
	}

	for _, t := range hook.Tiers {
		tier := ManifestTier{
			Description: t.Description(),
			HookCount:   len(categorized[t]),
			Hooks:       []ManifestHook{},
		}
		for _, c := range categorized[t] {
			tier.Hooks = append(tier.Hooks, ManifestHook{
				Name:        c.Name,
				Category:    c.Category,
				Description: c.Description,
				Size:        c.Size,
			})
		}
		m.Tiers[t] = tier
		m.TotalHooks += tier.HookCount
	}

	return m, nil
}

// ExportManifest writes the manifest as JSON to the given path.
func (o *Organizer) ExportManifest(path string) (*Manifest, error) {
	m, err := o.GenerateManifest()
	if err != nil {
		return nil, err
	}
	if err := storage.SaveJSON(path, m); err != nil {
		return nil, err
	}
	return m, nil
}
