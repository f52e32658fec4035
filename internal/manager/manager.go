// Package manager orchestrates the hook pipeline: discover, categorize,
// organize, select, install and report. It is the entry point the CLI
// layer uses.
package manager

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hookman/hookman/internal/categorize"
	"github.com/hookman/hookman/internal/discover"
	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/log"
	"github.com/hookman/hookman/internal/organize"
	"github.com/hookman/hookman/internal/registry"
	"github.com/hookman/hookman/internal/selection"
	"github.com/hookman/hookman/internal/storage"
)

// Manager ties the categorizer, organizer and selector together over a
// single hooks root.
type Manager struct {
	root      string
	organizer *organize.Organizer
}

// New creates a manager for the given hooks root.
func New(root string) *Manager {
	return &Manager{
		root:      root,
		organizer: organize.New(root),
	}
}

// Root returns the hooks root directory.
func (m *Manager) Root() string {
	return m.root
}

// Organizer exposes the underlying organizer for move and manifest
// operations.
func (m *Manager) Organizer() *organize.Organizer {
	return m.organizer
}

// Initialize runs the full pipeline: ensure tier directories, discover
// hooks, categorize, organize and write tier READMEs.
func (m *Manager) Initialize(ctx context.Context) (*registry.Registry, error) {
	l := log.FromContext(ctx)

	if err := m.organizer.EnsureTierDirs(); err != nil {
		return nil, err
	}

	hooks, err := discover.Hooks(m.root)
	if err != nil {
		return nil, fmt.Errorf("discover hooks: %w", err)
	}
	l.Debug("discovered hooks", "count", len(hooks))

	categorized := categorize.Categorize(hooks)

	result, err := m.organizer.Organize(categorized)
	if err != nil {
		return nil, fmt.Errorf("organize hooks: %w", err)
	}
	l.Debug("organized hooks", "moved", len(result.Moved))

	if err := m.organizer.WriteTierReadmes(); err != nil {
		return nil, err
	}

	return result.Registry, nil
}

// SelectHooks returns the install list for a project type using the
// current organized view (registry or directory scan).
func (m *Manager) SelectHooks(ctx context.Context, projectType string, prefs selection.Preferences) ([]hook.Categorized, error) {
	categorized, err := organize.NewStore(m.root).CategorizedHooks()
	if err != nil {
		return nil, err
	}
	return selection.SelectHooks(ctx, categorized, projectType, prefs), nil
}

// Installed describes one hook copied into a project.
type Installed struct {
	Name string    `json:"name"`
	Tier hook.Tier `json:"tier"`
	Path string    `json:"path"`
}

// InstallHooks copies the selected hooks into the target directory
// under their basenames.
func (m *Manager) InstallHooks(ctx context.Context, selected []hook.Categorized, target string) ([]Installed, error) {
	l := log.FromContext(ctx)

	installed := make([]Installed, 0, len(selected))
	for _, h := range selected {
		src := h.Path
		if src == "" {
			src = filepath.Join(m.root, string(h.Tier), h.Name)
		}

		dst := filepath.Join(target, filepath.Base(h.Name))
		if err := storage.CopyFile(src, dst); err != nil {
			return installed, fmt.Errorf("install %s: %w", h.Name, err)
		}

		l.Debug("installed hook", "name", h.Name, "tier", h.Tier)
		installed = append(installed, Installed{Name: h.Name, Tier: h.Tier, Path: dst})
	}

	return installed, nil
}

// StatEntry is one hook line in the stats report.
type StatEntry struct {
	Name        string        `json:"name"`
	Tier        hook.Tier     `json:"tier"`
	Category    hook.Category `json:"category"`
	Description string        `json:"description"`
}

// Stats aggregates the current hook view.
type Stats struct {
	Total  int               `json:"total"`
	ByTier map[hook.Tier]int `json:"byTier"`
	Hooks  []StatEntry       `json:"hooks"`
}

// GetStats summarizes the organized hooks per tier.
func (m *Manager) GetStats() (*Stats, error) {
	categorized, err := organize.NewStore(m.root).CategorizedHooks()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		ByTier: make(map[hook.Tier]int, len(hook.Tiers)),
		Hooks:  []StatEntry{},
	}
	for _, t := range hook.Tiers {
		stats.ByTier[t] = len(categorized[t])
		stats.Total += len(categorized[t])
		for _, h := range categorized[t] {
			stats.Hooks = append(stats.Hooks, StatEntry{
				Name:        h.Name,
				Tier:        h.Tier,
				Category:    h.Category,
				Description: h.Description,
			})
		}
	}

	return stats, nil
}

// PlanRestructure reports the moves Restructure would perform without
// changing anything.
func (m *Manager) PlanRestructure(ctx context.Context) ([]organize.Move, error) {
	hooks, err := discover.Hooks(m.root)
	if err != nil {
		return nil, fmt.Errorf("discover hooks: %w", err)
	}
	return m.organizer.Plan(categorize.Categorize(hooks)), nil
}

// Restructure re-discovers hooks from the current on-disk state,
// re-categorizes them and moves any found outside their correct tier
// directory. Used to reconcile after manual edits; unlike Initialize it
// does not rewrite READMEs.
func (m *Manager) Restructure(ctx context.Context) ([]organize.Move, error) {
	l := log.FromContext(ctx)

	hooks, err := discover.Hooks(m.root)
	if err != nil {
		return nil, fmt.Errorf("discover hooks: %w", err)
	}

	categorized := categorize.Categorize(hooks)

	result, err := m.organizer.Organize(categorized)
	if err != nil {
		return nil, fmt.Errorf("restructure hooks: %w", err)
	}

	for _, mv := range result.Moved {
		l.Printf("moved %s -> %s\n", mv.Name, mv.To)
	}

	return result.Moved, nil
}
