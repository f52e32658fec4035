// Package organize physically arranges categorized hooks into tier
// directories and keeps the hook registry in sync with disk state.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/registry"
	"github.com/hookman/hookman/internal/storage"
)

// Organizer moves hook files into their tier directories under a hooks
// root and persists the registry. All operations are idempotent:
// re-running after an interrupted pass performs only the missing moves.
type Organizer struct {
	root string
}

// New creates an organizer for the given hooks root.
func New(root string) *Organizer {
	return &Organizer{root: root}
}

// Root returns the hooks root directory.
func (o *Organizer) Root() string {
	return o.root
}

// Move describes a single file relocation performed by Organize.
type Move struct {
	Name string
	From string
	To   string
}

// Result holds the outcome of an Organize pass.
type Result struct {
	Registry *registry.Registry
	Moved    []Move
}

// EnsureTierDirs creates the four tier directories. Idempotent.
func (o *Organizer) EnsureTierDirs() error {
	for _, t := range hook.Tiers {
		if err := os.MkdirAll(filepath.Join(o.root, string(t)), 0o755); err != nil {
			return fmt.Errorf("create tier directory %s: %w", t, err)
		}
	}
	return nil
}

// Organize moves every categorized hook into its tier directory and
// writes the full registry. The registry is written only after all
// moves succeed. A second call with unchanged input performs zero moves.
func (o *Organizer) Organize(categorized map[hook.Tier][]hook.Categorized) (*Result, error) {
	if err := o.EnsureTierDirs(); err != nil {
		return nil, err
	}

	reg := registry.New()
	var moved []Move

	for _, t := range hook.Tiers {
		for _, c := range categorized[t] {
			target := o.targetPath(c)

			if filepath.Clean(c.Path) != filepath.Clean(target) {
				if _, err := os.Stat(c.Path); err == nil {
					if err := storage.MoveFile(c.Path, target); err != nil {
						return nil, fmt.Errorf("move %s: %w", c.Name, err)
					}
					moved = append(moved, Move{Name: c.Name, From: c.Path, To: target})
				}
			}

			reg.Put(hook.Record{
				Name:         c.Name,
				Tier:         c.Tier,
				Category:     c.Category,
				Description:  c.Description,
				Importance:   c.Importance,
				OriginalPath: c.Path,
				CurrentPath:  target,
				Size:         c.Size,
				Modified:     c.Modified,
			})
		}
	}

	if err := reg.Save(o.root); err != nil {
		return nil, err
	}

	return &Result{Registry: reg, Moved: moved}, nil
}

// Plan reports the moves Organize would perform for this input, without
// touching disk or the registry.
func (o *Organizer) Plan(categorized map[hook.Tier][]hook.Categorized) []Move {
	var moves []Move
	for _, t := range hook.Tiers {
		for _, c := range categorized[t] {
			target := o.targetPath(c)
			if filepath.Clean(c.Path) == filepath.Clean(target) {
				continue
			}
			if _, err := os.Stat(c.Path); err == nil {
				moves = append(moves, Move{Name: c.Name, From: c.Path, To: target})
			}
		}
	}
	return moves
}

// targetPath computes where a categorized hook belongs on disk.
// Utils hooks keep their relative subdirectory below the utils segment;
// everything else lands flat in its tier directory.
func (o *Organizer) targetPath(c hook.Categorized) string {
	if c.Tier == hook.Utils {
		if rel, ok := utilsRelPath(c.Path); ok {
			return filepath.Join(o.root, rel)
		}
	}
	return filepath.Join(o.root, string(c.Tier), c.Name)
}

// utilsRelPath extracts the "utils/..." suffix of a path, if any.
func utilsRelPath(path string) (string, bool) {
	segs := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segs {
		if seg == "utils" {
			return filepath.Join(segs[i:]...), true
		}
	}
	return "", false
}

// MoveHookToTier moves a single registered hook between tier directories.
// The file move happens before the registry write, so an interrupted run
// leaves the registry stale but never pointing ahead of the real move.
func (o *Organizer) MoveHookToTier(name string, from, to hook.Tier) error {
	reg, err := registry.Load(o.root)
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}

	rec, ok := reg.Hooks[name]
	if !ok {
		return fmt.Errorf("hook not registered: %s", name)
	}
	if rec.Tier != from {
		return fmt.Errorf("hook %s is in %s, not %s", name, rec.Tier, from)
	}

	target := filepath.Join(o.root, string(to), name)
	if err := storage.MoveFile(rec.CurrentPath, target); err != nil {
		return fmt.Errorf("move %s to %s: %w", name, to, err)
	}

	if err := reg.Move(name, from, to, target); err != nil {
		return err
	}
	return reg.Save(o.root)
}
