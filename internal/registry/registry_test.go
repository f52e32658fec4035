package registry

import (
	"errors"
	"os"
	"testing"

	"github.com/hookman/hookman/internal/hook"
)

func record(name string, tier hook.Tier) hook.Record {
	return hook.Record{
		Name:        name,
		Tier:        tier,
		Category:    hook.CategoryGeneral,
		Importance:  hook.ImportanceForTier(tier),
		CurrentPath: "/hooks/" + string(tier) + "/" + name,
	}
}

// tier index arrays must always be the disjoint union of the hook names.
func checkIndexInvariant(t *testing.T, r *Registry) {
	t.Helper()

	seen := map[string]hook.Tier{}
	total := 0
	for _, tier := range hook.Tiers {
		for _, name := range r.Tiers[tier] {
			if prev, dup := seen[name]; dup {
				t.Errorf("hook %s indexed in both %s and %s", name, prev, tier)
			}
			seen[name] = tier
			total++
		}
	}

	if total != len(r.Hooks) {
		t.Errorf("tier indexes hold %d names, hooks map holds %d", total, len(r.Hooks))
	}
	for name := range r.Hooks {
		if _, ok := seen[name]; !ok {
			t.Errorf("hook %s missing from tier indexes", name)
		}
	}
}

func TestPut_KeepsIndexesDisjoint(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(record("a.py", hook.Tier1))
	r.Put(record("b.py", hook.Tier2))
	checkIndexInvariant(t, r)

	// Re-putting the same hook in a different tier must not duplicate it.
	r.Put(record("a.py", hook.Tier3))
	checkIndexInvariant(t, r)

	if got := r.Hooks["a.py"].Tier; got != hook.Tier3 {
		t.Errorf("a.py tier = %v, want tier3", got)
	}
	if len(r.Names(hook.Tier1)) != 0 {
		t.Errorf("tier1 still indexes %v", r.Names(hook.Tier1))
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(record("x.py", hook.Tier3))

	if err := r.Move("x.py", hook.Tier3, hook.Tier1, "/hooks/tier1/x.py"); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	checkIndexInvariant(t, r)

	rec := r.Hooks["x.py"]
	if rec.Tier != hook.Tier1 {
		t.Errorf("tier = %v, want tier1", rec.Tier)
	}
	if rec.CurrentPath != "/hooks/tier1/x.py" {
		t.Errorf("currentPath = %q", rec.CurrentPath)
	}
	if rec.Importance != hook.Critical {
		t.Errorf("importance = %v, want critical after move to tier1", rec.Importance)
	}

	for _, name := range r.Names(hook.Tier3) {
		if name == "x.py" {
			t.Error("x.py still indexed under tier3")
		}
	}

	found := false
	for _, name := range r.Names(hook.Tier1) {
		if name == "x.py" {
			found = true
		}
	}
	if !found {
		t.Error("x.py not indexed under tier1")
	}
}

func TestMove_Errors(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(record("x.py", hook.Tier3))

	if err := r.Move("unknown.py", hook.Tier3, hook.Tier1, ""); err == nil {
		t.Error("expected error for unregistered hook")
	}
	if err := r.Move("x.py", hook.Tier2, hook.Tier1, ""); err == nil {
		t.Error("expected error for wrong source tier")
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	r := New()
	r.Put(record("a.py", hook.Tier1))
	r.Put(record("b.py", hook.Utils))

	if err := r.Save(root); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if r.LastUpdated.IsZero() {
		t.Error("Save should stamp LastUpdated")
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Version != Version {
		t.Errorf("version = %q, want %q", loaded.Version, Version)
	}
	if len(loaded.Hooks) != 2 {
		t.Errorf("loaded %d hooks, want 2", len(loaded.Hooks))
	}
	checkIndexInvariant(t, loaded)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing registry")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestCategorized_PreservesIndexOrder(t *testing.T) {
	t.Parallel()

	r := New()
	r.Put(record("z.py", hook.Tier2))
	r.Put(record("a.py", hook.Tier2))

	view := r.Categorized()
	tier2 := view[hook.Tier2]
	if len(tier2) != 2 {
		t.Fatalf("expected 2 tier2 hooks, got %d", len(tier2))
	}
	if tier2[0].Name != "z.py" || tier2[1].Name != "a.py" {
		t.Errorf("order = %s, %s; want insertion order z.py, a.py", tier2[0].Name, tier2[1].Name)
	}
}
