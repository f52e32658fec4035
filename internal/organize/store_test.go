package organize

import (
	"testing"

	"github.com/hookman/hookman/internal/hook"
)

func TestNewStore_PrefersRegistry(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeHook(t, root, "x.py", "print('hi')")

	// No registry yet: scan path.
	if _, ok := NewStore(root).(*ScanStore); !ok {
		t.Errorf("expected ScanStore before organize, got %T", NewStore(root))
	}

	o := New(root)
	if _, err := o.Organize(discoverAndCategorize(t, root)); err != nil {
		t.Fatal(err)
	}

	// Registry written: fast path.
	if _, ok := NewStore(root).(*RegistryStore); !ok {
		t.Errorf("expected RegistryStore after organize, got %T", NewStore(root))
	}
}

func TestRegistryStore_MatchesOrganizedState(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeHook(t, root, "typescript-validator.py", "def validate(): pass")
	writeHook(t, root, "notification.py", "# sends notification")

	o := New(root)
	if _, err := o.Organize(discoverAndCategorize(t, root)); err != nil {
		t.Fatal(err)
	}

	categorized, err := NewStore(root).CategorizedHooks()
	if err != nil {
		t.Fatalf("CategorizedHooks failed: %v", err)
	}

	if len(categorized[hook.Tier1]) != 1 || categorized[hook.Tier1][0].Name != "typescript-validator.py" {
		t.Errorf("tier1 = %+v", categorized[hook.Tier1])
	}
	if len(categorized[hook.Tier3]) != 1 || categorized[hook.Tier3][0].Name != "notification.py" {
		t.Errorf("tier3 = %+v", categorized[hook.Tier3])
	}
}

func TestScanStore_RecoversWithoutRegistry(t *testing.T) {
	t.Parallel()

	// Simulate manually arranged tiers with no registry file.
	root := t.TempDir()
	writeHook(t, root, "tier1/typescript-validator.py", "def validate(): pass")
	writeHook(t, root, "tier2/universal-linter.py", "# lint")
	writeHook(t, root, "utils/helpers/paths.py", "def join(): pass")

	categorized, err := (&ScanStore{root: root}).CategorizedHooks()
	if err != nil {
		t.Fatalf("CategorizedHooks failed: %v", err)
	}

	if len(categorized[hook.Tier1]) != 1 {
		t.Errorf("tier1 count = %d, want 1", len(categorized[hook.Tier1]))
	}
	if len(categorized[hook.Tier2]) != 1 {
		t.Errorf("tier2 count = %d, want 1", len(categorized[hook.Tier2]))
	}

	// Nested utils files must be found by the recursive scan.
	utils := categorized[hook.Utils]
	if len(utils) != 1 || utils[0].Name != "paths.py" {
		t.Fatalf("utils = %+v", utils)
	}
	if utils[0].Importance != hook.Utility {
		t.Errorf("utils importance = %v", utils[0].Importance)
	}

	// Category and description are rebuilt from name heuristics.
	tier1 := categorized[hook.Tier1][0]
	if tier1.Category != hook.CategoryValidation {
		t.Errorf("scanned category = %v, want validation", tier1.Category)
	}
	if tier1.Description == "" {
		t.Error("scanned description should not be empty")
	}
}

func TestGenerateManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeHook(t, root, "typescript-validator.py", "def validate(): pass")
	writeHook(t, root, "universal-linter.py", "# lint")
	writeHook(t, root, "notification.py", "# notify")

	o := New(root)
	if _, err := o.Organize(discoverAndCategorize(t, root)); err != nil {
		t.Fatal(err)
	}

	m, err := o.GenerateManifest()
	if err != nil {
		t.Fatalf("GenerateManifest failed: %v", err)
	}

	if m.TotalHooks != 3 {
		t.Errorf("totalHooks = %d, want 3", m.TotalHooks)
	}
	if m.Generated.IsZero() {
		t.Error("generated timestamp not set")
	}

	tier1 := m.Tiers[hook.Tier1]
	if tier1.HookCount != 1 || len(tier1.Hooks) != 1 {
		t.Fatalf("tier1 manifest = %+v", tier1)
	}
	entry := tier1.Hooks[0]
	if entry.Name != "typescript-validator.py" || entry.Category != hook.CategoryValidation {
		t.Errorf("tier1 entry = %+v", entry)
	}
	if entry.Size == 0 {
		t.Error("entry size should come from disk")
	}
	if tier1.Description == "" {
		t.Error("tier description should not be empty")
	}
}
