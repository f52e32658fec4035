package selection

import (
	"slices"
	"testing"
)

func TestRecommend_ValidatorsAndEnforcersAreRequired(t *testing.T) {
	t.Parallel()

	rec := Recommend("typescript", nil)

	for _, name := range []string{"typescript-validator.py", "pnpm-enforcer.py"} {
		if !slices.Contains(rec.Required, name) {
			t.Errorf("%s should be required, got required=%v recommended=%v", name, rec.Required, rec.Recommended)
		}
		if slices.Contains(rec.Recommended, name) || slices.Contains(rec.Optional, name) {
			t.Errorf("%s must never be recommended/optional", name)
		}
	}

	if !slices.Contains(rec.Recommended, "universal-linter.py") {
		t.Errorf("universal-linter.py should be recommended, got %v", rec.Recommended)
	}
}

func TestRecommend_ExistingHooksNotReported(t *testing.T) {
	t.Parallel()

	rec := Recommend("typescript", []string{"typescript-validator.py", "universal-linter.py", "pnpm-enforcer.py"})

	if len(rec.Required)+len(rec.Recommended)+len(rec.Optional) != 0 {
		t.Errorf("nothing should be missing, got %+v", rec)
	}
}

func TestRecommend_MonorepoSuggestsNotification(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		rec := Recommend("monorepo", nil)
		if !slices.Contains(rec.Optional, "notification.py") {
			t.Errorf("notification.py should be optional for monorepo, got %v", rec.Optional)
		}
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		rec := Recommend("monorepo", []string{"notification.py"})
		if slices.Contains(rec.Optional, "notification.py") {
			t.Error("notification.py already installed, should not be suggested")
		}
	})
}

func TestRecommend_UnknownTypeUsesDefault(t *testing.T) {
	t.Parallel()

	rec := Recommend("something-else", nil)
	if !slices.Contains(rec.Recommended, "universal-linter.py") {
		t.Errorf("default policy recommendation missing, got %+v", rec)
	}
}
