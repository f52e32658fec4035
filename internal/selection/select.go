package selection

import (
	"context"
	"slices"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/log"
)

// Preferences tune hook selection beyond the project policy.
// Zero value means "no preference".
type Preferences struct {
	MinimalSetup      bool
	IncludeHooks      []string
	ExcludeHooks      []string
	IncludeCategories []hook.Category
	ExcludeCategories []hook.Category
	MinImportance     hook.Importance // empty = no threshold
	NoCritical        bool
}

// SelectHooks produces the filtered, priority-ordered install list for a
// project type. Unresolvable include names are skipped from the result
// but logged with a close-match suggestion when one exists.
func SelectHooks(ctx context.Context, categorized map[hook.Tier][]hook.Categorized, projectType string, prefs Preferences) []hook.Categorized {
	policy := PolicyFor(projectType)
	l := log.FromContext(ctx)

	var selected []hook.Categorized
	chosen := map[string]bool{}

	// Pass 1: required tiers, filtered by policy and preferences.
	for _, tier := range policy.RequiredTiers {
		for _, h := range categorized[tier] {
			if slices.Contains(policy.ExcludeHooks, h.Name) || slices.Contains(prefs.ExcludeHooks, h.Name) {
				continue
			}

			keep := false
			switch {
			case h.Importance == hook.Critical && !prefs.NoCritical:
				keep = true
			case slices.Contains(policy.RecommendedHooks, h.Name):
				keep = true
			default:
				keep = !prefs.MinimalSetup
			}

			if keep && !chosen[h.Name] {
				selected = append(selected, h)
				chosen[h.Name] = true
			}
		}
	}

	// Pass 2: recommended hooks from any tier, unless minimal.
	if !prefs.MinimalSetup {
		for _, name := range policy.RecommendedHooks {
			if chosen[name] {
				continue
			}
			if h, ok := findByName(categorized, name); ok {
				selected = append(selected, h)
				chosen[name] = true
			}
		}
	}

	// Pass 3: explicit includes from any tier.
	for _, name := range prefs.IncludeHooks {
		if chosen[name] {
			continue
		}
		h, ok := findByName(categorized, name)
		if !ok {
			warnUnresolved(l, name, categorized)
			continue
		}
		selected = append(selected, h)
		chosen[name] = true
	}

	// Pass 4: exclusion and threshold filters.
	selected = applyFilters(selected, prefs)

	// Pass 5: stable sort by importance rank, critical first.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Importance.Rank() < selected[j].Importance.Rank()
	})

	return selected
}

func applyFilters(hooks []hook.Categorized, prefs Preferences) []hook.Categorized {
	var result []hook.Categorized
	for _, h := range hooks {
		if slices.Contains(prefs.ExcludeHooks, h.Name) {
			continue
		}
		if len(prefs.IncludeCategories) > 0 && !slices.Contains(prefs.IncludeCategories, h.Category) {
			continue
		}
		if len(prefs.ExcludeCategories) > 0 && slices.Contains(prefs.ExcludeCategories, h.Category) {
			continue
		}
		if prefs.MinImportance != "" && h.Importance.Level() < prefs.MinImportance.Level() {
			continue
		}
		result = append(result, h)
	}
	return result
}

// findByName searches all tiers for a hook by name.
func findByName(categorized map[hook.Tier][]hook.Categorized, name string) (hook.Categorized, bool) {
	for _, t := range hook.Tiers {
		for _, h := range categorized[t] {
			if h.Name == name {
				return h, true
			}
		}
	}
	return hook.Categorized{}, false
}

// warnUnresolved logs a skipped include name with a fuzzy "did you mean"
// suggestion when a close match exists among known hooks.
func warnUnresolved(l *log.Logger, name string, categorized map[hook.Tier][]hook.Categorized) {
	var known []string
	for _, t := range hook.Tiers {
		for _, h := range categorized[t] {
			known = append(known, h.Name)
		}
	}

	if matches := fuzzy.Find(name, known); len(matches) > 0 {
		l.Warnf("hook %q not found, skipping (did you mean %q?)", name, matches[0].Str)
		return
	}
	l.Warnf("hook %q not found, skipping", name)
}
