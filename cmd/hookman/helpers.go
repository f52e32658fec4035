package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/selection"
)

// resolveHooksDir picks the hooks library root: --hooks-dir flag, then
// config hooks_dir, then ./hooks relative to the working directory.
func resolveHooksDir() string {
	dir := hooksDir
	if dir == "" {
		dir = cfg.HooksDir
	}
	if dir == "" {
		dir = filepath.Join(workDir, "hooks")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

// selectFlags holds the per-command selection preference flags.
type selectFlags struct {
	minimal           bool
	include           []string
	exclude           []string
	includeCategories []string
	excludeCategories []string
	minImportance     string
	noCritical        bool
}

// preferences merges config defaults with command flags into selection
// preferences. Flags win over config.
func (f selectFlags) preferences() (selection.Preferences, error) {
	prefs := selection.Preferences{
		MinimalSetup: cfg.Select.Minimal || f.minimal,
		NoCritical:   cfg.Select.NoCritical || f.noCritical,
	}

	prefs.IncludeHooks = firstNonEmpty(f.include, cfg.Select.Include)
	prefs.ExcludeHooks = firstNonEmpty(f.exclude, cfg.Select.Exclude)

	inCats, err := parseCategories(firstNonEmpty(f.includeCategories, cfg.Select.IncludeCategories))
	if err != nil {
		return prefs, err
	}
	prefs.IncludeCategories = inCats

	exCats, err := parseCategories(firstNonEmpty(f.excludeCategories, cfg.Select.ExcludeCategories))
	if err != nil {
		return prefs, err
	}
	prefs.ExcludeCategories = exCats

	minImp := f.minImportance
	if minImp == "" {
		minImp = cfg.Select.MinImportance
	}
	if minImp != "" {
		imp, err := hook.ParseImportance(minImp)
		if err != nil {
			return prefs, err
		}
		prefs.MinImportance = imp
	}

	return prefs, nil
}

func firstNonEmpty(flag, config []string) []string {
	if len(flag) > 0 {
		return flag
	}
	return config
}

var knownCategories = []hook.Category{
	hook.CategoryValidation, hook.CategoryEnforcement, hook.CategoryChecking,
	hook.CategoryReporting, hook.CategoryLinting, hook.CategoryOrganization,
	hook.CategoryNotification, hook.CategoryLifecycle, hook.CategoryUtility,
	hook.CategoryGeneral,
}

func parseCategories(names []string) ([]hook.Category, error) {
	var cats []hook.Category
	for _, n := range names {
		c := hook.Category(n)
		found := false
		for _, known := range knownCategories {
			if c == known {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown category %q", n)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// register adds the shared selection flags to a command's flag set.
func (f *selectFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.minimal, "minimal", false, "Minimal setup: only critical and recommended hooks")
	flags.StringSliceVar(&f.include, "include", nil, "Extra hooks to include by name")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "Hooks to exclude by name")
	flags.StringSliceVar(&f.includeCategories, "include-category", nil, "Only keep these categories")
	flags.StringSliceVar(&f.excludeCategories, "exclude-category", nil, "Drop these categories")
	flags.StringVar(&f.minImportance, "min-importance", "", "Minimum importance (critical, important, optional, utility)")
	flags.BoolVar(&f.noCritical, "no-critical", false, "Do not force-keep critical hooks")
}
