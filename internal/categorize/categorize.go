// Package categorize classifies hook scripts into tiers and categories.
// Classification is pure: name, path and content heuristics only, no I/O.
package categorize

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hookman/hookman/internal/hook"
)

// tierRule matches hooks into a tier by explicit name, filename pattern
// or content keyword, checked in that order.
type tierRule struct {
	names    []string
	patterns []*regexp.Regexp
	keywords []string
}

// classifyOrder is the tier precedence for rule matching.
// The utils path override is checked before any of these.
var classifyOrder = []hook.Tier{hook.Tier1, hook.Tier2, hook.Tier3}

var tierRules = map[hook.Tier]tierRule{
	hook.Tier1: {
		names: []string{
			"typescript-validator.py",
			"pnpm-enforcer.py",
			"pre_tool_use.py",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`-validator\.py$`),
			regexp.MustCompile(`-enforcer\.py$`),
			regexp.MustCompile(`(^|/)pre_tool_use`),
		},
		keywords: []string{"dangerous", "block", "security", "enforce", "zero_tolerance"},
	},
	hook.Tier2: {
		names: []string{
			"api-standards-checker.py",
			"universal-linter.py",
			"post_tool_use.py",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`-checker\.py$`),
			regexp.MustCompile(`-linter\.py$`),
			regexp.MustCompile(`-reporter\.py$`),
			regexp.MustCompile(`(^|/)post_tool_use`),
		},
		keywords: []string{"lint", "standards", "quality", "violation"},
	},
	hook.Tier3: {
		names: []string{
			"notification.py",
			"stop.py",
			"subagent_stop.py",
			"session-tracker.py",
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`-tracker\.py$`),
			regexp.MustCompile(`(^|/)stop\.py$`),
			regexp.MustCompile(`(^|/)subagent_stop`),
		},
		keywords: []string{"notification", "notify", "transcript", "cleanup"},
	},
}

// categoryRules maps name substrings to categories, checked in order.
var categoryRules = []struct {
	substrings []string
	category   hook.Category
}{
	{[]string{"validator", "validation"}, hook.CategoryValidation},
	{[]string{"enforcer", "enforce"}, hook.CategoryEnforcement},
	{[]string{"checker", "check"}, hook.CategoryChecking},
	{[]string{"reporter", "report"}, hook.CategoryReporting},
	{[]string{"linter", "lint"}, hook.CategoryLinting},
	{[]string{"organizer", "organize"}, hook.CategoryOrganization},
	{[]string{"notification", "notify"}, hook.CategoryNotification},
}

// Categorize classifies all hooks and groups them by tier.
// Total and deterministic: malformed input yields tier3/general defaults.
func Categorize(hooks []hook.File) map[hook.Tier][]hook.Categorized {
	result := make(map[hook.Tier][]hook.Categorized, len(hook.Tiers))
	for _, t := range hook.Tiers {
		result[t] = []hook.Categorized{}
	}

	for _, f := range hooks {
		c := categorizeOne(f)
		result[c.Tier] = append(result[c.Tier], c)
	}

	return result
}

func categorizeOne(f hook.File) hook.Categorized {
	tier := TierFor(f)
	return hook.Categorized{
		File:        f,
		Tier:        tier,
		Category:    CategoryFor(f.Name),
		Description: Describe(f.Name),
		Importance:  hook.ImportanceForTier(tier),
	}
}

// TierFor determines the tier of a single hook.
// A utils path segment always wins; otherwise tier1, tier2 and tier3
// rules are tried in order and tier3 is the default.
func TierFor(f hook.File) hook.Tier {
	if HasUtilsSegment(f.Path) {
		return hook.Utils
	}

	content := strings.ToLower(string(f.Content))
	for _, t := range classifyOrder {
		if tierRules[t].matches(f.Name, f.Path, content) {
			return t
		}
	}

	return hook.Tier3
}

func (r tierRule) matches(name, path, lowerContent string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}

	slashPath := strings.ToLower(filepath.ToSlash(path))
	lowerName := strings.ToLower(name)
	for _, p := range r.patterns {
		if p.MatchString(lowerName) || p.MatchString(slashPath) {
			return true
		}
	}

	for _, kw := range r.keywords {
		if strings.Contains(lowerContent, kw) {
			return true
		}
	}

	return false
}

// HasUtilsSegment reports whether a path contains "utils" as a
// whole path segment.
func HasUtilsSegment(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == "utils" {
			return true
		}
	}
	return false
}

// CategoryFor derives a hook's category from its lowercased name.
func CategoryFor(name string) hook.Category {
	lower := strings.ToLower(name)

	for _, rule := range categoryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.category
			}
		}
	}

	if strings.HasPrefix(lower, "pre_") || strings.HasPrefix(lower, "post_") {
		return hook.CategoryLifecycle
	}
	if strings.Contains(lower, "util") {
		return hook.CategoryUtility
	}

	return hook.CategoryGeneral
}
