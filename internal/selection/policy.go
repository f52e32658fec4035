// Package selection filters and orders categorized hooks for a project
// based on per-project-type policies and user preferences.
package selection

import "github.com/hookman/hookman/internal/hook"

// Policy describes which hooks a project type needs.
type Policy struct {
	RequiredTiers    []hook.Tier
	RecommendedHooks []string
	ExcludeHooks     []string
}

// DefaultProjectType is used when a project type is unknown.
const DefaultProjectType = "default"

// policies is the static per-project-type table. Unknown project types
// fall back to the "default" entry.
var policies = map[string]Policy{
	"node": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2},
		RecommendedHooks: []string{"universal-linter.py", "pnpm-enforcer.py", "pre_tool_use.py"},
		ExcludeHooks:     []string{"typescript-validator.py"},
	},
	"typescript": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2},
		RecommendedHooks: []string{"typescript-validator.py", "universal-linter.py", "pnpm-enforcer.py"},
	},
	"react": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2},
		RecommendedHooks: []string{"typescript-validator.py", "universal-linter.py", "api-standards-checker.py"},
	},
	"python": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2},
		RecommendedHooks: []string{"universal-linter.py", "pre_tool_use.py"},
		ExcludeHooks:     []string{"typescript-validator.py", "pnpm-enforcer.py"},
	},
	"monorepo": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2, hook.Tier3},
		RecommendedHooks: []string{"typescript-validator.py", "pnpm-enforcer.py", "universal-linter.py", "notification.py"},
	},
	"api": {
		RequiredTiers:    []hook.Tier{hook.Tier1, hook.Tier2},
		RecommendedHooks: []string{"api-standards-checker.py", "universal-linter.py", "pre_tool_use.py"},
	},
	DefaultProjectType: {
		RequiredTiers:    []hook.Tier{hook.Tier1},
		RecommendedHooks: []string{"universal-linter.py"},
	},
}

// PolicyFor returns the policy for a project type, substituting the
// default policy for unknown types. Never fails.
func PolicyFor(projectType string) Policy {
	if p, ok := policies[projectType]; ok {
		return p
	}
	return policies[DefaultProjectType]
}

// ProjectTypes lists all known project type keys.
func ProjectTypes() []string {
	return []string{"node", "typescript", "react", "python", "monorepo", "api", DefaultProjectType}
}
