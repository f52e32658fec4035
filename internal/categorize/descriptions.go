package categorize

import (
	"path/filepath"
	"strings"
)

// descriptions holds the fixed description text for well-known hooks.
// Hooks not listed here get an auto-generated description from their name.
var descriptions = map[string]string{
	"typescript-validator.py":  "Validates TypeScript files with type checking and zero-tolerance code standards",
	"pnpm-enforcer.py":         "Enforces pnpm as the package manager and blocks npm/yarn usage",
	"pre_tool_use.py":          "Blocks dangerous and destructive commands before tool execution",
	"api-standards-checker.py": "Checks API routes against project conventions and standards",
	"universal-linter.py":      "Runs the appropriate linter for any edited file type",
	"post_tool_use.py":         "Post-execution cleanup, formatting and result logging",
	"notification.py":          "Sends desktop notifications for session events",
	"stop.py":                  "Finalizes a session when the main agent stops",
	"subagent_stop.py":         "Finalizes tracking when a subagent completes",
	"session-tracker.py":       "Tracks session activity for later reporting",
}

// Describe returns the description for a hook name, falling back to a
// generated "Title Case hook" form when the name is not in the table.
func Describe(name string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	return generateDescription(name)
}

// generateDescription turns "custom-thing.py" into "Custom Thing hook".
func generateDescription(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ") + " hook"
}
