package organize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hookman/hookman/internal/hook"
)

var readmeBodies = map[hook.Tier]string{
	hook.Tier1: `# Tier 1 - Critical Hooks

Security, validation and enforcement hooks. These protect the project
from destructive commands and non-compliant changes and should be
installed in every project.

Hooks in this tier run with the highest priority and are kept during
selection unless explicitly excluded with --no-critical.
`,
	hook.Tier2: `# Tier 2 - Important Hooks

Code quality, standards checking and linting hooks. Recommended for
most projects; skipped only in minimal setups when not on the project
type's recommended list.
`,
	hook.Tier3: `# Tier 3 - Optional Hooks

Notifications, session tracking and other convenience hooks. Installed
on demand or when a project type recommends them.
`,
	hook.Utils: `# Utils - Shared Modules

Utility code imported by hooks in other tiers. Not installed directly;
subdirectory structure below utils/ is preserved as-is.
`,
}

// WriteTierReadmes writes the static README.md into each tier directory.
func (o *Organizer) WriteTierReadmes() error {
	for _, t := range hook.Tiers {
		path := filepath.Join(o.root, string(t), "README.md")
		if err := os.WriteFile(path, []byte(readmeBodies[t]), 0o644); err != nil {
			return fmt.Errorf("write %s README: %w", t, err)
		}
	}
	return nil
}
