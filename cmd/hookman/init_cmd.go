package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/log"
	"github.com/hookman/hookman/internal/manager"
	"github.com/hookman/hookman/internal/output"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Discover, categorize and organize hooks into tiers",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Discover all hook scripts under the hooks root, classify them into
tiers, move them into tier directories and write the registry and
per-tier README files.

Safe to re-run: hooks already in place are not moved again.`,
		Example: `  hookman init                       # Organize ./hooks
  hookman init --hooks-dir ~/hooks   # Organize a different library`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root := resolveHooksDir()
			l.Debug("initializing hooks", "root", root)

			reg, err := manager.New(root).Initialize(ctx)
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			out.Printf("Organized %d hooks in %s\n", len(reg.Hooks), root)
			for _, t := range hook.Tiers {
				out.Printf("  %-6s %d\n", t, len(reg.Names(t)))
			}

			return nil
		},
	}

	return cmd
}
