package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/organize"
	"github.com/hookman/hookman/internal/output"
	"github.com/hookman/hookman/internal/registry"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <hook> <tier>",
		Short:   "Move a hook to a different tier",
		GroupID: GroupTier,
		Args:    cobra.ExactArgs(2),
		Long: `Move a registered hook into another tier directory and update the
registry. The file is moved first; the registry is written after.`,
		Example: `  hookman move custom-thing.py tier1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			name := args[0]
			to, err := hook.ParseTier(args[1])
			if err != nil {
				return err
			}

			root := resolveHooksDir()

			reg, err := registry.Load(root)
			if err != nil {
				return fmt.Errorf("load registry (run 'hookman init' first): %w", err)
			}
			rec, ok := reg.Hooks[name]
			if !ok {
				return fmt.Errorf("hook not registered: %s", name)
			}
			if rec.Tier == to {
				out.Printf("%s is already in %s\n", name, to)
				return nil
			}

			if err := organize.New(root).MoveHookToTier(name, rec.Tier, to); err != nil {
				return err
			}

			out.Printf("Moved %s: %s -> %s\n", name, rec.Tier, to)
			return nil
		},
	}

	return cmd
}
