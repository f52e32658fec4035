package main

import (
	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/manager"
	"github.com/hookman/hookman/internal/output"
)

func newRestructureCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "restructure",
		Short:   "Reconcile hooks with their correct tier directories",
		GroupID: GroupTier,
		Args:    cobra.NoArgs,
		Long: `Re-discover hooks from the current on-disk state, re-categorize them
and move any found outside their correct tier directory. Use after
manually adding or editing hooks.`,
		Example: `  hookman restructure
  hookman restructure --dry-run   # Show planned moves only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m := manager.New(resolveHooksDir())

			if dryRun {
				planned, err := m.PlanRestructure(ctx)
				if err != nil {
					return err
				}
				if len(planned) == 0 {
					out.Println("All hooks already in place")
					return nil
				}
				for _, mv := range planned {
					out.Printf("would move %s -> %s\n", mv.Name, mv.To)
				}
				return nil
			}

			moved, err := m.Restructure(ctx)
			if err != nil {
				return err
			}

			if len(moved) == 0 {
				out.Println("All hooks already in place")
				return nil
			}
			out.Printf("Moved %d hooks\n", len(moved))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned moves without performing them")

	return cmd
}
