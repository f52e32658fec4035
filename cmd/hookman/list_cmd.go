package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/hook"
	"github.com/hookman/hookman/internal/manager"
	"github.com/hookman/hookman/internal/output"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		tierFilter string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List organized hooks and tier stats",
		Aliases: []string{"ls", "stats"},
		GroupID: GroupTier,
		Args:    cobra.NoArgs,
		Example: `  hookman list                # Table of all organized hooks
  hookman list --tier tier1   # Only critical hooks
  hookman list --json         # Stats as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			var tier hook.Tier
			if tierFilter != "" {
				t, err := hook.ParseTier(tierFilter)
				if err != nil {
					return err
				}
				tier = t
			}

			stats, err := manager.New(resolveHooksDir()).GetStats()
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			if stats.Total == 0 {
				out.Println("No hooks organized yet (run 'hookman init')")
				return nil
			}

			headers := []string{"NAME", "TIER", "CATEGORY", "DESCRIPTION"}
			var rows [][]string
			for _, h := range stats.Hooks {
				if tier != "" && h.Tier != tier {
					continue
				}
				rows = append(rows, []string{h.Name, string(h.Tier), string(h.Category), h.Description})
			}

			out.Print(output.RenderTable(headers, rows))
			out.Printf("\n%d hooks", stats.Total)
			for _, t := range hook.Tiers {
				out.Printf("  %s:%d", t, stats.ByTier[t])
			}
			out.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&tierFilter, "tier", "", "Only show hooks in this tier")

	return cmd
}
