package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/log"
	"github.com/hookman/hookman/internal/manager"
	"github.com/hookman/hookman/internal/output"
	"github.com/hookman/hookman/internal/project"
	"github.com/hookman/hookman/internal/selection"
)

func newRecommendCmd() *cobra.Command {
	var (
		projectType string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:     "recommend",
		Short:   "Show recommended hooks missing from the project",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Compare the project type's recommended hooks against what is already
installed and report what is missing, grouped by how strongly each
hook is needed.`,
		Example: `  hookman recommend
  hookman recommend --project-type monorepo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			pt := projectType
			if pt == "" {
				pt = cfg.ProjectType
			}
			if pt == "" {
				pt = project.Detect(workDir)
				l.Debug("detected project type", "type", pt)
			}

			stats, err := manager.New(resolveHooksDir()).GetStats()
			if err != nil {
				return err
			}
			existing := make([]string, 0, len(stats.Hooks))
			for _, h := range stats.Hooks {
				existing = append(existing, h.Name)
			}

			rec := selection.Recommend(pt, existing)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			if len(rec.Required)+len(rec.Recommended)+len(rec.Optional) == 0 {
				out.Printf("Nothing missing for project type %q\n", pt)
				return nil
			}

			out.Printf("Missing hooks for project type %q:\n", pt)
			printGroup(out, "required", rec.Required)
			printGroup(out, "recommended", rec.Recommended)
			printGroup(out, "optional", rec.Optional)

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "project-type", "p", "", "Project type (default: detected)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printGroup(out *output.Printer, label string, names []string) {
	for _, n := range names {
		out.Printf("  %-12s %s\n", label, n)
	}
}
