package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/log"
	"github.com/hookman/hookman/internal/manager"
	"github.com/hookman/hookman/internal/output"
	"github.com/hookman/hookman/internal/project"
	"github.com/hookman/hookman/internal/ui/prompt"
)

func newInstallCmd() *cobra.Command {
	var (
		projectType string
		target      string
		dryRun      bool
		yes         bool
		jsonOutput  bool
		flags       selectFlags
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Select and install hooks for a project",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Select hooks matching the project's type and your preferences, then
copy them into the project's hook directory.

The project type is detected from manifest files (package.json,
tsconfig.json, pnpm-workspace.yaml, pyproject.toml) unless given
explicitly. On a terminal the selection is confirmed interactively;
use --yes to skip the prompt.`,
		Example: `  hookman install                          # Detect type, install into .claude/hooks
  hookman install --project-type python    # Force python policy
  hookman install --minimal                # Critical + recommended only
  hookman install --exclude notification.py --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			prefs, err := flags.preferences()
			if err != nil {
				return err
			}

			pt := projectType
			if pt == "" {
				pt = cfg.ProjectType
			}
			if pt == "" {
				pt = project.Detect(workDir)
				l.Debug("detected project type", "type", pt)
			}

			m := manager.New(resolveHooksDir())
			selected, err := m.SelectHooks(ctx, pt, prefs)
			if err != nil {
				return fmt.Errorf("select hooks: %w", err)
			}

			if len(selected) == 0 {
				out.Println("No hooks selected")
				return nil
			}

			l.Printf("Selected %d hooks for project type %q:\n", len(selected), pt)
			for _, h := range selected {
				l.Printf("  %-30s %-9s %s\n", h.Name, h.Importance, h.Description)
			}

			if dryRun {
				out.Printf("Dry run: %d hooks would be installed\n", len(selected))
				return nil
			}

			if !yes && isatty.IsTerminal(os.Stdout.Fd()) {
				res, err := prompt.Confirm(fmt.Sprintf("Install %d hooks?", len(selected)), true)
				if err != nil {
					return err
				}
				if res.Cancelled || !res.Confirmed {
					out.Println("Aborted")
					return nil
				}
			}

			installDir := target
			if installDir == "" {
				installDir = filepath.Join(workDir, cfg.InstallDir)
			}
			if err := os.MkdirAll(installDir, 0o755); err != nil {
				return fmt.Errorf("create install directory: %w", err)
			}

			installed, err := m.InstallHooks(ctx, selected, installDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(installed)
			}

			out.Printf("Installed %d hooks into %s\n", len(installed), installDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectType, "project-type", "p", "", "Project type (node, typescript, react, python, monorepo, api)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Install directory (default: <cwd>/.claude/hooks)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the selection without installing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output installed hooks as JSON")
	flags.register(cmd.Flags())

	return cmd
}
