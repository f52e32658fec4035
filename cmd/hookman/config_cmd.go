package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective configuration",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Show the effective configuration after merging the global config
(~/.config/hookman/config.toml) with the project's .hookman.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			out.Printf("hooks_dir     = %q\n", resolveHooksDir())
			out.Printf("install_dir   = %q\n", cfg.InstallDir)
			out.Printf("project_type  = %q\n", cfg.ProjectType)
			out.Println()
			out.Printf("[select]\n")
			out.Printf("minimal            = %v\n", cfg.Select.Minimal)
			out.Printf("no_critical        = %v\n", cfg.Select.NoCritical)
			out.Printf("min_importance     = %q\n", cfg.Select.MinImportance)
			out.Printf("include            = [%s]\n", strings.Join(cfg.Select.Include, ", "))
			out.Printf("exclude            = [%s]\n", strings.Join(cfg.Select.Exclude, ", "))
			out.Printf("include_categories = [%s]\n", strings.Join(cfg.Select.IncludeCategories, ", "))
			out.Printf("exclude_categories = [%s]\n", strings.Join(cfg.Select.ExcludeCategories, ", "))

			return nil
		},
	}

	return cmd
}
