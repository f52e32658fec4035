package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/organize"
	"github.com/hookman/hookman/internal/output"
)

func newManifestCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:     "manifest",
		Short:   "Generate the distribution manifest",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Generate the distribution-oriented manifest: per-tier descriptions,
hook counts and flattened hook metadata. Prints to stdout unless
--out is given.`,
		Example: `  hookman manifest
  hookman manifest --out hooks-manifest.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			org := organize.New(resolveHooksDir())

			if outFile != "" {
				m, err := org.ExportManifest(outFile)
				if err != nil {
					return err
				}
				out.Printf("Wrote manifest for %d hooks to %s\n", m.TotalHooks, outFile)
				return nil
			}

			m, err := org.GenerateManifest()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out.Writer())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the manifest to a file")

	return cmd
}
