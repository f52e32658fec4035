package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hookman/hookman/internal/config"
	"github.com/hookman/hookman/internal/log"
	"github.com/hookman/hookman/internal/output"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	hooksDir string

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupTier    = "tier"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hookman",
	Short: "Tiered hook manager for Claude Code projects",
	Long: `hookman classifies hook scripts into priority tiers, organizes them
on disk with a durable registry, and installs project-appropriate
subsets into your projects.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load global config, then merge per-project overrides from cwd
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hookman: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	local, err := config.LoadLocal(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	merged := config.MergeLocal(loadedCfg, local)
	cfg = &merged

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for diagnostics, printer on stdout for data
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'hookman -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&hooksDir, "hooks-dir", "", "Hooks library root (default: config hooks_dir or ./hooks)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupTier, Title: "Tier Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newRecommendCmd())

	// Tier commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newRestructureCmd())

	// Utility commands
	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newConfigCmd())
}
