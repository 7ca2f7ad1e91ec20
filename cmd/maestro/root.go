package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/log"
	"github.com/fikriauliya/maestro-ai/internal/output"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	versionJSON bool
)

// Command group IDs for organizing help output
const (
	GroupInstance = "instance"
	GroupWorktree = "worktree"
	GroupConfig   = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Manage Claude Code instances and git worktrees in Zellij",
	Long: `maestro tracks Claude Code sessions running in Zellij panes and manages
the git worktrees they work in.

Session hooks call register, update and unregister; the Zellij plugin and
"maestro list" read the resulting registry. The wt commands create, switch
between, remove and squash-merge sibling worktrees.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed now; rebuild the logger with them.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			return output.FromContext(cmd.Context()).JSON(currentVersion())
		}
		return errors.New("no command provided. Use --help for usage")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	ctx = config.WithConfig(ctx, &loadedCfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Run the root logger hook before subcommand hooks like wt's git check.
	cobra.EnableTraverseRunHooks = true

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().BoolVar(&versionJSON, "version-json", false, "Print version information as JSON")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupInstance, Title: "Instance Commands:"},
		&cobra.Group{ID: GroupWorktree, Title: "Worktree Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Instance commands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newUnregisterCmd())
	rootCmd.AddCommand(newListCmd())

	// Worktree commands
	rootCmd.AddCommand(newWtCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
