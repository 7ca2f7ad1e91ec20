package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/git"
	"github.com/fikriauliya/maestro-ai/internal/layout"
	"github.com/fikriauliya/maestro-ai/internal/log"
	"github.com/fikriauliya/maestro-ai/internal/output"
)

func newWtLayoutCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "layout [path]",
		Short: "Generate the Zellij layout for a worktree",
		Args:  cobra.MaximumNArgs(1),
		Long: `Generate a Zellij KDL layout for a worktree: an editor pane (60%) with a
terminal below it running the worktree's hooks, and a claude pane (40%).

Hooks are read from .config/wt.toml in the worktree. The install hook is
included until it has run once; --write records that it ran.`,
		Example: `  maestro wt layout                                  # print the layout
  zellij --layout "$(maestro wt layout --write)"      # open it`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				root, err := git.NewClient(runner).RepoRoot(ctx)
				if err != nil {
					return fmt.Errorf("cannot determine worktree: %w", err)
				}
				path = root
			}
			if info, err := os.Stat(path); err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", path)
			}

			opts, err := layout.ForWorktree(cfg, path)
			if err != nil {
				return err
			}
			kdl := layout.Generate(opts)

			if !write {
				out.Print(kdl)
				return nil
			}

			file, err := layout.Write(kdl)
			if err != nil {
				return err
			}
			if opts.Hooks.Install != "" && !opts.SkipInstall {
				if err := config.MarkInstallCompleted(path); err != nil {
					l.Warnf("Could not record install hook: %v", err)
				}
			}
			out.Println(file)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the layout to a temp file and print its path")

	return cmd
}
