package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/git"
	"github.com/fikriauliya/maestro-ai/internal/ui/picker"
)

func newWtSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "switch [branch]",
		Short:             "Switch to a worktree, creating it if needed",
		Aliases:           []string{"sw"},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBranches,
		Long: `Start your shell in the worktree checked out on branch.

When no worktree has the branch, a new branch is forked from the default
branch into "<repo>.<branch>" next to the repository. Without an argument
an interactive picker lists the local branches.`,
		Example: `  maestro wt switch feature-login
  maestro wt switch            # pick a branch interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var branch string
			if len(args) == 1 {
				branch = args[0]
			} else {
				if !stdinIsTerminal(cmd) {
					return errors.New("branch name required (interactive picker needs a terminal)")
				}
				branches, err := git.NewClient(runner).ListBranches(ctx)
				if err != nil {
					return fmt.Errorf("list branches: %w", err)
				}
				items := make([]picker.Item, len(branches))
				for i, b := range branches {
					items[i] = picker.Item{Label: b}
				}
				idx, err := picker.Run("Switch to branch", items)
				if err != nil {
					return err
				}
				branch = branches[idx]
			}

			return newOrchestrator(ctx).Switch(ctx, branch)
		},
	}

	return cmd
}
