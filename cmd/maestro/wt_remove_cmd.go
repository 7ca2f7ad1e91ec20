package main

import (
	"github.com/spf13/cobra"
)

func newWtRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove",
		Short:   "Remove the current worktree and its branch",
		Aliases: []string{"rm"},
		Args:    cobra.NoArgs,
		Long: `Remove the worktree you are in, delete its branch and start your shell
in the main worktree.

Refuses to run when the worktree has uncommitted changes. A branch that
cannot be deleted (for example because it is not fully merged) only
produces a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return newOrchestrator(ctx).Remove(ctx)
		},
	}

	return cmd
}
