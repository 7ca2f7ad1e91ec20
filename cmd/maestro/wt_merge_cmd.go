package main

import (
	"github.com/spf13/cobra"
)

func newWtMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Squash-merge the current worktree into the default branch",
		Args:  cobra.NoArgs,
		Long: `Squash-merge the current branch into the default branch's worktree,
commit it as "Merge branch '<branch>'", remove the current worktree and
branch, and start your shell in the default branch's worktree.

Refuses to run on the default branch itself or with uncommitted changes.
An empty squash (nothing to commit) still cleans up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return newOrchestrator(ctx).Merge(ctx)
		},
	}

	return cmd
}
