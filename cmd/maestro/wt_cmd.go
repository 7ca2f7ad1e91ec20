package main

import (
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/git"
)

func newWtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wt",
		Short:   "Manage git worktrees",
		GroupID: GroupWorktree,
		Long: `Manage the git worktrees of the current repository.

New worktrees are created next to the repository as "<repo>.<branch>",
forked from the default branch (origin/HEAD, else main, else master).
switch, remove and merge end by starting your shell in the target
worktree.`,
		Example: `  maestro wt list              # List worktrees with dirty state
  maestro wt switch feature    # Open (or create) the feature worktree
  maestro wt merge             # Squash-merge this worktree and clean up
  maestro wt remove            # Delete this worktree and its branch`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return git.CheckGit()
		},
	}

	cmd.AddCommand(newWtListCmd())
	cmd.AddCommand(newWtSwitchCmd())
	cmd.AddCommand(newWtRemoveCmd())
	cmd.AddCommand(newWtMergeCmd())
	cmd.AddCommand(newWtPathCmd())
	cmd.AddCommand(newWtLayoutCmd())

	return cmd
}
