package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/git"
)

// completeBranches completes local branch names of the current repository.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	client := git.NewClient(runner)
	if !client.IsInsideRepo(cmd.Context()) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := client.ListBranches(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(branches, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeWorktreeBranches completes branches that have a worktree.
func completeWorktreeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	worktrees, err := git.NewClient(runner).ListWorktrees(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var branches []string
	for _, wt := range worktrees {
		if wt.HasBranch() {
			branches = append(branches, wt.Branch)
		}
	}
	return filterPrefix(branches, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}

// stdinIsTerminal reports whether the command reads from an interactive
// terminal.
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
