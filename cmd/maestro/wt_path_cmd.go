package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/log"
	"github.com/fikriauliya/maestro-ai/internal/output"
	"github.com/fikriauliya/maestro-ai/internal/ui/picker"
	"github.com/fikriauliya/maestro-ai/internal/worktree"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func newWtPathCmd() *cobra.Command {
	var (
		interactive bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:               "path [query]",
		Short:             "Print a worktree path for shell scripting",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeWorktreeBranches,
		Long: `Print the path of a worktree.

With a query, prints the worktree whose branch best fuzzy-matches it.
Without one, prints the current worktree. -i opens an interactive picker.`,
		Example: `  cd "$(maestro wt path feat)"   # fuzzy match on branch
  cd "$(maestro wt path -i)"     # pick interactively
  maestro wt path --copy main    # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			entries, err := newOrchestrator(ctx).Worktrees(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return errors.New("no worktrees found")
			}

			var query string
			if len(args) == 1 {
				query = args[0]
			}

			target, err := pickWorktree(entries, query, interactive)
			if err != nil {
				return err
			}

			if copyPath {
				if err := copyToClipboard(target.Path); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Printf("Copied %s to clipboard\n", target.Path)
			}
			out.Println(target.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the worktree interactively")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the path to the clipboard")

	return cmd
}

func pickWorktree(entries []worktree.Entry, query string, interactive bool) (worktree.Entry, error) {
	items := make([]picker.Item, len(entries))
	for i, e := range entries {
		items[i] = picker.Item{Label: e.BranchLabel(), Description: e.Path}
	}

	switch {
	case interactive:
		idx, err := picker.Run("Select worktree", items)
		if err != nil {
			return worktree.Entry{}, err
		}
		return entries[idx], nil

	case query != "":
		idx, ok := picker.Best(items, query)
		if !ok {
			return worktree.Entry{}, fmt.Errorf("no worktree matches %q", query)
		}
		return entries[idx], nil
	}

	for _, e := range entries {
		if e.Current {
			return e, nil
		}
	}
	return worktree.Entry{}, errors.New("not in a worktree")
}
