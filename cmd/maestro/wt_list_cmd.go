package main

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/output"
	"github.com/fikriauliya/maestro-ai/internal/ui/static"
	"github.com/fikriauliya/maestro-ai/internal/ui/styles"
	"github.com/fikriauliya/maestro-ai/internal/worktree"
)

func newWtListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Long: `List the worktrees of the current repository in git's order.

The current worktree is marked with "*" and worktrees with uncommitted
changes are flagged [dirty].`,
		Example: `  maestro wt list
  maestro wt list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			entries, err := newOrchestrator(ctx).List(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				if entries == nil {
					entries = []worktree.Entry{}
				}
				return out.JSON(entries)
			}

			if len(entries) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			if out.IsTerminal() {
				out.Print(renderWorktreeTable(entries))
				return nil
			}
			for _, e := range entries {
				out.Println(formatWorktreeLine(e))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// formatWorktreeLine renders "<marker> <branch> <path>[ [dirty]]".
func formatWorktreeLine(e worktree.Entry) string {
	marker := " "
	if e.Current {
		marker = styles.CurrentMarker
	}
	line := marker + " " + e.BranchLabel() + " " + e.Path
	if e.Dirty {
		line += " " + styles.DirtyMarker
	}
	return line
}

func renderWorktreeTable(entries []worktree.Entry) string {
	current := -1
	rows := make([][]string, len(entries))
	for i, e := range entries {
		marker, state := "", "clean"
		if e.Current {
			marker, current = styles.CurrentMarker, i
		}
		switch {
		case e.IsBare:
			state = ""
		case e.Dirty:
			state = "dirty"
		}
		rows[i] = []string{marker, e.BranchLabel(), e.Path, state}
	}

	return static.RenderTable(
		[]string{"", "BRANCH", "PATH", "STATE"},
		rows,
		static.HighlightRow(current),
		static.CellStyle(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(entries) {
				return styles.NormalStyle
			}
			if col == 3 && entries[row].Dirty {
				return styles.WarningStyle
			}
			if col == 2 || entries[row].IsBare {
				return styles.MutedStyle
			}
			return styles.NormalStyle
		}),
	)
}
