package main

import (
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/instance"
	"github.com/fikriauliya/maestro-ai/internal/output"
	"github.com/fikriauliya/maestro-ai/internal/ui/styles"
)

// listOutput is the list --json payload.
type listOutput struct {
	versionInfo
	Instances []instance.Instance `json:"instances"`
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered instances",
		Aliases: []string{"ls"},
		GroupID: GroupInstance,
		Args:    cobra.NoArgs,
		Long: `List the registered Claude Code instances in registration order.

Each line shows the status icon (⚡ running, ⏳ waiting), the folder and the
pane id.`,
		Example: `  maestro list
  maestro list --json | jq '.instances[] | select(.status == "waiting")'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			instances := newStore(ctx).Load()

			if jsonOutput {
				return out.JSON(listOutput{versionInfo: currentVersion(), Instances: instances})
			}

			if len(instances) == 0 {
				out.Println("No instances registered")
				return nil
			}

			styled := out.IsTerminal()
			for _, in := range instances {
				icon, folder := styles.StatusIcon(in.Status), in.Folder
				if styled {
					folder = styles.StatusStyle(in.Status).Render(folder)
				}
				out.Printf("%s %s (pane %d)\n", icon, folder, in.PaneID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
