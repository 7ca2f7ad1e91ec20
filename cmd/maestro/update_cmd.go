package main

import (
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/instance"
	"github.com/fikriauliya/maestro-ai/internal/log"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "update <running|waiting>",
		Short:     "Update the status of the instance in this pane",
		GroupID:   GroupInstance,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"running", "waiting"},
		Long: `Update the status of the instance registered for the current pane.

Stdin is drained so session hooks can pipe their JSON. Unknown panes are
ignored.`,
		Example: `  maestro update waiting
  maestro update running`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			status, err := instance.ParseStatus(args[0])
			if err != nil {
				return err
			}

			id, err := paneID()
			if err != nil {
				return err
			}
			readHookInput(cmd.InOrStdin())

			if err := newStore(ctx).UpdateStatus(id, status); err != nil {
				return err
			}
			l.Debug("updated instance", "pane", id, "status", status)
			return nil
		},
	}

	return cmd
}
