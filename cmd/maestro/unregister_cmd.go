package main

import (
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/log"
)

func newUnregisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unregister",
		Short:   "Unregister the instance in this pane",
		GroupID: GroupInstance,
		Args:    cobra.NoArgs,
		Long: `Remove every registry entry for the current pane.

Stdin is drained so session hooks can pipe their JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := paneID()
			if err != nil {
				return err
			}
			readHookInput(cmd.InOrStdin())

			if err := newStore(ctx).Unregister(id); err != nil {
				return err
			}
			log.FromContext(ctx).Debug("unregistered instance", "pane", id)
			return nil
		},
	}

	return cmd
}
