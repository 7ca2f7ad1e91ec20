package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/log"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Short:   "Register the Claude Code instance in this pane",
		GroupID: GroupInstance,
		Args:    cobra.NoArgs,
		Long: `Register the Claude Code instance running in the current Zellij pane.

Reads the session hook's JSON from stdin; the instance is labeled with the
base name of its "cwd" field, or of the working directory when absent.
A previous registration for the same pane is replaced. The pane id comes
from ZELLIJ_PANE_ID.`,
		Example: `  echo '{"cwd": "/src/app.feature"}' | maestro register
  maestro register < /dev/null   # label from the working directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			id, err := paneID()
			if err != nil {
				return err
			}

			cwd := readHookInput(cmd.InOrStdin()).CWD
			if cwd == "" {
				// An unknown cwd leaves the label empty.
				cwd, _ = os.Getwd()
			}
			folder := folderName(cwd)

			if err := newStore(ctx).Register(id, folder); err != nil {
				return err
			}
			l.Debug("registered instance", "pane", id, "folder", folder)
			return nil
		},
	}

	return cmd
}
