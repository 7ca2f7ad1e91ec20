package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/log"
	"github.com/fikriauliya/maestro-ai/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage maestro configuration.

Global config: $MAESTRO_CONFIG or ~/.config/maestro/config.toml
Worktree hooks: .config/wt.toml in each worktree`,
		Example: `  maestro config init     # Create default global config
  maestro config show     # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  maestro config init      # Create global config
  maestro config init -f   # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Printf("Created config at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			return toml.NewEncoder(output.FromContext(ctx).Writer()).Encode(cfg)
		},
	}

	return cmd
}
