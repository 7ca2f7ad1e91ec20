// Package config handles loading of maestro configuration.
//
// Global configuration is read from $MAESTRO_CONFIG, or from
// ~/.config/maestro/config.toml when that is unset.
//
// # Configuration Sources (highest priority first)
//
//   - MAESTRO_REGISTRY env var: registry file path
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - shell: shell to hand off to (default: $SHELL, then /bin/sh)
//   - editor: editor for the layout's editor pane (default: $VISUAL, $EDITOR, "hx")
//   - registry.path: instance registry file (must be absolute or ~/...)
//   - registry.lock: serialize registry updates with a file lock
//
// # Worktree Hooks
//
// Each worktree may carry .config/wt.toml:
//
//	[hooks]
//	install = "bun install"   # once, after the worktree is created
//	start = "bun run serve"   # every time the worktree is opened
//
// Install completion is tracked by a .maestro-installed marker file in the
// worktree root.
package config
