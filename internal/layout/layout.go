// Package layout generates the zellij layout that opens a worktree with an
// editor, a hook terminal and a claude pane.
package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/storage"
)

// FileName is the name of the written layout under storage.TempDir().
const FileName = "layout.kdl"

// Options describes the worktree the layout opens.
type Options struct {
	Path   string // worktree root
	Editor string // editor command for the main pane
	Hooks  config.Hooks
	// SkipInstall omits the install hook, once it already ran.
	SkipInstall bool
}

const template = `layout {
    default_tab_template {
        pane size=1 borderless=true {
            plugin location="zellij:tab-bar"
        }
        children
        pane size=2 borderless=true {
            plugin location="zellij:status-bar"
        }
    }

    tab name="%[1]s" cwd="%[2]s" {
        pane split_direction="vertical" {
            pane split_direction="horizontal" size="60%%" {
                pane {
                    command "%[3]s"
                    args "%[2]s"
                }
                pane size="30%%" {
                    %[4]s
                }
            }
            pane size="40%%" {
                command "claude"
            }
        }
    }
}
`

// Generate returns the KDL layout for opts.
func Generate(opts Options) string {
	name := filepath.Base(filepath.Clean(opts.Path))
	if name == "." || name == string(filepath.Separator) {
		name = "worktree"
	}

	return fmt.Sprintf(template,
		escape(name),
		escape(opts.Path),
		escape(opts.Editor),
		terminalPane(opts),
	)
}

// terminalPane returns the body of the terminal pane: a bash command
// running the hooks, or nothing for a plain shell.
func terminalPane(opts Options) string {
	var cmds []string
	if opts.Hooks.Install != "" && !opts.SkipInstall {
		cmds = append(cmds, opts.Hooks.Install)
	}
	if opts.Hooks.Start != "" {
		cmds = append(cmds, opts.Hooks.Start)
	}
	if len(cmds) == 0 {
		return ""
	}

	return fmt.Sprintf(`command "bash"
                    args "-c" "%s"
                    start_suspended false`, escape(strings.Join(cmds, " && ")))
}

// escape quotes s for a KDL string literal.
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// ForWorktree builds the layout options for the worktree at path from its
// hook file, and the editor from cfg.
func ForWorktree(cfg *config.Config, path string) (Options, error) {
	hooks, err := config.LoadHooks(path)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Path:        path,
		Editor:      cfg.EditorCommand(),
		Hooks:       hooks,
		SkipInstall: config.InstallCompleted(path),
	}, nil
}

// Write stores layout at <tmp>/maestro-ai/layout.kdl and returns the path.
func Write(layout string) (string, error) {
	dir, err := storage.TempDir()
	if err != nil {
		return "", fmt.Errorf("create layout directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := storage.WriteFile(path, []byte(layout)); err != nil {
		return "", fmt.Errorf("write layout: %w", err)
	}
	return path, nil
}
