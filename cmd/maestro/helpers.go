package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/fikriauliya/maestro-ai/internal/cmd"
	"github.com/fikriauliya/maestro-ai/internal/config"
	"github.com/fikriauliya/maestro-ai/internal/instance"
	"github.com/fikriauliya/maestro-ai/internal/shell"
	"github.com/fikriauliya/maestro-ai/internal/worktree"
)

// PaneIDEnv names the variable Zellij sets in every pane.
const PaneIDEnv = "ZELLIJ_PANE_ID"

var errNoPaneID = errors.New(PaneIDEnv + " not set")

// Seams for tests.
var (
	runner  cmd.Runner = cmd.ExecRunner{}
	handoff            = func(cfg *config.Config) shell.Handoff {
		return shell.Exec{Shell: cfg.Shell}
	}
)

// paneID returns the pane id from the environment.
func paneID() (uint32, error) {
	v, ok := os.LookupEnv(PaneIDEnv)
	if !ok {
		return 0, errNoPaneID
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, errNoPaneID
	}
	return uint32(id), nil
}

// hookInput is the JSON a session hook pipes to stdin.
type hookInput struct {
	CWD string `json:"cwd"`
}

// readHookInput drains in and decodes it as hook input. Terminals are not
// read. Unreadable or malformed input yields the zero value.
func readHookInput(in io.Reader) hookInput {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return hookInput{}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return hookInput{}
	}
	var hi hookInput
	if err := json.Unmarshal(data, &hi); err != nil {
		return hookInput{}
	}
	return hi
}

// folderName is the display label for a session rooted at cwd: its base
// name, or cwd itself when it has none.
func folderName(cwd string) string {
	base := filepath.Base(cwd)
	if cwd == "" || base == "." || base == string(filepath.Separator) {
		return cwd
	}
	return base
}

func newStore(ctx context.Context) *instance.Store {
	cfg := config.FromContext(ctx)
	return instance.NewStore(cfg.Registry.Path, instance.WithLock(cfg.Registry.Lock))
}

func newOrchestrator(ctx context.Context) *worktree.Orchestrator {
	return worktree.New(runner, handoff(config.FromContext(ctx)))
}
