// Package shell hands the terminal over to an interactive shell.
//
// Hand-off is the last step of the switch, remove and merge workflows: the
// maestro process is replaced by the user's shell rooted at the target
// worktree, so the caller's terminal ends up in the right directory.
package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// DefaultShell is used when neither the config nor $SHELL name one.
const DefaultShell = "/bin/sh"

// Handoff transfers control to an interactive shell rooted at dir.
// On success it does not return.
type Handoff interface {
	Handoff(dir string) error
}

// Exec is the production Handoff. It replaces the process image where the
// platform supports it and otherwise runs the shell as a child and exits
// with its status.
type Exec struct {
	// Shell overrides $SHELL when set.
	Shell string
}

// Resolve returns the shell program to run: the explicit override, else
// $SHELL, else DefaultShell.
func Resolve(override string) string {
	if override != "" {
		return override
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return DefaultShell
}

// Handoff implements Handoff.
func (e Exec) Handoff(dir string) error {
	name := Resolve(e.Shell)
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("failed to exec shell: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to exec shell: %w", err)
	}
	if err := replace(path, []string{name}, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec shell: %w", err)
	}
	return errors.New("failed to exec shell: returned unexpectedly")
}
