//go:build !unix

package shell

import (
	"errors"
	"os"
	"os/exec"
)

// exitFunc terminates the process with the shell's status.
var exitFunc = os.Exit

// replace runs the shell as a child, waits for it and exits with its status.
// Without exec(2) this is the closest equivalent for a CLI.
func replace(path string, argv, env []string) error {
	c := exec.Command(path, argv[1:]...)
	c.Env = env
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		exitFunc(0)
	case errors.As(err, &exitErr):
		exitFunc(exitErr.ExitCode())
	default:
		return err
	}
	return nil
}
