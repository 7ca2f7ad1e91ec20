//go:build unix

package shell

import "golang.org/x/sys/unix"

// execFunc replaces the current process. Tests override it to capture the
// exec call instead of losing the test binary.
var execFunc = unix.Exec

func replace(path string, argv, env []string) error {
	return execFunc(path, argv, env)
}
