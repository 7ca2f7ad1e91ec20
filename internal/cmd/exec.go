package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/fikriauliya/maestro-ai/internal/log"
)

// Runner executes an external program and captures its outcome.
//
// A non-zero exit status is not an error from Run: it is reported through
// Result so callers can decide whether the failure matters. The returned
// error is reserved for commands that could not run at all.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// Result is the captured outcome of a finished command.
type Result struct {
	Args     []string // program name followed by its arguments
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Err returns nil on success and an *Error carrying stderr otherwise.
func (r Result) Err() error {
	if r.Success() {
		return nil
	}
	return &Error{
		Args:     r.Args,
		ExitCode: r.ExitCode,
		Stderr:   strings.TrimSpace(string(r.Stderr)),
	}
}

// Error reports an external command that exited non-zero.
type Error struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("%s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
}

// ExecRunner runs commands with os/exec and logs them to the context logger.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	res := Result{Args: append([]string{name}, args...)}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// RunContext executes a command and returns stderr in the error if it fails.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := OutputContext(ctx, dir, name, args...)
	return err
}

// OutputContext executes a command and returns stdout, with stderr in the
// error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	res, err := ExecRunner{}.Run(ctx, dir, name, args...)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Stdout, nil
}
