// Package cmdtest provides a scripted, recording cmd.Runner for tests.
package cmdtest

import (
	"context"
	"strings"
	"sync"

	"github.com/fikriauliya/maestro-ai/internal/cmd"
)

// Response is the scripted outcome of a command.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error // returned as the Run error (command could not start)
}

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Args []string // program name followed by its arguments
}

// String returns the command line joined by spaces.
func (c Call) String() string {
	return strings.Join(c.Args, " ")
}

type rule struct {
	prefix string
	resp   Response
}

// Recorder records every command and answers with the response whose
// command-line prefix matches the longest. Unmatched commands succeed with
// empty output.
type Recorder struct {
	mu    sync.Mutex
	rules []rule
	calls []Call
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// On scripts resp for every command line equal to prefix or starting with
// prefix followed by a space.
func (r *Recorder) On(prefix string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{prefix: prefix, resp: resp})
	return r
}

// Run implements cmd.Runner.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) (cmd.Result, error) {
	call := Call{Dir: dir, Args: append([]string{name}, args...)}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	resp, _ := r.match(call.String())
	r.mu.Unlock()

	res := cmd.Result{
		Args:     call.Args,
		ExitCode: resp.ExitCode,
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
	}
	return res, resp.Err
}

func (r *Recorder) match(line string) (Response, bool) {
	best := -1
	for i, ru := range r.rules {
		if line != ru.prefix && !strings.HasPrefix(line, ru.prefix+" ") {
			continue
		}
		if best < 0 || len(ru.prefix) >= len(r.rules[best].prefix) {
			best = i
		}
	}
	if best < 0 {
		return Response{}, false
	}
	return r.rules[best].resp, true
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Commands returns the recorded command lines in order.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}

// Ran reports whether any recorded command line starts with prefix.
func (r *Recorder) Ran(prefix string) bool {
	for _, line := range r.Commands() {
		if line == prefix || strings.HasPrefix(line, prefix+" ") {
			return true
		}
	}
	return false
}
