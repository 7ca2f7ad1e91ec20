package worktree

import (
	"errors"
	"fmt"
)

// Kind classifies workflow failures that happen before any mutation.
type Kind int

const (
	// KindPrecondition: the caller's state does not allow the workflow
	// (not in a worktree, no branch, dirty tree, merging the default branch).
	KindPrecondition Kind = iota + 1
	// KindResolution: the repository root, parent directory, default branch
	// or target worktree could not be determined.
	KindResolution
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition failed"
	case KindResolution:
		return "resolution failed"
	default:
		return "unknown"
	}
}

// Error is a precondition or resolution failure of a workflow. External
// command failures are reported as *cmd.Error instead.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func precondition(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...)}
}

func resolution(err error, format string, args ...any) *Error {
	return &Error{Kind: KindResolution, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsPrecondition reports whether err is a precondition failure.
func IsPrecondition(err error) bool {
	return isKind(err, KindPrecondition)
}

// IsResolution reports whether err is a resolution failure.
func IsResolution(err error) bool {
	return isKind(err, KindResolution)
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
