package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fikriauliya/maestro-ai/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Errorf("RunContext(echo hello) = %v, want nil", err)
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunContext(logCtx(), "", "sh", "-c", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "bad thing")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("RunContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()
	// Verify command runs in specified directory
	err := RunContext(logCtx(), "/tmp", "pwd")
	if err != nil {
		t.Errorf("RunContext with dir = %v, want nil", err)
	}
}

func TestOutputContext_Success(t *testing.T) {
	t.Parallel()
	out, err := OutputContext(logCtx(), "", "echo", "hello")
	if err != nil {
		t.Fatalf("OutputContext(echo hello) = %v, want nil", err)
	}
	if got := string(out); got != "hello\n" {
		t.Errorf("OutputContext output = %q, want %q", got, "hello\n")
	}
}

func TestOutputContext_Failure(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "exit 1")
	if err == nil {
		t.Error("OutputContext(exit 1) = nil, want error")
	}
}

func TestOutputContext_StderrMessage(t *testing.T) {
	t.Parallel()
	_, err := OutputContext(logCtx(), "", "sh", "-c", "echo 'error msg' >&2; exit 1")
	if err == nil {
		t.Fatal("OutputContext = nil, want error")
	}
	if err.Error() != "error msg" {
		t.Errorf("OutputContext error = %q, want %q", err.Error(), "error msg")
	}
}

func TestOutputContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	_, err := OutputContext(ctx, "", "sleep", "10")
	if err == nil {
		t.Error("OutputContext with cancelled context = nil, want error")
	}
	if err != context.Canceled {
		t.Errorf("OutputContext error = %v, want context.Canceled", err)
	}
}

func TestExecRunner_CapturesExitCode(t *testing.T) {
	t.Parallel()
	res, err := ExecRunner{}.Run(logCtx(), "", "sh", "-c", "echo out; echo err >&2; exit 3")
	if err != nil {
		t.Fatalf("Run = %v, want nil error for non-zero exit", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Success() {
		t.Error("Success() = true, want false")
	}
	if got := string(res.Stdout); got != "out\n" {
		t.Errorf("Stdout = %q, want %q", got, "out\n")
	}
	if got := string(res.Stderr); got != "err\n" {
		t.Errorf("Stderr = %q, want %q", got, "err\n")
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	t.Parallel()
	_, err := ExecRunner{}.Run(logCtx(), "", "maestro-no-such-binary-xyz")
	if err == nil {
		t.Error("Run(missing binary) = nil, want error")
	}
}

func TestExecRunner_LogsCommandWhenVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if _, err := (ExecRunner{}).Run(ctx, "", "echo", "hi"); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if !strings.Contains(buf.String(), "$ echo hi") {
		t.Errorf("log output = %q, want it to contain %q", buf.String(), "$ echo hi")
	}
}

func TestResultErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		res     Result
		wantErr string
	}{
		{
			name: "success",
			res:  Result{Args: []string{"git", "status"}},
		},
		{
			name:    "stderr is the message",
			res:     Result{Args: []string{"git", "commit"}, ExitCode: 1, Stderr: []byte("nothing to commit\n")},
			wantErr: "nothing to commit",
		},
		{
			name:    "empty stderr falls back to exit status",
			res:     Result{Args: []string{"git", "branch", "-d", "x"}, ExitCode: 1},
			wantErr: "git branch -d x: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.res.Err()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Err() = %v, want nil", err)
				}
				return
			}
			var cmdErr *Error
			if !errors.As(err, &cmdErr) {
				t.Fatalf("Err() = %T, want *Error", err)
			}
			if cmdErr.ExitCode != tt.res.ExitCode {
				t.Errorf("ExitCode = %d, want %d", cmdErr.ExitCode, tt.res.ExitCode)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Err() = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}
