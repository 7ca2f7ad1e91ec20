// Package cmd runs external programs (git, the user's shell) and captures
// their exit code, stdout and stderr.
//
// [Runner] is the seam the rest of maestro depends on. [ExecRunner] is the
// production implementation; tests substitute a recording fake that scripts
// responses and asserts which commands were issued.
//
// # Usage
//
//	res, err := cmd.ExecRunner{}.Run(ctx, "", "git", "status", "--porcelain")
//	if err != nil {
//	    return err // git could not be started
//	}
//	if err := res.Err(); err != nil {
//	    return err // *cmd.Error, message is git's stderr
//	}
//
// Commands run synchronously without a timeout of their own; a hung tool
// hangs the caller unless ctx is cancelled. Nothing is retried.
package cmd
