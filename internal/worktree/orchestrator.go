// Package worktree implements the worktree workflows: list, switch,
// remove and merge. Every workflow that lands the user somewhere ends
// with a shell hand-off.
package worktree

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fikriauliya/maestro-ai/internal/cmd"
	"github.com/fikriauliya/maestro-ai/internal/git"
	"github.com/fikriauliya/maestro-ai/internal/log"
	"github.com/fikriauliya/maestro-ai/internal/shell"
)

// Entry is a worktree as shown by List.
type Entry struct {
	git.Worktree
	Current bool `json:"current"`
	Dirty   bool `json:"dirty"`
}

// Orchestrator runs the worktree workflows for the repository containing
// the process working directory.
type Orchestrator struct {
	git   *git.Client
	shell shell.Handoff

	getwd func() (string, error)
	chdir func(string) error
}

// New returns an Orchestrator that runs git through runner and hands the
// terminal over through h.
func New(runner cmd.Runner, h shell.Handoff) *Orchestrator {
	return &Orchestrator{
		git:   git.NewClient(runner),
		shell: h,
		getwd: os.Getwd,
		chdir: os.Chdir,
	}
}

// List returns every worktree in git's order, marking the one matching the
// working directory and the non-bare ones with uncommitted changes.
func (o *Orchestrator) List(ctx context.Context) ([]Entry, error) {
	return o.entries(ctx, true)
}

// Worktrees is List without the per-worktree dirty queries.
func (o *Orchestrator) Worktrees(ctx context.Context) ([]Entry, error) {
	return o.entries(ctx, false)
}

func (o *Orchestrator) entries(ctx context.Context, dirty bool) ([]Entry, error) {
	worktrees, err := o.git.ListWorktrees(ctx)
	if err != nil {
		return nil, err
	}

	// An unknown cwd just means no entry is marked current.
	cwd, _ := o.getwd()

	entries := make([]Entry, 0, len(worktrees))
	for _, wt := range worktrees {
		e := Entry{Worktree: wt}
		e.Current = cwd != "" && samePath(wt.Path, cwd)
		if dirty && !wt.IsBare {
			e.Dirty = o.git.IsDirty(ctx, wt.Path)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Switch hands off to the worktree checked out on branch, creating it
// first as "<repo>.<branch>" next to the repository when none exists.
func (o *Orchestrator) Switch(ctx context.Context, branch string) error {
	if branch == "" {
		return precondition("branch name required")
	}

	worktrees, err := o.git.ListWorktrees(ctx)
	if err != nil {
		return err
	}
	if wt, ok := git.FindByBranch(worktrees, branch); ok {
		log.FromContext(ctx).Debug("switching to existing worktree", "branch", branch, "path", wt.Path)
		return o.shell.Handoff(wt.Path)
	}

	root, err := o.git.RepoRoot(ctx)
	if err != nil {
		return resolution(err, "cannot determine repository root")
	}
	path, err := SiblingPath(root, branch)
	if err != nil {
		return err
	}
	base, err := o.git.DefaultBranch(ctx)
	if err != nil {
		return resolution(err, "cannot resolve base branch")
	}

	if err := o.git.AddWorktree(ctx, path, branch, base); err != nil {
		return err
	}
	log.FromContext(ctx).Printf("Created worktree at %s\n", path)

	return o.shell.Handoff(path)
}

// Remove deletes the current worktree and its branch, then hands off to
// the main worktree.
func (o *Orchestrator) Remove(ctx context.Context) error {
	l := log.FromContext(ctx)

	current, worktrees, err := o.current(ctx)
	if err != nil {
		return err
	}

	home, ok := mainWorktree(worktrees, current)
	if !ok {
		return resolution(nil, "cannot find main worktree")
	}

	if o.git.IsDirty(ctx, current.Path) {
		return errDirty()
	}

	if err := o.chdir(home.Path); err != nil {
		return fmt.Errorf("failed to change directory to %s: %w", home.Path, err)
	}

	if err := o.git.RemoveWorktree(ctx, current.Path); err != nil {
		return err
	}
	if err := o.git.DeleteBranch(ctx, current.Branch); err != nil {
		l.Warnf("Could not delete branch: %v", err)
	}
	l.Printf("Removed worktree and branch '%s'\n", current.Branch)

	return o.shell.Handoff(home.Path)
}

// Merge squash-merges the current branch into the default branch's
// worktree, removes the current worktree and branch, then hands off to
// the default branch's worktree.
func (o *Orchestrator) Merge(ctx context.Context) error {
	l := log.FromContext(ctx)

	current, worktrees, err := o.current(ctx)
	if err != nil {
		return err
	}

	target, err := o.git.DefaultBranch(ctx)
	if err != nil {
		return resolution(err, "cannot resolve default branch")
	}
	if current.Branch == target {
		return precondition("cannot merge %s into itself", target)
	}

	if o.git.IsDirty(ctx, current.Path) {
		return errDirty()
	}

	dest, ok := git.FindByBranch(worktrees, target)
	if !ok {
		return resolution(nil, "cannot find worktree for branch '%s'", target)
	}

	if err := o.chdir(dest.Path); err != nil {
		return fmt.Errorf("failed to change directory to %s: %w", dest.Path, err)
	}

	if err := o.git.MergeSquash(ctx, current.Branch); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	msg := fmt.Sprintf("Merge branch '%s'", current.Branch)
	if err := o.git.Commit(ctx, msg); err != nil {
		if !errors.Is(err, git.ErrNothingToCommit) {
			return fmt.Errorf("commit failed: %w", err)
		}
		l.Debug("nothing to commit after squash merge", "branch", current.Branch)
	}

	if err := o.git.RemoveWorktree(ctx, current.Path); err != nil {
		l.Warnf("Could not remove worktree: %v", err)
	}
	if err := o.git.DeleteBranch(ctx, current.Branch); err != nil {
		l.Warnf("Could not delete branch: %v", err)
	}
	l.Printf("Merged '%s' into '%s' and cleaned up\n", current.Branch, target)

	return o.shell.Handoff(dest.Path)
}

// current returns the non-bare worktree matching the working directory,
// which must have a branch checked out, along with every worktree.
func (o *Orchestrator) current(ctx context.Context) (git.Worktree, []git.Worktree, error) {
	cwd, err := o.getwd()
	if err != nil {
		return git.Worktree{}, nil, precondition("cannot determine current directory: %v", err)
	}

	worktrees, err := o.git.ListWorktrees(ctx)
	if err != nil {
		return git.Worktree{}, nil, err
	}

	for _, wt := range worktrees {
		if !samePath(wt.Path, cwd) {
			continue
		}
		if wt.IsBare {
			return git.Worktree{}, nil, precondition("not in a worktree (in bare repository)")
		}
		if !wt.HasBranch() {
			return git.Worktree{}, nil, precondition("cannot determine current branch")
		}
		return wt, worktrees, nil
	}
	return git.Worktree{}, nil, precondition("not in a worktree")
}

// mainWorktree picks the first non-bare worktree other than current,
// falling back to the bare repository entry.
func mainWorktree(worktrees []git.Worktree, current git.Worktree) (git.Worktree, bool) {
	for _, wt := range worktrees {
		if !wt.IsBare && !samePath(wt.Path, current.Path) {
			return wt, true
		}
	}
	for _, wt := range worktrees {
		if wt.IsBare {
			return wt, true
		}
	}
	return git.Worktree{}, false
}

func errDirty() *Error {
	return precondition("worktree has uncommitted changes. Commit or stash first.")
}
