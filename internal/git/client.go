package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fikriauliya/maestro-ai/internal/cmd"
)

// ErrNoDefaultBranch is returned when neither the remote HEAD nor a local
// main/master branch identifies the default branch.
var ErrNoDefaultBranch = errors.New("cannot determine default branch")

// ErrNotInRepo is returned when the working directory is not inside a
// git repository.
var ErrNotInRepo = errors.New("not in a git repository")

// ErrNothingToCommit is returned by Commit when git refused to create an
// empty commit.
var ErrNothingToCommit = errors.New("nothing to commit")

// defaultBranchCandidates are probed in order when origin/HEAD is unset.
var defaultBranchCandidates = []string{"main", "master"}

// Client runs git subcommands through a cmd.Runner.
type Client struct {
	runner cmd.Runner
	dir    string
}

// NewClient returns a Client using r for every git invocation.
func NewClient(r cmd.Runner) *Client {
	return &Client{runner: r}
}

// In returns a copy of the client that runs git with -C dir.
func (c *Client) In(dir string) *Client {
	return &Client{runner: c.runner, dir: dir}
}

// ListWorktrees returns the worktrees of the current repository in git's
// listing order.
func (c *Client) ListWorktrees(ctx context.Context) ([]Worktree, error) {
	out, err := c.output(ctx, "", "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParsePorcelain(string(out)), nil
}

// IsDirty reports whether the worktree at path has uncommitted changes or
// untracked files. A failing status query counts as clean.
func (c *Client) IsDirty(ctx context.Context, path string) bool {
	out, err := c.output(ctx, path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// ListBranches returns the local branch names in refname order.
func (c *Client) ListBranches(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "", "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, err
	}
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// RepoRoot returns the top-level directory of the current worktree.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	if !res.Success() {
		return "", ErrNotInRepo
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}

// DefaultBranch resolves the repository's default branch: the branch
// origin/HEAD points at, else the first of main and master that exists
// locally.
func (c *Client) DefaultBranch(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "", "symbolic-ref", "refs/remotes/origin/HEAD")
	if err != nil {
		return "", err
	}
	if res.Success() {
		ref := strings.TrimSpace(string(res.Stdout))
		if branch, ok := strings.CutPrefix(ref, "refs/remotes/origin/"); ok {
			return branch, nil
		}
	}

	for _, branch := range defaultBranchCandidates {
		res, err := c.run(ctx, "", "rev-parse", "--verify", "refs/heads/"+branch)
		if err != nil {
			return "", err
		}
		if res.Success() {
			return branch, nil
		}
	}

	return "", ErrNoDefaultBranch
}

// AddWorktree creates a worktree at path on a new branch forked from base.
func (c *Client) AddWorktree(ctx context.Context, path, branch, base string) error {
	_, err := c.output(ctx, "", "worktree", "add", "-b", branch, path, base)
	return err
}

// RemoveWorktree removes the worktree at path. git refuses to remove the
// worktree the process is currently in.
func (c *Client) RemoveWorktree(ctx context.Context, path string) error {
	_, err := c.output(ctx, "", "worktree", "remove", path)
	return err
}

// DeleteBranch deletes a fully merged local branch.
func (c *Client) DeleteBranch(ctx context.Context, branch string) error {
	_, err := c.output(ctx, "", "branch", "-d", branch)
	return err
}

// MergeSquash stages the changes of branch as a single squashed change.
func (c *Client) MergeSquash(ctx context.Context, branch string) error {
	_, err := c.output(ctx, "", "merge", "--squash", branch)
	return err
}

// Commit records the staged changes. Returns ErrNothingToCommit when git
// reports there was nothing staged.
func (c *Client) Commit(ctx context.Context, message string) error {
	res, err := c.run(ctx, "", "commit", "-m", message)
	if err != nil {
		return err
	}
	if res.Success() {
		return nil
	}
	// git prints this on stdout or stderr depending on version and state.
	if strings.Contains(string(res.Stderr), "nothing to commit") ||
		strings.Contains(string(res.Stdout), "nothing to commit") {
		return fmt.Errorf("%w: %w", ErrNothingToCommit, res.Err())
	}
	return res.Err()
}
