// Package git drives the git CLI for worktree workflows.
//
// Every invocation goes through a [cmd.Runner], so callers can swap in a
// recording runner in tests. git's machine-readable output is treated as a
// fixed wire format: [ParsePorcelain] ignores anything it does not
// recognize instead of failing.
//
// # Queries
//
//   - [Client.ListWorktrees]: parsed `git worktree list --porcelain`
//   - [Client.IsDirty]: uncommitted changes in a worktree
//   - [Client.RepoRoot], [Client.DefaultBranch]: repository resolution
//
// # Mutations
//
//   - [Client.AddWorktree], [Client.RemoveWorktree], [Client.DeleteBranch]
//   - [Client.MergeSquash], [Client.Commit]
//
// Mutations return a *[cmd.Error] carrying git's stderr when git fails.
package git
