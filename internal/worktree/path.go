package worktree

import (
	"path/filepath"
)

// SiblingPath returns the path for a new worktree of branch: a directory
// named "<repo>.<branch>" next to the repository root.
func SiblingPath(repoRoot, branch string) (string, error) {
	root := filepath.Clean(repoRoot)

	name := filepath.Base(root)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", resolution(nil, "cannot determine repo name")
	}

	parent := filepath.Dir(root)
	if parent == root || parent == "." {
		return "", resolution(nil, "cannot determine parent directory")
	}

	return filepath.Join(parent, name+"."+branch), nil
}

// samePath reports whether a and b name the same directory, first by
// cleaned path and then with symlinks resolved.
func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		return false
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		return false
	}
	return ra == rb
}
