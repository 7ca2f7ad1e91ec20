package git

import "strings"

// Porcelain line markers of `git worktree list --porcelain`.
const (
	worktreePrefix = "worktree "
	headPrefix     = "HEAD "
	branchPrefix   = "branch refs/heads/"
	bareMarker     = "bare"
	detachedMarker = "detached"
	lockedMarker   = "locked"
	prunableMarker = "prunable"
)

// Worktree is one record of the porcelain worktree listing.
type Worktree struct {
	Path     string `json:"path"`
	Branch   string `json:"branch,omitempty"` // short name, empty when detached or bare
	Head     string `json:"head,omitempty"`
	IsBare   bool   `json:"is_bare"`
	Detached bool   `json:"detached,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Prunable bool   `json:"prunable,omitempty"`
}

// HasBranch reports whether a local branch is checked out in the worktree.
func (w Worktree) HasBranch() bool {
	return w.Branch != ""
}

// BranchLabel returns the branch name for display, or "(bare)" /
// "(detached)" when no branch is checked out.
func (w Worktree) BranchLabel() string {
	switch {
	case w.HasBranch():
		return w.Branch
	case w.IsBare:
		return "(bare)"
	default:
		return "(detached)"
	}
}

// ParsePorcelain parses the output of `git worktree list --porcelain`.
//
// Each "worktree <path>" line starts a new record; branch, HEAD and marker
// lines apply to the most recent record. Lines before the first path and
// unrecognized lines are ignored, so malformed or empty input yields an
// empty result rather than an error.
func ParsePorcelain(out string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, worktreePrefix) {
			if current != nil {
				worktrees = append(worktrees, *current)
			}
			current = &Worktree{Path: strings.TrimPrefix(line, worktreePrefix)}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, branchPrefix):
			current.Branch = strings.TrimPrefix(line, branchPrefix)
		case strings.HasPrefix(line, headPrefix):
			current.Head = strings.TrimPrefix(line, headPrefix)
		case line == bareMarker:
			current.IsBare = true
		case line == detachedMarker:
			current.Detached = true
		case line == lockedMarker || strings.HasPrefix(line, lockedMarker+" "):
			current.Locked = true
		case line == prunableMarker || strings.HasPrefix(line, prunableMarker+" "):
			current.Prunable = true
		}
	}

	// No trailing terminator is guaranteed.
	if current != nil {
		worktrees = append(worktrees, *current)
	}

	return worktrees
}

// FindByBranch returns the first worktree with the given branch checked out.
func FindByBranch(worktrees []Worktree, branch string) (Worktree, bool) {
	for _, wt := range worktrees {
		if wt.HasBranch() && wt.Branch == branch {
			return wt, true
		}
	}
	return Worktree{}, false
}
