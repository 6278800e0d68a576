package main

import "fmt"

// DiffMode selects the reference point changed files are computed against.
type DiffMode int

const (
	// WorkingTree diffs against the default branch.
	WorkingTree DiffMode = iota
	// Branch is an explicit alias of WorkingTree.
	Branch
	// Remote diffs against <remote>/<default branch>.
	Remote
	// Upstream diffs against <remote>/<current branch>.
	Upstream
	// Revlist diffs against HEAD~N where N is the number of commits the
	// current branch is ahead of the default branch.
	Revlist
	// RevlistRemote diffs against <remote>/HEAD~N with the same N.
	RevlistRemote
)

// DefaultDiffMode is used when no --mode flag or config key is given.
const DefaultDiffMode = RevlistRemote

// String returns the flag spelling of the mode.
func (m DiffMode) String() string {
	switch m {
	case WorkingTree:
		return "working-tree"
	case Branch:
		return "branch"
	case Remote:
		return "remote"
	case Upstream:
		return "upstream"
	case Revlist:
		return "revlist"
	case RevlistRemote:
		return "revlist-remote"
	default:
		return "unknown"
	}
}

// ParseDiffMode parses the flag spelling of a diff mode.
func ParseDiffMode(s string) (DiffMode, error) {
	switch s {
	case "working-tree":
		return WorkingTree, nil
	case "branch":
		return Branch, nil
	case "remote":
		return Remote, nil
	case "upstream":
		return Upstream, nil
	case "revlist":
		return Revlist, nil
	case "revlist-remote", "":
		return RevlistRemote, nil
	default:
		return DefaultDiffMode, fmt.Errorf("unknown diff mode %q", s)
	}
}

// PlanInputs carries the resolved repository state a plan is built from.
// Only the fields a mode needs are consulted: CurrentBranch for Upstream,
// Ahead for the revlist modes.
type PlanInputs struct {
	Remote        string
	DefaultBranch string
	CurrentBranch string
	Ahead         int
	Staged        bool
}

// DiffPlan is the assembled git diff subcommand, e.g. "diff origin/main --cached".
// It is immutable once built; the lister and the preview both derive their
// argument vectors from it.
type DiffPlan struct {
	Mode    DiffMode
	Command string
}

// BuildPlan maps a diff mode plus resolved repository state to the concrete
// diff subcommand string. The --cached suffix is appended exactly when the
// index holds staged changes; it never changes the base ref.
func BuildPlan(mode DiffMode, in PlanInputs) DiffPlan {
	var command string
	switch mode {
	case WorkingTree, Branch:
		command = fmt.Sprintf("diff %s", in.DefaultBranch)
	case Upstream:
		command = fmt.Sprintf("diff %s/%s", in.Remote, in.CurrentBranch)
	case Remote:
		command = fmt.Sprintf("diff %s/%s", in.Remote, in.DefaultBranch)
	case Revlist:
		command = fmt.Sprintf("diff HEAD~%d", in.Ahead)
	case RevlistRemote:
		command = fmt.Sprintf("diff %s/HEAD~%d", in.Remote, in.Ahead)
	}

	if in.Staged {
		command += " --cached"
	}

	return DiffPlan{Mode: mode, Command: command}
}
