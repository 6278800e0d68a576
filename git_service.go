package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultRemote is used when no --remote override is given and the current
// branch has no upstream configured. This fallback is deliberate: comparing
// against the default branch must stay possible in repositories where the
// local branch was never pushed.
const DefaultRemote = "origin"

// GitService wraps repository access: go-git for repository discovery and
// reference resolution, a subprocess runner for everything that has to go
// through the real git binary.
type GitService struct {
	repo   *git.Repository
	runner *GitRunner
	root   string
}

// NewGitService discovers the repository containing the current directory.
func NewGitService() (*GitService, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(cwd, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open git repository at %s: %w", cwd, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &GitService{repo: repo, runner: NewGitRunner(root), root: root}, nil
}

// newGitServiceAt opens an existing repository rooted at dir, for tests.
func newGitServiceAt(repo *git.Repository, root string) *GitService {
	return &GitService{repo: repo, runner: NewGitRunner(root), root: root}
}

// Runner returns the subprocess runner rooted at the repository top level.
func (gs *GitService) Runner() *GitRunner {
	return gs.runner
}

// RootPath returns the repository root.
func (gs *GitService) RootPath() string {
	return gs.root
}

// WorkingDir returns the invoking working directory relative to the
// repository root, slash-separated, empty when invoked at the root.
func (gs *GitService) WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	rel, err := filepath.Rel(gs.root, cwd)
	if err != nil {
		return "", fmt.Errorf("locate %s within %s: %w", cwd, gs.root, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// CurrentBranch returns the current branch's short name, or the shortened
// commit hash in detached HEAD state.
func (gs *GitService) CurrentBranch() (string, error) {
	ref, err := gs.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD reference: %w", err)
	}

	if ref.Name().IsBranch() {
		return ref.Name().Short(), nil
	}

	hashStr := ref.Hash().String()
	if len(hashStr) > 7 {
		return hashStr[:7], nil
	}
	return hashStr, nil
}

// ResolveRemote returns the remote changed files are compared against: the
// override when given, else the remote the current branch tracks, else
// DefaultRemote.
func (gs *GitService) ResolveRemote(override string) string {
	if override != "" {
		return override
	}

	branch, err := gs.CurrentBranch()
	if err != nil {
		return DefaultRemote
	}

	cfg, err := gs.repo.Config()
	if err != nil {
		return DefaultRemote
	}

	if b, ok := cfg.Branches[branch]; ok && b.Remote != "" {
		return b.Remote
	}
	return DefaultRemote
}

// ResolveDefaultBranch resolves the branch the remote's symbolic HEAD points
// at, through a plumbing reference lookup rather than a raw read of git's
// internal file layout. A missing reference means the remote was never
// fetched; both that and a malformed target are fatal, since without a
// default branch most diff modes are undefined.
func (gs *GitService) ResolveDefaultBranch(remote string) (string, error) {
	headRef := plumbing.ReferenceName("refs/remotes/" + remote + "/HEAD")

	ref, err := gs.repo.Reference(headRef, false)
	if err != nil {
		return "", fmt.Errorf("resolve %s (was the remote ever fetched?): %w", headRef, err)
	}

	return parseRemoteHead(remote, ref.Target().String())
}

// parseRemoteHead extracts the branch name from a remote HEAD target, which
// must match refs/remotes/<remote>/<branch>.
func parseRemoteHead(remote, target string) (string, error) {
	prefix := "refs/remotes/" + remote + "/"
	branch, ok := strings.CutPrefix(strings.TrimSpace(target), prefix)
	if !ok || branch == "" {
		return "", fmt.Errorf("remote HEAD target %q does not match %s<branch>", target, prefix)
	}
	return branch, nil
}

// HasStagedChanges reports whether the index differs from HEAD, via the
// shortstat summary of the cached diff.
func (gs *GitService) HasStagedChanges() (bool, error) {
	out, err := gs.runner.OutputTrimmed("diff", "--cached", "--shortstat")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// AheadCount returns how many commits HEAD is ahead of the given branch:
// commits reachable from HEAD but not from the branch.
func (gs *GitService) AheadCount(branch string) (int, error) {
	out, err := gs.runner.OutputTrimmed("rev-list", "--count", "HEAD", "^"+branch)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parse rev-list count %q: %w", out, err)
	}
	return n, nil
}

// AssemblePlan gathers the repository state the mode needs and builds the
// diff plan. Every subordinate query failure is fatal; there is no partial or
// degraded plan.
func (gs *GitService) AssemblePlan(mode DiffMode, remote string) (DiffPlan, error) {
	defaultBranch, err := gs.ResolveDefaultBranch(remote)
	if err != nil {
		return DiffPlan{}, err
	}

	staged, err := gs.HasStagedChanges()
	if err != nil {
		return DiffPlan{}, err
	}

	inputs := PlanInputs{
		Remote:        remote,
		DefaultBranch: defaultBranch,
		Staged:        staged,
	}

	switch mode {
	case Upstream:
		inputs.CurrentBranch, err = gs.CurrentBranch()
		if err != nil {
			return DiffPlan{}, err
		}
	case Revlist, RevlistRemote:
		inputs.Ahead, err = gs.AheadCount(defaultBranch)
		if err != nil {
			return DiffPlan{}, err
		}
	}

	return BuildPlan(mode, inputs), nil
}
