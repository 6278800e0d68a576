package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitRunner executes git subcommands as plain argv subprocess calls rooted at
// the repository top level, so every path git prints is root-relative.
type GitRunner struct {
	dir string
}

// NewGitRunner creates a runner for the repository rooted at dir.
func NewGitRunner(dir string) *GitRunner {
	return &GitRunner{dir: dir}
}

// Output runs git with the given arguments and returns its stdout. A non-zero
// exit surfaces git's stderr in the returned error; there are no retries.
func (r *GitRunner) Output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// OutputTrimmed runs git and trims surrounding whitespace from its stdout.
func (r *GitRunner) OutputTrimmed(args ...string) (string, error) {
	out, err := r.Output(args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
