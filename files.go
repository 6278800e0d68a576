package main

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// PlanArgs tokenizes the plan's assembled command with shell-word splitting.
// The command is a single string so ref names with slashes and numeric
// suffixes survive assembly; splitting happens once, here, before the argv
// call. Extra arguments are appended after the plan's own tokens.
func PlanArgs(plan DiffPlan, extra ...string) ([]string, error) {
	args, err := shellquote.Split(plan.Command)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", plan.Command, err)
	}
	return append(args, extra...), nil
}

// ListChangedFiles runs the plan with --name-only and returns the changed
// file paths, repository-root-relative, in the order git emits them. An empty
// slice is a valid result meaning nothing changed.
func ListChangedFiles(runner *GitRunner, plan DiffPlan) ([]string, error) {
	args, err := PlanArgs(plan, "--name-only")
	if err != nil {
		return nil, err
	}

	out, err := runner.Output(args...)
	if err != nil {
		return nil, err
	}

	return parseNameOnly(out), nil
}

// parseNameOnly splits --name-only output into paths, discarding empty lines
// and preserving git's ordering.
func parseNameOnly(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files
}

// PreviewArgs builds the argv for the diff preview of a single file: the
// planned diff restricted to that path.
func PreviewArgs(plan DiffPlan, path string) ([]string, error) {
	return PlanArgs(plan, "--", path)
}
