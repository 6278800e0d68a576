package main

import (
	"strings"
	"testing"
)

func TestBuildPlan(t *testing.T) {
	inputs := PlanInputs{
		Remote:        "origin",
		DefaultBranch: "main",
		CurrentBranch: "feature/thing",
		Ahead:         3,
	}

	tests := []struct {
		mode     DiffMode
		expected string
	}{
		{WorkingTree, "diff main"},
		{Branch, "diff main"},
		{Upstream, "diff origin/feature/thing"},
		{Remote, "diff origin/main"},
		{Revlist, "diff HEAD~3"},
		{RevlistRemote, "diff origin/HEAD~3"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			plan := BuildPlan(tt.mode, inputs)
			if plan.Command != tt.expected {
				t.Errorf("BuildPlan(%v) = %q, want %q", tt.mode, plan.Command, tt.expected)
			}
		})
	}
}

func TestBuildPlanStagedSuffix(t *testing.T) {
	modes := []DiffMode{WorkingTree, Branch, Remote, Upstream, Revlist, RevlistRemote}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			inputs := PlanInputs{
				Remote:        "origin",
				DefaultBranch: "main",
				CurrentBranch: "topic",
				Ahead:         1,
			}

			unstaged := BuildPlan(mode, inputs)
			if got := strings.Count(unstaged.Command, "--cached"); got != 0 {
				t.Errorf("unstaged plan %q contains %d --cached tokens, want 0", unstaged.Command, got)
			}

			inputs.Staged = true
			staged := BuildPlan(mode, inputs)
			if got := strings.Count(staged.Command, "--cached"); got != 1 {
				t.Errorf("staged plan %q contains %d --cached tokens, want 1", staged.Command, got)
			}
			if !strings.HasSuffix(staged.Command, " --cached") {
				t.Errorf("staged plan %q does not end with --cached", staged.Command)
			}
		})
	}
}

func TestBuildPlanBranchAliasesWorkingTree(t *testing.T) {
	inputs := PlanInputs{Remote: "origin", DefaultBranch: "main", Staged: true}

	if got, want := BuildPlan(Branch, inputs).Command, "diff main --cached"; got != want {
		t.Errorf("BuildPlan(Branch) = %q, want %q", got, want)
	}
	if BuildPlan(Branch, inputs).Command != BuildPlan(WorkingTree, inputs).Command {
		t.Error("Branch and WorkingTree plans should assemble the same command")
	}
}

func TestParseDiffMode(t *testing.T) {
	tests := []struct {
		input    string
		expected DiffMode
		wantErr  bool
	}{
		{"working-tree", WorkingTree, false},
		{"branch", Branch, false},
		{"remote", Remote, false},
		{"upstream", Upstream, false},
		{"revlist", Revlist, false},
		{"revlist-remote", RevlistRemote, false},
		{"", RevlistRemote, false},
		{"bogus", DefaultDiffMode, true},
	}

	for _, tt := range tests {
		mode, err := ParseDiffMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDiffMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if mode != tt.expected {
			t.Errorf("ParseDiffMode(%q) = %v, want %v", tt.input, mode, tt.expected)
		}
	}
}

func TestDiffModeStringRoundTrip(t *testing.T) {
	for _, mode := range []DiffMode{WorkingTree, Branch, Remote, Upstream, Revlist, RevlistRemote} {
		parsed, err := ParseDiffMode(mode.String())
		if err != nil {
			t.Fatalf("ParseDiffMode(%q) error = %v", mode.String(), err)
		}
		if parsed != mode {
			t.Errorf("round trip %v -> %q -> %v", mode, mode.String(), parsed)
		}
	}
}
