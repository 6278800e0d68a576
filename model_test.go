package main

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(files ...string) Model {
	return NewModel(nil, DiffPlan{Mode: WorkingTree, Command: "diff main"}, files, nil, nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelShowsAllFiles(t *testing.T) {
	model := testModel("a.go", "b/c.go", "readme.md")

	if len(model.filtered) != 3 {
		t.Fatalf("filtered = %d entries, want 3", len(model.filtered))
	}
	if model.cursor != 0 {
		t.Errorf("cursor = %d, want 0", model.cursor)
	}
	if model.Aborted() {
		t.Error("fresh model should not be aborted")
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query     string
		candidate string
		want      bool
	}{
		{"", "anything", true},
		{"abc", "a/b/c.go", true},
		{"ABC", "a/b/c.go", true},
		{"acb", "a/b/c.go", false},
		{"main", "cmd/main.go", true},
		{"zz", "cmd/main.go", false},
	}

	for _, tt := range tests {
		_, got := fuzzyMatch(tt.query, tt.candidate)
		if got != tt.want {
			t.Errorf("fuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
		}
	}
}

func TestFuzzyMatchPositions(t *testing.T) {
	positions, ok := fuzzyMatch("ac", "abc")
	if !ok {
		t.Fatal("fuzzyMatch(ac, abc) should match")
	}
	if !reflect.DeepEqual(positions, []int{0, 2}) {
		t.Errorf("positions = %v, want [0 2]", positions)
	}
}

func TestQueryFiltersList(t *testing.T) {
	model := testModel("internal/server.go", "internal/server_test.go", "docs/readme.md")

	var updated tea.Model = model
	for _, r := range "readme" {
		updated, _ = updated.(Model).Update(keyRunes(string(r)))
	}

	got := updated.(Model)
	if len(got.filtered) != 1 {
		t.Fatalf("filtered = %d entries, want 1", len(got.filtered))
	}
	if got.filtered[0].path != "docs/readme.md" {
		t.Errorf("filtered[0] = %q, want docs/readme.md", got.filtered[0].path)
	}
}

func TestCursorNavigationClamps(t *testing.T) {
	model := testModel("a.go", "b.go", "c.go")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := updated.(Model).cursor; got != 0 {
		t.Errorf("cursor after up at top = %d, want 0", got)
	}

	var current tea.Model = model
	for i := 0; i < 5; i++ {
		current, _ = current.(Model).Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := current.(Model).cursor; got != 2 {
		t.Errorf("cursor after repeated down = %d, want 2", got)
	}
}

func TestTabTogglesSelection(t *testing.T) {
	model := testModel("a.go", "b.go")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := updated.(Model)

	if !got.picked["a.go"] {
		t.Error("tab should pick the file under the cursor")
	}
	if got.cursor != 1 {
		t.Errorf("cursor after toggle = %d, want 1", got.cursor)
	}

	// Move back and toggle off.
	upModel, _ := got.Update(tea.KeyMsg{Type: tea.KeyUp})
	offModel, _ := upModel.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
	if offModel.(Model).picked["a.go"] {
		t.Error("second tab on the same file should unpick it")
	}
}

func TestPickedDefaultsToCursorFile(t *testing.T) {
	model := testModel("a.go", "b.go")

	if got := model.Picked(); !reflect.DeepEqual(got, []string{"a.go"}) {
		t.Errorf("Picked() = %v, want [a.go]", got)
	}
}

func TestPickedPreservesToggleOrder(t *testing.T) {
	model := testModel("a.go", "b.go", "c.go")

	var current tea.Model = model
	current, _ = current.(Model).Update(tea.KeyMsg{Type: tea.KeyDown})
	current, _ = current.(Model).Update(tea.KeyMsg{Type: tea.KeyTab}) // picks b.go, cursor -> c.go
	current, _ = current.(Model).Update(tea.KeyMsg{Type: tea.KeyTab}) // picks c.go

	got := current.(Model).Picked()
	if !reflect.DeepEqual(got, []string{"b.go", "c.go"}) {
		t.Errorf("Picked() = %v, want [b.go c.go]", got)
	}
}

func TestEscAborts(t *testing.T) {
	model := testModel("a.go")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should return a quit command")
	}
	if !updated.(Model).Aborted() {
		t.Error("esc should abort the picker")
	}
}

func TestCtrlCAborts(t *testing.T) {
	model := testModel("a.go")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should return a quit command")
	}
	if !updated.(Model).Aborted() {
		t.Error("ctrl+c should abort the picker")
	}
}

func TestEnterConfirms(t *testing.T) {
	model := testModel("a.go")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should return a quit command")
	}
	if updated.(Model).Aborted() {
		t.Error("enter with files listed should not abort")
	}
}

func TestEnterWithEmptyListAborts(t *testing.T) {
	model := testModel()

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !updated.(Model).Aborted() {
		t.Error("enter with nothing to pick should abort")
	}
}

func TestHelpToggle(t *testing.T) {
	model := testModel("a.go")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !updated.(Model).showHelp {
		t.Fatal("f1 should open the help modal")
	}

	closed, _ := updated.(Model).Update(tea.KeyMsg{Type: tea.KeyF1})
	if closed.(Model).showHelp {
		t.Error("second f1 should close the help modal")
	}
}

func TestFilesListedPrunesStalePicks(t *testing.T) {
	model := testModel("a.go", "b.go")
	picked, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})

	updated, _ := picked.(Model).Update(filesListedMsg{files: []string{"b.go"}})
	got := updated.(Model)

	if got.picked["a.go"] {
		t.Error("pick for a removed file should be pruned")
	}
	if len(got.filtered) != 1 || got.filtered[0].path != "b.go" {
		t.Errorf("filtered = %v, want just b.go", got.filtered)
	}
}

func TestStalePreviewIsDropped(t *testing.T) {
	model := testModel("a.go", "b.go")

	updated, _ := model.Update(previewLoadedMsg{path: "b.go", diff: FileDiff{Path: "b.go"}})
	if got := updated.(Model).previewPath; got != "" {
		t.Errorf("preview for a non-cursor file was kept, previewPath = %q", got)
	}

	updated, _ = model.Update(previewLoadedMsg{path: "a.go", diff: FileDiff{Path: "a.go"}})
	if got := updated.(Model).previewPath; got != "a.go" {
		t.Errorf("previewPath = %q, want a.go", got)
	}
}
