package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// matchedFile is a changed file that passed the query filter, with the
// rune positions the query matched for highlighting.
type matchedFile struct {
	path      string
	positions []int
}

// Model holds the picker state
type Model struct {
	service *GitService
	plan    DiffPlan
	watcher *repoWatcher
	logger  *Logger
	hl      *highlighter

	query    textinput.Model
	files    []string
	filtered []matchedFile
	cursor   int
	scroll   int

	picked    map[string]bool
	pickOrder []string

	preview       FileDiff
	previewPath   string
	previewErr    error
	previewScroll int

	width    int
	height   int
	showHelp bool
	aborted  bool
	err      error
}

// NewModel creates a picker over the given plan's changed files.
func NewModel(service *GitService, plan DiffPlan, files []string, watcher *repoWatcher, logger *Logger) Model {
	query := textinput.New()
	query.Placeholder = "filter files"
	query.Prompt = "> "
	query.Focus()

	m := Model{
		service: service,
		plan:    plan,
		watcher: watcher,
		logger:  logger,
		hl:      newHighlighter(),
		query:   query,
		files:   files,
		picked:  make(map[string]bool),
	}
	m.refilter()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.loadPreview()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.NextChange())
	}
	return tea.Batch(cmds...)
}

// Aborted reports whether the user left without confirming a selection.
func (m Model) Aborted() bool {
	return m.aborted
}

// Picked returns the confirmed files in the order they were toggled.
// With nothing toggled, the file under the cursor is the selection.
func (m Model) Picked() []string {
	if len(m.pickOrder) > 0 {
		result := make([]string, 0, len(m.pickOrder))
		for _, path := range m.pickOrder {
			if m.picked[path] {
				result = append(result, path)
			}
		}
		return result
	}
	if current, ok := m.currentFile(); ok {
		return []string{current}
	}
	return nil
}

func (m Model) currentFile() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return "", false
	}
	return m.filtered[m.cursor].path, true
}

// loadPreview fetches and parses the diff for the file under the cursor.
func (m Model) loadPreview() tea.Cmd {
	path, ok := m.currentFile()
	if !ok || m.service == nil {
		return nil
	}
	runner := m.service.Runner()
	plan := m.plan
	return func() tea.Msg {
		args, err := PreviewArgs(plan, path)
		if err != nil {
			return previewLoadedMsg{path: path, err: err}
		}
		out, err := runner.Output(args...)
		if err != nil {
			return previewLoadedMsg{path: path, err: err}
		}
		diffs := ParseUnifiedDiff(out)
		if len(diffs) == 0 {
			return previewLoadedMsg{path: path}
		}
		return previewLoadedMsg{path: path, diff: diffs[0]}
	}
}

// listFiles re-runs the plan to pick up working tree changes.
func (m Model) listFiles() tea.Cmd {
	if m.service == nil {
		return nil
	}
	runner := m.service.Runner()
	plan := m.plan
	return func() tea.Msg {
		files, err := ListChangedFiles(runner, plan)
		if err != nil {
			return errMsg{err}
		}
		return filesListedMsg{files}
	}
}

// Messages

type filesListedMsg struct {
	files []string
}

type previewLoadedMsg struct {
	path string
	diff FileDiff
	err  error
}

type errMsg struct {
	err error
}
