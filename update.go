package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case filesListedMsg:
		m.files = msg.files
		m.prunePicked()
		m.refilter()
		return m, m.loadPreview()

	case previewLoadedMsg:
		// A stale preview can arrive after the cursor moved on.
		if current, ok := m.currentFile(); !ok || current != msg.path {
			return m, nil
		}
		m.preview = msg.diff
		m.previewPath = msg.path
		m.previewErr = msg.err
		m.previewScroll = 0
		return m, nil

	case fsChangeMsg:
		cmds := []tea.Cmd{m.listFiles()}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.NextChange())
		}
		return m, tea.Batch(cmds...)

	case errMsg:
		m.err = msg.err
		if m.logger != nil {
			m.logger.Error("picker error", msg.err, nil)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "f1", "esc", "q":
			m.showHelp = false
		case "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		if len(m.filtered) == 0 {
			m.aborted = true
		}
		return m, tea.Quit

	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, m.loadPreview()

	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, m.loadPreview()

	case "pgup":
		m.previewScroll = max(0, m.previewScroll-m.previewPageSize())
		return m, nil

	case "pgdown":
		m.previewScroll = clamp(m.previewScroll+m.previewPageSize(), 0, max(0, m.previewLineCount()-1))
		return m, nil

	case "tab":
		m.togglePicked()
		return m, nil

	case "f1":
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	before := m.query.Value()
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() != before {
		m.refilter()
		return m, tea.Batch(cmd, m.loadPreview())
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.filtered)-1)
	m.scrollCursorIntoView()
}

func (m *Model) scrollCursorIntoView() {
	window := m.listWindow()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if window > 0 && m.cursor >= m.scroll+window {
		m.scroll = m.cursor - window + 1
	}
}

func (m *Model) listWindow() int {
	return panelContentHeight(contentHeight(m.height))
}

func (m *Model) previewPageSize() int {
	return max(1, m.listWindow())
}

func (m *Model) previewLineCount() int {
	count := 0
	for _, hunk := range m.preview.Hunks {
		count += 1 + len(hunk.Lines)
	}
	return count
}

func (m *Model) togglePicked() {
	path, ok := m.currentFile()
	if !ok {
		return
	}
	if m.picked[path] {
		delete(m.picked, path)
	} else {
		m.picked[path] = true
		m.pickOrder = append(m.pickOrder, path)
	}
	m.moveCursor(1)
}

// prunePicked drops picks for files no longer in the changed set.
func (m *Model) prunePicked() {
	present := make(map[string]bool, len(m.files))
	for _, f := range m.files {
		present[f] = true
	}
	for path := range m.picked {
		if !present[path] {
			delete(m.picked, path)
		}
	}
}

// refilter recomputes the visible list from the query.
func (m *Model) refilter() {
	query := m.query.Value()
	m.filtered = m.filtered[:0]
	for _, path := range m.files {
		if positions, ok := fuzzyMatch(query, path); ok {
			m.filtered = append(m.filtered, matchedFile{path: path, positions: positions})
		}
	}
	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.scroll = clamp(m.scroll, 0, max(0, len(m.filtered)-1))
	m.scrollCursorIntoView()
}

// fuzzyMatch reports whether every rune of query appears in order in
// candidate, ignoring case, and returns the matched rune positions.
func fuzzyMatch(query, candidate string) ([]int, bool) {
	if query == "" {
		return nil, true
	}
	queryRunes := []rune(strings.ToLower(query))
	positions := make([]int, 0, len(queryRunes))
	qi := 0
	for i, r := range []rune(strings.ToLower(candidate)) {
		if qi < len(queryRunes) && r == queryRunes[qi] {
			positions = append(positions, i)
			qi++
		}
	}
	if qi < len(queryRunes) {
		return nil, false
	}
	return positions, true
}
