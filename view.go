package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	content := m.renderContent(contentHeight(m.height))
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	parts := []string{
		headerStyle.Render("diff_pick"),
		m.query.View(),
		modeIndicatorStyle.Render("[" + m.plan.Mode.String() + "]"),
		subtleStyle.Render(m.plan.Command),
	}

	counts := fmt.Sprintf("%d/%d", len(m.filtered), len(m.files))
	if len(m.picked) > 0 {
		counts += fmt.Sprintf(" (%d picked)", len(m.picked))
	}
	parts = append(parts, statsStyle.Render(counts))
	parts = append(parts, subtleStyle.Render("f1 help"))

	header := strings.Join(parts, " ")
	separator := lipgloss.NewStyle().
		Foreground(colorGray237).
		Render(strings.Repeat("─", max(0, m.width)))

	return lipgloss.JoinVertical(lipgloss.Left, header, separator)
}

func (m Model) renderContent(height int) string {
	left := m.renderList(listWidth(m.width), height)
	right := m.renderPreview(previewWidth(m.width), height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderList(width, height int) string {
	window := panelContentHeight(height)
	start, end := visibleRange(m.scroll, window, len(m.filtered))

	var lines []string
	if len(m.filtered) == 0 {
		lines = append(lines, panelInfoStyle.Render("no files match"))
	}
	for i := start; i < end; i++ {
		entry := m.filtered[i]

		marker := "  "
		if m.picked[entry.path] {
			marker = pickedStyle.Render("* ")
		}

		text := renderMatched(entry, i == m.cursor)
		line := marker + text
		if i == m.cursor {
			line = cursorLineStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	panelStyle := panelBaseStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// renderMatched styles a list entry, emphasising the runes the query hit.
func renderMatched(entry matchedFile, isCursor bool) string {
	base := fileStyle
	if isCursor {
		base = cursorLineStyle
	}
	if len(entry.positions) == 0 {
		return base.Render(entry.path)
	}

	matched := make(map[int]bool, len(entry.positions))
	for _, p := range entry.positions {
		matched[p] = true
	}

	var b strings.Builder
	for i, r := range []rune(entry.path) {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func (m Model) renderPreview(width, height int) string {
	allLines := m.previewLines()

	window := panelContentHeight(height)
	start, end := visibleRange(m.previewScroll, window, len(allLines))

	var lines []string
	if start < end {
		lines = allLines[start:end]
	}
	for len(lines) < window {
		lines = append(lines, "")
	}

	panelStyle := panelActiveStyle.
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height)

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) previewLines() []string {
	if m.previewErr != nil {
		return []string{errorStyle.Render(m.previewErr.Error())}
	}
	if _, ok := m.currentFile(); !ok {
		return []string{panelInfoStyle.Render("nothing to preview")}
	}
	if len(m.preview.Hunks) == 0 {
		return []string{panelInfoStyle.Render("no diff content (binary file or no changes)")}
	}

	var lines []string
	header := m.preview.Path
	if m.preview.ChangeType == Renamed && m.preview.OldPath != "" {
		header = m.preview.OldPath + " -> " + m.preview.Path
	}
	status := GetStatusStyle(m.preview.ChangeType).Render(GetStatusSymbol(m.preview.ChangeType))
	lines = append(lines, status+" "+diffFileHeaderStyle.Render(header))

	for _, hunk := range m.preview.Hunks {
		lines = append(lines, diffHunkStyle.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)))
		lines = append(lines, m.renderHunk(hunk)...)
	}
	return lines
}

func (m Model) renderHunk(hunk Hunk) []string {
	pairs := pairHunkLines(hunk.Lines)

	lines := make([]string, 0, len(hunk.Lines))
	for i, diffLine := range hunk.Lines {
		switch diffLine.Type {
		case LineAdded:
			partner, paired := pairedContent(hunk.Lines, pairs, i)
			lines = append(lines, renderChangedLine("+", diffLine.Content, partner, paired,
				diffAddedPrefixStyle, diffAddedStyle, diffAddedEmphasisStyle))
		case LineRemoved:
			partner, paired := pairedContent(hunk.Lines, pairs, i)
			lines = append(lines, renderChangedLine("-", diffLine.Content, partner, paired,
				diffRemovedPrefixStyle, diffRemovedStyle, diffRemovedEmphasisStyle))
		default:
			content := m.hl.Highlight(diffLine.Content, m.previewPath)
			lines = append(lines, diffContextStyle.Render(" ")+" "+content)
		}
	}
	return lines
}

func pairedContent(lines []DiffLine, pairs map[int]int, i int) (string, bool) {
	j, ok := pairs[i]
	if !ok || j < 0 || j >= len(lines) {
		return "", false
	}
	return lines[j].Content, true
}

// renderChangedLine renders an added or removed line, underlining the
// characters that differ from its counterpart when one exists.
func renderChangedLine(prefix, content, partner string, paired bool, prefixStyle, bodyStyle, emphasisStyle lipgloss.Style) string {
	rendered := prefixStyle.Render(prefix) + " "
	if !paired {
		return rendered + bodyStyle.Render(content)
	}

	oldLine, newLine := partner, content
	if prefix == "-" {
		oldLine, newLine = content, partner
	}
	for _, seg := range lineSegments(prefix, oldLine, newLine) {
		if seg.Changed {
			rendered += emphasisStyle.Render(seg.Text)
		} else {
			rendered += bodyStyle.Render(seg.Text)
		}
	}
	return rendered
}

func lineSegments(prefix, oldLine, newLine string) []lineSegment {
	oldSegs, newSegs := intralineSegments(oldLine, newLine)
	if prefix == "-" {
		return oldSegs
	}
	return newSegs
}

func (m Model) renderFooter() string {
	help := []string{
		footerKeyStyle.Render("[↑↓]") + " Navigate",
		footerKeyStyle.Render("[Tab]") + " Toggle",
		footerKeyStyle.Render("[Enter]") + " Open",
		footerKeyStyle.Render("[Esc]") + " Cancel",
		footerKeyStyle.Render("[PgUp/PgDn]") + " Scroll diff",
	}

	if m.err != nil {
		help = append(help, errorStyle.Render(m.err.Error()))
	}

	return footerBaseStyle.Render(strings.Join(help, " • "))
}
