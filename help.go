package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut with its description
type KeyBinding struct {
	Key    string
	Action string
}

// All key bindings for the picker
var keyBindings = []KeyBinding{
	{"type", "Filter the file list"},
	{"up/down", "Move the cursor"},
	{"ctrl+p/n", "Move the cursor"},
	{"tab", "Toggle selection on the current file"},
	{"enter", "Open selection in the editor"},
	{"esc", "Cancel without opening anything"},
	{"ctrl+c", "Cancel without opening anything"},
	{"f1", "Show/hide this help screen"},
}

// renderHelp renders the help modal centered on screen
func (m Model) renderHelp() string {
	if !m.showHelp {
		return ""
	}

	modalWidth, modalHeight := helpModalDimensions(m.width, m.height)

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Background(colorGray235).
		Padding(1, 2)

	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	for _, kb := range keyBindings {
		key := helpKeyStyle.Render(fmt.Sprintf(" %-9s", kb.Key))
		desc := helpDescStyle.Render(kb.Action)
		content.WriteString(fmt.Sprintf("%s %s\n", key, desc))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("Press f1 to close"))

	helpContent := modalStyle.Render(content.String())
	helpLines := strings.Split(helpContent, "\n")

	verticalPadding := max(0, (m.height-len(helpLines))/2)
	horizontalPadding := max(0, (m.width-modalWidth)/2)

	var result strings.Builder
	result.WriteString(strings.Repeat("\n", verticalPadding))
	for _, line := range helpLines {
		result.WriteString(strings.Repeat(" ", horizontalPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

// GetKeyBindings returns all key bindings (for documentation/testing)
func GetKeyBindings() []KeyBinding {
	return keyBindings
}
