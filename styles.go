package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent theming
var (
	colorBlue   = lipgloss.Color("blue")
	colorYellow = lipgloss.Color("yellow")
	colorWhite  = lipgloss.Color("white")

	colorGray243 = lipgloss.Color("243") // Medium gray
	colorGray244 = lipgloss.Color("244") // Subtle gray
	colorGray245 = lipgloss.Color("245") // Light gray
	colorGray235 = lipgloss.Color("235") // Dark gray (background)
	colorGray237 = lipgloss.Color("237") // Border gray

	colorGreen142 = lipgloss.Color("142") // Soft green (diff content)
	colorGreen86  = lipgloss.Color("86")  // Bright green (added lines)
	colorRed203   = lipgloss.Color("203") // Soft red (diff content)
	colorRed196   = lipgloss.Color("196") // Bright red (removed lines)

	colorSoftBlue75 = lipgloss.Color("75")  // Soft blue (selection)
	colorSoftYellow = lipgloss.Color("229") // Soft warm yellow
)

// Predefined styles for reuse
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	modeIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	fileStyle = lipgloss.NewStyle().
			Foreground(colorGray243).
			Bold(true)

	pickedStyle = lipgloss.NewStyle().
			Foreground(colorGreen86).
			Bold(true)

	cursorLineStyle = lipgloss.NewStyle().
			Foreground(colorSoftBlue75).
			Bold(true).
			Background(colorGray235)

	matchStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	diffAddedStyle = lipgloss.NewStyle().
			Foreground(colorGreen142).
			Bold(true)

	diffRemovedStyle = lipgloss.NewStyle().
				Foreground(colorRed203).
				Bold(true)

	diffAddedPrefixStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")).
				Bold(true)

	diffRemovedPrefixStyle = lipgloss.NewStyle().
				Foreground(colorRed196).
				Bold(true)

	diffAddedEmphasisStyle = lipgloss.NewStyle().
				Foreground(colorGreen86).
				Bold(true).
				Underline(true)

	diffRemovedEmphasisStyle = lipgloss.NewStyle().
					Foreground(colorRed196).
					Bold(true).
					Underline(true)

	diffContextStyle = lipgloss.NewStyle().
				Foreground(colorGray245)

	diffHunkStyle = lipgloss.NewStyle().
			Foreground(colorGray244)

	diffFileHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSoftBlue75).
				Bold(true)

	statsStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true)

	panelBaseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray237)

	panelActiveStyle = panelBaseStyle.BorderForeground(colorBlue)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSoftYellow).
			Bold(true).
			Width(10)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed203).
			Bold(true)

	panelInfoStyle = lipgloss.NewStyle().
			Foreground(colorGray243).
			Italic(true)

	footerBaseStyle = lipgloss.NewStyle().
			Foreground(colorGray243)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// GetStatusStyle returns the appropriate style for a change type
func GetStatusStyle(changeType ChangeType) lipgloss.Style {
	switch changeType {
	case Added:
		return pickedStyle
	case Deleted:
		return diffRemovedStyle
	default:
		return modeIndicatorStyle
	}
}

// GetStatusSymbol returns the symbol for a change type
func GetStatusSymbol(changeType ChangeType) string {
	switch changeType {
	case Modified:
		return "M"
	case Added:
		return "A"
	case Deleted:
		return "D"
	case Renamed:
		return "R"
	default:
		return "?"
	}
}
