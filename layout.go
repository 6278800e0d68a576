package main

// Layout constants for the TUI
const (
	headerRows = 2 // query input + separator
	footerRows = 1

	panelBorderRows = 2 // top + bottom border
	listWidthRatio  = 3 // file list gets 1/listWidthRatio of total width

	helpModalMaxWidth  = 56
	helpModalMaxHeight = 24
	helpModalPadding   = 4 // 2 on each side
)

// contentHeight calculates the available content height for the panels
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// listWidth calculates the width for the file list panel
func listWidth(totalWidth int) int {
	return totalWidth / listWidthRatio
}

// previewWidth calculates the width for the diff preview panel
func previewWidth(totalWidth int) int {
	return totalWidth - listWidth(totalWidth)
}

// helpModalDimensions calculates the dimensions for the help modal
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
