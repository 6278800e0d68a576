package main

import (
	"sort"
	"strings"
)

func splitPath(inputPath string) []string {
	rawParts := strings.Split(inputPath, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func joinPath(parts []string) string {
	return strings.Join(parts, "/")
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}

func panelContentHeight(height int) int {
	return max(0, height-panelBorderRows)
}

func visibleRange(start, window, length int) (int, int) {
	start = clamp(start, 0, length)
	end := min(start+window, length)
	return start, end
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
