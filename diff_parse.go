package main

import (
	"strconv"
	"strings"
)

// ChangeType represents the kind of change a diff records for a file.
type ChangeType int

const (
	Modified ChangeType = iota
	Added
	Deleted
	Renamed
)

// FileDiff is one file's parsed diff.
type FileDiff struct {
	Path         string
	OldPath      string // for renames
	ChangeType   ChangeType
	Hunks        []Hunk
	LinesAdded   int
	LinesRemoved int
}

// Hunk is one contiguous section of changes.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []DiffLine
}

// DiffLine is a single line within a hunk.
type DiffLine struct {
	Type    LineType
	Content string
}

// LineType classifies a diff line.
type LineType int

const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

// ParseUnifiedDiff parses git's unified diff output into FileDiffs. The
// preview only ever asks git for a single path, but the parser handles
// multi-file output so the whole plan can be rendered too.
func ParseUnifiedDiff(raw string) []FileDiff {
	var files []FileDiff
	var current *FileDiff
	var hunk *Hunk

	flushHunk := func() {
		if current != nil && hunk != nil {
			current.Hunks = append(current.Hunks, *hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if current != nil {
			files = append(files, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			current = &FileDiff{Path: parseDiffHeaderPath(line)}

		case current == nil:
			// Preamble before the first file header.

		case strings.HasPrefix(line, "new file"):
			current.ChangeType = Added
		case strings.HasPrefix(line, "deleted file"):
			current.ChangeType = Deleted
		case strings.HasPrefix(line, "rename from "):
			current.ChangeType = Renamed
			current.OldPath = strings.TrimPrefix(line, "rename from ")

		case strings.HasPrefix(line, "@@"):
			flushHunk()
			h := parseHunkHeader(line)
			hunk = &h

		case hunk == nil:
			// Remaining header lines (index, mode, ---/+++).

		case strings.HasPrefix(line, "+"):
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineAdded, Content: line[1:]})
			current.LinesAdded++
		case strings.HasPrefix(line, "-"):
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineRemoved, Content: line[1:]})
			current.LinesRemoved++
		case strings.HasPrefix(line, " "):
			hunk.Lines = append(hunk.Lines, DiffLine{Type: LineContext, Content: line[1:]})
		case line == `\ No newline at end of file`:
			// Marker line, not content.
		}
	}
	flushFile()

	return files
}

// parseDiffHeaderPath extracts the post-image path from a "diff --git" line.
func parseDiffHeaderPath(line string) string {
	fields := strings.Fields(line)
	if len(fields) >= 4 {
		return strings.TrimPrefix(fields[3], "b/")
	}
	return ""
}

// parseHunkHeader parses "@@ -oldStart,oldCount +newStart,newCount @@".
// Counts default to 1 when omitted, matching git's format.
func parseHunkHeader(line string) Hunk {
	h := Hunk{OldCount: 1, NewCount: 1}

	for _, field := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(field, "-"):
			h.OldStart, h.OldCount = parseHunkRange(field[1:])
		case strings.HasPrefix(field, "+"):
			h.NewStart, h.NewCount = parseHunkRange(field[1:])
		}
	}
	return h
}

func parseHunkRange(s string) (start, count int) {
	count = 1
	if startStr, countStr, found := strings.Cut(s, ","); found {
		start, _ = strconv.Atoi(startStr)
		count, _ = strconv.Atoi(countStr)
	} else {
		start, _ = strconv.Atoi(s)
	}
	return start, count
}
