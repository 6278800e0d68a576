package main

import "github.com/pmezard/go-difflib/difflib"

// lineSegment is a run of characters within a diff line, marked when it
// belongs to the changed part of a modified line pair.
type lineSegment struct {
	Text    string
	Changed bool
}

// intralineSegments aligns a removed line with its replacement and splits
// both into segments so the view can emphasize only the characters that
// actually changed, instead of repainting the whole line.
func intralineSegments(oldLine, newLine string) (oldSegs, newSegs []lineSegment) {
	oldChars := explode(oldLine)
	newChars := explode(newLine)

	matcher := difflib.NewMatcher(oldChars, newChars)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			oldSegs = appendSegment(oldSegs, join(oldChars[op.I1:op.I2]), false)
			newSegs = appendSegment(newSegs, join(newChars[op.J1:op.J2]), false)
		case 'd':
			oldSegs = appendSegment(oldSegs, join(oldChars[op.I1:op.I2]), true)
		case 'i':
			newSegs = appendSegment(newSegs, join(newChars[op.J1:op.J2]), true)
		case 'r':
			oldSegs = appendSegment(oldSegs, join(oldChars[op.I1:op.I2]), true)
			newSegs = appendSegment(newSegs, join(newChars[op.J1:op.J2]), true)
		}
	}
	return oldSegs, newSegs
}

// pairHunkLines walks a hunk and yields, for each line, the counterpart it
// should be intraline-diffed against: the i-th removed line of a run pairs
// with the i-th added line of the run that follows it. Unpaired lines map to
// an empty counterpart.
func pairHunkLines(lines []DiffLine) map[int]int {
	pairs := make(map[int]int)

	i := 0
	for i < len(lines) {
		if lines[i].Type != LineRemoved {
			i++
			continue
		}

		removedStart := i
		for i < len(lines) && lines[i].Type == LineRemoved {
			i++
		}
		addedStart := i
		for i < len(lines) && lines[i].Type == LineAdded {
			i++
		}

		removed := addedStart - removedStart
		added := i - addedStart
		for k := 0; k < min(removed, added); k++ {
			pairs[removedStart+k] = addedStart + k
			pairs[addedStart+k] = removedStart + k
		}
	}

	return pairs
}

func explode(s string) []string {
	runes := []rune(s)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}
	return chars
}

func join(chars []string) string {
	total := 0
	for _, c := range chars {
		total += len(c)
	}
	b := make([]byte, 0, total)
	for _, c := range chars {
		b = append(b, c...)
	}
	return string(b)
}

func appendSegment(segs []lineSegment, text string, changed bool) []lineSegment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, lineSegment{Text: text, Changed: changed})
}
