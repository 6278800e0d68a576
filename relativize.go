package main

import (
	pathpkg "path"
	"strings"
)

// Relativize rewrites a repository-root-relative file path into a path
// relative to the directory the tool was invoked from. fromDir is the working
// directory expressed relative to the repository root ("" when invoked at the
// root), toPath is a slash-separated path as emitted by git.
//
// The rewritten path is handed to the editor verbatim, so it has to resolve
// from the shell's actual working directory, not from the repository root.
func Relativize(fromDir, toPath string) string {
	if fromDir == "" {
		return toPath
	}

	fromParts := splitPath(strings.TrimPrefix(fromDir, "/"))
	if len(fromParts) == 0 {
		return toPath
	}

	toDir, base := splitDirFile(toPath)
	toParts := splitPath(toDir)

	for i, part := range fromParts {
		if i >= len(toParts) || toParts[i] != part {
			// Diverged: climb out of the remaining fromDir components and
			// address the file by its base name only.
			return strings.Repeat("../", len(fromParts)-i) + base
		}
	}

	// fromDir is a prefix of the file's directory: strip the shared prefix.
	if rest := toParts[len(fromParts):]; len(rest) > 0 {
		return joinPath(rest) + "/" + base
	}
	return base
}

// splitDirFile splits a slash-separated path into its directory component and
// final filename component. A path with no separator has an empty directory.
func splitDirFile(p string) (dir, file string) {
	dir, file = pathpkg.Split(p)
	return strings.TrimSuffix(dir, "/"), file
}
