package main

import "testing"

func TestRelativize(t *testing.T) {
	tests := []struct {
		name     string
		fromDir  string
		toPath   string
		expected string
	}{
		{
			name:     "at repository root",
			fromDir:  "",
			toPath:   "readme.md",
			expected: "readme.md",
		},
		{
			name:     "root with nested file",
			fromDir:  "",
			toPath:   "foo/bar/baz.txt",
			expected: "foo/bar/baz.txt",
		},
		{
			name:     "divergence after shared prefix",
			fromDir:  "foo/bar/baz",
			toPath:   "foo/hey",
			expected: "../../hey",
		},
		{
			name:     "file at root from nested dir",
			fromDir:  "foo/bar/baz",
			toPath:   "readme.md",
			expected: "../../../readme.md",
		},
		{
			name:     "file inside current dir",
			fromDir:  "foo/bar",
			toPath:   "foo/bar/qux.txt",
			expected: "qux.txt",
		},
		{
			name:     "file below current dir keeps remainder",
			fromDir:  "foo",
			toPath:   "foo/bar/qux.txt",
			expected: "bar/qux.txt",
		},
		{
			name:     "leading separator stripped from fromDir",
			fromDir:  "/foo/bar",
			toPath:   "foo/bar/qux.txt",
			expected: "qux.txt",
		},
		{
			name:     "immediate divergence discards to dirs",
			fromDir:  "a/b",
			toPath:   "c/d/e.txt",
			expected: "../../e.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Relativize(tt.fromDir, tt.toPath)
			if result != tt.expected {
				t.Errorf("Relativize(%q, %q) = %q, want %q", tt.fromDir, tt.toPath, result, tt.expected)
			}
		})
	}
}

func TestRelativizeSameDirIsBaseName(t *testing.T) {
	// Whenever fromDir equals the file's directory, the result is the bare
	// filename with no parent references.
	paths := []string{
		"a/file.go",
		"a/b/file.go",
		"a/b/c/deep.txt",
	}

	for _, p := range paths {
		dir, base := splitDirFile(p)
		result := Relativize(dir, p)
		if result != base {
			t.Errorf("Relativize(%q, %q) = %q, want %q", dir, p, result, base)
		}
	}
}

func TestSplitDirFile(t *testing.T) {
	tests := []struct {
		path string
		dir  string
		file string
	}{
		{"readme.md", "", "readme.md"},
		{"foo/bar.txt", "foo", "bar.txt"},
		{"a/b/c.txt", "a/b", "c.txt"},
	}

	for _, tt := range tests {
		dir, file := splitDirFile(tt.path)
		if dir != tt.dir || file != tt.file {
			t.Errorf("splitDirFile(%q) = (%q, %q), want (%q, %q)", tt.path, dir, file, tt.dir, tt.file)
		}
	}
}
