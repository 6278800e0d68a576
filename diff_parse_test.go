package main

import "testing"

const sampleDiff = `diff --git a/foo/bar.go b/foo/bar.go
index 83db48f..bf269f4 100644
--- a/foo/bar.go
+++ b/foo/bar.go
@@ -1,4 +1,5 @@
 package bar

-func Old() {}
+func New() {}
+func Extra() {}

diff --git a/baz.txt b/baz.txt
new file mode 100644
index 0000000..5716ca5
--- /dev/null
+++ b/baz.txt
@@ -0,0 +1 @@
+hello
`

func TestParseUnifiedDiff(t *testing.T) {
	files := ParseUnifiedDiff(sampleDiff)

	if len(files) != 2 {
		t.Fatalf("ParseUnifiedDiff() returned %d files, want 2", len(files))
	}

	first := files[0]
	if first.Path != "foo/bar.go" {
		t.Errorf("first.Path = %q, want %q", first.Path, "foo/bar.go")
	}
	if first.ChangeType != Modified {
		t.Errorf("first.ChangeType = %v, want Modified", first.ChangeType)
	}
	if len(first.Hunks) != 1 {
		t.Fatalf("first file has %d hunks, want 1", len(first.Hunks))
	}
	if first.LinesAdded != 2 || first.LinesRemoved != 1 {
		t.Errorf("first file +%d/-%d, want +2/-1", first.LinesAdded, first.LinesRemoved)
	}

	hunk := first.Hunks[0]
	if hunk.OldStart != 1 || hunk.OldCount != 4 || hunk.NewStart != 1 || hunk.NewCount != 5 {
		t.Errorf("hunk header = -%d,%d +%d,%d, want -1,4 +1,5",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	}

	second := files[1]
	if second.Path != "baz.txt" {
		t.Errorf("second.Path = %q, want %q", second.Path, "baz.txt")
	}
	if second.ChangeType != Added {
		t.Errorf("second.ChangeType = %v, want Added", second.ChangeType)
	}
	if len(second.Hunks) != 1 || len(second.Hunks[0].Lines) != 1 {
		t.Fatalf("unexpected hunk shape for added file: %+v", second.Hunks)
	}
	if line := second.Hunks[0].Lines[0]; line.Type != LineAdded || line.Content != "hello" {
		t.Errorf("added line = (%v, %q), want (LineAdded, \"hello\")", line.Type, line.Content)
	}
}

func TestParseUnifiedDiffEmpty(t *testing.T) {
	if files := ParseUnifiedDiff(""); len(files) != 0 {
		t.Errorf("ParseUnifiedDiff(\"\") returned %d files, want 0", len(files))
	}
}

func TestParseUnifiedDiffHunkCountDefaults(t *testing.T) {
	h := parseHunkHeader("@@ -3 +4 @@")
	if h.OldStart != 3 || h.OldCount != 1 || h.NewStart != 4 || h.NewCount != 1 {
		t.Errorf("parseHunkHeader() = %+v, want -3,1 +4,1", h)
	}
}

func TestParseUnifiedDiffRename(t *testing.T) {
	raw := `diff --git a/old.go b/new.go
similarity index 100%
rename from old.go
rename to new.go
`
	files := ParseUnifiedDiff(raw)
	if len(files) != 1 {
		t.Fatalf("ParseUnifiedDiff() returned %d files, want 1", len(files))
	}
	if files[0].ChangeType != Renamed || files[0].OldPath != "old.go" {
		t.Errorf("rename parsed as %+v", files[0])
	}
	if files[0].Path != "new.go" {
		t.Errorf("Path = %q, want %q", files[0].Path, "new.go")
	}
}
