package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	from := "root\n├── a\n└── b"
	to := "root\n├── a\n├── c\n└── b"
	got := DiffLines(from, to)
	want := []Line{
		{Op: Equal, Text: "root"},
		{Op: Equal, Text: "├── a"},
		{Op: Insert, Text: "├── c"},
		{Op: Equal, Text: "└── b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected a change")
	}
}

func TestDiffLinesReplace(t *testing.T) {
	got := DiffLines("root\n└── old", "root\n└── new")
	want := []Line{
		{Op: Equal, Text: "root"},
		{Op: Delete, Text: "└── old"},
		{Op: Insert, Text: "└── new"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got[1].String() != "-└── old" || got[2].String() != "+└── new" || got[0].String() != " root" {
		t.Errorf("unexpected prefixes %v", got)
	}
}

func TestDiffLinesSame(t *testing.T) {
	got := DiffLines("a\n└── b", "a\n└── b\n")
	if Changed(got) {
		t.Errorf("unexpected change %v", got)
	}
	if len(got) != 2 {
		t.Errorf("got %d lines", len(got))
	}
}
