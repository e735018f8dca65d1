package splitter

import (
	"strings"
	"testing"
)

func joinChapters(chapters []Chapter) []string {
	var lines []string
	for _, c := range chapters {
		lines = append(lines, c.Lines...)
	}
	return lines
}

func TestSplit_ReconstructsDocument(t *testing.T) {
	doc := strings.Join([]string{
		"preamble line",
		"# One",
		"body",
		"```",
		"# fenced, not a heading",
		"```",
		"## One.A",
		"  indented body  ",
		"### One.A.i",
		"# Two",
		"#tag is text",
	}, "\n") + "\n"

	for _, level := range []int{1, 2, 3, 6} {
		chapters := Split(doc, level)
		got := joinChapters(chapters)
		want := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
		if len(got) != len(want) {
			t.Fatalf("level %d: expected %d lines, got %d", level, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("level %d line %d: expected %q, got %q", level, i, want[i], got[i])
			}
		}
	}
}

func TestSplit_TwoChapterExample(t *testing.T) {
	chapters := Split("# A\ntext\n## B\nmore\n", 2)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}

	c1 := chapters[0]
	if c1.Title() != "A" || len(c1.Parents) != 0 {
		t.Errorf("chapter 1: expected title A with no parents, got %q %v", c1.Title(), c1.Parents)
	}
	if len(c1.Lines) != 2 || c1.Lines[0] != "# A" || c1.Lines[1] != "text" {
		t.Errorf("chapter 1 lines: got %v", c1.Lines)
	}

	c2 := chapters[1]
	if c2.Title() != "B" {
		t.Errorf("chapter 2: expected title B, got %q", c2.Title())
	}
	if len(c2.Parents) != 1 || c2.Parents[0] != "A" {
		t.Errorf("chapter 2 parents: expected [A], got %v", c2.Parents)
	}
	if len(c2.Lines) != 2 || c2.Lines[0] != "## B" || c2.Lines[1] != "more" {
		t.Errorf("chapter 2 lines: got %v", c2.Lines)
	}
}

func TestSplit_NoHeadingsYieldsOneChapter(t *testing.T) {
	chapters := Split("just\nsome\ntext\n", 6)
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].HasHeading() {
		t.Error("expected no heading")
	}
	if len(chapters[0].Parents) != 0 {
		t.Errorf("expected no parents, got %v", chapters[0].Parents)
	}
}

func TestSplit_EmptyDocumentStillEmitsChapter(t *testing.T) {
	chapters := Split("", 3)
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].HasHeading() || len(chapters[0].Lines) != 0 {
		t.Errorf("expected an empty heading-less chapter, got %+v", chapters[0])
	}
}

func TestSplit_LeadingContentBeforeFirstHeading(t *testing.T) {
	chapters := Split("intro\nmore intro\n# First\nbody\n", 1)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[0].HasHeading() {
		t.Error("leading chapter should have no heading")
	}
	if chapters[0].Lines[0] != "intro" {
		t.Errorf("leading chapter lines: got %v", chapters[0].Lines)
	}
	if chapters[1].Title() != "First" {
		t.Errorf("expected First, got %q", chapters[1].Title())
	}
}

func TestSplit_SiblingDoesNotInheritStaleAncestry(t *testing.T) {
	doc := "# A\n## B\n### C\n## D\n"
	chapters := Split(doc, 3)
	if len(chapters) != 4 {
		t.Fatalf("expected 4 chapters, got %d", len(chapters))
	}
	d := chapters[3]
	if d.Title() != "D" {
		t.Fatalf("expected D, got %q", d.Title())
	}
	if len(d.Parents) != 1 || d.Parents[0] != "A" {
		t.Errorf("D parents: expected [A], got %v", d.Parents)
	}
}

func TestSplit_ShallowerHeadingTruncatesAncestry(t *testing.T) {
	// A level-1 heading right after a level-2 one must clear the deeper
	// entries, so a later level-2 heading only sees the new root.
	doc := "# A\n## B\n# X\n## Y\n"
	chapters := Split(doc, 2)
	y := chapters[3]
	if y.Title() != "Y" {
		t.Fatalf("expected Y, got %q", y.Title())
	}
	if len(y.Parents) != 1 || y.Parents[0] != "X" {
		t.Errorf("Y parents: expected [X], got %v", y.Parents)
	}
}

func TestSplit_LevelGapSkipsMissingAncestors(t *testing.T) {
	chapters := Split("# A\n### C\n", 3)
	c := chapters[1]
	if len(c.Parents) != 1 || c.Parents[0] != "A" {
		t.Errorf("C parents: expected [A] with the level-2 gap skipped, got %v", c.Parents)
	}
}

func TestSplit_HeadingInsideFenceIsText(t *testing.T) {
	doc := "# Real\n```\n# Not A Heading\n```\nafter\n"
	chapters := Split(doc, 6)
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Title() != "Real" {
		t.Errorf("expected Real, got %q", chapters[0].Title())
	}
}

func TestSplit_OddFenceCountSwallowsRest(t *testing.T) {
	// An unclosed fence leaves fenceOpen true, so every later heading is
	// ordinary text.
	doc := "# A\n```\n# B\n# C\n"
	chapters := Split(doc, 6)
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
}

func TestSplit_FenceToggleAcrossChapters(t *testing.T) {
	// Three fence lines in the first chapter leave the fence open across the
	// would-be boundary; the fourth closes it, so the last heading splits.
	doc := "# A\n```\n```\n```\n# B\n```\n# C\n"
	chapters := Split(doc, 6)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[1].Title() != "C" {
		t.Errorf("expected second chapter C, got %q", chapters[1].Title())
	}
}

func TestSplit_DeepHeadingsStayInChapter(t *testing.T) {
	doc := "# A\n## B\n### too deep\nbody\n"
	chapters := Split(doc, 2)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	b := chapters[1]
	if len(b.Lines) != 3 {
		t.Errorf("expected the deep heading kept as content, lines: %v", b.Lines)
	}
}

func TestSplit_TrailingHeadingGetsOwnChapter(t *testing.T) {
	chapters := Split("# A\nbody\n## B\n", 2)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	last := chapters[1]
	if last.Title() != "B" || len(last.Lines) != 1 {
		t.Errorf("expected trailing chapter with just the heading line, got %+v", last)
	}
}

func TestSplit_OverlongHashRunDoesNotCorruptAncestry(t *testing.T) {
	doc := "# A\n####### seven\n## B\n"
	chapters := Split(doc, 6)
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	b := chapters[1]
	if len(b.Parents) != 1 || b.Parents[0] != "A" {
		t.Errorf("B parents: expected [A], got %v", b.Parents)
	}
}

func TestChapter_Path(t *testing.T) {
	chapters := Split("# A\n## B\n", 2)
	path := chapters[1].Path()
	if len(path) != 2 || path[0] != "A" || path[1] != "B" {
		t.Errorf("expected [A B], got %v", path)
	}
	lead := Split("text\n", 2)[0]
	if len(lead.Path()) != 0 {
		t.Errorf("expected empty path for leading chapter, got %v", lead.Path())
	}
}
