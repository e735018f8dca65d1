// Package toc renders a chapter list as a nested bullet outline.
package toc

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docsplit/internal/splitter"
)

// PlaceholderTitle stands in for the leading chapter when it has no heading.
const PlaceholderTitle = "Introduction"

// Build renders one outline entry per chapter, indented by the length of the
// shared ancestry prefix with the immediately preceding chapter's full path.
// The comparison is only against the previous chapter, never a running
// maximum, so two chapters with unrelated ancestry both sit at indent 0 even
// when a deeper branch appeared between them.
//
// Anchors are derived from the display title via anchor; callers pass the
// same formatter the downstream renderer would use.
func Build(chapters []splitter.Chapter, anchor func(string) string) string {
	var b strings.Builder
	var prevPath []string

	for _, c := range chapters {
		depth := commonPrefixLen(c.Parents, prevPath)
		title := c.Title()
		if title == "" {
			title = PlaceholderTitle
		}
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "- [%s](#%s)\n", title, anchor(title))
		prevPath = c.Path()
	}
	return b.String()
}

func commonPrefixLen(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
