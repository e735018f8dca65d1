// Package splitter segments a markdown document into chapters along its
// heading structure. The scan is line-oriented and deliberately naive about
// fences: any line starting with ``` flips the open/close parity, with no
// pairing or nesting. Downstream output depends on that exact behavior, so it
// must not be made stricter.
package splitter

import "strings"

// Chapter is one contiguous run of lines belonging to a heading, or the
// leading run before the first heading. Concatenating the Lines of all
// chapters in order reproduces the source document.
type Chapter struct {
	Heading *Line    // nil for the leading chapter
	Parents []string // ancestor heading titles, outermost first
	Lines   []string // raw lines, including the heading line itself
}

// HasHeading reports whether the chapter was opened by a heading.
func (c Chapter) HasHeading() bool { return c.Heading != nil }

// Title returns the heading title, or "" for the leading chapter.
func (c Chapter) Title() string {
	if c.Heading == nil {
		return ""
	}
	return c.Heading.Title
}

// Path returns the chapter's full ancestry path: its parents followed by its
// own title when it has one.
func (c Chapter) Path() []string {
	path := make([]string, 0, len(c.Parents)+1)
	path = append(path, c.Parents...)
	if c.Heading != nil {
		path = append(path, c.Heading.Title)
	}
	return path
}

// Body returns the chapter's lines joined with newlines.
func (c Chapter) Body() string { return strings.Join(c.Lines, "\n") }

// ancestry records the most recent heading title seen at each level. The
// zero value means "none" at every level; it is scan-local state, reset per
// document.
type ancestry [MaxHeadingLevel + 1]string

// update sets the entry for the heading's level and clears every deeper one.
// A shallower heading invalidates all deeper ancestry. Nil headings and
// out-of-range levels leave the table untouched.
func (a *ancestry) update(h *Line) {
	if h == nil || h.Level < 1 || h.Level > MaxHeadingLevel {
		return
	}
	for lv := h.Level; lv <= MaxHeadingLevel; lv++ {
		a[lv] = ""
	}
	a[h.Level] = h.Title
}

// resolve returns the ancestor titles for a chapter opened by h, outermost
// first. Levels never seen are skipped. A level-1 heading has no ancestors
// regardless of table contents, and nil (the leading chapter) resolves to
// nothing.
func (a *ancestry) resolve(h *Line) []string {
	if h == nil {
		return nil
	}
	var parents []string
	for lv := 1; lv < h.Level; lv++ {
		if a[lv] != "" {
			parents = append(parents, a[lv])
		}
	}
	return parents
}

// Split segments text into chapters, starting a new chapter at every heading
// of level <= maxLevel that is not inside an open fence. Deeper headings and
// fenced heading-lookalikes stay ordinary content. maxLevel is treated as an
// opaque threshold; validating its range is the caller's job.
//
// The final accumulator is always emitted, so even an empty document yields
// one (heading-less, empty) chapter.
func Split(text string, maxLevel int) []Chapter {
	lines := splitLines(text)

	var (
		chapters []Chapter
		table    ancestry
		current  *Line // heading that opened the chapter in progress
		buf      []string
	)
	fenceOpen := false

	for _, raw := range lines {
		ln := Classify(raw)
		if ln.Fence {
			fenceOpen = !fenceOpen
		}
		if ln.IsHeading() && !fenceOpen && ln.Level <= maxLevel {
			if len(buf) > 0 {
				chapters = append(chapters, Chapter{
					Heading: current,
					Parents: table.resolve(current),
					Lines:   buf,
				})
				table.update(current)
				buf = nil
			}
			h := ln
			current = &h
		}
		// The boundary line belongs to the chapter it opens.
		buf = append(buf, raw)
	}

	chapters = append(chapters, Chapter{
		Heading: current,
		Parents: table.resolve(current),
		Lines:   buf,
	})
	return chapters
}

// splitLines splits on the line terminator without letting a trailing
// terminator produce a spurious empty line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
