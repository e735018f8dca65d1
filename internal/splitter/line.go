package splitter

import "strings"

// MaxHeadingLevel is the deepest heading level markdown supports.
const MaxHeadingLevel = 6

// Line is one classified input line. It is built once per raw line and never
// mutated afterwards.
type Line struct {
	Text  string // trimmed text of the line
	Fence bool   // line starts a/ends a verbatim block
	Level int    // 1..6 for headings, 0 otherwise
	Title string // heading title, "" when not a heading
}

// IsHeading reports whether the line is a heading at a supported level.
func (l Line) IsHeading() bool { return l.Level > 0 }

// Classify derives a Line from one raw input line. The raw line is trimmed of
// surrounding whitespace before classification, so indented fences and
// headings still count. A run of '#' characters only makes a heading when it
// is immediately followed by whitespace ("#tag" is plain text), and runs
// longer than six are out of range and treated as plain text.
func Classify(raw string) Line {
	text := strings.TrimSpace(raw)
	ln := Line{Text: text}

	if strings.HasPrefix(text, "```") {
		ln.Fence = true
		return ln
	}

	n := 0
	for n < len(text) && text[n] == '#' {
		n++
	}
	if n == 0 || n > MaxHeadingLevel {
		return ln
	}
	rest := text[n:]
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return ln
	}

	ln.Level = n
	ln.Title = strings.TrimSpace(rest)
	return ln
}
