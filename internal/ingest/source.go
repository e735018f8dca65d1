// Package ingest loads input documents and normalizes them to markdown text
// ready for segmentation.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrMissingInput reports that the input file does not exist.
var ErrMissingInput = errors.New("input file not found")

// Document is a loaded input ready for segmentation.
type Document struct {
	Name        string         // base filename without extension
	Title       string         // from frontmatter or markup metadata, may be empty
	Frontmatter string         // raw frontmatter block including delimiters, "" when absent
	Meta        map[string]any // parsed frontmatter fields
	Body        string         // markdown body without frontmatter
}

// SupportedExtensions lists the input formats this tool can split.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Load reads and normalizes the file at path. HTML and DOCX inputs are
// converted to markdown first; everything else is treated as markdown.
func Load(path string) (*Document, error) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))

	if ext == ".docx" {
		return FromDOCX(name, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext {
	case ".html", ".htm":
		return FromHTML(name, data)
	case ".md", ".markdown", ".txt":
		return FromMarkdown(name, data)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

type frontmatterEnvelope struct {
	Title  string         `yaml:"title"`
	Custom map[string]any `yaml:",inline"`
}

// FromMarkdown splits off a leading frontmatter block, keeping the raw block
// so it can be re-attached to the leading chapter on output. Malformed
// frontmatter is not fatal; the whole content becomes the body.
func FromMarkdown(name string, data []byte) (*Document, error) {
	doc := &Document{Name: name}

	var env frontmatterEnvelope
	rest, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		doc.Body = string(data)
		return doc, nil
	}

	doc.Body = string(rest)
	doc.Title = env.Title
	doc.Meta = env.Custom
	if n := len(data) - len(rest); n > 0 {
		doc.Frontmatter = string(data[:n])
	}
	return doc, nil
}
