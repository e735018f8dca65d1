package ingest

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

// FromHTML converts an HTML input to GitHub-flavored markdown so the heading
// scanner can segment it. The document title comes from the <title> tag when
// present.
func FromHTML(name string, data []byte) (*Document, error) {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	markdown, err := conv.ConvertString(string(data))
	if err != nil {
		return nil, fmt.Errorf("convert html: %w", err)
	}

	return &Document{
		Name:  name,
		Title: htmlTitle(data),
		Body:  cleanConverted(markdown),
	}, nil
}

// htmlTitle extracts the text of the first <title> element.
func htmlTitle(data []byte) string {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	var find func(*html.Node) string
	find = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if t := find(c); t != "" {
				return t
			}
		}
		return ""
	}
	return find(doc)
}

// cleanConverted trims trailing whitespace the converter leaves on lines and
// caps blank runs, then restores the final newline.
func cleanConverted(markdown string) string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	out = strings.TrimSpace(out)
	if out != "" {
		out += "\n"
	}
	return out
}
