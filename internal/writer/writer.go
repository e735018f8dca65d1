// Package writer persists a chapter list as a directory tree mirroring the
// heading ancestry. The segmentation core stays pure; every filesystem
// concern lives here.
package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsplit/internal/slugger"
	"github.com/dgallion1/docsplit/internal/splitter"
)

// indexName is the on-disk name for the leading heading-less chapter; the
// underscore keeps it sorted before its siblings.
const indexName = "_index.md"

// Options control output layout.
type Options struct {
	OutDir      string
	Force       bool   // remove a pre-existing output location first
	Slugify     bool   // slug-format file and folder names instead of sanitizing
	Slug        slugger.Options
	Preamble    string // raw frontmatter re-attached to the first chapter's file
	Concurrency int    // parallel file writes, default 4
}

// Writer lays chapters out on disk.
type Writer struct {
	opts Options
	log  *slog.Logger
}

func New(opts Options, log *slog.Logger) *Writer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Slug == (slugger.Options{}) {
		opts.Slug = slugger.DefaultOptions()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Writer{opts: opts, log: log}
}

// FilePlan maps one chapter to its output path relative to the output root.
type FilePlan struct {
	Chapter splitter.Chapter
	Rel     string
}

// Plan computes the output path for every chapter without touching the
// filesystem. Ancestor titles become directories, the chapter title becomes
// the filename; colliding paths get a numeric suffix.
func (w *Writer) Plan(chapters []splitter.Chapter) []FilePlan {
	plans := make([]FilePlan, 0, len(chapters))
	seen := make(map[string]int)

	for _, c := range chapters {
		segs := make([]string, 0, len(c.Parents)+1)
		for _, p := range c.Parents {
			segs = append(segs, w.name(p))
		}

		var base string
		if c.HasHeading() {
			base = w.name(c.Title()) + ".md"
		} else {
			base = indexName
		}
		rel := filepath.Join(append(segs, base)...)

		if n := seen[rel]; n > 0 {
			seen[rel] = n + 1
			ext := filepath.Ext(rel)
			rel = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(rel, ext), n+1, ext)
		} else {
			seen[rel] = 1
		}
		plans = append(plans, FilePlan{Chapter: c, Rel: rel})
	}
	return plans
}

// Write prepares the output location and persists every chapter, returning
// the plan it wrote. Directory creation runs sequentially; file writes use a
// bounded worker pool. Chapter order in the returned plan matches document
// order regardless of write order.
func (w *Writer) Write(chapters []splitter.Chapter) ([]FilePlan, error) {
	if err := w.prepareOutDir(); err != nil {
		return nil, err
	}

	plans := w.Plan(chapters)
	for _, p := range plans {
		dir := filepath.Dir(filepath.Join(w.opts.OutDir, p.Rel))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: mkdir %s: %s", ErrIO, dir, err)
		}
	}

	sem := make(chan struct{}, w.opts.Concurrency)
	errCh := make(chan error, len(plans))
	for i, p := range plans {
		sem <- struct{}{}
		go func(i int, p FilePlan) {
			defer func() { <-sem }()
			errCh <- w.writeChapter(i, p)
		}(i, p)
	}

	var firstErr error
	for range plans {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	w.log.Info("chapters written", "count", len(plans), "out", w.opts.OutDir)
	return plans, nil
}

func (w *Writer) writeChapter(idx int, p FilePlan) error {
	content := p.Chapter.Body()
	if content != "" {
		content += "\n"
	}
	if idx == 0 && w.opts.Preamble != "" {
		content = w.opts.Preamble + content
	}

	path := filepath.Join(w.opts.OutDir, p.Rel)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %s", ErrIO, path, err)
	}
	w.log.Debug("wrote chapter", "path", p.Rel, "lines", len(p.Chapter.Lines))
	return nil
}

// WriteFile writes an auxiliary file (toc.md, rendered HTML) under the
// output root.
func (w *Writer) WriteFile(rel string, data []byte) error {
	path := filepath.Join(w.opts.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %s", ErrIO, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %s", ErrIO, path, err)
	}
	return nil
}

// prepareOutDir enforces the overwrite policy: an existing non-empty output
// location is fatal unless Force removes it first.
func (w *Writer) prepareOutDir() error {
	out := w.opts.OutDir
	if _, err := os.Stat(out); err == nil {
		if w.opts.Force {
			if err := os.RemoveAll(out); err != nil {
				return fmt.Errorf("%w: remove %s: %s", ErrIO, out, err)
			}
		} else {
			entries, err := os.ReadDir(out)
			if err != nil {
				return fmt.Errorf("%w: read %s: %s", ErrIO, out, err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("%w: %s", ErrOutputExists, out)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %s", ErrIO, out, err)
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %s", ErrIO, out, err)
	}
	return nil
}

func (w *Writer) name(title string) string {
	if w.opts.Slugify {
		if s := w.opts.Slug.Format(title); s != "" {
			return s
		}
		return "untitled"
	}
	return Sanitize(title)
}

// Sanitize replaces characters illegal in file and folder names with an
// underscore. Pure string transform; empty or dot-only results become
// "untitled".
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, strings.ContainsRune(`/\?%*:|"<>`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" || strings.Trim(out, ".") == "" {
		return "untitled"
	}
	return out
}
