package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dgallion1/docsplit/internal/config"
	"github.com/dgallion1/docsplit/internal/ingest"
	"github.com/dgallion1/docsplit/internal/render"
	"github.com/dgallion1/docsplit/internal/slugger"
	"github.com/dgallion1/docsplit/internal/splitter"
	"github.com/dgallion1/docsplit/internal/toc"
	"github.com/dgallion1/docsplit/internal/watch"
	"github.com/dgallion1/docsplit/internal/writer"
	"github.com/spf13/cobra"
)

var (
	splitLevel       int
	splitOut         string
	splitToc         bool
	splitForce       bool
	splitSlug        bool
	splitReplacement string
	splitLocale      string
	splitRender      bool
	splitWatch       bool
	splitDryRun      bool
	splitConcurrency int
)

var splitCmd = &cobra.Command{
	Use:   "split <input>",
	Short: "Split a document into one file per chapter",
	Long: `Split reads a markdown (or html/docx) document and writes one file per
chapter into a directory tree mirroring the heading hierarchy. The input may
be a single file or a glob such as 'docs/**/*.md'; glob matches are processed
one at a time into per-document subdirectories.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().IntVarP(&splitLevel, "level", "l", 0, "Heading level to split on, 1-6 (default from config)")
	splitCmd.Flags().StringVarP(&splitOut, "out", "o", "", "Output directory (default from config)")
	splitCmd.Flags().BoolVarP(&splitToc, "toc", "t", false, "Write a toc.md at the output root")
	splitCmd.Flags().BoolVarP(&splitForce, "force", "f", false, "Remove a pre-existing output directory first")
	splitCmd.Flags().BoolVarP(&splitSlug, "slug", "s", false, "Slugify file and folder names")
	splitCmd.Flags().StringVar(&splitReplacement, "slug-replacement", "", "Slug word separator (default \"-\")")
	splitCmd.Flags().StringVar(&splitLocale, "slug-locale", "", "Slug transliteration locale, e.g. \"de\"")
	splitCmd.Flags().BoolVar(&splitRender, "render", false, "Also write HTML previews of chapters and toc")
	splitCmd.Flags().BoolVarP(&splitWatch, "watch", "w", false, "Re-split whenever the input changes")
	splitCmd.Flags().BoolVar(&splitDryRun, "dry-run", false, "Print the chapter plan without writing files")
	splitCmd.Flags().IntVar(&splitConcurrency, "concurrency", 0, "Parallel file writes (default from config)")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := resolveSplitOptions(cmd, cfg)
	if err != nil {
		return err
	}

	inputs, err := expandInputs(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no supported inputs match %q", args[0])
	}
	multi := len(inputs) > 1

	process := func(path string) error {
		return splitOne(cmd, log, path, opts, multi)
	}

	if splitWatch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := watch.New(log, 250*time.Millisecond, func(path string) {
			if err := process(path); err != nil {
				log.Error("re-split failed", "input", path, "error", err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
		for _, in := range inputs {
			if err := w.Add(in); err != nil {
				return err
			}
		}

		for _, in := range inputs {
			if err := process(in); err != nil {
				return err
			}
		}

		// Re-splits overwrite the previous output.
		opts.force = true

		w.Run(ctx)
		return nil
	}

	for _, in := range inputs {
		if err := process(in); err != nil {
			return err
		}
	}
	return nil
}

// splitOptions is the resolved flag/config merge for one run.
type splitOptions struct {
	level       int
	outDir      string
	force       bool
	slugify     bool
	slug        slugger.Options
	concurrency int
}

func resolveSplitOptions(cmd *cobra.Command, cfg config.Config) (splitOptions, error) {
	o := splitOptions{
		level:       splitLevel,
		outDir:      splitOut,
		force:       splitForce,
		slugify:     splitSlug,
		concurrency: splitConcurrency,
	}
	if !cmd.Flags().Changed("level") {
		o.level = cfg.MaxLevel
	}
	if o.level < 1 || o.level > splitter.MaxHeadingLevel {
		return o, fmt.Errorf("level must be between 1 and %d, got %d", splitter.MaxHeadingLevel, o.level)
	}
	if o.outDir == "" {
		o.outDir = cfg.OutDir
	}
	if o.concurrency <= 0 {
		o.concurrency = cfg.WriteConcurrency
	}

	o.slug = slugger.Options{Lower: true, Replacement: cfg.SlugReplacement, Locale: cfg.SlugLocale}
	if splitReplacement != "" {
		o.slug.Replacement = splitReplacement
	}
	if splitLocale != "" {
		o.slug.Locale = splitLocale
	}
	return o, nil
}

func splitOne(cmd *cobra.Command, log *slog.Logger, path string, opts splitOptions, multi bool) error {
	doc, err := ingest.Load(path)
	if err != nil {
		return err
	}

	chapters := splitter.Split(doc.Body, opts.level)
	log.Debug("segmented document", "input", path, "chapters", len(chapters))

	outDir := opts.outDir
	if multi {
		outDir = filepath.Join(outDir, doc.Name)
	}

	w := writer.New(writer.Options{
		OutDir:      outDir,
		Force:       opts.force,
		Slugify:     opts.slugify,
		Slug:        opts.slug,
		Preamble:    doc.Frontmatter,
		Concurrency: opts.concurrency,
	}, log)

	if splitDryRun {
		for _, p := range w.Plan(chapters) {
			title := p.Chapter.Title()
			if title == "" {
				title = toc.PlaceholderTitle
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-48s %4d lines  %s\n", p.Rel, len(p.Chapter.Lines), title)
		}
		return nil
	}

	plans, err := w.Write(chapters)
	if err != nil {
		return err
	}

	anchor := slugger.Options{Lower: true, Replacement: opts.slug.Replacement, Locale: opts.slug.Locale}
	tocMarkdown := ""
	if splitToc || splitRender {
		tocMarkdown = toc.Build(chapters, anchor.Format)
	}
	if splitToc {
		if err := w.WriteFile("toc.md", []byte(tocMarkdown)); err != nil {
			return err
		}
	}

	if splitRender {
		r := render.New()
		for _, p := range plans {
			html, err := r.HTML([]byte(p.Chapter.Body()))
			if err != nil {
				return err
			}
			rel := strings.TrimSuffix(p.Rel, ".md") + ".html"
			if err := w.WriteFile(rel, html); err != nil {
				return err
			}
		}
		if splitToc {
			html, err := r.HTML([]byte(tocMarkdown))
			if err != nil {
				return err
			}
			if err := w.WriteFile("toc.html", html); err != nil {
				return err
			}
		}
	}

	log.Info("split complete", "input", path, "out", outDir, "chapters", len(chapters))
	return nil
}

// expandInputs resolves a file path or a doublestar glob to supported inputs.
func expandInputs(arg string) ([]string, error) {
	if !strings.ContainsAny(arg, "*?[{") {
		return []string{arg}, nil
	}
	matches, err := doublestar.FilepathGlob(arg)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", arg, err)
	}
	var inputs []string
	for _, m := range matches {
		if ingest.IsSupportedExtension(m) {
			inputs = append(inputs, m)
		}
	}
	return inputs, nil
}
