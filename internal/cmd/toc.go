package cmd

import (
	"fmt"

	"github.com/dgallion1/docsplit/internal/ingest"
	"github.com/dgallion1/docsplit/internal/slugger"
	"github.com/dgallion1/docsplit/internal/splitter"
	"github.com/dgallion1/docsplit/internal/toc"
	"github.com/spf13/cobra"
)

var tocLevel int

var tocCmd = &cobra.Command{
	Use:   "toc <input>",
	Short: "Print a table of contents for a document",
	Long: `Toc segments the document the same way split does and prints a markdown
list of chapter links to stdout, indented to mirror the heading hierarchy.`,
	Args: cobra.ExactArgs(1),
	RunE: runToc,
}

func init() {
	tocCmd.Flags().IntVarP(&tocLevel, "level", "l", 0, "Heading level to split on, 1-6 (default from config)")

	rootCmd.AddCommand(tocCmd)
}

func runToc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := tocLevel
	if !cmd.Flags().Changed("level") {
		level = cfg.MaxLevel
	}
	if level < 1 || level > splitter.MaxHeadingLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", splitter.MaxHeadingLevel, level)
	}

	doc, err := ingest.Load(args[0])
	if err != nil {
		return err
	}

	chapters := splitter.Split(doc.Body, level)
	fmt.Fprint(cmd.OutOrStdout(), toc.Build(chapters, slugger.Anchor))
	return nil
}
